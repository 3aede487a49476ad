package repository

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"

	"bariatric-gpt/backend/internal/model"
)

type sqliteRepository struct {
	db *sql.DB
}

func NewSQLiteRepository(db *sql.DB) Repository {
	return &sqliteRepository{db: db}
}

func (r *sqliteRepository) GetProfile(ctx context.Context, userID string) (*model.UserProfile, error) {
	query := `
		SELECT user_id, allergies, disliked_foods, diet_type, surgery_date, activity_level,
		       weight_kg, height_cm, date_of_birth, protein_total, protein_history, updated_at
		FROM profiles WHERE user_id = ?
	`
	row := r.db.QueryRowContext(ctx, query, userID)

	var p model.UserProfile
	var allergies, disliked, history string
	err := row.Scan(&p.UserID, &allergies, &disliked, &p.DietType, &p.SurgeryDate, &p.ActivityLevel,
		&p.WeightKg, &p.HeightCm, &p.DateOfBirth, &p.ProteinTotal, &history, &p.UpdatedAt)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, ErrNotFound
		}
		return nil, err
	}

	if err := json.Unmarshal([]byte(allergies), &p.Allergies); err != nil {
		return nil, fmt.Errorf("could not decode allergies: %w", err)
	}
	if err := json.Unmarshal([]byte(disliked), &p.DislikedFoods); err != nil {
		return nil, fmt.Errorf("could not decode disliked foods: %w", err)
	}
	if err := json.Unmarshal([]byte(history), &p.ProteinHistory); err != nil {
		return nil, fmt.Errorf("could not decode protein history: %w", err)
	}

	meals, err := r.getMealsForDay(ctx, userID, time.Now().UTC().Format("2006-01-02"))
	if err != nil {
		return nil, err
	}
	p.TodaysMeals = meals

	return &p, nil
}

func (r *sqliteRepository) getMealsForDay(ctx context.Context, userID, day string) ([]model.LoggedMeal, error) {
	query := `
		SELECT food, protein, calories FROM meals
		WHERE user_id = ? AND logged_on = ?
		ORDER BY logged_at ASC
	`
	rows, err := r.db.QueryContext(ctx, query, userID, day)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	meals := []model.LoggedMeal{}
	for rows.Next() {
		var m model.LoggedMeal
		if err := rows.Scan(&m.Food, &m.Protein, &m.Calories); err != nil {
			return nil, err
		}
		meals = append(meals, m)
	}
	return meals, rows.Err()
}

func (r *sqliteRepository) UpsertProfile(ctx context.Context, profile *model.UserProfile) error {
	allergies, err := json.Marshal(emptyIfNil(profile.Allergies))
	if err != nil {
		return fmt.Errorf("could not encode allergies: %w", err)
	}
	disliked, err := json.Marshal(emptyIfNil(profile.DislikedFoods))
	if err != nil {
		return fmt.Errorf("could not encode disliked foods: %w", err)
	}
	history := profile.ProteinHistory
	if history == nil {
		history = map[string]float64{}
	}
	historyJSON, err := json.Marshal(history)
	if err != nil {
		return fmt.Errorf("could not encode protein history: %w", err)
	}

	query := `
		INSERT INTO profiles (user_id, allergies, disliked_foods, diet_type, surgery_date, activity_level,
		                      weight_kg, height_cm, date_of_birth, protein_total, protein_history, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(user_id) DO UPDATE SET
			allergies = excluded.allergies,
			disliked_foods = excluded.disliked_foods,
			diet_type = excluded.diet_type,
			surgery_date = excluded.surgery_date,
			activity_level = excluded.activity_level,
			weight_kg = excluded.weight_kg,
			height_cm = excluded.height_cm,
			date_of_birth = excluded.date_of_birth,
			updated_at = excluded.updated_at
	`
	_, err = r.db.ExecContext(ctx, query,
		profile.UserID, string(allergies), string(disliked), profile.DietType, profile.SurgeryDate,
		profile.ActivityLevel, profile.WeightKg, profile.HeightCm, profile.DateOfBirth,
		profile.ProteinTotal, string(historyJSON), time.Now().UTC())
	return err
}

// AppendLoggedMeal inserts the meal and bumps the protein counters inside a
// transaction so concurrent turns for the same user merge instead of clobber.
func (r *sqliteRepository) AppendLoggedMeal(ctx context.Context, userID string, meal model.LoggedMeal, day string) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("could not begin transaction: %w", err)
	}
	defer tx.Rollback()

	insertQuery := `
		INSERT INTO meals (id, user_id, food, protein, calories, logged_on, logged_at)
		VALUES (?, ?, ?, ?, ?, ?, ?)
	`
	_, err = tx.ExecContext(ctx, insertQuery,
		uuid.NewString(), userID, meal.Food, meal.Protein, meal.Calories, day, time.Now().UTC())
	if err != nil {
		return fmt.Errorf("could not insert meal: %w", err)
	}

	var history string
	row := tx.QueryRowContext(ctx, "SELECT protein_history FROM profiles WHERE user_id = ?", userID)
	if err := row.Scan(&history); err != nil {
		if err == sql.ErrNoRows {
			return ErrNotFound
		}
		return err
	}
	totals := map[string]float64{}
	if err := json.Unmarshal([]byte(history), &totals); err != nil {
		return fmt.Errorf("could not decode protein history: %w", err)
	}
	totals[day] += meal.Protein
	updated, err := json.Marshal(totals)
	if err != nil {
		return fmt.Errorf("could not encode protein history: %w", err)
	}

	updateQuery := `
		UPDATE profiles
		SET protein_total = protein_total + ?, protein_history = ?, updated_at = ?
		WHERE user_id = ?
	`
	_, err = tx.ExecContext(ctx, updateQuery, meal.Protein, string(updated), time.Now().UTC(), userID)
	if err != nil {
		return fmt.Errorf("could not update protein totals: %w", err)
	}

	return tx.Commit()
}

func (r *sqliteRepository) GetPatient(ctx context.Context, patientID string) (*model.PatientRecord, error) {
	query := `
		SELECT id, name, age, surgery_type, surgery_date, current_weight, starting_weight, bmi, status
		FROM patients WHERE id = ?
	`
	row := r.db.QueryRowContext(ctx, query, patientID)

	var p model.PatientRecord
	var age sql.NullInt64
	var surgeryType, surgeryDate, status sql.NullString
	var currentWeight, startingWeight, bmi sql.NullFloat64

	err := row.Scan(&p.ID, &p.Name, &age, &surgeryType, &surgeryDate, &currentWeight, &startingWeight, &bmi, &status)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, ErrNotFound
		}
		return nil, err
	}

	if age.Valid {
		p.Age = int(age.Int64)
	}
	if surgeryType.Valid {
		p.SurgeryType = surgeryType.String
	}
	if surgeryDate.Valid {
		p.SurgeryDate = surgeryDate.String
	}
	if currentWeight.Valid {
		p.CurrentWeight = currentWeight.Float64
	}
	if startingWeight.Valid {
		p.StartingWeight = startingWeight.Float64
	}
	if bmi.Valid {
		p.BMI = bmi.Float64
	}
	if status.Valid {
		p.Status = status.String
	}

	return &p, nil
}

func (r *sqliteRepository) GetMemory(ctx context.Context, userID string) (*model.Memory, error) {
	row := r.db.QueryRowContext(ctx, "SELECT memory FROM memories WHERE user_id = ?", userID)
	var raw string
	if err := row.Scan(&raw); err != nil {
		if err == sql.ErrNoRows {
			return nil, ErrNotFound
		}
		return nil, err
	}
	mem := model.NewMemory()
	if err := json.Unmarshal([]byte(raw), mem); err != nil {
		return nil, fmt.Errorf("could not decode memory: %w", err)
	}
	return mem, nil
}

func (r *sqliteRepository) SaveMemory(ctx context.Context, userID string, memory *model.Memory) error {
	raw, err := json.Marshal(memory)
	if err != nil {
		return fmt.Errorf("could not encode memory: %w", err)
	}
	query := `
		INSERT INTO memories (user_id, memory, updated_at) VALUES (?, ?, ?)
		ON CONFLICT(user_id) DO UPDATE SET memory = excluded.memory, updated_at = excluded.updated_at
	`
	_, err = r.db.ExecContext(ctx, query, userID, string(raw), time.Now().UTC())
	return err
}

func (r *sqliteRepository) GetConversationLog(ctx context.Context, userID string) (*model.ConversationLog, error) {
	row := r.db.QueryRowContext(ctx,
		"SELECT user_prompts, assistant_responses FROM conversation_logs WHERE user_id = ?", userID)
	var prompts, responses string
	if err := row.Scan(&prompts, &responses); err != nil {
		if err == sql.ErrNoRows {
			return nil, ErrNotFound
		}
		return nil, err
	}
	var log model.ConversationLog
	if err := json.Unmarshal([]byte(prompts), &log.RecentUserPrompts); err != nil {
		return nil, fmt.Errorf("could not decode user prompts: %w", err)
	}
	if err := json.Unmarshal([]byte(responses), &log.RecentAssistantResponses); err != nil {
		return nil, fmt.Errorf("could not decode assistant responses: %w", err)
	}
	return &log, nil
}

func (r *sqliteRepository) SaveConversationLog(ctx context.Context, userID string, log *model.ConversationLog) error {
	prompts, err := json.Marshal(emptyIfNil(log.RecentUserPrompts))
	if err != nil {
		return fmt.Errorf("could not encode user prompts: %w", err)
	}
	responses, err := json.Marshal(emptyIfNil(log.RecentAssistantResponses))
	if err != nil {
		return fmt.Errorf("could not encode assistant responses: %w", err)
	}
	query := `
		INSERT INTO conversation_logs (user_id, user_prompts, assistant_responses, updated_at)
		VALUES (?, ?, ?, ?)
		ON CONFLICT(user_id) DO UPDATE SET
			user_prompts = excluded.user_prompts,
			assistant_responses = excluded.assistant_responses,
			updated_at = excluded.updated_at
	`
	_, err = r.db.ExecContext(ctx, query, userID, string(prompts), string(responses), time.Now().UTC())
	return err
}

func emptyIfNil(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}
