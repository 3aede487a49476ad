package repository

import (
	"context"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"bariatric-gpt/backend/internal/model"
)

func setupRepository(t *testing.T) (Repository, sqlmock.Sqlmock) {
	db, mockDB, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return NewSQLiteRepository(db), mockDB
}

func TestSQLiteRepository_GetMemory(t *testing.T) {
	ctx := context.Background()

	t.Run("decodes the stored memory", func(t *testing.T) {
		repo, mockDB := setupRepository(t)
		mockDB.ExpectQuery("SELECT memory FROM memories").WithArgs("user-1").
			WillReturnRows(sqlmock.NewRows([]string{"memory"}).
				AddRow(`{"preferences":["prefers fish"],"recent_meals":[],"last_recommendations":[],"adherence_notes":[],"important_notes":[]}`))

		memory, err := repo.GetMemory(ctx, "user-1")

		require.NoError(t, err)
		assert.Equal(t, []string{"prefers fish"}, memory.Preferences)
		assert.NotNil(t, memory.RecentMeals)
	})

	t.Run("missing row is ErrNotFound", func(t *testing.T) {
		repo, mockDB := setupRepository(t)
		mockDB.ExpectQuery("SELECT memory FROM memories").WithArgs("ghost").
			WillReturnRows(sqlmock.NewRows([]string{"memory"}))

		_, err := repo.GetMemory(ctx, "ghost")

		assert.ErrorIs(t, err, ErrNotFound)
	})
}

func TestSQLiteRepository_SaveConversationLog(t *testing.T) {
	repo, mockDB := setupRepository(t)
	mockDB.ExpectExec("INSERT INTO conversation_logs").
		WithArgs("user-1", `["lunch ideas?"]`, `["1) Chicken salad"]`, sqlmock.AnyArg()).
		WillReturnResult(sqlmock.NewResult(1, 1))

	err := repo.SaveConversationLog(context.Background(), "user-1", &model.ConversationLog{
		RecentUserPrompts:        []string{"lunch ideas?"},
		RecentAssistantResponses: []string{"1) Chicken salad"},
	})

	require.NoError(t, err)
	assert.NoError(t, mockDB.ExpectationsWereMet())
}

func TestSQLiteRepository_GetConversationLog(t *testing.T) {
	repo, mockDB := setupRepository(t)
	mockDB.ExpectQuery("SELECT user_prompts, assistant_responses FROM conversation_logs").
		WithArgs("user-1").
		WillReturnRows(sqlmock.NewRows([]string{"user_prompts", "assistant_responses"}).
			AddRow(`["a","b"]`, `["x","y"]`))

	log, err := repo.GetConversationLog(context.Background(), "user-1")

	require.NoError(t, err)
	assert.Equal(t, []string{"a", "b"}, log.RecentUserPrompts)
	assert.Equal(t, []string{"x", "y"}, log.RecentAssistantResponses)
}

func TestSQLiteRepository_AppendLoggedMeal(t *testing.T) {
	ctx := context.Background()
	meal := model.LoggedMeal{Food: "Grilled chicken salad", Protein: 32, Calories: 350}

	t.Run("inserts the meal and bumps protein totals in one transaction", func(t *testing.T) {
		repo, mockDB := setupRepository(t)

		mockDB.ExpectBegin()
		mockDB.ExpectExec("INSERT INTO meals").
			WithArgs(sqlmock.AnyArg(), "user-1", "Grilled chicken salad", 32.0, 350.0, "2026-09-01", sqlmock.AnyArg()).
			WillReturnResult(sqlmock.NewResult(1, 1))
		mockDB.ExpectQuery("SELECT protein_history FROM profiles").WithArgs("user-1").
			WillReturnRows(sqlmock.NewRows([]string{"protein_history"}).AddRow(`{"2026-08-31":40}`))
		mockDB.ExpectExec("UPDATE profiles").
			WithArgs(32.0, `{"2026-08-31":40,"2026-09-01":32}`, sqlmock.AnyArg(), "user-1").
			WillReturnResult(sqlmock.NewResult(1, 1))
		mockDB.ExpectCommit()

		err := repo.AppendLoggedMeal(ctx, "user-1", meal, "2026-09-01")

		require.NoError(t, err)
		assert.NoError(t, mockDB.ExpectationsWereMet())
	})

	t.Run("missing profile rolls back with ErrNotFound", func(t *testing.T) {
		repo, mockDB := setupRepository(t)

		mockDB.ExpectBegin()
		mockDB.ExpectExec("INSERT INTO meals").
			WillReturnResult(sqlmock.NewResult(1, 1))
		mockDB.ExpectQuery("SELECT protein_history FROM profiles").WithArgs("ghost").
			WillReturnRows(sqlmock.NewRows([]string{"protein_history"}))
		mockDB.ExpectRollback()

		err := repo.AppendLoggedMeal(ctx, "ghost", meal, "2026-09-01")

		assert.ErrorIs(t, err, ErrNotFound)
	})
}

func TestSQLiteRepository_GetPatient_NotFound(t *testing.T) {
	repo, mockDB := setupRepository(t)
	mockDB.ExpectQuery("SELECT id, name, age, surgery_type").WithArgs("ghost").
		WillReturnRows(sqlmock.NewRows([]string{
			"id", "name", "age", "surgery_type", "surgery_date",
			"current_weight", "starting_weight", "bmi", "status",
		}))

	_, err := repo.GetPatient(context.Background(), "ghost")

	assert.ErrorIs(t, err, ErrNotFound)
}
