package model

import "time"

// LoggedMeal is a single meal entry in the user's daily log.
type LoggedMeal struct {
	Food     string  `json:"food"`
	Protein  float64 `json:"protein"`
	Calories float64 `json:"calories"`
}

// UserProfile is the canonical user record owned by the storage layer.
// The chat pipeline reads it and only mutates the meal log / protein
// totals as a side effect of "record that meal" flows.
type UserProfile struct {
	UserID         string             `json:"user_id"`
	Allergies      []string           `json:"allergies"`
	DislikedFoods  []string           `json:"disliked_foods"`
	DietType       string             `json:"diet_type,omitempty"`
	SurgeryDate    string             `json:"surgery_date,omitempty"`
	ActivityLevel  string             `json:"activity_level,omitempty"`
	WeightKg       float64            `json:"weight_kg,omitempty"`
	HeightCm       float64            `json:"height_cm,omitempty"`
	DateOfBirth    string             `json:"date_of_birth,omitempty"`
	TodaysMeals    []LoggedMeal       `json:"todays_meals"`
	ProteinTotal   float64            `json:"protein_total"`
	ProteinHistory map[string]float64 `json:"protein_history,omitempty"`
	UpdatedAt      time.Time          `json:"updated_at"`
}

// LogWindow is the fixed depth of each conversation log sequence.
const LogWindow = 5

// ConversationLog is the bounded rolling window of recent turns.
// Both sequences hold at most LogWindow entries, oldest first.
type ConversationLog struct {
	RecentUserPrompts        []string `json:"recent_user_prompts"`
	RecentAssistantResponses []string `json:"recent_assistant_responses"`
}

// Memory is the structured per-user summary persisted between turns.
// It always carries exactly these five keys.
type Memory struct {
	Preferences         []string `json:"preferences"`
	RecentMeals         []string `json:"recent_meals"`
	LastRecommendations []string `json:"last_recommendations"`
	AdherenceNotes      []string `json:"adherence_notes"`
	ImportantNotes      []string `json:"important_notes"`
}

// NewMemory returns an empty memory with all five keys materialized so
// the JSON encoding never omits one.
func NewMemory() *Memory {
	return &Memory{
		Preferences:         []string{},
		RecentMeals:         []string{},
		LastRecommendations: []string{},
		AdherenceNotes:      []string{},
		ImportantNotes:      []string{},
	}
}

// PatientRecord is the structured medical record returned by the
// patient data accessor.
type PatientRecord struct {
	ID             string  `json:"id"`
	Name           string  `json:"name"`
	Age            int     `json:"age,omitempty"`
	SurgeryType    string  `json:"surgery_type,omitempty"`
	SurgeryDate    string  `json:"surgery_date,omitempty"`
	CurrentWeight  float64 `json:"current_weight,omitempty"`
	StartingWeight float64 `json:"starting_weight,omitempty"`
	BMI            float64 `json:"bmi,omitempty"`
	Status         string  `json:"status,omitempty"`
}

// RemovedItem records a suggestion line dropped by the safety filter.
// It is returned to the caller for auditing and display.
type RemovedItem struct {
	Item   string `json:"item"`
	Reason string `json:"reason"`
}

// TurnResult is the transient output of one chat turn. The handler
// persists Memory and Log, and returns the rest to the client.
type TurnResult struct {
	TurnID        string           `json:"turn_id"`
	FinalResponse string           `json:"final_response"`
	FinalMarkdown string           `json:"final_response_readme"`
	Memory        *Memory          `json:"-"`
	Log           *ConversationLog `json:"conversation_log"`
	RemovedItems  []RemovedItem    `json:"removed_items,omitempty"`
	Clarification bool             `json:"-"`
}
