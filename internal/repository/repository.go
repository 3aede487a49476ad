package repository

import (
	"context"

	"bariatric-gpt/backend/internal/model"
)

// Repository defines the interface for data storage operations.
// This interface makes it easy to switch database implementations.
type Repository interface {
	GetProfile(ctx context.Context, userID string) (*model.UserProfile, error)
	UpsertProfile(ctx context.Context, profile *model.UserProfile) error
	// AppendLoggedMeal records a meal and increments the protein totals in one
	// transaction. It is a merge, not an overwrite, so concurrent turns for
	// the same user cannot lose each other's meals.
	AppendLoggedMeal(ctx context.Context, userID string, meal model.LoggedMeal, day string) error

	GetPatient(ctx context.Context, patientID string) (*model.PatientRecord, error)

	GetMemory(ctx context.Context, userID string) (*model.Memory, error)
	SaveMemory(ctx context.Context, userID string, memory *model.Memory) error

	GetConversationLog(ctx context.Context, userID string) (*model.ConversationLog, error)
	SaveConversationLog(ctx context.Context, userID string, log *model.ConversationLog) error
}
