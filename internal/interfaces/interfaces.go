package interfaces

import (
	"context"

	"bariatric-gpt/backend/internal/llm"
	"bariatric-gpt/backend/internal/model"
	"bariatric-gpt/backend/internal/service"
)

// This file defines the interfaces for our core services.
// Depending on these interfaces, instead of concrete implementations, allows for
// decoupling (e.g., API layer from Service layer) and easier testing via mocking.

// ChatService defines the contract for the per-turn conversation pipeline.
type ChatService interface {
	HandleTurn(ctx context.Context, req *service.TurnRequest) (*model.TurnResult, error)
}

// ProfileService defines the contract for the storage-facing business logic.
type ProfileService interface {
	GetProfile(ctx context.Context, userID string) (*model.UserProfile, error)
	UpsertProfile(ctx context.Context, profile *model.UserProfile) error
	GetPatient(ctx context.Context, patientID string) (*model.PatientRecord, error)
	GetMemory(ctx context.Context, userID string) (*model.Memory, error)
	PersistTurn(ctx context.Context, userID string, memory *model.Memory, log *model.ConversationLog) error
}

// SettingsService defines the contract for managing application settings.
type SettingsService interface {
	Get(ctx context.Context) (*service.Settings, error)
	Save(ctx context.Context, settings *service.Settings) error
}

// ModelService defines the contract for model runtime inspection.
type ModelService interface {
	List(ctx context.Context) (*llm.ListModelsResponse, error)
}
