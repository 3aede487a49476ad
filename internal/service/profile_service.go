package service

import (
	"context"
	"errors"
	"fmt"

	app_errors "bariatric-gpt/backend/internal/errors"
	"bariatric-gpt/backend/internal/model"
	"bariatric-gpt/backend/internal/repository"
)

// ProfileService is the storage-facing business layer: user profiles,
// patient records, and the server-side memory store.
type ProfileService struct {
	repo repository.Repository
}

func NewProfileService(repo repository.Repository) *ProfileService {
	return &ProfileService{repo: repo}
}

func (s *ProfileService) GetProfile(ctx context.Context, userID string) (*model.UserProfile, error) {
	profile, err := s.repo.GetProfile(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, fmt.Errorf("%w: profile %s", app_errors.ErrNotFound, userID)
		}
		return nil, fmt.Errorf("could not get profile: %w", err)
	}
	return profile, nil
}

// UpsertProfile validates and writes the profile's scalar fields. The
// meal log and protein totals are owned by the chat side effects and are
// not overwritten here.
func (s *ProfileService) UpsertProfile(ctx context.Context, profile *model.UserProfile) error {
	if profile.UserID == "" {
		return fmt.Errorf("%w: user id is required", app_errors.ErrValidation)
	}
	if err := s.repo.UpsertProfile(ctx, profile); err != nil {
		return fmt.Errorf("could not save profile: %w", err)
	}
	return nil
}

func (s *ProfileService) GetPatient(ctx context.Context, patientID string) (*model.PatientRecord, error) {
	record, err := s.repo.GetPatient(ctx, patientID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, fmt.Errorf("%w: patient %s", app_errors.ErrNotFound, patientID)
		}
		return nil, fmt.Errorf("could not get patient: %w", err)
	}
	return record, nil
}

// GetMemory serves the backend-only memory read. Callers must already be
// past the service-key middleware; end-user clients never reach this.
func (s *ProfileService) GetMemory(ctx context.Context, userID string) (*model.Memory, error) {
	memory, err := s.repo.GetMemory(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, fmt.Errorf("%w: memory for user %s", app_errors.ErrNotFound, userID)
		}
		return nil, fmt.Errorf("could not get memory: %w", err)
	}
	return memory, nil
}

// PersistTurn writes the memory and conversation log produced by a
// completed turn. It is called only after the full pipeline returned, so
// an aborted request never leaves a partial update behind.
func (s *ProfileService) PersistTurn(ctx context.Context, userID string, memory *model.Memory, log *model.ConversationLog) error {
	if err := s.repo.SaveMemory(ctx, userID, memory); err != nil {
		return fmt.Errorf("could not persist memory: %w", err)
	}
	if err := s.repo.SaveConversationLog(ctx, userID, log); err != nil {
		return fmt.Errorf("could not persist conversation log: %w", err)
	}
	return nil
}
