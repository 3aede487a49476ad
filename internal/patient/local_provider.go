package patient

import (
	"context"

	"bariatric-gpt/backend/internal/model"
	"bariatric-gpt/backend/internal/repository"
)

// localProvider serves patient records straight from the storage layer.
// Used when the storage service runs inside the same binary.
type localProvider struct {
	repo repository.Repository
}

func NewLocalProvider(repo repository.Repository) DataProvider {
	return &localProvider{repo: repo}
}

func (p *localProvider) GetPatientData(ctx context.Context, patientID string) (*model.PatientRecord, error) {
	return p.repo.GetPatient(ctx, patientID)
}
