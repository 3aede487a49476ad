package patient

import (
	"context"

	"bariatric-gpt/backend/internal/model"
)

// DataProvider fetches structured patient data. Implementations must
// return repository-style not-found as ErrNotFound so the pipeline can
// degrade instead of failing the turn.
type DataProvider interface {
	GetPatientData(ctx context.Context, patientID string) (*model.PatientRecord, error)
}
