package patient

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/go-resty/resty/v2"

	"bariatric-gpt/backend/internal/model"
	"bariatric-gpt/backend/internal/repository"
)

// httpProvider fetches patient records from a remote storage service over
// HTTP. Deployments that split storage into its own service point this at
// that service's /api/v1/patients endpoints.
type httpProvider struct {
	client *resty.Client
}

func NewHTTPProvider(baseURL string) DataProvider {
	client := resty.New().
		SetBaseURL(baseURL).
		SetTimeout(10 * time.Second)
	return &httpProvider{client: client}
}

func (p *httpProvider) GetPatientData(ctx context.Context, patientID string) (*model.PatientRecord, error) {
	var record model.PatientRecord
	resp, err := p.client.R().
		SetContext(ctx).
		SetResult(&record).
		SetPathParam("patientID", patientID).
		Get("/api/v1/patients/{patientID}")
	if err != nil {
		return nil, fmt.Errorf("patient lookup request failed: %w", err)
	}

	switch resp.StatusCode() {
	case http.StatusOK:
		return &record, nil
	case http.StatusNotFound:
		return nil, repository.ErrNotFound
	default:
		return nil, fmt.Errorf("patient lookup returned status %d", resp.StatusCode())
	}
}
