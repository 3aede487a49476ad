package patient

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"bariatric-gpt/backend/internal/repository"
)

func TestHTTPProvider_GetPatientData(t *testing.T) {
	t.Run("decodes a found record", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "/api/v1/patients/patient-7", r.URL.Path)
			w.Header().Set("Content-Type", "application/json")
			_, _ = w.Write([]byte(`{"id":"patient-7","name":"Jordan Lee","surgery_type":"gastric sleeve","current_weight":92.5}`))
		}))
		defer server.Close()

		provider := NewHTTPProvider(server.URL)
		record, err := provider.GetPatientData(context.Background(), "patient-7")

		require.NoError(t, err)
		assert.Equal(t, "patient-7", record.ID)
		assert.Equal(t, "gastric sleeve", record.SurgeryType)
		assert.Equal(t, 92.5, record.CurrentWeight)
	})

	t.Run("404 maps to ErrNotFound", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			http.NotFound(w, r)
		}))
		defer server.Close()

		provider := NewHTTPProvider(server.URL)
		_, err := provider.GetPatientData(context.Background(), "ghost")

		assert.ErrorIs(t, err, repository.ErrNotFound)
	})

	t.Run("server errors are reported", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			http.Error(w, "boom", http.StatusInternalServerError)
		}))
		defer server.Close()

		provider := NewHTTPProvider(server.URL)
		_, err := provider.GetPatientData(context.Background(), "patient-7")

		require.Error(t, err)
		assert.Contains(t, err.Error(), "500")
	})
}
