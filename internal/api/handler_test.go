package api

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	app_errors "bariatric-gpt/backend/internal/errors"
	mock_interfaces "bariatric-gpt/backend/internal/interfaces/mocks"
	"bariatric-gpt/backend/internal/model"
	"bariatric-gpt/backend/internal/service"
)

type apiMocks struct {
	chat     *mock_interfaces.MockChatService
	profiles *mock_interfaces.MockProfileService
	settings *mock_interfaces.MockSettingsService
	models   *mock_interfaces.MockModelService
}

func setupRouter(t *testing.T, serviceKey string) (http.Handler, *apiMocks) {
	mocks := &apiMocks{
		chat:     mock_interfaces.NewMockChatService(t),
		profiles: mock_interfaces.NewMockProfileService(t),
		settings: mock_interfaces.NewMockSettingsService(t),
		models:   mock_interfaces.NewMockModelService(t),
	}
	router := NewRouter(
		NewChatHandler(mocks.chat, mocks.profiles, mocks.settings),
		NewProfileHandler(mocks.profiles),
		NewModelHandler(mocks.models),
		serviceKey,
	)
	return router, mocks
}

func doJSON(router http.Handler, method, target string, body any) *httptest.ResponseRecorder {
	var buf bytes.Buffer
	if body != nil {
		_ = json.NewEncoder(&buf).Encode(body)
	}
	req := httptest.NewRequest(method, target, &buf)
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func TestHandleChatTurn(t *testing.T) {
	turnResult := &model.TurnResult{
		TurnID:        "turn-1",
		FinalResponse: "1) Chicken salad\n2) Lentil soup",
		FinalMarkdown: "1. Chicken salad\n2. Lentil soup",
		Memory:        model.NewMemory(),
		Log: &model.ConversationLog{
			RecentUserPrompts:        []string{"lunch ideas?"},
			RecentAssistantResponses: []string{"1) Chicken salad\n2) Lentil soup"},
		},
		RemovedItems: []model.RemovedItem{{Item: "Peanut butter toast", Reason: "contains allergen peanuts"}},
	}

	t.Run("successful turn persists and returns both encodings", func(t *testing.T) {
		router, mocks := setupRouter(t, "")
		mocks.chat.On("HandleTurn", mock.Anything, mock.MatchedBy(func(req *service.TurnRequest) bool {
			return req.Message == "lunch ideas?" && req.UserID == "user-1"
		})).Return(turnResult, nil).Once()
		mocks.profiles.On("PersistTurn", mock.Anything, "user-1", turnResult.Memory, turnResult.Log).
			Return(nil).Once()

		rec := doJSON(router, http.MethodPost, "/api/v1/chat", ChatTurnRequest{
			Message: "lunch ideas?",
			UserID:  "user-1",
		})

		require.Equal(t, http.StatusOK, rec.Code)

		var resp ChatTurnResponse
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		assert.Equal(t, turnResult.FinalResponse, resp.FinalResponse)
		assert.Equal(t, turnResult.FinalMarkdown, resp.FinalMarkdown)
		assert.Len(t, resp.RemovedItems, 1)

		// Memory rides the wire as an embedded JSON string.
		var memory model.Memory
		require.NoError(t, json.Unmarshal([]byte(resp.Memory), &memory))
		assert.NotNil(t, memory.Preferences)
	})

	t.Run("missing message is a validation error", func(t *testing.T) {
		router, _ := setupRouter(t, "")

		rec := doJSON(router, http.MethodPost, "/api/v1/chat", ChatTurnRequest{UserID: "user-1"})

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("unknown user maps to 404", func(t *testing.T) {
		router, mocks := setupRouter(t, "")
		mocks.chat.On("HandleTurn", mock.Anything, mock.Anything).
			Return(nil, fmt.Errorf("%w: no profile for user ghost", app_errors.ErrNotFound)).Once()

		rec := doJSON(router, http.MethodPost, "/api/v1/chat", ChatTurnRequest{Message: "hi", UserID: "ghost"})

		assert.Equal(t, http.StatusNotFound, rec.Code)
	})

	t.Run("generation failure maps to 502", func(t *testing.T) {
		router, mocks := setupRouter(t, "")
		mocks.chat.On("HandleTurn", mock.Anything, mock.Anything).
			Return(nil, fmt.Errorf("%w: generation failed", app_errors.ErrUpstream)).Once()

		rec := doJSON(router, http.MethodPost, "/api/v1/chat", ChatTurnRequest{Message: "hi", UserID: "user-1"})

		assert.Equal(t, http.StatusBadGateway, rec.Code)
	})
}

func TestProfileEndpoints(t *testing.T) {
	t.Run("get profile", func(t *testing.T) {
		router, mocks := setupRouter(t, "")
		mocks.profiles.On("GetProfile", mock.Anything, "user-1").
			Return(&model.UserProfile{UserID: "user-1"}, nil).Once()

		rec := doJSON(router, http.MethodGet, "/api/v1/profiles/user-1", nil)

		require.Equal(t, http.StatusOK, rec.Code)

		var profile model.UserProfile
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &profile))
		assert.Equal(t, "user-1", profile.UserID)
	})

	t.Run("upsert profile takes the id from the path", func(t *testing.T) {
		router, mocks := setupRouter(t, "")
		mocks.profiles.On("UpsertProfile", mock.Anything, mock.MatchedBy(func(p *model.UserProfile) bool {
			return p.UserID == "user-1" && len(p.Allergies) == 1
		})).Return(nil).Once()

		rec := doJSON(router, http.MethodPut, "/api/v1/profiles/user-1", model.UserProfile{
			Allergies: []string{"peanuts"},
		})

		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("missing patient maps to 404", func(t *testing.T) {
		router, mocks := setupRouter(t, "")
		mocks.profiles.On("GetPatient", mock.Anything, "ghost").
			Return(nil, fmt.Errorf("%w: patient ghost", app_errors.ErrNotFound)).Once()

		rec := doJSON(router, http.MethodGet, "/api/v1/patients/ghost", nil)

		assert.Equal(t, http.StatusNotFound, rec.Code)
	})
}

func TestMemoryEndpointRequiresServiceKey(t *testing.T) {
	t.Run("missing key is forbidden", func(t *testing.T) {
		router, _ := setupRouter(t, "secret")

		rec := doJSON(router, http.MethodGet, "/api/v1/memory/user-1", nil)

		assert.Equal(t, http.StatusForbidden, rec.Code)
	})

	t.Run("empty configured key denies all callers", func(t *testing.T) {
		router, _ := setupRouter(t, "")

		req := httptest.NewRequest(http.MethodGet, "/api/v1/memory/user-1", nil)
		req.Header.Set("X-Service-Key", "")
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusForbidden, rec.Code)
	})

	t.Run("valid key reads the memory", func(t *testing.T) {
		router, mocks := setupRouter(t, "secret")
		mocks.profiles.On("GetMemory", mock.Anything, "user-1").
			Return(model.NewMemory(), nil).Once()

		req := httptest.NewRequest(http.MethodGet, "/api/v1/memory/user-1", nil)
		req.Header.Set("X-Service-Key", "secret")
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)

		require.Equal(t, http.StatusOK, rec.Code)

		var memory model.Memory
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &memory))
		assert.NotNil(t, memory.LastRecommendations)
	})
}

func TestSettingsEndpoints(t *testing.T) {
	t.Run("get settings", func(t *testing.T) {
		router, mocks := setupRouter(t, "")
		mocks.settings.On("Get", mock.Anything).
			Return(&service.Settings{MainModel: "llama3.2:3b"}, nil).Once()

		rec := doJSON(router, http.MethodGet, "/api/v1/settings", nil)

		require.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), "llama3.2:3b")
	})

	t.Run("invalid model choice maps to 400", func(t *testing.T) {
		router, mocks := setupRouter(t, "")
		mocks.settings.On("Save", mock.Anything, mock.Anything).
			Return(fmt.Errorf("%w: main model 'x' is not installed", app_errors.ErrValidation)).Once()

		rec := doJSON(router, http.MethodPost, "/api/v1/settings", service.Settings{MainModel: "x"})

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

func TestHealthz(t *testing.T) {
	router, _ := setupRouter(t, "")

	rec := doJSON(router, http.MethodGet, "/healthz", nil)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"status":"ok"}`, rec.Body.String())
}
