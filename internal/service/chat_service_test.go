package service

import (
	"context"
	"errors"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	app_errors "bariatric-gpt/backend/internal/errors"
	"bariatric-gpt/backend/internal/llm"
	mock_llm "bariatric-gpt/backend/internal/llm/mocks"
	"bariatric-gpt/backend/internal/model"
	mock_patient "bariatric-gpt/backend/internal/patient/mocks"
	"bariatric-gpt/backend/internal/repository"
	mock_repo "bariatric-gpt/backend/internal/repository/mocks"
)

type chatServiceMocks struct {
	repo     *mock_repo.MockRepository
	llm      *mock_llm.MockLLMProvider
	patients *mock_patient.MockDataProvider
	db       sqlmock.Sqlmock
}

func setupChatService(t *testing.T, patientTools bool) (*ChatService, *chatServiceMocks) {
	db, mockDB, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	mocks := &chatServiceMocks{
		repo:     mock_repo.NewMockRepository(t),
		llm:      mock_llm.NewMockLLMProvider(t),
		patients: mock_patient.NewMockDataProvider(t),
		db:       mockDB,
	}
	settings := NewSettingsService(db, mocks.llm)
	svc := NewChatService(mocks.repo, mocks.llm, mocks.patients, settings, patientTools)
	return svc, mocks
}

func expectSettings(mocks *chatServiceMocks) {
	rows := sqlmock.NewRows([]string{"key", "value"}).
		AddRow("system_prompt", "You are a bariatric care assistant.").
		AddRow("main_model", "main-model").
		AddRow("support_model", "support-model")
	mocks.db.ExpectQuery("SELECT key, value FROM settings").WillReturnRows(rows)
}

func mainModelCall(req *llm.GenerateRequest) bool    { return req.Model == "main-model" }
func supportModelCall(req *llm.GenerateRequest) bool { return req.Model == "support-model" }

func TestHandleTurn_HappyPathFiltersAllergens(t *testing.T) {
	svc, mocks := setupChatService(t, false)
	ctx := context.Background()

	expectSettings(mocks)
	mocks.repo.On("GetProfile", ctx, "user-1").
		Return(&model.UserProfile{UserID: "user-1", Allergies: []string{"peanuts"}}, nil).Once()
	mocks.repo.On("GetMemory", ctx, "user-1").Return(nil, repository.ErrNotFound).Once()

	mocks.llm.On("Generate", ctx, mock.MatchedBy(mainModelCall)).
		Return(&llm.GenerateResponse{Response: "Here are some lunch ideas:\n" +
			"1) Peanut butter toast (12g protein, 320 kcal)\n" +
			"2) Grilled chicken salad (32g protein, 350 kcal)\n" +
			"3) Lentil soup (18g protein, 280 kcal)"}, nil).Once()
	mocks.llm.On("Generate", ctx, mock.MatchedBy(supportModelCall)).
		Return(&llm.GenerateResponse{Response: "{}"}, nil).Once()

	result, err := svc.HandleTurn(ctx, &TurnRequest{
		Message: "What should I eat for lunch?",
		UserID:  "user-1",
		Log:     &model.ConversationLog{},
	})

	require.NoError(t, err)
	assert.NotEmpty(t, result.TurnID)
	assert.False(t, result.Clarification)

	require.Len(t, result.RemovedItems, 1)
	assert.Equal(t, "Peanut butter toast (12g protein, 320 kcal)", result.RemovedItems[0].Item)
	assert.Equal(t, "contains allergen peanuts", result.RemovedItems[0].Reason)

	// Surviving items are renumbered from one in both encodings.
	assert.Contains(t, result.FinalResponse, "1) Grilled chicken salad")
	assert.Contains(t, result.FinalResponse, "2) Lentil soup")
	assert.NotContains(t, result.FinalResponse, "Peanut butter")
	assert.Contains(t, result.FinalMarkdown, "1. Grilled chicken salad")

	assert.Equal(t, []string{
		"Grilled chicken salad (32g protein, 350 kcal)",
		"Lentil soup (18g protein, 280 kcal)",
	}, result.Memory.LastRecommendations)

	require.Len(t, result.Log.RecentUserPrompts, 1)
	assert.Equal(t, "What should I eat for lunch?", result.Log.RecentUserPrompts[0])
	assert.Equal(t, result.FinalResponse, result.Log.RecentAssistantResponses[0])
}

func TestHandleTurn_AmbiguousReferenceShortCircuits(t *testing.T) {
	svc, mocks := setupChatService(t, false)
	ctx := context.Background()

	expectSettings(mocks)
	mocks.repo.On("GetProfile", ctx, "user-1").
		Return(&model.UserProfile{UserID: "user-1"}, nil).Once()
	mocks.repo.On("GetMemory", ctx, "user-1").
		Return(&model.Memory{Preferences: []string{"prefers fish"}}, nil).Once()

	// No list in the previous response, so "the second option" cannot
	// resolve. The model must not be called at all.
	result, err := svc.HandleTurn(ctx, &TurnRequest{
		Message: "the second option",
		UserID:  "user-1",
		Log: &model.ConversationLog{
			RecentUserPrompts:        []string{"hi"},
			RecentAssistantResponses: []string{"How can I help you today?"},
		},
	})

	require.NoError(t, err)
	assert.True(t, result.Clarification)
	assert.Equal(t, clarifyResponse, result.FinalResponse)
	assert.Empty(t, result.RemovedItems)

	// The turn still lands in the log, and memory passes through unchanged.
	assert.Equal(t, []string{"hi", "the second option"}, result.Log.RecentUserPrompts)
	assert.Equal(t, []string{"prefers fish"}, result.Memory.Preferences)
}

func TestHandleTurn_ResolvesOrdinalAgainstStoredLog(t *testing.T) {
	svc, mocks := setupChatService(t, false)
	ctx := context.Background()

	expectSettings(mocks)
	mocks.repo.On("GetProfile", ctx, "user-1").
		Return(&model.UserProfile{UserID: "user-1"}, nil).Once()
	mocks.repo.On("GetConversationLog", ctx, "user-1").
		Return(&model.ConversationLog{
			RecentUserPrompts:        []string{"lunch ideas?"},
			RecentAssistantResponses: []string{"1) Chicken salad\n2) Vegetable quinoa bowl\n3) Lentil soup"},
		}, nil).Once()
	mocks.repo.On("GetMemory", ctx, "user-1").Return(model.NewMemory(), nil).Once()

	mocks.llm.On("Generate", ctx, mock.MatchedBy(func(req *llm.GenerateRequest) bool {
		last := req.Messages[len(req.Messages)-1]
		return req.Model == "main-model" && last.Content == "Vegetable quinoa bowl"
	})).Return(&llm.GenerateResponse{Response: "Great pick. A quinoa bowl gives you about 15g of protein."}, nil).Once()
	mocks.llm.On("Generate", ctx, mock.MatchedBy(supportModelCall)).
		Return(&llm.GenerateResponse{Response: "{}"}, nil).Once()

	result, err := svc.HandleTurn(ctx, &TurnRequest{Message: "the second option", UserID: "user-1"})

	require.NoError(t, err)
	// The log records the preprocessed message, not the raw shorthand.
	assert.Equal(t, "Vegetable quinoa bowl", result.Log.RecentUserPrompts[len(result.Log.RecentUserPrompts)-1])
}

func TestHandleTurn_MissingProfile(t *testing.T) {
	svc, mocks := setupChatService(t, false)
	ctx := context.Background()

	expectSettings(mocks)
	mocks.repo.On("GetProfile", ctx, "ghost").Return(nil, repository.ErrNotFound).Once()

	result, err := svc.HandleTurn(ctx, &TurnRequest{Message: "hello", UserID: "ghost", Log: &model.ConversationLog{}})

	require.Error(t, err)
	assert.Nil(t, result)
	assert.ErrorIs(t, err, app_errors.ErrNotFound)
}

func TestHandleTurn_GenerationFailure(t *testing.T) {
	svc, mocks := setupChatService(t, false)
	ctx := context.Background()

	expectSettings(mocks)
	mocks.repo.On("GetProfile", ctx, "user-1").
		Return(&model.UserProfile{UserID: "user-1"}, nil).Once()
	mocks.repo.On("GetMemory", ctx, "user-1").Return(model.NewMemory(), nil).Once()
	mocks.llm.On("Generate", ctx, mock.MatchedBy(mainModelCall)).
		Return(nil, errors.New("connection refused")).Once()

	result, err := svc.HandleTurn(ctx, &TurnRequest{Message: "What should I eat?", UserID: "user-1", Log: &model.ConversationLog{}})

	require.Error(t, err)
	assert.Nil(t, result)
	assert.ErrorIs(t, err, app_errors.ErrUpstream)
}

func TestHandleTurn_PatientLookupDegradesGracefully(t *testing.T) {
	svc, mocks := setupChatService(t, true)
	ctx := context.Background()

	expectSettings(mocks)
	mocks.repo.On("GetProfile", ctx, "user-1").
		Return(&model.UserProfile{UserID: "user-1"}, nil).Once()
	mocks.repo.On("GetMemory", ctx, "user-1").Return(model.NewMemory(), nil).Once()
	mocks.patients.On("GetPatientData", ctx, "patient-9").
		Return(nil, errors.New("storage service unreachable")).Once()

	mocks.llm.On("Generate", ctx, mock.MatchedBy(mainModelCall)).
		Return(&llm.GenerateResponse{Response: "Your last recorded weight was 92 kg."}, nil).Once()
	mocks.llm.On("Generate", ctx, mock.MatchedBy(supportModelCall)).
		Return(&llm.GenerateResponse{Response: "{}"}, nil).Once()

	result, err := svc.HandleTurn(ctx, &TurnRequest{
		Message:   "What is my current weight?",
		UserID:    "user-1",
		PatientID: "patient-9",
		Log:       &model.ConversationLog{},
	})

	require.NoError(t, err)
	assert.Equal(t, "Your last recorded weight was 92 kg.", result.FinalResponse)
}

func TestHandleTurn_PatientToolsDisabledSkipsLookup(t *testing.T) {
	svc, mocks := setupChatService(t, false)
	ctx := context.Background()

	expectSettings(mocks)
	mocks.repo.On("GetProfile", ctx, "user-1").
		Return(&model.UserProfile{UserID: "user-1"}, nil).Once()
	mocks.repo.On("GetMemory", ctx, "user-1").Return(model.NewMemory(), nil).Once()

	// No GetPatientData expectation: the mock fails the test if the
	// accessor is consulted while the feature flag is off.
	mocks.llm.On("Generate", ctx, mock.MatchedBy(mainModelCall)).
		Return(&llm.GenerateResponse{Response: "I can't access patient records right now."}, nil).Once()
	mocks.llm.On("Generate", ctx, mock.MatchedBy(supportModelCall)).
		Return(&llm.GenerateResponse{Response: "{}"}, nil).Once()

	_, err := svc.HandleTurn(ctx, &TurnRequest{
		Message:   "What is my current weight?",
		UserID:    "user-1",
		PatientID: "patient-9",
		Log:       &model.ConversationLog{},
	})

	require.NoError(t, err)
}

func TestHandleTurn_RecordMeal(t *testing.T) {
	svc, mocks := setupChatService(t, false)
	ctx := context.Background()

	expectSettings(mocks)
	mocks.repo.On("GetProfile", ctx, "user-1").
		Return(&model.UserProfile{UserID: "user-1"}, nil).Once()
	mocks.repo.On("GetMemory", ctx, "user-1").
		Return(&model.Memory{LastRecommendations: []string{"Grilled chicken salad (32g protein, 350 kcal)"}}, nil).Once()
	mocks.repo.On("AppendLoggedMeal", ctx, "user-1", mock.MatchedBy(func(meal model.LoggedMeal) bool {
		return meal.Food == "Grilled chicken salad" && meal.Protein == 32 && meal.Calories == 350
	}), mock.AnythingOfType("string")).Return(nil).Once()

	result, err := svc.HandleTurn(ctx, &TurnRequest{Message: "record that meal", UserID: "user-1", Log: &model.ConversationLog{}})

	require.NoError(t, err)
	assert.Equal(t, "Recorded Grilled chicken salad (32g protein) in today's meal log.", result.FinalResponse)
	assert.Contains(t, result.Memory.RecentMeals, "Grilled chicken salad")
}

func TestHandleTurn_RecordMealWithoutTargetClarifies(t *testing.T) {
	svc, mocks := setupChatService(t, false)
	ctx := context.Background()

	expectSettings(mocks)
	mocks.repo.On("GetProfile", ctx, "user-1").
		Return(&model.UserProfile{UserID: "user-1"}, nil).Once()
	mocks.repo.On("GetMemory", ctx, "user-1").Return(model.NewMemory(), nil).Once()

	result, err := svc.HandleTurn(ctx, &TurnRequest{Message: "record that meal", UserID: "user-1", Log: &model.ConversationLog{}})

	require.NoError(t, err)
	assert.True(t, result.Clarification)
	assert.Equal(t, "Which meal would you like me to record?", result.FinalResponse)
}
