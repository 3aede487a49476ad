package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"

	app_errors "bariatric-gpt/backend/internal/errors"
	"bariatric-gpt/backend/internal/llm"
	"bariatric-gpt/backend/internal/model"
	"bariatric-gpt/backend/internal/patient"
	"bariatric-gpt/backend/internal/repository"
)

// ChatService runs one chat turn through the pipeline:
// preprocess -> classify -> (patient lookup) -> generate -> filter ->
// memory -> log. Each invocation is stateless and independent; the
// handler persists the returned memory/log only after the whole turn
// succeeds.
type ChatService struct {
	repo                repository.Repository
	llm                 llm.LLMProvider
	patients            patient.DataProvider
	settings            *SettingsService
	memory              memoryExtractor
	patientToolsEnabled bool
}

// TurnRequest is one chat turn as received from the gateway surface.
type TurnRequest struct {
	Message   string
	UserID    string
	PatientID string
	Log       *model.ConversationLog
}

func NewChatService(
	repo repository.Repository,
	llmProvider llm.LLMProvider,
	patients patient.DataProvider,
	settings *SettingsService,
	patientToolsEnabled bool,
) *ChatService {
	return &ChatService{
		repo:                repo,
		llm:                 llmProvider,
		patients:            patients,
		settings:            settings,
		memory:              memoryExtractor{llm: llmProvider},
		patientToolsEnabled: patientToolsEnabled,
	}
}

const clarifyResponse = "I want to make sure I pick the right one - could you tell me " +
	"which option you meant, or repeat it in your own words?"

// HandleTurn processes a single chat turn. Recoverable conditions
// (ambiguous reference, patient lookup miss, everything filtered out) are
// handled inside; only generation failure and a missing profile surface
// as errors.
func (s *ChatService) HandleTurn(ctx context.Context, req *TurnRequest) (*model.TurnResult, error) {
	settings, err := s.settings.Get(ctx)
	if err != nil {
		return nil, fmt.Errorf("could not load application settings: %w", err)
	}

	profile, err := s.repo.GetProfile(ctx, req.UserID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, fmt.Errorf("%w: no profile for user %s", app_errors.ErrNotFound, req.UserID)
		}
		return nil, fmt.Errorf("could not load profile: %w", err)
	}

	log := req.Log
	if log == nil {
		stored, err := s.repo.GetConversationLog(ctx, req.UserID)
		if err != nil && !errors.Is(err, repository.ErrNotFound) {
			return nil, fmt.Errorf("could not load conversation log: %w", err)
		}
		log = stored
	}
	log = NormalizeLog(log)

	priorMemory, err := s.repo.GetMemory(ctx, req.UserID)
	if err != nil {
		if !errors.Is(err, repository.ErrNotFound) {
			return nil, fmt.Errorf("could not load memory: %w", err)
		}
		priorMemory = model.NewMemory()
	}

	prevAssistant := lastAssistantResponse(log)
	pre := PreprocessMessage(req.Message, prevAssistant)

	if pre.NeedsClarification {
		return s.clarifyResult(pre.Message, clarifyResponse, priorMemory, log), nil
	}

	intent := ClassifyIntent(pre.Message, IntentContext{
		PatientIDPresent:    req.PatientID != "",
		PriorHadSuggestions: len(extractLists(prevAssistant)) > 0,
	})

	if isRecordMealRequest(pre.Message) {
		return s.recordMealTurn(ctx, req.UserID, pre, priorMemory, log)
	}

	patientData := s.fetchPatientData(ctx, req.PatientID, intent)

	resp, err := s.llm.Generate(ctx, &llm.GenerateRequest{
		Model:    settings.MainModel,
		Messages: s.buildMessages(settings.SystemPrompt, intent, profile, patientData, log, pre.Message),
	})
	if err != nil {
		return nil, fmt.Errorf("%w: generation failed: %v", app_errors.ErrUpstream, err)
	}

	blocks := ParseBlocks(resp.Response)
	filtered, removed := FilterSuggestions(blocks, profile)
	plain := RenderPlain(filtered)
	markdown := RenderMarkdown(filtered)

	memory := s.memory.Extract(ctx, priorMemory, settings.SupportModel, pre.Message, plain)
	if kept := SuggestionItems(filtered); len(kept) > 0 {
		// The latest surviving suggestions replace last_recommendations
		// deterministically; extraction quality must not affect this.
		memory.LastRecommendations = kept
	}

	return &model.TurnResult{
		TurnID:        uuid.NewString(),
		FinalResponse: plain,
		FinalMarkdown: markdown,
		Memory:        memory,
		Log:           AppendTurn(log, pre.Message, plain),
		RemovedItems:  removed,
	}, nil
}

// clarifyResult short-circuits the turn: no diet content was generated,
// so the filter and memory stages are skipped. The turn is still recorded
// in the conversation log.
func (s *ChatService) clarifyResult(userMessage, question string, memory *model.Memory, log *model.ConversationLog) *model.TurnResult {
	return &model.TurnResult{
		TurnID:        uuid.NewString(),
		FinalResponse: question,
		FinalMarkdown: question,
		Memory:        normalizeMemory(memory),
		Log:           AppendTurn(log, userMessage, question),
		Clarification: true,
	}
}

// fetchPatientData runs the optional lookup. Any failure degrades to
// generating without patient data; it never fails the turn.
func (s *ChatService) fetchPatientData(ctx context.Context, patientID string, intent Intent) *model.PatientRecord {
	if !s.patientToolsEnabled || patientID == "" || !needsPatientData(intent) {
		return nil
	}
	record, err := s.patients.GetPatientData(ctx, patientID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			slog.Warn("Patient not found, answering without patient data", "patient_id", patientID)
		} else {
			slog.Warn("Patient lookup failed, answering without patient data", "patient_id", patientID, "error", err)
		}
		return nil
	}
	return record
}

var listIntents = map[Intent]bool{
	IntentMealSuggestion: true,
	IntentGroceryList:    true,
	IntentRecipe:         true,
}

// buildMessages assembles the generation request: system prompt with the
// profile constraints and intent-specific format instructions, the rolling
// history, then the preprocessed message.
func (s *ChatService) buildMessages(
	systemPrompt string,
	intent Intent,
	profile *model.UserProfile,
	patientData *model.PatientRecord,
	log *model.ConversationLog,
	message string,
) []llm.Message {
	var sb strings.Builder
	sb.WriteString(systemPrompt)

	if len(profile.Allergies) > 0 {
		fmt.Fprintf(&sb, "\nThe user is allergic to: %s. Never suggest foods containing them.", strings.Join(profile.Allergies, ", "))
	}
	if len(profile.DislikedFoods) > 0 {
		fmt.Fprintf(&sb, "\nThe user dislikes: %s. Avoid suggesting them.", strings.Join(profile.DislikedFoods, ", "))
	}
	if profile.DietType != "" {
		fmt.Fprintf(&sb, "\nDiet type: %s.", profile.DietType)
	}
	if profile.ActivityLevel != "" {
		fmt.Fprintf(&sb, "\nActivity level: %s.", profile.ActivityLevel)
	}

	if listIntents[intent] {
		sb.WriteString("\nEnumerate the options as a numbered list, one per line, in the form " +
			"\"1) Name (Ng protein, M kcal)\". Offer 3 to 5 options.")
	}
	if intent == IntentCalorieBreakdown && len(profile.TodaysMeals) > 0 {
		meals, err := json.Marshal(profile.TodaysMeals)
		if err == nil {
			fmt.Fprintf(&sb, "\nToday's logged meals: %s. Total protein so far: %.0fg.", meals, profile.ProteinTotal)
		}
	}
	if patientData != nil {
		record, err := json.Marshal(patientData)
		if err == nil {
			fmt.Fprintf(&sb, "\nStructured patient record: %s", record)
		}
	}

	messages := []llm.Message{{Role: "system", Content: sb.String()}}
	prompts := log.RecentUserPrompts
	responses := log.RecentAssistantResponses
	for i := range prompts {
		messages = append(messages, llm.Message{Role: "user", Content: prompts[i]})
		if i < len(responses) {
			messages = append(messages, llm.Message{Role: "assistant", Content: responses[i]})
		}
	}
	messages = append(messages, llm.Message{Role: "user", Content: message})
	return messages
}

var recordMealRe = regexp.MustCompile(`(?i)\b(?:record|log|add)\s+(?:that|this|the)\s+(?:meal|one)\b`)

func isRecordMealRequest(message string) bool {
	return recordMealRe.MatchString(message)
}

var (
	proteinRe  = regexp.MustCompile(`(?i)(\d+(?:\.\d+)?)\s*g\s*protein`)
	caloriesRe = regexp.MustCompile(`(?i)(\d+(?:\.\d+)?)\s*(?:kcal|calories)`)
	parenRe    = regexp.MustCompile(`\s*\([^)]*\)\s*$`)
)

// recordMealTurn is the only profile mutation in the pipeline: it appends
// the confirmed recommendation to the meal log and protein totals, then
// answers with a deterministic confirmation. No generation call is made.
func (s *ChatService) recordMealTurn(
	ctx context.Context,
	userID string,
	pre PreprocessResult,
	priorMemory *model.Memory,
	log *model.ConversationLog,
) (*model.TurnResult, error) {
	target := ""
	if pre.Resolved {
		target = strings.TrimSpace(recordMealRe.ReplaceAllString(pre.Message, ""))
		target = strings.Trim(target, " ,.")
	}
	if target == "" && len(priorMemory.LastRecommendations) > 0 {
		target = priorMemory.LastRecommendations[len(priorMemory.LastRecommendations)-1]
	}
	if target == "" {
		return s.clarifyResult(pre.Message, "Which meal would you like me to record?", priorMemory, log), nil
	}

	meal := model.LoggedMeal{
		Food:     strings.TrimSpace(parenRe.ReplaceAllString(target, "")),
		Protein:  parseAmount(proteinRe, target),
		Calories: parseAmount(caloriesRe, target),
	}
	day := time.Now().UTC().Format("2006-01-02")
	if err := s.repo.AppendLoggedMeal(ctx, userID, meal, day); err != nil {
		return nil, fmt.Errorf("could not record meal: %w", err)
	}

	confirmation := fmt.Sprintf("Recorded %s in today's meal log.", meal.Food)
	if meal.Protein > 0 {
		confirmation = fmt.Sprintf("Recorded %s (%.0fg protein) in today's meal log.", meal.Food, meal.Protein)
	}

	memory := MergeMemory(priorMemory, &model.Memory{RecentMeals: []string{meal.Food}})
	return &model.TurnResult{
		TurnID:        uuid.NewString(),
		FinalResponse: confirmation,
		FinalMarkdown: confirmation,
		Memory:        memory,
		Log:           AppendTurn(log, pre.Message, confirmation),
	}, nil
}

func parseAmount(re *regexp.Regexp, s string) float64 {
	m := re.FindStringSubmatch(s)
	if m == nil {
		return 0
	}
	v, err := strconv.ParseFloat(m[1], 64)
	if err != nil {
		return 0
	}
	return v
}
