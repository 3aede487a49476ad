package service

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"strings"

	"github.com/samber/lo"

	"bariatric-gpt/backend/internal/llm"
	"bariatric-gpt/backend/internal/model"
)

// Memory extraction runs after a successful (non-clarifying) turn. The
// support model proposes new entries as strict JSON; merging is additive
// and never deletes prior entries. Any extraction failure degrades to the
// prior memory unchanged, which is also the "no new information" case.

const memoryExtractionPrompt = `You maintain a structured memory for a bariatric-care user.
Given the latest exchange, extract only NEW facts worth remembering.
Respond with JSON only, using exactly these keys (arrays of short strings, empty if nothing new):
{"preferences": [], "recent_meals": [], "last_recommendations": [], "adherence_notes": [], "important_notes": []}`

// memoryExtractor derives the updated memory object for a turn.
type memoryExtractor struct {
	llm llm.LLMProvider
}

func (e *memoryExtractor) Extract(ctx context.Context, prior *model.Memory, supportModel, userMessage, response string) *model.Memory {
	merged := normalizeMemory(prior)

	resp, err := e.llm.Generate(ctx, &llm.GenerateRequest{
		Model: supportModel,
		Messages: []llm.Message{
			{Role: "system", Content: memoryExtractionPrompt},
			{Role: "user", Content: fmt.Sprintf("User: %s\n\nAssistant: %s", userMessage, response)},
		},
	})
	if err != nil {
		slog.Warn("Memory extraction call failed, keeping prior memory", "error", err)
		return merged
	}

	observed, err := parseMemoryJSON(resp.Response)
	if err != nil {
		slog.Warn("Memory extraction returned malformed JSON, keeping prior memory", "error", err)
		return merged
	}

	return MergeMemory(merged, observed)
}

// MergeMemory unions newly observed entries into the prior memory. Prior
// entries are preserved; duplicates collapse; all five keys stay present.
func MergeMemory(prior, observed *model.Memory) *model.Memory {
	prior = normalizeMemory(prior)
	if observed == nil {
		return prior
	}
	return &model.Memory{
		Preferences:         lo.Uniq(append(prior.Preferences, observed.Preferences...)),
		RecentMeals:         lo.Uniq(append(prior.RecentMeals, observed.RecentMeals...)),
		LastRecommendations: lo.Uniq(append(prior.LastRecommendations, observed.LastRecommendations...)),
		AdherenceNotes:      lo.Uniq(append(prior.AdherenceNotes, observed.AdherenceNotes...)),
		ImportantNotes:      lo.Uniq(append(prior.ImportantNotes, observed.ImportantNotes...)),
	}
}

// parseMemoryJSON tolerates the usual model framing around the JSON body
// (code fences, prose) by slicing from the first '{' to the last '}'.
func parseMemoryJSON(raw string) (*model.Memory, error) {
	start := strings.IndexByte(raw, '{')
	end := strings.LastIndexByte(raw, '}')
	if start < 0 || end <= start {
		return nil, fmt.Errorf("no JSON object in extraction output")
	}
	var mem model.Memory
	if err := json.Unmarshal([]byte(raw[start:end+1]), &mem); err != nil {
		return nil, fmt.Errorf("could not decode extraction output: %w", err)
	}
	return &mem, nil
}

func normalizeMemory(mem *model.Memory) *model.Memory {
	if mem == nil {
		return model.NewMemory()
	}
	out := model.NewMemory()
	out.Preferences = append(out.Preferences, mem.Preferences...)
	out.RecentMeals = append(out.RecentMeals, mem.RecentMeals...)
	out.LastRecommendations = append(out.LastRecommendations, mem.LastRecommendations...)
	out.AdherenceNotes = append(out.AdherenceNotes, mem.AdherenceNotes...)
	out.ImportantNotes = append(out.ImportantNotes, mem.ImportantNotes...)
	return out
}
