package service

import (
	"context"

	"bariatric-gpt/backend/internal/llm"
)

// ModelService exposes the model runtime's installed models for the
// settings screen and operational checks.
type ModelService struct {
	llm llm.LLMProvider
}

func NewModelService(llmProvider llm.LLMProvider) *ModelService {
	return &ModelService{llm: llmProvider}
}

func (s *ModelService) List(ctx context.Context) (*llm.ListModelsResponse, error) {
	return s.llm.ListModels(ctx)
}
