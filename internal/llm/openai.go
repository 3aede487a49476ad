package llm

import (
	"context"
	"fmt"

	"github.com/openai/openai-go"
	"github.com/openai/openai-go/option"
)

// openaiProvider adapts any OpenAI-compatible chat completion endpoint to
// the LLMProvider interface. Used when LLM_BACKEND=openai.
type openaiProvider struct {
	client *openai.Client
}

func NewOpenAIProvider(apiKey, baseURL string) LLMProvider {
	client := openai.NewClient(
		option.WithAPIKey(apiKey),
		option.WithBaseURL(baseURL),
	)
	return &openaiProvider{client: &client}
}

func (p *openaiProvider) Generate(ctx context.Context, req *GenerateRequest) (*GenerateResponse, error) {
	messages := make([]openai.ChatCompletionMessageParamUnion, 0, len(req.Messages))
	for _, m := range req.Messages {
		switch m.Role {
		case "system":
			messages = append(messages, openai.SystemMessage(m.Content))
		case "assistant":
			messages = append(messages, openai.AssistantMessage(m.Content))
		default:
			messages = append(messages, openai.UserMessage(m.Content))
		}
	}

	completion, err := p.client.Chat.Completions.New(ctx, openai.ChatCompletionNewParams{
		Model:    openai.ChatModel(req.Model),
		Messages: messages,
	})
	if err != nil {
		return nil, fmt.Errorf("chat completion failed: %w", err)
	}
	if len(completion.Choices) == 0 {
		return nil, fmt.Errorf("completion returned no choices")
	}

	return &GenerateResponse{
		Model:    req.Model,
		Response: completion.Choices[0].Message.Content,
		Done:     true,
	}, nil
}

func (p *openaiProvider) ListModels(ctx context.Context) (*ListModelsResponse, error) {
	page, err := p.client.Models.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("could not list models: %w", err)
	}
	list := &ListModelsResponse{}
	for _, m := range page.Data {
		list.Models = append(list.Models, ModelEntry{Name: m.ID})
	}
	return list, nil
}
