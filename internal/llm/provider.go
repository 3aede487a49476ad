package llm

import "context"

// Message is a single chat message in a generation request.
type Message struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// GenerateRequest is a non-streaming chat completion request.
type GenerateRequest struct {
	Model    string    `json:"model"`
	Messages []Message `json:"messages,omitempty"`
	Stream   bool      `json:"stream"`
}

// GenerateResponse is the model's completed answer.
type GenerateResponse struct {
	Model    string `json:"model"`
	Response string `json:"response"`
	Done     bool   `json:"done"`
}

// ModelEntry describes one installed model.
type ModelEntry struct {
	Name string `json:"name"`
	Size int64  `json:"size,omitempty"`
}

// ListModelsResponse is the set of models available on the backend.
type ListModelsResponse struct {
	Models []ModelEntry `json:"models"`
}

// LLMProvider defines the interface for interacting with a language model.
// The turn pipeline is strictly sequential and consumes whole responses,
// so the contract is non-streaming on purpose.
type LLMProvider interface {
	Generate(ctx context.Context, req *GenerateRequest) (*GenerateResponse, error)
	ListModels(ctx context.Context) (*ListModelsResponse, error)
}
