package service

import (
	"context"
	"fmt"

	app_errors "sup-chat/backend/internal/errors"
	"sup-chat/backend/internal/llm"
)

// ModelService reports which models the local Ollama instance can serve.
type ModelService struct {
	llm llm.LLMProvider
}

// NewModelService creates a new ModelService.
func NewModelService(llmProvider llm.LLMProvider) *ModelService {
	return &ModelService{llm: llmProvider}
}

// List returns a list of all locally available models.
func (s *ModelService) List(ctx context.Context) (*llm.ListModelsResponse, error) {
	models, err := s.llm.ListModels(ctx)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", app_errors.ErrUnavailable, err)
	}
	return models, nil
}
