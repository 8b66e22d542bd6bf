package service_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	app_errors "sup-chat/backend/internal/errors"
	"sup-chat/backend/internal/llm"
	"sup-chat/backend/internal/llm/mocks"
	"sup-chat/backend/internal/service"
)

func TestModelService_List(t *testing.T) {
	ctx := context.Background()

	t.Run("Success", func(t *testing.T) {
		mockLLM := mocks.NewMockLLMProvider(t)
		expected := &llm.ListModelsResponse{Models: []llm.Model{{Name: "gemma3:4b"}}}
		mockLLM.On("ListModels", ctx).Return(expected, nil).Once()

		models, err := service.NewModelService(mockLLM).List(ctx)
		require.NoError(t, err)
		assert.Equal(t, expected, models)
	})

	t.Run("Failure - Ollama unreachable", func(t *testing.T) {
		mockLLM := mocks.NewMockLLMProvider(t)
		mockLLM.On("ListModels", ctx).Return(nil, errors.New("connection refused")).Once()

		_, err := service.NewModelService(mockLLM).List(ctx)
		assert.ErrorIs(t, err, app_errors.ErrUnavailable)
		assert.ErrorContains(t, err, "connection refused")
	})
}
