package arli

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"

	"github.com/jarcoal/httpmock"
	apperrors "github.com/pantryloom/v1/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

const completionsURL = "https://api.arliai.com/v1/chat/completions"

func TestClient_Complete(t *testing.T) {
	httpmock.Activate()
	defer httpmock.DeactivateAndReset()

	var captured ChatRequest
	httpmock.RegisterResponder(http.MethodPost, completionsURL,
		func(req *http.Request) (*http.Response, error) {
			require.Equal(t, "Bearer test-key", req.Header.Get("Authorization"))
			require.NoError(t, json.NewDecoder(req.Body).Decode(&captured))

			return httpmock.NewJsonResponse(http.StatusOK, map[string]any{
				"choices": []map[string]any{
					{"message": map[string]any{"role": "assistant", "content": "Here is your recipe."}},
				},
			})
		})

	client := NewClient(Config{APIKey: "test-key"}, zap.NewNop())

	reply, err := client.Complete(context.Background(), "be helpful", "make soup")
	require.NoError(t, err)
	assert.Equal(t, "Here is your recipe.", reply)

	// Fixed decoding parameters ride along on every request
	assert.Equal(t, "Mistral-Nemo-12B-Instruct-2407", captured.Model)
	assert.Equal(t, 1.1, captured.RepetitionPenalty)
	assert.Equal(t, 0.7, captured.Temperature)
	assert.Equal(t, 0.9, captured.TopP)
	assert.Equal(t, 40, captured.TopK)
	assert.Equal(t, 1024, captured.MaxTokens)
	assert.False(t, captured.Stream)

	require.Len(t, captured.Messages, 2)
	assert.Equal(t, "system", captured.Messages[0].Role)
	assert.Equal(t, "be helpful", captured.Messages[0].Content)
	assert.Equal(t, "user", captured.Messages[1].Role)
	assert.Equal(t, "make soup", captured.Messages[1].Content)
}

func TestClient_Complete_HTTPError(t *testing.T) {
	httpmock.Activate()
	defer httpmock.DeactivateAndReset()

	httpmock.RegisterResponder(http.MethodPost, completionsURL,
		httpmock.NewStringResponder(http.StatusTooManyRequests, `{"error": "rate limited"}`))

	client := NewClient(Config{APIKey: "test-key"}, zap.NewNop())

	_, err := client.Complete(context.Background(), "sys", "user")
	require.Error(t, err)
	assert.Equal(t, apperrors.CodeExternalServiceError, apperrors.GetCode(err))

	var appErr *apperrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Contains(t, appErr.Cause.Error(), "429")
}

func TestClient_Complete_NoChoices(t *testing.T) {
	httpmock.Activate()
	defer httpmock.DeactivateAndReset()

	httpmock.RegisterResponder(http.MethodPost, completionsURL,
		httpmock.NewStringResponder(http.StatusOK, `{"choices": []}`))

	client := NewClient(Config{APIKey: "test-key"}, zap.NewNop())

	_, err := client.Complete(context.Background(), "sys", "user")
	require.Error(t, err)
	assert.Equal(t, apperrors.CodeExternalServiceError, apperrors.GetCode(err))
}

func TestClient_Complete_CustomBaseURL(t *testing.T) {
	httpmock.Activate()
	defer httpmock.DeactivateAndReset()

	httpmock.RegisterResponder(http.MethodPost, "http://localhost:9999/v1/chat/completions",
		httpmock.NewStringResponder(http.StatusOK,
			`{"choices": [{"message": {"role": "assistant", "content": "ok"}}]}`))

	client := NewClient(Config{BaseURL: "http://localhost:9999"}, zap.NewNop())

	reply, err := client.Complete(context.Background(), "sys", "user")
	require.NoError(t, err)
	assert.Equal(t, "ok", reply)
}
