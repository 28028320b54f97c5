package ai

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"time"

	"cms_backend/internal/infrastructure/logger"
	"cms_backend/internal/usecase/interfaces"

	"go.uber.org/zap"
)

var ErrMissingOpenAIAPIKey = errors.New("missing OPENAI_API_KEY")

const (
	openAIEndpoint = "https://api.openai.com/v1/chat/completions"
	openAIModel    = "gpt-4o-mini"
)

// OpenAIGateway implements ICompletionGateway against the OpenAI
// chat-completions API. Mock mode (OPENAI_MOCK=true) echoes a canned reply so
// the backend runs locally without credentials.
type OpenAIGateway struct {
	apiKey   string
	client   *http.Client
	mockMode bool
}

var _ interfaces.ICompletionGateway = (*OpenAIGateway)(nil)

func NewOpenAIGateway(apiKey string) (*OpenAIGateway, error) {
	if os.Getenv("OPENAI_MOCK") == "true" {
		logger.L().Info("openai gateway mock mode enabled")
		return &OpenAIGateway{mockMode: true}, nil
	}
	if apiKey == "" {
		return nil, ErrMissingOpenAIAPIKey
	}
	return &OpenAIGateway{
		apiKey: apiKey,
		client: &http.Client{Timeout: 60 * time.Second},
	}, nil
}

type completionRequest struct {
	Model    string                   `json:"model"`
	Messages []interfaces.ChatMessage `json:"messages"`
}

type completionResponse struct {
	Choices []struct {
		Message interfaces.ChatMessage `json:"message"`
	} `json:"choices"`
}

func (g *OpenAIGateway) Complete(ctx context.Context, messages []interfaces.ChatMessage) (string, error) {
	if g.mockMode {
		if len(messages) == 0 {
			return "", errors.New("no messages")
		}
		return "[mock] " + messages[len(messages)-1].Content, nil
	}

	body, err := json.Marshal(completionRequest{Model: openAIModel, Messages: messages})
	if err != nil {
		return "", err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, openAIEndpoint, bytes.NewReader(body))
	if err != nil {
		return "", err
	}
	req.Header.Set("Authorization", "Bearer "+g.apiKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := g.client.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		raw, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		logger.L().Error("openai request failed",
			zap.Int("status", resp.StatusCode),
			zap.ByteString("body", raw),
		)
		return "", fmt.Errorf("openai error %d: %s", resp.StatusCode, raw)
	}

	var out completionResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return "", err
	}
	if len(out.Choices) == 0 {
		return "", errors.New("no completion returned")
	}
	return out.Choices[0].Message.Content, nil
}
