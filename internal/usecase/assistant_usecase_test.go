package usecase

import (
	"context"
	"errors"
	"strings"
	"testing"

	"cms_backend/internal/usecase/interfaces"
	mock_interfaces "cms_backend/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

func TestAssistantUseCase_Chat(t *testing.T) {
	t.Run("empty message", func(t *testing.T) {
		uc := NewAssistantUseCase(nil)
		_, err := uc.Chat(context.Background(), "   ", nil, ChatConfig{})
		if !errors.Is(err, ErrEmptyAssistantMessage) {
			t.Fatalf("expected ErrEmptyAssistantMessage, got %v", err)
		}
	})

	t.Run("gateway not configured", func(t *testing.T) {
		uc := NewAssistantUseCase(nil)
		_, err := uc.Chat(context.Background(), "olá", nil, ChatConfig{})
		if !errors.Is(err, ErrCompletionGatewayUnavailable) {
			t.Fatalf("expected ErrCompletionGatewayUnavailable, got %v", err)
		}
	})

	t.Run("assembles system prompt, history and user message", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		gateway := mock_interfaces.NewMockICompletionGateway(ctrl)
		uc := NewAssistantUseCase(gateway)

		history := []interfaces.ChatMessage{
			{Role: "user", Content: "pergunta anterior"},
			{Role: "assistant", Content: "resposta anterior"},
		}

		gateway.EXPECT().Complete(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, messages []interfaces.ChatMessage) (string, error) {
				if len(messages) != 4 {
					t.Fatalf("expected 4 messages, got %d", len(messages))
				}
				if messages[0].Role != "system" {
					t.Fatalf("expected system message first, got %s", messages[0].Role)
				}
				if !strings.Contains(messages[0].Content, "Golive") {
					t.Fatalf("expected domain vocabulary in system prompt")
				}
				if !strings.Contains(messages[0].Content, "engenheiro civil") {
					t.Fatalf("expected user introduction in system prompt")
				}
				if !strings.Contains(messages[0].Content, "TÉCNICA") {
					t.Fatalf("expected tone instruction in system prompt")
				}
				if messages[3].Role != "user" || messages[3].Content != "qual o status da obra?" {
					t.Fatalf("expected trailing user message, got %+v", messages[3])
				}
				return "tudo em dia", nil
			},
		)

		res, err := uc.Chat(context.Background(), "qual o status da obra?", history,
			ChatConfig{Introduction: "engenheiro civil", Tone: "Técnico"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if res != "tudo em dia" {
			t.Fatalf("unexpected response: %q", res)
		}
	})

	t.Run("unknown tone falls back to strategist", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		gateway := mock_interfaces.NewMockICompletionGateway(ctrl)
		uc := NewAssistantUseCase(gateway)

		gateway.EXPECT().Complete(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, messages []interfaces.ChatMessage) (string, error) {
				if !strings.Contains(messages[0].Content, "ESTRATEGISTA") {
					t.Fatalf("expected strategist fallback, got: %s", messages[0].Content)
				}
				return "ok", nil
			},
		)

		if _, err := uc.Chat(context.Background(), "oi", nil, ChatConfig{Tone: "whatever"}); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})
}

func TestAssistantUseCase_Enhance(t *testing.T) {
	t.Run("empty text", func(t *testing.T) {
		uc := NewAssistantUseCase(nil)
		_, err := uc.Enhance(context.Background(), "", "Relatório Semanal")
		if !errors.Is(err, ErrEmptyAssistantMessage) {
			t.Fatalf("expected ErrEmptyAssistantMessage, got %v", err)
		}
	})

	t.Run("gateway error surfaces as-is", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		gateway := mock_interfaces.NewMockICompletionGateway(ctrl)
		uc := NewAssistantUseCase(gateway)

		gateway.EXPECT().Complete(gomock.Any(), gomock.Any()).Return("", errors.New("upstream"))

		_, err := uc.Enhance(context.Background(), "obra atrazada", "Relatório")
		if err == nil || err.Error() != "upstream" {
			t.Fatalf("expected upstream error, got %v", err)
		}
	})

	t.Run("wraps text and context in the prompt", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		gateway := mock_interfaces.NewMockICompletionGateway(ctrl)
		uc := NewAssistantUseCase(gateway)

		gateway.EXPECT().Complete(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, messages []interfaces.ChatMessage) (string, error) {
				if len(messages) != 2 {
					t.Fatalf("expected 2 messages, got %d", len(messages))
				}
				if !strings.Contains(messages[1].Content, "obra atrazada") || !strings.Contains(messages[1].Content, "Relatório") {
					t.Fatalf("expected text and context in user message, got %q", messages[1].Content)
				}
				return "<b>obra atrasada</b>", nil
			},
		)

		res, err := uc.Enhance(context.Background(), "obra atrazada", "Relatório")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if res != "<b>obra atrasada</b>" {
			t.Fatalf("unexpected response: %q", res)
		}
	})
}
