package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"cms_backend/internal/usecase/interfaces"
)

var (
	ErrEmptyAssistantMessage        = errors.New("empty assistant message")
	ErrCompletionGatewayUnavailable = errors.New("completion gateway not configured")
)

// ChatConfig adjusts the assistant persona per request.
type ChatConfig struct {
	Introduction string
	Tone         string
}

// IAssistantUseCase assembles prompts for the engineering-management
// assistant. The completion itself happens behind ICompletionGateway.
type IAssistantUseCase interface {
	Chat(ctx context.Context, message string, history []interfaces.ChatMessage, cfg ChatConfig) (string, error)
	Enhance(ctx context.Context, text, context_ string) (string, error)
}

type AssistantUseCase struct {
	gateway interfaces.ICompletionGateway
}

var _ IAssistantUseCase = (*AssistantUseCase)(nil)

func NewAssistantUseCase(gateway interfaces.ICompletionGateway) *AssistantUseCase {
	return &AssistantUseCase{gateway: gateway}
}

const baseSystemPrompt = `Você é um AI Assistant especialista em Gerenciamento de Engenharia para um Sistema de Gestão de Obras (CMS).
Seu objetivo é ajudar gerentes de projeto e engenheiros respondendo perguntas sobre obras em andamento, fornecendo conselhos estratégicos e auxiliando no planejamento.

VOCABULÁRIO IMPORTANTE:
- "Golive": Data em que a obra deve ser entregue e entrar em operação.

Ao responder:
1. Seja profissional, conciso e prestativo.
2. Se faltarem dados (por exemplo, data nula), mencione isso claramente.
3. Se estiver criando um relatório ou estratégia, use os dados disponíveis para justificar suas recomendações.
4. Fale sempre em Português (Brasil).`

const enhanceSystemPrompt = `Você é um Editor Técnico Sênior de Engenharia.
Sua função é revisar, corrigir e formatar textos de relatórios de obras.

DIRETRIZES:
1. CORREÇÃO: Corrija ortografia e gramática.
2. TOM TÉCNICO: Mantenha siglas como "PP", "CT", "PO", "SLA" etc. NÃO INVENTE significados.
3. FORMATAÇÃO HTML:
   - Use <b>...</b> para destacar pontos chave, valores e prazos críticos.
   - Use <span style="color: #dc2626">...</span> (vermelho) para riscos, atrasos ou bloqueios.
   - Use <span style="color: #16a34a">...</span> (verde) para conclusões, sucessos ou liberações.
   - Use <br/> para quebras de linha se necessário.
4. ESTRUTURA: Se o texto for longo, organize em tópicos (<ul><li>...</li></ul>).
5. RESUMO: Se o texto for confuso, reescreva de forma mais clara mas sem perder informação.

Retorne APENAS o HTML do texto melhorado, sem conversa fiada.`

func toneInstruction(tone string) string {
	switch tone {
	case "Técnico":
		return "Adote uma postura TÉCNICA. Foque em valores, contas, cálculos, datas precisas e detalhes de execução. Seja direto e analítico."
	case "Ideias":
		return "Adote uma postura CRIATIVA (Ideias). O usuário pode estar perdido. Ofereça brainstorming, soluções inovadoras e alternativas fora da caixa para destravar problemas."
	case "Gestor":
		return "Adote uma postura de GESTOR. Foque em prazos, stakeholders, milestones, organização de equipe e visão macro do progresso. Ajude a organizar a casa."
	default:
		// "Estrategista" is also the fallback for unknown tones.
		return "Adote uma postura ESTRATEGISTA. Identifique possíveis erros, preveja problemas futuros, analise riscos e sugira caminhos de longo prazo. Seja crítico e visionário."
	}
}

func (u *AssistantUseCase) Chat(ctx context.Context, message string, history []interfaces.ChatMessage, cfg ChatConfig) (string, error) {
	if strings.TrimSpace(message) == "" {
		return "", ErrEmptyAssistantMessage
	}
	if u.gateway == nil {
		return "", ErrCompletionGatewayUnavailable
	}

	system := baseSystemPrompt
	if cfg.Introduction != "" {
		system += fmt.Sprintf("\n\nCONTEXTO DO USUÁRIO:\nO usuário se descreve assim: '%s'. Leve isso em consideração.", cfg.Introduction)
	}
	system += "\n\nTOM DE VOZ:\n" + toneInstruction(cfg.Tone)

	messages := make([]interfaces.ChatMessage, 0, len(history)+2)
	messages = append(messages, interfaces.ChatMessage{Role: "system", Content: system})
	messages = append(messages, history...)
	messages = append(messages, interfaces.ChatMessage{Role: "user", Content: message})

	return u.gateway.Complete(ctx, messages)
}

// Enhance rewrites a report fragment as formatted HTML. On gateway failure the
// caller falls back to the original text, so the error is returned as-is.
func (u *AssistantUseCase) Enhance(ctx context.Context, text, context_ string) (string, error) {
	if strings.TrimSpace(text) == "" {
		return "", ErrEmptyAssistantMessage
	}
	if u.gateway == nil {
		return "", ErrCompletionGatewayUnavailable
	}

	messages := []interfaces.ChatMessage{
		{Role: "system", Content: enhanceSystemPrompt},
		{Role: "user", Content: fmt.Sprintf("Texto Original: %s\nContexto: %s", text, context_)},
	}

	return u.gateway.Complete(ctx, messages)
}
