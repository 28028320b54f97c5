package handlers

import (
	"net/http"

	request "cms_backend/internal/adapter/http/dto/request"
	response "cms_backend/internal/adapter/http/dto/response"
	"cms_backend/internal/infrastructure/logger"
	"cms_backend/internal/usecase"
	"cms_backend/internal/usecase/interfaces"
	"cms_backend/pkg"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

var errInvalidAssistantPayload = pkg.NewDomainErrorSimple("INVALID_ASSISTANT_INPUT", "Invalid assistant payload", http.StatusBadRequest)

// AssistantHandler proxies chat and text-enhancement requests to the LLM
// gateway through the assistant use case.
type AssistantHandler struct {
	usecase usecase.IAssistantUseCase
}

func NewAssistantHandler(uc usecase.IAssistantUseCase) *AssistantHandler {
	return &AssistantHandler{usecase: uc}
}

func (h *AssistantHandler) Chat(c *gin.Context) {
	var payload request.ChatRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidAssistantPayload.HTTPStatus, errInvalidAssistantPayload.ToHTTPError())
		return
	}

	history := make([]interfaces.ChatMessage, 0, len(payload.History))
	for _, m := range payload.History {
		history = append(history, interfaces.ChatMessage{Role: m.Role, Content: m.Content})
	}

	answer, err := h.usecase.Chat(c.Request.Context(), payload.Message, history, usecase.ChatConfig{
		Introduction: payload.Config.Introduction,
		Tone:         payload.Config.Tone,
	})
	if err != nil {
		logger.L().Error("assistant chat failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{
			"error":    err.Error(),
			"response": "Desculpe, ocorreu um erro ao processar sua solicitação.",
		})
		return
	}

	c.JSON(http.StatusOK, response.ChatResponse{Response: answer, Files: []string{}})
}

// Enhance returns the original text untouched when the gateway fails: a
// report edit must never be lost to a provider outage.
func (h *AssistantHandler) Enhance(c *gin.Context) {
	var payload request.EnhanceRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidAssistantPayload.HTTPStatus, errInvalidAssistantPayload.ToHTTPError())
		return
	}

	formatted, err := h.usecase.Enhance(c.Request.Context(), payload.Text, payload.Context)
	if err != nil {
		logger.L().Error("assistant enhance failed", zap.Error(err))
		c.JSON(http.StatusOK, response.EnhanceResponse{FormattedText: payload.Text})
		return
	}

	c.JSON(http.StatusOK, response.EnhanceResponse{FormattedText: formatted})
}
