package routes

import (
	"cms_backend/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const PathAssistant = "/ai"

func addAssistantRoutes(rg *gin.RouterGroup, assistantHandler *handlers.AssistantHandler) {
	assistant := rg.Group(PathAssistant)
	{
		assistant.POST("/chat", assistantHandler.Chat)
		assistant.POST("/enhance", assistantHandler.Enhance)
	}
}
