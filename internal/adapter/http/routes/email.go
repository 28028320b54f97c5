package routes

import (
	"cms_backend/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const PathEmail = "/email"

func addEmailRoutes(rg *gin.RouterGroup, emailHandler *handlers.EmailHandler) {
	email := rg.Group(PathEmail)
	{
		email.POST("/verify", emailHandler.VerifyEmail)
		email.POST("/send", emailHandler.SendEmail)
	}
}
