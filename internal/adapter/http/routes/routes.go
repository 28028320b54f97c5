package routes

import (
	"os"
	"strconv"

	_ "cms_backend/docs" // Generated swagger spec
	"cms_backend/internal/adapter/http/handlers"
	repository2 "cms_backend/internal/adapter/persistence/repository"
	"cms_backend/internal/infrastructure/ai"
	"cms_backend/internal/infrastructure/database"
	"cms_backend/internal/infrastructure/logger"
	"cms_backend/internal/infrastructure/mail"
	"cms_backend/internal/usecase"
	"cms_backend/internal/usecase/interfaces"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/zap"
)

var router = gin.Default()

const PORT = 8080

// Run will start the server
func Run() {
	setMiddlewares()

	// Swagger documentation endpoint
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	getRoutes()

	err := router.Run(":" + strconv.Itoa(PORT))
	if err != nil {
		logger.L().Fatal("failed to start the application", zap.Error(err))
	}
}

func getRoutes() {
	ddb := database.ConnectDynamoDB()

	quoteRepo := repository2.NewQuoteDynamoRepository(ddb)
	supplierRepo := repository2.NewSupplierDynamoRepository(ddb)
	workRepo := repository2.NewWorkDynamoRepository(ddb)

	quoteUseCase := usecase.NewQuoteUseCase(quoteRepo, supplierRepo)
	supplierUseCase := usecase.NewSupplierUseCase(supplierRepo)
	workUseCase := usecase.NewWorkUseCase(workRepo)

	var completionGateway interfaces.ICompletionGateway
	openAIGateway, err := ai.NewOpenAIGateway(os.Getenv("OPENAI_API_KEY"))
	if err != nil {
		logger.L().Warn("openai gateway not configured", zap.Error(err))
	} else {
		completionGateway = openAIGateway
	}
	assistantUseCase := usecase.NewAssistantUseCase(completionGateway)

	mailGateway := mail.NewSMTPGateway(os.Getenv("SMTP_SERVER"), os.Getenv("SMTP_PORT"))

	quoteHandler := handlers.NewQuoteHandler(quoteUseCase)
	supplierHandler := handlers.NewSupplierHandler(supplierUseCase)
	workHandler := handlers.NewWorkHandler(workUseCase)
	assistantHandler := handlers.NewAssistantHandler(assistantUseCase)
	emailHandler := handlers.NewEmailHandler(mailGateway)
	authHandler := handlers.NewAuthHandler()

	v1 := router.Group("/v1")
	addPingRoutes(v1)
	addQuoteRoutes(v1, quoteHandler)
	addCollectionRoutes(v1, supplierHandler, workHandler)
	addAssistantRoutes(v1, assistantHandler)
	addEmailRoutes(v1, emailHandler)
	v1.GET("/me", authHandler.GetMe)
}

func setMiddlewares() {
	router.Use(gin.Logger())
	router.Use(gin.Recovery())
	router.Use(gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		logger.L().Error("recovered from panic", zap.Any("panic", recovered))
		c.AbortWithStatus(500)
	}))
}
