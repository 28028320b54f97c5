package routes

import (
	"cms_backend/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const (
	PathQuotes = "/quotes"
	PathPublic = "/public"
)

func addQuoteRoutes(rg *gin.RouterGroup, quoteHandler *handlers.QuoteHandler) {
	quotes := rg.Group(PathQuotes)
	{
		// Internal-user routes; authentication happens upstream.
		quotes.POST("", quoteHandler.CreateQuote)
		quotes.GET("", quoteHandler.ListQuotes)
		quotes.GET("/:id", quoteHandler.GetQuote)
		quotes.PUT("/:id", quoteHandler.UpdateQuote)
		quotes.DELETE("/:id", quoteHandler.DeleteQuote)
		quotes.POST("/:id/revision", quoteHandler.RequestRevision)
		quotes.POST("/:id/approve", quoteHandler.ApproveQuote)
	}

	public := rg.Group(PathPublic)
	{
		// Anonymous supplier routes, guarded only by quote token + CNPJ.
		public.POST("/login", quoteHandler.SupplierLogin)
		public.POST("/quotes/:quote_id/submit", quoteHandler.SupplierSubmit)
	}
}
