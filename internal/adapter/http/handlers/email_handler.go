package handlers

import (
	"net/http"
	"os"

	request "cms_backend/internal/adapter/http/dto/request"
	response "cms_backend/internal/adapter/http/dto/response"
	"cms_backend/internal/infrastructure/logger"
	"cms_backend/internal/usecase/interfaces"
	"cms_backend/pkg"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

var errInvalidEmailPayload = pkg.NewDomainErrorSimple("INVALID_EMAIL_INPUT", "Invalid email payload", http.StatusBadRequest)

// EmailHandler fronts the outbound SMTP relay. Senders authenticate with
// their own mailbox credentials; DEFAULT_SMTP_EMAIL / DEFAULT_SMTP_PASSWORD
// serve as the fallback service account.
type EmailHandler struct {
	gateway interfaces.IMailGateway
}

func NewEmailHandler(gateway interfaces.IMailGateway) *EmailHandler {
	return &EmailHandler{gateway: gateway}
}

func (h *EmailHandler) VerifyEmail(c *gin.Context) {
	var payload request.EmailVerifyRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidEmailPayload.HTTPStatus, errInvalidEmailPayload.ToHTTPError())
		return
	}

	if err := h.gateway.VerifyCredentials(c.Request.Context(), payload.Email, payload.Password); err != nil {
		logger.L().Warn("smtp credential check failed", zap.String("email", payload.Email), zap.Error(err))
		c.JSON(http.StatusBadRequest, response.EmailVerifyResponse{
			Message: "SMTP authentication failed",
			Valid:   false,
		})
		return
	}

	c.JSON(http.StatusOK, response.EmailVerifyResponse{
		Message: "Credentials verified",
		Valid:   true,
	})
}

func (h *EmailHandler) SendEmail(c *gin.Context) {
	var payload request.EmailSendRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidEmailPayload.HTTPStatus, errInvalidEmailPayload.ToHTTPError())
		return
	}

	senderEmail := payload.SenderEmail
	if senderEmail == "" {
		senderEmail = os.Getenv("DEFAULT_SMTP_EMAIL")
	}
	senderPassword := payload.SenderPassword
	if senderPassword == "" {
		senderPassword = os.Getenv("DEFAULT_SMTP_PASSWORD")
	}
	if senderEmail == "" || senderPassword == "" {
		c.JSON(http.StatusBadRequest, pkg.NewDomainErrorSimple("MISSING_SMTP_CREDENTIALS", "Sender credentials not provided", http.StatusBadRequest).ToHTTPError())
		return
	}

	recipients := payload.ResolveRecipients()
	if len(recipients) == 0 {
		c.JSON(http.StatusBadRequest, pkg.NewDomainErrorSimple("MISSING_RECIPIENTS", "No recipients provided", http.StatusBadRequest).ToHTTPError())
		return
	}

	if err := h.gateway.Send(c.Request.Context(), senderEmail, senderPassword, recipients, payload.Subject, payload.Body); err != nil {
		logger.L().Error("email relay failed", zap.Int("recipients", len(recipients)), zap.Error(err))
		c.JSON(http.StatusInternalServerError, pkg.NewDomainError("EMAIL_SEND_FAILED", "Failed to send email", err, http.StatusInternalServerError).ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.EmailSendResponse{Message: "Email sent"})
}
