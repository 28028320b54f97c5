package handlers

import (
	"net/http"
	"strings"

	response "cms_backend/internal/adapter/http/dto/response"
	"cms_backend/pkg"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
)

var errMissingBearerToken = pkg.NewDomainErrorSimple("MISSING_TOKEN", "Bearer token not provided", http.StatusUnauthorized)

// AuthHandler decodes the internal user's identity from the bearer token.
//
// The payload is decoded WITHOUT signature verification: the upstream proxy
// already authenticated the request and this endpoint only mirrors the claims
// back to the frontend. Do not reuse this for the supplier gate, which is a
// separate trust boundary (shared token + CNPJ, no signed credential).
type AuthHandler struct{}

func NewAuthHandler() *AuthHandler {
	return &AuthHandler{}
}

type userClaims struct {
	Email   string `json:"email"`
	Name    string `json:"name"`
	Picture string `json:"picture"`
	jwt.RegisteredClaims
}

func (h *AuthHandler) GetMe(c *gin.Context) {
	header := c.GetHeader("Authorization")
	if !strings.HasPrefix(header, "Bearer ") {
		c.JSON(errMissingBearerToken.HTTPStatus, errMissingBearerToken.ToHTTPError())
		return
	}
	token := strings.TrimPrefix(header, "Bearer ")

	var claims userClaims
	parser := jwt.NewParser()
	if _, _, err := parser.ParseUnverified(token, &claims); err != nil {
		appErr := pkg.NewDomainError("INVALID_TOKEN", "Malformed bearer token", err, http.StatusUnauthorized)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.MeResponse{
		UID:      claims.Subject,
		Email:    claims.Email,
		Name:     claims.Name,
		Picture:  claims.Picture,
		TenantID: "mel",
		Roles:    []string{"user"},
	})
}
