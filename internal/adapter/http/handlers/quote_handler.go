package handlers

import (
	"errors"
	"net/http"

	request "cms_backend/internal/adapter/http/dto/request"
	response "cms_backend/internal/adapter/http/dto/response"
	"cms_backend/internal/usecase"
	"cms_backend/internal/usecase/interfaces"
	"cms_backend/pkg"

	"github.com/gin-gonic/gin"
)

var (
	errInvalidQuotePayload = pkg.NewDomainErrorSimple("INVALID_QUOTE_INPUT", "Invalid quote payload", http.StatusBadRequest)
	errQuoteIDMismatch     = pkg.NewDomainErrorSimple("QUOTE_ID_MISMATCH", "Path id does not match payload id", http.StatusBadRequest)
)

// QuoteHandler handles HTTP requests for the supplier quotation workflow.
//
// Internal routes assume the caller was authenticated upstream. The two
// supplier routes (login, submit) are public and rely exclusively on the
// quote token + CNPJ gate inside the use case.
type QuoteHandler struct {
	usecase usecase.IQuoteUseCase
}

func NewQuoteHandler(uc usecase.IQuoteUseCase) *QuoteHandler {
	return &QuoteHandler{usecase: uc}
}

func (h *QuoteHandler) CreateQuote(c *gin.Context) {
	var payload request.QuoteRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidQuotePayload.HTTPStatus, errInvalidQuotePayload.ToHTTPError())
		return
	}

	q, err := h.usecase.Create(c.Request.Context(), payload.ToEntity())
	if err != nil {
		appErr := mapQuoteError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusCreated, response.FromQuote(q))
}

func (h *QuoteHandler) ListQuotes(c *gin.Context) {
	quotes, err := h.usecase.List(c.Request.Context())
	if err != nil {
		appErr := mapQuoteError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	out := make([]response.QuoteResponse, 0, len(quotes))
	for _, q := range quotes {
		out = append(out, response.FromQuote(q))
	}
	c.JSON(http.StatusOK, out)
}

func (h *QuoteHandler) GetQuote(c *gin.Context) {
	q, err := h.usecase.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		appErr := mapQuoteError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromQuote(q))
}

func (h *QuoteHandler) UpdateQuote(c *gin.Context) {
	id := c.Param("id")

	var payload request.QuoteRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidQuotePayload.HTTPStatus, errInvalidQuotePayload.ToHTTPError())
		return
	}
	if payload.ID != "" && payload.ID != id {
		c.JSON(errQuoteIDMismatch.HTTPStatus, errQuoteIDMismatch.ToHTTPError())
		return
	}

	e := payload.ToEntity()
	e.ID = id

	q, err := h.usecase.Update(c.Request.Context(), e)
	if err != nil {
		appErr := mapQuoteError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromQuote(q))
}

func (h *QuoteHandler) DeleteQuote(c *gin.Context) {
	if err := h.usecase.Delete(c.Request.Context(), c.Param("id")); err != nil {
		appErr := mapQuoteError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.Status(http.StatusNoContent)
}

// RequestRevision reopens a submitted quote for supplier input. The comment is
// acknowledged but not stored; the record keeps no revision history.
func (h *QuoteHandler) RequestRevision(c *gin.Context) {
	var payload request.RevisionRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidQuotePayload.HTTPStatus, errInvalidQuotePayload.ToHTTPError())
		return
	}

	if _, err := h.usecase.RequestRevision(c.Request.Context(), c.Param("id"), payload.Comment); err != nil {
		appErr := mapQuoteError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.MessageResponse{Message: "Revision created"})
}

func (h *QuoteHandler) ApproveQuote(c *gin.Context) {
	// The approval body is optional and currently informational only.
	var payload request.ApproveRequest
	_ = c.ShouldBindJSON(&payload)

	if _, err := h.usecase.Approve(c.Request.Context(), c.Param("id")); err != nil {
		appErr := mapQuoteError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.MessageResponse{Message: "Approved"})
}

// SupplierLogin is the anonymous read gate: quote token + CNPJ in, full quote
// record out. 404 when no quote carries the token, 403 when the CNPJ is not
// on the invitation list.
func (h *QuoteHandler) SupplierLogin(c *gin.Context) {
	var payload request.SupplierLoginRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidQuotePayload.HTTPStatus, errInvalidQuotePayload.ToHTTPError())
		return
	}

	q, err := h.usecase.SupplierLogin(c.Request.Context(), payload.Token, payload.CNPJ)
	if err != nil {
		appErr := mapQuoteError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromQuote(q))
}

func (h *QuoteHandler) SupplierSubmit(c *gin.Context) {
	var payload request.SupplierSubmitRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidQuotePayload.HTTPStatus, errInvalidQuotePayload.ToHTTPError())
		return
	}

	_, err := h.usecase.Submit(
		c.Request.Context(),
		c.Param("quote_id"),
		payload.Token,
		payload.CNPJ,
		payload.SignerName,
		payload.Prices,
		payload.Quantities,
	)
	if err != nil {
		appErr := mapQuoteError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.MessageResponse{Message: "Quotation submitted"})
}

func mapQuoteError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidQuoteID), errors.Is(err, usecase.ErrInvalidQuoteStatus):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrQuoteNotFound):
		return pkg.NewDomainErrorSimple("QUOTE_NOT_FOUND", "Quote not found or invalid token", http.StatusNotFound)
	case errors.Is(err, usecase.ErrNoInvitedSuppliers):
		return pkg.NewDomainErrorSimple("NO_INVITED_SUPPLIERS", "Quote has no invited suppliers", http.StatusForbidden)
	case errors.Is(err, usecase.ErrQuoteForbidden):
		return pkg.NewDomainErrorSimple("CNPJ_NOT_AUTHORIZED", "CNPJ not authorized for this quote", http.StatusForbidden)
	case errors.Is(err, usecase.ErrQuoteTokenMismatch):
		return pkg.NewDomainErrorSimple("INVALID_QUOTE_TOKEN", "Token does not match this quote", http.StatusForbidden)
	case errors.Is(err, usecase.ErrQuoteAlreadySubmitted):
		return pkg.NewDomainErrorSimple("QUOTE_ALREADY_SUBMITTED", "Quotation was already submitted", http.StatusConflict)
	case errors.Is(err, usecase.ErrQuoteNotOpen):
		return pkg.NewDomainErrorSimple("QUOTE_NOT_OPEN", "Quote is not open for submission", http.StatusConflict)
	case errors.Is(err, interfaces.ErrQuoteVersionConflict):
		return pkg.NewDomainErrorSimple("QUOTE_VERSION_CONFLICT", "Quote was modified concurrently, retry", http.StatusConflict)
	case errors.Is(err, usecase.ErrQuoteAlreadyExists):
		return pkg.NewDomainErrorSimple("QUOTE_ALREADY_EXISTS", "Quote already exists", http.StatusConflict)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
