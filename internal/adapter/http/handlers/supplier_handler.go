package handlers

import (
	"errors"
	"net/http"

	"cms_backend/internal/domain/entities"
	"cms_backend/internal/usecase"
	"cms_backend/pkg"

	"github.com/gin-gonic/gin"
)

var errInvalidSupplierPayload = pkg.NewDomainErrorSimple("INVALID_SUPPLIER_INPUT", "Invalid supplier payload", http.StatusBadRequest)

// SupplierHandler handles the supplier directory CRUD. Supplier payloads bind
// straight to the entity: the wrapper stores and returns documents unchanged.
type SupplierHandler struct {
	usecase usecase.ISupplierUseCase
}

func NewSupplierHandler(uc usecase.ISupplierUseCase) *SupplierHandler {
	return &SupplierHandler{usecase: uc}
}

func (h *SupplierHandler) CreateSupplier(c *gin.Context) {
	var payload entities.Supplier
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidSupplierPayload.HTTPStatus, errInvalidSupplierPayload.ToHTTPError())
		return
	}

	s, err := h.usecase.Create(c.Request.Context(), payload)
	if err != nil {
		appErr := mapSupplierError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusCreated, s)
}

func (h *SupplierHandler) ListSuppliers(c *gin.Context) {
	suppliers, err := h.usecase.List(c.Request.Context())
	if err != nil {
		appErr := mapSupplierError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, suppliers)
}

func (h *SupplierHandler) GetSupplier(c *gin.Context) {
	s, err := h.usecase.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		appErr := mapSupplierError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, s)
}

func (h *SupplierHandler) UpdateSupplier(c *gin.Context) {
	var payload entities.Supplier
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidSupplierPayload.HTTPStatus, errInvalidSupplierPayload.ToHTTPError())
		return
	}
	payload.ID = c.Param("id")

	s, err := h.usecase.Update(c.Request.Context(), payload)
	if err != nil {
		appErr := mapSupplierError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, s)
}

func (h *SupplierHandler) DeleteSupplier(c *gin.Context) {
	if err := h.usecase.Delete(c.Request.Context(), c.Param("id")); err != nil {
		appErr := mapSupplierError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.Status(http.StatusNoContent)
}

func mapSupplierError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidSupplierID):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrSupplierAlreadyExists):
		return pkg.NewDomainErrorSimple("SUPPLIER_ALREADY_EXISTS", "Supplier already exists", http.StatusConflict)
	case errors.Is(err, usecase.ErrSupplierNotFound):
		return pkg.NewDomainErrorSimple("SUPPLIER_NOT_FOUND", "Supplier not found", http.StatusNotFound)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
