package handlers

import (
	"errors"
	"net/http"

	"cms_backend/internal/domain/entities"
	"cms_backend/internal/usecase"
	"cms_backend/pkg"

	"github.com/gin-gonic/gin"
)

var errInvalidWorkPayload = pkg.NewDomainErrorSimple("INVALID_WORK_INPUT", "Invalid work payload", http.StatusBadRequest)

// WorkHandler handles construction-project CRUD.
type WorkHandler struct {
	usecase usecase.IWorkUseCase
}

func NewWorkHandler(uc usecase.IWorkUseCase) *WorkHandler {
	return &WorkHandler{usecase: uc}
}

func (h *WorkHandler) CreateWork(c *gin.Context) {
	var payload entities.Work
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidWorkPayload.HTTPStatus, errInvalidWorkPayload.ToHTTPError())
		return
	}

	w, err := h.usecase.Create(c.Request.Context(), payload)
	if err != nil {
		appErr := mapWorkError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusCreated, w)
}

func (h *WorkHandler) ListWorks(c *gin.Context) {
	works, err := h.usecase.List(c.Request.Context())
	if err != nil {
		appErr := mapWorkError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, works)
}

func (h *WorkHandler) GetWork(c *gin.Context) {
	w, err := h.usecase.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		appErr := mapWorkError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, w)
}

func (h *WorkHandler) UpdateWork(c *gin.Context) {
	var payload entities.Work
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidWorkPayload.HTTPStatus, errInvalidWorkPayload.ToHTTPError())
		return
	}
	payload.ID = c.Param("id")

	w, err := h.usecase.Update(c.Request.Context(), payload)
	if err != nil {
		appErr := mapWorkError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, w)
}

func (h *WorkHandler) DeleteWork(c *gin.Context) {
	if err := h.usecase.Delete(c.Request.Context(), c.Param("id")); err != nil {
		appErr := mapWorkError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.Status(http.StatusNoContent)
}

func mapWorkError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidWorkID):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrWorkAlreadyExists):
		return pkg.NewDomainErrorSimple("WORK_ALREADY_EXISTS", "Work already exists", http.StatusConflict)
	case errors.Is(err, usecase.ErrWorkNotFound):
		return pkg.NewDomainErrorSimple("WORK_NOT_FOUND", "Work not found", http.StatusNotFound)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
