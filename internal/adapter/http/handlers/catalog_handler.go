package handlers

import (
	"errors"
	"log"
	"net/http"
	"strconv"

	response "truga_booking/internal/adapter/http/dto/response"
	"truga_booking/internal/usecase"
	"truga_booking/pkg"

	"github.com/gin-gonic/gin"
)

// CatalogHandler handles HTTP requests for the roof box catalog.

type CatalogHandler struct {
	usecase usecase.ICatalogUseCase
}

func NewCatalogHandler(uc usecase.ICatalogUseCase) *CatalogHandler {
	return &CatalogHandler{usecase: uc}
}

// ListBoxes returns the full catalog ordered by id.
func (h *CatalogHandler) ListBoxes(c *gin.Context) {
	boxes, err := h.usecase.ListBoxes(c.Request.Context())
	if err != nil {
		log.Printf("[catalog][handler] list failed err=%v", err)
		appErr := mapCatalogError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromRoofBoxes(boxes))
}

// GetBox returns a single box. The key is a numeric id or a slug, so product
// pages can link either way.
func (h *CatalogHandler) GetBox(c *gin.Context) {
	key := c.Param("key")

	var err error
	if id, convErr := strconv.Atoi(key); convErr == nil {
		found, lookupErr := h.usecase.GetBoxByID(c.Request.Context(), id)
		if lookupErr == nil {
			c.JSON(http.StatusOK, response.FromRoofBox(found))
			return
		}
		err = lookupErr
	} else {
		found, lookupErr := h.usecase.GetBoxBySlug(c.Request.Context(), key)
		if lookupErr == nil {
			c.JSON(http.StatusOK, response.FromRoofBox(found))
			return
		}
		err = lookupErr
	}

	log.Printf("[catalog][handler] get failed key=%s err=%v", key, err)
	appErr := mapCatalogError(err)
	c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
}

func mapCatalogError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidRoofBoxID), errors.Is(err, usecase.ErrInvalidRoofBoxKey):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrRoofBoxNotFound):
		return pkg.NewDomainErrorSimple("BOX_NOT_FOUND", "Roof box not found", http.StatusNotFound)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
