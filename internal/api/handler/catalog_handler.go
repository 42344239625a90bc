package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/lia-nails/salon-system/internal/core/ports"
)

// CatalogHandler handles HTTP requests for the service catalog.
type CatalogHandler struct {
	service ports.CatalogService
}

func NewCatalogHandler(service ports.CatalogService) *CatalogHandler {
	return &CatalogHandler{service: service}
}

type serviceRequest struct {
	Name            string  `json:"name"             validate:"required"`
	Category        string  `json:"category"         validate:"required,oneof=manicure pedicure nail_art treatments kapping other"`
	DurationMinutes int     `json:"duration_minutes" validate:"required,gt=0"`
	Price           float64 `json:"price"            validate:"required,gt=0"`
	Description     string  `json:"description"`
	DisplayOrder    int     `json:"display_order"`
}

func (r serviceRequest) toInput() ports.ServiceInput {
	return ports.ServiceInput{
		Name:            r.Name,
		Category:        r.Category,
		DurationMinutes: r.DurationMinutes,
		Price:           r.Price,
		Description:     r.Description,
		DisplayOrder:    r.DisplayOrder,
	}
}

// Create handles POST /v1/services.
func (h *CatalogHandler) Create(c echo.Context) error {
	var req serviceRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	entry, err := h.service.Create(c.Request().Context(), req.toInput())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, entry)
}

// Get handles GET /v1/services/:id.
func (h *CatalogHandler) Get(c echo.Context) error {
	entry, err := h.service.Get(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, entry)
}

// List handles GET /v1/services with optional ?category= and ?include_inactive=.
func (h *CatalogHandler) List(c echo.Context) error {
	filter := ports.ListServicesFilter{
		Category:   c.QueryParam("category"),
		ActiveOnly: c.QueryParam("include_inactive") != "true",
	}

	entries, err := h.service.List(c.Request().Context(), filter)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, entries)
}

// Update handles PUT /v1/services/:id.
func (h *CatalogHandler) Update(c echo.Context) error {
	var req serviceRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	entry, err := h.service.Update(c.Request().Context(), c.Param("id"), req.toInput())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, entry)
}

// Deactivate handles DELETE /v1/services/:id (soft delete).
func (h *CatalogHandler) Deactivate(c echo.Context) error {
	if err := h.service.Deactivate(c.Request().Context(), c.Param("id")); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}
