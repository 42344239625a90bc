package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/lia-nails/salon-system/internal/core/ports"
)

// EmployeeHandler handles HTTP requests for employee management.
type EmployeeHandler struct {
	service ports.EmployeeService
}

func NewEmployeeHandler(service ports.EmployeeService) *EmployeeHandler {
	return &EmployeeHandler{service: service}
}

type employeeRequest struct {
	FirstName string   `json:"first_name" validate:"required"`
	LastName  string   `json:"last_name"  validate:"required"`
	Phone     string   `json:"phone"      validate:"required"`
	Email     string   `json:"email"      validate:"required,email"`
	WorkDays  []string `json:"work_days"  validate:"required,min=1,dive,oneof=monday tuesday wednesday thursday friday saturday sunday"`
	StartTime string   `json:"start_time" validate:"required"`
	EndTime   string   `json:"end_time"   validate:"required"`
}

func (r employeeRequest) toInput() ports.EmployeeInput {
	return ports.EmployeeInput{
		FirstName: r.FirstName,
		LastName:  r.LastName,
		Phone:     r.Phone,
		Email:     r.Email,
		WorkDays:  r.WorkDays,
		StartTime: r.StartTime,
		EndTime:   r.EndTime,
	}
}

// Create handles POST /v1/employees.
func (h *EmployeeHandler) Create(c echo.Context) error {
	var req employeeRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	employee, err := h.service.Create(c.Request().Context(), req.toInput())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, employee)
}

// Get handles GET /v1/employees/:id.
func (h *EmployeeHandler) Get(c echo.Context) error {
	employee, err := h.service.Get(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, employee)
}

// List handles GET /v1/employees. The default hides deactivated employees;
// ?include_inactive=true shows everyone.
func (h *EmployeeHandler) List(c echo.Context) error {
	activeOnly := c.QueryParam("include_inactive") != "true"

	employees, err := h.service.List(c.Request().Context(), activeOnly)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, employees)
}

// Update handles PUT /v1/employees/:id.
func (h *EmployeeHandler) Update(c echo.Context) error {
	var req employeeRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	employee, err := h.service.Update(c.Request().Context(), c.Param("id"), req.toInput())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, employee)
}

// Deactivate handles DELETE /v1/employees/:id (soft delete).
func (h *EmployeeHandler) Deactivate(c echo.Context) error {
	if err := h.service.Deactivate(c.Request().Context(), c.Param("id")); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}
