package handler

import (
	"net/http"
	"strconv"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/lia-nails/salon-system/internal/api/metrics"
	"github.com/lia-nails/salon-system/internal/core/domain"
	"github.com/lia-nails/salon-system/internal/core/ports"
)

// AppointmentHandler handles HTTP requests for bookings.
type AppointmentHandler struct {
	service ports.AppointmentService
}

func NewAppointmentHandler(service ports.AppointmentService) *AppointmentHandler {
	return &AppointmentHandler{service: service}
}

type createAppointmentRequest struct {
	ClientID        string    `json:"client_id"        validate:"required"`
	EmployeeID      string    `json:"employee_id"      validate:"required"`
	ServiceID       string    `json:"service_id"       validate:"required"`
	ScheduledAt     time.Time `json:"scheduled_at"     validate:"required"`
	DurationMinutes int       `json:"duration_minutes" validate:"omitempty,gt=0"`
	DepositRequired bool      `json:"deposit_required"`
}

type transitionRequest struct {
	Status    string  `json:"status"     validate:"required,oneof=confirmed completed cancelled no_show"`
	TotalPaid float64 `json:"total_paid" validate:"omitempty,gt=0"`
}

type listAppointmentsResponse struct {
	Items      []*domain.Appointment `json:"items"`
	Total      int64                 `json:"total"`
	Page       int                   `json:"page"`
	Limit      int                   `json:"limit"`
	TotalPages int                   `json:"total_pages"`
}

// Create handles POST /v1/appointments.
func (h *AppointmentHandler) Create(c echo.Context) error {
	var req createAppointmentRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	appointment, err := h.service.Create(c.Request().Context(), ports.CreateAppointmentInput{
		ClientID:        req.ClientID,
		EmployeeID:      req.EmployeeID,
		ServiceID:       req.ServiceID,
		ScheduledAt:     req.ScheduledAt,
		DurationMinutes: req.DurationMinutes,
		DepositRequired: req.DepositRequired,
	})
	if err != nil {
		return err
	}

	metrics.AppointmentsCreatedTotal.Inc()
	return c.JSON(http.StatusCreated, appointment)
}

// Get handles GET /v1/appointments/:id.
func (h *AppointmentHandler) Get(c echo.Context) error {
	appointment, err := h.service.Get(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, appointment)
}

// List handles GET /v1/appointments. Staff principals are always scoped to
// their own agenda; admins may filter by any employee.
func (h *AppointmentHandler) List(c echo.Context) error {
	principal, err := ctxPrincipal(c)
	if err != nil {
		return err
	}

	filter := ports.ListAppointmentsFilter{
		EmployeeID: c.QueryParam("employee_id"),
		Status:     c.QueryParam("status"),
	}
	if principal.Role == domain.RoleStaff {
		filter.EmployeeID = principal.EmployeeID
	}

	if v := c.QueryParam("date_from"); v != "" {
		t, err := time.Parse(time.RFC3339, v)
		if err != nil {
			return echo.NewHTTPError(http.StatusBadRequest, "date_from must be RFC 3339")
		}
		filter.DateFrom = t
	}
	if v := c.QueryParam("date_to"); v != "" {
		t, err := time.Parse(time.RFC3339, v)
		if err != nil {
			return echo.NewHTTPError(http.StatusBadRequest, "date_to must be RFC 3339")
		}
		filter.DateTo = t
	}
	filter.Page, _ = strconv.Atoi(c.QueryParam("page"))
	filter.Limit, _ = strconv.Atoi(c.QueryParam("limit"))

	result, err := h.service.List(c.Request().Context(), filter)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, listAppointmentsResponse{
		Items:      result.Items,
		Total:      result.Total,
		Page:       result.Page,
		Limit:      result.Limit,
		TotalPages: result.TotalPages,
	})
}

// Transition handles PATCH /v1/appointments/:id/status.
func (h *AppointmentHandler) Transition(c echo.Context) error {
	var req transitionRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	appointment, err := h.service.Transition(c.Request().Context(), c.Param("id"), ports.TransitionInput{
		Status:    req.Status,
		TotalPaid: req.TotalPaid,
	})
	if err != nil {
		return err
	}

	metrics.AppointmentTransitionsTotal.WithLabelValues(req.Status).Inc()
	return c.JSON(http.StatusOK, appointment)
}
