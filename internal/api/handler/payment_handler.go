package handler

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/lia-nails/salon-system/internal/core/ports"
)

// PaymentHandler handles HTTP requests for payment records.
type PaymentHandler struct {
	service ports.PaymentService
}

func NewPaymentHandler(service ports.PaymentService) *PaymentHandler {
	return &PaymentHandler{service: service}
}

type paymentRequest struct {
	AppointmentID string    `json:"appointment_id" validate:"required"`
	Amount        float64   `json:"amount"         validate:"required,gt=0"`
	Method        string    `json:"method"         validate:"required,oneof=cash card transfer"`
	Kind          string    `json:"kind"           validate:"required,oneof=deposit final"`
	PaidAt        time.Time `json:"paid_at"`
}

// Record handles POST /v1/payments.
func (h *PaymentHandler) Record(c echo.Context) error {
	var req paymentRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	payment, err := h.service.Record(c.Request().Context(), ports.PaymentInput{
		AppointmentID: req.AppointmentID,
		Amount:        req.Amount,
		Method:        req.Method,
		Kind:          req.Kind,
		PaidAt:        req.PaidAt,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, payment)
}

// List handles GET /v1/payments with optional ?appointment_id=, ?date_from=, ?date_to=.
func (h *PaymentHandler) List(c echo.Context) error {
	filter := ports.ListPaymentsFilter{
		AppointmentID: c.QueryParam("appointment_id"),
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

	payments, err := h.service.List(c.Request().Context(), filter)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, payments)
}
