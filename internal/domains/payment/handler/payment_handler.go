package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"booklend-backend/internal/domains/payment"
	"booklend-backend/internal/shared/middleware"
	"booklend-backend/internal/shared/response"
)

type PaymentHandler struct {
	service payment.Service
}

func NewPaymentHandler(svc payment.Service) *PaymentHandler {
	return &PaymentHandler{service: svc}
}

// CreateCheckoutSession handles POST /payment-checkout-sessions
// (authenticated). The customer email is taken from the verified
// principal, never from the body.
func (h *PaymentHandler) CreateCheckoutSession(c *gin.Context) {
	var req payment.CheckoutRequest
	if err := c.BindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	url, err := h.service.CreateCheckoutSession(c.Request.Context(), middleware.PrincipalEmail(c), req)
	if err != nil {
		writePaymentError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"url": url})
}

// Confirm handles PATCH /payment-success?session_id= (authenticated).
// Repeated confirms of the same session answer "Already Paid" without
// touching the ledger again.
func (h *PaymentHandler) Confirm(c *gin.Context) {
	result, err := h.service.ConfirmPayment(c.Request.Context(), c.Query("session_id"))
	if err != nil {
		writePaymentError(c, err)
		return
	}

	switch result.Outcome {
	case payment.OutcomePaid:
		c.JSON(http.StatusOK, result.Payment)
	case payment.OutcomeAlreadyPaid:
		response.Message(c, http.StatusOK, "Already Paid")
	default:
		c.JSON(http.StatusOK, gin.H{"success": false})
	}
}

// History handles GET /payments-history?email= (authenticated + self).
func (h *PaymentHandler) History(c *gin.Context) {
	payments, err := h.service.HistoryByCustomer(c.Request.Context(), c.Query("email"))
	if err != nil {
		response.InternalServerError(c, err.Error())
		return
	}
	c.JSON(http.StatusOK, payments)
}

func writePaymentError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, payment.ErrMissingSessionID),
		errors.Is(err, payment.ErrInvalidOrderID),
		errors.Is(err, payment.ErrMissingOrderReference):
		response.BadRequest(c, err.Error())
	case errors.Is(err, payment.ErrPaymentNotFound):
		response.NotFound(c, err.Error())
	default:
		response.InternalServerError(c, err.Error())
	}
}
