package handler

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/vanshgehlot9/freightledger/internal/adapter/http/dto"
	"github.com/vanshgehlot9/freightledger/internal/domain"
	"github.com/vanshgehlot9/freightledger/internal/usecase"
)

// PaymentService defines the behavior needed by PaymentHandler.
type PaymentService interface {
	CreatePayment(ctx context.Context, input usecase.CreatePaymentInput) (*domain.RawPayment, error)
	GetPayment(ctx context.Context, id string) (*domain.RawPayment, error)
	ListPayments(ctx context.Context, input usecase.ListPaymentsInput) ([]domain.RawPayment, error)
}

// PaymentHandler handles payment HTTP requests.
type PaymentHandler struct {
	paymentUC PaymentService
}

// NewPaymentHandler creates a new PaymentHandler.
func NewPaymentHandler(paymentUC PaymentService) *PaymentHandler {
	return &PaymentHandler{paymentUC: paymentUC}
}

// Create records a new payment received.
func (h *PaymentHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req dto.CreatePaymentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}

	payment, err := h.paymentUC.CreatePayment(r.Context(), req.ToUseCaseInput())
	if err != nil {
		status := mapDomainError(err)
		writeError(w, status, "failed to create payment", err.Error())
		return
	}

	writeJSON(w, http.StatusCreated, dto.PaymentFromDomain(payment))
}

// Get retrieves a payment by ID.
func (h *PaymentHandler) Get(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if id == "" {
		writeError(w, http.StatusBadRequest, "missing payment ID", "")
		return
	}

	payment, err := h.paymentUC.GetPayment(r.Context(), id)
	if err != nil {
		status := mapDomainError(err)
		writeError(w, status, "failed to get payment", err.Error())
		return
	}

	writeJSON(w, http.StatusOK, dto.PaymentFromDomain(payment))
}

// List lists stored payments in arrival order.
func (h *PaymentHandler) List(w http.ResponseWriter, r *http.Request) {
	limit := parseIntQuery(r, "limit", domain.DefaultPageSize)
	offset := parseIntQuery(r, "offset", 0)

	payments, err := h.paymentUC.ListPayments(r.Context(), usecase.ListPaymentsInput{
		Limit:  limit,
		Offset: offset,
	})
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to list payments", err.Error())
		return
	}

	writeJSON(w, http.StatusOK, dto.ListPaymentsResponse{
		Payments: dto.PaymentsFromDomain(payments),
		Total:    int64(len(payments)),
	})
}
