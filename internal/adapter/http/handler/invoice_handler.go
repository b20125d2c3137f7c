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

// InvoiceService defines the behavior needed by InvoiceHandler.
type InvoiceService interface {
	CreateInvoice(ctx context.Context, input usecase.CreateInvoiceInput) (*domain.RawInvoice, error)
	GetInvoice(ctx context.Context, id string) (*domain.RawInvoice, error)
	ListInvoices(ctx context.Context, input usecase.ListInvoicesInput) ([]domain.RawInvoice, error)
}

// InvoiceHandler handles freight invoice HTTP requests.
type InvoiceHandler struct {
	invoiceUC InvoiceService
}

// NewInvoiceHandler creates a new InvoiceHandler.
func NewInvoiceHandler(invoiceUC InvoiceService) *InvoiceHandler {
	return &InvoiceHandler{invoiceUC: invoiceUC}
}

// Create books a new freight invoice.
func (h *InvoiceHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req dto.CreateInvoiceRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}

	invoice, err := h.invoiceUC.CreateInvoice(r.Context(), req.ToUseCaseInput())
	if err != nil {
		status := mapDomainError(err)
		writeError(w, status, "failed to create invoice", err.Error())
		return
	}

	writeJSON(w, http.StatusCreated, dto.InvoiceFromDomain(invoice))
}

// Get retrieves an invoice by ID.
func (h *InvoiceHandler) Get(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if id == "" {
		writeError(w, http.StatusBadRequest, "missing invoice ID", "")
		return
	}

	invoice, err := h.invoiceUC.GetInvoice(r.Context(), id)
	if err != nil {
		status := mapDomainError(err)
		writeError(w, status, "failed to get invoice", err.Error())
		return
	}

	writeJSON(w, http.StatusOK, dto.InvoiceFromDomain(invoice))
}

// List lists stored invoices in arrival order.
func (h *InvoiceHandler) List(w http.ResponseWriter, r *http.Request) {
	limit := parseIntQuery(r, "limit", domain.DefaultPageSize)
	offset := parseIntQuery(r, "offset", 0)

	invoices, err := h.invoiceUC.ListInvoices(r.Context(), usecase.ListInvoicesInput{
		Limit:  limit,
		Offset: offset,
	})
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to list invoices", err.Error())
		return
	}

	writeJSON(w, http.StatusOK, dto.ListInvoicesResponse{
		Invoices: dto.InvoicesFromDomain(invoices),
		Total:    int64(len(invoices)),
	})
}
