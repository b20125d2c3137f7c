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

// DeliveryService defines the behavior needed by DeliveryHandler.
type DeliveryService interface {
	CreateDelivery(ctx context.Context, input usecase.CreateDeliveryInput) (*domain.RawDeliveryCharge, error)
	GetDelivery(ctx context.Context, id string) (*domain.RawDeliveryCharge, error)
	ListDeliveries(ctx context.Context, input usecase.ListDeliveriesInput) ([]domain.RawDeliveryCharge, error)
}

// DeliveryHandler handles delivery challan HTTP requests.
type DeliveryHandler struct {
	deliveryUC DeliveryService
}

// NewDeliveryHandler creates a new DeliveryHandler.
func NewDeliveryHandler(deliveryUC DeliveryService) *DeliveryHandler {
	return &DeliveryHandler{deliveryUC: deliveryUC}
}

// Create books a new delivery challan.
func (h *DeliveryHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req dto.CreateDeliveryRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}

	challan, err := h.deliveryUC.CreateDelivery(r.Context(), req.ToUseCaseInput())
	if err != nil {
		status := mapDomainError(err)
		writeError(w, status, "failed to create delivery challan", err.Error())
		return
	}

	writeJSON(w, http.StatusCreated, dto.DeliveryFromDomain(challan))
}

// Get retrieves a delivery challan by ID.
func (h *DeliveryHandler) Get(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if id == "" {
		writeError(w, http.StatusBadRequest, "missing delivery ID", "")
		return
	}

	challan, err := h.deliveryUC.GetDelivery(r.Context(), id)
	if err != nil {
		status := mapDomainError(err)
		writeError(w, status, "failed to get delivery challan", err.Error())
		return
	}

	writeJSON(w, http.StatusOK, dto.DeliveryFromDomain(challan))
}

// List lists stored delivery challans in arrival order.
func (h *DeliveryHandler) List(w http.ResponseWriter, r *http.Request) {
	limit := parseIntQuery(r, "limit", domain.DefaultPageSize)
	offset := parseIntQuery(r, "offset", 0)

	challans, err := h.deliveryUC.ListDeliveries(r.Context(), usecase.ListDeliveriesInput{
		Limit:  limit,
		Offset: offset,
	})
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to list delivery challans", err.Error())
		return
	}

	writeJSON(w, http.StatusOK, dto.ListDeliveriesResponse{
		Deliveries: dto.DeliveriesFromDomain(challans),
		Total:      int64(len(challans)),
	})
}
