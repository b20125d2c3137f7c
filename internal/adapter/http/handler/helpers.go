package handler

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/vanshgehlot9/freightledger/internal/adapter/http/dto"
	"github.com/vanshgehlot9/freightledger/internal/domain"
)

// writeJSON writes a JSON response.
func writeJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}

// writeError writes an error response.
func writeError(w http.ResponseWriter, status int, message, details string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(dto.ErrorResponse{
		Error:   message,
		Message: details,
	})
}

// mapDomainError maps domain errors to HTTP status codes.
func mapDomainError(err error) int {
	switch {
	case errors.Is(err, domain.ErrInvoiceNotFound):
		return http.StatusNotFound
	case errors.Is(err, domain.ErrDeliveryNotFound):
		return http.StatusNotFound
	case errors.Is(err, domain.ErrPaymentNotFound):
		return http.StatusNotFound
	case errors.Is(err, domain.ErrInvalidViewType):
		return http.StatusBadRequest
	case errors.Is(err, domain.ErrInvalidDateRange):
		return http.StatusBadRequest
	case errors.Is(err, domain.ErrInvalidAmount):
		return http.StatusBadRequest
	case errors.Is(err, domain.ErrMissingParty):
		return http.StatusBadRequest
	case errors.Is(err, domain.ErrMissingDate):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

// parseIntQuery parses an integer query parameter with a default value.
func parseIntQuery(r *http.Request, key string, defaultValue int) int {
	val := r.URL.Query().Get(key)
	if val == "" {
		return defaultValue
	}
	i, err := strconv.Atoi(val)
	if err != nil {
		return defaultValue
	}
	return i
}

// dateQueryLayouts are the accepted encodings for date query parameters.
var dateQueryLayouts = []string{time.RFC3339, "2006-01-02"}

// parseDateQuery parses an optional date query parameter. A missing
// parameter yields nil; an unparseable one is an error.
func parseDateQuery(r *http.Request, key string) (*time.Time, error) {
	val := r.URL.Query().Get(key)
	if val == "" {
		return nil, nil
	}
	for _, layout := range dateQueryLayouts {
		if t, err := time.Parse(layout, val); err == nil {
			return &t, nil
		}
	}
	return nil, errors.New("unrecognized date format: " + val)
}
