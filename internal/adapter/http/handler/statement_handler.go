package handler

import (
	"context"
	"net/http"
	"time"

	"github.com/vanshgehlot9/freightledger/internal/adapter/http/dto"
	"github.com/vanshgehlot9/freightledger/internal/domain"
	"github.com/vanshgehlot9/freightledger/internal/infrastructure/metrics"
	"github.com/vanshgehlot9/freightledger/internal/usecase"
)

// StatementService defines the behavior needed by StatementHandler.
type StatementService interface {
	BuildStatement(ctx context.Context, query usecase.StatementQuery) (*usecase.Statement, error)
}

// StatementHandler handles statement queries.
type StatementHandler struct {
	statementUC StatementService
	metrics     *metrics.Metrics
}

// NewStatementHandler creates a new StatementHandler. Metrics may be nil.
func NewStatementHandler(statementUC StatementService, m *metrics.Metrics) *StatementHandler {
	return &StatementHandler{statementUC: statementUC, metrics: m}
}

// Get computes a statement for the requested view, party filter and date
// window.
func (h *StatementHandler) Get(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	from, err := parseDateQuery(r, "from")
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid from date", err.Error())
		return
	}
	to, err := parseDateQuery(r, "to")
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid to date", err.Error())
		return
	}

	view, err := domain.ParseViewType(q.Get("view"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid view", err.Error())
		return
	}

	query := usecase.StatementQuery{
		View:  view,
		Party: q.Get("party"),
		From:  from,
		To:    to,
	}

	start := time.Now()
	statement, err := h.statementUC.BuildStatement(r.Context(), query)
	if err != nil {
		status := mapDomainError(err)
		writeError(w, status, "failed to build statement", err.Error())
		return
	}

	if h.metrics != nil {
		h.metrics.StatementsComputed.WithLabelValues(string(statement.View)).Inc()
		h.metrics.StatementDuration.Observe(time.Since(start).Seconds())
		h.metrics.RecordsNormalized.Add(float64(statement.Normalized))
		h.metrics.RecordsDropped.Add(float64(statement.Dropped))
	}

	writeJSON(w, http.StatusOK, dto.StatementFromUseCase(statement))
}
