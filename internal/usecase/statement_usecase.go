package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/vanshgehlot9/freightledger/internal/domain"
)

// StatementQuery is a validated statement request.
type StatementQuery struct {
	View  domain.ViewType
	Party string
	From  *time.Time
	To    *time.Time
}

// StatementUseCase computes account statements from fresh snapshots of
// the three record collections. Every call refetches and recomputes;
// there is no cache and no shared state between requests.
type StatementUseCase struct {
	invoiceRepo  InvoiceRepository
	deliveryRepo DeliveryChargeRepository
	paymentRepo  PaymentRepository
}

// NewStatementUseCase creates a new StatementUseCase.
func NewStatementUseCase(
	invoiceRepo InvoiceRepository,
	deliveryRepo DeliveryChargeRepository,
	paymentRepo PaymentRepository,
) *StatementUseCase {
	return &StatementUseCase{
		invoiceRepo:  invoiceRepo,
		deliveryRepo: deliveryRepo,
		paymentRepo:  paymentRepo,
	}
}

// BuildStatement validates the query, fetches the three snapshots,
// normalizes them and projects the requested view. Validation failures
// reject the request before anything is fetched; a fetch failure fails
// the whole computation unmodified.
func (uc *StatementUseCase) BuildStatement(ctx context.Context, query StatementQuery) (*Statement, error) {
	if !query.View.Valid() {
		return nil, fmt.Errorf("%w: %q", domain.ErrInvalidViewType, string(query.View))
	}
	if err := domain.ValidateDateRange(query.From, query.To); err != nil {
		return nil, err
	}

	invoices, err := uc.invoiceRepo.ListAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("fetch invoices: %w", err)
	}

	challans, err := uc.deliveryRepo.ListAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("fetch delivery challans: %w", err)
	}

	payments, err := uc.paymentRepo.ListAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("fetch payments: %w", err)
	}

	normalized := Normalize(invoices, challans, payments)

	statement, err := Project(normalized.Transactions, query.View, AccumulateOptions{
		PartyFilter: query.Party,
		From:        query.From,
		To:          query.To,
	})
	if err != nil {
		return nil, err
	}

	statement.Normalized = len(normalized.Transactions)
	statement.Dropped = normalized.Dropped

	return statement, nil
}
