package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/vanshgehlot9/freightledger/internal/domain"
)

// biltySequence is the counter name used for invoice numbering.
const biltySequence = "bilty"

// InvoiceUseCase handles freight invoice booking.
type InvoiceUseCase struct {
	invoiceRepo InvoiceRepository
	seqRepo     SequenceRepository
	idGen       IDGenerator
}

// NewInvoiceUseCase creates a new InvoiceUseCase.
func NewInvoiceUseCase(invoiceRepo InvoiceRepository, seqRepo SequenceRepository, idGen IDGenerator) *InvoiceUseCase {
	return &InvoiceUseCase{
		invoiceRepo: invoiceRepo,
		seqRepo:     seqRepo,
		idGen:       idGen,
	}
}

// CreateInvoiceInput represents input for booking an invoice.
type CreateInvoiceInput struct {
	Date          time.Time
	ConsignorName string
	ConsigneeName string
	TruckNo       string
	GrandTotal    decimal.Decimal
	CartagePaid   bool
}

// CreateInvoice validates the input, assigns an ID and the next bilty
// number, and stores the invoice document.
func (uc *InvoiceUseCase) CreateInvoice(ctx context.Context, input CreateInvoiceInput) (*domain.RawInvoice, error) {
	if err := domain.ValidateRecordDate(input.Date); err != nil {
		return nil, err
	}
	if err := domain.ValidatePartyName(input.ConsignorName); err != nil {
		return nil, err
	}
	if err := domain.ValidateAmount(input.GrandTotal); err != nil {
		return nil, err
	}

	biltyNo, err := uc.seqRepo.Next(ctx, biltySequence)
	if err != nil {
		return nil, fmt.Errorf("next bilty number: %w", err)
	}

	invoice := &domain.RawInvoice{
		ID:            uc.idGen.Generate(),
		BiltyNo:       biltyNo,
		Date:          input.Date,
		ConsignorName: input.ConsignorName,
		ConsigneeName: input.ConsigneeName,
		TruckNo:       input.TruckNo,
		GrandTotal:    input.GrandTotal,
		CartagePaid:   input.CartagePaid,
	}

	if err := uc.invoiceRepo.Create(ctx, invoice); err != nil {
		return nil, err
	}

	return invoice, nil
}

// GetInvoice retrieves a single invoice by ID.
func (uc *InvoiceUseCase) GetInvoice(ctx context.Context, id string) (*domain.RawInvoice, error) {
	return uc.invoiceRepo.GetByID(ctx, id)
}

// ListInvoicesInput represents input for listing invoices.
type ListInvoicesInput struct {
	Limit  int
	Offset int
}

// ListInvoices lists stored invoices in arrival order.
func (uc *InvoiceUseCase) ListInvoices(ctx context.Context, input ListInvoicesInput) ([]domain.RawInvoice, error) {
	limit, offset := domain.ValidatePagination(input.Limit, input.Offset)
	return uc.invoiceRepo.List(ctx, limit, offset)
}
