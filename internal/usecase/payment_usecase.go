package usecase

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"github.com/vanshgehlot9/freightledger/internal/domain"
)

// PaymentUseCase handles payment receipt booking.
type PaymentUseCase struct {
	paymentRepo PaymentRepository
	idGen       IDGenerator
}

// NewPaymentUseCase creates a new PaymentUseCase.
func NewPaymentUseCase(paymentRepo PaymentRepository, idGen IDGenerator) *PaymentUseCase {
	return &PaymentUseCase{
		paymentRepo: paymentRepo,
		idGen:       idGen,
	}
}

// CreatePaymentInput represents input for recording a payment.
type CreatePaymentInput struct {
	Date      time.Time
	PartyName string
	Amount    decimal.Decimal
}

// CreatePayment validates the input and stores the payment document.
func (uc *PaymentUseCase) CreatePayment(ctx context.Context, input CreatePaymentInput) (*domain.RawPayment, error) {
	if err := domain.ValidateRecordDate(input.Date); err != nil {
		return nil, err
	}
	if err := domain.ValidatePartyName(input.PartyName); err != nil {
		return nil, err
	}
	if err := domain.ValidateAmount(input.Amount); err != nil {
		return nil, err
	}

	payment := &domain.RawPayment{
		ID:        uc.idGen.Generate(),
		Date:      input.Date,
		PartyName: input.PartyName,
		Amount:    input.Amount,
	}

	if err := uc.paymentRepo.Create(ctx, payment); err != nil {
		return nil, err
	}

	return payment, nil
}

// GetPayment retrieves a single payment by ID.
func (uc *PaymentUseCase) GetPayment(ctx context.Context, id string) (*domain.RawPayment, error) {
	return uc.paymentRepo.GetByID(ctx, id)
}

// ListPaymentsInput represents input for listing payments.
type ListPaymentsInput struct {
	Limit  int
	Offset int
}

// ListPayments lists stored payments in arrival order.
func (uc *PaymentUseCase) ListPayments(ctx context.Context, input ListPaymentsInput) ([]domain.RawPayment, error) {
	limit, offset := domain.ValidatePagination(input.Limit, input.Offset)
	return uc.paymentRepo.List(ctx, limit, offset)
}
