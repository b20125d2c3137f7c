package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/vanshgehlot9/freightledger/internal/domain"
)

// challanSequence is the counter name used for challan numbering.
const challanSequence = "challan"

// DeliveryUseCase handles delivery challan booking.
type DeliveryUseCase struct {
	deliveryRepo DeliveryChargeRepository
	seqRepo      SequenceRepository
	idGen        IDGenerator
}

// NewDeliveryUseCase creates a new DeliveryUseCase.
func NewDeliveryUseCase(deliveryRepo DeliveryChargeRepository, seqRepo SequenceRepository, idGen IDGenerator) *DeliveryUseCase {
	return &DeliveryUseCase{
		deliveryRepo: deliveryRepo,
		seqRepo:      seqRepo,
		idGen:        idGen,
	}
}

// CreateDeliveryInput represents input for booking a delivery challan.
type CreateDeliveryInput struct {
	Date         time.Time
	PartyName    string
	TruckNo      string
	Amount       decimal.Decimal
	GSTNo        string
	CashDelivery bool
}

// CreateDelivery validates the input, assigns an ID and the next challan
// number, and stores the challan document.
func (uc *DeliveryUseCase) CreateDelivery(ctx context.Context, input CreateDeliveryInput) (*domain.RawDeliveryCharge, error) {
	if err := domain.ValidateRecordDate(input.Date); err != nil {
		return nil, err
	}
	if err := domain.ValidatePartyName(input.PartyName); err != nil {
		return nil, err
	}
	if err := domain.ValidateAmount(input.Amount); err != nil {
		return nil, err
	}

	challanNo, err := uc.seqRepo.Next(ctx, challanSequence)
	if err != nil {
		return nil, fmt.Errorf("next challan number: %w", err)
	}

	challan := &domain.RawDeliveryCharge{
		ID:           uc.idGen.Generate(),
		ChallanNo:    challanNo,
		Date:         input.Date,
		PartyName:    input.PartyName,
		TruckNo:      input.TruckNo,
		Amount:       input.Amount,
		GSTNo:        input.GSTNo,
		CashDelivery: input.CashDelivery,
	}

	if err := uc.deliveryRepo.Create(ctx, challan); err != nil {
		return nil, err
	}

	return challan, nil
}

// GetDelivery retrieves a single delivery challan by ID.
func (uc *DeliveryUseCase) GetDelivery(ctx context.Context, id string) (*domain.RawDeliveryCharge, error) {
	return uc.deliveryRepo.GetByID(ctx, id)
}

// ListDeliveriesInput represents input for listing delivery challans.
type ListDeliveriesInput struct {
	Limit  int
	Offset int
}

// ListDeliveries lists stored delivery challans in arrival order.
func (uc *DeliveryUseCase) ListDeliveries(ctx context.Context, input ListDeliveriesInput) ([]domain.RawDeliveryCharge, error) {
	limit, offset := domain.ValidatePagination(input.Limit, input.Offset)
	return uc.deliveryRepo.List(ctx, limit, offset)
}
