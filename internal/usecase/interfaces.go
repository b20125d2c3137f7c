package usecase

import (
	"context"
	"time"

	"github.com/vanshgehlot9/freightledger/internal/domain"
)

// InvoiceRepository defines data access for freight invoices (bilties).
type InvoiceRepository interface {
	Create(ctx context.Context, invoice *domain.RawInvoice) error
	GetByID(ctx context.Context, id string) (*domain.RawInvoice, error)
	List(ctx context.Context, limit, offset int) ([]domain.RawInvoice, error)
	// ListAll returns the full snapshot in arrival order for statement
	// computation.
	ListAll(ctx context.Context) ([]domain.RawInvoice, error)
}

// DeliveryChargeRepository defines data access for delivery challans.
type DeliveryChargeRepository interface {
	Create(ctx context.Context, challan *domain.RawDeliveryCharge) error
	GetByID(ctx context.Context, id string) (*domain.RawDeliveryCharge, error)
	List(ctx context.Context, limit, offset int) ([]domain.RawDeliveryCharge, error)
	ListAll(ctx context.Context) ([]domain.RawDeliveryCharge, error)
}

// PaymentRepository defines data access for payment receipts.
type PaymentRepository interface {
	Create(ctx context.Context, payment *domain.RawPayment) error
	GetByID(ctx context.Context, id string) (*domain.RawPayment, error)
	List(ctx context.Context, limit, offset int) ([]domain.RawPayment, error)
	ListAll(ctx context.Context) ([]domain.RawPayment, error)
}

// SequenceRepository hands out monotonically increasing document numbers
// (bilty and challan numbering) from a shared atomic counter.
type SequenceRepository interface {
	Next(ctx context.Context, name string) (int64, error)
}

// IDGenerator generates unique record IDs.
type IDGenerator interface {
	Generate() string
}

// IdempotencyStore handles idempotency key storage for booking requests.
type IdempotencyStore interface {
	// CheckAndSet atomically checks if key exists, sets if not.
	// Returns (exists, existingValue, error).
	CheckAndSet(ctx context.Context, key string, response []byte, ttl time.Duration) (bool, []byte, error)
	// Update updates an existing key with the final response.
	Update(ctx context.Context, key string, response []byte, ttl time.Duration) error
}
