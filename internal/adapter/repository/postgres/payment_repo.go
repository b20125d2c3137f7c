package postgres

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/vanshgehlot9/freightledger/internal/domain"
)

// PaymentRepository implements usecase.PaymentRepository over the
// payments document table.
type PaymentRepository struct {
	pool    *pgxpool.Pool
	retrier *Retrier
}

// NewPaymentRepository creates a new PaymentRepository.
func NewPaymentRepository(pool *pgxpool.Pool) *PaymentRepository {
	return &PaymentRepository{
		pool:    pool,
		retrier: NewRetrier(),
	}
}

// Create stores a payment document.
func (r *PaymentRepository) Create(ctx context.Context, payment *domain.RawPayment) error {
	doc, err := json.Marshal(payment)
	if err != nil {
		return fmt.Errorf("marshal payment: %w", err)
	}

	_, err = r.pool.Exec(ctx,
		`INSERT INTO payments (id, doc, created_at) VALUES ($1, $2, $3)`,
		payment.ID, doc, time.Now().UTC(),
	)
	return err
}

// GetByID retrieves a single payment document.
func (r *PaymentRepository) GetByID(ctx context.Context, id string) (*domain.RawPayment, error) {
	var doc []byte
	err := r.pool.QueryRow(ctx, `SELECT doc FROM payments WHERE id = $1`, id).Scan(&doc)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, domain.ErrPaymentNotFound
	}
	if err != nil {
		return nil, err
	}

	var payment domain.RawPayment
	if err := json.Unmarshal(doc, &payment); err != nil {
		return nil, fmt.Errorf("unmarshal payment %s: %w", id, err)
	}
	payment.ID = id
	return &payment, nil
}

// List returns a page of payment documents in arrival order.
func (r *PaymentRepository) List(ctx context.Context, limit, offset int) ([]domain.RawPayment, error) {
	return r.scanDocs(ctx,
		`SELECT id, doc FROM payments ORDER BY created_at, id LIMIT $1 OFFSET $2`,
		limit, offset)
}

// ListAll returns the full payment snapshot in arrival order.
func (r *PaymentRepository) ListAll(ctx context.Context) ([]domain.RawPayment, error) {
	return r.scanDocs(ctx, `SELECT id, doc FROM payments ORDER BY created_at, id`)
}

func (r *PaymentRepository) scanDocs(ctx context.Context, query string, args ...any) ([]domain.RawPayment, error) {
	var payments []domain.RawPayment

	err := r.retrier.Retry(ctx, func() error {
		rows, err := r.pool.Query(ctx, query, args...)
		if err != nil {
			return err
		}
		defer rows.Close()

		payments = payments[:0]
		for rows.Next() {
			var id string
			var doc []byte
			if err := rows.Scan(&id, &doc); err != nil {
				return err
			}

			var payment domain.RawPayment
			if err := json.Unmarshal(doc, &payment); err != nil {
				return fmt.Errorf("unmarshal payment %s: %w", id, err)
			}
			payment.ID = id
			payments = append(payments, payment)
		}
		return rows.Err()
	})
	if err != nil {
		return nil, err
	}

	return payments, nil
}
