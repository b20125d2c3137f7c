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

// DeliveryChargeRepository implements usecase.DeliveryChargeRepository
// over the delivery_charges document table.
type DeliveryChargeRepository struct {
	pool    *pgxpool.Pool
	retrier *Retrier
}

// NewDeliveryChargeRepository creates a new DeliveryChargeRepository.
func NewDeliveryChargeRepository(pool *pgxpool.Pool) *DeliveryChargeRepository {
	return &DeliveryChargeRepository{
		pool:    pool,
		retrier: NewRetrier(),
	}
}

// Create stores a delivery challan document.
func (r *DeliveryChargeRepository) Create(ctx context.Context, challan *domain.RawDeliveryCharge) error {
	doc, err := json.Marshal(challan)
	if err != nil {
		return fmt.Errorf("marshal challan: %w", err)
	}

	_, err = r.pool.Exec(ctx,
		`INSERT INTO delivery_charges (id, doc, created_at) VALUES ($1, $2, $3)`,
		challan.ID, doc, time.Now().UTC(),
	)
	return err
}

// GetByID retrieves a single challan document.
func (r *DeliveryChargeRepository) GetByID(ctx context.Context, id string) (*domain.RawDeliveryCharge, error) {
	var doc []byte
	err := r.pool.QueryRow(ctx, `SELECT doc FROM delivery_charges WHERE id = $1`, id).Scan(&doc)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, domain.ErrDeliveryNotFound
	}
	if err != nil {
		return nil, err
	}

	var challan domain.RawDeliveryCharge
	if err := json.Unmarshal(doc, &challan); err != nil {
		return nil, fmt.Errorf("unmarshal challan %s: %w", id, err)
	}
	challan.ID = id
	return &challan, nil
}

// List returns a page of challan documents in arrival order.
func (r *DeliveryChargeRepository) List(ctx context.Context, limit, offset int) ([]domain.RawDeliveryCharge, error) {
	return r.scanDocs(ctx,
		`SELECT id, doc FROM delivery_charges ORDER BY created_at, id LIMIT $1 OFFSET $2`,
		limit, offset)
}

// ListAll returns the full challan snapshot in arrival order.
func (r *DeliveryChargeRepository) ListAll(ctx context.Context) ([]domain.RawDeliveryCharge, error) {
	return r.scanDocs(ctx, `SELECT id, doc FROM delivery_charges ORDER BY created_at, id`)
}

func (r *DeliveryChargeRepository) scanDocs(ctx context.Context, query string, args ...any) ([]domain.RawDeliveryCharge, error) {
	var challans []domain.RawDeliveryCharge

	err := r.retrier.Retry(ctx, func() error {
		rows, err := r.pool.Query(ctx, query, args...)
		if err != nil {
			return err
		}
		defer rows.Close()

		challans = challans[:0]
		for rows.Next() {
			var id string
			var doc []byte
			if err := rows.Scan(&id, &doc); err != nil {
				return err
			}

			var challan domain.RawDeliveryCharge
			if err := json.Unmarshal(doc, &challan); err != nil {
				return fmt.Errorf("unmarshal challan %s: %w", id, err)
			}
			challan.ID = id
			challans = append(challans, challan)
		}
		return rows.Err()
	})
	if err != nil {
		return nil, err
	}

	return challans, nil
}
