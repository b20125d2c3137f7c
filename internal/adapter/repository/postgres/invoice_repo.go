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

// InvoiceRepository implements usecase.InvoiceRepository over the
// invoices document table.
type InvoiceRepository struct {
	pool    *pgxpool.Pool
	retrier *Retrier
}

// NewInvoiceRepository creates a new InvoiceRepository.
func NewInvoiceRepository(pool *pgxpool.Pool) *InvoiceRepository {
	return &InvoiceRepository{
		pool:    pool,
		retrier: NewRetrier(),
	}
}

// Create stores an invoice document.
func (r *InvoiceRepository) Create(ctx context.Context, invoice *domain.RawInvoice) error {
	doc, err := json.Marshal(invoice)
	if err != nil {
		return fmt.Errorf("marshal invoice: %w", err)
	}

	_, err = r.pool.Exec(ctx,
		`INSERT INTO invoices (id, doc, created_at) VALUES ($1, $2, $3)`,
		invoice.ID, doc, time.Now().UTC(),
	)
	return err
}

// GetByID retrieves a single invoice document.
func (r *InvoiceRepository) GetByID(ctx context.Context, id string) (*domain.RawInvoice, error) {
	var doc []byte
	err := r.pool.QueryRow(ctx, `SELECT doc FROM invoices WHERE id = $1`, id).Scan(&doc)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, domain.ErrInvoiceNotFound
	}
	if err != nil {
		return nil, err
	}

	var invoice domain.RawInvoice
	if err := json.Unmarshal(doc, &invoice); err != nil {
		return nil, fmt.Errorf("unmarshal invoice %s: %w", id, err)
	}
	invoice.ID = id
	return &invoice, nil
}

// List returns a page of invoice documents in arrival order.
func (r *InvoiceRepository) List(ctx context.Context, limit, offset int) ([]domain.RawInvoice, error) {
	return r.scanDocs(ctx,
		`SELECT id, doc FROM invoices ORDER BY created_at, id LIMIT $1 OFFSET $2`,
		limit, offset)
}

// ListAll returns the full invoice snapshot in arrival order for
// statement computation.
func (r *InvoiceRepository) ListAll(ctx context.Context) ([]domain.RawInvoice, error) {
	return r.scanDocs(ctx, `SELECT id, doc FROM invoices ORDER BY created_at, id`)
}

func (r *InvoiceRepository) scanDocs(ctx context.Context, query string, args ...any) ([]domain.RawInvoice, error) {
	var invoices []domain.RawInvoice

	err := r.retrier.Retry(ctx, func() error {
		rows, err := r.pool.Query(ctx, query, args...)
		if err != nil {
			return err
		}
		defer rows.Close()

		invoices = invoices[:0]
		for rows.Next() {
			var id string
			var doc []byte
			if err := rows.Scan(&id, &doc); err != nil {
				return err
			}

			var invoice domain.RawInvoice
			if err := json.Unmarshal(doc, &invoice); err != nil {
				return fmt.Errorf("unmarshal invoice %s: %w", id, err)
			}
			invoice.ID = id
			invoices = append(invoices, invoice)
		}
		return rows.Err()
	})
	if err != nil {
		return nil, err
	}

	return invoices, nil
}
