package integration

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"
	"time"

	"github.com/shopspring/decimal"

	adaptershttp "github.com/vanshgehlot9/freightledger/internal/adapter/http"
	"github.com/vanshgehlot9/freightledger/internal/adapter/http/dto"
	"github.com/vanshgehlot9/freightledger/internal/adapter/http/handler"
	apimiddleware "github.com/vanshgehlot9/freightledger/internal/adapter/http/middleware"
	"github.com/vanshgehlot9/freightledger/internal/adapter/repository/postgres"
	redisrepo "github.com/vanshgehlot9/freightledger/internal/adapter/repository/redis"
	infraredis "github.com/vanshgehlot9/freightledger/internal/infrastructure/redis"
	"github.com/vanshgehlot9/freightledger/internal/usecase"
	"github.com/vanshgehlot9/freightledger/tests/testutil"
)

func TestInvoiceBookingFlow(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test")
	}

	ctx := context.Background()
	testDB := testutil.NewTestDB(t)
	defer testDB.Cleanup()
	testDB.TruncateAll(ctx)

	redisURL := os.Getenv("REDIS_URL")
	if redisURL == "" {
		redisURL = "redis://localhost:6379"
	}
	redisClient, err := infraredis.NewClient(ctx, redisURL)
	if err != nil {
		t.Fatalf("failed to connect to redis: %v", err)
	}
	defer redisClient.Close()
	redisClient.FlushDB(ctx)

	invoiceRepo := postgres.NewInvoiceRepository(testDB.Pool)
	deliveryRepo := postgres.NewDeliveryChargeRepository(testDB.Pool)
	paymentRepo := postgres.NewPaymentRepository(testDB.Pool)
	seqRepo := redisrepo.NewSequenceRepository(redisClient)
	idGen := postgres.NewULIDGenerator()

	router := adaptershttp.NewRouter(adaptershttp.RouterConfig{
		StatementHandler: handler.NewStatementHandler(
			usecase.NewStatementUseCase(invoiceRepo, deliveryRepo, paymentRepo), nil),
		InvoiceHandler:   handler.NewInvoiceHandler(usecase.NewInvoiceUseCase(invoiceRepo, seqRepo, idGen)),
		DeliveryHandler:  handler.NewDeliveryHandler(usecase.NewDeliveryUseCase(deliveryRepo, seqRepo, idGen)),
		PaymentHandler:   handler.NewPaymentHandler(usecase.NewPaymentUseCase(paymentRepo, idGen)),
		HealthHandler:    handler.NewHealthHandler(testDB.Pool, redisClient),
		IdempotencyStore: redisrepo.NewIdempotencyStore(redisClient),
	})

	bookInvoice := func(key string) dto.InvoiceResponse {
		body, _ := json.Marshal(dto.CreateInvoiceRequest{
			Date:          time.Date(2024, 1, 5, 0, 0, 0, 0, time.UTC),
			ConsignorName: "Acme Traders",
			ConsigneeName: "Globex",
			TruckNo:       "RJ19-1221",
			GrandTotal:    decimal.NewFromInt(1000),
		})

		req := httptest.NewRequest(http.MethodPost, "/api/v1/invoices/", bytes.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
		if key != "" {
			req.Header.Set(apimiddleware.IdempotencyKeyHeader, key)
		}
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)

		if rec.Code != http.StatusCreated && rec.Code != http.StatusOK {
			t.Fatalf("booking failed with %d: %s", rec.Code, rec.Body.String())
		}

		var resp dto.InvoiceResponse
		if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
			t.Fatalf("failed to decode response: %v", err)
		}
		return resp
	}

	first := bookInvoice("")
	second := bookInvoice("")

	if first.BiltyNo != 1 || second.BiltyNo != 2 {
		t.Fatalf("expected sequential bilty numbers 1 and 2, got %d and %d", first.BiltyNo, second.BiltyNo)
	}

	// Replaying the same idempotency key must not book a third invoice.
	third := bookInvoice("idem-key-1")
	replay := bookInvoice("idem-key-1")
	if replay.ID != third.ID || replay.BiltyNo != third.BiltyNo {
		t.Fatalf("expected replayed booking to return the original document, got %+v vs %+v", replay, third)
	}

	// The booked invoices show up on the ledger.
	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/v1/statements", nil)
	router.ServeHTTP(rec, req)

	var statement dto.StatementResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &statement); err != nil {
		t.Fatalf("failed to decode statement: %v", err)
	}
	if len(statement.Rows) != 3 {
		t.Fatalf("expected 3 ledger rows after bookings, got %d", len(statement.Rows))
	}
	if !statement.Totals.TotalDebit.Equal(decimal.NewFromInt(3000)) {
		t.Fatalf("expected total debit 3000, got %s", statement.Totals.TotalDebit)
	}
}
