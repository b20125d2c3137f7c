package redis

import (
	"context"
	"testing"
)

func TestSequenceRepositoryNextIsMonotonic(t *testing.T) {
	client, mr := newTestRedisClient(t)
	defer mr.Close()
	defer client.Close()

	seq := NewSequenceRepository(client)
	ctx := context.Background()

	for want := int64(1); want <= 5; want++ {
		got, err := seq.Next(ctx, "bilty")
		if err != nil {
			t.Fatalf("Next failed: %v", err)
		}
		if got != want {
			t.Fatalf("expected %d, got %d", want, got)
		}
	}
}

func TestSequenceRepositoryNamesAreIndependent(t *testing.T) {
	client, mr := newTestRedisClient(t)
	defer mr.Close()
	defer client.Close()

	seq := NewSequenceRepository(client)
	ctx := context.Background()

	for i := 0; i < 3; i++ {
		if _, err := seq.Next(ctx, "bilty"); err != nil {
			t.Fatalf("Next failed: %v", err)
		}
	}

	got, err := seq.Next(ctx, "challan")
	if err != nil {
		t.Fatalf("Next failed: %v", err)
	}
	if got != 1 {
		t.Fatalf("expected challan sequence to start at 1, got %d", got)
	}
}

func TestSequenceRepositoryCurrent(t *testing.T) {
	client, mr := newTestRedisClient(t)
	defer mr.Close()
	defer client.Close()

	seq := NewSequenceRepository(client)
	ctx := context.Background()

	got, err := seq.Current(ctx, "bilty")
	if err != nil {
		t.Fatalf("Current failed: %v", err)
	}
	if got != 0 {
		t.Fatalf("expected 0 for untouched sequence, got %d", got)
	}

	if _, err := seq.Next(ctx, "bilty"); err != nil {
		t.Fatalf("Next failed: %v", err)
	}
	if _, err := seq.Next(ctx, "bilty"); err != nil {
		t.Fatalf("Next failed: %v", err)
	}

	got, err = seq.Current(ctx, "bilty")
	if err != nil {
		t.Fatalf("Current failed: %v", err)
	}
	if got != 2 {
		t.Fatalf("expected 2, got %d", got)
	}
}
