package blobs

import (
	"context"
	"errors"
	"os"
	"testing"

	"github.com/SergeyKozhin/trailer-scheduler/internal/database"
	"github.com/SergeyKozhin/trailer-scheduler/internal/model"
)

func TestRepository(t *testing.T) {
	url := os.Getenv("TEST_POSTGRES_URL")
	if url == "" {
		t.Skip("TEST_POSTGRES_URL not set")
	}

	ctx := context.Background()
	db, err := database.NewPGX(ctx, url)
	if err != nil {
		t.Fatalf("connect: %v", err)
	}
	repo := NewRepository()
	key := "scheduler-test-" + t.Name()

	for _, v := range []string{`[{"id":"1"}]`, `[]`} {
		if err := repo.PutBlob(ctx, db, key, []byte(v)); err != nil {
			t.Fatalf("put: %v", err)
		}
		got, err := repo.GetBlob(ctx, db, key)
		if err != nil {
			t.Fatalf("get: %v", err)
		}
		if string(got) != v {
			t.Fatalf("got %q, want %q", got, v)
		}
	}

	if _, err := repo.GetBlob(ctx, db, key+"-missing"); !errors.Is(err, model.ErrNoRecord) {
		t.Fatalf("expected ErrNoRecord, got %v", err)
	}
}
