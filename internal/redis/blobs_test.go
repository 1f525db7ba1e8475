package redis

import (
	"context"
	"errors"
	"os"
	"testing"

	"github.com/SergeyKozhin/trailer-scheduler/internal/model"
	"go.uber.org/zap"
)

func TestBlobRepository(t *testing.T) {
	url := os.Getenv("TEST_REDIS_URL")
	if url == "" {
		t.Skip("TEST_REDIS_URL not set")
	}

	ctx := context.Background()
	repo := NewBlobRepository(NewRedisPool(zap.NewNop().Sugar(), url))
	key := "scheduler-test-" + t.Name()

	if err := repo.Put(ctx, key, []byte(`[]`)); err != nil {
		t.Fatalf("put: %v", err)
	}
	data, err := repo.Get(ctx, key)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if string(data) != `[]` {
		t.Fatalf("unexpected value %q", data)
	}

	if _, err := repo.Get(ctx, key+"-missing"); !errors.Is(err, model.ErrNoRecord) {
		t.Fatalf("expected ErrNoRecord, got %v", err)
	}
}
