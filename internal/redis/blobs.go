package redis

import (
	"context"
	"errors"
	"fmt"

	"github.com/SergeyKozhin/trailer-scheduler/internal/model"
	"github.com/gomodule/redigo/redis"
)

// BlobRepository keeps opaque values under plain string keys.
type BlobRepository struct {
	pool *redis.Pool
}

func NewBlobRepository(pool *redis.Pool) *BlobRepository {
	return &BlobRepository{pool: pool}
}

func (r *BlobRepository) Get(ctx context.Context, key string) ([]byte, error) {
	conn, err := r.pool.GetContext(ctx)
	if err != nil {
		return nil, fmt.Errorf("get connection: %w", err)
	}
	defer conn.Close()

	data, err := redis.Bytes(conn.Do("GET", key))
	if err != nil {
		if errors.Is(err, redis.ErrNil) {
			return nil, model.ErrNoRecord
		}
		return nil, fmt.Errorf("GET %s: %w", key, err)
	}

	return data, nil
}

func (r *BlobRepository) Put(ctx context.Context, key string, data []byte) error {
	conn, err := r.pool.GetContext(ctx)
	if err != nil {
		return fmt.Errorf("get connection: %w", err)
	}
	defer conn.Close()

	if _, err := conn.Do("SET", key, data); err != nil {
		return fmt.Errorf("SET %s: %w", key, err)
	}

	return nil
}
