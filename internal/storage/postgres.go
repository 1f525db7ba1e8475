package storage

import (
	"context"

	"github.com/SergeyKozhin/trailer-scheduler/internal/database"
)

type blobsRepository interface {
	GetBlob(ctx context.Context, q database.Queryable, key string) ([]byte, error)
	PutBlob(ctx context.Context, q database.Queryable, key string, value []byte) error
}

// Postgres stores blobs in the kv_blobs table.
type Postgres struct {
	db    database.PGX
	blobs blobsRepository
}

func NewPostgres(db database.PGX, blobs blobsRepository) *Postgres {
	return &Postgres{
		db:    db,
		blobs: blobs,
	}
}

func (p *Postgres) Get(ctx context.Context, key string) ([]byte, error) {
	return p.blobs.GetBlob(ctx, p.db, key)
}

func (p *Postgres) Put(ctx context.Context, key string, data []byte) error {
	return p.blobs.PutBlob(ctx, p.db, key, data)
}
