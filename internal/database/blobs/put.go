package blobs

import (
	"context"
	"fmt"
	"time"

	"github.com/SergeyKozhin/trailer-scheduler/internal/database"
)

func (*Repository) PutBlob(ctx context.Context, q database.Queryable, key string, value []byte) error {
	qb := database.PSQL.
		Insert(database.BlobsTable).
		Columns(
			"key",
			"value",
			"updated_at",
		).
		Values(
			key,
			string(value),
			time.Now().UTC(),
		).
		Suffix("ON CONFLICT (key) DO UPDATE SET value = excluded.value, updated_at = excluded.updated_at")

	if _, err := q.Exec(ctx, qb); err != nil {
		return fmt.Errorf("SQL request: %w", err)
	}

	return nil
}
