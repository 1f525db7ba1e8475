package blobs

import (
	"context"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/SergeyKozhin/trailer-scheduler/internal/database"
	"github.com/SergeyKozhin/trailer-scheduler/internal/model"
)

func (*Repository) GetBlob(ctx context.Context, q database.Queryable, key string) ([]byte, error) {
	qb := baseQuery.
		Where(sq.Eq{"key": key})

	var dtos []*blobDTO
	if err := q.Select(ctx, &dtos, qb); err != nil {
		return nil, fmt.Errorf("SQL request: %w", err)
	}

	if len(dtos) == 0 {
		return nil, model.ErrNoRecord
	}

	return []byte(dtos[0].Value), nil
}
