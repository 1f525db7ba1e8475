package blobs

import "github.com/SergeyKozhin/trailer-scheduler/internal/database"

type Repository struct{}

func NewRepository() *Repository {
	return &Repository{}
}

var baseQuery = database.PSQL.
	Select(
		"key",
		"value",
		"updated_at",
	).
	From(database.BlobsTable)
