package blobs

import "time"

type blobDTO struct {
	Key       string
	Value     string
	UpdatedAt time.Time
}
