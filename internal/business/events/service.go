package events

import (
	"context"
	"sync"

	"github.com/SergeyKozhin/trailer-scheduler/internal/model"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Service is the scheduling entry point: it validates drafts, rejects
// double bookings and commits to the store.
type Service struct {
	// mu serialises check-then-commit so two submits can't both pass the conflict check.
	mu sync.Mutex

	store     eventStore
	days      dayRange
	resources resourceLookup
	logger    *zap.SugaredLogger
	newID     func() string
}

type eventStore interface {
	Add(ctx context.Context, event *model.Event) error
	Replace(ctx context.Context, event *model.Event) error
	Remove(ctx context.Context, id string) (bool, error)
	Get(id string) (*model.Event, error)
	Snapshot() []*model.Event
}

type dayRange interface {
	ValidDay(day int) bool
}

type resourceLookup interface {
	Exists(id string) bool
}

// Result describes a committed operation. Warning holds a persistence failure
// that did not prevent the change.
type Result struct {
	Event   *model.Event
	Updated bool
	Existed bool
	Warning error
}

// NewService builds the facade. resources may be nil, in which case resource
// ids on events are not checked.
func NewService(store eventStore, days dayRange, resources resourceLookup, logger *zap.SugaredLogger) *Service {
	return &Service{
		store:     store,
		days:      days,
		resources: resources,
		logger:    logger,
		newID:     uuid.NewString,
	}
}
