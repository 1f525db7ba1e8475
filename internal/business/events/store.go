package events

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/SergeyKozhin/trailer-scheduler/internal/business/overlap"
	"github.com/SergeyKozhin/trailer-scheduler/internal/model"
	"github.com/SergeyKozhin/trailer-scheduler/internal/timegrid"
	"go.uber.org/zap"
)

type persistence interface {
	Load(ctx context.Context) ([]*model.Event, error)
	Save(ctx context.Context, events []*model.Event) error
}

// Store owns the event collection. Every successful mutation is persisted;
// a failed write is reported as *model.StorageError and the in-memory change is kept.
type Store struct {
	mu      sync.RWMutex
	events  []*model.Event
	persist persistence
	logger  *zap.SugaredLogger

	// dirty is set while the last save failed.
	dirty bool
}

// NewStore loads the previous snapshot. Missing or unreadable data leaves the store empty.
func NewStore(ctx context.Context, persist persistence, logger *zap.SugaredLogger) *Store {
	s := &Store{
		persist: persist,
		logger:  logger,
	}

	events, err := persist.Load(ctx)
	switch {
	case errors.Is(err, model.ErrNoRecord):
		logger.Infow("No saved events, starting empty")
	case err != nil:
		logger.Warnw("Failed loading saved events, starting empty", "err", err)
	default:
		s.events = s.sanitize(events)
		logger.Infow("Loaded saved events", "count", len(s.events))
	}

	return s
}

func (s *Store) Add(ctx context.Context, event *model.Event) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.indexOf(event.ID) >= 0 {
		return fmt.Errorf("event %s: %w", event.ID, model.ErrAlreadyExists)
	}

	s.events = append(s.events, event.Copy())
	return s.save(ctx, "add")
}

// Replace overwrites all fields of the event with the same ID, keeping its position.
func (s *Store) Replace(ctx context.Context, event *model.Event) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.indexOf(event.ID)
	if i < 0 {
		return fmt.Errorf("event %s: %w", event.ID, model.ErrNoRecord)
	}

	s.events[i] = event.Copy()
	return s.save(ctx, "replace")
}

// Remove deletes the event if present. Removing an absent ID is not an error.
func (s *Store) Remove(ctx context.Context, id string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.indexOf(id)
	if i < 0 {
		return false, nil
	}

	s.events = append(s.events[:i:i], s.events[i+1:]...)
	return true, s.save(ctx, "remove")
}

func (s *Store) Get(id string) (*model.Event, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	i := s.indexOf(id)
	if i < 0 {
		return nil, fmt.Errorf("event %s: %w", id, model.ErrNoRecord)
	}

	return s.events[i].Copy(), nil
}

// Snapshot returns copies of all events in insertion order.
func (s *Store) Snapshot() []*model.Event {
	s.mu.RLock()
	defer s.mu.RUnlock()

	res := make([]*model.Event, len(s.events))
	for i, e := range s.events {
		res[i] = e.Copy()
	}

	return res
}

func (s *Store) indexOf(id string) int {
	for i, e := range s.events {
		if e.ID == id {
			return i
		}
	}
	return -1
}

// Flush retries persisting the collection if an earlier save failed.
// It reports whether a write was attempted.
func (s *Store) Flush(ctx context.Context) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.dirty {
		return false, nil
	}

	return true, s.save(ctx, "flush")
}

func (s *Store) save(ctx context.Context, op string) error {
	if err := s.persist.Save(ctx, s.events); err != nil {
		s.dirty = true
		s.logger.Warnw("Failed saving events, keeping in-memory state", "op", op, "err", err)
		return &model.StorageError{Op: op, Err: err}
	}
	s.dirty = false
	return nil
}

// sanitize drops loaded records that would break the store's invariants:
// repeated ids, clocks that are not HH:MM, empty ranges and double bookings.
// The first occurrence wins.
func (s *Store) sanitize(events []*model.Event) []*model.Event {
	seen := make(map[string]struct{}, len(events))
	res := make([]*model.Event, 0, len(events))
	for _, e := range events {
		if _, ok := seen[e.ID]; ok {
			s.logger.Warnw("Dropping saved event with repeated id", "id", e.ID)
			continue
		}

		if err := normalizeTimes(e); err != nil {
			s.logger.Warnw("Dropping malformed saved event", "id", e.ID, "err", err)
			continue
		}

		if conflict := overlap.CheckConflict(e, res); conflict != nil {
			s.logger.Warnw("Dropping overlapping saved event", "id", e.ID, "conflict_id", conflict.ID)
			continue
		}

		seen[e.ID] = struct{}{}
		res = append(res, e)
	}
	return res
}

func normalizeTimes(e *model.Event) error {
	start, err := timegrid.ParseClock(e.StartTime)
	if err != nil {
		return fmt.Errorf("start time: %w", err)
	}
	end, err := timegrid.ParseClock(e.EndTime)
	if err != nil {
		return fmt.Errorf("end time: %w", err)
	}
	if start >= end {
		return model.ErrInvalidTimeRange
	}

	e.StartTime = timegrid.FormatClock(start)
	e.EndTime = timegrid.FormatClock(end)
	return nil
}
