package events

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/SergeyKozhin/trailer-scheduler/internal/business/overlap"
	"github.com/SergeyKozhin/trailer-scheduler/internal/model"
	"github.com/SergeyKozhin/trailer-scheduler/internal/pkg/validator"
)

// SubmitEvent validates the candidate, checks it against the events already
// scheduled in its scope and then adds or replaces it. Rejected candidates
// leave the store untouched.
func (s *Service) SubmitEvent(ctx context.Context, candidate *model.Event) (*Result, error) {
	event := candidate.Copy()
	event.Title = strings.TrimSpace(event.Title)

	if err := s.validate(event); err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if conflict := overlap.CheckConflict(event, s.store.Snapshot()); conflict != nil {
		s.logger.Debugw("Rejected conflicting event",
			"title", event.Title,
			"day", event.Day,
			"conflict_id", conflict.ID,
		)
		return nil, &model.ConflictError{Conflict: conflict}
	}

	if event.ID == "" {
		event.ID = s.newID()
	}

	res := &Result{Event: event}

	var err error
	if _, getErr := s.store.Get(event.ID); getErr == nil {
		res.Updated = true
		err = s.store.Replace(ctx, event)
	} else {
		err = s.store.Add(ctx, event)
	}

	if err != nil {
		var storageErr *model.StorageError
		if !errors.As(err, &storageErr) {
			return nil, fmt.Errorf("commit event: %w", err)
		}
		res.Warning = storageErr
	}

	s.logger.Infow("Event committed", "id", event.ID, "updated", res.Updated)
	return res, nil
}

func (s *Service) validate(e *model.Event) error {
	v := validator.New()
	v.Check(e.Title != "", "title", "title must be provided")
	v.Check(e.StartTime != "", "start_time", "start time must be provided")
	v.Check(e.EndTime != "", "end_time", "end time must be provided")
	if !v.Valid() {
		return &model.ValidationError{Reason: model.ErrMissingField, Fields: v.Errors}
	}

	v.Check(validator.Matches(e.StartTime, validator.ClockRX), "start_time", "start time must be HH:MM")
	v.Check(validator.Matches(e.EndTime, validator.ClockRX), "end_time", "end time must be HH:MM")
	v.Check(s.days == nil || s.days.ValidDay(e.Day), "day", "day is out of range")
	v.Check(e.Color == "" || validator.Matches(e.Color, validator.HexRX), "color", "color must be valid HEX color")
	v.Check(e.Color == "" || model.IsPaletteColor(e.Color), "color", "color must be one of the palette colors")
	if e.ResourceID != "" && s.resources != nil {
		v.Check(s.resources.Exists(e.ResourceID), "resource_id", "unknown resource")
	}
	if !v.Valid() {
		return &model.ValidationError{Reason: model.ErrInvalidField, Fields: v.Errors}
	}

	if e.StartTime >= e.EndTime {
		return &model.ValidationError{
			Reason: model.ErrInvalidTimeRange,
			Fields: map[string]string{"end_time": "end time must be after start time"},
		}
	}

	return nil
}
