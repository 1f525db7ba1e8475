package events

import (
	"fmt"

	"github.com/SergeyKozhin/trailer-scheduler/internal/business/overlap"
	"github.com/SergeyKozhin/trailer-scheduler/internal/model"
	"github.com/SergeyKozhin/trailer-scheduler/internal/pkg/validator"
	"github.com/SergeyKozhin/trailer-scheduler/internal/timegrid"
)

const DefaultDraftMinutes = 15

// NewDraft prepares an unsaved event for the slot that was picked on the grid.
// A start too late in the day to leave room for an end time is rejected.
func NewDraft(day int, startTime, resourceID string) (*model.Event, error) {
	end, err := timegrid.AddMinutes(startTime, DefaultDraftMinutes)
	if err != nil {
		return nil, fmt.Errorf("draft end time: %w", err)
	}
	if end <= startTime {
		return nil, fmt.Errorf("draft at %s: %w", startTime, model.ErrInvalidTimeRange)
	}

	return &model.Event{
		Day:        day,
		StartTime:  startTime,
		EndTime:    end,
		ResourceID: resourceID,
	}, nil
}

// Draft prepares a new event for a grid slot. Slots already covered by an
// event in the same resource scope are refused with model.ErrConflict.
func (s *Service) Draft(day int, startTime, resourceID string) (*model.Event, error) {
	v := validator.New()
	v.Check(s.days == nil || s.days.ValidDay(day), "day", "day is out of range")
	if resourceID != "" && s.resources != nil {
		v.Check(s.resources.Exists(resourceID), "resource_id", "unknown resource")
	}

	draft, err := NewDraft(day, startTime, resourceID)
	if err != nil {
		v.AddError("time", "time must be HH:MM and leave room for an end time")
	}
	if !v.Valid() {
		return nil, &model.ValidationError{Reason: model.ErrInvalidField, Fields: v.Errors}
	}

	if overlap.Occupied(s.store.Snapshot(), day, resourceID, startTime) {
		return nil, fmt.Errorf("slot %s on day %d: %w", startTime, day, model.ErrConflict)
	}

	return draft, nil
}
