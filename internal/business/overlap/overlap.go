// Package overlap decides whether events collide on the week grid.
package overlap

import (
	"github.com/SergeyKozhin/trailer-scheduler/internal/model"
	"github.com/SergeyKozhin/trailer-scheduler/internal/timegrid"
)

// Overlaps reports whether [start1, end1) and [start2, end2) intersect.
// Clocks are zero-padded HH:MM, so string order is time order.
func Overlaps(start1, end1, start2, end2 string) bool {
	return start1 < end2 && start2 < end1
}

// CheckConflict returns the first event in existing that shares the candidate's
// day and resource scope and intersects its interval. The candidate itself is skipped.
func CheckConflict(candidate *model.Event, existing []*model.Event) *model.Event {
	for _, e := range existing {
		if e.ID == candidate.ID || e.Day != candidate.Day || e.ResourceID != candidate.ResourceID {
			continue
		}

		if Overlaps(candidate.StartTime, candidate.EndTime, e.StartTime, e.EndTime) {
			return e
		}
	}

	return nil
}

// Occupied reports whether an event of day in the resource scope covers slot.
func Occupied(events []*model.Event, day int, resourceID, slot string) bool {
	for _, e := range events {
		if e.Day == day && e.ResourceID == resourceID && e.StartTime <= slot && e.EndTime > slot {
			return true
		}
	}
	return false
}

// SlotSpan returns how many slots of stepMinutes the event covers, rounded up.
func SlotSpan(e *model.Event, stepMinutes int) int {
	if stepMinutes <= 0 {
		return 0
	}

	start, err := timegrid.ParseClock(e.StartTime)
	if err != nil {
		return 0
	}
	end, err := timegrid.ParseClock(e.EndTime)
	if err != nil || end <= start {
		return 0
	}

	return (end - start + stepMinutes - 1) / stepMinutes
}
