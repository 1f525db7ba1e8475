package events

import (
	"fmt"
	"sort"

	"github.com/SergeyKozhin/trailer-scheduler/internal/model"
)

const DefaultRecentLimit = 3

func (s *Service) GetEvent(id string) (*model.Event, error) {
	e, err := s.store.Get(id)
	if err != nil {
		return nil, fmt.Errorf("store.Get: %w", err)
	}
	return e, nil
}

// GetEvents returns stored events matching the filter in store order.
func (s *Service) GetEvents(filter model.EventsFilter) []*model.Event {
	var res []*model.Event
	for _, e := range s.store.Snapshot() {
		if filter.Match(e) {
			res = append(res, e)
		}
	}
	return res
}

// RecentEvents returns the last n events in week order (day, then start time).
func (s *Service) RecentEvents(n int) []*model.Event {
	if n <= 0 {
		n = DefaultRecentLimit
	}

	events := s.store.Snapshot()
	sort.SliceStable(events, func(i, j int) bool {
		if events[i].Day != events[j].Day {
			return events[i].Day < events[j].Day
		}
		return events[i].StartTime < events[j].StartTime
	})

	if len(events) > n {
		events = events[len(events)-n:]
	}

	return events
}
