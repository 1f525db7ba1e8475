package events

import (
	"context"
)

// DeleteEvent removes the event if it exists. It never fails: Existed reports
// whether anything was removed and Warning carries a persistence failure.
func (s *Service) DeleteEvent(ctx context.Context, id string) *Result {
	s.mu.Lock()
	defer s.mu.Unlock()

	existed, err := s.store.Remove(ctx, id)
	if existed {
		s.logger.Infow("Event deleted", "id", id)
	}

	return &Result{
		Existed: existed,
		Warning: err,
	}
}
