package storage

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/SergeyKozhin/trailer-scheduler/internal/model"
)

const DefaultKey = "scheduler-events"

// EventsBlob stores the whole event collection under a single key.
type EventsBlob struct {
	medium Medium
	key    string
}

func NewEventsBlob(medium Medium, key string) *EventsBlob {
	if key == "" {
		key = DefaultKey
	}
	return &EventsBlob{
		medium: medium,
		key:    key,
	}
}

// Load returns model.ErrNoRecord if nothing was saved yet.
func (b *EventsBlob) Load(ctx context.Context) ([]*model.Event, error) {
	data, err := b.medium.Get(ctx, b.key)
	if err != nil {
		return nil, fmt.Errorf("medium.Get: %w", err)
	}

	return decodeEvents(data)
}

func (b *EventsBlob) Save(ctx context.Context, events []*model.Event) error {
	data, err := encodeEvents(events)
	if err != nil {
		return err
	}

	if err := b.medium.Put(ctx, b.key, data); err != nil {
		return fmt.Errorf("medium.Put: %w", err)
	}

	return nil
}

func encodeEvents(events []*model.Event) ([]byte, error) {
	dtos := make([]*eventDTO, len(events))
	for i, e := range events {
		dtos[i] = mapToDTO(e)
	}

	data, err := json.Marshal(dtos)
	if err != nil {
		return nil, fmt.Errorf("marshal events: %w", err)
	}

	return data, nil
}

func decodeEvents(data []byte) ([]*model.Event, error) {
	var dtos []*eventDTO
	if err := json.Unmarshal(data, &dtos); err != nil {
		return nil, fmt.Errorf("unmarshal events: %w", err)
	}

	res := make([]*model.Event, 0, len(dtos))
	for _, d := range dtos {
		if d == nil {
			continue
		}
		res = append(res, mapToEvent(d))
	}

	return res, nil
}
