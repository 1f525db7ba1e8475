package storage

import "github.com/SergeyKozhin/trailer-scheduler/internal/model"

type eventDTO struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description,omitempty"`
	Day         int    `json:"day"`
	StartTime   string `json:"startTime"`
	EndTime     string `json:"endTime"`
	Color       string `json:"color,omitempty"`
	ResourceID  string `json:"resourceId,omitempty"`

	// Older snapshots named the resource "trailerId". Read only.
	TrailerID string `json:"trailerId,omitempty"`
}

func mapToEvent(dto *eventDTO) *model.Event {
	resourceID := dto.ResourceID
	if resourceID == "" {
		resourceID = dto.TrailerID
	}

	return &model.Event{
		ID:          dto.ID,
		Title:       dto.Title,
		Description: dto.Description,
		Day:         dto.Day,
		StartTime:   dto.StartTime,
		EndTime:     dto.EndTime,
		Color:       dto.Color,
		ResourceID:  resourceID,
	}
}

func mapToDTO(e *model.Event) *eventDTO {
	return &eventDTO{
		ID:          e.ID,
		Title:       e.Title,
		Description: e.Description,
		Day:         e.Day,
		StartTime:   e.StartTime,
		EndTime:     e.EndTime,
		Color:       e.Color,
		ResourceID:  e.ResourceID,
	}
}
