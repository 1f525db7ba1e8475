package api

import (
	"github.com/SergeyKozhin/trailer-scheduler/internal/model"
)

type eventResp struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description,omitempty"`
	Day         int    `json:"day"`
	StartTime   string `json:"start_time"`
	EndTime     string `json:"end_time"`
	Color       string `json:"color,omitempty"`
	ResourceID  string `json:"resource_id,omitempty"`
	Span        int    `json:"span,omitempty"`
}

func mapToEventResp(e *model.Event) *eventResp {
	return &eventResp{
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

type resourceResp struct {
	ID     string `json:"id"`
	Name   string `json:"name"`
	Status string `json:"status"`
}

func mapToResourceResp(r *model.Resource) *resourceResp {
	return &resourceResp{
		ID:     r.ID,
		Name:   r.Name,
		Status: string(r.Status),
	}
}

type eventReq struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Day         int    `json:"day"`
	StartTime   string `json:"start_time"`
	EndTime     string `json:"end_time"`
	Color       string `json:"color"`
	ResourceID  string `json:"resource_id"`
}

func (req *eventReq) toEvent(id string) *model.Event {
	return &model.Event{
		ID:          id,
		Title:       req.Title,
		Description: req.Description,
		Day:         req.Day,
		StartTime:   req.StartTime,
		EndTime:     req.EndTime,
		Color:       req.Color,
		ResourceID:  req.ResourceID,
	}
}

func warningText(err error) string {
	if err == nil {
		return ""
	}
	return err.Error()
}
