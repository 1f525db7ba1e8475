package api

import (
	"errors"
	"net/http"

	"github.com/SergeyKozhin/trailer-scheduler/internal/business/events"
	"github.com/SergeyKozhin/trailer-scheduler/internal/business/overlap"
	"github.com/SergeyKozhin/trailer-scheduler/internal/model"
	"github.com/go-chi/chi/v5"
)

var errCantRetrieveDay = errors.New("day must be an integer")

type submitResp struct {
	Event   *eventResp `json:"event"`
	Warning string     `json:"warning,omitempty"`
}

func (a *Api) createEventHandler(w http.ResponseWriter, r *http.Request) {
	req := &eventReq{}
	if err := a.readJSON(w, r, req); err != nil {
		a.badRequestResponse(w, r, err)
		return
	}

	res, err := a.events.SubmitEvent(r.Context(), req.toEvent(""))
	if err != nil {
		a.businessErrorResponse(w, r, err)
		return
	}

	a.writeSubmitResult(w, r, http.StatusCreated, res)
}

func (a *Api) updateEventHandler(w http.ResponseWriter, r *http.Request) {
	event, ok := r.Context().Value(contextKeyEvent).(*model.Event)
	if !ok {
		a.serverErrorResponse(w, r, errCantRetrieveEvent)
		return
	}

	req := &eventReq{}
	if err := a.readJSON(w, r, req); err != nil {
		a.badRequestResponse(w, r, err)
		return
	}

	res, err := a.events.SubmitEvent(r.Context(), req.toEvent(event.ID))
	if err != nil {
		a.businessErrorResponse(w, r, err)
		return
	}

	a.writeSubmitResult(w, r, http.StatusOK, res)
}

func (a *Api) writeSubmitResult(w http.ResponseWriter, r *http.Request, status int, res *events.Result) {
	if res.Warning != nil {
		a.logger.Warnw("event saved in memory only", "id", res.Event.ID, "err", res.Warning)
	}

	resp := &submitResp{
		Event:   a.eventResp(res.Event),
		Warning: warningText(res.Warning),
	}
	if err := a.writeJSON(w, status, resp, nil); err != nil {
		a.serverErrorResponse(w, r, err)
	}
}

func (a *Api) deleteEventHandler(w http.ResponseWriter, r *http.Request) {
	res := a.events.DeleteEvent(r.Context(), chi.URLParam(r, "eventID"))

	resp := &struct {
		Existed bool   `json:"existed"`
		Warning string `json:"warning,omitempty"`
	}{
		Existed: res.Existed,
		Warning: warningText(res.Warning),
	}

	if err := a.writeJSON(w, http.StatusOK, resp, nil); err != nil {
		a.serverErrorResponse(w, r, err)
	}
}

func (a *Api) getEventHandler(w http.ResponseWriter, r *http.Request) {
	event, ok := r.Context().Value(contextKeyEvent).(*model.Event)
	if !ok {
		a.serverErrorResponse(w, r, errCantRetrieveEvent)
		return
	}

	if err := a.writeJSON(w, http.StatusOK, a.eventResp(event), nil); err != nil {
		a.serverErrorResponse(w, r, err)
	}
}

func (a *Api) getEventsHandler(w http.ResponseWriter, r *http.Request) {
	filter := model.EventsFilter{
		ResourceID: r.URL.Query().Get("resource_id"),
	}

	if r.URL.Query().Get("day") != "" {
		day, err := intQueryParam(r, "day", 0)
		if err != nil {
			a.badRequestResponse(w, r, errCantRetrieveDay)
			return
		}
		filter.Day = &day
	}

	a.writeEvents(w, r, a.events.GetEvents(filter))
}

func (a *Api) getRecentEventsHandler(w http.ResponseWriter, r *http.Request) {
	limit, err := intQueryParam(r, "limit", events.DefaultRecentLimit)
	if err != nil {
		a.badRequestResponse(w, r, err)
		return
	}

	a.writeEvents(w, r, a.events.RecentEvents(limit))
}

func (a *Api) writeEvents(w http.ResponseWriter, r *http.Request, list []*model.Event) {
	if err := a.writeJSON(w, http.StatusOK, mapSlice(list, a.eventResp), nil); err != nil {
		a.serverErrorResponse(w, r, err)
	}
}

// eventResp adds the number of grid slots the event covers.
func (a *Api) eventResp(e *model.Event) *eventResp {
	resp := mapToEventResp(e)
	resp.Span = overlap.SlotSpan(e, a.grid.SlotMinutes)
	return resp
}

// getDraftHandler returns the defaults for a new event placed on a free grid slot.
func (a *Api) getDraftHandler(w http.ResponseWriter, r *http.Request) {
	day, err := intQueryParam(r, "day", 0)
	if err != nil {
		a.badRequestResponse(w, r, err)
		return
	}

	draft, err := a.events.Draft(day, r.URL.Query().Get("time"), r.URL.Query().Get("resource_id"))
	if err != nil {
		a.businessErrorResponse(w, r, err)
		return
	}

	if err := a.writeJSON(w, http.StatusOK, a.eventResp(draft), nil); err != nil {
		a.serverErrorResponse(w, r, err)
	}
}
