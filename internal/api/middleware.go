package api

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/SergeyKozhin/trailer-scheduler/internal/model"
	"github.com/go-chi/chi/v5"
)

type contextKey string

const (
	contextKeyEvent    = contextKey("event")
	contextKeyResource = contextKey("resource")
)

var (
	errCantRetrieveEvent    = errors.New("can't retrieve event from context")
	errCantRetrieveResource = errors.New("can't retrieve resource from context")
)

func (a *Api) eventCtx(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		event, err := a.events.GetEvent(chi.URLParam(r, "eventID"))
		if err != nil {
			switch {
			case errors.Is(err, model.ErrNoRecord):
				a.notFoundResponse(w, r)
			default:
				a.serverErrorResponse(w, r, fmt.Errorf("get event: %w", err))
			}
			return
		}

		eventCtx := context.WithValue(r.Context(), contextKeyEvent, event)
		next.ServeHTTP(w, r.WithContext(eventCtx))
	})
}

func (a *Api) resourceCtx(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		resource, err := a.resources.Get(chi.URLParam(r, "resourceID"))
		if err != nil {
			switch {
			case errors.Is(err, model.ErrNoRecord):
				a.notFoundResponse(w, r)
			default:
				a.serverErrorResponse(w, r, fmt.Errorf("get resource: %w", err))
			}
			return
		}

		resourceCtx := context.WithValue(r.Context(), contextKeyResource, resource)
		next.ServeHTTP(w, r.WithContext(resourceCtx))
	})
}
