package api

import (
	"context"
	"net/http"

	"github.com/SergeyKozhin/trailer-scheduler/internal/business/events"
	"github.com/SergeyKozhin/trailer-scheduler/internal/model"
	"github.com/SergeyKozhin/trailer-scheduler/internal/timegrid"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"go.uber.org/zap"
)

type Api struct {
	handler http.Handler
	logger  *zap.SugaredLogger

	grid      *timegrid.Grid
	events    eventsService
	resources resourceRegistry
}

type eventsService interface {
	SubmitEvent(ctx context.Context, candidate *model.Event) (*events.Result, error)
	DeleteEvent(ctx context.Context, id string) *events.Result
	GetEvent(id string) (*model.Event, error)
	GetEvents(filter model.EventsFilter) []*model.Event
	RecentEvents(n int) []*model.Event
	Draft(day int, startTime, resourceID string) (*model.Event, error)
}

type resourceRegistry interface {
	List() []*model.Resource
	Get(id string) (*model.Resource, error)
	SetStatus(id string, status model.ResourceStatus) (*model.Resource, error)
}

func NewApi(
	logger *zap.SugaredLogger,
	grid *timegrid.Grid,
	events eventsService,
	resources resourceRegistry,
) (*Api, error) {
	a := &Api{
		logger:    logger,
		grid:      grid,
		events:    events,
		resources: resources,
	}
	a.setupHandler()

	return a, nil
}

func (a *Api) setupHandler() {
	logRequests := func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			a.logger.Debugw(r.URL.RequestURI(),
				"addr", r.RemoteAddr,
				"protocol", r.Proto,
				"method", r.Method,
			)
			next.ServeHTTP(w, r)
		})
	}

	r := chi.NewMux()

	r.Use(logRequests, middleware.Recoverer, middleware.StripSlashes)
	r.NotFound(a.notFoundResponse)
	r.MethodNotAllowed(a.methodNotAllowedResponse)

	r.Get("/healthcheck", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})

	r.Get("/grid", a.getGridHandler)

	r.Route("/events", func(r chi.Router) {
		r.Get("/", a.getEventsHandler)
		r.Post("/", a.createEventHandler)
		r.Get("/recent", a.getRecentEventsHandler)
		r.Get("/draft", a.getDraftHandler)

		r.Route("/{eventID}", func(r chi.Router) {
			r.With(a.eventCtx).Get("/", a.getEventHandler)
			r.With(a.eventCtx).Put("/", a.updateEventHandler)
			r.Delete("/", a.deleteEventHandler)
		})
	})

	r.Route("/resources", func(r chi.Router) {
		r.Get("/", a.getResourcesHandler)

		r.With(a.resourceCtx).Route("/{resourceID}", func(r chi.Router) {
			r.Get("/", a.getResourceHandler)
			r.Put("/status", a.updateResourceStatusHandler)
		})
	})

	a.handler = r
}

func (a *Api) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	a.handler.ServeHTTP(w, r)
}
