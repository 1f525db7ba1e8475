package api

import (
	"net/http"

	"github.com/SergeyKozhin/trailer-scheduler/internal/model"
	"github.com/SergeyKozhin/trailer-scheduler/internal/pkg/validator"
)

func (a *Api) getResourcesHandler(w http.ResponseWriter, r *http.Request) {
	resp := mapSlice(a.resources.List(), mapToResourceResp)

	if err := a.writeJSON(w, http.StatusOK, resp, nil); err != nil {
		a.serverErrorResponse(w, r, err)
	}
}

func (a *Api) getResourceHandler(w http.ResponseWriter, r *http.Request) {
	resource, ok := r.Context().Value(contextKeyResource).(*model.Resource)
	if !ok {
		a.serverErrorResponse(w, r, errCantRetrieveResource)
		return
	}

	if err := a.writeJSON(w, http.StatusOK, mapToResourceResp(resource), nil); err != nil {
		a.serverErrorResponse(w, r, err)
	}
}

func (a *Api) updateResourceStatusHandler(w http.ResponseWriter, r *http.Request) {
	resource, ok := r.Context().Value(contextKeyResource).(*model.Resource)
	if !ok {
		a.serverErrorResponse(w, r, errCantRetrieveResource)
		return
	}

	req := &struct {
		Status string `json:"status"`
	}{}

	if err := a.readJSON(w, r, req); err != nil {
		a.badRequestResponse(w, r, err)
		return
	}

	v := validator.New()
	v.Check(validator.In(req.Status,
		string(model.ResourceStatusOpen),
		string(model.ResourceStatusPredeployment),
		string(model.ResourceStatusDeployed),
	), "status", "status must be one of open, predeployment, deployed")

	if !v.Valid() {
		a.failedValidationResponse(w, r, v.Errors)
		return
	}

	updated, err := a.resources.SetStatus(resource.ID, model.ResourceStatus(req.Status))
	if err != nil {
		a.businessErrorResponse(w, r, err)
		return
	}

	a.logger.Infow("Resource status changed", "id", updated.ID, "status", updated.Status)

	if err := a.writeJSON(w, http.StatusOK, mapToResourceResp(updated), nil); err != nil {
		a.serverErrorResponse(w, r, err)
	}
}
