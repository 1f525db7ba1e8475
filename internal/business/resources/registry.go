package resources

import (
	"fmt"
	"strconv"
	"sync"

	"github.com/SergeyKozhin/trailer-scheduler/internal/model"
)

// Registry holds the fixed list of trailers and their current status.
// Only the status changes after construction; the last write wins.
type Registry struct {
	mu        sync.RWMutex
	resources []*model.Resource
	byID      map[string]*model.Resource
}

// NewRegistry generates resources prefix+from .. prefix+to, all open.
func NewRegistry(prefix string, from, to int) *Registry {
	r := &Registry{byID: make(map[string]*model.Resource)}

	for i := from; i <= to; i++ {
		id := prefix + strconv.Itoa(i)
		res := &model.Resource{
			ID:     id,
			Name:   id,
			Status: model.ResourceStatusOpen,
		}
		r.resources = append(r.resources, res)
		r.byID[id] = res
	}

	return r
}

func (r *Registry) List() []*model.Resource {
	r.mu.RLock()
	defer r.mu.RUnlock()

	res := make([]*model.Resource, len(r.resources))
	for i, resource := range r.resources {
		c := *resource
		res[i] = &c
	}

	return res
}

func (r *Registry) Get(id string) (*model.Resource, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	resource, ok := r.byID[id]
	if !ok {
		return nil, fmt.Errorf("resource %s: %w", id, model.ErrNoRecord)
	}

	c := *resource
	return &c, nil
}

func (r *Registry) Exists(id string) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()

	_, ok := r.byID[id]
	return ok
}

func (r *Registry) SetStatus(id string, status model.ResourceStatus) (*model.Resource, error) {
	if !status.Valid() {
		return nil, &model.ValidationError{
			Reason: model.ErrInvalidField,
			Fields: map[string]string{"status": fmt.Sprintf("unknown status %q", status)},
		}
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	resource, ok := r.byID[id]
	if !ok {
		return nil, fmt.Errorf("resource %s: %w", id, model.ErrNoRecord)
	}
	resource.Status = status

	c := *resource
	return &c, nil
}
