package model

type ResourceStatus string

const (
	ResourceStatusOpen          ResourceStatus = "open"
	ResourceStatusPredeployment ResourceStatus = "predeployment"
	ResourceStatusDeployed      ResourceStatus = "deployed"
)

func (s ResourceStatus) Valid() bool {
	switch s {
	case ResourceStatusOpen, ResourceStatusPredeployment, ResourceStatusDeployed:
		return true
	}
	return false
}

// Resource is a schedulable trailer.
type Resource struct {
	ID     string
	Name   string
	Status ResourceStatus
}
