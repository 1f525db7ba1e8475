package model

import (
	"errors"
	"fmt"
	"sort"
	"strings"
)

var ErrNoRecord = errors.New("no record")
var ErrAlreadyExists = errors.New("entity already exists")

var (
	ErrMissingField     = errors.New("missing field")
	ErrInvalidField     = errors.New("invalid field")
	ErrInvalidTimeRange = errors.New("invalid time range")
	ErrConflict         = errors.New("time conflict")
)

// ValidationError reports a malformed candidate. Fields maps field names to messages.
type ValidationError struct {
	Reason error
	Fields map[string]string
}

func (e *ValidationError) Error() string {
	names := make([]string, 0, len(e.Fields))
	for name := range e.Fields {
		names = append(names, name)
	}
	sort.Strings(names)

	if len(names) == 0 {
		return e.Reason.Error()
	}
	return fmt.Sprintf("%v: %s", e.Reason, strings.Join(names, ", "))
}

func (e *ValidationError) Unwrap() error {
	return e.Reason
}

type ConflictError struct {
	Conflict *Event
}

func (e *ConflictError) Error() string {
	return fmt.Sprintf("event overlaps with %q", e.Conflict.Title)
}

func (e *ConflictError) Is(target error) bool {
	return target == ErrConflict
}

// StorageError is a persistence failure. It never invalidates in-memory state.
type StorageError struct {
	Op  string
	Err error
}

func (e *StorageError) Error() string {
	return fmt.Sprintf("storage %s: %v", e.Op, e.Err)
}

func (e *StorageError) Unwrap() error {
	return e.Err
}
