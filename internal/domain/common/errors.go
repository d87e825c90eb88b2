package common

import (
	"errors"
	"fmt"
)

// NotFoundError reports a lookup miss for an entity, optionally by ID.
type NotFoundError struct {
	Entity string
	ID     string
}

func (e NotFoundError) Error() string {
	if e.ID != "" {
		return fmt.Sprintf("%s %s not found", e.Entity, e.ID)
	}
	return fmt.Sprintf("%s not found", e.Entity)
}

func NewNotFound(entity, id string) error {
	return NotFoundError{Entity: entity, ID: id}
}

func IsNotFound(err error) bool {
	var nf NotFoundError
	return errors.As(err, &nf)
}
