package services

import (
	"errors"
	"fmt"
	"strings"

	"dentalflow-backend/repositories"
)

var (
	ErrNotFound           = errors.New("not found")
	ErrValidation         = errors.New("validation failed")
	ErrConflict           = errors.New("conflict")
	ErrUnauthorized       = errors.New("unauthorized")
	ErrInvalidCredentials = fmt.Errorf("%w: invalid username or password", ErrUnauthorized)
)

// NotFoundError reports a missing entity, either the target of the request
// or a record referenced by it.
type NotFoundError struct {
	Entity string
	ID     any
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s not found with id: %v", e.Entity, e.ID)
}

func (e *NotFoundError) Is(target error) bool { return target == ErrNotFound }

type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	if e.Field == "" {
		return e.Message
	}
	return e.Field + ": " + e.Message
}

func (e *ValidationError) Is(target error) bool { return target == ErrValidation }

type ConflictError struct {
	Message string
}

func (e *ConflictError) Error() string { return e.Message }

func (e *ConflictError) Is(target error) bool { return target == ErrConflict }

func invalid(field, message string) error {
	return &ValidationError{Field: field, Message: message}
}

// fromStore converts repository sentinels into service errors for entity.
func fromStore(err error, entity string, id any) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, repositories.ErrNotFound):
		return &NotFoundError{Entity: entity, ID: id}
	case errors.Is(err, repositories.ErrDuplicate):
		return &ConflictError{Message: entity + " already exists"}
	case errors.Is(err, repositories.ErrReferenced):
		return &ConflictError{Message: entity + " is still referenced by other records"}
	}
	return fmt.Errorf("%s store: %w", strings.ToLower(entity), err)
}
