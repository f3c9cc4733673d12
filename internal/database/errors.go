package database

import (
	"errors"
	"fmt"
)

// Validation and lookup errors, wrapped in *OpError by the store.
var (
	ErrInvalidScore = errors.New("score must be between 1 and 10")
	ErrInvalidDate  = errors.New("date must be YYYY-MM-DD")
	ErrEmptyEntry   = errors.New("journal entry is empty")
	ErrUnknownMood  = errors.New("unknown journal mood")

	ErrInvalidAppointment  = errors.New("appointment needs a provider, a kind and a session type")
	ErrSlotTaken           = errors.New("time slot already booked")
	ErrAppointmentNotFound = errors.New("no upcoming appointment with that id")
)

// OpError records which store operation failed and on what key.
type OpError struct {
	Op       string
	Resource string
	Key      string
	Err      error
}

func (e *OpError) Error() string {
	if e == nil {
		return ""
	}
	if e.Key != "" {
		return fmt.Sprintf("%s %s %s: %v", e.Op, e.Resource, e.Key, e.Err)
	}
	return fmt.Sprintf("%s %s: %v", e.Op, e.Resource, e.Err)
}

func (e *OpError) Unwrap() error { return e.Err }

// opErr wraps err for resource; a nil err stays nil.
func opErr(op, resource, key string, err error) error {
	if err == nil {
		return nil
	}
	return &OpError{Op: op, Resource: resource, Key: key, Err: err}
}
