package domain

import (
	"errors"
	"fmt"
	"strings"
)

type NotFoundError struct {
	Resource string
	Err      error
}

func (e NotFoundError) Error() string {
	if e.Resource == "" {
		return "not found"
	}
	return fmt.Sprintf("%s not found", e.Resource)
}

func (e NotFoundError) Unwrap() error { return e.Err }

// ValidationError carries every failed rule of a payload, not just the first.
type ValidationError struct {
	Msg    string
	Errors []string
	Err    error
}

func (e ValidationError) Error() string {
	switch {
	case e.Msg != "" && len(e.Errors) > 0:
		return fmt.Sprintf("%s: %s", e.Msg, strings.Join(e.Errors, "; "))
	case e.Msg != "":
		return e.Msg
	case len(e.Errors) > 0:
		return strings.Join(e.Errors, "; ")
	default:
		return "validation error"
	}
}

func (e ValidationError) Unwrap() error { return e.Err }

func IsNotFound(err error) bool {
	var target NotFoundError
	return errors.As(err, &target)
}

func IsValidation(err error) bool {
	var target ValidationError
	return errors.As(err, &target)
}

// ValidationErrors returns the rule messages of a wrapped ValidationError.
func ValidationErrors(err error) []string {
	var target ValidationError
	if errors.As(err, &target) {
		return target.Errors
	}
	return nil
}
