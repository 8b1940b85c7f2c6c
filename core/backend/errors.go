package backend

import (
	stderrors "errors"
	"fmt"
	"net/http"

	"event-portal/core/errors"
)

// Error is a non-2xx answer from the REST API.
type Error struct {
	Status  int
	Message string
}

func (e *Error) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("backend: status %d", e.Status)
	}
	return fmt.Sprintf("backend: status %d: %s", e.Status, e.Message)
}

// StatusOf returns the HTTP status carried by err, or 0 for transport failures.
func StatusOf(err error) int {
	var be *Error
	if stderrors.As(err, &be) {
		return be.Status
	}
	return 0
}

// ToAppError classifies a client error. The server message wins over the fallback.
func ToAppError(err error, fallback string) *errors.AppError {
	if err == nil {
		return nil
	}
	var be *Error
	if !stderrors.As(err, &be) {
		return errors.NewAppError(errors.ErrBackendUnavailable, fallback, err)
	}

	msg := fallback
	if be.Message != "" {
		msg = be.Message
	}

	code := errors.ErrInternalServer
	switch {
	case be.Status == http.StatusBadRequest, be.Status == http.StatusUnprocessableEntity:
		code = errors.ErrInvalidInput
	case be.Status == http.StatusUnauthorized:
		code = errors.ErrUnauthorized
	case be.Status == http.StatusForbidden:
		code = errors.ErrForbidden
	case be.Status == http.StatusNotFound:
		code = errors.ErrNotFound
	case be.Status == http.StatusConflict:
		code = errors.ErrAlreadyExists
	case be.Status >= http.StatusInternalServerError:
		code = errors.ErrBackendUnavailable
	}
	return errors.NewAppError(code, msg, err)
}
