package apierror

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/sirupsen/logrus"

	"github.com/caixinha/caixinha/model"
	"github.com/caixinha/caixinha/store"
)

type ErrorCode string

const (
	ErrNotFound       ErrorCode = "NOT_FOUND"
	ErrInvalidInput   ErrorCode = "INVALID_INPUT"
	ErrLimitExceeded  ErrorCode = "LIMIT_EXCEEDED"
	ErrInternalServer ErrorCode = "INTERNAL_SERVER_ERROR"
)

type APIError struct {
	Code    ErrorCode   `json:"code"`
	Message string      `json:"message"`
	Details interface{} `json:"details,omitempty"`
}

func (e APIError) Error() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func NewAPIError(code ErrorCode, message string, details interface{}) APIError {
	if details != nil {
		logrus.Error(details)
	}
	return APIError{
		Code:    code,
		Message: message,
		Details: details,
	}
}

// FromDomain translates a ledger error into its API form. The core speaks
// only sentinel errors; the status-code vocabulary lives here at the
// boundary.
func FromDomain(err error) APIError {
	switch {
	case errors.Is(err, store.ErrAccountNotFound):
		return APIError{Code: ErrNotFound, Message: err.Error()}
	case errors.Is(err, model.ErrExceedsLimit):
		return APIError{Code: ErrLimitExceeded, Message: err.Error()}
	case errors.Is(err, model.ErrInvalidInput):
		return APIError{Code: ErrInvalidInput, Message: err.Error()}
	}
	return NewAPIError(ErrInternalServer, "internal error", err.Error())
}

func MapErrorToHTTPStatus(err error) int {
	if apiErr, ok := err.(APIError); ok {
		switch apiErr.Code {
		case ErrNotFound:
			return http.StatusNotFound
		case ErrInvalidInput:
			return http.StatusUnprocessableEntity
		case ErrLimitExceeded:
			return http.StatusUnprocessableEntity
		case ErrInternalServer:
			return http.StatusInternalServerError
		default:
			return http.StatusInternalServerError
		}
	}
	return http.StatusInternalServerError
}
