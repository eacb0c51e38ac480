package apierror

import (
	"fmt"
	"net/http"

	"github.com/sirupsen/logrus"
)

type ErrorCode string

const (
	ErrNotFound           ErrorCode = "NOT_FOUND"
	ErrConflict           ErrorCode = "CONFLICT"
	ErrBadRequest         ErrorCode = "BAD_REQUEST"
	ErrInvalidInput       ErrorCode = "INVALID_INPUT"
	ErrInternalServer     ErrorCode = "INTERNAL_SERVER_ERROR"
	ErrInvalidCredential  ErrorCode = "INVALID_CREDENTIAL"
	ErrInsufficientFunds  ErrorCode = "INSUFFICIENT_FUNDS"
	ErrInvalidRecipient   ErrorCode = "INVALID_RECIPIENT"
	ErrInvalidProvider    ErrorCode = "INVALID_PROVIDER"
	ErrInvalidPlan        ErrorCode = "INVALID_PLAN"
	ErrInvalidPhoneNumber ErrorCode = "INVALID_PHONE_NUMBER"
	ErrBelowMinimum       ErrorCode = "BELOW_MINIMUM"
	ErrSessionExpired     ErrorCode = "SESSION_EXPIRED"
	ErrUnauthorized       ErrorCode = "UNAUTHORIZED"
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

func MapErrorToHTTPStatus(err error) int {
	if apiErr, ok := err.(APIError); ok {
		switch apiErr.Code {
		case ErrNotFound:
			return http.StatusNotFound
		case ErrConflict:
			return http.StatusConflict
		case ErrInvalidInput, ErrBadRequest, ErrInsufficientFunds, ErrInvalidRecipient,
			ErrInvalidProvider, ErrInvalidPlan, ErrInvalidPhoneNumber, ErrBelowMinimum:
			return http.StatusBadRequest
		case ErrInvalidCredential, ErrSessionExpired, ErrUnauthorized:
			return http.StatusUnauthorized
		case ErrInternalServer:
			return http.StatusInternalServerError
		default:
			return http.StatusInternalServerError
		}
	}
	return http.StatusInternalServerError
}
