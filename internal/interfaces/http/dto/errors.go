package dto

import (
	"net/http"
	"strings"
)

// Error codes shared between domain errors and the HTTP layer
const (
	ErrCodeNotFound      = "NOT_FOUND"
	ErrCodeAlreadyExists = "ALREADY_EXISTS"
	ErrCodeInvalidInput  = "INVALID_INPUT"
	ErrCodeInvalidState  = "INVALID_STATE"
	ErrCodeBadRequest    = "BAD_REQUEST"
	ErrCodeInternal      = "INTERNAL_ERROR"
)

// errorCodeHTTPStatus maps error codes to HTTP status codes
var errorCodeHTTPStatus = map[string]int{
	ErrCodeNotFound:      http.StatusNotFound,
	ErrCodeAlreadyExists: http.StatusConflict,
	ErrCodeInvalidInput:  http.StatusBadRequest,
	ErrCodeInvalidState:  http.StatusUnprocessableEntity,
	ErrCodeBadRequest:    http.StatusBadRequest,
	ErrCodeInternal:      http.StatusInternalServerError,
}

// GetHTTPStatus returns the HTTP status for an error code. Field-level
// validation codes (INVALID_NAME, INVALID_PRICE, ...) all map to 400;
// anything unrecognized is a 500.
func GetHTTPStatus(code string) int {
	if status, ok := errorCodeHTTPStatus[code]; ok {
		return status
	}
	if strings.HasPrefix(code, "INVALID_") {
		return http.StatusBadRequest
	}
	return http.StatusInternalServerError
}
