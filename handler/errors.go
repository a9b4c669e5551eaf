package handler

import (
	"errors"
	"net/http"
)

var (
	// ErrNilResponse indicates a handler returned nil instead of a Response
	ErrNilResponse = errors.New("handler returned nil response")
)

// HTTPError carries an HTTP status code and a stable message key.
type HTTPError struct {
	Code int
	Key  string
}

func (e HTTPError) Error() string {
	return e.Key
}

var (
	ErrBadRequest    = HTTPError{Code: http.StatusBadRequest, Key: "bad_request"}
	ErrNotFound      = HTTPError{Code: http.StatusNotFound, Key: "not_found"}
	ErrUnprocessable = HTTPError{Code: http.StatusUnprocessableEntity, Key: "validation_failed"}
	ErrInternalError = HTTPError{Code: http.StatusInternalServerError, Key: "internal_server_error"}
)
