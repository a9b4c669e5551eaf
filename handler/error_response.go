package handler

import "net/http"

type errorResponse struct {
	err error
}

// Render returns the wrapped error so Wrap hands it to the ErrorHandler
func (e errorResponse) Render(w http.ResponseWriter, r *http.Request) error {
	return e.err
}

// Error creates a response that routes err to the configured ErrorHandler.
//
//	if err := mask.Struct(&p); err != nil {
//		return handler.Error(err)
//	}
func Error(err error) Response {
	if err == nil {
		err = ErrInternalError
	}
	return errorResponse{err: err}
}
