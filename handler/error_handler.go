package handler

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/dmitrymomot/brmask/pkg/binder"
	"github.com/dmitrymomot/brmask/pkg/logger"
	"github.com/dmitrymomot/brmask/pkg/requestid"
	"github.com/dmitrymomot/brmask/pkg/validator"
)

// ErrorInfo contains classified error information
type ErrorInfo struct {
	StatusCode int
	Message    string
	LogLevel   slog.Level
}

// requestErrors are binder failures caused by the client.
var requestErrors = []error{
	binder.ErrInvalidForm,
	binder.ErrInvalidSignals,
	binder.ErrUnsupportedMediaType,
	binder.ErrMissingContentType,
}

func classifyError(err error) ErrorInfo {
	info := ErrorInfo{
		StatusCode: ErrInternalError.Code,
		Message:    ErrInternalError.Key,
	}

	var httpErr HTTPError
	switch {
	case errors.As(err, &httpErr):
		info.StatusCode = httpErr.Code
		info.Message = httpErr.Key
	case errors.Is(err, validator.ErrValidationFailed):
		info.StatusCode = ErrUnprocessable.Code
		info.Message = ErrUnprocessable.Key
	case isRequestError(err):
		info.StatusCode = ErrBadRequest.Code
		info.Message = ErrBadRequest.Key
	}

	info.LogLevel = slog.LevelError
	if info.StatusCode < http.StatusInternalServerError {
		info.LogLevel = slog.LevelWarn
	}

	return info
}

func isRequestError(err error) bool {
	for _, target := range requestErrors {
		if errors.Is(err, target) {
			return true
		}
	}
	return false
}

// NewErrorHandler returns an ErrorHandler that logs the failure with the
// request id and answers with a plain-text status. A nil log uses slog.Default.
func NewErrorHandler(log *slog.Logger) ErrorHandler[Context] {
	if log == nil {
		log = slog.Default()
	}

	return func(ctx Context, err error) {
		r := ctx.Request()
		info := classifyError(err)

		log.LogAttrs(r.Context(), info.LogLevel, "request error",
			logger.RequestID(requestid.FromContext(r.Context())),
			logger.Error(err),
			slog.Int("status_code", info.StatusCode),
			slog.String("method", r.Method),
			slog.String("path", r.URL.Path),
			slog.Bool("is_datastar", IsDataStar(r)),
			logger.Component("error_handler"),
		)

		http.Error(ctx.ResponseWriter(), info.Message, info.StatusCode)
	}
}
