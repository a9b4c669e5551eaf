package formatter

import (
	"log/slog"

	"github.com/dmitrymomot/brmask/handler"
)

// Option configures a Service.
type Option func(*Service)

// WithViews replaces the built-in markup. Nil fields keep their defaults.
func WithViews(v *Views) Option {
	return func(s *Service) {
		if v == nil {
			return
		}
		if v.Page != nil {
			s.views.Page = v.Page
		}
		if v.Input != nil {
			s.views.Input = v.Input
		}
	}
}

// WithLogger sets the logger used for request events.
func WithLogger(log *slog.Logger) Option {
	return func(s *Service) {
		if log != nil {
			s.log = log
		}
	}
}

// WithErrorHandler sets the handler that renders binding and rendering errors.
func WithErrorHandler(h handler.ErrorHandler[handler.Context]) Option {
	return func(s *Service) {
		if h != nil {
			s.errorHandler = h
		}
	}
}

// WithTitle sets the form page title.
func WithTitle(title string) Option {
	return func(s *Service) {
		if title != "" {
			s.title = title
		}
	}
}
