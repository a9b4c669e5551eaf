package binder

import "errors"

// Common binding errors
var (
	ErrUnsupportedMediaType = errors.New("unsupported media type")
	ErrMissingContentType   = errors.New("missing content type")
	ErrInvalidForm          = errors.New("invalid form data")
	ErrInvalidSignals       = errors.New("invalid datastar signals")
	ErrInvalidTarget        = errors.New("binding target must be a non-nil pointer")

	// ErrBinderNotApplicable tells the caller to try the next binder.
	ErrBinderNotApplicable = errors.New("binder not applicable to request")
)
