// Package binder turns HTTP requests into typed Go values.
//
// Two binders are provided. Form binds url-encoded bodies (or the query
// string of GET requests) into structs using `form:"name"` tags. Signals
// binds the JSON signal document sent by DataStar into a struct or map.
//
// Binders share one signature, func(r *http.Request, v any) error, so they can
// be chained by the handler package. A binder that does not apply to a request
// returns ErrBinderNotApplicable and the next binder is tried:
//
//	http.HandleFunc("/format", handler.Wrap(formatField,
//		handler.WithBinders[handler.Context, FieldInput](
//			binder.Signals(),
//			binder.Form(),
//		),
//	))
//
// Supported form field types: string, bool, signed and unsigned integers,
// floats, pointers to those (optional fields) and slices (multi-value fields).
package binder
