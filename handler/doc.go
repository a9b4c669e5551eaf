// Package handler provides type-safe HTTP handlers for server-driven UIs.
//
// A HandlerFunc receives a typed request value and returns a Response. Wrap
// adapts it to http.HandlerFunc, running the configured binders first and
// routing binding or rendering failures to an ErrorHandler:
//
//	type FieldInput struct {
//		Value string `form:"value"`
//	}
//
//	func formatCPF(ctx handler.Context, in FieldInput) handler.Response {
//		return handler.Signals(map[string]any{"id_cpf": mask.CPF(in.Value)})
//	}
//
//	http.HandleFunc("/format", handler.Wrap(formatCPF,
//		handler.WithBinders[handler.Context, FieldInput](binder.Form()),
//	))
//
// # Responses
//
// Templ renders a templ component as HTML, or as a datastar-patch-elements
// event when the request comes from DataStar. Signals sends a
// datastar-patch-signals event (JSON for other clients). Empty writes a bare
// 204 and Error hands a failure to the ErrorHandler.
//
// # Hypermedia clients
//
// IsDataStar and IsHTMX detect the client library, so one handler can answer
// DataStar, htmx and plain form posts.
//
// # Errors
//
// NewErrorHandler logs every failure with slog (4xx at WARN, 5xx at ERROR)
// and answers with the status carried by an HTTPError. Binding errors map to
// 400 Bad Request.
package handler
