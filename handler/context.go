package handler

import (
	"context"
	"net/http"
)

// Context is the request scope handed to every HandlerFunc. It is the
// request's context.Context plus access to the request and response writer.
type Context interface {
	context.Context
	Request() *http.Request
	ResponseWriter() http.ResponseWriter
}

// NewContext builds a Context bound to r.Context().
func NewContext(w http.ResponseWriter, r *http.Request) Context {
	return requestScope{Context: r.Context(), w: w, r: r}
}

type requestScope struct {
	context.Context
	w http.ResponseWriter
	r *http.Request
}

func (s requestScope) Request() *http.Request              { return s.r }
func (s requestScope) ResponseWriter() http.ResponseWriter { return s.w }
