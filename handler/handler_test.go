package handler_test

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/brmask/handler"
	"github.com/dmitrymomot/brmask/pkg/binder"
)

type fieldInput struct {
	Value string `form:"value" json:"value"`
}

type textResponse string

func (t textResponse) Render(w http.ResponseWriter, r *http.Request) error {
	_, err := w.Write([]byte(t))
	return err
}

type failingResponse struct{}

func (failingResponse) Render(w http.ResponseWriter, r *http.Request) error {
	return errors.New("render failed")
}

func formRequest(body url.Values) *http.Request {
	req := httptest.NewRequest(http.MethodPost, "/format", strings.NewReader(body.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	return req
}

func TestWrap(t *testing.T) {
	t.Parallel()

	type fn = handler.HandlerFunc[handler.Context, fieldInput]

	var echo fn = func(ctx handler.Context, in fieldInput) handler.Response {
		return textResponse(in.Value)
	}

	t.Run("binds and renders", func(t *testing.T) {
		t.Parallel()

		h := handler.Wrap(echo, handler.WithBinders[handler.Context, fieldInput](binder.Form()))

		w := httptest.NewRecorder()
		h(w, formRequest(url.Values{"value": {"12345678901"}}))

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, "12345678901", w.Body.String())
	})

	t.Run("skips binders that do not apply", func(t *testing.T) {
		t.Parallel()

		h := handler.Wrap(echo, handler.WithBinders[handler.Context, fieldInput](
			binder.Signals(),
			binder.Form(),
		))

		w := httptest.NewRecorder()
		h(w, formRequest(url.Values{"value": {"sp"}}))

		assert.Equal(t, "sp", w.Body.String())
	})

	t.Run("binder error goes to the error handler", func(t *testing.T) {
		t.Parallel()

		h := handler.Wrap(echo, handler.WithBinders[handler.Context, fieldInput](binder.Form()))

		req := httptest.NewRequest(http.MethodPost, "/format", strings.NewReader(`{}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		h(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("nil response", func(t *testing.T) {
		t.Parallel()

		var got error
		h := handler.Wrap(
			fn(func(ctx handler.Context, in fieldInput) handler.Response { return nil }),
			handler.WithErrorHandler[handler.Context, fieldInput](func(ctx handler.Context, err error) {
				got = err
				ctx.ResponseWriter().WriteHeader(http.StatusTeapot)
			}),
		)

		w := httptest.NewRecorder()
		h(w, httptest.NewRequest(http.MethodGet, "/", nil))

		assert.ErrorIs(t, got, handler.ErrNilResponse)
		assert.Equal(t, http.StatusTeapot, w.Code)
	})

	t.Run("render error", func(t *testing.T) {
		t.Parallel()

		h := handler.Wrap(fn(func(ctx handler.Context, in fieldInput) handler.Response {
			return failingResponse{}
		}))

		w := httptest.NewRecorder()
		h(w, httptest.NewRequest(http.MethodGet, "/", nil))

		assert.Equal(t, http.StatusInternalServerError, w.Code)
	})

	t.Run("decorators run outermost first", func(t *testing.T) {
		t.Parallel()

		var order []string
		mark := func(name string) handler.Decorator[handler.Context, fieldInput] {
			return func(next fn) fn {
				return func(ctx handler.Context, in fieldInput) handler.Response {
					order = append(order, name)
					return next(ctx, in)
				}
			}
		}

		h := handler.Wrap(echo, handler.WithDecorators(mark("outer"), mark("inner")))

		w := httptest.NewRecorder()
		h(w, httptest.NewRequest(http.MethodGet, "/", nil))

		assert.Equal(t, []string{"outer", "inner"}, order)
	})

	t.Run("context exposes request", func(t *testing.T) {
		t.Parallel()

		h := handler.Wrap(fn(func(ctx handler.Context, in fieldInput) handler.Response {
			require.NotNil(t, ctx.Request())
			require.NotNil(t, ctx.ResponseWriter())
			assert.NoError(t, ctx.Err())
			return textResponse(ctx.Request().URL.Path)
		}))

		w := httptest.NewRecorder()
		h(w, httptest.NewRequest(http.MethodGet, "/ctx", nil))

		assert.Equal(t, "/ctx", w.Body.String())
	})
}

func TestError(t *testing.T) {
	t.Parallel()

	t.Run("routes error to the error handler", func(t *testing.T) {
		t.Parallel()

		var got error
		h := handler.Wrap(
			handler.HandlerFunc[handler.Context, fieldInput](func(ctx handler.Context, in fieldInput) handler.Response {
				return handler.Error(handler.ErrNotFound)
			}),
			handler.WithErrorHandler[handler.Context, fieldInput](func(ctx handler.Context, err error) {
				got = err
				http.Error(ctx.ResponseWriter(), err.Error(), http.StatusNotFound)
			}),
		)

		w := httptest.NewRecorder()
		h(w, httptest.NewRequest(http.MethodGet, "/", nil))

		assert.ErrorIs(t, got, handler.ErrNotFound)
		assert.Equal(t, http.StatusNotFound, w.Code)
	})

	t.Run("nil error becomes internal error", func(t *testing.T) {
		t.Parallel()

		err := handler.Error(nil).Render(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/", nil))
		assert.ErrorIs(t, err, handler.ErrInternalError)
	})
}

func TestNewContext(t *testing.T) {
	t.Parallel()

	type key struct{}
	parent, cancel := context.WithCancel(context.WithValue(context.Background(), key{}, "id_cpf"))
	r := httptest.NewRequest(http.MethodGet, "/", nil).WithContext(parent)
	w := httptest.NewRecorder()

	ctx := handler.NewContext(w, r)

	assert.Same(t, r, ctx.Request())
	assert.Equal(t, "id_cpf", ctx.Value(key{}))
	require.NoError(t, ctx.Err())

	cancel()
	<-ctx.Done()
	assert.ErrorIs(t, ctx.Err(), context.Canceled)
}
