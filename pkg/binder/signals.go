package binder

import (
	"fmt"
	"net/http"
	"reflect"
	"strings"

	"github.com/starfederation/datastar-go/datastar"
)

// datastarRequestHeader is set by the DataStar client on every backend action.
const datastarRequestHeader = "Datastar-Request"

// Signals binds the DataStar signal document into v, which must be a
// non-nil pointer (struct with json tags, or map[string]string).
// Requests not issued by DataStar return ErrBinderNotApplicable.
func Signals() func(r *http.Request, v any) error {
	return func(r *http.Request, v any) error {
		if !isDataStarRequest(r) {
			return ErrBinderNotApplicable
		}

		rv := reflect.ValueOf(v)
		if rv.Kind() != reflect.Ptr || rv.IsNil() {
			return ErrInvalidTarget
		}

		if err := datastar.ReadSignals(r, v); err != nil {
			return fmt.Errorf("%w: %v", ErrInvalidSignals, err)
		}
		return nil
	}
}

func isDataStarRequest(r *http.Request) bool {
	if r.Header.Get(datastarRequestHeader) == "true" {
		return true
	}
	if r.URL.Query().Has("datastar") {
		return true
	}
	return strings.Contains(r.Header.Get("Accept"), "text/event-stream")
}
