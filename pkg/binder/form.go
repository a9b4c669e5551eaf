package binder

import (
	"fmt"
	"mime"
	"net/http"
)

const formMediaType = "application/x-www-form-urlencoded"

// Form binds url-encoded form data into a struct using `form:` tags.
//
// GET and DELETE requests read the query string and need no content type.
// Other methods require application/x-www-form-urlencoded; multipart bodies
// are rejected with ErrUnsupportedMediaType.
//
// Example:
//
//	type Profile struct {
//		Phone string  `form:"id_phone"`
//		CPF   string  `form:"id_cpf"`
//		State *string `form:"id_state"` // optional
//		Notes string  `form:"-"`        // skipped
//	}
func Form() func(r *http.Request, v any) error {
	return func(r *http.Request, v any) error {
		if r.Method == http.MethodGet || r.Method == http.MethodDelete {
			return bindToStruct(v, "form", r.URL.Query(), ErrInvalidForm)
		}

		contentType := r.Header.Get("Content-Type")
		if contentType == "" {
			return fmt.Errorf("%w: expected %s", ErrMissingContentType, formMediaType)
		}

		mediaType, _, err := mime.ParseMediaType(contentType)
		if err != nil {
			return fmt.Errorf("%w: %v", ErrUnsupportedMediaType, err)
		}
		if mediaType != formMediaType {
			return fmt.Errorf("%w: got %s, expected %s", ErrUnsupportedMediaType, mediaType, formMediaType)
		}

		if err := r.ParseForm(); err != nil {
			return fmt.Errorf("%w: %v", ErrInvalidForm, err)
		}

		return bindToStruct(v, "form", r.Form, ErrInvalidForm)
	}
}
