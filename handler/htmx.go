package handler

import "net/http"

// HXRequest is the header htmx sets on every request it issues.
const HXRequest = "HX-Request"

// IsHTMX reports whether r was issued by htmx.
func IsHTMX(r *http.Request) bool {
	return r.Header.Get(HXRequest) == "true"
}
