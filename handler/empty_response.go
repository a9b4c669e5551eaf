package handler

import "net/http"

type emptyResponse struct{}

// Render writes 204 without a body
func (emptyResponse) Render(w http.ResponseWriter, r *http.Request) error {
	w.WriteHeader(http.StatusNoContent)
	return nil
}

// Empty creates a 204 No Content response.
// htmx leaves the target untouched on 204, which makes it the answer for
// requests that have nothing to update.
func Empty() Response {
	return emptyResponse{}
}
