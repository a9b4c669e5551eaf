package handler

import (
	"encoding/json"
	"net/http"

	"github.com/starfederation/datastar-go/datastar"
)

type signalsResponse struct {
	signals any
}

// Render sends a datastar-patch-signals event for DataStar or JSON otherwise
func (s signalsResponse) Render(w http.ResponseWriter, r *http.Request) error {
	data, err := json.Marshal(s.signals)
	if err != nil {
		return err
	}

	if IsDataStar(r) {
		return datastar.NewSSE(w, r).PatchSignals(data)
	}

	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	_, err = w.Write(data)
	return err
}

// Signals creates a response patching client signals. signals must marshal
// to a JSON object; only the keys it contains are updated on the client.
//
//	return handler.Signals(map[string]string{"id_cpf": "123.456.789-01"})
func Signals(signals any) Response {
	return signalsResponse{signals: signals}
}
