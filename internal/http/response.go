package http

import (
	"encoding/json"
	"net/http"
)

func writeJSON(w http.ResponseWriter, status int, body any) error {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	return json.NewEncoder(w).Encode(body)
}

// writeEmptyObject is the cache-miss response: an empty JSON object, not an
// error. "Not yet computed" is a normal state for the read path.
func writeEmptyObject(w http.ResponseWriter) error {
	return writeJSON(w, http.StatusOK, struct{}{})
}
