package response

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/mcoot/courtqueue/internal/model"
)

// VersionHeader carries the version of the court a response was rendered from
const VersionHeader = "X-Court-Version"

// JSON writes data as an uncached JSON body
func JSON(w http.ResponseWriter, status int, data any) {
	h := w.Header()
	h.Set("Content-Type", "application/json")
	h.Set("Cache-Control", "no-store")
	w.WriteHeader(status)
	if data != nil {
		_ = json.NewEncoder(w).Encode(data)
	}
}

// Court writes a view of s, tagged with the version it was rendered from so
// clients can drop views older than one they already hold.
func Court(w http.ResponseWriter, status int, s *model.GameState, data any) {
	w.Header().Set(VersionHeader, strconv.FormatInt(s.Version, 10))
	JSON(w, status, data)
}

// NoContent writes a 204 No Content response
func NoContent(w http.ResponseWriter) {
	w.WriteHeader(http.StatusNoContent)
}
