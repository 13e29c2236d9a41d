package handler

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"github.com/mcoot/courtqueue/internal/api/apierr"
	"github.com/mcoot/courtqueue/internal/services/session"
)

// Controller is the session surface the handlers drive
type Controller = session.ControllerInterface

// WriteError writes an error response to the response writer
func WriteError(w http.ResponseWriter, err error) {
	apierr.WriteError(w, err)
}

// decode reads a JSON body into dst. An empty body is an error unless
// allowEmpty is set.
func decode(r *http.Request, dst any, allowEmpty bool) error {
	err := json.NewDecoder(r.Body).Decode(dst)
	switch {
	case err == nil:
		return nil
	case errors.Is(err, io.EOF) && allowEmpty:
		return nil
	default:
		return apierr.NewInvalidRequestError("invalid request body")
	}
}
