package response

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/mcoot/courtqueue/internal/model"
)

func TestCourtTagsVersion(t *testing.T) {
	s := model.NewGameState()
	s.Version = 42

	rec := httptest.NewRecorder()
	Court(rec, http.StatusOK, s, StateFromModel(s))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "42", rec.Header().Get(VersionHeader))
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))
	assert.Equal(t, "no-store", rec.Header().Get("Cache-Control"))
	assert.Contains(t, rec.Body.String(), `"version":42`)
}

func TestJSONWithoutBody(t *testing.T) {
	rec := httptest.NewRecorder()
	JSON(rec, http.StatusAccepted, nil)

	assert.Equal(t, http.StatusAccepted, rec.Code)
	assert.Empty(t, rec.Body.String())
	assert.Empty(t, rec.Header().Get(VersionHeader))
}
