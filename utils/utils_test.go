package utils

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRespondWithErrorExtra(t *testing.T) {
	rec := httptest.NewRecorder()
	RespondWithErrorExtra(rec, http.StatusNotFound, "Park not found", map[string]string{"parkid": "yose"})

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))

	var body map[string]string
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "Park not found", body["error"])
	assert.Equal(t, "yose", body["parkid"])
}

func TestGetUUID(t *testing.T) {
	assert.NotEqual(t, GetUUID(), GetUUID())
	assert.Len(t, GetUUID(), 36)
}
