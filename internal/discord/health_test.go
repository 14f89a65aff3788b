package discord

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRecordCommand(t *testing.T) {
	before := CommandsReceived()
	RecordCommand()
	RecordCommand()
	assert.Equal(t, before+2, CommandsReceived())
	assert.False(t, lastCommandTime().IsZero())
}

func TestHandleHealth_Degraded(t *testing.T) {
	tc := SetupTestContext(t)
	tc.Mux.HandleFunc("/healthz", func(w http.ResponseWriter, r *http.Request) {
		WriteJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	})

	srv := NewHTTPServer("0", &Bot{Session: tc.Session, Client: tc.APIClient})
	rec := httptest.NewRecorder()
	srv.HandleHealth(rec, httptest.NewRequest(http.MethodGet, "/health", nil))

	assert.Equal(t, http.StatusServiceUnavailable, rec.Code, "the gateway session is not open")
	var status HealthStatus
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &status))
	assert.Equal(t, "degraded", status.Status)
	assert.True(t, status.APIReachable)
	assert.False(t, status.Connected)
	assert.False(t, status.EventsConnected)
}
