package discord

import (
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osse101/LuckySpin_Go/internal/handler"
)

func TestAPIClient_RetriesServerErrors(t *testing.T) {
	var calls atomic.Int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if calls.Add(1) == 1 {
			w.WriteHeader(http.StatusServiceUnavailable)
			return
		}
		WriteJSON(w, http.StatusOK, map[string]interface{}{"player_id": "p", "balance": 10})
	}))
	defer server.Close()

	info, err := NewAPIClient(server.URL).GetBalance("p")
	require.NoError(t, err)
	assert.Equal(t, int64(10), info.Balance)
	assert.Equal(t, int32(2), calls.Load())
}

func TestAPIClient_ClientErrorsAreNotRetried(t *testing.T) {
	var calls atomic.Int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		WriteJSON(w, http.StatusConflict, handler.ErrorResponse{Error: handler.ErrMsgSpinInProgressError})
	}))
	defer server.Close()

	_, err := NewAPIClient(server.URL).Spin("p", 100, "classic")
	require.Error(t, err)
	assert.Equal(t, "API error: "+handler.ErrMsgSpinInProgressError, err.Error())
	assert.Equal(t, int32(1), calls.Load())
}

func TestAPIClient_StatusWithoutBody(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))
	defer server.Close()

	err := NewAPIClient(server.URL).StopAutoSpin("p")
	assert.EqualError(t, err, "API returned status: 404")
}

func TestAPIClient_HealthCheck(t *testing.T) {
	tc := SetupTestContext(t)
	tc.Mux.HandleFunc("/healthz", func(w http.ResponseWriter, r *http.Request) {
		WriteJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	})
	assert.NoError(t, tc.APIClient.HealthCheck())

	tc.Server.Close()
	assert.Error(t, tc.APIClient.HealthCheck())
}
