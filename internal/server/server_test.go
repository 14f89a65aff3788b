package server

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osse101/LuckySpin_Go/internal/achievement"
	"github.com/osse101/LuckySpin_Go/internal/domain"
	"github.com/osse101/LuckySpin_Go/internal/event"
	"github.com/osse101/LuckySpin_Go/internal/handler"
	"github.com/osse101/LuckySpin_Go/internal/leaderboard"
	"github.com/osse101/LuckySpin_Go/internal/slots"
	"github.com/osse101/LuckySpin_Go/internal/wallet"
)

type discardPublisher struct{}

func (discardPublisher) PublishWithRetry(context.Context, event.Event) {}

func newTestServer(t *testing.T) *Server {
	t.Helper()
	return NewServer(0, newTestDeps(t))
}

func newTestDeps(t *testing.T) Deps {
	t.Helper()

	tables, err := slots.LoadPaytables(filepath.Join(t.TempDir(), "none.yaml"))
	require.NoError(t, err)

	cfg := slots.DefaultConfig()
	cfg.Sequencer = slots.SequencerConfig{BaseSpins: 1, DrawInterval: time.Millisecond}
	engine := slots.NewEngine(tables[slots.VariantClassic], cfg.Thresholds, cfg.ComboReset)
	svc := slots.NewService(engine, wallet.NewMemoryStore(cfg.StartingBalance, cfg.ComboReset),
		discardPublisher{}, cfg, slots.Options{RNG: slots.NewRNG(7)})
	t.Cleanup(func() {
		ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
		defer cancel()
		_ = svc.Shutdown(ctx)
	})

	return Deps{
		Slots:        svc,
		Leaderboard:  leaderboard.NewService(leaderboard.NewMemoryRepository(), nil),
		Achievements: achievement.NewService(achievement.NewMemoryRepository(), discardPublisher{}),
		Readiness:    map[string]handler.HealthChecker{"redis": nil},
		ServiceName:  "lucky-spin",
		Version:      "test",
	}
}

func do(t *testing.T, h http.Handler, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func TestServer_Routes(t *testing.T) {
	h := newTestServer(t).Handler()

	tests := []struct {
		method string
		path   string
		want   int
	}{
		{http.MethodGet, "/healthz", http.StatusOK},
		{http.MethodGet, "/readyz", http.StatusOK},
		{http.MethodGet, "/version", http.StatusOK},
		{http.MethodGet, "/metrics", http.StatusOK},
		{http.MethodGet, "/swagger/index.html", http.StatusOK},
		{http.MethodGet, "/api/v1/paytable", http.StatusOK},
		{http.MethodGet, "/api/v1/leaderboard", http.StatusOK},
		{http.MethodGet, "/api/v1/achievements?player_id=alice", http.StatusOK},
		{http.MethodGet, "/api/v1/balance?player_id=alice", http.StatusOK},
		{http.MethodGet, "/api/v1/balance", http.StatusBadRequest},
		{http.MethodGet, "/api/v1/spin", http.StatusMethodNotAllowed},
		{http.MethodGet, "/api/v1/events", http.StatusNotFound},
		{http.MethodGet, "/nope", http.StatusNotFound},
	}
	for _, tt := range tests {
		t.Run(tt.method+" "+tt.path, func(t *testing.T) {
			rec := do(t, h, tt.method, tt.path, nil)
			assert.Equal(t, tt.want, rec.Code, rec.Body.String())
			assert.Equal(t, HeaderValueNoSniff, rec.Header().Get(HeaderContentType))
		})
	}
}

func TestServer_SpinFlow(t *testing.T) {
	h := newTestServer(t).Handler()

	rec := do(t, h, http.MethodPost, "/api/v1/spin", handler.SpinRequest{PlayerID: "alice", Bet: 100, Mode: "classic"})
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	var outcome domain.SpinOutcome
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &outcome))
	assert.Equal(t, "alice", outcome.PlayerID)
	assert.Equal(t, int64(slots.DefaultStartingBalance)-100+outcome.TotalPayout, outcome.Balance)

	rec = do(t, h, http.MethodGet, "/api/v1/balance?player_id=alice", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	var state slots.PlayerState
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &state))
	assert.Equal(t, outcome.Balance, state.Balance)

	rec = do(t, h, http.MethodPost, "/api/v1/spin", handler.SpinRequest{PlayerID: "alice", Bet: slots.DefaultStartingBalance * 10, Mode: "classic"})
	assert.Equal(t, http.StatusBadRequest, rec.Code, "bets above the maximum are rejected")

	rec = do(t, h, http.MethodPost, "/api/v1/balance/reset", handler.PlayerRequest{PlayerID: "alice"})
	require.Equal(t, http.StatusOK, rec.Code)
	var reset struct {
		Data slots.PlayerState `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &reset))
	assert.Equal(t, int64(slots.DefaultStartingBalance), reset.Data.Balance)
}

func TestServer_AutoSpinConflicts(t *testing.T) {
	h := newTestServer(t).Handler()

	rec := do(t, h, http.MethodPost, "/api/v1/autospin/stop", handler.PlayerRequest{PlayerID: "bob"})
	assert.Equal(t, http.StatusConflict, rec.Code)

	rec = do(t, h, http.MethodPost, "/api/v1/autospin/start", handler.SpinRequest{PlayerID: "bob", Bet: 10, Mode: "classic"})
	require.Equal(t, http.StatusAccepted, rec.Code, rec.Body.String())

	rec = do(t, h, http.MethodPost, "/api/v1/autospin/start", handler.SpinRequest{PlayerID: "bob", Bet: 10, Mode: "classic"})
	assert.Equal(t, http.StatusConflict, rec.Code)

	rec = do(t, h, http.MethodPost, "/api/v1/autospin/stop", handler.PlayerRequest{PlayerID: "bob"})
	assert.Equal(t, http.StatusOK, rec.Code)
}
