package discord

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/osse101/LuckySpin_Go/internal/domain"
)

// Request tuning
const (
	clientTimeout    = 30 * time.Second
	clientMaxRetries = 3
	clientRetryDelay = 500 * time.Millisecond
)

// BalanceInfo is the part of a player's state the bot shows
type BalanceInfo struct {
	PlayerID        string `json:"player_id"`
	Balance         int64  `json:"balance"`
	Combo           int    `json:"combo"`
	Score           int64  `json:"score"`
	MissionProgress int    `json:"mission_progress"`
	AutoSpin        struct {
		Running    bool   `json:"running"`
		Spins      int    `json:"spins"`
		StopReason string `json:"stop_reason,omitempty"`
	} `json:"auto_spin"`
}

// LeaderboardInfo is the leaderboard page plus the caller's own best run
type LeaderboardInfo struct {
	Entries []domain.LeaderboardEntry `json:"entries"`
	Player  *domain.LeaderboardEntry  `json:"player,omitempty"`
}

// APIClient handles communication with the LuckySpin HTTP API
type APIClient struct {
	BaseURL string
	Client  *http.Client
}

// NewAPIClient creates a new API client. Spins settle in a few seconds, so the
// timeout is generous.
func NewAPIClient(baseURL string) *APIClient {
	return &APIClient{
		BaseURL: baseURL,
		Client: &http.Client{
			Timeout: clientTimeout,
		},
	}
}

// doRequest performs an HTTP request, retrying transport failures and 5xx
// responses with exponential backoff. 4xx responses are returned as is.
func (c *APIClient) doRequest(method, path string, body interface{}) (*http.Response, error) {
	var reqBody []byte
	if body != nil {
		var err error
		reqBody, err = json.Marshal(body)
		if err != nil {
			return nil, fmt.Errorf("failed to marshal body: %w", err)
		}
	}

	target := c.BaseURL + path

	var lastErr error
	for attempt := 0; attempt <= clientMaxRetries; attempt++ {
		if attempt > 0 {
			jitter := time.Duration(time.Now().UnixNano()%100) * time.Millisecond
			delay := clientRetryDelay*time.Duration(1<<uint(attempt-1)) + jitter
			time.Sleep(delay)
			slog.Info("Retrying API request", "attempt", attempt, "path", path, "delay", delay)
		}

		req, err := http.NewRequest(method, target, bytes.NewReader(reqBody))
		if err != nil {
			return nil, fmt.Errorf("failed to create request: %w", err)
		}
		req.Header.Set("Content-Type", "application/json")

		resp, err := c.Client.Do(req)
		if err != nil {
			lastErr = err
			slog.Warn("API request failed", "error", err, "attempt", attempt)
			continue
		}

		if resp.StatusCode < 500 {
			return resp, nil
		}

		resp.Body.Close()
		lastErr = fmt.Errorf("server error: %d", resp.StatusCode)
		slog.Warn("Server error, will retry", "status", resp.StatusCode, "attempt", attempt)
	}

	return nil, fmt.Errorf("max retries exceeded: %w", lastErr)
}

// decode reads a JSON body on success or turns the error body into an error
func decode(resp *http.Response, expected int, out interface{}) error {
	defer resp.Body.Close()

	if resp.StatusCode != expected {
		var errResp struct {
			Error string `json:"error"`
		}
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		if err := json.Unmarshal(body, &errResp); err == nil && errResp.Error != "" {
			return fmt.Errorf("API error: %s", errResp.Error)
		}
		return fmt.Errorf("API returned status: %d", resp.StatusCode)
	}

	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("failed to decode response: %w", err)
	}
	return nil
}

// Spin plays one round and waits for it to settle
func (c *APIClient) Spin(playerID string, bet int64, mode string) (*domain.SpinOutcome, error) {
	req := map[string]interface{}{
		"player_id": playerID,
		"bet":       bet,
		"mode":      mode,
	}

	resp, err := c.doRequest(http.MethodPost, "/api/v1/spin", req)
	if err != nil {
		return nil, err
	}

	var outcome domain.SpinOutcome
	if err := decode(resp, http.StatusOK, &outcome); err != nil {
		return nil, err
	}
	return &outcome, nil
}

// StartAutoSpin starts auto-spin for a player
func (c *APIClient) StartAutoSpin(playerID string, bet int64, mode string) error {
	req := map[string]interface{}{
		"player_id": playerID,
		"bet":       bet,
		"mode":      mode,
	}

	resp, err := c.doRequest(http.MethodPost, "/api/v1/autospin/start", req)
	if err != nil {
		return err
	}
	return decode(resp, http.StatusAccepted, nil)
}

// StopAutoSpin stops auto-spin for a player
func (c *APIClient) StopAutoSpin(playerID string) error {
	resp, err := c.doRequest(http.MethodPost, "/api/v1/autospin/stop", map[string]string{"player_id": playerID})
	if err != nil {
		return err
	}
	return decode(resp, http.StatusOK, nil)
}

// GetBalance retrieves a player's balance, combo and mission progress
func (c *APIClient) GetBalance(playerID string) (*BalanceInfo, error) {
	params := url.Values{}
	params.Set("player_id", playerID)

	resp, err := c.doRequest(http.MethodGet, "/api/v1/balance?"+params.Encode(), nil)
	if err != nil {
		return nil, err
	}

	var info BalanceInfo
	if err := decode(resp, http.StatusOK, &info); err != nil {
		return nil, err
	}
	return &info, nil
}

// GetLeaderboard retrieves the top runs, plus playerID's best when set
func (c *APIClient) GetLeaderboard(playerID string, limit int) (*LeaderboardInfo, error) {
	params := url.Values{}
	params.Set("limit", strconv.Itoa(limit))
	if playerID != "" {
		params.Set("player_id", playerID)
	}

	resp, err := c.doRequest(http.MethodGet, "/api/v1/leaderboard?"+params.Encode(), nil)
	if err != nil {
		return nil, err
	}

	var info LeaderboardInfo
	if err := decode(resp, http.StatusOK, &info); err != nil {
		return nil, err
	}
	return &info, nil
}

// HealthCheck reports whether the API answers its liveness check
func (c *APIClient) HealthCheck() error {
	resp, err := c.Client.Get(c.BaseURL + "/healthz")
	if err != nil {
		return err
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("API returned status: %d", resp.StatusCode)
	}
	return nil
}
