package handler

import (
	"net/http"

	"github.com/osse101/LuckySpin_Go/internal/domain"
	"github.com/osse101/LuckySpin_Go/internal/logger"
	"github.com/osse101/LuckySpin_Go/internal/slots"
)

// SlotsHandler handles slots-related HTTP requests
type SlotsHandler struct {
	service slots.Service
}

// NewSlotsHandler creates a new slots handler
func NewSlotsHandler(service slots.Service) *SlotsHandler {
	return &SlotsHandler{service: service}
}

// SpinRequest represents a request to spin, or to start auto-spin
type SpinRequest struct {
	PlayerID string `json:"player_id" validate:"required,max=64,printascii"`
	Bet      int64  `json:"bet" validate:"gt=0"`
	Mode     string `json:"mode" validate:"gamemode"`
}

// PlayerRequest identifies the player an action applies to
type PlayerRequest struct {
	PlayerID string `json:"player_id" validate:"required,max=64,printascii"`
}

// HandleSpin runs one spin and waits for it to resolve
// @Summary Spin the reels
// @Description Debits the bet, runs one spin and returns the resolved outcome
// @Tags slots
// @Accept json
// @Produce json
// @Param request body SpinRequest true "Spin details"
// @Success 200 {object} domain.SpinOutcome
// @Failure 400 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse
// @Router /api/v1/spin [post]
func (h *SlotsHandler) HandleSpin(w http.ResponseWriter, r *http.Request) {
	var req SpinRequest
	if err := DecodeAndValidateRequest(r, w, &req, "Spin"); err != nil {
		return
	}
	LogRequestFields(logger.FromContext(r.Context()), "player_id", req.PlayerID, "bet", req.Bet, "mode", req.Mode)

	outcome, err := h.service.Spin(r.Context(), req.PlayerID, req.Bet, domain.GameMode(req.Mode))
	if err != nil {
		respondServiceError(w, r, ErrMsgSpinFailed, err)
		return
	}
	respondJSON(w, http.StatusOK, outcome)
}

// HandleStartAutoSpin starts auto-spin for a player
// @Summary Start auto-spin
// @Tags slots
// @Accept json
// @Produce json
// @Param request body SpinRequest true "Bet and mode repeated on every spin"
// @Success 202 {object} SuccessResponse
// @Failure 400 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse
// @Router /api/v1/autospin/start [post]
func (h *SlotsHandler) HandleStartAutoSpin(w http.ResponseWriter, r *http.Request) {
	var req SpinRequest
	if err := DecodeAndValidateRequest(r, w, &req, "Start auto-spin"); err != nil {
		return
	}

	if err := h.service.StartAutoSpin(r.Context(), req.PlayerID, req.Bet, domain.GameMode(req.Mode)); err != nil {
		respondServiceError(w, r, ErrMsgAutoSpinStartFailed, err)
		return
	}
	respondJSON(w, http.StatusAccepted, SuccessResponse{Message: MsgAutoSpinStarted})
}

// HandleStopAutoSpin stops auto-spin. A spin already in flight still resolves.
// @Summary Stop auto-spin
// @Tags slots
// @Accept json
// @Produce json
// @Param request body PlayerRequest true "Player"
// @Success 200 {object} SuccessResponse
// @Failure 409 {object} ErrorResponse
// @Router /api/v1/autospin/stop [post]
func (h *SlotsHandler) HandleStopAutoSpin(w http.ResponseWriter, r *http.Request) {
	var req PlayerRequest
	if err := DecodeAndValidateRequest(r, w, &req, "Stop auto-spin"); err != nil {
		return
	}

	if err := h.service.StopAutoSpin(r.Context(), req.PlayerID); err != nil {
		respondServiceError(w, r, ErrMsgAutoSpinStopFailed, err)
		return
	}
	respondJSON(w, http.StatusOK, SuccessResponse{Message: MsgAutoSpinStopped})
}

// HandleGetBalance returns the player's balance, combo and auto-spin status
// @Summary Get player state
// @Tags slots
// @Produce json
// @Param player_id query string true "Player ID"
// @Success 200 {object} slots.PlayerState
// @Failure 400 {object} ErrorResponse
// @Router /api/v1/balance [get]
func (h *SlotsHandler) HandleGetBalance(w http.ResponseWriter, r *http.Request) {
	playerID, ok := GetQueryParam(r, w, QueryParamPlayerID)
	if !ok {
		return
	}

	state, err := h.service.PlayerState(r.Context(), playerID)
	if err != nil {
		respondServiceError(w, r, ErrMsgGetBalanceFailed, err)
		return
	}
	respondJSON(w, http.StatusOK, state)
}

// HandleResetBalance restores the starting balance and combo
// @Summary Reset balance
// @Tags slots
// @Accept json
// @Produce json
// @Param request body PlayerRequest true "Player"
// @Success 200 {object} DataResponse
// @Failure 409 {object} ErrorResponse
// @Router /api/v1/balance/reset [post]
func (h *SlotsHandler) HandleResetBalance(w http.ResponseWriter, r *http.Request) {
	var req PlayerRequest
	if err := DecodeAndValidateRequest(r, w, &req, "Reset balance"); err != nil {
		return
	}

	state, err := h.service.ResetBalance(r.Context(), req.PlayerID)
	if err != nil {
		respondServiceError(w, r, ErrMsgResetBalanceFailed, err)
		return
	}
	respondJSON(w, http.StatusOK, DataResponse{Message: MsgBalanceReset, Data: state})
}

// HandleGetPaytable describes the active symbol variant
// @Summary Get paytable
// @Tags slots
// @Produce json
// @Success 200 {object} slots.PaytableView
// @Router /api/v1/paytable [get]
func (h *SlotsHandler) HandleGetPaytable(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, h.service.Paytable())
}
