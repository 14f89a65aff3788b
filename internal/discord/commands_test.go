package discord

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/bwmarrin/discordgo"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osse101/LuckySpin_Go/internal/domain"
	"github.com/osse101/LuckySpin_Go/internal/handler"
)

func TestCommandRegistry(t *testing.T) {
	registry := NewCommandRegistry()

	called := 0
	registry.Register(&discordgo.ApplicationCommand{Name: "test", Description: "Test command"},
		func(s *discordgo.Session, i *discordgo.InteractionCreate, client *APIClient) { called++ })

	require.NotNil(t, registry.Commands["test"])
	require.NotNil(t, registry.Handlers["test"])

	before := CommandsReceived()
	registry.Handle(nil, createTestInteraction("test", nil), nil)
	assert.Equal(t, 1, called)
	assert.Equal(t, before+1, CommandsReceived())

	registry.Handle(nil, createTestInteraction("unknown", nil), nil)
	assert.Equal(t, 1, called)

	ping := createTestInteraction("test", nil)
	ping.Type = discordgo.InteractionPing
	registry.Handle(nil, ping, nil)
	assert.Equal(t, 1, called, "only slash commands are dispatched")
}

func TestCommandsEqual(t *testing.T) {
	spin, _ := SpinCommand()
	balance, _ := BalanceCommand()
	spinAgain, _ := SpinCommand()
	other, _ := SpinCommand()
	other.Description = "changed"

	assert.True(t, commandsEqual([]*discordgo.ApplicationCommand{spin, balance}, []*discordgo.ApplicationCommand{balance, spinAgain}))
	assert.False(t, commandsEqual([]*discordgo.ApplicationCommand{spin}, []*discordgo.ApplicationCommand{spin, balance}))
	assert.False(t, commandsEqual([]*discordgo.ApplicationCommand{spin}, []*discordgo.ApplicationCommand{other}))
}

func TestSpinCommand_Definition(t *testing.T) {
	cmd, _ := SpinCommand()
	require.Len(t, cmd.Options, 2)
	assert.True(t, cmd.Options[0].Required)
	assert.Equal(t, float64(discordMinBet), *cmd.Options[0].MinValue)

	var values []interface{}
	for _, c := range cmd.Options[1].Choices {
		values = append(values, c.Value)
	}
	assert.Contains(t, values, string(domain.ModeClassic))
	assert.Contains(t, values, string(domain.ModeMission))
}

func TestSpinCommand_Handler(t *testing.T) {
	tc := SetupTestContext(t)
	tc.Mux.HandleFunc("/api/v1/spin", func(w http.ResponseWriter, r *http.Request) {
		var req map[string]interface{}
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, "discord-test-user-123", req["player_id"])
		assert.Equal(t, float64(250), req["bet"])
		assert.Equal(t, "premium", req["mode"])

		WriteJSON(w, http.StatusOK, domain.SpinOutcome{
			PlayerID:    "discord-test-user-123",
			Mode:        domain.ModePremium,
			Grid:        domain.Grid{"7", "7", "7", "1", "2", "3", "4", "5", "6"},
			Bet:         250,
			TotalPayout: 15000,
			Tier:        domain.ResultJackpot,
			Combo:       4,
			Balance:     24750,
			Message:     "MEGA WIN!",
		})
	})

	_, h := SpinCommand()
	h(tc.Session, createTestInteraction("spin", []*discordgo.ApplicationCommandInteractionDataOption{
		intOption("bet", 250),
		stringOption("mode", "premium"),
	}), tc.APIClient)

	edits := tc.Edits()
	require.Len(t, edits, 1)
	require.NotNil(t, edits[0].Embeds)
	embed := (*edits[0].Embeds)[0]
	assert.Equal(t, "🌟 MEGA WIN! 🌟", embed.Title)
	assert.Equal(t, ColorJackpot, embed.Color)
	assert.Equal(t, "15,000 credits", embed.Fields[2].Value)
	assert.Equal(t, "24,750 credits", embed.Fields[3].Value)
}

func TestSpinCommand_FriendlyError(t *testing.T) {
	tc := SetupTestContext(t)
	tc.Mux.HandleFunc("/api/v1/spin", func(w http.ResponseWriter, r *http.Request) {
		WriteJSON(w, http.StatusPaymentRequired, handler.ErrorResponse{Error: handler.ErrMsgNotEnoughCreditsError})
	})

	_, h := SpinCommand()
	h(tc.Session, createTestInteraction("spin", []*discordgo.ApplicationCommandInteractionDataOption{
		intOption("bet", 100),
	}), tc.APIClient)

	edits := tc.Edits()
	require.Len(t, edits, 1)
	require.NotNil(t, edits[0].Content)
	assert.Equal(t, MsgInsufficientFunds, *edits[0].Content)
}

func TestAutoSpinCommand_Handler(t *testing.T) {
	tc := SetupTestContext(t)
	var started, stopped int
	tc.Mux.HandleFunc("/api/v1/autospin/start", func(w http.ResponseWriter, r *http.Request) {
		started++
		WriteJSON(w, http.StatusAccepted, handler.SuccessResponse{Message: handler.MsgAutoSpinStarted})
	})
	tc.Mux.HandleFunc("/api/v1/autospin/stop", func(w http.ResponseWriter, r *http.Request) {
		stopped++
		WriteJSON(w, http.StatusConflict, handler.ErrorResponse{Error: handler.ErrMsgAutoSpinNotRunningError})
	})

	_, h := AutoSpinCommand()
	h(tc.Session, createTestInteraction("autospin", []*discordgo.ApplicationCommandInteractionDataOption{{
		Name:    "start",
		Type:    discordgo.ApplicationCommandOptionSubCommand,
		Options: []*discordgo.ApplicationCommandInteractionDataOption{intOption("bet", 1000)},
	}}), tc.APIClient)
	h(tc.Session, createTestInteraction("autospin", []*discordgo.ApplicationCommandInteractionDataOption{{
		Name: "stop",
		Type: discordgo.ApplicationCommandOptionSubCommand,
	}}), tc.APIClient)

	assert.Equal(t, 1, started)
	assert.Equal(t, 1, stopped)

	edits := tc.Edits()
	require.Len(t, edits, 2)
	require.NotNil(t, edits[0].Embeds)
	assert.Contains(t, (*edits[0].Embeds)[0].Description, "1,000 credits")
	require.NotNil(t, edits[1].Content)
	assert.Equal(t, MsgAutoSpinNotRunning, *edits[1].Content)
}

func TestLeaderboardCommand_Handler(t *testing.T) {
	tc := SetupTestContext(t)
	tc.Mux.HandleFunc("/api/v1/leaderboard", func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "5", r.URL.Query().Get("limit"))
		assert.Equal(t, "discord-test-user-123", r.URL.Query().Get("player_id"))
		WriteJSON(w, http.StatusOK, LeaderboardInfo{
			Entries: []domain.LeaderboardEntry{{Rank: 1, PlayerID: "web-anna", Score: 1200, Combos: 3}},
			Player:  &domain.LeaderboardEntry{Rank: 7, PlayerID: "discord-test-user-123", Score: 40, Combos: 1},
		})
	})

	_, h := LeaderboardCommand()
	h(tc.Session, createTestInteraction("leaderboard", []*discordgo.ApplicationCommandInteractionDataOption{
		intOption("limit", 5),
	}), tc.APIClient)

	edits := tc.Edits()
	require.Len(t, edits, 1)
	require.NotNil(t, edits[0].Embeds)
	desc := (*edits[0].Embeds)[0].Description
	assert.Contains(t, desc, "🥇 web-anna: 1,200 pts")
	assert.Contains(t, desc, "Your best: #7 <@test-user-123>: 40 pts")
}

func TestBalanceCommand_Handler(t *testing.T) {
	tc := SetupTestContext(t)
	tc.Mux.HandleFunc("/api/v1/balance", func(w http.ResponseWriter, r *http.Request) {
		WriteJSON(w, http.StatusOK, map[string]interface{}{
			"player_id":        r.URL.Query().Get("player_id"),
			"balance":          12345,
			"combo":            3,
			"score":            2000,
			"mission_progress": 66,
		})
	})

	_, h := BalanceCommand()
	h(tc.Session, createTestInteraction("balance", nil), tc.APIClient)

	edits := tc.Edits()
	require.Len(t, edits, 1)
	require.NotNil(t, edits[0].Embeds)
	assert.Equal(t, "**12,345 credits**\nCombo: x3\nScore: 2,000\nMission: 66%", (*edits[0].Embeds)[0].Description)
}
