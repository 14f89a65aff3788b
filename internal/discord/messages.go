package discord

// Friendly message constants for Discord responses
const (
	MsgInsufficientFunds  = "⚠️ **Not Enough Credits!**\nYour balance can't cover that bet. Try `/balance`."
	MsgSpinInProgress     = "🎰 **Still Spinning!**\nWait for the reels to stop first."
	MsgAutoSpinActive     = "🔁 **Auto-Spin Running**\nStop it before starting another."
	MsgAutoSpinNotRunning = "⏹️ **Auto-Spin Is Off**\nThere is nothing to stop."
	MsgInvalidBet         = "🪙 **Invalid Bet**\nThat bet is outside the table limits."
	MsgUnknownMode        = "❓ **Unknown Mode**\nPick one of the listed modes."
	MsgAPIUnavailable     = "🔌 **Game Server Unreachable**\nPlease try again in a moment."

	MsgGenericError = "❌ Something went wrong."
)

// Player ids sent to the API are namespaced by platform
const PlayerIDPrefix = "discord-"

// Embed colors
const (
	ColorLoss    = 0x95A5A6
	ColorWin     = 0x2ECC71
	ColorBigWin  = 0xFFA500
	ColorJackpot = 0xFFD700
	ColorInfo    = 0x3498DB
)
