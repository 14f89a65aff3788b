package slots

import (
	"fmt"

	"github.com/osse101/LuckySpin_Go/internal/domain"
)

// FormatMessage creates a user-facing message for an outcome.
// A non-empty modeMessage (challenge or mission bonus) leads the text.
func FormatMessage(o domain.SpinOutcome, modeMessage string) string {
	var msg string
	net := o.TotalPayout - o.Bet

	switch o.Tier {
	case domain.ResultNone:
		msg = fmt.Sprintf("Better luck next time! You lost %d.", o.Bet)
	case domain.ResultJackpot:
		msg = fmt.Sprintf("🌟 MEGA WIN! 🌟 You won %d (net %+d)!", o.TotalPayout, net)
	case domain.ResultBigWin:
		msg = fmt.Sprintf("💰 BIG WIN! 💰 You won %d (net %+d)!", o.TotalPayout, net)
	default:
		msg = fmt.Sprintf("🎉 WIN x%d lines! You won %d (net %+d).", len(o.Wins), o.TotalPayout, net)
	}

	if o.Combo > 1 && o.Tier != domain.ResultNone {
		msg += fmt.Sprintf(" Combo x%d!", o.Combo)
	}
	if modeMessage != "" {
		msg = modeMessage + " " + msg
	}
	return msg
}
