package wallet

// Redis key layout
const (
	KeyPrefix      = "luckyspin:player:"
	KeySuffixBal   = ":balance"
	KeySuffixCombo = ":combo"
)

// Log messages
const (
	LogMsgWalletInitialized = "Wallet store initialized"
	LogMsgDebitRejected     = "Debit rejected"
)
