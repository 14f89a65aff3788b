package bootstrap

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"strings"

	"github.com/osse101/LuckySpin_Go/internal/config"
	"github.com/osse101/LuckySpin_Go/internal/domain"
	"github.com/osse101/LuckySpin_Go/internal/slots"
	"github.com/osse101/LuckySpin_Go/internal/validation"
)

// GameConfig maps the environment onto the rules every session plays by.
func GameConfig(cfg *config.Config) slots.Config {
	return slots.Config{
		StartingBalance: cfg.StartingBalance,
		MinBet:          cfg.MinBet,
		MaxBet:          cfg.MaxBet,
		ComboReset:      cfg.ComboResetValue,
		Thresholds: slots.Thresholds{
			BigWin:  cfg.BigWinMultiple,
			Jackpot: cfg.JackpotMultiple,
		},
		Sequencer: slots.SequencerConfig{
			BaseSpins:     cfg.SpinBaseCount,
			SpinStep:      cfg.SpinStep,
			DrawInterval:  cfg.SpinDrawInterval,
			ColumnStagger: cfg.SpinColumnStagger,
			SettleDelay:   cfg.SettleDelay,
		},
		AutoSpin: slots.AutoSpinConfig{
			WinDelay:  cfg.AutoSpinWinDelay,
			LossDelay: cfg.AutoSpinLossDelay,
		},
	}
}

// InitializeGame checks the paytable file against its schema, loads the
// paytables, selects the configured variant and builds the engine for it.
func InitializeGame(cfg *config.Config) (*slots.Engine, slots.Config, error) {
	if err := validatePaytable(cfg.PaytablePath, cfg.PaytableSchema); err != nil {
		return nil, slots.Config{}, fmt.Errorf("%s: %w", ErrMsgInvalidPaytable, err)
	}

	tables, err := slots.LoadPaytables(cfg.PaytablePath)
	if err != nil {
		return nil, slots.Config{}, fmt.Errorf("%s: %w", ErrMsgFailedLoadTables, err)
	}

	table, ok := tables[cfg.GameVariant]
	if !ok {
		return nil, slots.Config{}, fmt.Errorf("%w: %q (available: %s)",
			domain.ErrUnknownVariant, cfg.GameVariant, strings.Join(slots.VariantNames(tables), ", "))
	}

	gameCfg := GameConfig(cfg)
	slog.Info(LogMsgPaytablesLoaded,
		"path", cfg.PaytablePath,
		"variants", len(tables),
		"variant", cfg.GameVariant,
		"cells", table.Cells,
		"paylines", len(table.Paylines))

	return slots.NewEngine(table, gameCfg.Thresholds, gameCfg.ComboReset), gameCfg, nil
}

// validatePaytable is a no-op when either file is unset or the paytable is
// absent, in which case the builtin variants apply.
func validatePaytable(path, schema string) error {
	if path == "" || schema == "" {
		return nil
	}
	if _, err := os.Stat(path); errors.Is(err, fs.ErrNotExist) {
		return nil
	}
	return validation.NewSchemaValidator().ValidateFile(path, schema)
}
