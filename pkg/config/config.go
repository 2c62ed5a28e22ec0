// Package config loads the application configuration from the environment,
// optionally seeded from a .env file.
package config

import (
	"fmt"
	"log/slog"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"

	"github.com/amirasaad/minibank/pkg/domain/money"
)

// Log configures the logger.
type Log struct {
	Level      string `envconfig:"LEVEL" default:"info"`
	Format     string `envconfig:"FORMAT" default:"text"`
	TimeFormat string `envconfig:"TIME_FORMAT" default:"15:04:05"`
	Prefix     string `envconfig:"PREFIX" default:"minibank"`
}

// Bank configures the banking policy knobs. The checking-account default
// daily limit (3) and the account-opening default (5) are both explicit
// inputs here: neither is hard-coded, the caller decides which applies.
type Bank struct {
	BranchCode                  string `envconfig:"BRANCH_CODE" default:"0001"`
	WithdrawCeiling             string `envconfig:"WITHDRAW_CEILING" default:"500.00"`
	DailyWithdrawalLimit        int    `envconfig:"DAILY_WITHDRAWAL_LIMIT" default:"3"`
	OpeningDailyWithdrawalLimit int    `envconfig:"OPENING_DAILY_WITHDRAWAL_LIMIT" default:"5"`
}

// CeilingAmount parses the configured withdraw ceiling.
func (b Bank) CeilingAmount() (money.Money, error) {
	ceiling, err := money.Parse(b.WithdrawCeiling)
	if err != nil {
		return money.Zero(), fmt.Errorf("withdraw ceiling: %w", err)
	}
	if !ceiling.IsPositive() {
		return money.Zero(), fmt.Errorf("withdraw ceiling must be positive, got %s", ceiling)
	}
	return ceiling, nil
}

// App is the full application configuration.
type App struct {
	Log  Log  `envconfig:"LOG"`
	Bank Bank `envconfig:"BANK"`
}

// Load reads the configuration from the environment. A .env file in the
// working directory is loaded first when present; real environment
// variables win over it.
func Load(logger *slog.Logger) (*App, error) {
	if err := godotenv.Load(); err != nil {
		logger.Debug("no .env file found, using system environment variables")
	} else {
		logger.Info("environment variables loaded from .env file")
	}
	var cfg App
	if err := envconfig.Process("MINIBANK", &cfg); err != nil {
		return nil, err
	}
	if _, err := cfg.Bank.CeilingAmount(); err != nil {
		return nil, err
	}
	if cfg.Bank.DailyWithdrawalLimit <= 0 || cfg.Bank.OpeningDailyWithdrawalLimit <= 0 {
		return nil, fmt.Errorf("daily withdrawal limits must be positive")
	}
	return &cfg, nil
}
