package config_test

import (
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/amirasaad/minibank/pkg/config"
)

func silentLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestLoadDefaults(t *testing.T) {
	cfg, err := config.Load(silentLogger())
	require.NoError(t, err)

	assert.Equal(t, "info", cfg.Log.Level)
	assert.Equal(t, "text", cfg.Log.Format)
	assert.Equal(t, "minibank", cfg.Log.Prefix)

	assert.Equal(t, "0001", cfg.Bank.BranchCode)
	assert.Equal(t, "500.00", cfg.Bank.WithdrawCeiling)
	assert.Equal(t, 3, cfg.Bank.DailyWithdrawalLimit)
	assert.Equal(t, 5, cfg.Bank.OpeningDailyWithdrawalLimit)

	ceiling, err := cfg.Bank.CeilingAmount()
	require.NoError(t, err)
	assert.Equal(t, int64(50000), ceiling.Cents())
}

func TestLoadFromEnvironment(t *testing.T) {
	t.Setenv("MINIBANK_BANK_WITHDRAW_CEILING", "750.50")
	t.Setenv("MINIBANK_BANK_DAILY_WITHDRAWAL_LIMIT", "10")
	t.Setenv("MINIBANK_LOG_LEVEL", "debug")

	cfg, err := config.Load(silentLogger())
	require.NoError(t, err)

	assert.Equal(t, "debug", cfg.Log.Level)
	assert.Equal(t, 10, cfg.Bank.DailyWithdrawalLimit)
	ceiling, err := cfg.Bank.CeilingAmount()
	require.NoError(t, err)
	assert.Equal(t, int64(75050), ceiling.Cents())
}

func TestLoadRejectsBadValues(t *testing.T) {
	t.Run("unparsable ceiling", func(t *testing.T) {
		t.Setenv("MINIBANK_BANK_WITHDRAW_CEILING", "a lot")
		_, err := config.Load(silentLogger())
		assert.Error(t, err)
	})
	t.Run("negative ceiling", func(t *testing.T) {
		t.Setenv("MINIBANK_BANK_WITHDRAW_CEILING", "-1")
		_, err := config.Load(silentLogger())
		assert.Error(t, err)
	})
	t.Run("zero daily limit", func(t *testing.T) {
		t.Setenv("MINIBANK_BANK_DAILY_WITHDRAWAL_LIMIT", "0")
		_, err := config.Load(silentLogger())
		assert.Error(t, err)
	})
}
