package account_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/amirasaad/minibank/pkg/domain/account"
	"github.com/amirasaad/minibank/pkg/domain/money"
)

func TestKindString(t *testing.T) {
	t.Parallel()
	assert.Equal(t, "Deposit", account.KindDeposit.String())
	assert.Equal(t, "Withdrawal", account.KindWithdrawal.String())
	assert.Equal(t, "Unknown", account.Kind(0).String())
}

func TestDepositExecuteRecordsHistory(t *testing.T) {
	t.Parallel()
	acc := newAccount(t)

	tx := account.NewDeposit(money.FromCents(5000))
	assert.Equal(t, account.KindDeposit, tx.Kind())
	assert.Equal(t, int64(5000), tx.Amount().Cents())

	require.NoError(t, tx.Execute(acc))
	assert.Equal(t, int64(5000), acc.Balance().Cents())
	require.Equal(t, 1, acc.History().Len())
	for e := range acc.History().Report("") {
		assert.Equal(t, account.KindDeposit, e.Kind)
		assert.Equal(t, int64(5000), e.Amount.Cents())
	}
}

func TestWithdrawalExecuteRecordsHistory(t *testing.T) {
	t.Parallel()
	acc := newAccount(t)
	require.NoError(t, account.NewDeposit(money.FromCents(5000)).Execute(acc))

	tx := account.NewWithdrawal(money.FromCents(2000))
	assert.Equal(t, account.KindWithdrawal, tx.Kind())

	require.NoError(t, tx.Execute(acc))
	assert.Equal(t, int64(3000), acc.Balance().Cents())
	assert.Equal(t, 2, acc.History().Len())
}

func TestFailedExecuteLeavesNoHistory(t *testing.T) {
	t.Parallel()
	acc := newAccount(t)

	t.Run("withdrawal over balance", func(t *testing.T) {
		err := account.NewWithdrawal(money.FromCents(100)).Execute(acc)
		assert.ErrorIs(t, err, account.ErrInsufficientFunds)
		assert.Zero(t, acc.History().Len())
	})
	t.Run("non positive deposit", func(t *testing.T) {
		err := account.NewDeposit(money.Zero()).Execute(acc)
		assert.ErrorIs(t, err, account.ErrAmountNotPositive)
		assert.Zero(t, acc.History().Len())
	})
}
