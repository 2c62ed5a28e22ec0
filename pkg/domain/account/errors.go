package account

import "errors"

var (
	// ErrAmountNotPositive is returned when a deposit or withdrawal is
	// requested with a zero or negative amount.
	ErrAmountNotPositive = errors.New("transaction amount must be positive")

	// ErrInsufficientFunds is returned when a withdrawal asks for more than
	// the current balance.
	ErrInsufficientFunds = errors.New("insufficient funds")

	// ErrWithdrawalLimitExceeded is returned when a single withdrawal
	// exceeds a checking account's per-withdrawal ceiling.
	ErrWithdrawalLimitExceeded = errors.New("withdrawal exceeds the per-withdrawal limit")

	// ErrDailyWithdrawalLimitExceeded is returned when the number of
	// withdrawals already recorded today has reached the daily maximum.
	ErrDailyWithdrawalLimitExceeded = errors.New("daily withdrawal limit exceeded")
)
