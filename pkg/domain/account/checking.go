package account

import (
	"errors"
	"fmt"
	"time"

	"github.com/amirasaad/minibank/pkg/domain/money"
)

// Defaults for checking accounts. The account-opening flow may configure
// different values; these apply when nothing else is said.
const (
	DefaultDailyWithdrawals    = 3
	defaultWithdrawCeilingCent = 50000 // 500.00
)

// DefaultWithdrawCeiling returns the default per-withdrawal ceiling.
func DefaultWithdrawCeiling() money.Money {
	return money.FromCents(defaultWithdrawCeilingCent)
}

// CheckingAccount is an Account with a per-withdrawal ceiling and a cap on
// the number of withdrawals per calendar day.
type CheckingAccount struct {
	*Account
	ceiling    money.Money
	dailyLimit int
}

// CheckingBuilder constructs CheckingAccount instances.
type CheckingBuilder struct {
	base       *Builder
	ceiling    money.Money
	dailyLimit int
}

// NewChecking creates a CheckingBuilder with the default ceiling (500.00)
// and daily withdrawal limit (3).
func NewChecking() *CheckingBuilder {
	return &CheckingBuilder{
		base:       New(),
		ceiling:    DefaultWithdrawCeiling(),
		dailyLimit: DefaultDailyWithdrawals,
	}
}

// WithNumber sets the account number.
func (b *CheckingBuilder) WithNumber(number int64) *CheckingBuilder {
	b.base.WithNumber(number)
	return b
}

// WithBranch overrides the branch code.
func (b *CheckingBuilder) WithBranch(code string) *CheckingBuilder {
	b.base.WithBranch(code)
	return b
}

// WithHolder sets the owning client.
func (b *CheckingBuilder) WithHolder(holder Holder) *CheckingBuilder {
	b.base.WithHolder(holder)
	return b
}

// WithClock overrides the clock. Intended for tests.
func (b *CheckingBuilder) WithClock(clock func() time.Time) *CheckingBuilder {
	b.base.WithClock(clock)
	return b
}

// WithCeiling sets the per-withdrawal ceiling.
func (b *CheckingBuilder) WithCeiling(ceiling money.Money) *CheckingBuilder {
	b.ceiling = ceiling
	return b
}

// WithDailyLimit sets the maximum number of withdrawals per calendar day.
func (b *CheckingBuilder) WithDailyLimit(limit int) *CheckingBuilder {
	b.dailyLimit = limit
	return b
}

// Build validates the builder state and returns the new checking account.
func (b *CheckingBuilder) Build() (*CheckingAccount, error) {
	if !b.ceiling.IsPositive() {
		return nil, errors.New("withdraw ceiling must be positive")
	}
	if b.dailyLimit <= 0 {
		return nil, errors.New("daily withdrawal limit must be positive")
	}
	base, err := b.base.Build()
	if err != nil {
		return nil, err
	}
	return &CheckingAccount{
		Account:    base,
		ceiling:    b.ceiling,
		dailyLimit: b.dailyLimit,
	}, nil
}

// Withdraw enforces the checking-account limits before delegating to the
// base account. The daily count is derived from History rather than a
// separate counter: History is the single source of truth for what has
// actually succeeded.
func (c *CheckingAccount) Withdraw(amount money.Money) error {
	if amount.GreaterThan(c.ceiling) {
		return ErrWithdrawalLimitExceeded
	}
	if c.history.WithdrawalsOn(c.clock()) >= c.dailyLimit {
		return ErrDailyWithdrawalLimitExceeded
	}
	return c.Account.Withdraw(amount)
}

// WithdrawCeiling returns the per-withdrawal ceiling.
func (c *CheckingAccount) WithdrawCeiling() money.Money { return c.ceiling }

// DailyWithdrawalLimit returns the maximum withdrawals per calendar day.
func (c *CheckingAccount) DailyWithdrawalLimit() int { return c.dailyLimit }

// String renders the fixed summary block used by account listings.
func (c *CheckingAccount) String() string {
	return fmt.Sprintf("Branch:\t\t%s\nAccount:\t%d\nHolder:\t\t%s",
		c.Branch(), c.Number(), c.Holder().DisplayName())
}
