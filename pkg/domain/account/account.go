// Package account holds the ledger's core aggregate: accounts, the
// transactions executed against them and the per-account history that
// records every successful execution.
//
// Invariants:
//   - An account balance is never negative.
//   - The balance changes only through Deposit and Withdraw.
//   - A History entry exists if and only if the corresponding balance
//     mutation succeeded.
package account

import (
	"errors"
	"time"

	"github.com/amirasaad/minibank/pkg/domain/money"
)

// DefaultBranch is the fixed branch code accounts are opened under unless
// configuration says otherwise.
const DefaultBranch = "0001"

// Holder is the narrow view an account keeps of its owning client. The
// client owns the account by listing it; the account merely knows who to
// name on statements, which keeps the back-reference non-owning.
type Holder interface {
	DisplayName() string
}

// Target is the surface every account variant exposes to transactions and
// the collaborators that submit them. Both *Account and *CheckingAccount
// satisfy it; dispatch between them is plain interface satisfaction.
type Target interface {
	Deposit(amount money.Money) error
	Withdraw(amount money.Money) error
	Number() int64
	Balance() money.Money
	History() *History
}

// Account is a plain bank account: a number, a branch, a holder, a balance
// and the history of what happened to it.
type Account struct {
	number  int64
	branch  string
	balance money.Money
	holder  Holder
	history *History
	clock   func() time.Time
}

// Builder constructs Account instances, validating invariants before any
// account comes to life.
type Builder struct {
	number int64
	branch string
	holder Holder
	clock  func() time.Time
}

// New creates a Builder with the default branch code and wall clock.
func New() *Builder {
	return &Builder{branch: DefaultBranch, clock: time.Now}
}

// WithNumber sets the account number. Numbers are assigned sequentially by
// the caller; this is a mandatory field.
func (b *Builder) WithNumber(number int64) *Builder {
	b.number = number
	return b
}

// WithBranch overrides the branch code.
func (b *Builder) WithBranch(code string) *Builder {
	b.branch = code
	return b
}

// WithHolder sets the owning client. This is a mandatory field.
func (b *Builder) WithHolder(holder Holder) *Builder {
	b.holder = holder
	return b
}

// WithClock overrides the clock used to stamp history entries and to decide
// which calendar day a withdrawal counts against. Intended for tests.
func (b *Builder) WithClock(clock func() time.Time) *Builder {
	if clock != nil {
		b.clock = clock
	}
	return b
}

// Build validates the builder state and returns the new account with a
// zero balance and an empty history.
func (b *Builder) Build() (*Account, error) {
	if b.number <= 0 {
		return nil, errors.New("account number is required")
	}
	if b.branch == "" {
		return nil, errors.New("branch code is required")
	}
	if b.holder == nil {
		return nil, errors.New("holder is required")
	}
	return &Account{
		number:  b.number,
		branch:  b.branch,
		holder:  b.holder,
		history: newHistory(b.clock),
		clock:   b.clock,
	}, nil
}

// Deposit adds amount to the balance. It rejects non-positive amounts with
// ErrAmountNotPositive and leaves the balance untouched on any failure.
// It does not write to History; the executing Transaction does that once
// the mutation has succeeded.
func (a *Account) Deposit(amount money.Money) error {
	if !amount.IsPositive() {
		return ErrAmountNotPositive
	}
	a.balance = a.balance.Add(amount)
	return nil
}

// Withdraw subtracts amount from the balance. It rejects non-positive
// amounts with ErrAmountNotPositive and amounts above the current balance
// with ErrInsufficientFunds, leaving the balance untouched in both cases.
func (a *Account) Withdraw(amount money.Money) error {
	if !amount.IsPositive() {
		return ErrAmountNotPositive
	}
	if amount.GreaterThan(a.balance) {
		return ErrInsufficientFunds
	}
	a.balance = a.balance.Sub(amount)
	return nil
}

// Number returns the account number.
func (a *Account) Number() int64 { return a.number }

// Branch returns the branch code.
func (a *Account) Branch() string { return a.branch }

// Balance returns the current balance.
func (a *Account) Balance() money.Money { return a.balance }

// Holder returns the owning client.
func (a *Account) Holder() Holder { return a.holder }

// History returns the account's transaction history.
func (a *Account) History() *History { return a.history }
