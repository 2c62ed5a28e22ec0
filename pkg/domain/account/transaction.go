package account

import "github.com/amirasaad/minibank/pkg/domain/money"

// Kind tags a transaction variant. It is set at construction time and
// carried through History entries; nothing in the ledger depends on
// runtime type inspection.
type Kind uint8

const (
	KindDeposit Kind = iota + 1
	KindWithdrawal
)

// String returns the kind's display name, as shown on statements.
func (k Kind) String() string {
	switch k {
	case KindDeposit:
		return "Deposit"
	case KindWithdrawal:
		return "Withdrawal"
	default:
		return "Unknown"
	}
}

// Transaction is one monetary operation with a fixed amount. Implementations
// are immutable; the variant set is closed (Deposit, Withdrawal).
//
// Execute applies the transaction to the target account and reports the
// outcome. On success and only on success it records an entry in the
// account's History, so a failed mutation can never pollute the ledger.
type Transaction interface {
	Amount() money.Money
	Kind() Kind
	Execute(target Target) error
}

// Deposit is a transaction that adds funds to an account.
type Deposit struct {
	amount money.Money
}

// NewDeposit creates a deposit of the given amount. The amount's validity
// is checked at execution, not construction.
func NewDeposit(amount money.Money) Deposit {
	return Deposit{amount: amount}
}

// Amount returns the deposit amount.
func (d Deposit) Amount() money.Money { return d.amount }

// Kind returns KindDeposit.
func (d Deposit) Kind() Kind { return KindDeposit }

// Execute deposits the amount into the target account and records the
// entry once the balance mutation has succeeded.
func (d Deposit) Execute(target Target) error {
	if err := target.Deposit(d.amount); err != nil {
		return err
	}
	target.History().Record(KindDeposit, d.amount)
	return nil
}

// Withdrawal is a transaction that removes funds from an account.
type Withdrawal struct {
	amount money.Money
}

// NewWithdrawal creates a withdrawal of the given amount. The amount's
// validity is checked at execution, not construction.
func NewWithdrawal(amount money.Money) Withdrawal {
	return Withdrawal{amount: amount}
}

// Amount returns the withdrawal amount.
func (w Withdrawal) Amount() money.Money { return w.amount }

// Kind returns KindWithdrawal.
func (w Withdrawal) Kind() Kind { return KindWithdrawal }

// Execute withdraws the amount from the target account, honoring whatever
// limits the account variant enforces, and records the entry once the
// balance mutation has succeeded.
func (w Withdrawal) Execute(target Target) error {
	if err := target.Withdraw(w.amount); err != nil {
		return err
	}
	target.History().Record(KindWithdrawal, w.amount)
	return nil
}

var (
	_ Transaction = Deposit{}
	_ Transaction = Withdrawal{}
	_ Target      = (*Account)(nil)
	_ Target      = (*CheckingAccount)(nil)
)
