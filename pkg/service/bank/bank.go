// Package bank provides the business operations behind the interactive
// menu: client registration, account opening, deposits, withdrawals,
// statements and account listings.
//
// The menu resolves nothing itself; it hands CPF and amounts to this
// service, which resolves the client, picks the account, builds the
// transaction and submits it through the client.
package bank

import (
	"context"
	"fmt"
	"iter"
	"log/slog"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"

	"github.com/amirasaad/minibank/pkg/config"
	"github.com/amirasaad/minibank/pkg/domain/account"
	"github.com/amirasaad/minibank/pkg/domain/client"
	"github.com/amirasaad/minibank/pkg/domain/events"
	"github.com/amirasaad/minibank/pkg/domain/money"
	"github.com/amirasaad/minibank/pkg/eventbus"
	"github.com/amirasaad/minibank/pkg/registry"
)

// BirthDateLayout is the date format operators type: dd-mm-yyyy.
const BirthDateLayout = "02-01-2006"

// Service orchestrates the ledger's use cases over the in-memory registries.
type Service struct {
	clients  *registry.Clients
	accounts *registry.Accounts
	bus      eventbus.EventBus
	logger   *slog.Logger
	validate *validator.Validate
	cfg      config.Bank
	ceiling  money.Money
	clock    func() time.Time
}

// Option tweaks a Service at construction.
type Option func(*Service)

// WithClock overrides the clock the service hands to new accounts.
// Intended for tests.
func WithClock(clock func() time.Time) Option {
	return func(s *Service) {
		if clock != nil {
			s.clock = clock
		}
	}
}

// New creates a Service. It fails if the configured withdraw ceiling does
// not parse as a monetary amount.
func New(
	clients *registry.Clients,
	accounts *registry.Accounts,
	bus eventbus.EventBus,
	logger *slog.Logger,
	cfg config.Bank,
	opts ...Option,
) (*Service, error) {
	ceiling, err := cfg.CeilingAmount()
	if err != nil {
		return nil, err
	}
	s := &Service{
		clients:  clients,
		accounts: accounts,
		bus:      bus,
		logger:   logger,
		validate: validator.New(),
		cfg:      cfg,
		ceiling:  ceiling,
		clock:    time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s, nil
}

// RegisterClientInput carries the registration form. CPF is the bare
// 11-digit tax id; BirthDate uses BirthDateLayout.
type RegisterClientInput struct {
	Name      string `validate:"required"`
	CPF       string `validate:"required,len=11,numeric"`
	BirthDate string `validate:"required"`
	Address   string `validate:"required"`
}

// RegisterClient validates the form, enforces CPF uniqueness and stores the
// new client.
func (s *Service) RegisterClient(ctx context.Context, input RegisterClientInput) (*client.Client, error) {
	if err := s.validate.Struct(input); err != nil {
		return nil, fmt.Errorf("invalid registration: %w", err)
	}
	birthDate, err := time.Parse(BirthDateLayout, input.BirthDate)
	if err != nil {
		return nil, fmt.Errorf("invalid birth date %q, want dd-mm-yyyy: %w", input.BirthDate, err)
	}
	c, err := client.New(input.Name, input.CPF, birthDate, input.Address)
	if err != nil {
		return nil, err
	}
	if err := s.clients.Register(c); err != nil {
		return nil, err
	}
	s.logger.Info("client registered", "cpf", c.CPF(), "name", c.Name())
	_ = s.bus.Publish(ctx, events.ClientRegistered{
		ID:         uuid.New(),
		CPF:        c.CPF(),
		Name:       c.Name(),
		OccurredAt: s.clock(),
	})
	return c, nil
}

// OpenAccount opens a checking account for the client with the given CPF,
// assigning the next sequential number. The account takes the configured
// branch code and withdraw ceiling, and the account-opening daily
// withdrawal limit.
func (s *Service) OpenAccount(ctx context.Context, cpf string) (*account.CheckingAccount, error) {
	c, err := s.clients.Find(cpf)
	if err != nil {
		return nil, err
	}
	acc, err := account.NewChecking().
		WithNumber(s.accounts.NextNumber()).
		WithBranch(s.cfg.BranchCode).
		WithHolder(c).
		WithClock(s.clock).
		WithCeiling(s.ceiling).
		WithDailyLimit(s.cfg.OpeningDailyWithdrawalLimit).
		Build()
	if err != nil {
		return nil, err
	}
	if err := s.accounts.Add(acc); err != nil {
		return nil, err
	}
	c.AddAccount(acc)
	s.logger.Info("account opened", "number", acc.Number(), "cpf", cpf)
	_ = s.bus.Publish(ctx, events.AccountOpened{
		ID:            uuid.New(),
		AccountNumber: acc.Number(),
		CPF:           cpf,
		OccurredAt:    s.clock(),
	})
	return acc, nil
}

// Deposit deposits amount into the first account of the client with the
// given CPF and returns the resulting balance.
func (s *Service) Deposit(ctx context.Context, cpf string, amount money.Money) (money.Money, error) {
	return s.execute(ctx, cpf, account.NewDeposit(amount))
}

// Withdraw withdraws amount from the first account of the client with the
// given CPF and returns the resulting balance.
func (s *Service) Withdraw(ctx context.Context, cpf string, amount money.Money) (money.Money, error) {
	return s.execute(ctx, cpf, account.NewWithdrawal(amount))
}

func (s *Service) execute(ctx context.Context, cpf string, tx account.Transaction) (money.Money, error) {
	c, err := s.clients.Find(cpf)
	if err != nil {
		return money.Zero(), err
	}
	acc, err := c.FirstAccount()
	if err != nil {
		return money.Zero(), err
	}
	if err := c.Execute(acc, tx); err != nil {
		s.logger.Warn("transaction rejected",
			"kind", tx.Kind().String(), "amount", tx.Amount(), "cpf", cpf, "error", err)
		return money.Zero(), err
	}
	s.logger.Info("transaction executed",
		"kind", tx.Kind().String(), "amount", tx.Amount(), "account", acc.Number())
	_ = s.bus.Publish(ctx, events.TransactionExecuted{
		ID:            uuid.New(),
		AccountNumber: acc.Number(),
		Kind:          tx.Kind(),
		Amount:        tx.Amount(),
		OccurredAt:    s.clock(),
	})
	return acc.Balance(), nil
}

// Statement is the account extract the menu renders: the recorded entries
// in chronological order plus the current balance.
type Statement struct {
	Entries []account.Entry
	Balance money.Money
}

// Statement builds the statement for the first account of the client with
// the given CPF. A non-empty kindFilter ("deposit"/"withdrawal", any case)
// keeps only matching entries.
func (s *Service) Statement(ctx context.Context, cpf, kindFilter string) (*Statement, error) {
	c, err := s.clients.Find(cpf)
	if err != nil {
		return nil, err
	}
	acc, err := c.FirstAccount()
	if err != nil {
		return nil, err
	}
	st := &Statement{Balance: acc.Balance()}
	for e := range acc.History().Report(kindFilter) {
		st.Entries = append(st.Entries, e)
	}
	return st, nil
}

// ListAccounts returns a single-pass sequence of formatted records, one per
// account in opening order, bound to a snapshot of the registry taken now.
// Once consumed (or abandoned) the sequence stays exhausted.
func (s *Service) ListAccounts() iter.Seq[string] {
	snapshot := s.accounts.Snapshot()
	done := false
	return func(yield func(string) bool) {
		if done {
			return
		}
		done = true
		for _, acc := range snapshot {
			record := fmt.Sprintf("%s\nBalance:\tR$ %s", acc, acc.Balance())
			if !yield(record) {
				return
			}
		}
	}
}
