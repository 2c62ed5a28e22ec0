// Package client models the bank's clients: the natural persons who own
// accounts and submit transactions against them.
package client

import (
	"errors"
	"time"

	"github.com/amirasaad/minibank/pkg/domain/account"
)

// ErrNoAccounts is returned when an operation needs an account and the
// client has not opened one yet.
var ErrNoAccounts = errors.New("client has no accounts")

// Client is a natural person holding zero or more accounts. The account
// list keeps insertion order, which is account-opening order.
type Client struct {
	name      string
	cpf       string
	birthDate time.Time
	address   string
	accounts  []account.Target
}

// New creates a Client. CPF uniqueness is not checked here; the registry
// that stores clients enforces it.
func New(name, cpf string, birthDate time.Time, address string) (*Client, error) {
	if name == "" {
		return nil, errors.New("name cannot be empty")
	}
	if cpf == "" {
		return nil, errors.New("cpf cannot be empty")
	}
	return &Client{
		name:      name,
		cpf:       cpf,
		birthDate: birthDate,
		address:   address,
	}, nil
}

// Name returns the client's full name.
func (c *Client) Name() string { return c.name }

// CPF returns the client's tax id.
func (c *Client) CPF() string { return c.cpf }

// BirthDate returns the client's date of birth.
func (c *Client) BirthDate() time.Time { return c.birthDate }

// Address returns the client's address.
func (c *Client) Address() string { return c.address }

// DisplayName implements account.Holder.
func (c *Client) DisplayName() string { return c.name }

// AddAccount appends an account to the client's owned-account list.
func (c *Client) AddAccount(acc account.Target) {
	c.accounts = append(c.accounts, acc)
}

// Accounts returns the owned accounts in opening order.
func (c *Client) Accounts() []account.Target {
	out := make([]account.Target, len(c.accounts))
	copy(out, c.accounts)
	return out
}

// FirstAccount returns the client's oldest account, the one the interactive
// flows operate on, or ErrNoAccounts.
func (c *Client) FirstAccount() (account.Target, error) {
	if len(c.accounts) == 0 {
		return nil, ErrNoAccounts
	}
	return c.accounts[0], nil
}

// Execute submits a transaction against an account. It deliberately does
// not check that the account belongs to this client; ownership is a
// bookkeeping convenience, not an enforced boundary.
func (c *Client) Execute(acc account.Target, tx account.Transaction) error {
	return tx.Execute(acc)
}

var _ account.Holder = (*Client)(nil)
