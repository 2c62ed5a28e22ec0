// Package registry provides the in-memory stores the bank keeps its clients
// and accounts in: indexed for lookup, insertion-ordered for listing.
//
// The process model guarantees one operator at a time, but the stores are
// still guarded by RWMutexes so a future concurrent surface does not have
// to rework them.
package registry

import (
	"errors"
	"sync"

	"github.com/amirasaad/minibank/pkg/domain/account"
	"github.com/amirasaad/minibank/pkg/domain/client"
)

var (
	// ErrClientNotFound is returned when no client matches the given CPF.
	ErrClientNotFound = errors.New("client not found")

	// ErrCPFAlreadyRegistered is returned when a registration reuses a CPF.
	ErrCPFAlreadyRegistered = errors.New("cpf already registered")

	// ErrAccountNotFound is returned when no account matches the given number.
	ErrAccountNotFound = errors.New("account not found")

	// ErrDuplicateAccountNumber is returned when an account number is reused.
	ErrDuplicateAccountNumber = errors.New("account number already in use")
)

// Clients is a CPF-indexed, insertion-ordered collection of clients.
type Clients struct {
	mu    sync.RWMutex
	byCPF map[string]*client.Client
	order []*client.Client
}

// NewClients creates an empty client registry.
func NewClients() *Clients {
	return &Clients{byCPF: make(map[string]*client.Client)}
}

// Register stores a client, enforcing CPF uniqueness across the bank.
func (r *Clients) Register(c *client.Client) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, exists := r.byCPF[c.CPF()]; exists {
		return ErrCPFAlreadyRegistered
	}
	r.byCPF[c.CPF()] = c
	r.order = append(r.order, c)
	return nil
}

// Find returns the client with the given CPF, or ErrClientNotFound.
func (r *Clients) Find(cpf string) (*client.Client, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	c, ok := r.byCPF[cpf]
	if !ok {
		return nil, ErrClientNotFound
	}
	return c, nil
}

// List returns the clients in registration order.
func (r *Clients) List() []*client.Client {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]*client.Client, len(r.order))
	copy(out, r.order)
	return out
}

// Len returns the number of registered clients.
func (r *Clients) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.order)
}

// Accounts is a number-indexed, insertion-ordered collection of checking
// accounts. It also hands out the sequential account numbers.
type Accounts struct {
	mu       sync.RWMutex
	byNumber map[int64]*account.CheckingAccount
	order    []*account.CheckingAccount
	next     int64
}

// NewAccounts creates an empty account registry. Numbers start at 1.
func NewAccounts() *Accounts {
	return &Accounts{byNumber: make(map[int64]*account.CheckingAccount)}
}

// NextNumber reserves and returns the next sequential account number.
func (r *Accounts) NextNumber() int64 {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.next++
	return r.next
}

// Add stores an opened account.
func (r *Accounts) Add(acc *account.CheckingAccount) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, exists := r.byNumber[acc.Number()]; exists {
		return ErrDuplicateAccountNumber
	}
	r.byNumber[acc.Number()] = acc
	r.order = append(r.order, acc)
	return nil
}

// Find returns the account with the given number, or ErrAccountNotFound.
func (r *Accounts) Find(number int64) (*account.CheckingAccount, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	acc, ok := r.byNumber[number]
	if !ok {
		return nil, ErrAccountNotFound
	}
	return acc, nil
}

// Snapshot returns the accounts in opening order as of the call.
func (r *Accounts) Snapshot() []*account.CheckingAccount {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]*account.CheckingAccount, len(r.order))
	copy(out, r.order)
	return out
}

// Len returns the number of open accounts.
func (r *Accounts) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.order)
}
