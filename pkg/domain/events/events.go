// Package events defines the domain events the ledger publishes. They feed
// the audit log; nothing in the core waits on them.
package events

import (
	"time"

	"github.com/google/uuid"

	"github.com/amirasaad/minibank/pkg/domain/account"
	"github.com/amirasaad/minibank/pkg/domain/money"
)

// ClientRegistered is emitted after a new client is stored in the registry.
type ClientRegistered struct {
	ID         uuid.UUID
	CPF        string
	Name       string
	OccurredAt time.Time
}

// AccountOpened is emitted after a new account is opened and attached to
// its client.
type AccountOpened struct {
	ID            uuid.UUID
	AccountNumber int64
	CPF           string
	OccurredAt    time.Time
}

// TransactionExecuted is emitted after a transaction has mutated an account
// and been recorded in its history.
type TransactionExecuted struct {
	ID            uuid.UUID
	AccountNumber int64
	Kind          account.Kind
	Amount        money.Money
	OccurredAt    time.Time
}

func (e ClientRegistered) Type() string    { return "ClientRegistered" }
func (e AccountOpened) Type() string       { return "AccountOpened" }
func (e TransactionExecuted) Type() string { return "TransactionExecuted" }
