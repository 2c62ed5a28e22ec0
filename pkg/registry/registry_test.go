package registry_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/amirasaad/minibank/pkg/domain/account"
	"github.com/amirasaad/minibank/pkg/domain/client"
	"github.com/amirasaad/minibank/pkg/registry"
)

func newClient(t *testing.T, name, cpf string) *client.Client {
	t.Helper()
	born := time.Date(1985, 1, 2, 0, 0, 0, 0, time.UTC)
	c, err := client.New(name, cpf, born, "Rua B, 2 - Centro - Rio de Janeiro/RJ")
	require.NoError(t, err)
	return c
}

func TestClientsRegisterAndFind(t *testing.T) {
	t.Parallel()
	r := registry.NewClients()
	c := newClient(t, "Maria Silva", "12345678901")

	require.NoError(t, r.Register(c))
	assert.Equal(t, 1, r.Len())

	got, err := r.Find("12345678901")
	require.NoError(t, err)
	assert.Same(t, c, got)

	_, err = r.Find("00000000000")
	assert.ErrorIs(t, err, registry.ErrClientNotFound)
}

func TestClientsRejectDuplicateCPF(t *testing.T) {
	t.Parallel()
	r := registry.NewClients()
	require.NoError(t, r.Register(newClient(t, "Maria Silva", "12345678901")))

	err := r.Register(newClient(t, "Other Maria", "12345678901"))
	assert.ErrorIs(t, err, registry.ErrCPFAlreadyRegistered)
	assert.Equal(t, 1, r.Len())
}

func TestClientsListKeepsRegistrationOrder(t *testing.T) {
	t.Parallel()
	r := registry.NewClients()
	require.NoError(t, r.Register(newClient(t, "Maria Silva", "12345678901")))
	require.NoError(t, r.Register(newClient(t, "Joao Souza", "98765432100")))

	list := r.List()
	require.Len(t, list, 2)
	assert.Equal(t, "Maria Silva", list[0].Name())
	assert.Equal(t, "Joao Souza", list[1].Name())
}

func TestAccountsNextNumber(t *testing.T) {
	t.Parallel()
	r := registry.NewAccounts()
	assert.Equal(t, int64(1), r.NextNumber())
	assert.Equal(t, int64(2), r.NextNumber())
	assert.Equal(t, int64(3), r.NextNumber())
}

func TestAccountsAddAndFind(t *testing.T) {
	t.Parallel()
	r := registry.NewAccounts()
	c := newClient(t, "Maria Silva", "12345678901")

	acc, err := account.NewChecking().WithNumber(r.NextNumber()).WithHolder(c).Build()
	require.NoError(t, err)
	require.NoError(t, r.Add(acc))
	assert.Equal(t, 1, r.Len())

	got, err := r.Find(acc.Number())
	require.NoError(t, err)
	assert.Same(t, acc, got)

	_, err = r.Find(999)
	assert.ErrorIs(t, err, registry.ErrAccountNotFound)

	t.Run("rejects duplicate number", func(t *testing.T) {
		dup, err := account.NewChecking().WithNumber(acc.Number()).WithHolder(c).Build()
		require.NoError(t, err)
		assert.ErrorIs(t, r.Add(dup), registry.ErrDuplicateAccountNumber)
	})
}

func TestAccountsSnapshotKeepsCreationOrder(t *testing.T) {
	t.Parallel()
	r := registry.NewAccounts()
	c := newClient(t, "Maria Silva", "12345678901")

	for i := 0; i < 3; i++ {
		acc, err := account.NewChecking().WithNumber(r.NextNumber()).WithHolder(c).Build()
		require.NoError(t, err)
		require.NoError(t, r.Add(acc))
	}

	snap := r.Snapshot()
	require.Len(t, snap, 3)
	for i, acc := range snap {
		assert.Equal(t, int64(i+1), acc.Number())
	}
}
