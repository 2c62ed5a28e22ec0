package money_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/amirasaad/minibank/pkg/domain/money"
)

func TestParse(t *testing.T) {
	t.Parallel()
	cases := []struct {
		in    string
		cents int64
	}{
		{"150", 15000},
		{"150.00", 15000},
		{"1.5", 150},
		{"0.01", 1},
		{"0", 0},
		{"-10", -1000},
		{"1000.99", 100099},
	}
	for _, tc := range cases {
		t.Run(tc.in, func(t *testing.T) {
			m, err := money.Parse(tc.in)
			require.NoError(t, err)
			assert.Equal(t, tc.cents, m.Cents())
		})
	}
}

func TestParseRejectsBadInput(t *testing.T) {
	t.Parallel()
	for _, in := range []string{"", "abc", "1.2.3", "10.001", "R$10"} {
		t.Run(in, func(t *testing.T) {
			_, err := money.Parse(in)
			assert.ErrorIs(t, err, money.ErrInvalidAmount)
		})
	}
}

func TestString(t *testing.T) {
	t.Parallel()
	assert.Equal(t, "1234.56", money.FromCents(123456).String())
	assert.Equal(t, "0.00", money.Zero().String())
	assert.Equal(t, "0.05", money.FromCents(5).String())
	assert.Equal(t, "-3.00", money.FromCents(-300).String())
}

func TestArithmetic(t *testing.T) {
	t.Parallel()
	a := money.FromCents(1000)
	b := money.FromCents(300)

	assert.Equal(t, int64(1300), a.Add(b).Cents())
	assert.Equal(t, int64(700), a.Sub(b).Cents())
	assert.True(t, a.GreaterThan(b))
	assert.False(t, b.GreaterThan(a))
	assert.True(t, a.Equals(money.FromCents(1000)))
	assert.True(t, a.IsPositive())
	assert.True(t, money.FromCents(-1).IsNegative())
	assert.True(t, money.Zero().IsZero())
	assert.False(t, money.Zero().IsPositive())
}
