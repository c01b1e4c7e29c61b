package scale

import (
	"math/rand/v2"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/five82/smartcart/internal/catalog"
)

func newTestScale(t *testing.T) *Scale {
	t.Helper()
	sc, err := New(DefaultMin, DefaultMax, rand.New(rand.NewPCG(7, 11)))
	require.NoError(t, err)
	return sc
}

func bananas(t *testing.T) catalog.Item {
	t.Helper()
	it, ok := catalog.Lookup("0000000042105")
	require.True(t, ok)
	return it
}

func TestNew_RejectsBadRange(t *testing.T) {
	tests := []struct {
		name     string
		min, max string
	}{
		{"zero min", "0", "10"},
		{"negative min", "-1", "10"},
		{"max equals min", "5", "5"},
		{"max below min", "5", "2"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := New(decimal.RequireFromString(tt.min), decimal.RequireFromString(tt.max), nil)
			assert.Error(t, err)
		})
	}
}

func TestScale_ReadStaysInRange(t *testing.T) {
	sc := newTestScale(t)
	for range 500 {
		w := sc.Read()
		require.True(t, w.GreaterThanOrEqual(sc.Min()), "weight %s below min", w)
		require.True(t, w.LessThan(sc.Max()), "weight %s not below max", w)
		require.LessOrEqual(t, -w.Exponent(), int32(2), "weight %s has more than 2 decimals", w)
	}
}

func TestSession_WeighSettleConfirm(t *testing.T) {
	sc := newTestScale(t)
	s := NewSession(bananas(t))

	_, _, err := s.Confirm()
	require.ErrorIs(t, err, ErrNoWeight)

	w := s.Weigh(sc)
	assert.True(t, w.IsPositive())
	assert.False(t, s.CanConfirm(), "price must settle first")
	assert.Equal(t, 1, s.Readings)

	s.Settle()
	require.True(t, s.CanConfirm())
	assert.True(t, s.Price.Equal(w.Mul(decimal.RequireFromString("0.99")).Round(2)))

	price, weight, err := s.Confirm()
	require.NoError(t, err)
	assert.True(t, price.Equal(s.Price))
	assert.True(t, weight.Equal(w))
}

func TestSession_FailRequiresSettledWeight(t *testing.T) {
	s := NewSession(bananas(t))
	require.ErrorIs(t, s.Fail(), ErrNoWeight)
	assert.False(t, s.Failed)

	s.Weigh(newTestScale(t))
	require.ErrorIs(t, s.Fail(), ErrNoWeight)
	assert.False(t, s.Failed)
}

func TestSession_FailAndAcknowledgeResetsReading(t *testing.T) {
	s := NewSession(bananas(t))
	s.Weigh(newTestScale(t))
	s.Settle()

	require.ErrorIs(t, s.Fail(), ErrNotConverged)
	assert.True(t, s.Failed)
	assert.False(t, s.CanConfirm())

	s.Acknowledge()
	assert.False(t, s.Failed)
	assert.True(t, s.Weight.IsZero())
	assert.True(t, s.Price.IsZero())
	_, _, err := s.Confirm()
	assert.ErrorIs(t, err, ErrNoWeight)
}

func TestSession_ReweighHidesPrice(t *testing.T) {
	sc := newTestScale(t)
	s := NewSession(bananas(t))
	s.Weigh(sc)
	s.Settle()

	s.Weigh(sc)
	assert.False(t, s.Settled)
	assert.True(t, s.Price.IsZero())
	assert.Equal(t, 2, s.Readings)
}
