// Package scale simulates the cart's produce scale and tracks one weighing
// at a time.
package scale

import (
	"errors"
	"fmt"
	"math/rand/v2"

	"github.com/shopspring/decimal"

	"github.com/five82/smartcart/internal/catalog"
)

var (
	// ErrNotConverged is the simulated "weight did not converge" failure.
	ErrNotConverged = errors.New("weight did not properly converge")
	// ErrNoWeight is returned when an action needs a settled, non-zero reading.
	ErrNoWeight = errors.New("no settled weight")
)

// Default simulated range, in pounds.
var (
	DefaultMin = decimal.NewFromInt(1)
	DefaultMax = decimal.NewFromInt(10)
)

// Scale produces pseudo-random weights in [Min, Max).
type Scale struct {
	min decimal.Decimal
	max decimal.Decimal
	rng *rand.Rand
}

// New returns a Scale over [minLb, maxLb). A nil rng uses a randomly seeded
// source.
func New(minLb, maxLb decimal.Decimal, rng *rand.Rand) (*Scale, error) {
	if !minLb.IsPositive() || maxLb.LessThanOrEqual(minLb) {
		return nil, fmt.Errorf("invalid weight range [%s, %s)", minLb, maxLb)
	}
	if rng == nil {
		rng = rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	}
	return &Scale{min: minLb, max: maxLb, rng: rng}, nil
}

// Min returns the lower bound in pounds.
func (s *Scale) Min() decimal.Decimal { return s.min }

// Max returns the upper bound in pounds.
func (s *Scale) Max() decimal.Decimal { return s.max }

// Read returns a weight rounded to hundredths of a pound.
func (s *Scale) Read() decimal.Decimal {
	span := s.max.Sub(s.min)
	w := s.min.Add(span.Mul(decimal.NewFromFloat(s.rng.Float64()))).Round(2)
	if w.GreaterThanOrEqual(s.max) {
		// rounding can land on the open bound
		w = s.max.Sub(decimal.New(1, -2))
	}
	return w
}

// Session is the in-progress weighing of one produce item.
type Session struct {
	Item    catalog.Item
	Weight  decimal.Decimal
	Price   decimal.Decimal // zero until Settle
	Settled bool
	Failed  bool
	// Readings counts Weigh calls; hosts use it to drop stale settle timers.
	Readings int
}

// NewSession starts an empty weighing for item.
func NewSession(item catalog.Item) *Session {
	return &Session{Item: item}
}

// Weigh places the item on the scale and takes a new reading. The price is
// hidden until Settle.
func (s *Session) Weigh(sc *Scale) decimal.Decimal {
	s.Weight = sc.Read()
	s.Price = decimal.Zero
	s.Settled = false
	s.Failed = false
	s.Readings++
	return s.Weight
}

// Settle publishes the price for the current reading.
func (s *Session) Settle() {
	s.Price = s.Weight.Mul(s.Item.UnitPrice).Round(2)
	s.Settled = true
}

// CanConfirm reports whether the reading can be added to the cart.
func (s *Session) CanConfirm() bool {
	return !s.Failed && s.Settled && s.Weight.IsPositive() && s.Price.IsPositive()
}

// Fail raises the convergence error. It requires a settled reading; without
// one ErrNoWeight is returned and the session is unchanged.
func (s *Session) Fail() error {
	if !s.CanConfirm() {
		return ErrNoWeight
	}
	s.Failed = true
	return ErrNotConverged
}

// Acknowledge dismisses a failure and zeroes the reading.
func (s *Session) Acknowledge() {
	s.Failed = false
	s.Settled = false
	s.Weight = decimal.Zero
	s.Price = decimal.Zero
}

// Confirm returns the price and weight to add to the cart.
func (s *Session) Confirm() (price, weight decimal.Decimal, err error) {
	if !s.CanConfirm() {
		return decimal.Zero, decimal.Zero, ErrNoWeight
	}
	return s.Price, s.Weight, nil
}
