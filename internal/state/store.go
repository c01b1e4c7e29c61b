package state

import (
	"context"
	"sync"

	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"

	"github.com/five82/smartcart/internal/cart"
	"github.com/five82/smartcart/internal/catalog"
	"github.com/five82/smartcart/internal/sound"
)

// Update is the result of one cart command.
type Update struct {
	Snapshot cart.Snapshot
	// Reveal is true exactly once per store: on the first add into an empty
	// cart.
	Reveal bool
}

// Store serializes cart commands and announces adds.
type Store struct {
	mu      sync.Mutex
	reducer *cart.Reducer
	notify  sound.Notifier
	log     zerolog.Logger
}

// NewStore wraps reducer. A nil notifier disables cues.
func NewStore(reducer *cart.Reducer, notify sound.Notifier, log zerolog.Logger) *Store {
	if reducer == nil {
		reducer = cart.NewReducer()
	}
	if notify == nil {
		notify = sound.Nop{}
	}
	return &Store{
		reducer: reducer,
		notify:  notify,
		log:     log.With().Str("component", "cart").Logger(),
	}
}

// Add puts one unit of a packaged item in the cart.
func (s *Store) Add(ctx context.Context, item catalog.Item) Update {
	s.mu.Lock()
	snap := s.reducer.AddItem(item)
	reveal := s.reducer.TakeReveal()
	s.mu.Unlock()

	s.log.Info().
		Str("barcode", item.Barcode).
		Str("title", item.Title).
		Int("items", snap.ItemCount).
		Str("subtotal", snap.Subtotal.StringFixed(2)).
		Msg("item added")
	s.announce(ctx)
	return Update{Snapshot: snap, Reveal: reveal}
}

// AddWeighed puts a weighed produce line in the cart.
func (s *Store) AddWeighed(ctx context.Context, item catalog.Item, price, weight decimal.Decimal) Update {
	s.mu.Lock()
	snap := s.reducer.AddWeighed(item, price, weight)
	reveal := s.reducer.TakeReveal()
	s.mu.Unlock()

	s.log.Info().
		Str("barcode", item.Barcode).
		Str("weight_lb", weight.String()).
		Str("price", price.StringFixed(2)).
		Int("items", snap.ItemCount).
		Msg("weighed item added")
	s.announce(ctx)
	return Update{Snapshot: snap, Reveal: reveal}
}

// Remove takes one unit off the line with id.
func (s *Store) Remove(id string) cart.Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()

	snap := s.reducer.Remove(id)
	s.log.Info().Str("line", id).Int("items", snap.ItemCount).Msg("line removed")
	return snap
}

// Clear empties the cart.
func (s *Store) Clear() cart.Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.log.Info().Msg("cart cleared")
	return s.reducer.Clear()
}

// ClearRecentlyAdded drops the highlight marker.
func (s *Store) ClearRecentlyAdded() cart.Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.reducer.ClearRecentlyAdded()
}

// Snapshot returns a copy of the current cart.
func (s *Store) Snapshot() cart.Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.reducer.Snapshot()
}

// announce fires the add cue outside the lock.
func (s *Store) announce(ctx context.Context) {
	if err := s.notify.Play(ctx, sound.CueAdd); err != nil {
		s.log.Warn().Err(err).Msg("add cue failed")
	}
}
