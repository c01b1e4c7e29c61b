package cart

import (
	"slices"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/five82/smartcart/internal/catalog"
)

// SavingsPerItem is the flat discount credited for every unit in the cart.
var SavingsPerItem = decimal.NewFromInt(1)

// Line is one row in the cart: a distinct product, or a distinct weighing
// event for produce.
type Line struct {
	ID       string
	Item     catalog.Item
	Quantity int

	// Set only for weighed produce. A line with a custom price is never
	// merged and always has Quantity 1.
	CustomUnitPrice decimal.NullDecimal
	Weight          decimal.NullDecimal
}

// Weighed reports whether the line came from the scale.
func (l Line) Weighed() bool {
	return l.CustomUnitPrice.Valid
}

// UnitPrice is the custom price when present, otherwise the catalog price.
func (l Line) UnitPrice() decimal.Decimal {
	if l.CustomUnitPrice.Valid {
		return l.CustomUnitPrice.Decimal
	}
	return l.Item.UnitPrice
}

// Total is UnitPrice times Quantity.
func (l Line) Total() decimal.Decimal {
	return l.UnitPrice().Mul(decimal.NewFromInt(int64(l.Quantity)))
}

// Snapshot is an immutable view of the cart. The zero value is the empty
// cart.
type Snapshot struct {
	Lines           []Line
	Subtotal        decimal.Decimal
	ItemCount       int
	Savings         decimal.Decimal
	RecentlyAddedID string // empty when no line is marked
}

// IsEmpty reports whether the cart has no lines.
func (s Snapshot) IsEmpty() bool {
	return len(s.Lines) == 0
}

// Line returns the line with the given id.
func (s Snapshot) Line(id string) (Line, bool) {
	if i := indexByID(s.Lines, id); i >= 0 {
		return s.Lines[i], true
	}
	return Line{}, false
}

// Clone returns a snapshot that shares no slice storage with s.
func (s Snapshot) Clone() Snapshot {
	s.Lines = slices.Clone(s.Lines)
	return s
}

func newSnapshot(lines []Line, recentlyAdded string) Snapshot {
	snap := Snapshot{
		Lines:           lines,
		RecentlyAddedID: recentlyAdded,
	}
	for _, l := range lines {
		snap.Subtotal = snap.Subtotal.Add(l.Total())
		snap.ItemCount += l.Quantity
	}
	snap.Savings = SavingsPerItem.Mul(decimal.NewFromInt(int64(snap.ItemCount)))
	return snap
}

// Reducer owns the authoritative cart snapshot. Every command replaces the
// snapshot wholesale and returns it. Reducer is not safe for concurrent use;
// wrap it in state.Store when more than one goroutine issues commands.
type Reducer struct {
	snapshot Snapshot
	newID    func() string

	// one-shot auto reveal, scoped to this reducer
	revealFired   bool
	revealPending bool
}

// Option customises a Reducer.
type Option func(*Reducer)

// WithIDGenerator overrides the line id source.
func WithIDGenerator(fn func() string) Option {
	return func(r *Reducer) {
		if fn != nil {
			r.newID = fn
		}
	}
}

// NewReducer returns a reducer holding the empty cart.
func NewReducer(opts ...Option) *Reducer {
	r := &Reducer{newID: uuid.NewString}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Snapshot returns the current cart.
func (r *Reducer) Snapshot() Snapshot {
	return r.snapshot.Clone()
}

// AddItem adds one unit of a packaged item, merging by barcode.
func (r *Reducer) AddItem(item catalog.Item) Snapshot {
	return r.AddItemWithPrice(item, decimal.NullDecimal{}, decimal.NullDecimal{})
}

// AddWeighed adds a produce line priced from the scale.
func (r *Reducer) AddWeighed(item catalog.Item, price, weight decimal.Decimal) Snapshot {
	return r.AddItemWithPrice(item, decimal.NewNullDecimal(price), decimal.NewNullDecimal(weight))
}

// AddItemWithPrice adds item to the cart. With a custom price a new line is
// always prepended. Without one, an existing plain line for the same barcode
// has its quantity incremented in place, or a new line is prepended.
// The affected line becomes the recently-added line.
func (r *Reducer) AddItemWithPrice(item catalog.Item, customPrice, weight decimal.NullDecimal) Snapshot {
	wasEmpty := r.snapshot.IsEmpty()
	lines := slices.Clone(r.snapshot.Lines)

	var affected string
	existing := -1
	if !customPrice.Valid {
		existing = slices.IndexFunc(lines, func(l Line) bool {
			return l.Item.Barcode == item.Barcode && !l.CustomUnitPrice.Valid
		})
	}

	if existing >= 0 {
		lines[existing].Quantity++
		affected = lines[existing].ID
	} else {
		line := Line{
			ID:       r.newID(),
			Item:     item,
			Quantity: 1,
		}
		if customPrice.Valid {
			line.CustomUnitPrice = customPrice
			line.Weight = weight
		}
		lines = slices.Insert(lines, 0, line)
		affected = line.ID
	}

	r.snapshot = newSnapshot(lines, affected)

	if wasEmpty && !r.revealFired {
		r.revealFired = true
		r.revealPending = true
	}
	return r.Snapshot()
}

// Remove takes one unit off the line with id. Plain lines with more than one
// unit are decremented; anything else is dropped. Unknown ids leave the lines
// untouched. The recently-added marker is always cleared.
func (r *Reducer) Remove(id string) Snapshot {
	lines := slices.Clone(r.snapshot.Lines)

	if i := indexByID(lines, id); i >= 0 {
		if lines[i].Quantity > 1 && !lines[i].Weighed() {
			lines[i].Quantity--
		} else {
			lines = slices.Delete(lines, i, i+1)
		}
	}

	r.snapshot = newSnapshot(lines, "")
	return r.Snapshot()
}

// Clear empties the cart. The auto reveal does not re-arm.
func (r *Reducer) Clear() Snapshot {
	r.snapshot = Snapshot{}
	return r.Snapshot()
}

// ClearRecentlyAdded drops the recently-added marker once the host has
// finished highlighting it.
func (r *Reducer) ClearRecentlyAdded() Snapshot {
	snap := r.snapshot.Clone()
	snap.RecentlyAddedID = ""
	r.snapshot = snap
	return r.Snapshot()
}

// TakeReveal reports, exactly once per reducer, that the first add moved the
// cart from empty to non-empty.
func (r *Reducer) TakeReveal() bool {
	if !r.revealPending {
		return false
	}
	r.revealPending = false
	return true
}

func indexByID(lines []Line, id string) int {
	return slices.IndexFunc(lines, func(l Line) bool { return l.ID == id })
}
