package catalog

import (
	"math/rand/v2"
	"slices"
	"strings"

	"github.com/shopspring/decimal"
)

// Item is an immutable catalog entry. UnitPrice is per unit for packaged
// goods and per pound for produce.
type Item struct {
	ImagePath   string
	Title       string
	UnitPrice   decimal.Decimal
	WeightLabel string // display only, never used in pricing
	Barcode     string
}

func item(imagePath, title, price, weightLabel, barcode string) Item {
	return Item{
		ImagePath:   imagePath,
		Title:       title,
		UnitPrice:   decimal.RequireFromString(price),
		WeightLabel: weightLabel,
		Barcode:     barcode,
	}
}

// General returns the packaged-goods catalog in display order.
func General() []Item {
	return slices.Clone(generalItems)
}

// Produce returns the weighed produce catalog in display order.
func Produce() []Item {
	return slices.Clone(produceItems)
}

// Lookup finds an item by barcode across both catalogs.
func Lookup(barcode string) (Item, bool) {
	barcode = strings.TrimSpace(barcode)
	for _, list := range [][]Item{generalItems, produceItems} {
		for _, it := range list {
			if it.Barcode == barcode {
				return it, true
			}
		}
	}
	return Item{}, false
}

// Search filters items whose title or barcode contains query, ignoring case.
// An empty query returns every item.
func Search(items []Item, query string) []Item {
	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		return slices.Clone(items)
	}
	var out []Item
	for _, it := range items {
		if strings.Contains(strings.ToLower(it.Title), q) || strings.Contains(strings.ToLower(it.Barcode), q) {
			out = append(out, it)
		}
	}
	return out
}

// Picker selects random items. It is not safe for concurrent use; the UI
// event loop is its only caller.
type Picker struct {
	rng *rand.Rand
}

// NewPicker returns a Picker drawing from rng. A nil rng uses a randomly
// seeded source.
func NewPicker(rng *rand.Rand) *Picker {
	if rng == nil {
		rng = rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	}
	return &Picker{rng: rng}
}

// RandomGeneral returns a random packaged-goods item.
func (p *Picker) RandomGeneral() Item {
	return generalItems[p.rng.IntN(len(generalItems))]
}

// RandomProduce returns a random produce item.
func (p *Picker) RandomProduce() Item {
	return produceItems[p.rng.IntN(len(produceItems))]
}

// RandomAny flips a coin between the two catalogs.
func (p *Picker) RandomAny() Item {
	if p.rng.IntN(2) == 0 {
		return p.RandomGeneral()
	}
	return p.RandomProduce()
}
