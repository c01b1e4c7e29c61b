package catalog

import (
	"errors"
	"fmt"
)

// ErrUnknownShortcut is returned when a key has no catalog mapping.
var ErrUnknownShortcut = errors.New("no item mapped to key")

// Shortcut binds a number key to a fixed general catalog entry.
type Shortcut struct {
	Key  string
	Item Item
}

// Description is the help text shown in the shortcuts overlay.
func (s Shortcut) Description() string {
	return "Add " + s.Item.Title
}

// indexes into generalItems
var shortcutIndexes = []struct {
	key   string
	index int
}{
	{"1", 10}, // Fresh Sushi Roll
	{"2", 1},  // Birthday Cake
	{"3", 11}, // Charmin
	{"4", 13}, // Poland Spring Water
	{"5", 3},  // Purina ONE
}

// Shortcuts returns the number-key mappings in key order.
func Shortcuts() []Shortcut {
	out := make([]Shortcut, 0, len(shortcutIndexes))
	for _, s := range shortcutIndexes {
		out = append(out, Shortcut{Key: s.key, Item: generalItems[s.index]})
	}
	return out
}

// ForKey returns the item bound to key.
func ForKey(key string) (Item, error) {
	for _, s := range shortcutIndexes {
		if s.key == key {
			return generalItems[s.index], nil
		}
	}
	return Item{}, fmt.Errorf("%w: %q", ErrUnknownShortcut, key)
}
