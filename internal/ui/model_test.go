package ui

import (
	"context"
	"math/rand/v2"
	"path/filepath"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"

	"github.com/five82/smartcart/internal/catalog"
	"github.com/five82/smartcart/internal/prefs"
	"github.com/five82/smartcart/internal/scale"
	"github.com/five82/smartcart/internal/sound"
	"github.com/five82/smartcart/internal/state"
)

type harness struct {
	model     Model
	cues      *sound.Recorder
	prefsPath string
}

func newHarness(t *testing.T, p prefs.Prefs) *harness {
	t.Helper()
	rec := &sound.Recorder{}
	sc, err := scale.New(scale.DefaultMin, scale.DefaultMax, rand.New(rand.NewPCG(3, 4)))
	if err != nil {
		t.Fatalf("scale.New: %v", err)
	}
	path := filepath.Join(t.TempDir(), "prefs.toml")
	m := NewModel(Options{
		Context:   context.Background(),
		Store:     state.NewStore(nil, rec, zerolog.Nop()),
		Picker:    catalog.NewPicker(rand.New(rand.NewPCG(1, 2))),
		Scale:     sc,
		Notifier:  rec,
		Logger:    zerolog.Nop(),
		Prefs:     p,
		PrefsPath: path,
	})
	return &harness{model: m, cues: rec, prefsPath: path}
}

func seenPrefs() prefs.Prefs {
	return prefs.Prefs{Theme: "Dracula", SeenInstructions: true}
}

func keyMsg(k string) tea.KeyMsg {
	switch k {
	case "enter":
		return tea.KeyMsg{Type: tea.KeyEnter}
	case "esc":
		return tea.KeyMsg{Type: tea.KeyEsc}
	case "up":
		return tea.KeyMsg{Type: tea.KeyUp}
	case "down":
		return tea.KeyMsg{Type: tea.KeyDown}
	case " ":
		return tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}}
	case "ctrl+c":
		return tea.KeyMsg{Type: tea.KeyCtrlC}
	default:
		return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(k)}
	}
}

// send feeds msg to the model and returns the command it produced.
func (h *harness) send(msg tea.Msg) tea.Cmd {
	next, cmd := h.model.Update(msg)
	h.model = next.(Model)
	return cmd
}

func (h *harness) press(keys ...string) tea.Cmd {
	var cmd tea.Cmd
	for _, k := range keys {
		cmd = h.send(keyMsg(k))
	}
	return cmd
}

func (h *harness) typeText(s string) {
	for _, r := range s {
		h.press(string(r))
	}
}

func TestModel_ShortcutAddsAndRevealsCartOnce(t *testing.T) {
	h := newHarness(t, seenPrefs())

	if cmd := h.press("1"); cmd == nil {
		t.Fatalf("add returned nil cmd, want highlight timer")
	}
	snap := h.model.snapshot
	if len(snap.Lines) != 1 || snap.Lines[0].Item.Title != "Fresh Sushi Roll" {
		t.Fatalf("lines = %#v, want one sushi line", snap.Lines)
	}
	if !h.model.cartOpen {
		t.Fatalf("cartOpen = false after first add, want auto reveal")
	}

	h.press("c")
	if h.model.cartOpen {
		t.Fatalf("cartOpen = true after toggle, want false")
	}
	h.press("2")
	if h.model.cartOpen {
		t.Fatalf("cart reopened on second add; reveal must fire once")
	}

	if got := len(h.cues.Cues()); got != 2 {
		t.Fatalf("cues = %d, want 2", got)
	}
}

func TestModel_EnterAddsHighlightedCatalogItem(t *testing.T) {
	h := newHarness(t, seenPrefs())
	h.model.cartOpen = false

	h.press("down", "down", "enter")
	snap := h.model.snapshot
	if len(snap.Lines) != 1 || snap.Lines[0].Item.Barcode != catalog.General()[2].Barcode {
		t.Fatalf("lines = %#v, want catalog item 2", snap.Lines)
	}
}

func TestModel_RandomAddStaysInGeneralCatalog(t *testing.T) {
	h := newHarness(t, seenPrefs())
	h.press("a")
	snap := h.model.snapshot
	if len(snap.Lines) != 1 || !strings.HasPrefix(snap.Lines[0].Item.ImagePath, "images/catalog/") {
		t.Fatalf("lines = %#v, want one general catalog item", snap.Lines)
	}
}

func TestModel_HighlightDoneClearsMarker(t *testing.T) {
	h := newHarness(t, seenPrefs())
	h.press("3")
	id := h.model.snapshot.RecentlyAddedID
	if id == "" {
		t.Fatalf("RecentlyAddedID empty after add")
	}

	h.send(msgHighlightDone{LineID: "other"})
	if h.model.snapshot.RecentlyAddedID != id {
		t.Fatalf("stale highlight cleared the marker")
	}

	h.send(msgHighlightDone{LineID: id})
	if h.model.snapshot.RecentlyAddedID != "" {
		t.Fatalf("RecentlyAddedID = %q, want cleared", h.model.snapshot.RecentlyAddedID)
	}
	if h.model.snapshot.ItemCount != 1 {
		t.Fatalf("ItemCount = %d, want 1", h.model.snapshot.ItemCount)
	}
}

func TestModel_RemoveAndClearFromExpandedCart(t *testing.T) {
	h := newHarness(t, seenPrefs())
	h.press("2", "2", "4")
	if !h.model.cartOpen {
		t.Fatalf("cart not open after first add")
	}

	// newest line first: water, then cake x2
	h.press("down", "x")
	snap := h.model.snapshot
	if len(snap.Lines) != 2 || snap.Lines[1].Quantity != 1 {
		t.Fatalf("lines = %#v, want cake decremented to 1", snap.Lines)
	}

	h.press("X")
	if !h.model.snapshot.IsEmpty() {
		t.Fatalf("cart not empty after clear")
	}

	// remove on an empty cart is a no-op
	h.press("x")
	if !h.model.snapshot.IsEmpty() {
		t.Fatalf("remove on empty cart changed it")
	}
}

func TestModel_RemoveIgnoredWhenCartCollapsed(t *testing.T) {
	h := newHarness(t, seenPrefs())
	h.press("1", "c", "x")
	if h.model.snapshot.ItemCount != 1 {
		t.Fatalf("ItemCount = %d, want 1", h.model.snapshot.ItemCount)
	}
}

func TestModel_ProduceSearchWeighAndConfirm(t *testing.T) {
	h := newHarness(t, seenPrefs())

	h.press("p")
	if h.model.screen != screenProduce {
		t.Fatalf("screen = %v, want produce", h.model.screen)
	}
	h.typeText("banana")
	if len(h.model.results) != 1 || h.model.results[0].Title != "Yellow Bananas" {
		t.Fatalf("results = %#v, want bananas only", h.model.results)
	}

	h.press("enter")
	if h.model.screen != screenWeigh || h.model.session == nil {
		t.Fatalf("screen = %v, want weighing sheet", h.model.screen)
	}

	// confirm before weighing does nothing
	h.press("enter")
	if h.model.screen != screenWeigh {
		t.Fatalf("confirm without weight left the sheet")
	}

	if cmd := h.press("w"); cmd == nil {
		t.Fatalf("weigh returned nil cmd, want settle timer")
	}
	weight := h.model.session.Weight
	h.send(msgSettled{Reading: h.model.session.Readings})
	if !h.model.session.CanConfirm() {
		t.Fatalf("session not confirmable after settle")
	}
	price := h.model.session.Price

	h.press("enter")
	if h.model.screen != screenHome {
		t.Fatalf("screen = %v, want home after confirm", h.model.screen)
	}
	snap := h.model.snapshot
	if len(snap.Lines) != 1 || !snap.Lines[0].Weighed() {
		t.Fatalf("lines = %#v, want one weighed line", snap.Lines)
	}
	l := snap.Lines[0]
	if !l.Weight.Decimal.Equal(weight) || !l.CustomUnitPrice.Decimal.Equal(price) {
		t.Fatalf("line = %s @ %s, want %s @ %s", l.Weight.Decimal, l.CustomUnitPrice.Decimal, weight, price)
	}
	if !price.Equal(weight.Mul(decimal.RequireFromString("0.99")).Round(2)) {
		t.Fatalf("price = %s, want weight x 0.99", price)
	}
	if !h.model.cartOpen {
		t.Fatalf("cart should auto reveal on first weighed add")
	}
}

func TestModel_StaleSettleIgnored(t *testing.T) {
	h := newHarness(t, seenPrefs())
	h.press("p", "enter", "w")
	first := h.model.session.Readings
	h.press("w")

	h.send(msgSettled{Reading: first})
	if h.model.session.Settled {
		t.Fatalf("stale settle message published a price")
	}
	h.send(msgSettled{Reading: h.model.session.Readings})
	if !h.model.session.Settled {
		t.Fatalf("current settle message ignored")
	}
}

func TestModel_ScaleErrorModal(t *testing.T) {
	h := newHarness(t, seenPrefs())
	h.press("p", "enter")

	// no weight yet: error is refused
	h.press("e")
	if h.model.scaleErrorMsg != "" {
		t.Fatalf("error modal shown without a weight")
	}

	h.press("w")
	h.send(msgSettled{Reading: h.model.session.Readings})
	h.press("e")
	if h.model.scaleErrorMsg == "" {
		t.Fatalf("error modal not shown")
	}
	cues := h.cues.Cues()
	if len(cues) != 1 || cues[0] != sound.CueError {
		t.Fatalf("cues = %v, want [error]", cues)
	}
	if !strings.Contains(h.model.View(), "Scale error") {
		t.Fatalf("view does not show the scale error")
	}

	// the modal swallows other keys
	h.press("w")
	if !h.model.session.Failed {
		t.Fatalf("weigh key reached the sheet while the modal was open")
	}

	h.press("enter")
	if h.model.scaleErrorMsg != "" || h.model.screen != screenWeigh {
		t.Fatalf("acknowledge did not close the modal")
	}
	if !h.model.session.Weight.IsZero() || !h.model.session.Price.IsZero() {
		t.Fatalf("acknowledge kept weight %s price %s", h.model.session.Weight, h.model.session.Price)
	}
	if !h.model.snapshot.IsEmpty() {
		t.Fatalf("scale error changed the cart")
	}
}

func TestModel_EscNavigation(t *testing.T) {
	h := newHarness(t, seenPrefs())
	h.press("p", "enter", "esc")
	if h.model.screen != screenProduce || h.model.session != nil {
		t.Fatalf("esc from weigh should return to produce search")
	}
	h.press("esc")
	if h.model.screen != screenHome {
		t.Fatalf("esc from produce should return home")
	}
	h.press("o")
	if h.model.screen != screenCheckout {
		t.Fatalf("o should open checkout")
	}
	h.press("esc")
	if h.model.screen != screenHome {
		t.Fatalf("esc from checkout should return home")
	}
}

func TestModel_QuitKeys(t *testing.T) {
	h := newHarness(t, seenPrefs())
	if cmd := h.press("q"); cmd == nil {
		t.Fatalf("q returned nil cmd, want quit")
	} else if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Fatalf("q did not quit")
	}

	h.press("p", "q")
	if h.model.screen != screenProduce {
		t.Fatalf("q in the search box left the screen")
	}
	if h.model.search.Value() != "q" {
		t.Fatalf("search = %q, want q", h.model.search.Value())
	}
}

func TestModel_GuideOnFirstLaunch(t *testing.T) {
	h := newHarness(t, prefs.Prefs{Theme: "Dracula"})
	if h.model.screen != screenGuide {
		t.Fatalf("screen = %v, want guide on first launch", h.model.screen)
	}
	if h.model.Init() == nil {
		t.Fatalf("Init returned nil cmd, want guide ticks")
	}

	h.press("esc")
	if h.model.screen != screenHome {
		t.Fatalf("esc did not close the guide")
	}
	saved, err := prefs.Load(h.prefsPath)
	if err != nil {
		t.Fatalf("prefs.Load: %v", err)
	}
	if !saved.SeenInstructions {
		t.Fatalf("SeenInstructions not persisted")
	}
}

func TestModel_ThemeCyclePersists(t *testing.T) {
	h := newHarness(t, seenPrefs())
	h.press("t")
	if h.model.theme.Name != "Slate" {
		t.Fatalf("theme = %q, want Slate", h.model.theme.Name)
	}
	saved, err := prefs.Load(h.prefsPath)
	if err != nil {
		t.Fatalf("prefs.Load: %v", err)
	}
	if saved.Theme != "Slate" {
		t.Fatalf("saved theme = %q, want Slate", saved.Theme)
	}
}

func TestModel_ViewRendersEachScreen(t *testing.T) {
	h := newHarness(t, seenPrefs())
	h.send(tea.WindowSizeMsg{Width: 120, Height: 40})

	if v := h.model.View(); !strings.Contains(v, "smartcart") || !strings.Contains(v, "Your cart is empty") {
		t.Fatalf("home view missing header or empty cart text")
	}

	h.press("1")
	if v := h.model.View(); !strings.Contains(v, "Fresh Sushi Roll") || !strings.Contains(v, "$9.99") {
		t.Fatalf("home view missing added line")
	}

	h.press("?")
	if v := h.model.View(); !strings.Contains(v, "Add Fresh Sushi Roll") {
		t.Fatalf("full help missing shortcut legend")
	}

	h.press("p")
	if v := h.model.View(); !strings.Contains(v, "Produce") {
		t.Fatalf("produce view missing title")
	}

	h.press("enter")
	if v := h.model.View(); !strings.Contains(v, "per lb") {
		t.Fatalf("weigh view missing per-lb price")
	}

	h.press("esc", "esc", "i")
	if v := h.model.View(); !strings.Contains(v, "How to add non-barcode items") {
		t.Fatalf("guide view missing title")
	}
}
