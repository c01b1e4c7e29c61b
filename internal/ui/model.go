package ui

import (
	"context"
	"errors"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/rs/zerolog"

	"github.com/five82/smartcart/internal/cart"
	"github.com/five82/smartcart/internal/catalog"
	"github.com/five82/smartcart/internal/prefs"
	"github.com/five82/smartcart/internal/scale"
	"github.com/five82/smartcart/internal/sound"
	"github.com/five82/smartcart/internal/state"
)

// screen is the active page.
type screen int

const (
	screenHome screen = iota
	screenProduce
	screenWeigh
	screenGuide
	screenCheckout
)

// Model is the root Bubble Tea model.
type Model struct {
	ctx    context.Context
	store  *state.Store
	picker *catalog.Picker
	scale  *scale.Scale
	notify sound.Notifier
	log    zerolog.Logger

	prefs       prefs.Prefs
	prefsPath   string
	settleDelay time.Duration

	keys       KeyMap
	searchKeys KeyMap
	help       help.Model
	theme      Theme
	width      int
	height     int

	screen   screen
	cartOpen bool
	snapshot cart.Snapshot

	general    []catalog.Item
	cursor     int
	cartCursor int

	search        textinput.Model
	results       []catalog.Item
	resultCursor  int
	session       *scale.Session
	spinner       spinner.Model
	scaleErrorMsg string

	guide guide
}

// NewModel builds the root model from opts.
func NewModel(opts Options) Model {
	opts = opts.withDefaults()

	search := textinput.New()
	search.Placeholder = "Search produce by name or barcode"
	search.Prompt = "/ "
	search.CharLimit = 40

	m := Model{
		ctx:         opts.Context,
		store:       opts.Store,
		picker:      opts.Picker,
		scale:       opts.Scale,
		notify:      opts.Notifier,
		log:         opts.Logger.With().Str("component", "ui").Logger(),
		prefs:       opts.Prefs,
		prefsPath:   opts.PrefsPath,
		settleDelay: opts.SettleDelay,
		keys:        DefaultKeyMap(),
		searchKeys:  SearchKeyMap(),
		help:        help.New(),
		theme:       GetTheme(opts.Prefs.Theme),
		width:       defaultWidth,
		height:      defaultHeight,
		snapshot:    opts.Store.Snapshot(),
		general:     catalog.General(),
		search:      search,
		results:     catalog.Produce(),
		spinner:     spinner.New(spinner.WithSpinner(spinner.Dot)),
		guide:       newGuide(),
	}
	if !opts.Prefs.SeenInstructions {
		m.screen = screenGuide
	}
	return m
}

// Init starts the walkthrough when it opens on launch.
func (m Model) Init() tea.Cmd {
	if m.screen == screenGuide {
		return m.guide.start()
	}
	return nil
}

// Update handles all messages.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)

	case msgHighlightDone:
		if msg.LineID != "" && m.snapshot.RecentlyAddedID == msg.LineID {
			m.snapshot = m.store.ClearRecentlyAdded()
		}
		return m, nil

	case msgSettled:
		if m.session != nil && msg.Reading == m.session.Readings && !m.session.Settled && m.session.Weight.IsPositive() {
			m.session.Settle()
			m.log.Debug().
				Str("barcode", m.session.Item.Barcode).
				Str("weight_lb", m.session.Weight.String()).
				Str("price", m.session.Price.StringFixed(2)).
				Msg("scale settled")
		}
		return m, nil

	case spinner.TickMsg:
		if m.session == nil || m.session.Settled || m.session.Weight.IsZero() {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case msgGuideTick:
		if m.screen != screenGuide {
			return m, nil
		}
		return m, m.guide.tick(msg)
	}

	if m.screen == screenProduce {
		var cmd tea.Cmd
		m.search, cmd = m.search.Update(msg)
		return m, cmd
	}
	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.Type == tea.KeyCtrlC {
		return m, tea.Quit
	}

	switch m.screen {
	case screenProduce:
		return m.handleProduceKey(msg)
	case screenWeigh:
		return m.handleWeighKey(msg)
	case screenGuide:
		return m.handleGuideKey(msg)
	case screenCheckout:
		if key.Matches(msg, m.keys.Back) {
			m.screen = screenHome
		}
		if key.Matches(msg, m.keys.Quit) {
			return m, tea.Quit
		}
		return m, nil
	default:
		return m.handleHomeKey(msg)
	}
}

func (m Model) handleHomeKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit

	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll

	case key.Matches(msg, m.keys.Up):
		if m.cartOpen {
			m.cartCursor = clampIndex(m.cartCursor-1, len(m.snapshot.Lines))
		} else {
			m.cursor = clampIndex(m.cursor-1, len(m.general))
		}

	case key.Matches(msg, m.keys.Down):
		if m.cartOpen {
			m.cartCursor = clampIndex(m.cartCursor+1, len(m.snapshot.Lines))
		} else {
			m.cursor = clampIndex(m.cursor+1, len(m.general))
		}

	case key.Matches(msg, m.keys.Add):
		if m.cartOpen || len(m.general) == 0 {
			return m, nil
		}
		return m.addItem(m.general[m.cursor])

	case key.Matches(msg, m.keys.Shortcut):
		item, err := catalog.ForKey(msg.String())
		if err != nil {
			m.log.Debug().Err(err).Msg("shortcut ignored")
			return m, nil
		}
		return m.addItem(item)

	case key.Matches(msg, m.keys.Random):
		return m.addItem(m.picker.RandomGeneral())

	case key.Matches(msg, m.keys.Cart):
		m.cartOpen = !m.cartOpen
		m.cartCursor = clampIndex(m.cartCursor, len(m.snapshot.Lines))

	case key.Matches(msg, m.keys.Remove):
		if !m.cartOpen || m.snapshot.IsEmpty() {
			return m, nil
		}
		id := m.snapshot.Lines[m.cartCursor].ID
		m.snapshot = m.store.Remove(id)
		m.cartCursor = clampIndex(m.cartCursor, len(m.snapshot.Lines))

	case key.Matches(msg, m.keys.Clear):
		if !m.cartOpen {
			return m, nil
		}
		m.snapshot = m.store.Clear()
		m.cartCursor = 0

	case key.Matches(msg, m.keys.Produce):
		return m.openProduce()

	case key.Matches(msg, m.keys.Guide):
		m.screen = screenGuide
		return m, m.guide.start()

	case key.Matches(msg, m.keys.Checkout):
		m.screen = screenCheckout

	case key.Matches(msg, m.keys.Theme):
		m.prefs.Theme = NextTheme(m.theme.Name)
		m.theme = GetTheme(m.prefs.Theme)
		m.savePrefs()
	}
	return m, nil
}

func (m Model) openProduce() (tea.Model, tea.Cmd) {
	m.screen = screenProduce
	m.search.SetValue("")
	m.results = catalog.Produce()
	m.resultCursor = 0
	return m, m.search.Focus()
}

func (m Model) handleProduceKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.searchKeys.Back):
		m.search.Blur()
		m.screen = screenHome
		return m, nil

	case key.Matches(msg, m.searchKeys.Up):
		m.resultCursor = clampIndex(m.resultCursor-1, len(m.results))
		return m, nil

	case key.Matches(msg, m.searchKeys.Down):
		m.resultCursor = clampIndex(m.resultCursor+1, len(m.results))
		return m, nil

	case key.Matches(msg, m.searchKeys.Add):
		if len(m.results) == 0 {
			return m, nil
		}
		m.session = scale.NewSession(m.results[m.resultCursor])
		m.scaleErrorMsg = ""
		m.search.Blur()
		m.screen = screenWeigh
		return m, nil
	}

	var cmd tea.Cmd
	before := m.search.Value()
	m.search, cmd = m.search.Update(msg)
	if m.search.Value() != before {
		m.results = catalog.Search(catalog.Produce(), m.search.Value())
		m.resultCursor = 0
	}
	return m, cmd
}

func (m Model) handleWeighKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.scaleErrorMsg != "" {
		// the modal only accepts acknowledgement
		if key.Matches(msg, m.keys.Confirm) || key.Matches(msg, m.keys.Back) {
			m.session.Acknowledge()
			m.scaleErrorMsg = ""
		}
		return m, nil
	}

	switch {
	case key.Matches(msg, m.keys.Back):
		m.session = nil
		return m.backToProduce()

	case key.Matches(msg, m.keys.Weigh):
		w := m.session.Weigh(m.scale)
		m.log.Debug().Str("barcode", m.session.Item.Barcode).Str("weight_lb", w.String()).Msg("item weighed")
		return m, tea.Batch(settleCmd(m.settleDelay, m.session.Readings), m.spinner.Tick)

	case key.Matches(msg, m.keys.Error):
		err := m.session.Fail()
		if errors.Is(err, scale.ErrNotConverged) {
			m.scaleErrorMsg = "Unfortunately, the weight did not properly converge. Please weigh again."
			m.log.Warn().Err(err).Str("barcode", m.session.Item.Barcode).Msg("scale error")
			if perr := m.notify.Play(m.ctx, sound.CueError); perr != nil {
				m.log.Warn().Err(perr).Msg("error cue failed")
			}
		}
		return m, nil

	case key.Matches(msg, m.keys.Confirm):
		price, weight, err := m.session.Confirm()
		if err != nil {
			return m, nil
		}
		up := m.store.AddWeighed(m.ctx, m.session.Item, price, weight)
		m.session = nil
		m.screen = screenHome
		return m.applyAdd(up)

	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit
	}
	return m, nil
}

func (m Model) backToProduce() (tea.Model, tea.Cmd) {
	m.screen = screenProduce
	return m, m.search.Focus()
}

func (m Model) handleGuideKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Back), key.Matches(msg, m.keys.Guide):
		m.guide.playing = false
		m.screen = screenHome
		if !m.prefs.SeenInstructions {
			m.prefs.SeenInstructions = true
			m.savePrefs()
		}
	case key.Matches(msg, m.keys.Pause):
		return m, m.guide.toggle()
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit
	}
	return m, nil
}

func (m Model) addItem(item catalog.Item) (tea.Model, tea.Cmd) {
	return m.applyAdd(m.store.Add(m.ctx, item))
}

func (m Model) applyAdd(up state.Update) (tea.Model, tea.Cmd) {
	m.snapshot = up.Snapshot
	if up.Reveal {
		m.cartOpen = true
	}
	m.cartCursor = 0
	if i := lineIndex(m.snapshot, m.snapshot.RecentlyAddedID); i >= 0 {
		m.cartCursor = i
	}
	return m, highlightCmd(m.snapshot.RecentlyAddedID)
}

func (m *Model) savePrefs() {
	if err := prefs.Save(m.prefsPath, m.prefs); err != nil {
		m.log.Warn().Err(err).Msg("save prefs failed")
	}
}

func lineIndex(s cart.Snapshot, id string) int {
	for i, l := range s.Lines {
		if l.ID == id {
			return i
		}
	}
	return -1
}

func clampIndex(i, n int) int {
	if n <= 0 || i < 0 {
		return 0
	}
	if i >= n {
		return n - 1
	}
	return i
}
