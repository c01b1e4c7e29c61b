package ui

import (
	"context"
	"fmt"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/rs/zerolog"

	"github.com/five82/smartcart/internal/catalog"
	"github.com/five82/smartcart/internal/prefs"
	"github.com/five82/smartcart/internal/scale"
	"github.com/five82/smartcart/internal/sound"
	"github.com/five82/smartcart/internal/state"
)

const (
	defaultWidth  = 100
	defaultHeight = 30
)

// Options configure the UI runtime.
type Options struct {
	Context     context.Context
	Store       *state.Store
	Picker      *catalog.Picker
	Scale       *scale.Scale
	Notifier    sound.Notifier // error cue; add cues come from the store
	Logger      zerolog.Logger
	Prefs       prefs.Prefs
	PrefsPath   string // empty uses default ~/.config/smartcart/prefs.toml
	SettleDelay time.Duration
}

func (o Options) withDefaults() Options {
	if o.Context == nil {
		o.Context = context.Background()
	}
	if o.Store == nil {
		o.Store = state.NewStore(nil, nil, o.Logger)
	}
	if o.Picker == nil {
		o.Picker = catalog.NewPicker(nil)
	}
	if o.Scale == nil {
		// the default range is always valid
		o.Scale, _ = scale.New(scale.DefaultMin, scale.DefaultMax, nil)
	}
	if o.Notifier == nil {
		o.Notifier = sound.Nop{}
	}
	if o.Prefs.Theme == "" {
		o.Prefs.Theme = ThemeNames()[0]
	}
	return o
}

// Run starts the TUI and blocks until the user quits or ctx is cancelled.
func Run(ctx context.Context, opts Options) error {
	if opts.Store == nil {
		return fmt.Errorf("ui requires a cart store")
	}
	if opts.Context == nil {
		opts.Context = ctx
	}

	p := tea.NewProgram(NewModel(opts), tea.WithAltScreen(), tea.WithContext(ctx))
	if _, err := p.Run(); err != nil {
		if ctx.Err() != nil {
			return nil
		}
		return fmt.Errorf("TUI error: %w", err)
	}
	return nil
}
