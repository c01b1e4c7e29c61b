package app

import (
	"context"
	"fmt"

	"github.com/five82/smartcart/internal/config"
	"github.com/five82/smartcart/internal/prefs"
	"github.com/five82/smartcart/internal/ui"
)

// Options configure the SmartCart application.
type Options struct {
	ConfigPath string
	PrefsPath  string // empty uses default ~/.config/smartcart/prefs.toml
	NoSound    bool
	Seed       uint64 // zero seeds from the clock
	Debug      bool
}

// Run boots the SmartCart TUI until the user quits or the context is cancelled.
func Run(ctx context.Context, opts Options) error {
	cfg, err := config.Load(opts.ConfigPath)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	rt, err := newRuntime(cfg, opts)
	if err != nil {
		return err
	}
	defer rt.Close()

	userPrefs, err := prefs.Load(opts.PrefsPath)
	if err != nil {
		rt.log.Warn().Err(err).Msg("prefs unreadable, using defaults")
	}
	rt.log.Info().
		Str("config", opts.ConfigPath).
		Bool("sound", rt.soundOn).
		Uint64("seed", rt.seed).
		Msg("smartcart starting")

	uiOpts := rt.uiOptions(ctx)
	uiOpts.Prefs = userPrefs
	uiOpts.PrefsPath = opts.PrefsPath

	err = ui.Run(ctx, uiOpts)
	snap := rt.store.Snapshot()
	rt.log.Info().
		Int("items", snap.ItemCount).
		Str("subtotal", snap.Subtotal.StringFixed(2)).
		Msg("smartcart exiting")
	return err
}
