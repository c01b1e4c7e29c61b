package app

import (
	"context"
	"errors"
	"fmt"
	"math/rand/v2"
	"os"
	"time"

	"github.com/rs/zerolog"

	"github.com/five82/smartcart/internal/cart"
	"github.com/five82/smartcart/internal/catalog"
	"github.com/five82/smartcart/internal/config"
	"github.com/five82/smartcart/internal/logging"
	"github.com/five82/smartcart/internal/scale"
	"github.com/five82/smartcart/internal/sound"
	"github.com/five82/smartcart/internal/state"
	"github.com/five82/smartcart/internal/ui"
)

// runtime holds the long-lived pieces shared by the UI for one session.
type runtime struct {
	log     zerolog.Logger
	store   *state.Store
	picker  *catalog.Picker
	scale   *scale.Scale
	notify  sound.Notifier
	settle  time.Duration
	seed    uint64
	soundOn bool

	closers []func() error
}

// newRuntime opens the log file and builds the store, scale and sound player
// described by cfg. Close releases whatever it opened.
func newRuntime(cfg config.Config, opts Options) (*runtime, error) {
	rt := &runtime{
		settle:  cfg.SettleDelay,
		seed:    opts.Seed,
		soundOn: cfg.Sound && !opts.NoSound,
	}

	logFile, err := logging.OpenFile(cfg.LogPath())
	if err != nil {
		return nil, err
	}
	rt.closers = append(rt.closers, logFile.Close)

	level := logging.ParseLevel(cfg.LogLevel)
	if opts.Debug {
		level = zerolog.DebugLevel
	}
	rt.log = logging.New(logging.Options{Level: level, Output: logFile})

	if rt.seed == 0 {
		rt.seed = uint64(time.Now().UnixNano())
	}
	// the picker and scale draw from separate streams of the same seed
	rt.picker = catalog.NewPicker(rand.New(rand.NewPCG(rt.seed, 1)))
	rt.scale, err = scale.New(cfg.MinWeight, cfg.MaxWeight, rand.New(rand.NewPCG(rt.seed, 2)))
	if err != nil {
		rt.Close()
		return nil, fmt.Errorf("init scale: %w", err)
	}

	rt.notify = sound.Nop{}
	if rt.soundOn {
		player := sound.NewPlayer(os.Stderr, rt.log)
		rt.closers = append(rt.closers, player.Close)
		rt.notify = sound.Async(player, rt.log)
	}

	rt.store = state.NewStore(cart.NewReducer(), rt.notify, rt.log)
	return rt, nil
}

func (rt *runtime) uiOptions(ctx context.Context) ui.Options {
	return ui.Options{
		Context:     ctx,
		Store:       rt.store,
		Picker:      rt.picker,
		Scale:       rt.scale,
		Notifier:    rt.notify,
		Logger:      rt.log,
		SettleDelay: rt.settle,
	}
}

// Close releases resources in reverse order of acquisition.
func (rt *runtime) Close() error {
	var errs []error
	for i := len(rt.closers) - 1; i >= 0; i-- {
		if err := rt.closers[i](); err != nil {
			errs = append(errs, err)
		}
	}
	rt.closers = nil
	return errors.Join(errs...)
}
