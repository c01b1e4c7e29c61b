// Package sound plays the cart's audible cues.
//
// A Player is an owned resource: the app constructs one, hands it to the
// components that need it, and closes it on shutdown. Each Play acquires the
// output for the duration of the cue and releases it afterwards, so cues
// never interleave.
package sound

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
	"sync"
	"time"

	"github.com/rs/zerolog"
)

// Cue identifies a sound.
type Cue int

const (
	CueAdd Cue = iota
	CueError
)

func (c Cue) String() string {
	switch c {
	case CueAdd:
		return "add"
	case CueError:
		return "error"
	default:
		return fmt.Sprintf("cue(%d)", int(c))
	}
}

// ErrClosed is returned by Play after Close.
var ErrClosed = errors.New("sound player closed")

// Notifier is what the rest of the app depends on.
type Notifier interface {
	Play(ctx context.Context, cue Cue) error
}

// Nop discards every cue.
type Nop struct{}

// Play implements Notifier.
func (Nop) Play(context.Context, Cue) error { return nil }

const bell = "\a"

// Player rings the terminal bell: once for an add, twice for an error.
type Player struct {
	mu     sync.Mutex // held for the length of one cue
	out    io.Writer
	gap    time.Duration
	closed bool
	log    zerolog.Logger
}

// NewPlayer returns a Player writing to out.
func NewPlayer(out io.Writer, log zerolog.Logger) *Player {
	return &Player{
		out: out,
		gap: 120 * time.Millisecond,
		log: log.With().Str("component", "sound").Logger(),
	}
}

// Play writes cue to the output. It blocks until the cue has been written
// or ctx is done.
func (p *Player) Play(ctx context.Context, cue Cue) error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.closed {
		return ErrClosed
	}

	rings := 1
	if cue == CueError {
		rings = 2
	}
	for i := 0; i < rings; i++ {
		if i > 0 {
			select {
			case <-ctx.Done():
				return ctx.Err()
			case <-time.After(p.gap):
			}
		}
		if _, err := io.WriteString(p.out, bell); err != nil {
			p.log.Warn().Err(err).Stringer("cue", cue).Msg("sound playback failed")
			return fmt.Errorf("play %s: %w", cue, err)
		}
	}
	p.log.Debug().Stringer("cue", cue).Msg("sound played")
	return nil
}

// Close releases the player. Pending Play calls finish first.
func (p *Player) Close() error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.closed = true
	return nil
}

// Async returns a Notifier that plays cues on a separate goroutine so the
// caller's event loop is never blocked. Errors are logged.
func Async(n Notifier, log zerolog.Logger) Notifier {
	return asyncNotifier{next: n, log: log}
}

type asyncNotifier struct {
	next Notifier
	log  zerolog.Logger
}

func (a asyncNotifier) Play(ctx context.Context, cue Cue) error {
	go func() {
		if err := a.next.Play(ctx, cue); err != nil && !errors.Is(err, ErrClosed) {
			a.log.Warn().Err(err).Stringer("cue", cue).Msg("async cue failed")
		}
	}()
	return nil
}

// Recorder captures cues for tests and previews.
type Recorder struct {
	mu   sync.Mutex
	cues []Cue
}

// Play implements Notifier.
func (r *Recorder) Play(_ context.Context, cue Cue) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.cues = append(r.cues, cue)
	return nil
}

// Cues returns the cues played so far.
func (r *Recorder) Cues() []Cue {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]Cue, len(r.cues))
	copy(out, r.cues)
	return out
}

func (r *Recorder) String() string {
	parts := make([]string, 0, len(r.cues))
	for _, c := range r.Cues() {
		parts = append(parts, c.String())
	}
	return strings.Join(parts, ",")
}
