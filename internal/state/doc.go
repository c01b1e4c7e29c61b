// Package state owns the cart for the running application.
//
// # Overview
//
// The cart reducer in package cart is a plain single-writer value. Store wraps
// one reducer behind a mutex so every command runs to completion before the
// next one starts, and attaches the side effects that belong to the host
// rather than the reducer: the "item added" cue and the command log.
//
// # Architecture
//
//	UI event loop                       Store                      Reducer
//	┌──────────────┐   Add/Remove   ┌──────────────┐  command  ┌──────────────┐
//	│ key / timer  │ ─────────────→ │   mutex      │ ────────→ │ new Snapshot │
//	│ messages     │ ←───────────── │   log, cue   │ ←──────── │              │
//	└──────────────┘    Snapshot    └──────────────┘           └──────────────┘
//
// # Command Semantics
//
//   - Add / AddWeighed: mutate under the lock, read the one-shot reveal flag
//     under the same lock, then play the add cue after unlocking. Exactly one
//     cue is played per add.
//   - Remove / Clear / ClearRecentlyAdded: pure cart transitions, no cue.
//   - Snapshot: copy of the current cart.
//
// # Update
//
// Adds return an Update carrying the new snapshot and the Reveal flag. Reveal
// is true for the first add into an empty cart over the lifetime of the
// reducer and never again, even after Clear. The UI opens the expanded cart
// when it sees it.
//
// # Defensive Copying
//
// Snapshots handed out by Store never share line storage with the reducer,
// so the UI can hold on to one while further commands run.
//
// # Testing Considerations
//
// NewStore(nil, nil, zerolog.Nop()) is a ready store with a fresh reducer and
// no sound. Use sound.Recorder to assert on cues.
package state
