// Package app provides the orchestration layer for the SmartCart application.
//
// # Overview
//
// This package wires together configuration, logging, the cart store, the
// simulated scale, sound cues and the UI. It is the composition root where
// every long-lived dependency is created and connected.
//
// # Startup
//
//  1. Load settings from ~/.config/smartcart/config.toml (defaults when missing)
//  2. Open the log file and build the zerolog logger
//  3. Seed the random picker and the scale from --seed or the clock
//  4. Create the sound player, or a silent notifier when sound is off
//  5. Create the state.Store around a fresh cart.Reducer
//  6. Load UI preferences and start the TUI, blocking until exit
//
// # Data Flow
//
//	┌──────────────┐
//	│   Run()      │
//	└──────┬───────┘
//	       │
//	       ├─────> config.Load()      Read settings
//	       ├─────> newRuntime()       Logger, picker, scale, sound, store
//	       ├─────> prefs.Load()       Theme and first-launch flag
//	       └─────> ui.Run()           Start TUI (blocks)
//
//	Key press ─> ui.Model ─> state.Store ─> cart.Reducer
//	                              └─> sound cue (async)
//
// # Error Handling
//
// Fatal errors (returned from Run):
//   - Config file unreadable or invalid TOML
//   - Log file cannot be created
//   - Scale range rejected
//
// Recoverable errors (logged, the session continues):
//   - Preferences unreadable or not saved
//   - Sound playback failures
//
// # Catalog Listing
//
// PrintCatalog renders the general or produce catalog as a table for the
// "smartcart catalog" command.
//
// # Shutdown
//
// The runtime closes the sound player before the log file so late cues can
// still log.
package app
