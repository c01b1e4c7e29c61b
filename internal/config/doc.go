// Package config handles loading and parsing the SmartCart configuration file.
//
// # Configuration Discovery
//
// The Load function follows this resolution order:
//
//  1. If a path is explicitly provided, use it
//  2. Otherwise, use ~/.config/smartcart/config.toml (default)
//  3. If the config file doesn't exist, fall back to hardcoded defaults
//  4. If the file exists but fields are missing/empty, use defaults
//
// # Default Values
//
//   - Config file: ~/.config/smartcart/config.toml
//   - Log directory: ~/.local/share/smartcart/logs
//   - Log file: <log_dir>/smartcart.log
//   - Log level: info
//   - Sound: on
//   - Simulated weight range: 1.0 to 10.0 lb
//   - Settle delay: 500ms (time before a weighed price is shown)
//
// # TOML Format
//
//	log_dir = "~/.local/share/smartcart/logs"
//	log_level = "debug"
//	sound = false
//	min_weight = 1.0
//	max_weight = 10.0
//	settle_delay_ms = 500
//
// Every field is optional. A weight range where min is not positive or max
// is not above min is ignored as a whole. Negative settle delays are ignored.
//
// # Error Handling
//
// Load returns errors for path expansion failures, read errors other than
// os.ErrNotExist, and TOML parse errors. A missing file is not an error.
package config
