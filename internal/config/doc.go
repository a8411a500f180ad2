// Package config loads the Freesound client configuration.
//
// # Configuration Discovery
//
// The Load function follows this resolution order:
//
//  1. If a path is explicitly provided, use it
//  2. Otherwise, use ~/.config/freesound/config.toml (default)
//  3. If the config file doesn't exist, fall back to defaults
//  4. FREESOUND_API_KEY and FREESOUND_BASE_URL override file values
//
// # Default Values
//
//   - Config file: ~/.config/freesound/config.toml
//   - Base URL: https://freesound.org/apiv2
//   - Log level: info
//   - Log file: ~/.local/share/freesound/freesound.log
//
// There is no default API key. Validate reports ErrMissingAPIKey until one
// is supplied.
//
// # TOML Format
//
//	api_key = "your-freesound-api-key"
//	base_url = "https://freesound.org/apiv2"
//	log_level = "debug"
//	log_file = "~/.local/share/freesound/freesound.log"
//
// All fields are optional. Values are trimmed and tilde expansion is applied
// to log_file.
//
// # Error Handling
//
// Load returns errors for path expansion failures, unreadable files and TOML
// parse errors. A missing file is not an error.
//
// The returned Config is a plain value; nothing is cached or global.
package config
