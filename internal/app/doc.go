// Package app is the composition root for the freesound command.
//
// # Overview
//
// Run wires configuration, preferences, logging and the Freesound client
// together, verifies the API key, and then hands off to one of three modes:
//
//   - Check: print "API key is valid" and exit
//   - Query: print one page of plain-text results to stdout
//   - Browse: start the interactive search browser (default)
//
// LogLines short-circuits all of this: it only needs the config to find the
// log file and prints its tail through logtail, so it works without a key.
//
// # Startup Sequence
//
//	┌──────────────┐
//	│   Run()      │
//	└──────┬───────┘
//	       │
//	       ├─────> config.Load()          Read config.toml + env overrides
//	       ├─────> config.Validate()      Require an API key
//	       ├─────> prefs.Load()           Theme, page size, sort
//	       ├─────> logging.OpenFile()     File-backed zerolog logger
//	       ├─────> freesound.NewClient()  Client with logging transport
//	       ├─────> ensureKeyValid()       Credential probe (10s timeout)
//	       └─────> ui.Run() / PrintResults()
//
// The probe runs before anything is rendered so an invalid key surfaces as
// an error wrapping *freesound.AuthError. cmd/freesound maps that case to a
// dedicated exit code.
//
// # Search Template
//
// BuildQuery turns preferences into the query template every search starts
// from: sort order, page size and the field list needed by the list views.
// Command-line -sort and -page-size values are applied to the preferences
// first and are not persisted.
//
// # Logging
//
// The terminal belongs to the UI, so logs go to the configured log file.
// Every HTTP exchange is recorded by logging.Transport without the query
// string, which keeps the API token out of the log.
package app
