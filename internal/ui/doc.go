// Package ui provides the Bubble Tea search browser.
//
// # Overview
//
// The browser is a single Model with two views: a paged results list and a
// scrollable detail view for one sound. Every network call runs as a tea.Cmd
// against a freesound.Searcher and comes back as a message, so Update never
// blocks.
//
// # Layout
//
//	┌───────────────────────────────────────────────┐
//	│ freesound  Sort: score  Page 1  Results 1,204 │  header
//	│ / dog bark                                    │  search input
//	│  Dog barking loud    0:04  wav  1.2 MB  ...   │  results or detail
//	│  ...                                          │
//	│ 1,204 results                          h help │  status line
//	└───────────────────────────────────────────────┘
//
// # Requests
//
// Each request bumps a sequence number. Responses carrying an older number
// are dropped, so a slow page fetch cannot overwrite a newer search.
// Paging follows the next and previous links returned by the API through
// Searcher.FetchPage; sort and group-by-pack changes rerun the search from
// page one.
//
// # Themes
//
// Three palettes are built in (Nightfox, Kanagawa, Slate). T cycles them and
// writes the choice back to the preferences file, leaving the other stored
// preferences untouched.
//
// # Formatting
//
// format.go holds the value formatters shared with plain-text output:
// durations, SI byte sizes, counts and relative ages.
package ui
