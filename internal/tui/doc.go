// Package tui implements the pocketdash terminal dashboard: a bubbletea
// model that renders configured applications in a table, refreshes them on
// demand, and exposes a k9s-style command line.
//
// The model exclusively owns the configuration (read-only after boot) and
// the row set (replaced wholesale on each refresh). Queries run as bubbletea
// commands, sequentially within a single refresh; refresh triggers are
// ignored while one is in flight.
package tui
