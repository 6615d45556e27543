package tui

import (
	"pocketdash/internal/dashboard"
	"pocketdash/internal/pocket"
	"pocketdash/pkg/logging"
)

// refreshDoneMsg carries the complete row set of a finished refresh. The
// table is replaced wholesale; there is no incremental diffing.
type refreshDoneMsg struct {
	rows []dashboard.Row
}

// detailsDoneMsg carries the result of a details fetch for one application.
type detailsDoneMsg struct {
	address  string
	app      pocket.Application
	balances []pocket.Coin
	err      error
}

// clearStatusMsg expires a transient status bar message. The sequence number
// guards against clearing a newer message than the one that scheduled it.
type clearStatusMsg struct {
	seq int
}

// logEntryMsg delivers one entry from the logging channel to the model. The
// handler re-arms the listen command after each entry.
type logEntryMsg struct {
	entry logging.LogEntry
}
