package tui

import (
	"context"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"pocketdash/internal/dashboard"
	"pocketdash/pkg/logging"
)

// refreshCmd queries every configured application sequentially and delivers
// the complete row set in one message. It runs off the update loop, so the
// splash (or the previous table) keeps painting while queries are in flight.
func (m Model) refreshCmd() tea.Cmd {
	querier := m.querier
	addresses := m.cfg.Applications
	gateway := m.gateway

	return func() tea.Msg {
		logging.Debug("refresh", "querying %d applications", len(addresses))
		rows := dashboard.Refresh(context.Background(), querier, addresses, gateway)
		return refreshDoneMsg{rows: rows}
	}
}

// listenForLogs waits for the next entry on the logging channel. Each
// delivered entry re-arms this command from the update loop, so the channel
// is drained for the lifetime of the program.
func listenForLogs(ch <-chan logging.LogEntry) tea.Cmd {
	if ch == nil {
		return nil
	}
	return func() tea.Msg {
		entry, ok := <-ch
		if !ok {
			return nil
		}
		return logEntryMsg{entry: entry}
	}
}

// formatLogEntry renders one entry as an activity log line.
func formatLogEntry(entry logging.LogEntry) string {
	line := fmt.Sprintf("%s [%s] [%s] %s",
		entry.Timestamp.Format("15:04:05.000"),
		entry.Level,
		entry.Subsystem,
		entry.Message)
	if entry.Err != nil {
		line = fmt.Sprintf("%s -- %v", line, entry.Err)
	}
	return line
}

// detailsCmd fetches the full record and bank balances for one application.
func (m Model) detailsCmd(address string) tea.Cmd {
	querier := m.querier

	return func() tea.Msg {
		ctx := context.Background()
		app, err := querier.ShowApplication(ctx, address)
		if err != nil {
			return detailsDoneMsg{address: address, err: err}
		}
		balances, err := querier.BankBalance(ctx, address)
		if err != nil {
			logging.Warn("details", "bank balance query failed for %s: %v", address, err)
			balances = nil
		}
		return detailsDoneMsg{address: address, app: app, balances: balances}
	}
}
