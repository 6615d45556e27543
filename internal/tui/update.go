package tui

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"

	"pocketdash/internal/dashboard"
	"pocketdash/internal/tui/components"
	"pocketdash/pkg/logging"
)

// Init issues the first refresh and starts draining the log channel. The
// refresh runs as a command off the update loop, so the splash frame is
// painted before any query blocks.
func (m Model) Init() tea.Cmd {
	return tea.Batch(m.spin.Tick, m.refreshCmd(), listenForLogs(m.logCh))
}

// Update is the single entry point for all events.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.table.SetColumns(tableColumns(m.width))
		m.table.SetWidth(m.width)
		m.table.SetHeight(maxInt(m.height-chromeHeight, 3))
		m.details.Width = m.width
		m.details.Height = maxInt(m.height-chromeHeight, 3)
		m.logView.Width = m.width
		m.logView.Height = maxInt(m.height-chromeHeight, 3)
		m.help.Width = m.width
		m.syncTableRows()
		return m, nil

	case spinner.TickMsg:
		if !m.busy() {
			return m, nil
		}
		var cmd tea.Cmd
		m.spin, cmd = m.spin.Update(msg)
		return m, cmd

	case refreshDoneMsg:
		m.refreshing = false
		m.rows = msg.rows
		dashboard.SortRows(m.rows, m.sortField, m.sortDesc)
		m.syncTableRows()
		if m.mode == modeBooting {
			m.mode = modeReady
		}
		logging.Debug("refresh", "table updated with %d rows", len(m.rows))
		if n := countFailedRows(m.rows); n > 0 {
			clearCmd := m.setStatusMessage(fmt.Sprintf("%d of %d queries failed", n, len(m.rows)), components.StatusBarError, 5*time.Second)
			return m, clearCmd
		}
		return m, nil

	case detailsDoneMsg:
		m.detailsLoading = false
		if msg.err != nil {
			m.mode = modeReady
			clearCmd := m.setStatusMessage("Details failed: "+msg.err.Error(), components.StatusBarError, 5*time.Second)
			return m, clearCmd
		}
		m.detailsAddr = msg.address
		m.detailsContent = renderDetails(msg.app, msg.balances)
		m.details.SetContent(m.detailsContent)
		m.details.GotoTop()
		return m, nil

	case clearStatusMsg:
		if msg.seq == m.statusSeq {
			m.status = ""
		}
		return m, nil

	case logEntryMsg:
		m.appendLogLine(formatLogEntry(msg.entry))
		if m.mode == modeLogs {
			m.syncLogViewport()
		}
		return m, listenForLogs(m.logCh)

	case tea.KeyMsg:
		return m.handleKey(msg)
	}

	return m, nil
}

// chromeHeight is the vertical space reserved for the header and bottom bar.
const chromeHeight = 4

func (m Model) busy() bool {
	return m.refreshing || m.detailsLoading || m.mode == modeBooting
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch m.mode {
	case modeBooting:
		if msg.String() == "ctrl+c" {
			return m, tea.Quit
		}
		return m, nil

	case modeCommand:
		return m.handleInputKey(msg, m.executeCommand)

	case modeSearch:
		return m.handleInputKey(msg, m.executeSearch)

	case modeDetails:
		switch msg.String() {
		case "esc", "q":
			m.mode = modeReady
			return m, nil
		}
		var cmd tea.Cmd
		m.details, cmd = m.details.Update(msg)
		return m, cmd

	case modeHelp:
		switch msg.String() {
		case "esc", "q", "?", "enter":
			m.mode = modeReady
		}
		return m, nil

	case modeLogs:
		switch msg.String() {
		case "esc", "q", "l":
			m.mode = modeReady
			return m, nil
		}
		var cmd tea.Cmd
		m.logView, cmd = m.logView.Update(msg)
		return m, cmd
	}

	return m.handleReadyKey(msg)
}

func (m Model) handleReadyKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit

	case key.Matches(msg, m.keys.Refresh):
		if m.refreshing {
			// Re-entrancy guard: a refresh is already running to completion;
			// concurrent triggers are ignored rather than queued.
			clearCmd := m.setStatusMessage("Refresh already in progress", components.StatusBarInfo, 2*time.Second)
			return m, clearCmd
		}
		m.refreshing = true
		return m, tea.Batch(m.refreshCmd(), m.spin.Tick)

	case key.Matches(msg, m.keys.Command):
		m.mode = modeCommand
		m.input.Prompt = ":"
		m.input.Placeholder = "q quit · g <n> gateway · sa/sp/sv sort · help"
		m.input.Reset()
		return m, m.input.Focus()

	case key.Matches(msg, m.keys.Search):
		m.mode = modeSearch
		m.input.Prompt = "/"
		m.input.Placeholder = "address or service"
		m.input.Reset()
		return m, m.input.Focus()

	case key.Matches(msg, m.keys.Details):
		row, ok := m.selectedRow()
		if !ok {
			return m, nil
		}
		m.mode = modeDetails
		m.detailsLoading = true
		m.detailsAddr = row.Address
		m.details.SetContent("Loading…")
		return m, tea.Batch(m.detailsCmd(row.Address), m.spin.Tick)

	case key.Matches(msg, m.keys.CopyAddr):
		row, ok := m.selectedRow()
		if !ok {
			return m, nil
		}
		if err := clipboard.WriteAll(row.Address); err != nil {
			logging.Error("clipboard", err, "copy failed")
			clearCmd := m.setStatusMessage("Copy failed", components.StatusBarError, 3*time.Second)
			return m, clearCmd
		}
		clearCmd := m.setStatusMessage("Copied "+row.Address, components.StatusBarSuccess, 3*time.Second)
		return m, clearCmd

	case key.Matches(msg, m.keys.Logs):
		m.mode = modeLogs
		m.syncLogViewport()
		return m, nil

	case key.Matches(msg, m.keys.Help):
		m.mode = modeHelp
		return m, nil
	}

	var cmd tea.Cmd
	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

// handleInputKey drives the shared text input. Esc cancels without action;
// enter submits the trimmed value to the given handler.
func (m Model) handleInputKey(msg tea.KeyMsg, submit func(string) (tea.Model, tea.Cmd)) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		m.mode = modeReady
		m.input.Blur()
		m.input.Reset()
		return m, nil
	case "enter":
		value := strings.TrimSpace(m.input.Value())
		m.mode = modeReady
		m.input.Blur()
		m.input.Reset()
		return submit(value)
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

// executeCommand interprets a submitted command line. Anything unrecognized,
// including the empty string, is a no-op back to the table.
func (m Model) executeCommand(value string) (tea.Model, tea.Cmd) {
	switch value {
	case "q", "quit":
		return m, tea.Quit
	case "h", "help":
		m.mode = modeHelp
		return m, nil
	case "sa":
		return m.applySort(dashboard.SortAddress, m.sortDesc)
	case "sp":
		return m.applySort(dashboard.SortStake, m.sortDesc)
	case "sv":
		return m.applySort(dashboard.SortService, m.sortDesc)
	case "asc":
		return m.applySort(m.sortField, false)
	case "desc":
		return m.applySort(m.sortField, true)
	}

	if arg, ok := strings.CutPrefix(value, "gateway "); ok {
		return m.selectGateway(arg)
	}
	if arg, ok := strings.CutPrefix(value, "g "); ok {
		return m.selectGateway(arg)
	}

	return m, nil
}

func (m Model) executeSearch(term string) (tea.Model, tea.Cmd) {
	if term == "" {
		return m, nil
	}
	idx := m.findRow(term)
	if idx < 0 {
		clearCmd := m.setStatusMessage(fmt.Sprintf("No match for %q", term), components.StatusBarInfo, 3*time.Second)
		return m, clearCmd
	}
	m.table.SetCursor(idx)
	return m, nil
}

// findRow returns the index of the first row whose address or service
// contains term, case-insensitively. -1 when nothing matches.
func (m Model) findRow(term string) int {
	term = strings.ToLower(term)
	for i, row := range m.rows {
		if strings.Contains(strings.ToLower(row.Address), term) ||
			strings.Contains(strings.ToLower(row.Service), term) {
			return i
		}
	}
	return -1
}

func (m Model) applySort(field dashboard.SortField, desc bool) (tea.Model, tea.Cmd) {
	m.sortField = field
	m.sortDesc = desc
	dashboard.SortRows(m.rows, m.sortField, m.sortDesc)
	m.syncTableRows()
	return m, nil
}

// selectGateway switches the displayed gateway to the 1-based index into the
// configured gateway list. The change applies on the next refresh.
func (m Model) selectGateway(arg string) (tea.Model, tea.Cmd) {
	idx, err := strconv.Atoi(strings.TrimSpace(arg))
	if err != nil || idx < 1 || idx > len(m.cfg.Gateways) {
		clearCmd := m.setStatusMessage(fmt.Sprintf("Gateway index must be 1..%d", len(m.cfg.Gateways)), components.StatusBarError, 3*time.Second)
		return m, clearCmd
	}
	m.gateway = m.cfg.Gateways[idx-1]
	clearCmd := m.setStatusMessage(fmt.Sprintf("Gateway set to %s (applies on next refresh)", m.gateway), components.StatusBarSuccess, 3*time.Second)
	return m, clearCmd
}

func (m Model) selectedRow() (dashboard.Row, bool) {
	idx := m.table.Cursor()
	if idx < 0 || idx >= len(m.rows) {
		return dashboard.Row{}, false
	}
	return m.rows[idx], true
}

// setStatusMessage shows a transient message in the status bar and schedules
// its expiry. The sequence number prevents an old expiry from clearing a
// newer message.
func (m *Model) setStatusMessage(message string, kind components.MessageType, clearAfter time.Duration) tea.Cmd {
	m.status = message
	m.statusKind = int(kind)
	m.statusSeq++
	seq := m.statusSeq

	return tea.Tick(clearAfter, func(time.Time) tea.Msg {
		return clearStatusMsg{seq: seq}
	})
}

// syncLogViewport refreshes the log overlay content, keeping the view pinned
// to the newest entries.
func (m *Model) syncLogViewport() {
	if len(m.logs) == 0 {
		m.logView.SetContent("No log entries yet.")
		return
	}
	m.logView.SetContent(strings.Join(m.logs, "\n"))
	m.logView.GotoBottom()
}

func countFailedRows(rows []dashboard.Row) int {
	n := 0
	for _, r := range rows {
		if r.Failed() {
			n++
		}
	}
	return n
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}
