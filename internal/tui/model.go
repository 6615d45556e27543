package tui

import (
	"context"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	"github.com/charmbracelet/lipgloss"

	"pocketdash/internal/config"
	"pocketdash/internal/dashboard"
	"pocketdash/internal/pocket"
	"pocketdash/pkg/logging"
)

// Querier is the slice of the pocket client the dashboard depends on.
// Injecting it lets tests drive the TUI without a pocketd binary.
type Querier interface {
	dashboard.Querier
	BankBalance(ctx context.Context, address string) ([]pocket.Coin, error)
}

// mode is the interaction state of the dashboard.
type mode int

const (
	// modeBooting shows the splash until the first refresh lands.
	modeBooting mode = iota
	modeReady
	modeCommand
	modeSearch
	modeDetails
	modeHelp
	modeLogs
)

// Model is the bubbletea model for the dashboard. It exclusively owns the
// row set; rows are replaced wholesale on every refresh.
type Model struct {
	cfg     config.Config
	querier Querier
	keys    KeyMap

	mode mode

	table   table.Model
	input   textinput.Model
	spin    spinner.Model
	details viewport.Model
	logView viewport.Model
	help    help.Model

	gateway    string
	rows       []dashboard.Row
	sortField  dashboard.SortField
	sortDesc   bool
	refreshing bool

	logCh <-chan logging.LogEntry
	logs  []string

	detailsAddr    string
	detailsContent string
	detailsLoading bool

	status     string
	statusKind int
	statusSeq  int

	width  int
	height int
}

// New constructs the dashboard model. cfg must already be validated; config
// load failures are handled at the cobra boundary before the program starts.
// logCh is the channel from logging.InitForTUI; entries received on it are
// appended to the activity log shown in the log overlay. A nil channel
// disables the overlay's feed.
func New(cfg config.Config, querier Querier, logCh <-chan logging.LogEntry) Model {
	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = lipgloss.NewStyle().Foreground(lipgloss.Color("62"))

	in := textinput.New()
	in.CharLimit = 128

	tbl := table.New(
		table.WithColumns(tableColumns(defaultWidth)),
		table.WithFocused(true),
	)
	tbl.SetStyles(tableStyles())

	return Model{
		cfg:     cfg,
		querier: querier,
		keys:    DefaultKeyMap(),
		mode:    modeBooting,
		table:   tbl,
		input:   in,
		spin:    sp,
		details: viewport.New(defaultWidth, 20),
		logView: viewport.New(defaultWidth, 20),
		help:    help.New(),
		gateway: cfg.DefaultGateway(),
		logCh:   logCh,
		width:   defaultWidth,
		height:  24,
		// The first refresh is issued from Init.
		refreshing: true,
	}
}

const defaultWidth = 80

// maxLogLines bounds the in-memory activity log.
const maxLogLines = 200

// appendLogLine adds one formatted line to the activity log, trimming the
// oldest entries past maxLogLines.
func (m *Model) appendLogLine(line string) {
	m.logs = append(m.logs, line)
	if len(m.logs) > maxLogLines {
		m.logs = m.logs[len(m.logs)-maxLogLines:]
	}
}

// Gateway returns the gateway currently applied to rows.
func (m Model) Gateway() string {
	return m.gateway
}

// Rows returns the current row set.
func (m Model) Rows() []dashboard.Row {
	return m.rows
}
