package tui

import (
	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/lipgloss"

	"pocketdash/internal/tui/components"
)

const (
	stakeColWidth   = 14
	serviceColWidth = 14
	gatewayColWidth = 18
	minAddrColWidth = 16
)

func tableColumns(width int) []table.Column {
	addrWidth := width - stakeColWidth - serviceColWidth - gatewayColWidth - 8
	if addrWidth < minAddrColWidth {
		addrWidth = minAddrColWidth
	}
	return []table.Column{
		{Title: "App Address", Width: addrWidth},
		{Title: "Stake (POKT)", Width: stakeColWidth},
		{Title: "Service ID", Width: serviceColWidth},
		{Title: "Gateway", Width: gatewayColWidth},
	}
}

func tableStyles() table.Styles {
	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240")).
		BorderBottom(true).
		Bold(true)
	s.Selected = s.Selected.
		Foreground(lipgloss.Color("229")).
		Background(lipgloss.Color("57")).
		Bold(false)
	return s
}

// syncTableRows rebuilds the bubbles table rows from the owned row set,
// truncating addresses to the current column widths.
func (m *Model) syncTableRows() {
	cols := tableColumns(m.width)
	addrWidth := cols[0].Width
	gatewayWidth := cols[3].Width

	rows := make([]table.Row, len(m.rows))
	for i, r := range m.rows {
		rows[i] = table.Row{
			components.TruncateAddress(r.Address, addrWidth),
			r.Stake,
			r.Service,
			components.TruncateAddress(r.Gateway, gatewayWidth),
		}
	}
	m.table.SetRows(rows)

	if cursor := m.table.Cursor(); cursor >= len(rows) && len(rows) > 0 {
		m.table.SetCursor(len(rows) - 1)
	}
}
