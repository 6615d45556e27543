package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"pocketdash/internal/dashboard"
	"pocketdash/internal/pocket"
	"pocketdash/internal/tui/components"
)

var (
	baseStyle = lipgloss.NewStyle().
			BorderStyle(lipgloss.NormalBorder()).
			BorderForeground(lipgloss.Color("240"))

	splashStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("62")).
			Bold(true)

	splashHintStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("244"))

	detailsTitleStyle = lipgloss.NewStyle().
				Bold(true).
				Foreground(lipgloss.Color("230"))

	helpTitleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("230"))
)

// View renders the current frame.
func (m Model) View() string {
	if m.mode == modeBooting {
		return m.renderSplash()
	}

	header := components.NewHeader("pocketdash").
		WithSubtitle(m.cfg.RPCEndpoint).
		WithRightContent("gw " + components.TruncateAddress(m.gateway, 20)).
		WithWidth(m.width)
	if m.busy() {
		header = header.WithSpinner(m.spin.View())
	}

	var body string
	switch m.mode {
	case modeDetails:
		body = m.renderDetailsView()
	case modeLogs:
		body = m.renderLogsView()
	case modeHelp:
		body = m.renderHelpView()
	default:
		body = baseStyle.Render(m.table.View())
	}

	return lipgloss.JoinVertical(lipgloss.Left,
		header.Render(),
		body,
		m.renderBottom(),
	)
}

func (m Model) renderSplash() string {
	content := lipgloss.JoinVertical(lipgloss.Center,
		splashStyle.Render(splashArt),
		"",
		m.spin.View()+" "+splashHintStyle.Render("Loading applications…"),
	)
	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, content)
}

func (m Model) renderBottom() string {
	if m.mode == modeCommand || m.mode == modeSearch {
		return m.input.View()
	}

	bar := components.NewStatusBar(m.width)
	if m.status != "" {
		return bar.WithMessage(m.status, components.MessageType(m.statusKind)).Render()
	}

	return bar.
		WithLeftText(m.help.ShortHelpView(m.keys.ShortHelp())).
		WithRightText(fmt.Sprintf("%d apps", len(m.rows))).
		Render()
}

func (m Model) renderDetailsView() string {
	title := detailsTitleStyle.Render("Application " + m.detailsAddr)
	hint := splashHintStyle.Render("esc back · ↑/↓ scroll")
	return lipgloss.JoinVertical(lipgloss.Left,
		title,
		baseStyle.Render(m.details.View()),
		hint,
	)
}

func (m Model) renderLogsView() string {
	title := detailsTitleStyle.Render("Activity log")
	hint := splashHintStyle.Render("esc back · ↑/↓ scroll")
	return lipgloss.JoinVertical(lipgloss.Left,
		title,
		baseStyle.Render(m.logView.View()),
		hint,
	)
}

func (m Model) renderHelpView() string {
	h := m.help
	h.ShowAll = true
	content := lipgloss.JoinVertical(lipgloss.Left,
		helpTitleStyle.Render("Key bindings"),
		"",
		h.View(m.keys),
		"",
		splashHintStyle.Render("Commands:  q quit · g <n> select gateway · sa/sp/sv sort by address/stake/service · asc/desc"),
		"",
		splashHintStyle.Render("esc back"),
	)
	return lipgloss.NewStyle().Padding(1, 2).Render(content)
}

// renderDetails formats one application record plus its bank balances for
// the details viewport.
func renderDetails(app pocket.Application, balances []pocket.Coin) string {
	var b strings.Builder

	fmt.Fprintf(&b, "Address:   %s\n", app.Address)

	if stake, err := dashboard.FormatStake(app.Stake.Amount); err == nil {
		fmt.Fprintf(&b, "Stake:     %s POKT (%s %s)\n", stake, app.Stake.Amount, app.Stake.Denom)
	} else {
		fmt.Fprintf(&b, "Stake:     %s %s\n", app.Stake.Amount, app.Stake.Denom)
	}

	b.WriteString("Services:  ")
	if len(app.ServiceConfigs) == 0 {
		b.WriteString("-\n")
	} else {
		ids := make([]string, len(app.ServiceConfigs))
		for i, sc := range app.ServiceConfigs {
			ids[i] = sc.ServiceID
		}
		b.WriteString(strings.Join(ids, ", ") + "\n")
	}

	b.WriteString("Delegated gateways:\n")
	if len(app.DelegateeGatewayAddresses) == 0 {
		b.WriteString("  -\n")
	} else {
		for _, gw := range app.DelegateeGatewayAddresses {
			fmt.Fprintf(&b, "  %s\n", gw)
		}
	}

	b.WriteString("Balances:\n")
	if len(balances) == 0 {
		b.WriteString("  -\n")
	} else {
		for _, coin := range balances {
			if coin.Denom == "upokt" {
				if v, err := dashboard.FormatStake(coin.Amount); err == nil {
					fmt.Fprintf(&b, "  %s POKT\n", v)
					continue
				}
			}
			fmt.Fprintf(&b, "  %s %s\n", coin.Amount, coin.Denom)
		}
	}

	return b.String()
}
