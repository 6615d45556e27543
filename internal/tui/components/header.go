package components

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

var (
	headerStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("230")).
			Background(lipgloss.Color("62")).
			Padding(0, 1)

	headerSubtitleStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("252"))
)

// Header represents the top bar of the dashboard.
type Header struct {
	Title        string
	Subtitle     string
	SpinnerView  string
	RightContent string
	Width        int
}

// NewHeader creates a header with the given title.
func NewHeader(title string) *Header {
	return &Header{
		Title: title,
		Width: 80,
	}
}

// WithSubtitle adds a subtitle next to the title.
func (h *Header) WithSubtitle(subtitle string) *Header {
	h.Subtitle = subtitle
	return h
}

// WithSpinner shows a spinner frame in the header.
func (h *Header) WithSpinner(spinnerView string) *Header {
	h.SpinnerView = spinnerView
	return h
}

// WithRightContent adds right-aligned content.
func (h *Header) WithRightContent(content string) *Header {
	h.RightContent = content
	return h
}

// WithWidth sets the header width.
func (h *Header) WithWidth(width int) *Header {
	h.Width = width
	return h
}

// Render returns the styled header line.
func (h *Header) Render() string {
	var leftParts []string
	if h.SpinnerView != "" {
		leftParts = append(leftParts, h.SpinnerView)
	}
	leftParts = append(leftParts, h.Title)
	if h.Subtitle != "" {
		leftParts = append(leftParts, headerSubtitleStyle.Render(h.Subtitle))
	}
	left := strings.Join(leftParts, " ")

	content := left
	if h.RightContent != "" {
		leftWidth := lipgloss.Width(left)
		rightWidth := lipgloss.Width(h.RightContent)
		padding := h.Width - leftWidth - rightWidth - 2
		if padding > 0 {
			content = left + strings.Repeat(" ", padding) + h.RightContent
		} else {
			content = TruncateString(left, h.Width-2)
		}
	}

	return headerStyle.Width(h.Width).MaxWidth(h.Width).Render(content)
}
