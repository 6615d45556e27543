package components

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// MessageType selects the styling of a transient status message.
type MessageType int

const (
	StatusBarInfo MessageType = iota
	StatusBarSuccess
	StatusBarError
)

var (
	statusBarStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("250")).
			Background(lipgloss.Color("236")).
			Padding(0, 1)

	statusBarSuccessStyle = statusBarStyle.
				Foreground(lipgloss.Color("230")).
				Background(lipgloss.Color("28"))

	statusBarErrorStyle = statusBarStyle.
				Foreground(lipgloss.Color("230")).
				Background(lipgloss.Color("124"))
)

// StatusBar represents the bottom status bar.
type StatusBar struct {
	Width       int
	Message     string
	MessageType MessageType
	LeftText    string
	RightText   string
}

// NewStatusBar creates a status bar of the given width.
func NewStatusBar(width int) *StatusBar {
	return &StatusBar{Width: width}
}

// WithMessage sets a transient message. While set, it replaces the
// left/right text.
func (s *StatusBar) WithMessage(message string, msgType MessageType) *StatusBar {
	s.Message = message
	s.MessageType = msgType
	return s
}

// WithLeftText sets the left side text.
func (s *StatusBar) WithLeftText(text string) *StatusBar {
	s.LeftText = text
	return s
}

// WithRightText sets the right side text.
func (s *StatusBar) WithRightText(text string) *StatusBar {
	s.RightText = text
	return s
}

// Render returns the styled status bar line.
func (s *StatusBar) Render() string {
	style := statusBarStyle
	var content string

	if s.Message != "" {
		switch s.MessageType {
		case StatusBarSuccess:
			style = statusBarSuccessStyle
		case StatusBarError:
			style = statusBarErrorStyle
		}
		content = s.Message
	} else {
		leftWidth := lipgloss.Width(s.LeftText)
		rightWidth := lipgloss.Width(s.RightText)
		padding := s.Width - leftWidth - rightWidth - 2
		if s.RightText != "" && padding > 0 {
			content = s.LeftText + strings.Repeat(" ", padding) + s.RightText
		} else {
			content = TruncateString(s.LeftText, s.Width-2)
		}
	}

	return style.Width(s.Width).MaxWidth(s.Width).Render(content)
}
