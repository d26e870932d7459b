package ui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/renato0307/designkit/internal/types"
)

// RenderMessage renders a user message with appropriate styling based on message type.
// Long messages are truncated to fit the terminal width.
func RenderMessage(text string, msgType types.MessageType, styles *Styles, spinnerView string, width int) string {
	if text == "" {
		return ""
	}

	// Max length = terminal width - prefix (2) - margin (5)
	maxMessageLength := width - 7
	if maxMessageLength < 20 {
		maxMessageLength = 20
	}
	if runes := []rune(text); len(runes) > maxMessageLength {
		text = string(runes[:maxMessageLength-1]) + "…"
	}

	var messageColor lipgloss.AdaptiveColor
	var prefix string

	circleBullet := "⏺ "

	switch msgType {
	case types.MessageTypeSuccess:
		messageColor = styles.MessageSuccess
		prefix = circleBullet
	case types.MessageTypeError:
		messageColor = styles.MessageError
		prefix = circleBullet
	case types.MessageTypeLoading:
		messageColor = styles.MessageLoading
		if spinnerView != "" {
			prefix = spinnerView + " "
		} else {
			prefix = circleBullet
		}
	default:
		messageColor = styles.MessageInfo
		prefix = circleBullet
	}

	return styles.renderer.NewStyle().Foreground(messageColor).Render(prefix + text)
}
