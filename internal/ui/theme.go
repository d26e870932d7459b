package ui

import (
	"strings"

	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/lipgloss"

	"github.com/renato0307/designkit/internal/tokens"
)

// Styles holds the component styles derived from a token set
type Styles struct {
	Tokens tokens.DesignTokens

	// Status message colors
	MessageSuccess lipgloss.AdaptiveColor
	MessageError   lipgloss.AdaptiveColor
	MessageInfo    lipgloss.AdaptiveColor
	MessageLoading lipgloss.AdaptiveColor

	// Component styles
	Table     TableStyles
	AppTitle  lipgloss.Style // App title with background
	Header    lipgloss.Style
	StatusBar lipgloss.Style
	Muted     lipgloss.Style
	Card      lipgloss.Style
	Glass     lipgloss.Style

	renderer *lipgloss.Renderer
}

// TableStyles defines styles for table components
type TableStyles struct {
	Header      lipgloss.Style
	Cell        lipgloss.Style
	SelectedRow lipgloss.Style
}

// ToTableStyles converts Styles.Table to bubbles table.Styles
func (s *Styles) ToTableStyles() table.Styles {
	return table.Styles{
		Header:   s.Table.Header,
		Cell:     s.Table.Cell,
		Selected: s.Table.SelectedRow,
	}
}

// New derives component styles from t. Colors are resolved through r.
func New(r *lipgloss.Renderer, t tokens.DesignTokens) *Styles {
	c := t.Colors
	cell := tokens.Cells(t.Spacing.SM)

	s := &Styles{
		Tokens:         t,
		MessageSuccess: c.Success,
		MessageError:   c.Error,
		MessageInfo:    c.Info,
		MessageLoading: c.Secondary,
		renderer:       r,
	}

	s.Table.Header = r.NewStyle().
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(c.Divider).
		BorderBottom(true).
		Foreground(c.Primary).
		Bold(t.Typography.HeadlineSmall.Weight.Emphasized()).
		Padding(0, cell)

	s.Table.Cell = r.NewStyle().
		Foreground(c.TextPrimary).
		Padding(0, cell)

	s.Table.SelectedRow = r.NewStyle().
		Foreground(c.TextOnPrimary).
		Background(c.Primary).
		Bold(false)

	s.AppTitle = r.NewStyle().
		Foreground(c.Primary).
		Background(c.SurfaceVariant).
		Bold(t.Typography.TitleLarge.Weight.Emphasized()).
		Padding(0, cell)

	s.Header = r.NewStyle().
		Foreground(c.Primary).
		Bold(t.Typography.HeadlineLarge.Weight.Emphasized())

	s.StatusBar = r.NewStyle().
		Foreground(c.TextSecondary)

	s.Muted = r.NewStyle().
		Foreground(c.TextTertiary)

	s.Card = s.CardWithRadius(t.Radii.LG)
	s.Glass = s.glass(t.Glass.Tint)

	return s
}

// CardWithRadius returns the card style for a corner radius. Terminals only
// know square and rounded corners: radii from Radii.MD up draw rounded.
func (s *Styles) CardWithRadius(radius float64) lipgloss.Style {
	t := s.Tokens
	border := lipgloss.NormalBorder()
	if radius >= t.Radii.MD {
		border = lipgloss.RoundedBorder()
	}

	return s.renderer.NewStyle().
		Border(border).
		BorderForeground(t.Colors.Border).
		Background(t.Colors.Surface).
		Foreground(t.Colors.TextPrimary).
		Padding(tokens.Cells(t.Spacing.XS), tokens.Cells(t.Spacing.MD))
}

// StrongGlass is the glass style using the strong tint.
func (s *Styles) StrongGlass() lipgloss.Style {
	return s.glass(s.Tokens.Glass.StrongTint)
}

// glass flattens tint onto the primary background. A tint that cannot be
// composited falls back to the secondary background.
func (s *Styles) glass(tint tokens.Tint) lipgloss.Style {
	t := s.Tokens
	base := t.Colors.BackgroundPrimary

	bg, err := tint.Adaptive(base)
	if err != nil {
		bg = t.Colors.BackgroundSecondary
	}
	border, err := t.Glass.Border.Adaptive(base)
	if err != nil {
		border = t.Colors.Border
	}

	return s.renderer.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(border).
		Background(bg).
		Foreground(t.Colors.TextPrimary).
		Padding(tokens.Cells(t.Spacing.XS), tokens.Cells(t.Spacing.MD))
}

// Shadow returns the color of a shadow tier composited onto the primary
// background.
func (s *Styles) Shadow(shadow tokens.ShadowToken) lipgloss.AdaptiveColor {
	c, err := shadow.Color.Adaptive(s.Tokens.Colors.BackgroundPrimary)
	if err != nil {
		return s.Tokens.Colors.Divider
	}
	return c
}

// Swatch renders a block of width cells in color.
func (s *Styles) Swatch(color lipgloss.TerminalColor, width int) string {
	if width < 1 {
		width = 1
	}
	return s.renderer.NewStyle().Background(color).Render(strings.Repeat(" ", width))
}
