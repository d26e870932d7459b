// Package appearance pushes resolved design tokens into the global terminal
// chrome: the header bar and the tab strip every screen draws.
//
// The registry calls an Applier exactly once, right after a theme is
// installed. Screens then read the styles through Current.
package appearance

import (
	"io"
	"strings"
	"sync/atomic"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"

	"github.com/renato0307/designkit/internal/tokens"
)

// Applier receives the tokens of a newly configured theme.
type Applier interface {
	Apply(t tokens.DesignTokens)
}

// ApplierFunc adapts a function to the Applier interface.
type ApplierFunc func(t tokens.DesignTokens)

// Apply calls f(t).
func (f ApplierFunc) Apply(t tokens.DesignTokens) { f(t) }

// Noop is the applier used when the output cannot show styled chrome.
type Noop struct{}

// Apply does nothing.
func (Noop) Apply(tokens.DesignTokens) {}

// NavigationBar styles the header bar.
type NavigationBar struct {
	Bar        lipgloss.Style
	Title      lipgloss.Style
	LargeTitle lipgloss.Style
	Tint       lipgloss.AdaptiveColor
}

// TabBar styles the tab strip.
type TabBar struct {
	Divider  lipgloss.Style
	Normal   lipgloss.Style
	Selected lipgloss.Style
	Tint     lipgloss.AdaptiveColor
}

// Chrome is the global chrome styling derived from a token set.
type Chrome struct {
	Navigation NavigationBar
	Tabs       TabBar
}

var current atomic.Pointer[Chrome]

func init() {
	c := plainChrome(lipgloss.DefaultRenderer())
	current.Store(&c)
}

// Current returns the installed chrome, or unstyled chrome if no theme has
// been applied yet.
func Current() Chrome {
	return *current.Load()
}

// Build derives chrome styles from t using r for color resolution.
func Build(r *lipgloss.Renderer, t tokens.DesignTokens) Chrome {
	text := t.Colors.TextPrimary
	muted := t.Colors.TextTertiary
	accent := t.Colors.Primary
	pad := tokens.Cells(t.Spacing.MD)
	tabPad := tokens.Cells(t.Spacing.SM)

	return Chrome{
		Navigation: NavigationBar{
			// no bottom border: the bar casts no shadow
			Bar: r.NewStyle().
				Padding(0, pad),
			Title: r.NewStyle().
				Foreground(text).
				Bold(t.Typography.HeadlineLarge.Weight.Emphasized()),
			LargeTitle: r.NewStyle().
				Foreground(text).
				Bold(t.Typography.TitleLarge.Weight.Emphasized()),
			Tint: accent,
		},
		Tabs: TabBar{
			Divider: r.NewStyle().
				BorderStyle(lipgloss.NormalBorder()).
				BorderTop(true).
				BorderForeground(t.Colors.Divider),
			Normal: r.NewStyle().
				Foreground(muted).
				Bold(t.Typography.BodySmall.Weight.Emphasized()).
				Padding(0, tabPad),
			Selected: r.NewStyle().
				Foreground(accent).
				Bold(true).
				Padding(0, tabPad),
			Tint: accent,
		},
	}
}

func plainChrome(r *lipgloss.Renderer) Chrome {
	return Chrome{
		Navigation: NavigationBar{
			Bar:        r.NewStyle(),
			Title:      r.NewStyle(),
			LargeTitle: r.NewStyle(),
		},
		Tabs: TabBar{
			Divider:  r.NewStyle(),
			Normal:   r.NewStyle(),
			Selected: r.NewStyle(),
		},
	}
}

// RenderNavigation draws the header bar with title across width cells.
func (c Chrome) RenderNavigation(title string, width int) string {
	bar := c.Navigation.Bar
	if width > 0 {
		bar = bar.Width(width)
	}
	return bar.Render(c.Navigation.Title.Render(title))
}

// RenderTabs draws the tab strip with the tab at index selected highlighted.
func (c Chrome) RenderTabs(tabs []string, selected int) string {
	cells := make([]string, len(tabs))
	for i, tab := range tabs {
		if i == selected {
			cells[i] = c.Tabs.Selected.Render(tab)
		} else {
			cells[i] = c.Tabs.Normal.Render(tab)
		}
	}
	return c.Tabs.Divider.Render(strings.Join(cells, ""))
}

// Terminal builds chrome with its renderer and installs it globally.
type Terminal struct {
	renderer *lipgloss.Renderer
}

// NewTerminal returns an applier that styles chrome through r.
func NewTerminal(r *lipgloss.Renderer) *Terminal {
	return &Terminal{renderer: r}
}

// Apply installs chrome derived from t.
func (a *Terminal) Apply(t tokens.DesignTokens) {
	c := Build(a.renderer, t)
	current.Store(&c)
}

// Supported reports whether r can show styled chrome.
func Supported(r *lipgloss.Renderer) bool {
	return r.ColorProfile() != termenv.Ascii
}

// ForOutput returns the applier for w: a Terminal when w supports color,
// Noop otherwise.
func ForOutput(w io.Writer) Applier {
	r := lipgloss.NewRenderer(w)
	if !Supported(r) {
		return Noop{}
	}
	return NewTerminal(r)
}

// Deferred is ForOutput resolved at Apply time, so the capability check runs
// only when a theme is actually configured.
func Deferred(w io.Writer) Applier {
	return ApplierFunc(func(t tokens.DesignTokens) {
		ForOutput(w).Apply(t)
	})
}
