// Package theme defines the theme capability, the built-in themes and the
// closed set of presets that select them by a stable identifier.
package theme

import "github.com/renato0307/designkit/internal/tokens"

// Theme is anything that can produce a complete set of design tokens.
// Implementations must be pure: Tokens returns equal values on every call.
//
// Tokens is the only required method. The palette, type scale and spacing
// views come for free: embed Static to get them as methods, or use the
// Colors, Typography and Spacing functions on any Theme.
type Theme interface {
	Tokens() tokens.DesignTokens
}

// Static is a Theme backed by a fixed token set. Built-in themes embed it,
// and custom themes may too.
type Static struct {
	tokens tokens.DesignTokens
}

// NewStatic wraps a token set as a Theme.
func NewStatic(t tokens.DesignTokens) Static {
	return Static{tokens: t}
}

// Tokens returns the token set.
func (s Static) Tokens() tokens.DesignTokens { return s.tokens }

// Colors returns the color palette.
func (s Static) Colors() tokens.ColorPalette { return s.tokens.Colors }

// Typography returns the type scale.
func (s Static) Typography() tokens.TypographyScale { return s.tokens.Typography }

// Spacing returns the spacing scale.
func (s Static) Spacing() tokens.SpacingScale { return s.tokens.Spacing }

// Colors returns the color palette of any theme.
func Colors(t Theme) tokens.ColorPalette { return t.Tokens().Colors }

// Typography returns the type scale of any theme.
func Typography(t Theme) tokens.TypographyScale { return t.Tokens().Typography }

// Spacing returns the spacing scale of any theme.
func Spacing(t Theme) tokens.SpacingScale { return t.Tokens().Spacing }
