package registry

import (
	"os"

	"github.com/renato0307/designkit/internal/appearance"
	"github.com/renato0307/designkit/internal/theme"
	"github.com/renato0307/designkit/internal/tokens"
)

// global is the process-wide handle. It styles chrome on stdout when stdout
// supports color.
var global = New(WithApplier(appearance.Deferred(os.Stdout)))

// Default returns the process-wide registry.
func Default() *Registry {
	return global
}

// Configure installs t on the process-wide registry. See Registry.Configure.
func Configure(t theme.Theme) bool {
	return global.Configure(t)
}

// ConfigureWithDefaults installs the built-in default theme on the
// process-wide registry.
func ConfigureWithDefaults() bool {
	return global.ConfigureWithDefaults()
}

// Configured reports whether the process-wide registry has a theme installed.
func Configured() bool {
	return global.Configured()
}

// Theme returns the process-wide active theme.
func Theme() theme.Theme {
	return global.Theme()
}

// Tokens returns the process-wide active token set.
func Tokens() tokens.DesignTokens {
	return global.Tokens()
}

// Colors returns the process-wide active color palette.
func Colors() tokens.ColorPalette {
	return global.Colors()
}

// Typography returns the process-wide active type scale.
func Typography() tokens.TypographyScale {
	return global.Typography()
}

// Spacing returns the process-wide active spacing scale.
func Spacing() tokens.SpacingScale {
	return global.Spacing()
}
