// Package registry holds the active theme of the process.
//
// A Registry starts with the built-in default theme and accepts exactly one
// Configure call; later calls are ignored. Reads never block and always see
// either the default theme or the fully installed one.
//
// Typical startup:
//
//	preset, _ := theme.ParsePreset("porcelainTech")
//	registry.Configure(preset.MakeTheme())
//	...
//	fg := registry.Colors().TextPrimary
package registry

import (
	"fmt"
	"sync"
	"sync/atomic"

	"github.com/renato0307/designkit/internal/appearance"
	"github.com/renato0307/designkit/internal/logging"
	"github.com/renato0307/designkit/internal/theme"
	"github.com/renato0307/designkit/internal/tokens"
)

// snapshot is published atomically so readers see theme and tokens together.
type snapshot struct {
	theme  theme.Theme
	tokens tokens.DesignTokens
}

func defaultSnapshot() *snapshot {
	t := theme.NewDefault()
	return &snapshot{theme: t, tokens: t.Tokens()}
}

// Registry is a theme context. Create one with New at startup and pass it to
// consumers, or use the process-wide handle through the package functions.
type Registry struct {
	mu         sync.Mutex // serializes Configure and reset
	current    atomic.Pointer[snapshot]
	configured atomic.Bool

	applier appearance.Applier
	logger  *logging.Logger
}

// Option configures a Registry.
type Option func(*Registry)

// WithApplier sets the appearance applier invoked on the first successful
// Configure. Without one, chrome styling is skipped.
func WithApplier(a appearance.Applier) Option {
	return func(r *Registry) {
		r.applier = a
	}
}

// WithLogger sets the logger used for diagnostics. Defaults to the global
// logger at the time of each call.
func WithLogger(l *logging.Logger) Option {
	return func(r *Registry) {
		r.logger = l
	}
}

// New returns an unconfigured registry with the default theme active.
func New(opts ...Option) *Registry {
	r := &Registry{}
	for _, opt := range opts {
		opt(r)
	}
	r.current.Store(defaultSnapshot())
	return r
}

func (r *Registry) log() *logging.Logger {
	if r.logger != nil {
		return r.logger
	}
	return logging.Get().With("component", "registry")
}

// Configure installs t as the active theme. Only the first successful call
// takes effect; it reports whether this call installed the theme.
//
// A nil theme or one whose tokens fail tokens.Validate is ignored and leaves
// the registry unconfigured.
func (r *Registry) Configure(t theme.Theme) bool {
	r.mu.Lock()
	defer r.mu.Unlock()

	log := r.log()
	name := themeName(t)

	if r.configured.Load() {
		log.Warn("theme already configured, ignoring", "theme", name,
			"active", themeName(r.current.Load().theme))
		return false
	}
	if t == nil {
		log.Warn("nil theme, ignoring")
		return false
	}

	tok := t.Tokens()
	if err := tokens.Validate(tok); err != nil {
		log.Error("incomplete theme, ignoring", "theme", name, "error", err)
		return false
	}

	log.Time("theme.configure", func() {
		r.current.Store(&snapshot{theme: t, tokens: tok})
		r.configured.Store(true)

		if r.applier == nil {
			log.Debug("no appearance applier, chrome not styled")
			return
		}
		r.applier.Apply(tok)
	})

	log.Info("theme configured", "theme", name)
	return true
}

// ConfigureWithDefaults configures the built-in default theme.
func (r *Registry) ConfigureWithDefaults() bool {
	return r.Configure(theme.NewDefault())
}

// Configured reports whether a theme has been installed.
func (r *Registry) Configured() bool {
	return r.configured.Load()
}

// Theme returns the active theme.
func (r *Registry) Theme() theme.Theme {
	return r.current.Load().theme
}

// Tokens returns the active token set.
func (r *Registry) Tokens() tokens.DesignTokens {
	return r.current.Load().tokens
}

// Colors returns the active color palette.
func (r *Registry) Colors() tokens.ColorPalette {
	return r.current.Load().tokens.Colors
}

// Typography returns the active type scale.
func (r *Registry) Typography() tokens.TypographyScale {
	return r.current.Load().tokens.Typography
}

// Spacing returns the active spacing scale.
func (r *Registry) Spacing() tokens.SpacingScale {
	return r.current.Load().tokens.Spacing
}

// Radii returns the active radii scale.
func (r *Registry) Radii() tokens.RadiiScale {
	return r.current.Load().tokens.Radii
}

// Shadows returns the active shadow scale.
func (r *Registry) Shadows() tokens.ShadowScale {
	return r.current.Load().tokens.Shadows
}

// Glass returns the active glass tokens.
func (r *Registry) Glass() tokens.GlassTokens {
	return r.current.Load().tokens.Glass
}

// reset puts the registry back in its initial state. Tests only.
func (r *Registry) reset() {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.current.Store(defaultSnapshot())
	r.configured.Store(false)
}

func themeName(t theme.Theme) string {
	if t == nil {
		return "<nil>"
	}
	return fmt.Sprintf("%T", t)
}
