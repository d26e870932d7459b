package logging

import (
	"time"
)

// TimingContext holds timing information for manual Start/End tracking
type TimingContext struct {
	name      string
	startTime time.Time
}

// Time executes the given function and logs its execution time with the
// global logger.
//
// Example:
//
//	logging.Time("load settings", func() {
//	    // ... work ...
//	})
func Time(name string, fn func()) {
	Get().Time(name, fn)
}

// Start begins a timing measurement for manual control.
// Must be paired with End() to log the duration.
func Start(name string) TimingContext {
	return TimingContext{
		name:      name,
		startTime: time.Now(),
	}
}

// End completes a timing measurement started with Start() and logs the duration.
func End(ctx TimingContext) {
	if !IsEnabled() {
		return
	}

	duration := time.Since(ctx.startTime)
	Get().Debug(ctx.name,
		"duration", duration.String(),
		"ms", duration.Milliseconds(),
	)
}

// Time is the Logger-scoped variant of the package-level Time.
//
// Example:
//
//	logger := logging.Get().With("component", "registry")
//	logger.Time("theme.configure", func() {
//	    // ... install ...
//	})
func (l *Logger) Time(name string, fn func()) {
	if !l.IsEnabled() {
		fn()
		return
	}

	start := time.Now()
	fn()
	duration := time.Since(start)

	l.Debug(name,
		"duration", duration.String(),
		"ms", duration.Milliseconds(),
	)
}
