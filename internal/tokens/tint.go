package tokens

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
	"github.com/lucasb-eyer/go-colorful"
)

// Tint is a hex color at an opacity between 0 and 1.
type Tint struct {
	Color string
	Alpha float64
}

// Black returns black at the given opacity.
func Black(alpha float64) Tint {
	return Tint{Color: "#000000", Alpha: alpha}
}

// White returns white at the given opacity.
func White(alpha float64) Tint {
	return Tint{Color: "#FFFFFF", Alpha: alpha}
}

// Clear returns the fully transparent tint.
func Clear() Tint {
	return Tint{}
}

// Transparent reports whether the tint has no opacity.
func (t Tint) Transparent() bool {
	return t.Alpha <= 0
}

// Over composites the tint onto an opaque hex background. Terminal cells have
// no alpha channel, so translucent tokens are flattened this way before use.
// A clear tint returns the background unchanged.
func (t Tint) Over(background string) (lipgloss.Color, error) {
	bg, err := colorful.Hex(background)
	if err != nil {
		return "", fmt.Errorf("parse background %q: %w", background, err)
	}
	if t.Transparent() {
		return lipgloss.Color(bg.Hex()), nil
	}
	fg, err := colorful.Hex(t.Color)
	if err != nil {
		return "", fmt.Errorf("parse tint %q: %w", t.Color, err)
	}

	alpha := t.Alpha
	switch {
	case alpha < 0:
		alpha = 0
	case alpha > 1:
		alpha = 1
	}

	return lipgloss.Color(bg.BlendRgb(fg, alpha).Clamped().Hex()), nil
}

// Adaptive composites the tint onto both sides of an adaptive background.
func (t Tint) Adaptive(background lipgloss.AdaptiveColor) (lipgloss.AdaptiveColor, error) {
	light, err := t.Over(background.Light)
	if err != nil {
		return lipgloss.AdaptiveColor{}, err
	}
	dark, err := t.Over(background.Dark)
	if err != nil {
		return lipgloss.AdaptiveColor{}, err
	}
	return lipgloss.AdaptiveColor{Light: string(light), Dark: string(dark)}, nil
}

func (t Tint) String() string {
	if t.Transparent() {
		return "clear"
	}
	return fmt.Sprintf("%s@%.2f", t.Color, t.Alpha)
}
