package theme

import (
	"errors"
	"fmt"
	"strings"

	"github.com/sahilm/fuzzy"
)

// Preset identifies a built-in theme. The string values are stable and safe
// to persist.
type Preset string

const (
	PresetClean           Preset = "clean"
	PresetDefault         Preset = "defaultTheme"
	PresetClassicMono     Preset = "classicMono"
	PresetEditorialGarden Preset = "editorialGarden"
	PresetPorcelainTech   Preset = "porcelainTech"
	PresetBotanicalLuxe   Preset = "botanicalLuxe"
)

// ErrUnknownPreset is returned when a name does not resolve to a preset.
var ErrUnknownPreset = errors.New("unknown theme preset")

var presets = [...]Preset{
	PresetClean,
	PresetDefault,
	PresetClassicMono,
	PresetEditorialGarden,
	PresetPorcelainTech,
	PresetBotanicalLuxe,
}

// Presets returns every preset in picker order.
func Presets() []Preset {
	out := make([]Preset, len(presets))
	copy(out, presets[:])
	return out
}

// DisplayName returns the label shown in a theme picker.
func (p Preset) DisplayName() string {
	switch p {
	case PresetClean:
		return "Clean"
	case PresetDefault:
		return "Default"
	case PresetClassicMono:
		return "Classic Mono"
	case PresetEditorialGarden:
		return "Editorial Garden"
	case PresetPorcelainTech:
		return "Porcelain Tech"
	case PresetBotanicalLuxe:
		return "Botanical Luxe"
	default:
		return string(p)
	}
}

// MakeTheme builds a fresh theme for the preset. Unknown presets get the
// built-in default theme; use Valid or ParsePreset to reject them earlier.
func (p Preset) MakeTheme() Theme {
	switch p {
	case PresetClean:
		return NewClean()
	case PresetDefault:
		return NewCloudPetal()
	case PresetClassicMono:
		return NewDefault()
	case PresetEditorialGarden:
		return NewEditorialGarden()
	case PresetPorcelainTech:
		return NewPorcelainTech()
	case PresetBotanicalLuxe:
		return NewBotanicalLuxe()
	default:
		return NewDefault()
	}
}

// Valid reports whether p is one of the declared presets.
func (p Preset) Valid() bool {
	for _, known := range presets {
		if p == known {
			return true
		}
	}
	return false
}

func (p Preset) String() string {
	return string(p)
}

// MarshalText implements encoding.TextMarshaler.
func (p Preset) MarshalText() ([]byte, error) {
	if !p.Valid() {
		return nil, fmt.Errorf("%w: %q", ErrUnknownPreset, string(p))
	}
	return []byte(p), nil
}

// UnmarshalText implements encoding.TextUnmarshaler. It accepts anything
// ParsePreset accepts.
func (p *Preset) UnmarshalText(text []byte) error {
	parsed, err := ParsePreset(string(text))
	if err != nil {
		return err
	}
	*p = parsed
	return nil
}

// ParsePreset resolves an identifier or display name, ignoring case and
// surrounding whitespace.
func ParsePreset(name string) (Preset, error) {
	name = strings.TrimSpace(name)
	for _, p := range presets {
		if strings.EqualFold(name, string(p)) || strings.EqualFold(name, p.DisplayName()) {
			return p, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownPreset, name)
}

// FindPresets returns the presets whose identifier or display name fuzzy
// matches query, best match first. An empty query returns every preset.
func FindPresets(query string) []Preset {
	if strings.TrimSpace(query) == "" {
		return Presets()
	}

	names := make([]string, len(presets))
	for i, p := range presets {
		names[i] = p.DisplayName() + " " + string(p)
	}

	matches := fuzzy.Find(query, names)
	result := make([]Preset, len(matches))
	for i, match := range matches {
		result[i] = presets[match.Index]
	}
	return result
}
