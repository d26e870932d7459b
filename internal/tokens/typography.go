package tokens

import (
	"fmt"
	"strings"
)

// FontWeight is the weight of a text style. The zero value means unset.
type FontWeight int

const (
	WeightUltraLight FontWeight = iota + 1
	WeightThin
	WeightLight
	WeightRegular
	WeightMedium
	WeightSemibold
	WeightBold
	WeightHeavy
	WeightBlack
)

var weightNames = map[FontWeight]string{
	WeightUltraLight: "ultraLight",
	WeightThin:       "thin",
	WeightLight:      "light",
	WeightRegular:    "regular",
	WeightMedium:     "medium",
	WeightSemibold:   "semibold",
	WeightBold:       "bold",
	WeightHeavy:      "heavy",
	WeightBlack:      "black",
}

// Valid reports whether w is one of the declared weights.
func (w FontWeight) Valid() bool {
	_, ok := weightNames[w]
	return ok
}

// Emphasized reports whether the weight renders as bold in a terminal.
// Terminals only know regular and bold, so semibold and above are bold.
func (w FontWeight) Emphasized() bool {
	return w >= WeightSemibold
}

func (w FontWeight) String() string {
	if name, ok := weightNames[w]; ok {
		return name
	}
	return fmt.Sprintf("FontWeight(%d)", int(w))
}

// MarshalText implements encoding.TextMarshaler.
func (w FontWeight) MarshalText() ([]byte, error) {
	if !w.Valid() {
		return nil, fmt.Errorf("invalid font weight %d", int(w))
	}
	return []byte(weightNames[w]), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (w *FontWeight) UnmarshalText(text []byte) error {
	for k, v := range weightNames {
		if strings.EqualFold(v, string(text)) {
			*w = k
			return nil
		}
	}
	return fmt.Errorf("unknown font weight %q", text)
}

// FontDesign is the font family class of a text style. The zero value means
// unset.
type FontDesign int

const (
	DesignDefault FontDesign = iota + 1
	DesignSerif
	DesignRounded
	DesignMonospaced
)

var designNames = map[FontDesign]string{
	DesignDefault:    "default",
	DesignSerif:      "serif",
	DesignRounded:    "rounded",
	DesignMonospaced: "monospaced",
}

// Valid reports whether d is one of the declared designs.
func (d FontDesign) Valid() bool {
	_, ok := designNames[d]
	return ok
}

func (d FontDesign) String() string {
	if name, ok := designNames[d]; ok {
		return name
	}
	return fmt.Sprintf("FontDesign(%d)", int(d))
}

// MarshalText implements encoding.TextMarshaler.
func (d FontDesign) MarshalText() ([]byte, error) {
	if !d.Valid() {
		return nil, fmt.Errorf("invalid font design %d", int(d))
	}
	return []byte(designNames[d]), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (d *FontDesign) UnmarshalText(text []byte) error {
	for k, v := range designNames {
		if strings.EqualFold(v, string(text)) {
			*d = k
			return nil
		}
	}
	return fmt.Errorf("unknown font design %q", text)
}
