// Package export renders a token set for people and tools: a YAML document,
// a flat table, and the system clipboard.
package export

import (
	"errors"
	"fmt"

	"github.com/atotto/clipboard"
	"sigs.k8s.io/yaml"

	"github.com/renato0307/designkit/internal/tokens"
)

// ErrClipboardUnsupported is returned when the platform has no clipboard
// utility.
var ErrClipboardUnsupported = errors.New("clipboard not supported on this system")

// Document is the serialized form of a token set. Maps are emitted with
// sorted keys, so the output is stable.
type Document struct {
	Theme      string               `json:"theme,omitempty"`
	Colors     map[string]Color     `json:"colors"`
	Typography map[string]TextStyle `json:"typography"`
	Spacing    map[string]float64   `json:"spacing"`
	Radii      map[string]float64   `json:"radii"`
	Shadows    map[string]Shadow    `json:"shadows"`
	Glass      Glass                `json:"glass"`
}

type Color struct {
	Light string `json:"light"`
	Dark  string `json:"dark"`
}

type TextStyle struct {
	Size   float64           `json:"size"`
	Weight tokens.FontWeight `json:"weight"`
	Design tokens.FontDesign `json:"design"`
}

type Tint struct {
	Color string  `json:"color"`
	Alpha float64 `json:"alpha"`
}

type Shadow struct {
	Color  Tint    `json:"color"`
	Radius float64 `json:"radius"`
	Y      float64 `json:"y"`
}

type Glass struct {
	Tint       Tint   `json:"tint"`
	StrongTint Tint   `json:"strongTint"`
	Border     Tint   `json:"border"`
	Shadow     Shadow `json:"shadow"`
}

// NewDocument flattens t into its serialized form. name labels the document
// and may be empty.
func NewDocument(name string, t tokens.DesignTokens) Document {
	doc := Document{
		Theme:      name,
		Colors:     make(map[string]Color),
		Typography: make(map[string]TextStyle),
		Spacing:    make(map[string]float64),
		Radii:      make(map[string]float64),
		Shadows:    make(map[string]Shadow),
		Glass: Glass{
			Tint:       tint(t.Glass.Tint),
			StrongTint: tint(t.Glass.StrongTint),
			Border:     tint(t.Glass.Border),
			Shadow:     shadow(t.Glass.Shadow),
		},
	}

	for _, role := range t.Colors.Roles() {
		doc.Colors[role.Name] = Color{Light: role.Color.Light, Dark: role.Color.Dark}
	}
	for _, s := range t.Typography.Styles() {
		doc.Typography[s.Name] = TextStyle{Size: s.Style.Size, Weight: s.Style.Weight, Design: s.Style.Design}
	}
	for _, step := range t.Spacing.Steps() {
		doc.Spacing[step.Name] = step.Value
	}
	for _, step := range t.Radii.Steps() {
		doc.Radii[step.Name] = step.Value
	}
	for _, tier := range t.Shadows.Tiers() {
		doc.Shadows[tier.Name] = shadow(tier.Shadow)
	}

	return doc
}

func tint(t tokens.Tint) Tint {
	return Tint{Color: t.Color, Alpha: t.Alpha}
}

func shadow(s tokens.ShadowToken) Shadow {
	return Shadow{Color: tint(s.Color), Radius: s.Radius, Y: s.Y}
}

// YAML encodes t as a YAML document labelled with name.
func YAML(name string, t tokens.DesignTokens) ([]byte, error) {
	data, err := yaml.Marshal(NewDocument(name, t))
	if err != nil {
		return nil, fmt.Errorf("encode tokens: %w", err)
	}
	return data, nil
}

// writeAll is swapped in tests.
var writeAll = clipboard.WriteAll

// CopyToClipboard copies text to system clipboard and returns a user-friendly message
func CopyToClipboard(text string) (string, error) {
	if clipboard.Unsupported {
		return "", ErrClipboardUnsupported
	}
	if err := writeAll(text); err != nil {
		return "", fmt.Errorf("failed to copy to clipboard: %w", err)
	}
	return fmt.Sprintf("Tokens copied to clipboard (%d bytes)", len(text)), nil
}
