// Package tokens defines the design token model: the typed, immutable values
// (colors, type scale, spacing, radii, shadows and translucency) that make up
// a visual theme.
//
// Every type in this package is a comparable value. Two token sets built from
// the same theme constructor compare equal with ==.
package tokens

import "github.com/charmbracelet/lipgloss"

// PillRadius is the sentinel corner radius for fully rounded (capsule) shapes.
// It is far larger than any element a theme will size.
const PillRadius = 999

// DesignTokens aggregates the six sub-scales of a theme.
type DesignTokens struct {
	Colors     ColorPalette
	Typography TypographyScale
	Spacing    SpacingScale
	Radii      RadiiScale
	Shadows    ShadowScale
	Glass      GlassTokens
}

// ColorPalette holds the semantic color roles. Each role adapts to the
// terminal background through lipgloss.
type ColorPalette struct {
	Primary   lipgloss.AdaptiveColor
	Secondary lipgloss.AdaptiveColor
	Accent    lipgloss.AdaptiveColor

	Success lipgloss.AdaptiveColor
	Warning lipgloss.AdaptiveColor
	Error   lipgloss.AdaptiveColor
	Info    lipgloss.AdaptiveColor

	BackgroundPrimary   lipgloss.AdaptiveColor
	BackgroundSecondary lipgloss.AdaptiveColor
	BackgroundTertiary  lipgloss.AdaptiveColor

	TextPrimary   lipgloss.AdaptiveColor
	TextSecondary lipgloss.AdaptiveColor
	TextTertiary  lipgloss.AdaptiveColor
	TextOnPrimary lipgloss.AdaptiveColor

	Surface        lipgloss.AdaptiveColor
	SurfaceVariant lipgloss.AdaptiveColor
	Border         lipgloss.AdaptiveColor
	Divider        lipgloss.AdaptiveColor
}

// NamedColor pairs a color role with its name.
type NamedColor struct {
	Name  string
	Color lipgloss.AdaptiveColor
}

// Roles returns every color role in declaration order.
func (p ColorPalette) Roles() []NamedColor {
	return []NamedColor{
		{"primary", p.Primary},
		{"secondary", p.Secondary},
		{"accent", p.Accent},
		{"success", p.Success},
		{"warning", p.Warning},
		{"error", p.Error},
		{"info", p.Info},
		{"backgroundPrimary", p.BackgroundPrimary},
		{"backgroundSecondary", p.BackgroundSecondary},
		{"backgroundTertiary", p.BackgroundTertiary},
		{"textPrimary", p.TextPrimary},
		{"textSecondary", p.TextSecondary},
		{"textTertiary", p.TextTertiary},
		{"textOnPrimary", p.TextOnPrimary},
		{"surface", p.Surface},
		{"surfaceVariant", p.SurfaceVariant},
		{"border", p.Border},
		{"divider", p.Divider},
	}
}

// TextStyle is one entry of the type scale. Size is in points.
type TextStyle struct {
	Size   float64
	Weight FontWeight
	Design FontDesign
}

// TypographyScale holds the named text styles.
type TypographyScale struct {
	TitleLarge  TextStyle
	TitleMedium TextStyle
	TitleSmall  TextStyle

	HeadlineLarge  TextStyle
	HeadlineMedium TextStyle
	HeadlineSmall  TextStyle

	BodyLarge  TextStyle
	BodyMedium TextStyle
	BodySmall  TextStyle

	CaptionLarge TextStyle
	CaptionSmall TextStyle

	ButtonLarge  TextStyle
	ButtonMedium TextStyle
	ButtonSmall  TextStyle
}

// NamedTextStyle pairs a text style with its name.
type NamedTextStyle struct {
	Name  string
	Style TextStyle
}

// Styles returns every text style in declaration order.
func (s TypographyScale) Styles() []NamedTextStyle {
	return []NamedTextStyle{
		{"titleLarge", s.TitleLarge},
		{"titleMedium", s.TitleMedium},
		{"titleSmall", s.TitleSmall},
		{"headlineLarge", s.HeadlineLarge},
		{"headlineMedium", s.HeadlineMedium},
		{"headlineSmall", s.HeadlineSmall},
		{"bodyLarge", s.BodyLarge},
		{"bodyMedium", s.BodyMedium},
		{"bodySmall", s.BodySmall},
		{"captionLarge", s.CaptionLarge},
		{"captionSmall", s.CaptionSmall},
		{"buttonLarge", s.ButtonLarge},
		{"buttonMedium", s.ButtonMedium},
		{"buttonSmall", s.ButtonSmall},
	}
}

// SpacingScale is the ordered spacing ramp, smallest first.
type SpacingScale struct {
	XS   float64
	SM   float64
	SMD  float64
	MD   float64
	MLG  float64
	LG   float64
	XL   float64
	XXLG float64
	XXL  float64
}

// NamedValue pairs a numeric token with its name.
type NamedValue struct {
	Name  string
	Value float64
}

// Steps returns the spacing steps in ascending order.
func (s SpacingScale) Steps() []NamedValue {
	return []NamedValue{
		{"xs", s.XS},
		{"sm", s.SM},
		{"smd", s.SMD},
		{"md", s.MD},
		{"mlg", s.MLG},
		{"lg", s.LG},
		{"xl", s.XL},
		{"xxlg", s.XXLG},
		{"xxl", s.XXL},
	}
}

// RadiiScale holds the corner radius steps and the pill sentinel.
type RadiiScale struct {
	XS   float64
	SM   float64
	MD   float64
	LG   float64
	XL   float64
	Pill float64
}

// Steps returns the radius steps, pill last.
func (r RadiiScale) Steps() []NamedValue {
	return []NamedValue{
		{"xs", r.XS},
		{"sm", r.SM},
		{"md", r.MD},
		{"lg", r.LG},
		{"xl", r.XL},
		{"pill", r.Pill},
	}
}

// ShadowToken describes one elevation: a translucent color, a blur radius
// and a vertical offset, all in points.
type ShadowToken struct {
	Color  Tint
	Radius float64
	Y      float64
}

// ShadowScale holds the elevation tiers from lowest to highest.
type ShadowScale struct {
	Soft   ShadowToken
	Card   ShadowToken
	Lifted ShadowToken
}

// NamedShadow pairs a shadow tier with its name.
type NamedShadow struct {
	Name   string
	Shadow ShadowToken
}

// Tiers returns the shadow tiers from lowest to highest.
func (s ShadowScale) Tiers() []NamedShadow {
	return []NamedShadow{
		{"soft", s.Soft},
		{"card", s.Card},
		{"lifted", s.Lifted},
	}
}

// GlassTokens parameterize translucent ("glass") surfaces.
type GlassTokens struct {
	Tint       Tint
	StrongTint Tint
	Border     Tint
	Shadow     ShadowToken
}

// Cells converts a point measure into terminal cells, 8pt per cell, rounding
// half up. Negative measures yield zero.
func Cells(points float64) int {
	if points <= 0 {
		return 0
	}
	return int(points/8 + 0.5)
}
