package theme

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/renato0307/designkit/internal/tokens"
)

// DefaultTheme is the built-in theme: a calm, minimal, monospaced look.
// The registry starts with it and the classicMono preset selects it.
type DefaultTheme struct {
	Static
}

// NewDefault returns the built-in default theme.
func NewDefault() DefaultTheme {
	colors := tokens.ColorPalette{
		Primary:   lipgloss.AdaptiveColor{Light: "#1F1F1F", Dark: "#F2F2F2"},
		Secondary: lipgloss.AdaptiveColor{Light: "#5C5C5C", Dark: "#B8B8B8"},
		Accent:    lipgloss.AdaptiveColor{Light: "#3B6EA8", Dark: "#7FA7D6"},

		Success: lipgloss.AdaptiveColor{Light: "#2F7D4F", Dark: "#6CC08B"},
		Warning: lipgloss.AdaptiveColor{Light: "#B7791F", Dark: "#E8B65A"},
		Error:   lipgloss.AdaptiveColor{Light: "#B83A3A", Dark: "#E47C7C"},
		Info:    lipgloss.AdaptiveColor{Light: "#3B6EA8", Dark: "#7FA7D6"},

		BackgroundPrimary:   lipgloss.AdaptiveColor{Light: "#FAFAF8", Dark: "#121212"},
		BackgroundSecondary: lipgloss.AdaptiveColor{Light: "#F1F1EE", Dark: "#1B1B1B"},
		BackgroundTertiary:  lipgloss.AdaptiveColor{Light: "#E7E7E3", Dark: "#242424"},

		TextPrimary:   lipgloss.AdaptiveColor{Light: "#1F1F1F", Dark: "#F2F2F2"},
		TextSecondary: lipgloss.AdaptiveColor{Light: "#5C5C5C", Dark: "#B8B8B8"},
		TextTertiary:  lipgloss.AdaptiveColor{Light: "#8A8A8A", Dark: "#7A7A7A"},
		// white on the light primary, the light text color on the dark one
		TextOnPrimary: lipgloss.AdaptiveColor{Light: "#FFFFFF", Dark: "#1F1F1F"},

		Surface:        lipgloss.AdaptiveColor{Light: "#FFFFFF", Dark: "#1A1A1A"},
		SurfaceVariant: lipgloss.AdaptiveColor{Light: "#F4F4F1", Dark: "#222222"},
		Border:         lipgloss.AdaptiveColor{Light: "#D6D6D1", Dark: "#3A3A3A"},
		Divider:        lipgloss.AdaptiveColor{Light: "#E4E4DF", Dark: "#2C2C2C"},
	}

	mono := func(size float64, weight tokens.FontWeight) tokens.TextStyle {
		return tokens.TextStyle{Size: size, Weight: weight, Design: tokens.DesignMonospaced}
	}

	typography := tokens.TypographyScale{
		TitleLarge:  mono(26, tokens.WeightSemibold),
		TitleMedium: mono(22, tokens.WeightSemibold),
		TitleSmall:  mono(18, tokens.WeightSemibold),

		HeadlineLarge:  mono(17, tokens.WeightSemibold),
		HeadlineMedium: mono(15, tokens.WeightSemibold),
		HeadlineSmall:  mono(13, tokens.WeightSemibold),

		BodyLarge:  mono(15, tokens.WeightRegular),
		BodyMedium: mono(13, tokens.WeightRegular),
		BodySmall:  mono(12, tokens.WeightRegular),

		CaptionLarge: mono(11, tokens.WeightRegular),
		CaptionSmall: mono(10, tokens.WeightRegular),

		ButtonLarge:  mono(14, tokens.WeightSemibold),
		ButtonMedium: mono(13, tokens.WeightSemibold),
		ButtonSmall:  mono(12, tokens.WeightSemibold),
	}

	return DefaultTheme{Static: NewStatic(tokens.DesignTokens{
		Colors:     colors,
		Typography: typography,
		Spacing: tokens.SpacingScale{
			XS: 4, SM: 8, SMD: 12, MD: 16, MLG: 20, LG: 24, XL: 32, XXLG: 40, XXL: 52,
		},
		Radii: tokens.RadiiScale{
			XS: 8, SM: 12, MD: 18, LG: 24, XL: 32, Pill: tokens.PillRadius,
		},
		Shadows: tokens.ShadowScale{
			Soft:   tokens.ShadowToken{Color: tokens.Black(0.06), Radius: 8, Y: 4},
			Card:   tokens.ShadowToken{Color: tokens.Black(0.12), Radius: 16, Y: 8},
			Lifted: tokens.ShadowToken{Color: tokens.Black(0.16), Radius: 22, Y: 12},
		},
		Glass: tokens.GlassTokens{
			Tint:       tokens.White(0.12),
			StrongTint: tokens.White(0.22),
			Border:     tokens.White(0.5),
			Shadow:     tokens.ShadowToken{Color: tokens.Black(0.12), Radius: 12, Y: 6},
		},
	})}
}
