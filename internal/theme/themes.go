package theme

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/renato0307/designkit/internal/tokens"
)

// typeScale builds the shared size ramp with a display design for titles and
// headlines and a text design for everything else.
func typeScale(display, text tokens.FontDesign, emphasis tokens.FontWeight) tokens.TypographyScale {
	style := func(size float64, weight tokens.FontWeight, design tokens.FontDesign) tokens.TextStyle {
		return tokens.TextStyle{Size: size, Weight: weight, Design: design}
	}

	return tokens.TypographyScale{
		TitleLarge:  style(28, emphasis, display),
		TitleMedium: style(22, emphasis, display),
		TitleSmall:  style(18, emphasis, display),

		HeadlineLarge:  style(17, emphasis, display),
		HeadlineMedium: style(15, emphasis, display),
		HeadlineSmall:  style(13, emphasis, display),

		BodyLarge:  style(16, tokens.WeightRegular, text),
		BodyMedium: style(14, tokens.WeightRegular, text),
		BodySmall:  style(12, tokens.WeightRegular, text),

		CaptionLarge: style(11, tokens.WeightRegular, text),
		CaptionSmall: style(10, tokens.WeightRegular, text),

		ButtonLarge:  style(15, tokens.WeightSemibold, text),
		ButtonMedium: style(14, tokens.WeightSemibold, text),
		ButtonSmall:  style(12, tokens.WeightSemibold, text),
	}
}

var standardSpacing = tokens.SpacingScale{
	XS: 4, SM: 8, SMD: 12, MD: 16, MLG: 20, LG: 24, XL: 32, XXLG: 40, XXL: 52,
}

// CleanTheme is a bright, neutral theme with a blue primary and tight radii.
type CleanTheme struct {
	Static
}

// NewClean returns the clean theme.
func NewClean() CleanTheme {
	return CleanTheme{Static: NewStatic(tokens.DesignTokens{
		Colors: tokens.ColorPalette{
			Primary:   lipgloss.AdaptiveColor{Light: "#2563EB", Dark: "#60A5FA"},
			Secondary: lipgloss.AdaptiveColor{Light: "#475569", Dark: "#94A3B8"},
			Accent:    lipgloss.AdaptiveColor{Light: "#0EA5E9", Dark: "#38BDF8"},

			Success: lipgloss.AdaptiveColor{Light: "#16A34A", Dark: "#4ADE80"},
			Warning: lipgloss.AdaptiveColor{Light: "#D97706", Dark: "#FBBF24"},
			Error:   lipgloss.AdaptiveColor{Light: "#DC2626", Dark: "#F87171"},
			Info:    lipgloss.AdaptiveColor{Light: "#0284C7", Dark: "#7DD3FC"},

			BackgroundPrimary:   lipgloss.AdaptiveColor{Light: "#FFFFFF", Dark: "#0F172A"},
			BackgroundSecondary: lipgloss.AdaptiveColor{Light: "#F8FAFC", Dark: "#1E293B"},
			BackgroundTertiary:  lipgloss.AdaptiveColor{Light: "#F1F5F9", Dark: "#334155"},

			TextPrimary:   lipgloss.AdaptiveColor{Light: "#0F172A", Dark: "#F8FAFC"},
			TextSecondary: lipgloss.AdaptiveColor{Light: "#475569", Dark: "#CBD5E1"},
			TextTertiary:  lipgloss.AdaptiveColor{Light: "#94A3B8", Dark: "#64748B"},
			TextOnPrimary: lipgloss.AdaptiveColor{Light: "#FFFFFF", Dark: "#0F172A"},

			Surface:        lipgloss.AdaptiveColor{Light: "#FFFFFF", Dark: "#111827"},
			SurfaceVariant: lipgloss.AdaptiveColor{Light: "#F1F5F9", Dark: "#1F2937"},
			Border:         lipgloss.AdaptiveColor{Light: "#E2E8F0", Dark: "#334155"},
			Divider:        lipgloss.AdaptiveColor{Light: "#F1F5F9", Dark: "#1E293B"},
		},
		Typography: typeScale(tokens.DesignDefault, tokens.DesignDefault, tokens.WeightSemibold),
		Spacing:    standardSpacing,
		Radii: tokens.RadiiScale{
			XS: 4, SM: 6, MD: 10, LG: 14, XL: 20, Pill: tokens.PillRadius,
		},
		Shadows: tokens.ShadowScale{
			Soft:   tokens.ShadowToken{Color: tokens.Black(0.04), Radius: 6, Y: 2},
			Card:   tokens.ShadowToken{Color: tokens.Black(0.08), Radius: 12, Y: 6},
			Lifted: tokens.ShadowToken{Color: tokens.Black(0.12), Radius: 20, Y: 10},
		},
		Glass: tokens.GlassTokens{
			Tint:       tokens.White(0.1),
			StrongTint: tokens.White(0.2),
			Border:     tokens.White(0.4),
			Shadow:     tokens.ShadowToken{Color: tokens.Black(0.08), Radius: 10, Y: 4},
		},
	})}
}

// CloudPetalTheme is the soft pastel theme the "defaultTheme" preset selects.
type CloudPetalTheme struct {
	Static
}

// NewCloudPetal returns the cloud petal theme.
func NewCloudPetal() CloudPetalTheme {
	return CloudPetalTheme{Static: NewStatic(tokens.DesignTokens{
		Colors: tokens.ColorPalette{
			Primary:   lipgloss.AdaptiveColor{Light: "#C2569B", Dark: "#F0A6CA"},
			Secondary: lipgloss.AdaptiveColor{Light: "#7C6FB0", Dark: "#B8AEE8"},
			Accent:    lipgloss.AdaptiveColor{Light: "#4E9FC9", Dark: "#9CD3F0"},

			Success: lipgloss.AdaptiveColor{Light: "#4B9F7A", Dark: "#95D9B8"},
			Warning: lipgloss.AdaptiveColor{Light: "#C98A3D", Dark: "#F3C98B"},
			Error:   lipgloss.AdaptiveColor{Light: "#C9506A", Dark: "#F29BAE"},
			Info:    lipgloss.AdaptiveColor{Light: "#4E9FC9", Dark: "#9CD3F0"},

			BackgroundPrimary:   lipgloss.AdaptiveColor{Light: "#FDF8FB", Dark: "#1C1720"},
			BackgroundSecondary: lipgloss.AdaptiveColor{Light: "#F7EEF4", Dark: "#251F2B"},
			BackgroundTertiary:  lipgloss.AdaptiveColor{Light: "#EFE3EC", Dark: "#2F2836"},

			TextPrimary:   lipgloss.AdaptiveColor{Light: "#2E2433", Dark: "#F6EEF5"},
			TextSecondary: lipgloss.AdaptiveColor{Light: "#66586D", Dark: "#CBBED0"},
			TextTertiary:  lipgloss.AdaptiveColor{Light: "#9A8BA1", Dark: "#8D7F93"},
			TextOnPrimary: lipgloss.AdaptiveColor{Light: "#FFFFFF", Dark: "#2E2433"},

			Surface:        lipgloss.AdaptiveColor{Light: "#FFFFFF", Dark: "#221C27"},
			SurfaceVariant: lipgloss.AdaptiveColor{Light: "#F9F1F7", Dark: "#2B2431"},
			Border:         lipgloss.AdaptiveColor{Light: "#E8D8E4", Dark: "#3D3444"},
			Divider:        lipgloss.AdaptiveColor{Light: "#F0E5EE", Dark: "#322A38"},
		},
		Typography: typeScale(tokens.DesignRounded, tokens.DesignRounded, tokens.WeightSemibold),
		Spacing:    standardSpacing,
		Radii: tokens.RadiiScale{
			XS: 10, SM: 14, MD: 20, LG: 28, XL: 36, Pill: tokens.PillRadius,
		},
		Shadows: tokens.ShadowScale{
			Soft:   tokens.ShadowToken{Color: tokens.Tint{Color: "#7A3E66", Alpha: 0.06}, Radius: 10, Y: 4},
			Card:   tokens.ShadowToken{Color: tokens.Tint{Color: "#7A3E66", Alpha: 0.10}, Radius: 18, Y: 8},
			Lifted: tokens.ShadowToken{Color: tokens.Tint{Color: "#7A3E66", Alpha: 0.14}, Radius: 26, Y: 12},
		},
		Glass: tokens.GlassTokens{
			Tint:       tokens.White(0.18),
			StrongTint: tokens.White(0.3),
			Border:     tokens.White(0.6),
			Shadow:     tokens.ShadowToken{Color: tokens.Tint{Color: "#7A3E66", Alpha: 0.1}, Radius: 14, Y: 6},
		},
	})}
}

// EditorialGardenTheme pairs serif display type with muted greens.
type EditorialGardenTheme struct {
	Static
}

// NewEditorialGarden returns the editorial garden theme.
func NewEditorialGarden() EditorialGardenTheme {
	return EditorialGardenTheme{Static: NewStatic(tokens.DesignTokens{
		Colors: tokens.ColorPalette{
			Primary:   lipgloss.AdaptiveColor{Light: "#2F5D46", Dark: "#8CC5A5"},
			Secondary: lipgloss.AdaptiveColor{Light: "#8A6A45", Dark: "#D2B48C"},
			Accent:    lipgloss.AdaptiveColor{Light: "#B4533C", Dark: "#E8967F"},

			Success: lipgloss.AdaptiveColor{Light: "#3E7B4F", Dark: "#8FD0A0"},
			Warning: lipgloss.AdaptiveColor{Light: "#A8741A", Dark: "#E4B86A"},
			Error:   lipgloss.AdaptiveColor{Light: "#A63D32", Dark: "#E38A7E"},
			Info:    lipgloss.AdaptiveColor{Light: "#3E6E8E", Dark: "#8DB9D6"},

			BackgroundPrimary:   lipgloss.AdaptiveColor{Light: "#F7F4EC", Dark: "#141A16"},
			BackgroundSecondary: lipgloss.AdaptiveColor{Light: "#EFEADD", Dark: "#1C241F"},
			BackgroundTertiary:  lipgloss.AdaptiveColor{Light: "#E5DECC", Dark: "#253029"},

			TextPrimary:   lipgloss.AdaptiveColor{Light: "#1E2A22", Dark: "#EEF1E8"},
			TextSecondary: lipgloss.AdaptiveColor{Light: "#4F5E53", Dark: "#BFC9BC"},
			TextTertiary:  lipgloss.AdaptiveColor{Light: "#85907F", Dark: "#7F8B7C"},
			TextOnPrimary: lipgloss.AdaptiveColor{Light: "#F7F4EC", Dark: "#141A16"},

			Surface:        lipgloss.AdaptiveColor{Light: "#FBF9F3", Dark: "#19201B"},
			SurfaceVariant: lipgloss.AdaptiveColor{Light: "#F1ECE0", Dark: "#212A24"},
			Border:         lipgloss.AdaptiveColor{Light: "#D9D1BE", Dark: "#35423A"},
			Divider:        lipgloss.AdaptiveColor{Light: "#E7E0CF", Dark: "#2A352E"},
		},
		Typography: typeScale(tokens.DesignSerif, tokens.DesignDefault, tokens.WeightMedium),
		Spacing: tokens.SpacingScale{
			XS: 4, SM: 8, SMD: 12, MD: 18, MLG: 22, LG: 28, XL: 36, XXLG: 44, XXL: 56,
		},
		Radii: tokens.RadiiScale{
			XS: 6, SM: 10, MD: 14, LG: 20, XL: 28, Pill: tokens.PillRadius,
		},
		Shadows: tokens.ShadowScale{
			Soft:   tokens.ShadowToken{Color: tokens.Tint{Color: "#1E2A22", Alpha: 0.05}, Radius: 8, Y: 3},
			Card:   tokens.ShadowToken{Color: tokens.Tint{Color: "#1E2A22", Alpha: 0.10}, Radius: 14, Y: 6},
			Lifted: tokens.ShadowToken{Color: tokens.Tint{Color: "#1E2A22", Alpha: 0.14}, Radius: 20, Y: 10},
		},
		Glass: tokens.GlassTokens{
			Tint:       tokens.Tint{Color: "#F7F4EC", Alpha: 0.14},
			StrongTint: tokens.Tint{Color: "#F7F4EC", Alpha: 0.26},
			Border:     tokens.Tint{Color: "#F7F4EC", Alpha: 0.5},
			Shadow:     tokens.ShadowToken{Color: tokens.Tint{Color: "#1E2A22", Alpha: 0.1}, Radius: 12, Y: 6},
		},
	})}
}

// PorcelainTechTheme is a cool, precise theme with monospaced text.
type PorcelainTechTheme struct {
	Static
}

// NewPorcelainTech returns the porcelain tech theme.
func NewPorcelainTech() PorcelainTechTheme {
	return PorcelainTechTheme{Static: NewStatic(tokens.DesignTokens{
		Colors: tokens.ColorPalette{
			Primary:   lipgloss.AdaptiveColor{Light: "#1D4ED8", Dark: "#93B4FF"},
			Secondary: lipgloss.AdaptiveColor{Light: "#52606D", Dark: "#A9B6C2"},
			Accent:    lipgloss.AdaptiveColor{Light: "#0F766E", Dark: "#5EEAD4"},

			Success: lipgloss.AdaptiveColor{Light: "#15803D", Dark: "#86EFAC"},
			Warning: lipgloss.AdaptiveColor{Light: "#B45309", Dark: "#FCD34D"},
			Error:   lipgloss.AdaptiveColor{Light: "#B91C1C", Dark: "#FCA5A5"},
			Info:    lipgloss.AdaptiveColor{Light: "#1D4ED8", Dark: "#93B4FF"},

			BackgroundPrimary:   lipgloss.AdaptiveColor{Light: "#F5F7FA", Dark: "#0B0F14"},
			BackgroundSecondary: lipgloss.AdaptiveColor{Light: "#EBEFF4", Dark: "#121821"},
			BackgroundTertiary:  lipgloss.AdaptiveColor{Light: "#DFE5EC", Dark: "#1A222D"},

			TextPrimary:   lipgloss.AdaptiveColor{Light: "#111827", Dark: "#E5EBF2"},
			TextSecondary: lipgloss.AdaptiveColor{Light: "#3F4B59", Dark: "#AEB9C6"},
			TextTertiary:  lipgloss.AdaptiveColor{Light: "#7B8794", Dark: "#6B7785"},
			TextOnPrimary: lipgloss.AdaptiveColor{Light: "#FFFFFF", Dark: "#0B0F14"},

			Surface:        lipgloss.AdaptiveColor{Light: "#FFFFFF", Dark: "#10151C"},
			SurfaceVariant: lipgloss.AdaptiveColor{Light: "#EEF2F6", Dark: "#171E27"},
			Border:         lipgloss.AdaptiveColor{Light: "#CBD3DC", Dark: "#2A3441"},
			Divider:        lipgloss.AdaptiveColor{Light: "#DDE3EA", Dark: "#1F2833"},
		},
		Typography: typeScale(tokens.DesignDefault, tokens.DesignMonospaced, tokens.WeightBold),
		Spacing:    standardSpacing,
		Radii: tokens.RadiiScale{
			XS: 2, SM: 4, MD: 8, LG: 12, XL: 16, Pill: tokens.PillRadius,
		},
		Shadows: tokens.ShadowScale{
			Soft:   tokens.ShadowToken{Color: tokens.Tint{Color: "#0B1F3A", Alpha: 0.05}, Radius: 4, Y: 2},
			Card:   tokens.ShadowToken{Color: tokens.Tint{Color: "#0B1F3A", Alpha: 0.10}, Radius: 10, Y: 4},
			Lifted: tokens.ShadowToken{Color: tokens.Tint{Color: "#0B1F3A", Alpha: 0.16}, Radius: 18, Y: 8},
		},
		Glass: tokens.GlassTokens{
			Tint:       tokens.Tint{Color: "#E5EBF2", Alpha: 0.1},
			StrongTint: tokens.Tint{Color: "#E5EBF2", Alpha: 0.2},
			Border:     tokens.Tint{Color: "#E5EBF2", Alpha: 0.45},
			Shadow:     tokens.ShadowToken{Color: tokens.Tint{Color: "#0B1F3A", Alpha: 0.12}, Radius: 10, Y: 4},
		},
	})}
}

// BotanicalLuxeTheme is a deep green and gold theme with serif type.
type BotanicalLuxeTheme struct {
	Static
}

// NewBotanicalLuxe returns the botanical luxe theme.
func NewBotanicalLuxe() BotanicalLuxeTheme {
	return BotanicalLuxeTheme{Static: NewStatic(tokens.DesignTokens{
		Colors: tokens.ColorPalette{
			Primary:   lipgloss.AdaptiveColor{Light: "#0E4D3A", Dark: "#D4AF37"},
			Secondary: lipgloss.AdaptiveColor{Light: "#9C7A2B", Dark: "#7FB89C"},
			Accent:    lipgloss.AdaptiveColor{Light: "#7A2E4A", Dark: "#E39AB6"},

			Success: lipgloss.AdaptiveColor{Light: "#1E7A4E", Dark: "#7ED3A5"},
			Warning: lipgloss.AdaptiveColor{Light: "#A66B00", Dark: "#F2C15C"},
			Error:   lipgloss.AdaptiveColor{Light: "#9E2A2B", Dark: "#EC8F8F"},
			Info:    lipgloss.AdaptiveColor{Light: "#2B5F75", Dark: "#8EC4DB"},

			BackgroundPrimary:   lipgloss.AdaptiveColor{Light: "#F6F2E7", Dark: "#0B1A14"},
			BackgroundSecondary: lipgloss.AdaptiveColor{Light: "#ECE5D2", Dark: "#10241C"},
			BackgroundTertiary:  lipgloss.AdaptiveColor{Light: "#E0D6BD", Dark: "#163026"},

			TextPrimary:   lipgloss.AdaptiveColor{Light: "#14251E", Dark: "#F3EBD3"},
			TextSecondary: lipgloss.AdaptiveColor{Light: "#3F5148", Dark: "#CFC3A2"},
			TextTertiary:  lipgloss.AdaptiveColor{Light: "#7A867F", Dark: "#8A8A70"},
			TextOnPrimary: lipgloss.AdaptiveColor{Light: "#F6F2E7", Dark: "#0B1A14"},

			Surface:        lipgloss.AdaptiveColor{Light: "#FBF8EF", Dark: "#0F2019"},
			SurfaceVariant: lipgloss.AdaptiveColor{Light: "#F0E9D6", Dark: "#142A21"},
			Border:         lipgloss.AdaptiveColor{Light: "#D3C6A2", Dark: "#2D4A3C"},
			Divider:        lipgloss.AdaptiveColor{Light: "#E4DAC0", Dark: "#1E382D"},
		},
		Typography: typeScale(tokens.DesignSerif, tokens.DesignSerif, tokens.WeightSemibold),
		Spacing: tokens.SpacingScale{
			XS: 4, SM: 8, SMD: 12, MD: 16, MLG: 20, LG: 28, XL: 36, XXLG: 48, XXL: 60,
		},
		Radii: tokens.RadiiScale{
			XS: 8, SM: 12, MD: 16, LG: 22, XL: 30, Pill: tokens.PillRadius,
		},
		Shadows: tokens.ShadowScale{
			Soft:   tokens.ShadowToken{Color: tokens.Tint{Color: "#0B1A14", Alpha: 0.08}, Radius: 10, Y: 4},
			Card:   tokens.ShadowToken{Color: tokens.Tint{Color: "#0B1A14", Alpha: 0.14}, Radius: 18, Y: 8},
			Lifted: tokens.ShadowToken{Color: tokens.Tint{Color: "#0B1A14", Alpha: 0.2}, Radius: 26, Y: 14},
		},
		Glass: tokens.GlassTokens{
			Tint:       tokens.Tint{Color: "#F3EBD3", Alpha: 0.12},
			StrongTint: tokens.Tint{Color: "#F3EBD3", Alpha: 0.24},
			Border:     tokens.Tint{Color: "#D4AF37", Alpha: 0.45},
			Shadow:     tokens.ShadowToken{Color: tokens.Tint{Color: "#0B1A14", Alpha: 0.16}, Radius: 14, Y: 6},
		},
	})}
}
