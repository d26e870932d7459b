package tokens

import (
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCells(t *testing.T) {
	tests := []struct {
		points float64
		want   int
	}{
		{-4, 0},
		{0, 0},
		{3, 0},
		{4, 1},
		{8, 1},
		{12, 2},
		{16, 2},
		{52, 7},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, Cells(tt.points), "Cells(%v)", tt.points)
	}
}

func TestTintOver(t *testing.T) {
	tests := []struct {
		name string
		tint Tint
		bg   string
		want lipgloss.Color
	}{
		{"transparent keeps background", Black(0), "#ffffff", "#ffffff"},
		{"opaque replaces background", Black(1), "#ffffff", "#000000"},
		{"half black over white", Black(0.5), "#ffffff", "#808080"},
		{"alpha above one is clamped", White(3), "#000000", "#ffffff"},
		{"alpha below zero is clamped", White(-1), "#000000", "#000000"},
		{"clear tint needs no color", Clear(), "#336699", "#336699"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := tt.tint.Over(tt.bg)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestTintOverInvalidColors(t *testing.T) {
	_, err := Black(0.5).Over("235")
	assert.Error(t, err)

	_, err = Tint{Color: "white", Alpha: 0.5}.Over("#000000")
	assert.Error(t, err)
}

func TestTintString(t *testing.T) {
	assert.Equal(t, "#000000@0.12", Black(0.12).String())
	assert.Equal(t, "clear", Clear().String())
	assert.True(t, Black(0).Transparent())
	assert.False(t, White(0.01).Transparent())
}

func TestTintAdaptive(t *testing.T) {
	got, err := Black(1).Adaptive(lipgloss.AdaptiveColor{Light: "#ffffff", Dark: "#202020"})
	require.NoError(t, err)
	assert.Equal(t, lipgloss.AdaptiveColor{Light: "#000000", Dark: "#000000"}, got)

	_, err = Black(1).Adaptive(lipgloss.AdaptiveColor{Light: "#ffffff", Dark: "nope"})
	assert.Error(t, err)
}

func TestStepsOrder(t *testing.T) {
	s := SpacingScale{XS: 1, SM: 2, SMD: 3, MD: 4, MLG: 5, LG: 6, XL: 7, XXLG: 8, XXL: 9}
	steps := s.Steps()
	require.Len(t, steps, 9)
	assert.Equal(t, "xs", steps[0].Name)
	assert.Equal(t, "xxl", steps[8].Name)
	for i, step := range steps {
		assert.Equal(t, float64(i+1), step.Value)
	}

	r := RadiiScale{XS: 1, SM: 2, MD: 3, LG: 4, XL: 5, Pill: PillRadius}
	radii := r.Steps()
	require.Len(t, radii, 6)
	assert.Equal(t, NamedValue{"pill", 999}, radii[5])

	assert.Len(t, ColorPalette{}.Roles(), 18)
	assert.Len(t, TypographyScale{}.Styles(), 14)
	assert.Len(t, ShadowScale{}.Tiers(), 3)
}

func TestFontWeightText(t *testing.T) {
	b, err := WeightSemibold.MarshalText()
	require.NoError(t, err)
	assert.Equal(t, "semibold", string(b))

	var w FontWeight
	require.NoError(t, w.UnmarshalText([]byte("Bold")))
	assert.Equal(t, WeightBold, w)

	assert.Error(t, w.UnmarshalText([]byte("extra")))

	_, err = FontWeight(0).MarshalText()
	assert.Error(t, err)
	assert.Equal(t, "FontWeight(0)", FontWeight(0).String())
}

func TestFontWeightEmphasized(t *testing.T) {
	assert.False(t, WeightRegular.Emphasized())
	assert.False(t, WeightMedium.Emphasized())
	assert.True(t, WeightSemibold.Emphasized())
	assert.True(t, WeightBlack.Emphasized())
}

func TestFontDesignText(t *testing.T) {
	b, err := DesignMonospaced.MarshalText()
	require.NoError(t, err)
	assert.Equal(t, "monospaced", string(b))

	var d FontDesign
	require.NoError(t, d.UnmarshalText([]byte("serif")))
	assert.Equal(t, DesignSerif, d)
	assert.Error(t, d.UnmarshalText([]byte("script")))
	assert.False(t, FontDesign(42).Valid())
}
