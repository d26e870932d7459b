package appearance

import (
	"bytes"
	"io"
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/renato0307/designkit/internal/theme"
	"github.com/renato0307/designkit/internal/tokens"
)

func colorRenderer() *lipgloss.Renderer {
	r := lipgloss.NewRenderer(io.Discard)
	r.SetColorProfile(termenv.TrueColor)
	r.SetHasDarkBackground(true)
	return r
}

func restoreChrome(t *testing.T) {
	t.Helper()
	saved := current.Load()
	t.Cleanup(func() { current.Store(saved) })
}

func TestBuild(t *testing.T) {
	tok := theme.NewDefault().Tokens()
	c := Build(colorRenderer(), tok)

	assert.Equal(t, tok.Colors.TextPrimary, c.Navigation.Title.GetForeground())
	assert.Equal(t, tok.Colors.TextPrimary, c.Navigation.LargeTitle.GetForeground())
	assert.True(t, c.Navigation.Title.GetBold())
	assert.True(t, c.Navigation.LargeTitle.GetBold())
	assert.Equal(t, tok.Colors.Primary, c.Navigation.Tint)
	assert.False(t, c.Navigation.Bar.GetBorderBottom())
	assert.Equal(t, 2, c.Navigation.Bar.GetPaddingLeft())

	assert.Equal(t, tok.Colors.TextTertiary, c.Tabs.Normal.GetForeground())
	assert.False(t, c.Tabs.Normal.GetBold())
	assert.Equal(t, tok.Colors.Primary, c.Tabs.Selected.GetForeground())
	assert.True(t, c.Tabs.Selected.GetBold())
	assert.Equal(t, tok.Colors.Divider, c.Tabs.Divider.GetBorderTopForeground())
	assert.Equal(t, tok.Colors.Primary, c.Tabs.Tint)
}

func TestBuildFollowsWeights(t *testing.T) {
	tok := theme.NewDefault().Tokens()
	tok.Typography.HeadlineLarge.Weight = tokens.WeightRegular

	c := Build(colorRenderer(), tok)
	assert.False(t, c.Navigation.Title.GetBold())
}

func TestTerminalApplyInstallsChrome(t *testing.T) {
	restoreChrome(t)

	tok := theme.NewEditorialGarden().Tokens()
	NewTerminal(colorRenderer()).Apply(tok)

	got := Current()
	assert.Equal(t, tok.Colors.Primary, got.Tabs.Selected.GetForeground())
	assert.Equal(t, tok.Colors.TextPrimary, got.Navigation.Title.GetForeground())
}

func TestNoopLeavesChromeUntouched(t *testing.T) {
	restoreChrome(t)

	before := Current()
	Noop{}.Apply(theme.NewClean().Tokens())
	after := Current()

	assert.Equal(t, before.Tabs.Selected.GetForeground(), after.Tabs.Selected.GetForeground())
	assert.Equal(t, before.Navigation.Tint, after.Navigation.Tint)
}

func TestApplierFunc(t *testing.T) {
	var got tokens.DesignTokens
	var a Applier = ApplierFunc(func(tok tokens.DesignTokens) { got = tok })

	want := theme.NewPorcelainTech().Tokens()
	a.Apply(want)
	assert.Equal(t, want, got)
}

func TestForOutputWithoutColor(t *testing.T) {
	t.Setenv("CLICOLOR_FORCE", "")

	assert.IsType(t, Noop{}, ForOutput(&bytes.Buffer{}))
}

func TestSupported(t *testing.T) {
	r := lipgloss.NewRenderer(io.Discard)
	r.SetColorProfile(termenv.Ascii)
	assert.False(t, Supported(r))

	assert.True(t, Supported(colorRenderer()))
}

func TestRenderTabs(t *testing.T) {
	c := Build(colorRenderer(), theme.NewDefault().Tokens())

	out := c.RenderTabs([]string{"colors", "type", "spacing"}, 1)
	require.NotEmpty(t, out)
	assert.Contains(t, out, "colors")
	assert.Contains(t, out, "spacing")
	assert.Contains(t, out, "─")
}

func TestRenderNavigation(t *testing.T) {
	c := Build(colorRenderer(), theme.NewDefault().Tokens())

	out := c.RenderNavigation("Settings", 30)
	assert.Contains(t, out, "Settings")
	assert.Equal(t, 30, lipgloss.Width(out))
}
