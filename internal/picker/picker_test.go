package picker

import (
	"errors"
	"io"
	"testing"
	"time"

	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/renato0307/designkit/internal/export"
	"github.com/renato0307/designkit/internal/keyboard"
	"github.com/renato0307/designkit/internal/testutil"
	"github.com/renato0307/designkit/internal/theme"
	"github.com/renato0307/designkit/internal/types"
	"github.com/renato0307/designkit/internal/ui"
)

func newModel(current theme.Preset) *Model {
	r := lipgloss.NewRenderer(io.Discard)
	r.SetColorProfile(termenv.Ascii)
	styles := ui.New(r, theme.NewDefault().Tokens())
	return New(r, styles, current, keyboard.Default())
}

func runes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func assertQuit(t *testing.T, cmd tea.Cmd) {
	t.Helper()
	require.NotNil(t, cmd)
	assert.IsType(t, tea.QuitMsg{}, cmd())
}

func TestSelectHighlightedPreset(t *testing.T) {
	m := newModel(theme.PresetEditorialGarden)

	_, ok := m.Selected()
	assert.False(t, ok)

	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	assertQuit(t, cmd)

	p, ok := m.Selected()
	assert.True(t, ok)
	assert.Equal(t, theme.PresetEditorialGarden, p)
}

func TestMoveThenSelect(t *testing.T) {
	m := newModel(theme.PresetClean)

	m.Update(runes("j"))
	m.Update(runes("j"))
	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	assertQuit(t, cmd)

	p, ok := m.Selected()
	require.True(t, ok)
	assert.Equal(t, theme.Presets()[2], p)
}

func TestCancel(t *testing.T) {
	tests := []struct {
		name string
		key  tea.KeyMsg
	}{
		{name: "esc", key: tea.KeyMsg{Type: tea.KeyEsc}},
		{name: "ctrl+c", key: tea.KeyMsg{Type: tea.KeyCtrlC}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := newModel(theme.PresetClean)

			_, cmd := m.Update(tt.key)
			assertQuit(t, cmd)

			_, ok := m.Selected()
			assert.False(t, ok)
		})
	}
}

func TestEscWhileFilteringDoesNotQuit(t *testing.T) {
	m := newModel(theme.PresetClean)

	m.Update(runes("/"))
	require.Equal(t, list.Filtering, m.list.FilterState())

	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEsc})
	if cmd != nil {
		assert.NotEqual(t, tea.QuitMsg{}, cmd())
	}
	assert.Equal(t, list.Unfiltered, m.list.FilterState())

	_, ok := m.Selected()
	assert.False(t, ok)
}

func TestViewShowsPreview(t *testing.T) {
	m := newModel(theme.PresetBotanicalLuxe)
	m.Update(tea.WindowSizeMsg{Width: 100, Height: 30})

	view := m.View()
	assert.Contains(t, view, "Select Theme")
	assert.Contains(t, view, "Botanical Luxe")
	assert.Contains(t, view, "botanicalLuxe")
	assert.Contains(t, view, "Card")
	assert.Contains(t, view, "Glass")
	assert.Contains(t, view, "Settings")
	assert.Contains(t, view, "enter select")
}

func TestStatusMessageShown(t *testing.T) {
	m := newModel(theme.PresetClean)

	m.Update(types.SuccessMsg("Tokens copied"))
	assert.Contains(t, m.View(), "Tokens copied")
}

func stubClipboard(t *testing.T, err error) *string {
	t.Helper()
	var copied string
	orig := copyToClipboard
	copyToClipboard = func(text string) (string, error) {
		if err != nil {
			return "", err
		}
		copied = text
		return "Tokens copied", nil
	}
	t.Cleanup(func() { copyToClipboard = orig })
	return &copied
}

func TestCopyShowsLoadingThenResult(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		wantType types.MessageType
		wantText string
	}{
		{"copied", nil, types.MessageTypeSuccess, "Tokens copied"},
		{"no clipboard", export.ErrClipboardUnsupported, types.MessageTypeInfo, "designkit show --yaml clean"},
		{"write fails", errors.New("xsel missing"), types.MessageTypeError, "Copy failed: xsel missing"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			copied := stubClipboard(t, tt.err)
			m := newModel(theme.PresetClean)

			_, cmd := m.Update(runes("y"))
			require.NotNil(t, cmd)
			assert.Equal(t, types.MessageTypeLoading, m.status.Type)
			assert.Contains(t, m.View(), "Copying Clean tokens")

			msg, ok := cmd().(types.StatusMsg)
			require.True(t, ok)
			assert.Equal(t, tt.wantType, msg.Type)
			assert.Contains(t, msg.Message, tt.wantText)

			m.Update(msg)
			assert.Contains(t, m.View(), tt.wantText)
			if tt.err == nil {
				assert.Contains(t, *copied, "theme: clean")
			}

			_, chosen := m.Selected()
			assert.False(t, chosen)
		})
	}
}

func TestPickerProgram(t *testing.T) {
	tp := testutil.NewTestProgram(t, newModel(theme.PresetClean), 100, 30)

	require.True(t, tp.WaitForOutput("Select Theme", 2*time.Second))
	tp.Type("j")
	tp.SendKey(tea.KeyEnter)

	final, ok := tp.FinalModel(2 * time.Second).(*Model)
	require.True(t, ok)

	p, chosen := final.Selected()
	assert.True(t, chosen)
	assert.Equal(t, theme.Presets()[1], p)
}
