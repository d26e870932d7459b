// Package picker is the interactive preset chooser. It previews each preset
// with its own tokens without installing it; the caller decides what to do
// with the choice.
package picker

import (
	"errors"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/renato0307/designkit/internal/appearance"
	"github.com/renato0307/designkit/internal/export"
	"github.com/renato0307/designkit/internal/keyboard"
	"github.com/renato0307/designkit/internal/logging"
	"github.com/renato0307/designkit/internal/messages"
	"github.com/renato0307/designkit/internal/theme"
	"github.com/renato0307/designkit/internal/types"
	"github.com/renato0307/designkit/internal/ui"
)

const (
	listWidth     = 30
	swatchWidth   = 4
	minPreviewW   = 36
	defaultWidth  = 80
	defaultHeight = 24
)

type presetItem struct {
	preset theme.Preset
}

func (i presetItem) FilterValue() string { return i.preset.DisplayName() + " " + string(i.preset) }
func (i presetItem) Title() string       { return i.preset.DisplayName() }
func (i presetItem) Description() string { return string(i.preset) }

// Model is the bubbletea model of the picker.
type Model struct {
	list     list.Model
	keys     *keyboard.Keys
	renderer *lipgloss.Renderer
	styles   *ui.Styles // styles of the active theme, used for the picker itself

	selected theme.Preset
	chosen   bool
	status   types.StatusMsg

	width  int
	height int
}

// New returns a picker over every preset with current highlighted. styles
// decorate the picker itself; previews use each preset's own tokens.
func New(r *lipgloss.Renderer, styles *ui.Styles, current theme.Preset, keys *keyboard.Keys) *Model {
	presets := theme.Presets()
	items := make([]list.Item, len(presets))
	for i, p := range presets {
		items[i] = presetItem{preset: p}
	}

	c := styles.Tokens.Colors
	delegate := list.NewDefaultDelegate()
	delegate.Styles.SelectedTitle = delegate.Styles.SelectedTitle.
		Foreground(c.Primary).
		BorderForeground(c.Primary)
	delegate.Styles.SelectedDesc = delegate.Styles.SelectedDesc.
		Foreground(c.Secondary).
		BorderForeground(c.Primary)
	delegate.Styles.NormalTitle = delegate.Styles.NormalTitle.Foreground(c.TextPrimary)
	delegate.Styles.NormalDesc = delegate.Styles.NormalDesc.Foreground(c.TextTertiary)

	l := list.New(items, delegate, listWidth, defaultHeight)
	l.Title = "Select Theme"
	l.SetShowStatusBar(false)
	l.SetShowHelp(false)
	l.SetFilteringEnabled(true)
	l.Styles.Title = styles.Header
	applyKeys(&l.KeyMap, keys)

	for i, p := range presets {
		if p == current {
			l.Select(i)
			break
		}
	}

	return &Model{
		list:     l,
		keys:     keys,
		renderer: r,
		styles:   styles,
		width:    defaultWidth,
		height:   defaultHeight,
	}
}

func applyKeys(km *list.KeyMap, keys *keyboard.Keys) {
	km.CursorUp = key.NewBinding(key.WithKeys("up", keys.Up), key.WithHelp("↑/"+keys.Up, "up"))
	km.CursorDown = key.NewBinding(key.WithKeys("down", keys.Down), key.WithHelp("↓/"+keys.Down, "down"))
	km.GoToStart = key.NewBinding(key.WithKeys("home", keys.JumpTop), key.WithHelp(keys.JumpTop, "top"))
	km.GoToEnd = key.NewBinding(key.WithKeys("end", keys.JumpBottom), key.WithHelp(keys.JumpBottom, "bottom"))
	km.Filter = key.NewBinding(key.WithKeys(keys.Filter), key.WithHelp(keys.Filter, "filter"))
	km.ShowFullHelp = key.NewBinding(key.WithKeys(keys.Help), key.WithHelp(keys.Help, "help"))

	// quitting is handled by the picker so the outcome is recorded
	km.Quit.SetEnabled(false)
	km.ForceQuit.SetEnabled(false)
}

func (m *Model) Init() tea.Cmd {
	return nil
}

func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.list.SetSize(listWidth, max(msg.Height-4, 6))
		return m, nil

	case types.StatusMsg:
		logging.Debug("picker status", "type", msg.Type.String(), "message", msg.Message)
		m.status = msg
		return m, nil

	case tea.KeyMsg:
		k := msg.String()
		if k == m.keys.Quit {
			return m, tea.Quit
		}
		// while typing a filter every other key belongs to the list
		if m.list.FilterState() == list.Filtering {
			break
		}

		switch k {
		case m.keys.Select:
			if item, ok := m.list.SelectedItem().(presetItem); ok {
				m.selected = item.preset
				m.chosen = true
			}
			return m, tea.Quit
		case m.keys.Back:
			if m.list.FilterState() == list.FilterApplied {
				break
			}
			return m, tea.Quit
		case m.keys.Copy:
			if item, ok := m.list.SelectedItem().(presetItem); ok {
				m.status = types.LoadingMsg("Copying " + item.preset.DisplayName() + " tokens…")
				return m, copyPreset(item.preset)
			}
		}
	}

	var cmd tea.Cmd
	m.list, cmd = m.list.Update(msg)
	return m, cmd
}

// copyToClipboard is swapped in tests.
var copyToClipboard = export.CopyToClipboard

// copyPreset exports the preset's tokens to the clipboard.
func copyPreset(p theme.Preset) tea.Cmd {
	return func() tea.Msg {
		data, err := export.YAML(string(p), p.MakeTheme().Tokens())
		if err != nil {
			return messages.ErrorCmd("Export failed: %v", err)()
		}
		msg, err := copyToClipboard(string(data))
		if errors.Is(err, export.ErrClipboardUnsupported) {
			return messages.InfoCmd("No clipboard here, use: designkit show --yaml %s", p)()
		}
		if err != nil {
			return messages.ErrorCmd("Copy failed: %v", err)()
		}
		return messages.SuccessCmd("%s", msg)()
	}
}

func (m *Model) View() string {
	body := lipgloss.JoinHorizontal(lipgloss.Top, m.list.View(), "  ", m.preview())

	lines := []string{body}
	if m.status.Message != "" {
		lines = append(lines, ui.RenderMessage(m.status.Message, m.status.Type, m.styles, "", m.width))
	}
	lines = append(lines, m.styles.Muted.Render(m.helpLine()))
	return strings.Join(lines, "\n")
}

func (m *Model) helpLine() string {
	return strings.Join([]string{
		m.keys.Up + "/" + m.keys.Down + " move",
		m.keys.Select + " select",
		m.keys.Filter + " filter",
		m.keys.Copy + " copy",
		m.keys.Back + " cancel",
	}, " • ")
}

// preview renders the highlighted preset with its own tokens.
func (m *Model) preview() string {
	item, ok := m.list.SelectedItem().(presetItem)
	if !ok {
		return ""
	}

	tok := item.preset.MakeTheme().Tokens()
	styles := ui.New(m.renderer, tok)
	chrome := appearance.Build(m.renderer, tok)
	width := max(m.width-listWidth-2, minPreviewW)

	c := tok.Colors
	var swatches []string
	for _, color := range []lipgloss.AdaptiveColor{c.Primary, c.Secondary, c.Accent, c.Success, c.Warning, c.Error} {
		swatches = append(swatches, styles.Swatch(color, swatchWidth))
	}

	return lipgloss.JoinVertical(lipgloss.Left,
		chrome.RenderNavigation(item.preset.DisplayName(), width),
		"",
		strings.Join(swatches, " "),
		"",
		styles.Card.Render("Card  "+styles.Muted.Render(string(item.preset))),
		styles.Glass.Render("Glass"),
		"",
		chrome.RenderTabs([]string{"Home", "Search", "Settings"}, 0),
	)
}

// Selected returns the chosen preset. ok is false when the picker was
// cancelled.
func (m *Model) Selected() (theme.Preset, bool) {
	return m.selected, m.chosen
}

// Run starts the picker on the terminal and returns the outcome.
func Run(m *Model, opts ...tea.ProgramOption) (theme.Preset, bool, error) {
	final, err := tea.NewProgram(m, opts...).Run()
	if err != nil {
		return "", false, err
	}
	p, ok := final.(*Model).Selected()
	return p, ok, nil
}
