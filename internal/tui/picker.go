package tui

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/term"

	"github.com/thisguymartin/steep/internal/palette"
)

var (
	// ErrNoTerminal is returned when the picker cannot take over the terminal.
	ErrNoTerminal = errors.New("interactive flavour picker needs a terminal")
	// ErrPickCancelled is returned when the picker exits without a selection.
	ErrPickCancelled = errors.New("flavour selection cancelled")
)

type pickerKeys struct {
	Up     key.Binding
	Down   key.Binding
	Select key.Binding
	Quit   key.Binding
}

var keys = pickerKeys{
	Up:     key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "up")),
	Down:   key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "down")),
	Select: key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "select")),
	Quit:   key.NewBinding(key.WithKeys("q", "esc", "ctrl+c"), key.WithHelp("q", "cancel")),
}

type pickerModel struct {
	options  []palette.Flavour
	cursor   int
	selected bool
	quitting bool
}

func newPickerModel() pickerModel {
	return pickerModel{options: palette.All()}
}

func (m pickerModel) Init() tea.Cmd { return nil }

func (m pickerModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	km, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}
	switch {
	case key.Matches(km, keys.Up):
		if m.cursor > 0 {
			m.cursor--
		}
	case key.Matches(km, keys.Down):
		if m.cursor < len(m.options)-1 {
			m.cursor++
		}
	case key.Matches(km, keys.Select):
		m.selected = true
		m.quitting = true
		return m, tea.Quit
	case key.Matches(km, keys.Quit):
		m.quitting = true
		return m, tea.Quit
	}
	return m, nil
}

func (m pickerModel) View() string {
	if m.quitting {
		return ""
	}

	selectedStyle := lipgloss.NewStyle().Foreground(ColorPrimary).Bold(true)

	var b strings.Builder
	b.WriteString(TitleStyle.Render("Select a flavour") + "\n")
	b.WriteString(MutedStyle.Render(helpLine(keys.Up, keys.Down, keys.Select, keys.Quit)) + "\n\n")

	for i, f := range m.options {
		cursor := "  "
		style := MutedStyle
		if i == m.cursor {
			cursor = selectedStyle.Render("▸ ")
			style = lipgloss.NewStyle().Foreground(ColorAccent)
		}
		ctx := palette.Build(f)
		dots := dot(ctx.Base) + dot(ctx.Red) + dot(ctx.Green) + dot(ctx.Mauve)
		b.WriteString(fmt.Sprintf("  %s%-10s %s\n", cursor, style.Render(f.String()), dots))
	}

	return BoxStyle.Render(b.String())
}

func (m pickerModel) choice() (palette.Flavour, bool) {
	if !m.selected {
		return 0, false
	}
	return m.options[m.cursor], true
}

func helpLine(bindings ...key.Binding) string {
	parts := make([]string, 0, len(bindings))
	for _, kb := range bindings {
		h := kb.Help()
		parts = append(parts, h.Key+" "+h.Desc)
	}
	return strings.Join(parts, " · ")
}

func dot(hex string) string {
	return lipgloss.NewStyle().Foreground(lipgloss.Color("#" + hex)).Render("●")
}

// PickFlavour runs an interactive flavour picker on stderr so stdout stays
// free for rendered output.
func PickFlavour() (palette.Flavour, error) {
	if !term.IsTerminal(os.Stdin.Fd()) || !term.IsTerminal(os.Stderr.Fd()) {
		return 0, ErrNoTerminal
	}

	p := tea.NewProgram(newPickerModel(), tea.WithOutput(os.Stderr))
	result, err := p.Run()
	if err != nil {
		return 0, fmt.Errorf("flavour picker: %w", err)
	}

	f, ok := result.(pickerModel).choice()
	if !ok {
		return 0, ErrPickCancelled
	}
	return f, nil
}
