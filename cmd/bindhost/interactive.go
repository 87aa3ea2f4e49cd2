package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/wippyai/gamebind/dispatch"
	"github.com/wippyai/gamebind/game"
	"github.com/wippyai/gamebind/runtime"
)

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("205")).
			MarginBottom(1)

	selectedStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("170")).
			Bold(true)

	typeStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("86"))

	funcStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("252"))

	errorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("196")).
			Bold(true)

	resultStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("82")).
			Bold(true)

	helpStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("241")).
			MarginTop(1)
)

type modelState int

const (
	stateSelectSymbol modelState = iota
	stateShowFields
	stateInputWrite
)

type interactiveModel struct {
	gameFile string
	rt       *game.Runtime
	bridge   *runtime.Bridge

	symbols  []string
	selected int
	state    modelState

	inputs   []textinput.Model
	focusIdx int

	scriptErr string
	result    string
	err       error
}

type loadedMsg struct {
	rt  *game.Runtime
	err error
}

func initialModel(gameFile string) interactiveModel {
	return interactiveModel{gameFile: gameFile}
}

func (m interactiveModel) Init() tea.Cmd {
	return func() tea.Msg {
		rt, _, err := loadSession(m.gameFile)
		return loadedMsg{rt: rt, err: err}
	}
}

func (m interactiveModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case loadedMsg:
		if msg.err != nil {
			m.err = msg.err
			return m, tea.Quit
		}
		m.rt = msg.rt
		m.bridge = runtime.NewBridge(msg.rt)
		m.symbols = msg.rt.Symbols.Names()
		return m, nil

	case tea.KeyMsg:
		switch m.state {
		case stateSelectSymbol:
			return m.updateSelect(msg)
		case stateShowFields:
			return m.updateFields(msg)
		case stateInputWrite:
			return m.updateWrite(msg)
		}
	}
	return m, nil
}

func (m interactiveModel) updateSelect(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c", "q":
		return m, tea.Quit
	case "up", "k":
		if m.selected > 0 {
			m.selected--
		}
	case "down", "j":
		if m.selected < len(m.symbols)-1 {
			m.selected++
		}
	case "enter":
		if len(m.symbols) > 0 {
			m.state = stateShowFields
			m.result = ""
			m.scriptErr = ""
		}
	}
	return m, nil
}

func (m interactiveModel) updateFields(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c", "q":
		return m, tea.Quit
	case "esc":
		m.state = stateSelectSymbol
		m.result = ""
		m.scriptErr = ""
	case "w":
		m.prepareWriteInputs()
		m.state = stateInputWrite
	}
	return m, nil
}

func (m interactiveModel) updateWrite(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c":
		return m, tea.Quit
	case "esc":
		m.state = stateShowFields
		return m, nil
	case "tab", "shift+tab":
		m.inputs[m.focusIdx].Blur()
		m.focusIdx = (m.focusIdx + 1) % len(m.inputs)
		m.inputs[m.focusIdx].Focus()
		return m, nil
	case "enter":
		return m.submitWrite()
	}

	var cmd tea.Cmd
	m.inputs[m.focusIdx], cmd = m.inputs[m.focusIdx].Update(msg)
	return m, cmd
}

func (m *interactiveModel) prepareWriteInputs() {
	offset := textinput.New()
	offset.Placeholder = "field offset"
	offset.CharLimit = 8
	offset.Width = 20
	offset.Focus()

	value := textinput.New()
	value.Placeholder = "new value"
	value.CharLimit = 16
	value.Width = 20

	m.inputs = []textinput.Model{offset, value}
	m.focusIdx = 0
	m.result = ""
	m.scriptErr = ""
}

func (m interactiveModel) submitWrite() (tea.Model, tea.Cmd) {
	off, err := strconv.Atoi(strings.TrimSpace(m.inputs[0].Value()))
	if err != nil {
		m.scriptErr = "offset must be an integer"
		return m, nil
	}
	val, err := strconv.Atoi(strings.TrimSpace(m.inputs[1].Value()))
	if err != nil {
		m.scriptErr = "value must be an integer"
		return m, nil
	}

	m.scriptErr = ""
	m.bridge.OnScriptError(func(err error) {
		m.scriptErr = err.Error()
	})
	m.bridge.WriteSymbolField(m.symbols[m.selected], int32(off), int32(val))
	if m.scriptErr == "" {
		m.result = fmt.Sprintf("wrote %d at offset %d", val, off)
	}
	m.state = stateShowFields
	return m, nil
}

func (m interactiveModel) View() string {
	if m.err != nil {
		return errorStyle.Render(fmt.Sprintf("Error: %v", m.err)) + "\n"
	}
	if m.rt == nil {
		return "Loading game state...\n"
	}

	var b strings.Builder
	switch m.state {
	case stateSelectSymbol:
		m.viewSelect(&b)
	case stateShowFields:
		m.viewFields(&b)
	case stateInputWrite:
		m.viewWrite(&b)
	}
	return b.String()
}

func (m interactiveModel) viewSelect(b *strings.Builder) {
	b.WriteString(titleStyle.Render("Bound symbols"))
	b.WriteString("\n\n")

	for i, name := range m.symbols {
		e, err := m.rt.Symbols.Resolve(name)
		if err != nil {
			continue
		}
		line := fmt.Sprintf("%-24s %s", name, typeStyle.Render(e.Desc.Category()))
		if i == m.selected {
			b.WriteString(selectedStyle.Render("> " + line))
		} else {
			b.WriteString("  " + funcStyle.Render(line))
		}
		b.WriteString("\n")
	}

	b.WriteString(helpStyle.Render("\n↑/↓: navigate • enter: inspect • q: quit"))
	b.WriteString("\n")
}

func (m interactiveModel) viewFields(b *strings.Builder) {
	name := m.symbols[m.selected]
	e, err := m.rt.Symbols.Resolve(name)
	if err != nil {
		b.WriteString(errorStyle.Render(err.Error()))
		b.WriteString("\n")
		return
	}

	b.WriteString(titleStyle.Render(fmt.Sprintf("%s (%s)", name, e.Desc.Category())))
	b.WriteString("\n\n")

	for _, f := range e.Desc.Fields() {
		v, err := e.Desc.ReadInt32(e.Ref, f.Offset)
		if err != nil {
			continue
		}
		mode := ""
		if f.Mode == dispatch.ReadOnly {
			mode = typeStyle.Render("  readonly")
		}
		b.WriteString(funcStyle.Render(fmt.Sprintf("+%-4d %-16s = %d", f.Offset, f.Name, v)))
		b.WriteString(mode)
		b.WriteString("\n")
	}

	if m.result != "" {
		b.WriteString("\n")
		b.WriteString(resultStyle.Render(m.result))
		b.WriteString("\n")
	}
	if m.scriptErr != "" {
		b.WriteString("\n")
		b.WriteString(errorStyle.Render(m.scriptErr))
		b.WriteString("\n")
	}

	b.WriteString(helpStyle.Render("\nw: write field • esc: back • q: quit"))
	b.WriteString("\n")
}

func (m interactiveModel) viewWrite(b *strings.Builder) {
	b.WriteString(titleStyle.Render("Write field: " + m.symbols[m.selected]))
	b.WriteString("\n\n")

	labels := []string{"Offset", "Value"}
	for i, in := range m.inputs {
		b.WriteString(fmt.Sprintf("%s:\n%s\n\n", labels[i], in.View()))
	}

	if m.scriptErr != "" {
		b.WriteString(errorStyle.Render(m.scriptErr))
		b.WriteString("\n")
	}

	b.WriteString(helpStyle.Render("tab: next field • enter: write • esc: cancel"))
	b.WriteString("\n")
}

func runInteractive(gameFile string) error {
	p := tea.NewProgram(initialModel(gameFile), tea.WithAltScreen())
	final, err := p.Run()
	if err != nil {
		return err
	}
	if m, ok := final.(interactiveModel); ok && m.err != nil {
		return m.err
	}
	return nil
}
