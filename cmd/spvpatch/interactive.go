package main

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/shadertools/spvpatch/patch"
	"github.com/shadertools/spvpatch/spv"
)

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#FAFAFA")).
			Background(lipgloss.Color("#7D56F4")).
			Padding(0, 1)

	fileStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#98FB98"))

	varStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#87CEEB"))

	selectedStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FAFAFA")).
			Background(lipgloss.Color("#7D56F4"))

	resultStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#90EE90"))

	errorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FF6B6B"))

	helpStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#666666"))
)

type browserModel struct {
	err      error
	module   *spv.Module
	loc      *patch.Location
	locErr   error
	filename string
	lineIn   textinput.Model
	selected int
	state    modelState
}

type modelState int

const (
	stateSelectSource modelState = iota
	stateInputLine
	stateShowLocation
)

func newBrowserModel(filename string) *browserModel {
	return &browserModel{
		filename: filename,
		state:    stateSelectSource,
	}
}

type loadedMsg struct {
	err    error
	module *spv.Module
}

type locatedMsg struct {
	err error
	loc *patch.Location
}

func (m *browserModel) Init() tea.Cmd {
	return m.loadModule
}

func (m *browserModel) loadModule() tea.Msg {
	data, err := os.ReadFile(m.filename)
	if err != nil {
		return loadedMsg{err: err}
	}
	module, err := spv.Decode(data)
	if err != nil {
		return loadedMsg{err: err}
	}
	return loadedMsg{module: module}
}

func (m *browserModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "q":
			if m.state != stateInputLine || msg.String() == "ctrl+c" {
				return m, tea.Quit
			}

		case "up", "k":
			if m.state == stateSelectSource && m.selected > 0 {
				m.selected--
			}

		case "down", "j":
			if m.state == stateSelectSource && m.module != nil && m.selected < m.module.NumSources()-1 {
				m.selected++
			}

		case "enter":
			switch m.state {
			case stateSelectSource:
				if m.module != nil && m.module.NumSources() > 0 {
					m.prepareInput()
					m.state = stateInputLine
				}

			case stateInputLine:
				return m, m.locate

			case stateShowLocation:
				m.state = stateSelectSource
				m.loc = nil
				m.locErr = nil
			}

		case "esc":
			switch m.state {
			case stateInputLine:
				m.state = stateSelectSource
			case stateShowLocation:
				m.state = stateSelectSource
				m.loc = nil
				m.locErr = nil
			}
		}

	case loadedMsg:
		if msg.err != nil {
			m.err = msg.err
			return m, nil
		}
		m.module = msg.module

	case locatedMsg:
		m.loc = msg.loc
		m.locErr = msg.err
		m.state = stateShowLocation
	}

	if m.state == stateInputLine {
		var cmd tea.Cmd
		m.lineIn, cmd = m.lineIn.Update(msg)
		return m, cmd
	}

	return m, nil
}

func (m *browserModel) prepareInput() {
	ti := textinput.New()
	ti.Placeholder = "line number"
	ti.Prompt = "line: "
	ti.Width = 20
	ti.Focus()
	m.lineIn = ti
}

func (m *browserModel) locate() tea.Msg {
	line, err := strconv.ParseUint(strings.TrimSpace(m.lineIn.Value()), 10, 32)
	if err != nil {
		return locatedMsg{err: fmt.Errorf("not a line number: %q", m.lineIn.Value())}
	}
	loc, err := patch.Locate(m.module, m.selected, uint32(line))
	if err != nil {
		return locatedMsg{err: err}
	}
	return locatedMsg{loc: loc}
}

func (m *browserModel) View() string {
	if m.err != nil {
		return errorStyle.Render(fmt.Sprintf("Error: %v\n\nPress q to quit.", m.err))
	}
	if m.module == nil {
		return "Loading module..."
	}

	var b strings.Builder

	b.WriteString(titleStyle.Render("SPIR-V Debug Browser"))
	b.WriteString(" ")
	b.WriteString(m.filename)
	b.WriteString("\n\n")

	switch m.state {
	case stateSelectSource:
		if m.module.NumSources() == 0 {
			b.WriteString("Module carries no debug source files.\n\n")
			b.WriteString(helpStyle.Render("q quit"))
			break
		}
		b.WriteString("Select a source file:\n\n")
		for i := 0; i < m.module.NumSources(); i++ {
			src, _ := m.module.SourceAt(i)
			cursor := "  "
			entry := formatSource(src)
			if i == m.selected {
				cursor = "> "
				b.WriteString(selectedStyle.Render(cursor + entry))
			} else {
				b.WriteString(cursor + entry)
			}
			b.WriteString("\n")
		}
		b.WriteString("\n")
		b.WriteString(helpStyle.Render("↑/↓ select • enter pick line • q quit"))

	case stateInputLine:
		src, _ := m.module.SourceAt(m.selected)
		b.WriteString(fmt.Sprintf("Locate a line in %s\n\n", fileStyle.Render(sourceName(src))))
		b.WriteString(m.lineIn.View())
		if n := len(src.Markers); n > 0 {
			first, last := src.Markers[0].Line, src.Markers[n-1].Line
			b.WriteString(helpStyle.Render(fmt.Sprintf("  (markers span lines %d-%d)", first, last)))
		}
		b.WriteString("\n\n")
		b.WriteString(helpStyle.Render("enter locate • esc back"))

	case stateShowLocation:
		if m.locErr != nil {
			b.WriteString(errorStyle.Render(fmt.Sprintf("Error: %v", m.locErr)))
		} else {
			loc := m.loc
			if !loc.Exact {
				b.WriteString(fmt.Sprintf("no exact match: nearest marker at line %d\n\n", loc.Marker.Line))
			}
			b.WriteString(fmt.Sprintf("in function %s\n", resultStyle.Render(loc.FunctionName)))
			for _, local := range loc.Locals {
				b.WriteString("  var ")
				b.WriteString(varStyle.Render(local.Name))
				b.WriteString("\n")
			}
			if len(loc.Locals) == 0 {
				b.WriteString(helpStyle.Render("  (no locals)\n"))
			}
		}
		b.WriteString("\n")
		b.WriteString(helpStyle.Render("enter back • q quit"))
	}

	return b.String()
}

func formatSource(src *spv.Source) string {
	return fmt.Sprintf("%s  %s", fileStyle.Render(sourceName(src)),
		helpStyle.Render(fmt.Sprintf("(%d markers)", len(src.Markers))))
}

func sourceName(src *spv.Source) string {
	if src.Name != "" {
		return src.Name
	}
	return fmt.Sprintf("<file %%%d>", src.File)
}

func runInteractive(filename string) error {
	p := tea.NewProgram(newBrowserModel(filename), tea.WithAltScreen())
	_, err := p.Run()
	return err
}
