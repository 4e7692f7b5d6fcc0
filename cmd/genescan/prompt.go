package main

import (
	"bufio"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

const promptText = "Enter the path to the input Excel file: "

var promptStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("205"))

type pathPrompt struct {
	input    textinput.Model
	done     bool
	canceled bool
}

func newPathPrompt() pathPrompt {
	ti := textinput.New()
	ti.Prompt = promptText
	ti.Placeholder = "samples.xlsx"
	ti.Focus()
	return pathPrompt{input: ti}
}

func (m pathPrompt) Init() tea.Cmd {
	return textinput.Blink
}

func (m pathPrompt) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if key, ok := msg.(tea.KeyMsg); ok {
		switch key.Type {
		case tea.KeyEnter:
			m.done = true
			return m, tea.Quit
		case tea.KeyCtrlC, tea.KeyEsc:
			m.canceled = true
			return m, tea.Quit
		}
	}
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m pathPrompt) View() string {
	if m.done || m.canceled {
		return ""
	}
	return promptStyle.Render(m.input.View()) + "\n"
}

// promptInputPath asks the operator for the workbook path. Outside a
// terminal the bubbletea program cannot start, so fall back to a plain
// blocking read from stdin.
func promptInputPath() (string, error) {
	final, err := tea.NewProgram(newPathPrompt()).Run()
	if err != nil {
		return promptPlain()
	}
	m, ok := final.(pathPrompt)
	if !ok || m.canceled {
		return "", errors.New("input canceled")
	}
	path := strings.TrimSpace(m.input.Value())
	if path == "" {
		return "", errors.New("no input file given")
	}
	return path, nil
}

func promptPlain() (string, error) {
	fmt.Print(promptText)
	line, err := bufio.NewReader(os.Stdin).ReadString('\n')
	if err != nil {
		return "", err
	}
	path := strings.TrimSpace(line)
	if path == "" {
		return "", errors.New("no input file given")
	}
	return path, nil
}
