// Package tui provides the interactive terminal UI for planner.
package tui

import (
	"errors"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/fentz26/planner/internal/registry"
	log "github.com/sirupsen/logrus"
)

// Options tune the TUI.
type Options struct {
	Color bool
}

// App is the main TUI application model.
type App struct {
	reg       *registry.Registry
	list      list.Model
	cmdbar    *CmdBarModel
	styles    *styles
	showGraph bool
	width     int
	height    int
	log       log.FieldLogger
}

// New creates a new TUI application over reg.
func New(reg *registry.Registry, opts Options) *App {
	st := newStyles(opts.Color)
	a := &App{
		reg:    reg,
		list:   newTaskList(st),
		cmdbar: NewCmdBarModel(st),
		styles: st,
		log:    log.WithField("component", "tui"),
	}
	a.refresh()
	return a
}

// Run starts the TUI application.
func (a *App) Run() error {
	p := tea.NewProgram(a, tea.WithAltScreen())
	_, err := p.Run()
	return err
}

// Init implements tea.Model
func (a *App) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model
func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		a.list.SetSize(msg.Width/2, max(msg.Height-4, 5))
		return a, nil

	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			return a, tea.Quit
		}
		if a.cmdbar.Focused() {
			if msg.String() == "enter" {
				a.run(a.cmdbar.Submit())
				return a, nil
			}
			return a, a.cmdbar.Update(msg)
		}
		if a.list.FilterState() != list.Filtering {
			switch msg.String() {
			case "q":
				return a, tea.Quit
			case ":":
				return a, a.cmdbar.Focus()
			case "tab":
				a.showGraph = !a.showGraph
				return a, nil
			case "d":
				a.removeSelected()
				return a, nil
			}
		}
	}

	var cmd tea.Cmd
	a.list, cmd = a.list.Update(msg)
	return a, cmd
}

// View implements tea.Model
func (a *App) View() string {
	left := a.list.View()

	var right string
	if a.showGraph {
		right = a.renderGraph()
	} else {
		right = a.renderDetail()
	}

	body := lipgloss.JoinHorizontal(lipgloss.Top, left, a.styles.panel.Render(right))
	status := a.styles.help.Render(" ↑↓:nav | /:filter | :: command | Tab: graph/detail | d: remove | q: quit")

	return lipgloss.JoinVertical(lipgloss.Left, body, a.cmdbar.View(), status)
}

// run executes a command-bar line and refreshes the list.
func (a *App) run(input string) {
	msg, err := Execute(a.reg, input)
	if err != nil {
		a.log.WithError(err).WithField("input", input).Debug("command failed")
		a.cmdbar.SetResult(describe(err), true)
		return
	}
	a.cmdbar.SetResult(msg, false)
	a.refresh()
}

func (a *App) removeSelected() {
	item, ok := a.list.SelectedItem().(TaskItem)
	if !ok {
		return
	}
	if _, err := a.reg.RemoveTaskByID(item.ID); err != nil {
		a.cmdbar.SetResult(describe(err), true)
		return
	}
	a.cmdbar.SetResult(fmt.Sprintf("Removed task %s", item.Name), false)
	a.refresh()
}

func (a *App) refresh() {
	a.list.SetItems(toItems(a.reg.Tasks()))
}

func (a *App) renderDetail() string {
	item, ok := a.list.SelectedItem().(TaskItem)
	if !ok {
		return a.styles.muted.Render("No tasks found. Press : and type add <task> <days>.")
	}
	task, err := a.reg.FindTaskByID(item.ID)
	if err != nil {
		return a.styles.err.Render(describe(err))
	}
	var b strings.Builder
	task.Display(&b)
	return strings.TrimRight(b.String(), "\n")
}

func (a *App) renderGraph() string {
	graph := a.reg.Graph()
	if len(graph) == 0 {
		return a.styles.muted.Render("No relations found.")
	}
	lines := make([]string, 0, len(graph))
	for _, rel := range graph {
		lines = append(lines, a.styles.source.Render(rel.Source)+" -> "+strings.Join(rel.Destinations, " "))
	}
	return strings.Join(lines, "\n")
}

// describe turns command errors into bar messages.
func describe(err error) string {
	switch {
	case errors.Is(err, registry.ErrTaskNotFound):
		return "Task not found."
	case errors.Is(err, registry.ErrSubtaskNotFound):
		return "Subtask not found."
	default:
		return "Error: " + err.Error()
	}
}
