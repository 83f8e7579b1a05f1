package tui

import (
	"fmt"

	"github.com/charmbracelet/bubbles/list"
	"github.com/fentz26/planner/internal/models"
)

// TaskItem implements list.Item for the task list
type TaskItem struct {
	ID       string
	Name     string
	Duration int
	Subtasks int
}

func (i TaskItem) FilterValue() string { return i.Name }
func (i TaskItem) Title() string       { return i.Name }
func (i TaskItem) Description() string {
	switch i.Subtasks {
	case 0:
		return fmt.Sprintf("%d days", i.Duration)
	case 1:
		return fmt.Sprintf("%d days • 1 subtask", i.Duration)
	default:
		return fmt.Sprintf("%d days • %d subtasks", i.Duration, i.Subtasks)
	}
}

func toItems(tasks []*models.Task) []list.Item {
	items := make([]list.Item, len(tasks))
	for i, t := range tasks {
		items[i] = TaskItem{
			ID:       t.ID,
			Name:     t.Name,
			Duration: t.Duration,
			Subtasks: t.SubtaskCount(),
		}
	}
	return items
}

func newTaskList(st *styles) list.Model {
	l := list.New([]list.Item{}, list.NewDefaultDelegate(), 40, 20)
	l.Title = "Tasks"
	l.SetShowStatusBar(true)
	l.SetFilteringEnabled(true)
	l.SetShowHelp(false)
	l.SetStatusBarItemName("task", "tasks")
	l.Styles.Title = st.title
	return l
}
