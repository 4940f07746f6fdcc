package tui

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"taskwise/internal/models"
	"taskwise/internal/parser"
)

const (
	fieldTitle = iota
	fieldDescription
	fieldPriority
	fieldEstimate
	fieldDue
	fieldCount
)

// addForm is the inline create/edit form. When editID is non-zero the form
// saves through Update instead of Create.
type addForm struct {
	inputs    []textinput.Model
	focused   int
	editID    uint
	completed bool
	cancelled bool
	errMsg    string
}

var formLabels = [fieldCount]string{
	"Title",
	"Description",
	"Priority (1-5, empty = 3)",
	"Estimate minutes (empty = 30)",
	"Due (dd/mm/yyyy, yyyy-mm-dd, '3 days', empty = none)",
}

func newAddForm() addForm {
	f := addForm{inputs: make([]textinput.Model, fieldCount)}
	for i := range f.inputs {
		input := textinput.New()
		input.Prompt = ""
		input.CharLimit = 200
		f.inputs[i] = input
	}
	f.inputs[fieldTitle].Focus()
	return f
}

func newEditForm(task models.Task) addForm {
	f := newAddForm()
	f.editID = task.ID
	f.completed = task.Completed
	f.inputs[fieldTitle].SetValue(task.Title)
	f.inputs[fieldDescription].SetValue(task.Description)
	f.inputs[fieldPriority].SetValue(strconv.Itoa(task.Priority))
	f.inputs[fieldEstimate].SetValue(strconv.Itoa(task.EstimatedMinutes))
	if task.DueDate != nil {
		f.inputs[fieldDue].SetValue(task.DueDate.Format("02/01/2006 15:04"))
	}
	return f
}

// handleKey routes a key to the form. done reports that the form is finished,
// either saved (cancelled == false) or abandoned.
func (f *addForm) handleKey(msg tea.KeyMsg) (done bool, cmd tea.Cmd) {
	switch msg.String() {
	case "esc", "ctrl+c":
		f.cancelled = true
		return true, nil

	case "enter":
		if f.focused == fieldCount-1 {
			return true, nil
		}
		f.nextField()
		return false, nil

	case "tab", "down":
		f.nextField()
		return false, nil

	case "shift+tab", "up":
		f.prevField()
		return false, nil
	}

	f.inputs[f.focused], cmd = f.inputs[f.focused].Update(msg)
	return false, cmd
}

func (f *addForm) nextField() {
	f.inputs[f.focused].Blur()
	f.focused = (f.focused + 1) % fieldCount
	f.inputs[f.focused].Focus()
}

func (f *addForm) prevField() {
	f.inputs[f.focused].Blur()
	f.focused = (f.focused + fieldCount - 1) % fieldCount
	f.inputs[f.focused].Focus()
}

// draft converts the form fields into a Draft. Field-level parse problems
// come back as errors before the store ever sees the draft.
func (f *addForm) draft() (models.Draft, error) {
	draft := models.Draft{
		Title:       f.inputs[fieldTitle].Value(),
		Description: f.inputs[fieldDescription].Value(),
		Completed:   f.completed,
	}

	if v := strings.TrimSpace(f.inputs[fieldPriority].Value()); v != "" {
		priority, err := strconv.Atoi(v)
		if err != nil {
			return draft, fmt.Errorf("priority must be a number")
		}
		draft.Priority = priority
	}

	if v := strings.TrimSpace(f.inputs[fieldEstimate].Value()); v != "" {
		estimate, err := strconv.Atoi(v)
		if err != nil {
			return draft, fmt.Errorf("estimate must be a number")
		}
		draft.EstimatedMinutes = estimate
	}

	if v := strings.TrimSpace(f.inputs[fieldDue].Value()); v != "" {
		due, err := parser.ParseDueDate(v)
		if err != nil {
			return draft, err
		}
		draft.DueDate = due
	}

	return draft, nil
}

var (
	formTitleStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color(ColorAccentBright)).
			Bold(true)
	labelStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color(ColorSecondaryText))
	activeLabelStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color(ColorPrimaryText)).
				Bold(true)
	formBoxStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color(ColorBorder)).
			Padding(1, 2)
)

func (f *addForm) view() string {
	var b strings.Builder

	heading := "New task"
	if f.editID > 0 {
		heading = fmt.Sprintf("Edit task #%d", f.editID)
	}
	b.WriteString(formTitleStyle.Render(heading) + "\n\n")

	for i, input := range f.inputs {
		label := formLabels[i]
		if i == f.focused {
			b.WriteString(activeLabelStyle.Render("> "+label) + "\n")
		} else {
			b.WriteString(labelStyle.Render("  "+label) + "\n")
		}
		b.WriteString("  " + input.View() + "\n")
	}

	if f.errMsg != "" {
		b.WriteString("\n" + errStyle.Render(f.errMsg) + "\n")
	}

	b.WriteString("\n" + helpStyle.Render("enter next/save · tab move · esc cancel"))
	return formBoxStyle.Render(b.String())
}
