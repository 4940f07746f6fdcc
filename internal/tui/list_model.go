package tui

import (
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"taskwise/internal/models"
	"taskwise/internal/parser"
	"taskwise/internal/store"
)

// view selects which derived read of the store the list shows.
type view int

const (
	viewAll view = iota
	viewPending
	viewSuggested
)

func (v view) String() string {
	switch v {
	case viewPending:
		return "Pending"
	case viewSuggested:
		return "Suggested"
	default:
		return "All"
	}
}

// ListModel is the interactive session: a task list over a Store, with an
// inline add form and title search.
type ListModel struct {
	store store.Store

	width  int
	height int

	tasks    []models.Task
	selected int
	view     view

	searchActive bool
	searchQuery  string

	form *addForm

	status string
	err    error
}

// NewListModel builds the session model over the given store.
func NewListModel(s store.Store) ListModel {
	m := ListModel{store: s}
	m.reload()
	return m
}

func (m ListModel) Init() tea.Cmd {
	return nil
}

func (m ListModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyMsg:
		if m.form != nil {
			return m.updateForm(msg)
		}
		if m.searchActive {
			return m.updateSearch(msg)
		}
		return m.updateList(msg)
	}

	return m, nil
}

func (m ListModel) updateList(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q", "ctrl+c":
		return m, tea.Quit

	case "up", "k":
		if m.selected > 0 {
			m.selected--
		}

	case "down", "j":
		if m.selected < len(m.tasks)-1 {
			m.selected++
		}

	case "tab":
		m.view = (m.view + 1) % 3
		m.reload()

	case "a":
		form := newAddForm()
		m.form = &form
		m.status = ""

	case "e":
		if task := m.current(); task != nil {
			form := newEditForm(*task)
			m.form = &form
			m.status = ""
		}

	case "d", " ":
		m.toggleDone()

	case "x":
		m.deleteSelected()

	case "/":
		m.searchActive = true
		m.searchQuery = ""
		m.status = ""

	case "esc":
		if m.searchQuery != "" {
			m.searchQuery = ""
			m.reload()
		}
	}

	return m, nil
}

func (m ListModel) updateSearch(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		m.searchActive = false
		m.searchQuery = ""
		m.reload()

	case "enter":
		m.searchActive = false
		m.reload()

	case "backspace":
		if len(m.searchQuery) > 0 {
			m.searchQuery = m.searchQuery[:len(m.searchQuery)-1]
			m.reload()
		}

	default:
		if msg.Type == tea.KeyRunes {
			m.searchQuery += string(msg.Runes)
			m.reload()
		}
	}

	return m, nil
}

func (m ListModel) updateForm(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	done, cmd := m.form.handleKey(msg)
	if !done {
		return m, cmd
	}

	if m.form.cancelled {
		m.form = nil
		return m, nil
	}

	draft, err := m.form.draft()
	if err != nil {
		m.form.errMsg = err.Error()
		return m, nil
	}

	if m.form.editID > 0 {
		_, err = m.store.Update(m.form.editID, draft)
	} else {
		_, err = m.store.Create(draft)
	}
	if err != nil {
		// Keep the form open so the input survives correction.
		m.form.errMsg = err.Error()
		return m, nil
	}

	if m.form.editID > 0 {
		m.status = "Task updated."
	} else {
		m.status = "Task added."
	}
	m.form = nil
	m.reload()
	return m, nil
}

func (m *ListModel) toggleDone() {
	task := m.current()
	if task == nil {
		return
	}

	_, err := m.store.Update(task.ID, models.Draft{
		Title:            task.Title,
		Description:      task.Description,
		Priority:         task.Priority,
		EstimatedMinutes: task.EstimatedMinutes,
		Completed:        !task.Completed,
		DueDate:          task.DueDate,
	})
	if err != nil {
		m.err = err
		return
	}
	m.reload()
}

func (m *ListModel) deleteSelected() {
	task := m.current()
	if task == nil {
		return
	}

	if _, err := m.store.Delete(task.ID); err != nil {
		m.err = err
		return
	}
	m.status = fmt.Sprintf("Deleted task #%d", task.ID)
	m.reload()
}

func (m *ListModel) current() *models.Task {
	if m.selected < 0 || m.selected >= len(m.tasks) {
		return nil
	}
	return &m.tasks[m.selected]
}

// reload refreshes the task slice from the store for the active view.
func (m *ListModel) reload() {
	var tasks []models.Task
	var err error

	switch {
	case m.searchQuery != "":
		tasks, err = m.store.Search(m.searchQuery)
	case m.view == viewPending:
		tasks, err = m.store.Pending()
	case m.view == viewSuggested:
		tasks, err = m.store.Suggest()
	default:
		tasks, err = m.store.List()
	}

	if err != nil {
		m.err = err
		return
	}

	m.err = nil
	m.tasks = tasks
	if m.selected >= len(tasks) {
		m.selected = len(tasks) - 1
	}
	if m.selected < 0 {
		m.selected = 0
	}
}

var (
	tabStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color(ColorSecondaryText)).
			Padding(0, 1)
	activeTabStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color(ColorAccentBright)).
			Bold(true).
			Padding(0, 1)
	selectedRowStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color(ColorPrimaryText)).
				Background(lipgloss.Color(ColorAccentMain))
	doneRowStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color(ColorDisabledText)).
			Strikethrough(true)
	overdueStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color(ColorWarning))
	helpStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color(ColorHelpText))
	statusStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color(ColorSuccess))
	errStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color(ColorError))
)

func (m ListModel) View() string {
	if m.form != nil {
		return m.form.view()
	}

	var b strings.Builder

	// View tabs
	var tabs []string
	for v := viewAll; v <= viewSuggested; v++ {
		if v == m.view {
			tabs = append(tabs, activeTabStyle.Render("["+v.String()+"]"))
		} else {
			tabs = append(tabs, tabStyle.Render(v.String()))
		}
	}
	b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, tabs...))
	b.WriteString("\n\n")

	if m.searchActive || m.searchQuery != "" {
		b.WriteString(fmt.Sprintf("Search: %s\n\n", m.searchQuery))
	}

	if m.err != nil {
		b.WriteString(errStyle.Render("Error: "+m.err.Error()) + "\n\n")
	}

	if len(m.tasks) == 0 {
		b.WriteString(helpStyle.Render("No tasks. Press 'a' to add one.") + "\n")
	}

	for i, task := range m.tasks {
		b.WriteString(m.renderRow(i, task))
		b.WriteString("\n")
	}

	if m.status != "" {
		b.WriteString("\n" + statusStyle.Render(m.status))
	}

	b.WriteString("\n" + helpStyle.Render(
		"a add · e edit · d done · x delete · tab view · / search · q quit"))
	return b.String()
}

func (m ListModel) renderRow(i int, task models.Task) string {
	check := "[ ]"
	if task.Completed {
		check = "[x]"
	}

	due := ""
	if task.DueDate != nil {
		due = "  " + parser.FormatDueDate(task.DueDate)
	}

	row := fmt.Sprintf("%s #%-3d P%d %-40s %3dm%s",
		check, task.ID, task.Priority, truncate(task.Title, 40), task.EstimatedMinutes, due)

	switch {
	case i == m.selected:
		return selectedRowStyle.Render(row)
	case task.Completed:
		return doneRowStyle.Render(row)
	case task.DueDate != nil && task.DueDate.Before(time.Now()):
		return overdueStyle.Render(row)
	default:
		return row
	}
}

func truncate(s string, max int) string {
	if len(s) <= max {
		return s
	}
	return s[:max-3] + "..."
}
