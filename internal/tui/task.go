package tui

import (
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/krushavadher/AI-Powered-Task-Prioritizer/internal/task"
	"github.com/krushavadher/AI-Powered-Task-Prioritizer/internal/ui"
)

// Action represents a mutation taken in the task browser. The model only
// queues actions; the caller applies them to the store after the program
// exits. Tasks added in the browser carry a temporary negative ID until
// the caller's add returns the real one; deletes and moves targeting the
// same entry carry that temp ID and must be remapped when applied.
type Action struct {
	Type  string // "delete", "add", "move"
	ID    int
	Text  string
	Delta int // -1 up, +1 down (move only)
}

// Model is a full-screen Bubble Tea browser over the scored task list.
type Model struct {
	tasks    []task.Task
	cursor   int
	filter   string
	filtered []task.Task
	mode     mode

	// add mode state
	addInput string

	// terminal dimensions
	width  int
	height int

	// pending actions to apply after quitting
	Actions []Action

	quitting bool
}

type mode int

const (
	modeNormal mode = iota
	modeFilter
	modeAdd
)

// NewModel creates a browser over the given (already scored and sorted)
// tasks.
func NewModel(tasks []task.Task) *Model {
	m := &Model{
		tasks:  tasks,
		width:  80,
		height: 24,
	}
	m.applyFilter()
	return m
}

// Run launches the interactive browser. Returns actions for the caller to
// apply.
func Run(tasks []task.Task) ([]Action, error) {
	m := NewModel(tasks)
	prog := tea.NewProgram(m, tea.WithAltScreen())
	result, err := prog.Run()
	if err != nil {
		return nil, fmt.Errorf("task browser: %w", err)
	}
	final := result.(*Model)
	return final.Actions, nil
}

func (m *Model) Init() tea.Cmd {
	return nil
}

func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)
	}
	return m, nil
}

func (m *Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch m.mode {
	case modeFilter:
		return m.handleFilterKey(msg)
	case modeAdd:
		return m.handleAddKey(msg)
	default:
		return m.handleNormalKey(msg)
	}
}

func (m *Model) handleNormalKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c", "q", "esc":
		m.quitting = true
		return m, tea.Quit

	case "j", "down":
		if m.cursor < len(m.filtered)-1 {
			m.cursor++
		}

	case "k", "up":
		if m.cursor > 0 {
			m.cursor--
		}

	case "g":
		m.cursor = 0

	case "G":
		if len(m.filtered) > 0 {
			m.cursor = len(m.filtered) - 1
		}

	case "K":
		m.moveSelected(-1)

	case "J":
		m.moveSelected(1)

	case "d":
		if len(m.filtered) > 0 {
			t := m.filtered[m.cursor]
			m.Actions = append(m.Actions, Action{Type: "delete", ID: t.ID})
			for i, item := range m.tasks {
				if item.ID == t.ID {
					m.tasks = append(m.tasks[:i], m.tasks[i+1:]...)
					break
				}
			}
			m.applyFilter()
			if m.cursor >= len(m.filtered) && m.cursor > 0 {
				m.cursor = len(m.filtered) - 1
			}
		}

	case "a":
		m.mode = modeAdd
		m.addInput = ""

	case "/":
		m.mode = modeFilter
		m.filter = ""
		m.applyFilter()
		m.cursor = 0
	}

	return m, nil
}

// moveSelected swaps the selected task with its neighbor and queues the
// reorder. Disabled while a filter is active — positions are only
// meaningful against the full list.
func (m *Model) moveSelected(delta int) {
	if m.filter != "" || len(m.filtered) == 0 {
		return
	}
	target := m.cursor + delta
	if target < 0 || target >= len(m.tasks) {
		return
	}
	t := m.tasks[m.cursor]
	m.Actions = append(m.Actions, Action{Type: "move", ID: t.ID, Delta: delta})
	m.tasks[m.cursor], m.tasks[target] = m.tasks[target], m.tasks[m.cursor]
	m.applyFilter()
	m.cursor = target
}

func (m *Model) handleFilterKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		m.mode = modeNormal
		m.filter = ""
		m.applyFilter()
		m.cursor = 0

	case "enter":
		m.mode = modeNormal

	case "backspace":
		if len(m.filter) > 0 {
			runes := []rune(m.filter)
			m.filter = string(runes[:len(runes)-1])
			m.applyFilter()
			m.cursor = 0
		}

	default:
		if len(msg.String()) == 1 {
			m.filter += msg.String()
			m.applyFilter()
			m.cursor = 0
		}
	}
	return m, nil
}

func (m *Model) handleAddKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		m.mode = modeNormal
		m.addInput = ""

	case "enter":
		text := strings.TrimSpace(m.addInput)
		if text != "" {
			tempID := -(len(m.Actions) + 1)
			m.Actions = append(m.Actions, Action{Type: "add", ID: tempID, Text: text})
			// Show a temporary entry immediately; ratings come from the
			// heuristic so the chip is not misleading.
			sug := task.Suggest(text, "")
			now := time.Now()
			m.tasks = append(m.tasks, task.Task{
				ID:         tempID,
				Title:      text,
				Importance: sug.Importance,
				Urgency:    sug.Urgency,
				Effort:     sug.Effort,
				Category:   task.DefaultCategory,
				CreatedAt:  now,
				UpdatedAt:  now,
			})
			m.applyFilter()
			if len(m.filtered) > 0 {
				m.cursor = len(m.filtered) - 1
			} else {
				m.cursor = 0
			}
		}
		m.mode = modeNormal
		m.addInput = ""

	case "backspace":
		if len(m.addInput) > 0 {
			runes := []rune(m.addInput)
			m.addInput = string(runes[:len(runes)-1])
		}

	default:
		// Accept printable characters
		if len(msg.Runes) > 0 {
			m.addInput += string(msg.Runes)
		}
	}
	return m, nil
}

// applyFilter rebuilds the visible list: case-insensitive substring match
// over title, description, and category.
func (m *Model) applyFilter() {
	m.filtered = nil
	q := strings.ToLower(m.filter)
	for _, t := range m.tasks {
		if q == "" {
			m.filtered = append(m.filtered, t)
			continue
		}
		haystack := strings.ToLower(t.Title + " " + t.Desc + " " + t.Category)
		if strings.Contains(haystack, q) {
			m.filtered = append(m.filtered, t)
		}
	}
}

func (m *Model) View() string {
	var b strings.Builder

	header := ui.Title.Render("  " + ui.IconTask + " Tasks")
	if m.filter != "" {
		header += ui.Muted.Render(fmt.Sprintf("  filter: %q", m.filter))
	}
	b.WriteString(header + "\n\n")

	visHeight := m.height - 8 // reserve space for header, input, status bar
	if visHeight < 3 {
		visHeight = 3
	}

	offset := 0
	if m.cursor >= visHeight {
		offset = m.cursor - visHeight + 1
	}

	now := time.Now()
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())

	if len(m.filtered) == 0 {
		if m.filter != "" {
			b.WriteString("  " + ui.Muted.Render("No matches. Press esc to clear filter.") + "\n")
		} else {
			b.WriteString("  " + ui.Muted.Render("No tasks. Press 'a' to add one.") + "\n")
		}
	} else {
		end := offset + visHeight
		if end > len(m.filtered) {
			end = len(m.filtered)
		}
		for i := offset; i < end; i++ {
			b.WriteString(m.renderItem(m.filtered[i], i == m.cursor, today) + "\n")
		}
	}

	b.WriteString("\n")

	switch m.mode {
	case modeFilter:
		prompt := lipgloss.NewStyle().Foreground(ui.Violet).Bold(true).Render("/")
		b.WriteString("  " + prompt + " " + m.filter + "█\n")
	case modeAdd:
		prompt := lipgloss.NewStyle().Foreground(ui.Lime).Bold(true).Render("add:")
		b.WriteString("  " + prompt + " " + m.addInput + "█\n")
	default:
		b.WriteString("\n")
	}

	b.WriteString("\n")

	countStr := ui.Muted.Render(fmt.Sprintf("  %d/%d shown", len(m.filtered), len(m.tasks)))
	b.WriteString(countStr + "\n")

	var help string
	switch m.mode {
	case modeFilter:
		help = ui.Muted.Render("  esc clear · enter confirm")
	case modeAdd:
		help = ui.Muted.Render("  enter save · esc cancel")
	default:
		help = ui.Muted.Render("  j/k move · J/K reorder · a add · d delete · / filter · q quit")
	}
	b.WriteString(help + "\n")

	return b.String()
}

func (m *Model) renderItem(t task.Task, selected bool, today time.Time) string {
	pointer := "  "
	titleStyle := lipgloss.NewStyle()

	if selected {
		pointer = ui.Accent.Render(ui.IconArrow + " ")
		titleStyle = lipgloss.NewStyle().Foreground(ui.Violet).Bold(true)
	}

	id := ui.Muted.Render(fmt.Sprintf("#%-3d", t.ID))
	chip := ui.ScoreChip(t.Score, task.Label(t.Score))
	if t.ID < 0 {
		id = ui.Muted.Render("new ")
		chip = ui.Muted.Render(" new")
	}

	line := fmt.Sprintf("  %s %s %s %s", pointer, chip, id, titleStyle.Render(t.Title))

	if t.Due != nil {
		due := *t.Due
		dueDay := time.Date(due.Year(), due.Month(), due.Day(), 0, 0, 0, 0, today.Location())
		switch {
		case dueDay.Before(today):
			line += ui.Error.Render(fmt.Sprintf(" (overdue: %s)", due.Format("Jan 2")))
		case dueDay.Equal(today):
			line += ui.Warning.Render(" (due today!)")
		default:
			line += ui.Muted.Render(fmt.Sprintf(" (due %s)", due.Format("Jan 2")))
		}
	}

	line += ui.Muted.Render(fmt.Sprintf(" %gh", t.Effort))
	if t.Category != "" && t.Category != task.DefaultCategory {
		line += ui.Muted.Render(" [" + t.Category + "]")
	}

	return line
}
