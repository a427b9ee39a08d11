package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"tripchat/picker"
)

// reopenMsg ends the pause between the start and end popups.
type reopenMsg struct{}

// CalendarModel drives a picker.Picker from the keyboard. It quits once a
// full range is picked or the popup is dismissed.
type CalendarModel struct {
	picker    *picker.Picker
	keys      KeyMap
	help      help.Model
	cursor    int
	reopening bool
	canceled  bool
	err       error
}

// NewCalendar opens p on today's month with the cursor on today.
func NewCalendar(p *picker.Picker, now func() time.Time) CalendarModel {
	if now == nil {
		now = time.Now
	}
	p.Open()
	return CalendarModel{
		picker: p,
		keys:   DefaultKeyMap(),
		help:   help.New(),
		cursor: now().Day(),
	}
}

func (m CalendarModel) Init() tea.Cmd {
	return nil
}

// Value is the text of the date field.
func (m CalendarModel) Value() string { return m.picker.Value() }

// Done reports whether the picker has closed.
func (m CalendarModel) Done() bool { return m.picker.Mode() == picker.Closed }

// Canceled reports whether the popup was dismissed before a range was
// complete.
func (m CalendarModel) Canceled() bool { return m.canceled }

func (m CalendarModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case reopenMsg:
		m.reopening = false
		return m, nil

	case tea.KeyMsg:
		if key.Matches(msg, m.keys.Quit) {
			m.picker.Dismiss()
			m.canceled = true
			return m, tea.Quit
		}
		if m.reopening || m.Done() {
			return m, nil
		}
		m.err = nil

		switch {
		case key.Matches(msg, m.keys.Dismiss):
			m.picker.Dismiss()
			m.canceled = true
			return m, tea.Quit
		case key.Matches(msg, m.keys.PrevMonth):
			m.navigate(picker.Prev)
		case key.Matches(msg, m.keys.NextMonth):
			m.navigate(picker.Next)
		case key.Matches(msg, m.keys.Left):
			m.moveCursor(-1)
		case key.Matches(msg, m.keys.Right):
			m.moveCursor(1)
		case key.Matches(msg, m.keys.Up):
			m.moveCursor(-7)
		case key.Matches(msg, m.keys.Down):
			m.moveCursor(7)
		case key.Matches(msg, m.keys.Pick):
			return m.pick()
		}
	}
	return m, nil
}

func (m *CalendarModel) navigate(dir picker.Direction) {
	if err := m.picker.Navigate(dir); err != nil {
		m.err = err
		return
	}
	m.clampCursor()
}

func (m *CalendarModel) moveCursor(delta int) {
	m.cursor += delta
	m.clampCursor()
}

func (m *CalendarModel) clampCursor() {
	month, year := m.picker.Anchor()
	days := picker.DaysIn(month, year)
	m.cursor = max(1, min(m.cursor, days))
}

func (m CalendarModel) pick() (tea.Model, tea.Cmd) {
	mode := m.picker.Mode()
	if err := m.picker.SelectDay(m.cursor); err != nil {
		m.err = err
		return m, nil
	}
	if mode == picker.PickingStart {
		m.reopening = true
		m.clampCursor()
		return m, tea.Tick(picker.ReopenDelay, func(time.Time) tea.Msg { return reopenMsg{} })
	}
	return m, tea.Quit
}

func (m CalendarModel) View() string {
	var b strings.Builder

	b.WriteString(dimStyle.Render("Dates: "))
	if v := m.Value(); v != "" {
		b.WriteString(v)
	} else {
		b.WriteString(dimStyle.Render("pick a start date"))
	}
	b.WriteString("\n\n")

	grid, open := m.picker.View()
	if !open || m.reopening {
		return b.String()
	}

	label := "Start date"
	if m.picker.Mode() == picker.PickingEnd {
		label = "End date"
	}
	b.WriteString(titleStyle.Render(fmt.Sprintf("%s · %s", label, grid.Title)))
	b.WriteString("\n")
	b.WriteString(renderGrid(grid, m.cursor))
	b.WriteString("\n")

	if m.err != nil {
		b.WriteString(errorStyle.Render(m.err.Error()))
		b.WriteString("\n")
	}
	b.WriteString(m.help.View(m.keys))
	return b.String()
}

func renderGrid(g picker.Grid, cursor int) string {
	header := make([]string, 0, len(g.Weekdays))
	for _, wd := range g.Weekdays {
		header = append(header, dayStyle.Render(wd[:2]))
	}

	lines := []string{weekdayStyle.Render(lipgloss.JoinHorizontal(lipgloss.Top, header...))}
	for _, row := range g.Rows() {
		cells := make([]string, 0, 7)
		for _, c := range row {
			switch {
			case c.Blank():
				cells = append(cells, dayStyle.Render(""))
			case c.Day == cursor:
				cells = append(cells, cursorStyle.Render(fmt.Sprint(c.Day)))
			default:
				cells = append(cells, dayStyle.Render(fmt.Sprint(c.Day)))
			}
		}
		lines = append(lines, lipgloss.JoinHorizontal(lipgloss.Top, cells...))
	}
	return strings.Join(lines, "\n")
}
