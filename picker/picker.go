// Package picker implements the two-step date range calendar: the user
// picks a start day, the popup reopens for the end day, and the resulting
// range is written into a single text field.
package picker

import (
	"errors"
	"fmt"
	"time"
)

// ReopenDelay is how long renderers wait between tearing down the start
// popup and showing the end popup.
const ReopenDelay = 200 * time.Millisecond

var (
	ErrClosed     = errors.New("picker: no calendar open")
	ErrInvalidDay = errors.New("picker: day not in displayed month")
)

// Mode is the picker state.
type Mode int

const (
	Closed Mode = iota
	PickingStart
	PickingEnd
)

func (m Mode) String() string {
	switch m {
	case PickingStart:
		return "start"
	case PickingEnd:
		return "end"
	default:
		return "closed"
	}
}

// Direction is a month navigation step.
type Direction int

const (
	Prev Direction = -1
	Next Direction = 1
)

// Selection is a picked day of the displayed month.
type Selection struct {
	Month time.Month
	Year  int
	Day   int
}

// String renders the selection as "M/D/YYYY", unpadded.
func (s Selection) String() string {
	return fmt.Sprintf("%d/%d/%d", int(s.Month), s.Day, s.Year)
}

// Picker owns the date field and the popup currently mounted on it.
type Picker struct {
	now   func() time.Time
	mode  Mode
	month time.Month
	year  int
	value string
}

// New returns a closed picker. now supplies "today"; nil means time.Now.
func New(now func() time.Time) *Picker {
	if now == nil {
		now = time.Now
	}
	return &Picker{now: now}
}

// Mode returns the current state.
func (p *Picker) Mode() Mode { return p.mode }

// Value returns the date field contents.
func (p *Picker) Value() string { return p.value }

// SetValue replaces the field contents with typed text.
func (p *Picker) SetValue(v string) { p.value = v }

// Anchor returns the displayed month and year.
func (p *Picker) Anchor() (time.Month, int) { return p.month, p.year }

// Open mounts the start popup at today's month. An already open popup is
// replaced, never stacked.
func (p *Picker) Open() {
	p.mount(PickingStart)
}

func (p *Picker) mount(mode Mode) {
	today := p.now()
	p.mode = mode
	p.month = today.Month()
	p.year = today.Year()
}

// Navigate moves the displayed month, wrapping the year at either end.
func (p *Picker) Navigate(dir Direction) error {
	if p.mode == Closed {
		return ErrClosed
	}
	m := int(p.month) - 1 + int(dir)
	y := p.year
	if m > 11 {
		m = 0
		y++
	}
	if m < 0 {
		m = 11
		y--
	}
	p.month = time.Month(m + 1)
	p.year = y
	return nil
}

// SelectDay commits day of the displayed month. In start mode the field is
// overwritten and the end popup opens at today's month; in end mode the day
// is appended to the start date and the picker closes.
func (p *Picker) SelectDay(day int) error {
	if p.mode == Closed {
		return ErrClosed
	}
	if day < 1 || day > DaysIn(p.month, p.year) {
		return fmt.Errorf("%w: %d", ErrInvalidDay, day)
	}

	sel := Selection{Month: p.month, Year: p.year, Day: day}
	switch p.mode {
	case PickingStart:
		p.value = sel.String()
		p.mount(PickingEnd)
	case PickingEnd:
		p.value = p.value + " - " + sel.String()
		p.mode = Closed
	}
	return nil
}

// Dismiss closes any popup without committing a date.
func (p *Picker) Dismiss() {
	p.mode = Closed
}

// View returns the grid of the mounted popup.
func (p *Picker) View() (Grid, bool) {
	if p.mode == Closed {
		return Grid{}, false
	}
	return Render(p.month, p.year), true
}
