package picker

import (
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fixedClock(year int, month time.Month, day int) func() time.Time {
	return func() time.Time {
		return time.Date(year, month, day, 9, 30, 0, 0, time.UTC)
	}
}

func TestRender_MonthStartingSunday(t *testing.T) {
	g := Render(time.March, 2026)

	assert.Equal(t, 0, g.Leading)
	assert.Equal(t, 31, g.Days)
	assert.Len(t, g.Cells, 31)
	assert.Equal(t, 1, g.Cells[0].Day)
	assert.Equal(t, "March 2026", g.Title)
	assert.Equal(t, "Sun", g.Weekdays[0])
	assert.Equal(t, "Sat", g.Weekdays[6])
}

func TestRender_MonthStartingWednesday(t *testing.T) {
	g := Render(time.April, 2026)

	assert.Equal(t, 3, g.Leading)
	assert.Equal(t, 30, g.Days)
	for _, c := range g.Cells[:3] {
		assert.True(t, c.Blank())
	}
	assert.Equal(t, 1, g.Cells[3].Day)
	assert.Equal(t, 30, g.Cells[len(g.Cells)-1].Day)
}

func TestRender_Rows(t *testing.T) {
	g := Render(time.April, 2026)
	rows := g.Rows()

	require.Len(t, rows, 5)
	for _, r := range rows[:4] {
		assert.Len(t, r, 7)
	}
	assert.Len(t, rows[4], 5)
}

func TestDaysIn_LeapYears(t *testing.T) {
	assert.Equal(t, 28, DaysIn(time.February, 2026))
	assert.Equal(t, 29, DaysIn(time.February, 2028))
	assert.Equal(t, 28, DaysIn(time.February, 2100))
	assert.Equal(t, 29, DaysIn(time.February, 2000))
	assert.Equal(t, 31, DaysIn(time.December, 2026))
}

func TestPicker_OpenAnchorsToday(t *testing.T) {
	p := New(fixedClock(2026, time.October, 19))
	assert.Equal(t, Closed, p.Mode())

	p.Open()

	assert.Equal(t, PickingStart, p.Mode())
	m, y := p.Anchor()
	assert.Equal(t, time.October, m)
	assert.Equal(t, 2026, y)

	g, ok := p.View()
	require.True(t, ok)
	assert.Equal(t, "October 2026", g.Title)
}

func TestPicker_RoundTrip(t *testing.T) {
	p := New(fixedClock(2026, time.October, 19))

	p.Open()
	require.NoError(t, p.SelectDay(5))
	assert.Equal(t, PickingEnd, p.Mode())
	assert.Equal(t, "10/5/2026", p.Value())

	require.NoError(t, p.SelectDay(20))
	assert.Equal(t, Closed, p.Mode())
	assert.Equal(t, "10/5/2026 - 10/20/2026", p.Value())

	_, ok := p.View()
	assert.False(t, ok)
}

func TestPicker_EndPopupReanchorsAtToday(t *testing.T) {
	p := New(fixedClock(2026, time.October, 19))

	p.Open()
	require.NoError(t, p.Navigate(Next))
	require.NoError(t, p.Navigate(Next))
	require.NoError(t, p.SelectDay(3))
	assert.Equal(t, "12/3/2026", p.Value())

	m, y := p.Anchor()
	assert.Equal(t, time.October, m)
	assert.Equal(t, 2026, y)

	require.NoError(t, p.Navigate(Next))
	require.NoError(t, p.Navigate(Next))
	require.NoError(t, p.SelectDay(17))
	assert.Equal(t, "12/3/2026 - 12/17/2026", p.Value())
}

func TestPicker_NavigateWrapsYear(t *testing.T) {
	p := New(fixedClock(2026, time.December, 1))
	p.Open()

	require.NoError(t, p.Navigate(Next))
	m, y := p.Anchor()
	assert.Equal(t, time.January, m)
	assert.Equal(t, 2027, y)

	require.NoError(t, p.Navigate(Prev))
	require.NoError(t, p.Navigate(Prev))
	m, y = p.Anchor()
	assert.Equal(t, time.November, m)
	assert.Equal(t, 2026, y)

	q := New(fixedClock(2026, time.January, 15))
	q.Open()
	require.NoError(t, q.Navigate(Prev))
	m, y = q.Anchor()
	assert.Equal(t, time.December, m)
	assert.Equal(t, 2025, y)
}

func TestPicker_DismissKeepsField(t *testing.T) {
	p := New(fixedClock(2026, time.October, 19))

	p.Open()
	require.NoError(t, p.SelectDay(5))
	p.Dismiss()

	assert.Equal(t, Closed, p.Mode())
	assert.Equal(t, "10/5/2026", p.Value())

	p.Open()
	p.Dismiss()
	assert.Equal(t, "10/5/2026", p.Value())
}

func TestPicker_ReopenReplacesPopup(t *testing.T) {
	p := New(fixedClock(2026, time.October, 19))
	p.SetValue("10/1/2026 - 10/9/2026")

	p.Open()
	require.NoError(t, p.Navigate(Next))
	p.Open()

	assert.Equal(t, PickingStart, p.Mode())
	m, _ := p.Anchor()
	assert.Equal(t, time.October, m)

	require.NoError(t, p.SelectDay(2))
	assert.Equal(t, "10/2/2026", p.Value())
}

func TestPicker_InvalidDay(t *testing.T) {
	p := New(fixedClock(2026, time.February, 10))
	p.Open()

	err := p.SelectDay(29)
	assert.True(t, errors.Is(err, ErrInvalidDay))
	err = p.SelectDay(0)
	assert.True(t, errors.Is(err, ErrInvalidDay))

	assert.Equal(t, PickingStart, p.Mode())
	assert.Empty(t, p.Value())
}

func TestPicker_ClosedRejectsInput(t *testing.T) {
	p := New(fixedClock(2026, time.October, 19))

	assert.ErrorIs(t, p.Navigate(Next), ErrClosed)
	assert.ErrorIs(t, p.SelectDay(1), ErrClosed)
	assert.Empty(t, p.Value())
}

func TestPicker_HandleEvents(t *testing.T) {
	p := New(fixedClock(2026, time.October, 19))

	events := []Event{
		{Kind: EventOpen},
		{Kind: EventPrev},
		{Kind: EventPickDay, Day: 5},
		{Kind: EventNext},
		{Kind: EventPickDay, Day: 20},
	}
	for _, ev := range events {
		require.NoError(t, p.Handle(ev))
	}

	assert.Equal(t, "9/5/2026 - 11/20/2026", p.Value())
	assert.Error(t, p.Handle(Event{Kind: EventKind(99)}))
}

func TestPicker_FieldInvariant(t *testing.T) {
	p := New(fixedClock(2026, time.October, 19))
	p.Open()
	require.NoError(t, p.SelectDay(5))
	first := p.Value()
	require.NoError(t, p.SelectDay(20))

	m, y := time.October, 2026
	assert.Equal(t, fmt.Sprintf("%d/5/%d", m, y), first)
	assert.Equal(t, fmt.Sprintf("%d/5/%d - %d/20/%d", m, y, m, y), p.Value())
}

func TestModeString(t *testing.T) {
	assert.Equal(t, "closed", Closed.String())
	assert.Equal(t, "start", PickingStart.String())
	assert.Equal(t, "end", PickingEnd.String())
}
