package picker

import (
	"fmt"
	"time"
)

// Weekdays are the grid column headings, Sunday first.
var Weekdays = [7]string{"Sun", "Mon", "Tue", "Wed", "Thu", "Fri", "Sat"}

// Cell is one slot of the month grid. Leading blanks have Day == 0.
type Cell struct {
	Day int
}

// Blank reports whether the cell is a leading blank.
func (c Cell) Blank() bool { return c.Day == 0 }

// Grid is the rendered view of one month.
type Grid struct {
	Month    time.Month
	Year     int
	Title    string
	Weekdays [7]string
	Leading  int
	Days     int
	Cells    []Cell
}

// Render lays out month/year as a Sunday-first grid: one blank per weekday
// offset of the 1st, then one cell per day of the month.
func Render(month time.Month, year int) Grid {
	first := time.Date(year, month, 1, 0, 0, 0, 0, time.UTC)
	leading := int(first.Weekday())
	days := DaysIn(month, year)

	cells := make([]Cell, 0, leading+days)
	for i := 0; i < leading; i++ {
		cells = append(cells, Cell{})
	}
	for d := 1; d <= days; d++ {
		cells = append(cells, Cell{Day: d})
	}

	return Grid{
		Month:    month,
		Year:     year,
		Title:    fmt.Sprintf("%s %d", month, year),
		Weekdays: Weekdays,
		Leading:  leading,
		Days:     days,
		Cells:    cells,
	}
}

// Rows splits the cells into weeks. The last row may be short.
func (g Grid) Rows() [][]Cell {
	var rows [][]Cell
	for i := 0; i < len(g.Cells); i += 7 {
		end := i + 7
		if end > len(g.Cells) {
			end = len(g.Cells)
		}
		rows = append(rows, g.Cells[i:end])
	}
	return rows
}

// DaysIn returns the number of days in month, accounting for leap years.
func DaysIn(month time.Month, year int) int {
	// Day 0 of the next month normalizes to the last day of this one.
	return time.Date(year, month+1, 0, 0, 0, 0, 0, time.UTC).Day()
}
