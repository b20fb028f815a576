// Package calendar computes month grids without any I/O or styling, so the
// layout logic stays testable apart from whichever surface renders it.
package calendar

import (
	"time"

	"github.com/renraku-cli/renraku/pkg/datekey"
)

// Cell describes a single day cell in a month grid.
type Cell struct {
	// Day is the day-of-month number shown in the cell. For OtherMonth
	// cells it belongs to the previous month.
	Day        int
	OtherMonth bool
	Today      bool
	HasRecord  bool
}

// Grid emits the cells for (year, zero-based month): first the tail days of
// the previous month, enough to align day 1 to its weekday column, then one
// cell per day of the target month. There is no trailing padding for the
// next month.
func Grid(year, month0 int, today time.Time, has func(key string) bool) []Cell {
	first := time.Date(year, time.Month(month0+1), 1, 0, 0, 0, 0, time.Local)
	offset := int(first.Weekday())
	days := DaysIn(year, month0)
	prevDays := DaysIn(year, month0-1)

	cells := make([]Cell, 0, offset+days)
	for i := offset; i > 0; i-- {
		cells = append(cells, Cell{Day: prevDays - i + 1, OtherMonth: true})
	}

	for day := 1; day <= days; day++ {
		cell := Cell{Day: day}
		if day == today.Day() &&
			time.Month(month0+1) == today.Month() &&
			year == today.Year() {
			cell.Today = true
		}
		if has != nil && has(datekey.Encode(year, month0, day)) {
			cell.HasRecord = true
		}
		cells = append(cells, cell)
	}
	return cells
}

// Weeks chunks grid cells into rows of seven. The last row may be short
// since the grid carries no trailing padding.
func Weeks(cells []Cell) [][]Cell {
	weeks := make([][]Cell, 0, (len(cells)+6)/7)
	for len(cells) > 0 {
		n := 7
		if len(cells) < n {
			n = len(cells)
		}
		weeks = append(weeks, cells[:n])
		cells = cells[n:]
	}
	return weeks
}

// DaysIn returns the day count of (year, zero-based month). Out-of-range
// months are normalized by time.Date, so month0 == -1 means December of the
// prior year.
func DaysIn(year, month0 int) int {
	return time.Date(year, time.Month(month0+2), 0, 0, 0, 0, 0, time.UTC).Day()
}

// StartDay returns the weekday of day 1 of (year, zero-based month).
func StartDay(year, month0 int) time.Weekday {
	return time.Date(year, time.Month(month0+1), 1, 0, 0, 0, 0, time.UTC).Weekday()
}

// NextMonth advances a (year, month0) pair by one month.
func NextMonth(year, month0 int) (int, int) {
	t := time.Date(year, time.Month(month0+1), 1, 0, 0, 0, 0, time.UTC).AddDate(0, 1, 0)
	return t.Year(), int(t.Month()) - 1
}

// PrevMonth retreats a (year, month0) pair by one month.
func PrevMonth(year, month0 int) (int, int) {
	t := time.Date(year, time.Month(month0+1), 1, 0, 0, 0, 0, time.UTC).AddDate(0, -1, 0)
	return t.Year(), int(t.Month()) - 1
}
