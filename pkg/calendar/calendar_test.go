package calendar

import (
	"testing"
	"time"

	"github.com/renraku-cli/renraku/pkg/datekey"
)

func countCurrent(cells []Cell) int {
	n := 0
	for _, c := range cells {
		if !c.OtherMonth {
			n++
		}
	}
	return n
}

func TestGridDayCounts(t *testing.T) {
	tests := []struct {
		year   int
		month0 int
		want   int
	}{
		{2024, 1, 29}, // leap February
		{2023, 1, 28},
		{2024, 3, 30}, // April
		{2024, 0, 31}, // January
		{2024, 11, 31},
	}
	for _, tc := range tests {
		cells := Grid(tc.year, tc.month0, time.Time{}, nil)
		if got := countCurrent(cells); got != tc.want {
			t.Fatalf("%d-%02d: expected %d current-month cells, got %d",
				tc.year, tc.month0+1, tc.want, got)
		}
	}
}

func TestGridLeadingPadding(t *testing.T) {
	// January 2024 starts on a Monday, so exactly one cell of December
	// (the 31st) pads the Sunday column.
	cells := Grid(2024, 0, time.Time{}, nil)
	if !cells[0].OtherMonth || cells[0].Day != 31 {
		t.Fatalf("expected leading cell Dec 31, got %+v", cells[0])
	}
	if cells[1].OtherMonth || cells[1].Day != 1 {
		t.Fatalf("expected day 1 after padding, got %+v", cells[1])
	}
	// No trailing padding: the grid ends on the last day of the month.
	last := cells[len(cells)-1]
	if last.OtherMonth || last.Day != 31 {
		t.Fatalf("expected trailing cell Jan 31, got %+v", last)
	}
}

func TestGridNoPaddingWhenMonthStartsSunday(t *testing.T) {
	// September 2024 starts on a Sunday.
	cells := Grid(2024, 8, time.Time{}, nil)
	if cells[0].OtherMonth {
		t.Fatalf("expected no leading padding, got %+v", cells[0])
	}
	if len(cells) != 30 {
		t.Fatalf("expected 30 cells, got %d", len(cells))
	}
}

func TestGridToday(t *testing.T) {
	today := time.Date(2024, time.January, 5, 10, 0, 0, 0, time.Local)

	cells := Grid(2024, 0, today, nil)
	marked := 0
	for _, c := range cells {
		if c.Today {
			marked++
			if c.Day != 5 || c.OtherMonth {
				t.Fatalf("wrong cell marked today: %+v", c)
			}
		}
	}
	if marked != 1 {
		t.Fatalf("expected exactly one today cell, got %d", marked)
	}

	// A different displayed month marks nothing.
	for _, c := range Grid(2024, 1, today, nil) {
		if c.Today {
			t.Fatalf("today marked outside the current month: %+v", c)
		}
	}
}

func TestGridHasRecord(t *testing.T) {
	key := datekey.Encode(2024, 0, 5)
	cells := Grid(2024, 0, time.Time{}, func(k string) bool { return k == key })
	for _, c := range cells {
		if c.HasRecord != (c.Day == 5 && !c.OtherMonth) {
			t.Fatalf("unexpected HasRecord on %+v", c)
		}
	}
}

func TestWeeks(t *testing.T) {
	cells := Grid(2024, 0, time.Time{}, nil) // 1 pad + 31 days = 32 cells
	weeks := Weeks(cells)
	if len(weeks) != 5 {
		t.Fatalf("expected 5 rows, got %d", len(weeks))
	}
	if len(weeks[4]) != 4 {
		t.Fatalf("expected short last row of 4, got %d", len(weeks[4]))
	}
}

func TestDaysInNormalizesMonth(t *testing.T) {
	// "month -1" is December of the prior year.
	if got := DaysIn(2024, -1); got != 31 {
		t.Fatalf("expected 31, got %d", got)
	}
	if got := DaysIn(2024, 1); got != 29 {
		t.Fatalf("expected 29, got %d", got)
	}
}

func TestMonthNavigation(t *testing.T) {
	y, m := NextMonth(2023, 11)
	if y != 2024 || m != 0 {
		t.Fatalf("expected 2024-01, got %d-%02d", y, m+1)
	}
	y, m = PrevMonth(2024, 0)
	if y != 2023 || m != 11 {
		t.Fatalf("expected 2023-12, got %d-%02d", y, m+1)
	}
}

func TestStartDay(t *testing.T) {
	if got := StartDay(2024, 0); got != time.Monday {
		t.Fatalf("January 2024 starts Monday, got %v", got)
	}
}
