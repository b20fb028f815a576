// Package printers renders records and month grids for the plain CLI
// commands.
package printers

import (
	"fmt"
	"strings"
	"time"

	"github.com/fatih/color"
	"github.com/gosuri/uitable"

	"github.com/renraku-cli/renraku/pkg/calendar"
	"github.com/renraku-cli/renraku/pkg/record"
	"github.com/renraku-cli/renraku/pkg/share"
)

type PrettyPrint struct{}

const width = len("11 12 13 14 15 16 17") // an example week

// Month prints a grid for (year, zero-based month): days with records bold,
// today underlined, the previous month's lead-in faint.
func (pp *PrettyPrint) Month(year, month0 int, today time.Time, has func(key string) bool) {
	tf := color.New(color.FgWhite, color.Italic)
	m := time.Month(month0 + 1).String()
	label := fmt.Sprintf("%s %d", m, year)
	mid := (width - len(label)) / 2
	if mid < 0 {
		mid = 0
	}
	tf.Printf("%s%s\n", strings.Repeat(" ", mid), label)

	faint := color.New(color.Faint, color.FgWhite)
	plain := color.New(color.FgWhite)
	bold := color.New(color.Bold, color.FgHiWhite)

	col := 0
	for _, cell := range calendar.Grid(year, month0, today, has) {
		printer := plain
		switch {
		case cell.OtherMonth:
			printer = faint
		case cell.HasRecord:
			printer = bold
		}
		if cell.Today {
			printer = color.New(color.Underline, color.Bold, color.FgHiWhite)
		}
		printer.Printf("%2d ", cell.Day)
		col++
		if col == 7 {
			col = 0
			fmt.Print("\n")
		}
	}
	if col != 0 {
		fmt.Print("\n")
	}
	fmt.Print("\n")
}

var fieldLabels = []string{
	"men go", "men return", "men balls",
	"women go", "women return", "women balls",
	"others go", "others return", "others balls",
	"unneeded items",
}

// Day prints one day's record as a label/value table, followed by the share
// message preview.
func (pp *PrettyPrint) Day(date time.Time, rec record.Record) {
	t := color.New(color.Bold, color.Underline)
	t.Println(date.Format("January 2, 2006"))

	tbl := uitable.New()
	tbl.Separator = "  "
	none := color.New(color.Faint, color.Italic).Sprint("none")
	for i, f := range rec.Fields() {
		v := *f
		if v == "" {
			v = none
		}
		tbl.AddRow(fieldLabels[i], v)
	}
	fmt.Fprintln(color.Output, tbl)

	f := color.New(color.Faint)
	f.Println("\n" + share.Format(date, rec))
}

// NoDay prints the placeholder for a date with nothing stored.
func (pp *PrettyPrint) NoDay(date time.Time) {
	t := color.New(color.Bold, color.Underline)
	t.Println(date.Format("January 2, 2006"))
	f := color.New(color.Faint, color.Italic)
	f.Print(" none\n\n")
}

// List prints every stored day with which groups carry data.
func (pp *PrettyPrint) List(days []time.Time, get func(time.Time) (record.Record, bool)) {
	if len(days) == 0 {
		f := color.New(color.Faint, color.Italic)
		f.Print(" none\n\n")
		return
	}

	tbl := uitable.New()
	tbl.Separator = "  "
	bold := color.New(color.Bold)
	tbl.AddRow(bold.Sprint("Date"), bold.Sprint("Groups"), bold.Sprint("Unneeded"))
	for _, day := range days {
		rec, ok := get(day)
		if !ok {
			continue
		}
		groups := make([]string, 0, 3)
		if !rec.Men().Empty() {
			groups = append(groups, "men")
		}
		if !rec.Women().Empty() {
			groups = append(groups, "women")
		}
		if !rec.Others().Empty() {
			groups = append(groups, "others")
		}
		misc := ""
		if strings.TrimSpace(rec.Unneeded) != "" {
			misc = "yes"
		}
		tbl.AddRow(day.Format("2006-01-02 (Mon)"), strings.Join(groups, ", "), misc)
	}
	fmt.Fprintln(color.Output, tbl)
}
