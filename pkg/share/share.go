// Package share formats a day's record as the Japanese summary message and
// builds the LINE deep link that carries it.
package share

import (
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/renraku-cli/renraku/pkg/record"
)

// baseURL opens LINE's share sheet with the encoded text pre-filled.
const baseURL = "https://line.me/R/msg/text/?"

// weekdayGlyphs indexed by time.Weekday (Sunday first).
var weekdayGlyphs = [7]string{"日", "月", "火", "水", "木", "金", "土"}

// fullWidthSpace separates the sub-fields on a group's content line.
const fullWidthSpace = "　"

// DateLabel renders a date the way the message header and the editor title
// show it: {year}年{month}月{day}日(weekday glyph), month and day unpadded.
func DateLabel(date time.Time) string {
	return fmt.Sprintf("%d年%d月%d日(%s)",
		date.Year(), int(date.Month()), date.Day(), weekdayGlyphs[date.Weekday()])
}

// Format renders the share message for the given date and field values. It
// works on whatever values it is handed, saved or not, so sharing before
// saving reflects exactly what is on screen.
func Format(date time.Time, r record.Record) string {
	r = r.Trimmed()

	parts := []string{DateLabel(date)}

	// When the men's group has data and the women's has none, the note is
	// read as covering both, so the title flips from 男子 to 男女. Kept as
	// the exact convention, not generalized to other group pairs.
	mensTitle := "男子"
	if !r.Men().Empty() && r.Women().Empty() {
		mensTitle = "男女"
	}

	if block := groupBlock(mensTitle, r.Men()); block != "" {
		parts = append(parts, block)
	}
	if block := groupBlock("女子", r.Women()); block != "" {
		parts = append(parts, block)
	}
	if block := groupBlock("他", r.Others()); block != "" {
		parts = append(parts, block)
	}

	if r.Unneeded != "" {
		parts = append(parts, fmt.Sprintf("（いらない荷物：%s）", r.Unneeded))
	}

	return strings.Join(parts, "\n")
}

// groupBlock renders a 【title】 line plus one content line joining the
// present sub-fields, or "" when the whole group is empty.
func groupBlock(title string, g record.Group) string {
	if g.Empty() {
		return ""
	}

	lines := []string{fmt.Sprintf("【%s】", title)}

	content := make([]string, 0, 3)
	if g.Departure != "" {
		content = append(content, "行き："+g.Departure)
	}
	if g.Return != "" {
		content = append(content, "帰り："+g.Return)
	}
	if g.Count != "" {
		content = append(content, g.Count+"個")
	}
	if len(content) > 0 {
		lines = append(lines, strings.Join(content, fullWidthSpace))
	}

	return strings.Join(lines, "\n")
}

// URL builds the LINE deep link for the given text.
func URL(text string) string {
	return baseURL + encodeURIComponent(text)
}

// encodeURIComponent matches the JavaScript escaping LINE's share endpoint
// expects: like url.QueryEscape but with %20 for spaces and !'()*~ left
// bare.
func encodeURIComponent(s string) string {
	escaped := url.QueryEscape(s)
	escaped = strings.ReplaceAll(escaped, "+", "%20")
	for raw, enc := range map[string]string{
		"!": "%21", "'": "%27", "(": "%28", ")": "%29", "*": "%2A", "~": "%7E",
	} {
		escaped = strings.ReplaceAll(escaped, enc, raw)
	}
	return escaped
}
