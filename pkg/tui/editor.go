package tui

import (
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/v2/textinput"
	tea "github.com/charmbracelet/bubbletea/v2"

	"github.com/renraku-cli/renraku/pkg/record"
	"github.com/renraku-cli/renraku/pkg/share"
	"github.com/renraku-cli/renraku/pkg/tui/theme"
)

const fieldCount = 10

var fieldLabels = [fieldCount]string{
	"行き", "帰り", "ボール",
	"行き", "帰り", "ボール",
	"行き", "帰り", "ボール",
	"いらない荷物",
}

var sectionTitles = [3]string{"男子", "女子", "他"}

// editor is the day-editor modal: ten labeled inputs over one date. It only
// exists while open; closing the editor drops it along with any unsaved
// edits.
type editor struct {
	date      time.Time
	populated bool
	inputs    [fieldCount]textinput.Model
	focus     int
	theme     theme.EditorTheme
}

// newEditor opens the modal for date, loading the record's values into the
// inputs. populated records which state the editor opened in.
func newEditor(date time.Time, rec record.Record, populated bool, th theme.EditorTheme) *editor {
	e := &editor{
		date:      date,
		populated: populated,
		theme:     th,
	}
	values := rec.Fields()
	for i := range e.inputs {
		ti := textinput.New()
		ti.Prompt = ""
		ti.CharLimit = 128
		ti.SetWidth(24)
		ti.SetValue(*values[i])
		e.inputs[i] = ti
	}
	e.inputs[0].Focus()
	return e
}

// Record builds a record from the current input values, saved or not.
func (e *editor) Record() record.Record {
	var rec record.Record
	fields := rec.Fields()
	for i := range e.inputs {
		*fields[i] = e.inputs[i].Value()
	}
	return rec
}

func (e *editor) cycle(delta int) {
	e.inputs[e.focus].Blur()
	e.focus = (e.focus + delta + fieldCount) % fieldCount
	e.inputs[e.focus].Focus()
}

// Update routes a message to the focused input.
func (e *editor) Update(msg tea.Msg) tea.Cmd {
	var cmd tea.Cmd
	e.inputs[e.focus], cmd = e.inputs[e.focus].Update(msg)
	return cmd
}

func (e *editor) View() string {
	var b strings.Builder
	b.WriteString(e.theme.Title.Render(share.DateLabel(e.date)))
	b.WriteString("\n\n")

	for s, title := range sectionTitles {
		b.WriteString(e.theme.Section.Render("【" + title + "】"))
		b.WriteString("\n")
		for j := 0; j < 3; j++ {
			i := s*3 + j
			b.WriteString(e.renderField(i))
			b.WriteString("\n")
		}
	}

	b.WriteString("\n")
	b.WriteString(e.renderField(9))

	return e.theme.Frame.Render(b.String())
}

func (e *editor) renderField(i int) string {
	label := e.theme.Label
	if i == e.focus {
		label = e.theme.FocusedLabel
	}
	return label.Render(fieldLabels[i]+"：") + e.inputs[i].View()
}
