// Package tui hosts the Bubble Tea program: a month calendar over the day
// editor modal.
package tui

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/v2/textinput"
	tea "github.com/charmbracelet/bubbletea/v2"

	"github.com/renraku-cli/renraku/pkg/app"
	"github.com/renraku-cli/renraku/pkg/calendar"
	"github.com/renraku-cli/renraku/pkg/datekey"
	"github.com/renraku-cli/renraku/pkg/share"
	"github.com/renraku-cli/renraku/pkg/store"
	"github.com/renraku-cli/renraku/pkg/tui/theme"
)

var weekdayHeader = "日 月 火 水 木 金 土"

// Model owns all UI state: the displayed (year, month), the day cursor, and
// the editor modal when one is open. The displayed month is never persisted
// and starts at the real current month.
type Model struct {
	svc   *app.Service
	ctx   context.Context
	theme theme.Theme

	// now is injectable so view tests can pin the clock.
	now func() time.Time

	year   int
	month0 int
	cursor int // day of the displayed month under the cursor

	editor *editor

	status string

	watchCh     <-chan store.Event
	watchCancel context.CancelFunc
}

// New constructs the root model positioned on the current month.
func New(svc *app.Service) *Model {
	return newModel(svc, time.Now)
}

func newModel(svc *app.Service, now func() time.Time) *Model {
	today := now()
	return &Model{
		svc:    svc,
		ctx:    context.Background(),
		theme:  theme.Default(),
		now:    now,
		year:   today.Year(),
		month0: int(today.Month()) - 1,
		cursor: today.Day(),
	}
}

// Run launches the interactive TUI program.
func Run(ctx context.Context, svc *app.Service) error {
	m := New(svc)
	m.ctx = ctx
	p := tea.NewProgram(m, tea.WithAltScreen())
	_, err := p.Run()
	return err
}

func (m *Model) Init() tea.Cmd {
	return startWatchCmd(m.ctx, m.svc)
}

func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch v := msg.(type) {
	case tea.KeyPressMsg:
		if v.String() == "ctrl+c" {
			m.stopWatch()
			return m, tea.Quit
		}
		if m.editor != nil {
			return m.updateEditor(v)
		}
		return m.updateMonth(v)
	case watchStartedMsg:
		if v.err != nil {
			m.status = "watch unavailable"
			return m, nil
		}
		m.watchCh = v.ch
		m.watchCancel = v.cancel
		return m, m.waitForWatch()
	case watchEventMsg:
		if err := m.svc.Refresh(); err != nil {
			m.status = err.Error()
		}
		return m, m.waitForWatch()
	case watchStoppedMsg:
		m.watchCh = nil
		return m, nil
	case shareFailedMsg:
		m.status = v.err.Error()
		return m, nil
	}

	if m.editor != nil {
		return m, m.editor.Update(msg)
	}
	return m, nil
}

func (m *Model) updateMonth(msg tea.KeyPressMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q", "esc":
		m.stopWatch()
		return m, tea.Quit
	case "left", "h":
		m.moveCursor(-1)
	case "right", "l":
		m.moveCursor(1)
	case "up", "k":
		m.moveCursor(-7)
	case "down", "j":
		m.moveCursor(7)
	case "[", "pgup":
		m.year, m.month0 = calendar.PrevMonth(m.year, m.month0)
		m.clampCursor()
	case "]", "pgdown":
		m.year, m.month0 = calendar.NextMonth(m.year, m.month0)
		m.clampCursor()
	case "t":
		today := m.now()
		m.year = today.Year()
		m.month0 = int(today.Month()) - 1
		m.cursor = today.Day()
	case "enter":
		return m, m.openEditor()
	}
	return m, nil
}

func (m *Model) updateEditor(msg tea.KeyPressMsg) (tea.Model, tea.Cmd) {
	e := m.editor
	switch msg.String() {
	case "esc":
		// Close without saving; edits are discarded and the selection
		// cleared.
		m.editor = nil
		return m, nil
	case "tab", "down":
		e.cycle(1)
		return m, textinput.Blink
	case "shift+tab", "up":
		e.cycle(-1)
		return m, textinput.Blink
	case "ctrl+s":
		return m, m.save()
	case "ctrl+o":
		return m, m.share()
	}
	return m, e.Update(msg)
}

// moveCursor shifts the day cursor, rolling into the neighboring month when
// it walks off either end.
func (m *Model) moveCursor(delta int) {
	day := m.cursor + delta
	days := calendar.DaysIn(m.year, m.month0)
	switch {
	case day < 1:
		m.year, m.month0 = calendar.PrevMonth(m.year, m.month0)
		m.cursor = calendar.DaysIn(m.year, m.month0) + day
		m.clampCursor()
	case day > days:
		m.year, m.month0 = calendar.NextMonth(m.year, m.month0)
		m.cursor = day - days
		m.clampCursor()
	default:
		m.cursor = day
	}
}

func (m *Model) clampCursor() {
	if days := calendar.DaysIn(m.year, m.month0); m.cursor > days {
		m.cursor = days
	}
	if m.cursor < 1 {
		m.cursor = 1
	}
}

// openEditor transitions closed → open, loading the stored record when one
// exists.
func (m *Model) openEditor() tea.Cmd {
	date := time.Date(m.year, time.Month(m.month0+1), m.cursor, 0, 0, 0, 0, time.Local)
	rec, ok := m.svc.Day(date)
	m.editor = newEditor(date, rec, ok, m.theme.Editor)
	m.status = ""
	return textinput.Blink
}

// save persists the current field values and closes the editor. With no
// editor open it is a no-op.
func (m *Model) save() tea.Cmd {
	if m.editor == nil {
		return nil
	}
	if err := m.svc.Save(m.ctx, m.editor.date, m.editor.Record()); err != nil {
		m.status = err.Error()
		return nil
	}
	m.status = "saved"
	m.editor = nil
	return nil
}

// share opens the LINE deep link with the live field values, saved or not.
// With no editor open it is a no-op.
func (m *Model) share() tea.Cmd {
	if m.editor == nil {
		return nil
	}
	url := m.svc.ShareURL(m.editor.date, m.editor.Record())
	if url == "" {
		return nil
	}
	m.status = "opening LINE"
	return func() tea.Msg {
		if err := share.Open(url); err != nil {
			return shareFailedMsg{err: err}
		}
		return nil
	}
}

type shareFailedMsg struct {
	err error
}

func (m *Model) View() string {
	if m.editor != nil {
		return m.editor.View() + "\n" +
			m.theme.Footer.Render("tab next · ctrl+s save · ctrl+o LINE · esc close")
	}

	var b strings.Builder
	b.WriteString(m.theme.Calendar.Title.Render(fmt.Sprintf("%d年 %d月", m.year, m.month0+1)))
	b.WriteString("\n")
	b.WriteString(m.theme.Calendar.Weekdays.Render(weekdayHeader))
	b.WriteString("\n")

	today := m.now()
	cells := calendar.Grid(m.year, m.month0, today, m.svc.HasRecord)
	for _, week := range calendar.Weeks(cells) {
		rendered := make([]string, 0, len(week))
		for _, cell := range week {
			rendered = append(rendered, m.renderCell(cell))
		}
		b.WriteString(strings.Join(rendered, " "))
		b.WriteString("\n")
	}

	if m.status != "" {
		b.WriteString("\n")
		b.WriteString(m.theme.Status.Render(m.status))
	}
	b.WriteString("\n")
	b.WriteString(m.theme.Footer.Render("←↓↑→ move · [ ] month · t today · enter edit · q quit"))
	return b.String()
}

func (m *Model) renderCell(cell calendar.Cell) string {
	text := fmt.Sprintf("%2d", cell.Day)

	style := m.theme.Calendar.Day
	switch {
	case cell.OtherMonth:
		style = m.theme.Calendar.OtherMonth
	case cell.HasRecord:
		style = m.theme.Calendar.HasRecord
	}
	if cell.Today {
		style = style.Inherit(m.theme.Calendar.Today)
	}
	if !cell.OtherMonth && cell.Day == m.cursor {
		style = m.theme.Calendar.Cursor
	}
	return style.Render(text)
}

// selectedKey returns the date key open in the editor, or "" when closed.
// The selection only exists while the modal is up.
func (m *Model) selectedKey() string {
	if m.editor == nil {
		return ""
	}
	return datekey.ForDate(m.editor.date)
}

type watchStartedMsg struct {
	ch     <-chan store.Event
	cancel context.CancelFunc
	err    error
}

type watchEventMsg struct {
	event store.Event
}

type watchStoppedMsg struct{}

func startWatchCmd(parent context.Context, svc *app.Service) tea.Cmd {
	if svc == nil {
		return nil
	}
	return func() tea.Msg {
		ctx, cancel := context.WithCancel(parent)
		ch, err := svc.Watch(ctx)
		if err != nil {
			cancel()
			return watchStartedMsg{err: err}
		}
		return watchStartedMsg{ch: ch, cancel: cancel}
	}
}

func (m *Model) waitForWatch() tea.Cmd {
	if m.watchCh == nil {
		return nil
	}
	ch := m.watchCh
	return func() tea.Msg {
		if ev, ok := <-ch; ok {
			return watchEventMsg{event: ev}
		}
		return watchStoppedMsg{}
	}
}

func (m *Model) stopWatch() {
	if m.watchCancel != nil {
		m.watchCancel()
		m.watchCancel = nil
	}
	m.watchCh = nil
}
