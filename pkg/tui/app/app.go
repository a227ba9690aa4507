// Package pickerui hosts the Bubble Tea program composing the multi-month
// date picker: the focal value controller, the selection level machine, the
// month block planner, and the focus grid router.
package pickerui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/v2/textinput"
	tea "github.com/charmbracelet/bubbletea/v2"
	"github.com/charmbracelet/lipgloss/v2"

	"tableflip.dev/almanac/pkg/daterange"
	"tableflip.dev/almanac/pkg/focal"
	"tableflip.dev/almanac/pkg/focusgrid"
	"tableflip.dev/almanac/pkg/label"
	"tableflip.dev/almanac/pkg/level"
	"tableflip.dev/almanac/pkg/plan"
	"tableflip.dev/almanac/pkg/timeutil"
	"tableflip.dev/almanac/pkg/tui/components/daygrid"
	"tableflip.dev/almanac/pkg/tui/components/header"
	"tableflip.dev/almanac/pkg/tui/components/monthpicker"
	"tableflip.dev/almanac/pkg/tui/components/yearpicker"
	"tableflip.dev/almanac/pkg/tui/events"
	"tableflip.dev/almanac/pkg/tui/theme"
)

// ID identifies the picker in emitted events.
const ID events.ComponentID = "picker"

const blockWidth = 20 // 7 two-wide day columns joined by single spaces

// yearSpan widens the year picker around the focal year when a range bound
// is missing.
const yearSpan = 50

// Options configures the picker.
type Options struct {
	// Months is the number of side-by-side month blocks. Defaults to 1.
	Months int
	// Month supplies an externally owned focal month (controlled mode).
	Month focal.Source
	// OnMonthChange is notified on every focal month change.
	OnMonthChange focal.ChangeFunc
	// InitialMonth seeds uncontrolled mode. Zero means the current month.
	InitialMonth time.Time
	// Range bounds the navigable dates. The zero Range is unbounded.
	Range daterange.Range
	// AllowLevelChange gates the year/month pickers. Defaults to true;
	// DisableLevelChange turns it off.
	DisableLevelChange bool
	// InitialLevel seeds the selection level. Defaults to level.Date.
	InitialLevel level.Level
	// Locale selects the month label language.
	Locale string
	// Now is injectable for tests. Defaults to time.Now.
	Now func() time.Time
}

// Model is the picker program state.
type Model struct {
	ctrl    *focal.Controller
	machine *level.Machine
	planner plan.Planner
	labels  *label.Formatter
	rng     daterange.Range
	now     func() time.Time
	styles  theme.Theme

	registry *focusgrid.Registry
	focus    focusgrid.Position
	hasFocus bool

	blocks  []plan.Block
	grids   []daygrid.Model
	heading header.Model

	years  yearpicker.Model
	months monthpicker.Model

	gotoActive bool
	gotoInput  textinput.Model

	selected time.Time
	status   string

	termWidth  int
	termHeight int
}

// New builds the picker model from opts.
func New(opts Options) (*Model, error) {
	var ctrl *focal.Controller
	var err error
	if opts.Month != nil {
		ctrl, err = focal.NewControlled(opts.Month, opts.OnMonthChange)
	} else {
		ctrl, err = focal.NewUncontrolled(opts.InitialMonth, opts.OnMonthChange)
	}
	if err != nil {
		return nil, err
	}

	now := opts.Now
	if now == nil {
		now = time.Now
	}

	th := theme.Default()
	labels := label.New(opts.Locale)
	planner := plan.New(opts.Months, opts.Range, labels.Month)

	m := &Model{
		ctrl:     ctrl,
		planner:  planner,
		labels:   labels,
		rng:      opts.Range,
		now:      now,
		styles:   th,
		registry: focusgrid.NewRegistry(planner.Count),
		heading:  header.New(th.Header, blockWidth),
	}

	m.machine = level.NewMachine(
		opts.InitialLevel,
		!opts.DisableLevelChange,
		ctrl.Get().Year(),
		func(year int, month time.Month) {
			ctrl.Set(time.Date(year, month, 1, 0, 0, 0, 0, time.UTC))
		},
	)

	ti := textinput.New()
	ti.Placeholder = "2024-03-09"
	ti.CharLimit = 32
	ti.Prompt = ""
	m.gotoInput = ti

	m.grids = make([]daygrid.Model, planner.Count)
	for i := range m.grids {
		m.grids[i] = daygrid.New(i, th.Grid)
	}
	m.rebuild()
	if m.machine.Current() != level.Date {
		m.enterPickers()
	}
	return m, nil
}

// rebuild recomputes the block window and repopulates the focus registry.
// The registry always reflects the rendered blocks before any navigation
// event against them is handled.
func (m *Model) rebuild() {
	focalMonth := m.ctrl.Get()
	m.blocks = m.planner.Blocks(focalMonth)
	m.registry.Reset(len(m.blocks))
	for i := range m.grids {
		m.grids[i].SetMonth(m.blocks[i].Month)
		m.grids[i].SetRange(m.rng)
		m.grids[i].Populate(m.registry)
	}
	if m.hasFocus {
		if _, ok := m.registry.At(m.focus); !ok {
			m.hasFocus = false
		}
	}
	m.machine.SeedYear(focalMonth.Year())
}

// enterPickers (re)builds the year and month picker models for the current
// cursor.
func (m *Model) enterPickers() {
	focalMonth := m.ctrl.Get()
	minYear, maxYear := m.rng.YearBounds(focalMonth, yearSpan)
	m.years = yearpicker.New(minYear, maxYear, m.machine.YearCursor(), m.rng, m.styles.Picker)
	m.months = monthpicker.New(m.machine.YearCursor(), focalMonth, m.rng, m.labels, m.styles.Picker)
}

// Selected returns the committed date, zero when the picker was dismissed.
func (m *Model) Selected() time.Time { return m.selected }

// FocalMonth returns the current focal month.
func (m *Model) FocalMonth() time.Time { return m.ctrl.Get() }

// Level returns the active selection level.
func (m *Model) Level() level.Level { return m.machine.Current() }

// Init implements tea.Model.
func (m *Model) Init() tea.Cmd { return nil }

// Update implements tea.Model.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.termWidth, m.termHeight = msg.Width, msg.Height
		return m, nil

	case events.YearChosenMsg:
		if m.machine.ChooseYear(msg.Year) {
			m.months = monthpicker.New(msg.Year, m.ctrl.Get(), m.rng, m.labels, m.styles.Picker)
			return m, announceLevel(m.machine.Current())
		}
		return m, nil

	case events.MonthChosenMsg:
		if m.machine.ChooseMonth(msg.Year, msg.Month) {
			m.rebuild()
			return m, tea.Batch(
				announceLevel(m.machine.Current()),
				announceMonth(m.ctrl.Get()),
			)
		}
		return m, nil

	case tea.KeyPressMsg:
		return m.handleKey(msg)
	}

	return m, nil
}

func (m *Model) handleKey(msg tea.KeyPressMsg) (tea.Model, tea.Cmd) {
	if key := msg.String(); key == "ctrl+c" {
		m.selected = time.Time{}
		return m, tea.Quit
	}

	if m.gotoActive {
		return m.handleGotoKey(msg)
	}

	switch m.machine.Current() {
	case level.Year:
		var cmd tea.Cmd
		m.years, cmd = m.years.Update(msg)
		return m, cmd
	case level.Month:
		if msg.String() == "esc" {
			if m.machine.RequestLevelUp() {
				m.enterPickers()
				return m, announceLevel(m.machine.Current())
			}
			return m, nil
		}
		var cmd tea.Cmd
		m.months, cmd = m.months.Update(msg)
		return m, cmd
	}
	return m.handleDateKey(msg)
}

func (m *Model) handleDateKey(msg tea.KeyPressMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q", "esc":
		m.selected = time.Time{}
		return m, tea.Quit

	case "up", "k":
		m.moveFocus(focusgrid.Up)
	case "down", "j":
		m.moveFocus(focusgrid.Down)
	case "left", "h":
		m.moveFocus(focusgrid.Left)
	case "right", "l":
		m.moveFocus(focusgrid.Right)

	case "[", "pgup", "p":
		if m.planner.CanPrevious(m.ctrl.Get()) {
			m.planner.Previous(m.ctrl)
			m.rebuild()
			return m, announceMonth(m.ctrl.Get())
		}

	case "]", "pgdown", "n":
		if m.planner.CanNext(m.ctrl.Get()) {
			m.planner.Next(m.ctrl)
			m.rebuild()
			return m, announceMonth(m.ctrl.Get())
		}

	case "t":
		today := timeutil.DateOnly(m.now())
		if m.rng.ContainsDay(today) {
			m.jumpTo(today)
			return m, announceMonth(m.ctrl.Get())
		}

	case "u":
		if m.machine.RequestLevelUp() {
			m.enterPickers()
			return m, announceLevel(m.machine.Current())
		}

	case "g", ":":
		m.gotoActive = true
		m.gotoInput.SetValue("")
		m.gotoInput.Focus()
		m.status = ""

	case "enter", "space":
		return m.commitFocused()
	}
	return m, nil
}

func (m *Model) handleGotoKey(msg tea.KeyPressMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		m.gotoActive = false
		m.gotoInput.Blur()
		return m, nil
	case "enter":
		m.gotoActive = false
		m.gotoInput.Blur()
		return m.applyGoto(m.gotoInput.Value())
	}
	var cmd tea.Cmd
	m.gotoInput, cmd = m.gotoInput.Update(msg)
	return m, cmd
}

func (m *Model) applyGoto(value string) (tea.Model, tea.Cmd) {
	if date, err := timeutil.ParseDate(value); err == nil {
		if !m.rng.ContainsDay(date) {
			m.status = fmt.Sprintf("%s is out of range", value)
			return m, nil
		}
		m.jumpTo(date)
		return m, announceMonth(m.ctrl.Get())
	}
	if month, err := timeutil.ParseMonth(value); err == nil {
		if !m.rng.ContainsMonth(month) {
			m.status = fmt.Sprintf("%s is out of range", value)
			return m, nil
		}
		m.ctrl.Set(month)
		m.rebuild()
		return m, announceMonth(m.ctrl.Get())
	}
	m.status = fmt.Sprintf("cannot parse %q", value)
	return m, nil
}

// jumpTo moves the window so date's month is focal and focuses its cell.
func (m *Model) jumpTo(date time.Time) {
	m.ctrl.Set(date)
	m.rebuild()
	if pos, ok := m.registry.PositionOf(date); ok {
		m.focus = pos
		m.hasFocus = true
	}
}

// moveFocus routes one directional movement. With no roving focus yet, the
// first movement lands on the focal month's first day.
func (m *Model) moveFocus(dir focusgrid.Direction) {
	if !m.hasFocus {
		if pos, ok := m.registry.PositionOf(m.ctrl.Get()); ok {
			m.focus = pos
			m.hasFocus = true
		}
		return
	}
	m.focus, _ = focusgrid.Route(m.registry, m.focus, dir)
}

func (m *Model) commitFocused() (tea.Model, tea.Cmd) {
	if !m.hasFocus {
		return m, nil
	}
	cell, ok := m.registry.At(m.focus)
	if !ok {
		return m, nil
	}
	if !m.rng.ContainsDay(cell.Date) {
		m.status = "date is out of range"
		return m, nil
	}
	m.selected = cell.Date
	date := cell.Date
	return m, tea.Batch(func() tea.Msg {
		return events.DateSelectedMsg{Component: ID, Date: date}
	}, tea.Quit)
}

func announceMonth(month time.Time) tea.Cmd {
	return func() tea.Msg {
		return events.MonthChangedMsg{Component: ID, Month: month}
	}
}

func announceLevel(l level.Level) tea.Cmd {
	return func() tea.Msg {
		return events.LevelChangedMsg{Component: ID, Level: l}
	}
}

// View implements tea.Model.
func (m *Model) View() string {
	switch m.machine.Current() {
	case level.Year:
		return m.years.View() + "\n\n" + m.footer()
	case level.Month:
		return m.months.View() + "\n\n" + m.footer()
	}
	return m.dateView()
}

func (m *Model) dateView() string {
	ctx := daygrid.Context{
		Focus:    m.focus,
		HasFocus: m.hasFocus,
		Selected: m.selected,
		Now:      m.now(),
	}

	columns := make([]string, 0, len(m.grids))
	for i, g := range m.grids {
		block := m.heading.View(m.blocks[i]) + "\n" + g.View(ctx)
		columns = append(columns, block)
	}
	body := lipgloss.JoinHorizontal(lipgloss.Top, interleave(columns, "   ")...)

	return body + "\n\n" + m.footer()
}

func (m *Model) footer() string {
	if m.gotoActive {
		return m.styles.Footer.Prompt.Render("goto: ") + m.gotoInput.View()
	}
	parts := []string{m.helpText()}
	if m.status != "" {
		parts = append(parts, m.styles.Footer.Status.Render(m.status))
	}
	return strings.Join(parts, "\n")
}

func (m *Model) helpText() string {
	switch m.machine.Current() {
	case level.Year:
		return m.styles.Footer.Help.Render("arrows move · enter choose year · ctrl+c quit")
	case level.Month:
		return m.styles.Footer.Help.Render("arrows move · enter choose month · esc year · ctrl+c quit")
	}
	help := "arrows move · [/] window · t today · g goto · enter select · q quit"
	if m.machine.AllowsChange() {
		help = "arrows move · [/] window · u zoom out · t today · g goto · enter select · q quit"
	}
	return m.styles.Footer.Help.Render(help)
}

func interleave(items []string, sep string) []string {
	out := make([]string, 0, len(items)*2)
	for i, it := range items {
		if i > 0 {
			out = append(out, sep)
		}
		out = append(out, it)
	}
	return out
}

// Run launches the interactive picker and returns the selected date, zero
// when the user dismissed it.
func Run(opts Options) (time.Time, error) {
	m, err := New(opts)
	if err != nil {
		return time.Time{}, err
	}
	p := tea.NewProgram(m, tea.WithAltScreen())
	final, err := p.Run()
	if err != nil {
		return time.Time{}, err
	}
	if fm, ok := final.(*Model); ok {
		return fm.Selected(), nil
	}
	return m.Selected(), nil
}
