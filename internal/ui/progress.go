package ui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"

	"bigint/internal/selfcheck"
)

type progressModel struct {
	title   string
	events  <-chan selfcheck.Event
	spinner spinner.Model
	prog    progress.Model
	items   []suiteItem
	index   map[string]int
	width   int
	done    bool
}

type suiteItem struct {
	name    string
	status  selfcheck.Status
	checks  int
	failed  int
	elapsed time.Duration
}

type eventMsg selfcheck.Event
type doneMsg struct{}

// NewProgressModel returns a Bubble Tea model that renders selfcheck progress,
// one row per suite. The model quits when events is closed.
func NewProgressModel(title string, suites []string, events <-chan selfcheck.Event) tea.Model {
	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = lipgloss.NewStyle().Foreground(lipgloss.Color("6"))

	prog := progress.New(progress.WithDefaultGradient())
	prog.Width = 76

	items := make([]suiteItem, 0, len(suites))
	index := make(map[string]int, len(suites))
	for i, name := range suites {
		items = append(items, suiteItem{name: name, status: selfcheck.StatusQueued})
		index[name] = i
	}
	return &progressModel{
		title:   title,
		events:  events,
		spinner: sp,
		prog:    prog,
		items:   items,
		index:   index,
		width:   80,
	}
}

func (m *progressModel) Init() tea.Cmd {
	return tea.Batch(m.spinner.Tick, m.listenForEvent())
}

func (m *progressModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case eventMsg:
		cmd := m.applyEvent(selfcheck.Event(msg))
		return m, tea.Batch(cmd, m.listenForEvent())
	case doneMsg:
		m.done = true
		return m, tea.Quit
	case spinner.TickMsg:
		if m.done {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	case tea.WindowSizeMsg:
		if msg.Width > 0 {
			m.width = msg.Width
			m.prog.Width = msg.Width - 4
		}
		return m, nil
	case progress.FrameMsg:
		pm, cmd := m.prog.Update(msg)
		m.prog = pm.(progress.Model)
		return m, cmd
	}
	return m, nil
}

func (m *progressModel) View() string {
	if len(m.items) == 0 {
		return ""
	}
	titleStyle := lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("7"))
	header := fmt.Sprintf("%s %s", m.spinner.View(), m.title)
	if m.done {
		header = "done: " + m.title
	}

	var b strings.Builder
	b.WriteString(titleStyle.Render(header))
	b.WriteString("\n\n")

	const statusWidth = 8
	nameWidth := max(m.width-statusWidth-24, 12)
	for _, item := range m.items {
		status := styleStatus(item.status).Render(fmt.Sprintf("%*s", statusWidth, item.status))
		fmt.Fprintf(&b, "  %s %s%s\n", status, pad(truncate(item.name, nameWidth), nameWidth), detail(item))
	}

	b.WriteString("\n")
	if m.done {
		b.WriteString(m.prog.ViewAs(1.0))
	} else {
		b.WriteString(m.prog.View())
	}
	b.WriteString("\n")
	return b.String()
}

func (m *progressModel) listenForEvent() tea.Cmd {
	return func() tea.Msg {
		ev, ok := <-m.events
		if !ok {
			return doneMsg{}
		}
		return eventMsg(ev)
	}
}

func (m *progressModel) applyEvent(ev selfcheck.Event) tea.Cmd {
	idx, ok := m.index[ev.Suite]
	if !ok {
		return nil
	}
	item := &m.items[idx]
	item.status = ev.Status
	if finished(ev.Status) {
		item.checks = ev.Checks
		item.failed = ev.Failed
		item.elapsed = ev.Elapsed
	}
	return m.prog.SetPercent(m.fraction())
}

// fraction counts a running suite as half done.
func (m *progressModel) fraction() float64 {
	total := 0.0
	for _, item := range m.items {
		switch {
		case finished(item.status):
			total += 1.0
		case item.status == selfcheck.StatusWorking:
			total += 0.5
		}
	}
	return total / float64(len(m.items))
}

func finished(s selfcheck.Status) bool {
	return s == selfcheck.StatusDone || s == selfcheck.StatusFailed
}

func detail(item suiteItem) string {
	if !finished(item.status) {
		return ""
	}
	s := fmt.Sprintf(" %d checks %s", item.checks, item.elapsed.Round(time.Millisecond))
	if item.failed > 0 {
		s += fmt.Sprintf(", %d failed", item.failed)
	}
	return lipgloss.NewStyle().Faint(true).Render(s)
}

func styleStatus(status selfcheck.Status) lipgloss.Style {
	switch status {
	case selfcheck.StatusDone:
		return lipgloss.NewStyle().Foreground(lipgloss.Color("2"))
	case selfcheck.StatusFailed:
		return lipgloss.NewStyle().Foreground(lipgloss.Color("1"))
	case selfcheck.StatusWorking:
		return lipgloss.NewStyle().Foreground(lipgloss.Color("6"))
	default:
		return lipgloss.NewStyle().Foreground(lipgloss.Color("7"))
	}
}

func pad(value string, width int) string {
	return runewidth.FillRight(value, width)
}

func truncate(value string, width int) string {
	if width <= 0 {
		return value
	}
	if runewidth.StringWidth(value) <= width {
		return value
	}
	if width <= 3 {
		return runewidth.Truncate(value, width, "")
	}
	return runewidth.Truncate(value, width-3, "...")
}
