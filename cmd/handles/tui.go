package main

import (
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/wippyai/owned"
	"github.com/wippyai/owned/track"
)

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#FAFAFA")).
			Background(lipgloss.Color("#7D56F4")).
			Padding(0, 1)

	slotStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#98FB98"))

	labelStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#87CEEB"))

	eventStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#90EE90"))

	errorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FF6B6B"))

	helpStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#666666"))
)

const maxEventLog = 12

// simResource stands in for anything heap-allocated with a teardown.
type simResource struct {
	label    string
	disposed bool
}

func (r *simResource) Dispose() {
	r.disposed = true
}

// eventLog collects tracker events. Tracker notifications fire
// synchronously inside Update, so no locking is needed here.
type eventLog struct {
	events []track.Event
}

func (l *eventLog) OnOwnershipEvent(e track.Event) {
	l.events = append(l.events, e)
	if len(l.events) > maxEventLog {
		l.events = l.events[len(l.events)-maxEventLog:]
	}
}

type model struct {
	tr      *track.Tracker
	handles map[track.Handle]*owned.Ptr[simResource]
	log     *eventLog
	input   textinput.Model
	status  string
	failed  bool
}

func newModel() model {
	ti := textinput.New()
	ti.Placeholder = "adopt <label> | move <slot> | release <slot> | dispose <slot>"
	ti.Focus()
	ti.CharLimit = 64

	tr := track.NewTracker()
	log := &eventLog{}
	tr.Subscribe(log)

	return model{
		tr:      tr,
		handles: make(map[track.Handle]*owned.Ptr[simResource]),
		log:     log,
		input:   ti,
	}
}

func (m model) Init() tea.Cmd {
	return textinput.Blink
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.Type {
		case tea.KeyCtrlC, tea.KeyEsc:
			return m, tea.Quit
		case tea.KeyEnter:
			m = m.execute(strings.TrimSpace(m.input.Value()))
			m.input.SetValue("")
			return m, nil
		}
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m model) execute(line string) model {
	m.status = ""
	m.failed = false
	if line == "" {
		return m
	}

	verb, arg, _ := strings.Cut(line, " ")
	arg = strings.TrimSpace(arg)

	switch verb {
	case "q", "quit":
		// handled by key bindings; accept as a status hint
		m.status = "press esc or ctrl+c to quit"
		return m

	case "adopt":
		if arg == "" {
			return m.fail("adopt needs a label")
		}
		p, slot := track.Adopt(m.tr, arg, &simResource{label: arg})
		m.handles[slot] = &p
		m.status = fmt.Sprintf("adopted %q as slot %d", arg, slot)
		return m

	case "move":
		slot, p, ok := m.lookup(arg)
		if !ok {
			return m.fail("no such slot: " + arg)
		}
		q := track.Move(m.tr, slot, p)
		m.handles[slot] = &q
		m.status = fmt.Sprintf("slot %d moved to a new handle", slot)
		return m

	case "release":
		slot, p, ok := m.lookup(arg)
		if !ok {
			return m.fail("no such slot: " + arg)
		}
		raw := track.Release(m.tr, slot, p)
		delete(m.handles, slot)
		m.status = fmt.Sprintf("slot %d released; caller now owns %q", slot, raw.label)
		return m

	case "dispose":
		slot, p, ok := m.lookup(arg)
		if !ok {
			return m.fail("no such slot: " + arg)
		}
		p.Close()
		delete(m.handles, slot)
		m.status = fmt.Sprintf("slot %d disposed", slot)
		return m

	default:
		return m.fail("unknown command: " + verb)
	}
}

func (m model) fail(status string) model {
	m.status = status
	m.failed = true
	return m
}

func (m model) lookup(arg string) (track.Handle, *owned.Ptr[simResource], bool) {
	n, err := strconv.ParseUint(arg, 10, 32)
	if err != nil {
		return 0, nil, false
	}
	slot := track.Handle(n)
	p, ok := m.handles[slot]
	if !ok || !p.Valid() {
		return 0, nil, false
	}
	return slot, p, true
}

func (m model) View() string {
	var b strings.Builder

	b.WriteString(titleStyle.Render("owned: live handle inspector"))
	b.WriteString("\n\n")

	b.WriteString(fmt.Sprintf("Live resources: %d\n", m.tr.Live()))
	for _, slot := range m.sortedSlots() {
		label, ok := m.tr.Label(slot)
		if !ok {
			continue
		}
		b.WriteString("  ")
		b.WriteString(slotStyle.Render(fmt.Sprintf("%4d", slot)))
		b.WriteString("  ")
		b.WriteString(labelStyle.Render(label))
		b.WriteByte('\n')
	}

	b.WriteString("\nEvents:\n")
	for _, e := range m.log.events {
		b.WriteString("  ")
		b.WriteString(eventStyle.Render(fmt.Sprintf("%-8s", e.Type)))
		b.WriteString(fmt.Sprintf(" slot %d (%s)\n", e.Handle, e.Label))
	}

	if m.status != "" {
		b.WriteByte('\n')
		if m.failed {
			b.WriteString(errorStyle.Render(m.status))
		} else {
			b.WriteString(m.status)
		}
		b.WriteByte('\n')
	}

	b.WriteByte('\n')
	b.WriteString(m.input.View())
	b.WriteString("\n\n")
	b.WriteString(helpStyle.Render("adopt <label> · move <slot> · release <slot> · dispose <slot> · esc to quit"))
	b.WriteByte('\n')

	return b.String()
}

func (m model) sortedSlots() []track.Handle {
	var slots []track.Handle
	m.tr.Each(func(h track.Handle, _ string) bool {
		slots = append(slots, h)
		return true
	})
	sort.Slice(slots, func(i, j int) bool { return slots[i] < slots[j] })
	return slots
}
