package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/bep/debounce"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"chordscope/analyzer"
	"chordscope/config"
	"chordscope/debug"
	"chordscope/midi"
	"chordscope/theme"
	"chordscope/theory"
	"chordscope/widgets"
)

const (
	maxLogEntries = 50
	logViewHeight = 12

	// how long the display lingers after the last key is released
	clearDelay = 100 * time.Millisecond

	// how long key-selection changes settle before the config is written
	saveDelay = 500 * time.Millisecond
)

type Model struct {
	Analyzer  *analyzer.Analyzer
	DeviceMgr *midi.DeviceManager
	Theme     *theme.Theme

	cfg      *config.Config
	state    *midi.NoteState
	keyIndex int

	controller *midi.KeyboardController
	result     analyzer.Result
	notesLine  string
	cleared    bool

	log   *widgets.EventLog
	piano *widgets.Piano

	clearGen int
	saveCfg  func(func())
	quitting bool
}

type NoteMsg midi.NoteEvent

type DeviceEventMsg midi.DeviceEvent

type clearMsg struct{ gen int }

func NewModel(an *analyzer.Analyzer, deviceMgr *midi.DeviceManager, th *theme.Theme, cfg *config.Config) Model {
	keyIndex := cfg.KeyIndex
	if keyIndex < 0 || keyIndex >= an.Catalog().Count() {
		keyIndex = 0
	}
	return Model{
		Analyzer:  an,
		DeviceMgr: deviceMgr,
		Theme:     th,
		cfg:       cfg,
		state:     midi.NewNoteState(),
		keyIndex:  keyIndex,
		notesLine: "Connect MIDI controller...",
		cleared:   true,
		log:       widgets.NewEventLog("MIDI log", maxLogEntries, th.Muted()),
		piano:     widgets.NewPiano(36, 96, th.Color(theme.RoleNotes), th.Muted()),
		saveCfg:   debounce.New(saveDelay),
	}
}

func ListenForDevices(deviceMgr *midi.DeviceManager) tea.Cmd {
	return func() tea.Msg {
		event, ok := <-deviceMgr.Events()
		if !ok {
			return nil
		}
		return DeviceEventMsg(event)
	}
}

func ListenForNotes(c *midi.KeyboardController) tea.Cmd {
	return func() tea.Msg {
		event, ok := <-c.NoteEvents()
		if !ok {
			return nil
		}
		return NoteMsg(event)
	}
}

func (m Model) Init() tea.Cmd {
	return ListenForDevices(m.DeviceMgr)
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c":
			m.quitting = true
			return m, tea.Quit

		case "left", "h":
			return m.changeKey(m.keyIndex - 1), nil

		case "right", "l":
			return m.changeKey(m.keyIndex + 1), nil
		}

	case NoteMsg:
		return m.handleNote(midi.NoteEvent(msg))

	case clearMsg:
		if msg.gen == m.clearGen && m.state.Len() == 0 {
			m.notesLine = "Press keys..."
			m.result = analyzer.Result{}
			m.cleared = true
		}

	case DeviceEventMsg:
		return m.handleDevice(midi.DeviceEvent(msg))
	}

	return m, nil
}

func (m Model) changeKey(index int) Model {
	count := m.Analyzer.Catalog().Count()
	m.keyIndex = ((index % count) + count) % count
	debug.Log("tui", "key signature changed to %s", m.Analyzer.Catalog().Get(m.keyIndex).Name)

	// Re-render whatever is held under the new key
	if notes := m.state.Notes(); len(notes) > 0 {
		m.refresh(notes)
	}

	cfg, keyIndex := m.cfg, m.keyIndex
	m.saveCfg(func() {
		cfg.KeyIndex = keyIndex
		if err := cfg.Save(); err != nil {
			debug.Log("config", "save failed: %v", err)
		}
	})
	return m
}

func (m Model) handleNote(event midi.NoteEvent) (tea.Model, tea.Cmd) {
	m.state.Apply(event)

	key := m.Analyzer.Catalog().Get(m.keyIndex)
	name := fmt.Sprintf("%s (%d)", theory.SpellNote(int(event.Note), key), event.Note)
	if event.On {
		m.log.Add(fmt.Sprintf("ON  %s vel=%d", name, event.Velocity))
	} else {
		m.log.Add(fmt.Sprintf("OFF %s", name))
	}

	var cmds []tea.Cmd
	if m.controller != nil {
		cmds = append(cmds, ListenForNotes(m.controller))
	}

	notes := m.state.Notes()
	if len(notes) > 0 {
		m.refresh(notes)
	} else {
		m.clearGen++
		gen := m.clearGen
		cmds = append(cmds, tea.Tick(clearDelay, func(time.Time) tea.Msg {
			return clearMsg{gen}
		}))
	}

	return m, tea.Batch(cmds...)
}

// refresh recomputes the display lines from the held notes.
func (m *Model) refresh(notes []int) {
	key := m.Analyzer.Catalog().Get(m.keyIndex)

	names := make([]string, len(notes))
	for i, n := range notes {
		names[i] = theory.SpellNote(n, key)
	}
	m.notesLine = strings.Join(names, " + ")
	m.result = m.Analyzer.Analyze(notes, key)
	m.cleared = false
}

func (m Model) handleDevice(event midi.DeviceEvent) (tea.Model, tea.Cmd) {
	cmds := []tea.Cmd{ListenForDevices(m.DeviceMgr)}

	switch event.Type {
	case midi.DeviceConnected:
		debug.Log("midi", "device connected: %s", event.ID)
		adopt := m.controller == nil
		if m.cfg.PreferredPort != "" && strings.Contains(event.ID, m.cfg.PreferredPort) {
			adopt = true
		} else if m.controller != nil && midi.IsKeyboardPort(event.ID) && !midi.IsKeyboardPort(m.controller.ID()) {
			adopt = true
		}
		if adopt {
			m.controller = event.Controller
			m.state.Clear()
			m.notesLine = "Press keys..."
			m.result = analyzer.Result{}
			m.cleared = true
			cmds = append(cmds, ListenForNotes(m.controller))
		}

	case midi.DeviceDisconnected:
		debug.Log("midi", "device disconnected: %s", event.ID)
		if m.controller != nil && m.controller.ID() == event.ID {
			m.controller = nil
			m.state.Clear()
			m.notesLine = "Connect MIDI controller..."
			m.result = analyzer.Result{}
			m.cleared = true
		}
	}

	return m, tea.Batch(cmds...)
}

func (m Model) View() string {
	if m.quitting {
		return ""
	}

	key := m.Analyzer.Catalog().Get(m.keyIndex)

	headerStyle := lipgloss.NewStyle().Foreground(m.Theme.Accent()).Bold(true)
	dimStyle := m.Theme.Style(theme.RoleMuted)
	notesStyle := m.Theme.Style(theme.RoleNotes).Bold(true)
	chordStyle := m.Theme.Style(theme.RoleChord).Bold(true)

	header := headerStyle.Render("chordscope") + dimStyle.Render("  key-aware MIDI monitor")

	device := m.Theme.Style(theme.RoleDisconnected).Render("No controller found")
	if m.controller != nil {
		device = m.Theme.Style(theme.RoleConnected).Render("Connected: " + m.controller.ID())
	}

	keyLine := dimStyle.Render("Key: ") + headerStyle.Render(key.Name)

	chordLine := ""
	romanLine := ""
	if !m.result.Empty() {
		chordLine = chordStyle.Render(m.result.ChordName)
		roman := m.result.RomanNumeral
		if roman != "" && m.result.FunctionName != "" {
			roman += " (" + m.result.FunctionName + ")"
		}
		romanStyle := m.Theme.Style(theme.RoleDiatonic)
		if m.result.NonDiatonic {
			romanStyle = m.Theme.Style(theme.RoleNonDiatonic)
		}
		romanLine = romanStyle.Render(roman)
	}

	notesLine := m.notesLine
	if m.cleared {
		notesLine = dimStyle.Render(notesLine)
	} else {
		notesLine = notesStyle.Render(notesLine)
	}

	help := dimStyle.Render("←/→: change key  q: quit")

	var out strings.Builder
	out.WriteString("\n")
	out.WriteString(header)
	out.WriteString("\n\n")
	out.WriteString(device)
	out.WriteString("\n")
	out.WriteString(keyLine)
	out.WriteString("\n\n")
	out.WriteString(m.piano.View(m.state.Notes()))
	out.WriteString("\n\n")
	out.WriteString(notesLine)
	out.WriteString("\n")
	out.WriteString(chordLine)
	out.WriteString("\n")
	out.WriteString(romanLine)
	out.WriteString("\n\n")
	out.WriteString(m.log.View(logViewHeight))
	out.WriteString("\n")
	out.WriteString(help)

	return out.String()
}
