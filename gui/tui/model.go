// This file is part of Gopher2600.
//
// Gopher2600 is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// Gopher2600 is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with Gopher2600.  If not, see <https://www.gnu.org/licenses/>.

// Package tui is an optional bubbletea front end that exercises a
// hardware/cpu.Processor through its published host contract (spec.md
// §4.8) only - it has no access to unexported processor state, the same
// restriction any real host would be under. Segment decoding of register
// B's raw nibbles is left to this package, not to the core, per spec.md
// §9's note that display decoding is a front-end concern.
package tui

import (
	"fmt"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/actfamily/act56/hardware/cpu"
	"github.com/actfamily/act56/hardware/cpu/registers"
)

// keyRunes maps the 16-key keypad (spec.md §4.8 "Key latches") to the runes
// this front end reads them from.
var keyRunes = [16]rune{'0', '1', '2', '3', '4', '5', '6', '7', '8', '9', 'a', 'b', 'c', 'd', 'e', 'f'}

const tickInterval = 16 * time.Millisecond
const pressDuration = 80 * time.Millisecond

type tickMsg time.Time
type releaseMsg struct{}

// Model drives a Processor from keyboard input, ticking it once per
// tickInterval and rendering register A as a 10-digit mantissa, register B
// as a segment-mask bar, and the 16-key keypad grid.
type Model struct {
	p       *cpu.Processor
	pressed int // -1 when no key is latched
	err     error
	done    bool
}

// New wraps p for display; p should already be Init'd (hardware/cpu.New
// does this).
func New(p *cpu.Processor) Model {
	return Model{p: p, pressed: -1}
}

// Run starts an interactive program hosting p until the user quits or p
// reports an error.
func Run(p *cpu.Processor) error {
	_, err := tea.NewProgram(New(p)).Run()
	return err
}

func doTick() tea.Cmd {
	return tea.Tick(tickInterval, func(t time.Time) tea.Msg { return tickMsg(t) })
}

func doRelease() tea.Cmd {
	return tea.Tick(pressDuration, func(time.Time) tea.Msg { return releaseMsg{} })
}

// Init starts the processor's tick loop.
func (m Model) Init() tea.Cmd {
	return doTick()
}

// Update handles keypad input and the periodic tick that advances p.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if m.done {
		return m, nil
	}

	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "q":
			m.done = true
			return m, tea.Quit
		}
		for code, r := range keyRunes {
			if msg.String() == string(r) {
				m.pressed = code
				m.p.Press(uint8(code))
				return m, doRelease()
			}
		}

	case releaseMsg:
		m.p.Release()
		m.pressed = -1

	case tickMsg:
		if _, err := m.p.Tick(); err != nil {
			m.err = err
			m.done = true
			return m, tea.Quit
		}
		return m, doTick()
	}

	return m, nil
}

var (
	digitStyle    = lipgloss.NewStyle().Bold(true).Padding(0, 1)
	segmentOn     = lipgloss.NewStyle().Background(lipgloss.Color("208")).Padding(0, 1)
	segmentOff    = lipgloss.NewStyle().Faint(true).Padding(0, 1)
	keyStyle      = lipgloss.NewStyle().Padding(0, 1).Border(lipgloss.NormalBorder())
	keyActive     = keyStyle.Copy().Background(lipgloss.Color("33"))
	errorStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("196"))
	mantissaWidth = registers.NumNibbles - 4 // nibbles 3..12
)

// mantissa renders register A's ten mantissa nibbles (3..12, spec.md §3
// "Register"), most significant first, ignoring the exponent and sign
// nibbles the front end has no display use for.
func mantissa(r registers.Register) string {
	var s [10]byte
	for i := 0; i < 10; i++ {
		s[9-i] = "0123456789abcdef"[r.Nibble(i+3)&0xf]
	}
	return digitStyle.Render(string(s[:]))
}

// segments renders register B's fourteen nibbles as a bar of on/off blocks -
// one per nibble, lit when the nibble is non-zero. A real host would map
// each nibble to a seven-segment pattern; this front end only needs to show
// that the core is writing something recognisable to B.
func segments(r registers.Register) string {
	cells := make([]string, registers.NumNibbles)
	for i := 0; i < registers.NumNibbles; i++ {
		n := registers.NumNibbles - 1 - i
		if r.Nibble(n) != 0 {
			cells[i] = segmentOn.Render(" ")
		} else {
			cells[i] = segmentOff.Render(" ")
		}
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, cells...)
}

// keypad renders the 16-key grid, highlighting whichever key is currently
// latched.
func (m Model) keypad() string {
	var rows []string
	for row := 0; row < 4; row++ {
		var cells []string
		for col := 0; col < 4; col++ {
			code := row*4 + col
			label := string(keyRunes[code])
			if code == m.pressed {
				cells = append(cells, keyActive.Render(label))
			} else {
				cells = append(cells, keyStyle.Render(label))
			}
		}
		rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, cells...))
	}
	return lipgloss.JoinVertical(lipgloss.Left, rows...)
}

// View renders the mantissa display, the segment bar and the keypad grid.
func (m Model) View() string {
	pc := m.p.PC()
	header := fmt.Sprintf("bank %d  offset %#04o", pc.Bank(), pc.Offset())

	body := lipgloss.JoinVertical(
		lipgloss.Left,
		header,
		mantissa(m.p.A()),
		segments(m.p.B()),
		"",
		m.keypad(),
	)

	if m.err != nil {
		return body + "\n\n" + errorStyle.Render(m.err.Error())
	}
	return body
}
