package main

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/wippyai/webidl-runtime/buffer"
)

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#FAFAFA")).
			Background(lipgloss.Color("#7D56F4")).
			Padding(0, 1)

	offsetStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#87CEEB"))

	asciiStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#98FB98"))

	helpStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#666666"))
)

var typeCycle = []string{"u8", "u16", "u32", "u64", "f32", "f64"}

type inspectModel struct {
	buf      *buffer.ArrayBuffer
	filename string
	viewport viewport.Model
	typeIdx  int
	le       bool
	ready    bool
}

func newInspectModel(buf *buffer.ArrayBuffer, filename string) *inspectModel {
	return &inspectModel{buf: buf, filename: filename, le: true}
}

func (m *inspectModel) Init() tea.Cmd {
	return nil
}

func (m *inspectModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c", "esc":
			return m, tea.Quit
		case "tab":
			m.typeIdx = (m.typeIdx + 1) % len(typeCycle)
			m.viewport.SetContent(m.render())
			return m, nil
		case "e":
			m.le = !m.le
			m.viewport.SetContent(m.render())
			return m, nil
		}
	case tea.WindowSizeMsg:
		headerHeight := 2
		footerHeight := 1
		if !m.ready {
			m.viewport = viewport.New(msg.Width, msg.Height-headerHeight-footerHeight)
			m.viewport.SetContent(m.render())
			m.ready = true
		} else {
			m.viewport.Width = msg.Width
			m.viewport.Height = msg.Height - headerHeight - footerHeight
		}
		return m, nil
	}

	var cmd tea.Cmd
	m.viewport, cmd = m.viewport.Update(msg)
	return m, cmd
}

func (m *inspectModel) View() string {
	if !m.ready {
		return "loading..."
	}
	endian := "le"
	if !m.le {
		endian = "be"
	}
	header := titleStyle.Render(fmt.Sprintf("%s  %d bytes  [%s/%s]",
		m.filename, m.buf.ByteLength(), typeCycle[m.typeIdx], endian))
	help := helpStyle.Render("tab: cycle type • e: endianness • ↑/↓: scroll • q: quit")
	return header + "\n\n" + m.viewport.View() + "\n" + help
}

// render produces the hex dump plus a typed column for the selected
// element type, 16 bytes per row.
func (m *inspectModel) render() string {
	raw, err := m.buf.Bytes()
	if err != nil {
		return err.Error()
	}
	dv, err := buffer.NewDataView(m.buf, 0, m.buf.ByteLength())
	if err != nil {
		return err.Error()
	}

	elemType := typeCycle[m.typeIdx]
	size := elemSizes[elemType]

	var b strings.Builder
	for row := 0; row < len(raw); row += 16 {
		end := row + 16
		if end > len(raw) {
			end = len(raw)
		}
		line := raw[row:end]

		b.WriteString(offsetStyle.Render(fmt.Sprintf("%08x", row)))
		b.WriteString("  ")
		for i := 0; i < 16; i++ {
			if i < len(line) {
				fmt.Fprintf(&b, "%02x ", line[i])
			} else {
				b.WriteString("   ")
			}
		}
		b.WriteString(" ")
		b.WriteString(asciiStyle.Render(asciiColumn(line)))

		var vals []string
		for at := row; at+size <= end; at += size {
			v, err := readElem(dv, at, elemType, m.le)
			if err != nil {
				break
			}
			vals = append(vals, v)
		}
		if len(vals) > 0 {
			b.WriteString("  ")
			b.WriteString(strings.Join(vals, " "))
		}
		b.WriteByte('\n')
	}
	return b.String()
}

func asciiColumn(line []byte) string {
	var b strings.Builder
	for _, c := range line {
		if c >= 0x20 && c < 0x7F {
			b.WriteByte(c)
		} else {
			b.WriteByte('.')
		}
	}
	return b.String()
}

func runInteractive(buf *buffer.ArrayBuffer, filename string) error {
	p := tea.NewProgram(newInspectModel(buf, filename), tea.WithAltScreen())
	_, err := p.Run()
	return err
}
