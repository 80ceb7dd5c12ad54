package internal

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"overtime_tui/internal/display"
)

const (
	labelStart = "Iniciar"
	labelPause = "Pausar"
	labelReset = "Reiniciar"

	buttonGap = 2
)

var (
	digitStyles = map[display.State]lipgloss.Style{
		display.Normal: lipgloss.NewStyle().
			Foreground(lipgloss.Color("69")),
		display.Warning: lipgloss.NewStyle().
			Foreground(lipgloss.Color("214")),
		display.Overtime: lipgloss.NewStyle().
			Foreground(lipgloss.Color("196")),
	}

	separatorStyles = map[display.State]lipgloss.Style{
		display.Normal: lipgloss.NewStyle().
			Foreground(lipgloss.Color("60")),
		display.Warning: lipgloss.NewStyle().
			Foreground(lipgloss.Color("136")),
		display.Overtime: lipgloss.NewStyle().
			Foreground(lipgloss.Color("160")),
	}

	buttonStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("230")).
			Background(lipgloss.Color("62")).
			Padding(0, 2)

	buttonSecondaryStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("252")).
				Background(lipgloss.Color("238")).
				Padding(0, 2)

	helpStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("241"))
)

type button int

const (
	buttonNone button = iota
	buttonToggle
	buttonReset
)

type buttonBounds struct {
	button button
	x0, x1 int // [x0, x1)
}

// screenLayout places the time shell above the control row and the
// help line.
type screenLayout struct {
	shell    display.Size
	buttonsY int
	buttons  []buttonBounds
	left     int
	help     string
}

func (m *Model) layout() screenLayout {
	helpView := helpStyle.Render(m.help.View(m.keys))
	helpLines := lipgloss.Height(helpView)

	// blank line + control row + help
	chrome := 2 + helpLines
	shellHeight := max(m.Height-chrome, 0)

	toggle, reset := m.renderButtons()
	toggleWidth := lipgloss.Width(toggle)
	resetWidth := lipgloss.Width(reset)
	left := max((m.Width-(toggleWidth+buttonGap+resetWidth))/2, 0)

	return screenLayout{
		shell:    display.Size{Width: m.Width, Height: shellHeight},
		buttonsY: shellHeight + 1,
		buttons: []buttonBounds{
			{buttonToggle, left, left + toggleWidth},
			{buttonReset, left + toggleWidth + buttonGap, left + toggleWidth + buttonGap + resetWidth},
		},
		left: left,
		help: helpView,
	}
}

func (m *Model) renderButtons() (string, string) {
	label := labelStart
	if m.Timer.Running() {
		label = labelPause
	}
	return buttonStyle.Render(label), buttonSecondaryStyle.Render(labelReset)
}

func (m *Model) buttonAt(x, y int) button {
	l := m.layout()
	if y != l.buttonsY {
		return buttonNone
	}
	for _, b := range l.buttons {
		if x >= b.x0 && x < b.x1 {
			return b.button
		}
	}
	return buttonNone
}

func (m *Model) View() string {
	if m.quitting {
		return ""
	}

	state := m.State()
	digit := digitStyles[state]
	separator := separatorStyles[state]
	block := m.scaler.Block(func(g display.Glyph, cells string) string {
		if g.Kind == display.Digit {
			return digit.Render(cells)
		}
		return separator.Render(cells)
	})

	l := m.layout()
	if m.Width == 0 || m.Height == 0 {
		return strings.Join(block, "\n")
	}

	var sb strings.Builder
	sb.WriteString(lipgloss.Place(
		l.shell.Width, l.shell.Height,
		lipgloss.Center, lipgloss.Center,
		strings.Join(block, "\n"),
	))
	sb.WriteString("\n\n")

	toggle, reset := m.renderButtons()
	sb.WriteString(strings.Repeat(" ", l.left))
	sb.WriteString(toggle)
	sb.WriteString(strings.Repeat(" ", buttonGap))
	sb.WriteString(reset)
	sb.WriteString("\n")
	sb.WriteString(lipgloss.PlaceHorizontal(m.Width, lipgloss.Center, l.help))

	return sb.String()
}
