package internal

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"overtime_tui/internal/display"
	"overtime_tui/internal/history"
)

var (
	tableHeaderStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("86")).
				Bold(true).
				Padding(0, 1)

	tableCellStyle = lipgloss.NewStyle().
			Padding(0, 1)

	tableOvertimeStyle = tableCellStyle.
				Foreground(lipgloss.Color("196"))
)

const historyTimeLayout = "Jan 02 15:04:05"

// HistoryTable renders segments as a table for the history command.
func HistoryTable(segments []history.Segment) string {
	if len(segments) == 0 {
		return helpStyle.Render("Sin registros.")
	}

	rows := make([][]string, 0, len(segments))
	for _, s := range segments {
		session := s.SessionID
		if len(session) > 8 {
			session = session[:8]
		}
		rows = append(rows, []string{
			session,
			s.StartedAt.Local().Format(historyTimeLayout),
			s.StoppedAt.Local().Format(historyTimeLayout),
			display.Format(s.Elapsed, true),
			display.Format(s.RemainingAfter, true),
		})
	}

	t := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(lipgloss.Color("240"))).
		Headers("Sesión", "Inicio", "Fin", "Duración", "Restante").
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == table.HeaderRow {
				return tableHeaderStyle
			}
			if col == 4 && row >= 0 && row < len(segments) && segments[row].Overtime() {
				return tableOvertimeStyle
			}
			return tableCellStyle
		})
	return t.Render()
}
