package experiment

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

var (
	tableHeaderStyle = lipgloss.NewStyle().Bold(true)
	successStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("10"))
	failureStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("9"))
)

// RenderTable formats run records as a fixed-width console table.
func RenderTable(records []Record) string {
	var b strings.Builder

	header := fmt.Sprintf("%-5s | %-3s | %-25s | %-10s | %-8s | %-10s | %-10s",
		"Size", "Run", "Algorithm", "Status", "Time (s)", "Path Len", "Expanded")
	b.WriteString(tableHeaderStyle.Render(header))
	b.WriteByte('\n')
	b.WriteString(strings.Repeat("-", len(header)))
	b.WriteByte('\n')

	for _, rec := range records {
		status := successStyle.Render("[SUCCESS]")
		if !rec.Success {
			status = failureStyle.Render("[FAIL]")
		}
		fmt.Fprintf(&b, "%-5d | %-3d | %-25s | %-10s | %-8.4f | %-10d | %-10d\n",
			rec.Size, rec.Run, rec.Algorithm, status, rec.Seconds, rec.PathLength, rec.Expanded)
	}

	return b.String()
}
