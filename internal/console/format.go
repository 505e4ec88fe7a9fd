package console

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"gorm.io/datatypes"
)

const (
	notAvailable = "N/A"
	maxID        = math.MaxInt64
)

// truncate shortens s to maxLen runes, ending with "...".
func truncate(s string, maxLen int) string {
	runes := []rune(s)
	if len(runes) <= maxLen {
		return s
	}
	if maxLen <= 3 {
		return string(runes[:maxLen])
	}
	return string(runes[:maxLen-3]) + "..."
}

func nullString(v datatypes.Null[string]) string {
	if !v.Valid || v.V == "" {
		return notAvailable
	}
	return v.V
}

func nullInt(v datatypes.Null[int64]) string {
	if !v.Valid {
		return notAvailable
	}
	return strconv.FormatInt(v.V, 10)
}

func nullFloat(v datatypes.Null[float64]) string {
	if !v.Valid {
		return notAvailable
	}
	return strconv.FormatFloat(v.V, 'f', -1, 64)
}

func formatRating(v datatypes.Null[float64]) string {
	if !v.Valid {
		return "no reviews"
	}
	return fmt.Sprintf("%.2f/100", v.V)
}

func fmtID(n int64) string {
	return strconv.FormatInt(n, 10)
}

func (s *Shell) renderTable(headers []string, rows [][]string) {
	t := table.New().
		Border(lipgloss.NormalBorder()).
		BorderStyle(s.styles.tableBorder).
		StyleFunc(func(row, _ int) lipgloss.Style {
			if row == table.HeaderRow {
				return s.styles.tableHeader
			}
			return s.styles.tableCell
		}).
		Headers(headers...).
		Rows(rows...)
	fmt.Fprintln(s.out, t.Render())
}

func (s *Shell) header(title string) {
	rule := s.styles.rule.Render(strings.Repeat("=", ruleWidth))
	fmt.Fprintf(s.out, "\n%s\n  %s\n%s\n", rule, s.styles.header.Render(title), rule)
}

func (s *Shell) subHeader(title string) {
	rule := s.styles.rule.Render(strings.Repeat("-", ruleWidth))
	fmt.Fprintf(s.out, "\n%s\n  %s\n%s\n", rule, s.styles.subHeader.Render(title), rule)
}

func (s *Shell) separator() {
	fmt.Fprintln(s.out, s.styles.rule.Render(strings.Repeat("-", ruleWidth)))
}

func (s *Shell) field(label, value string) {
	fmt.Fprintf(s.out, "%s %s\n", s.styles.label.Render(label+":"), value)
}

func (s *Shell) success(format string, args ...any) {
	fmt.Fprintln(s.out, s.styles.success.Render("[OK]")+" "+fmt.Sprintf(format, args...))
}

func (s *Shell) failure(format string, args ...any) {
	fmt.Fprintln(s.out, s.styles.failure.Render("[ERROR]")+" "+fmt.Sprintf(format, args...))
}

func (s *Shell) warning(format string, args ...any) {
	fmt.Fprintln(s.out, s.styles.warning.Render("[WARNING]")+" "+fmt.Sprintf(format, args...))
}

func (s *Shell) info(format string, args ...any) {
	fmt.Fprintln(s.out, s.styles.info.Render("[INFO]")+" "+fmt.Sprintf(format, args...))
}

func capitalize(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}
