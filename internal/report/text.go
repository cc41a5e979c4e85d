package report

import (
	"fmt"
	"io"

	"github.com/fatih/color"

	"github.com/lintel-tools/lintel/pkg/matrix"
	"github.com/lintel-tools/lintel/pkg/types"
)

// Finding colors by kind: staleness is routine workflow signal (yellow),
// dangling references need fixing (red), everything else is plain.
var findingColors = map[string]*color.Color{
	types.FindingUnresolvedLink: color.New(color.FgRed),
	types.FindingSelfLink:       color.New(color.FgRed),
	types.FindingBadStakeholder: color.New(color.FgRed),
	types.FindingSuspectLink:    color.New(color.FgYellow),
}

// PrintFindings writes one line per finding in order, color-coded by kind,
// followed by a summary line.
func PrintFindings(w io.Writer, findings []types.Finding) {
	for _, f := range findings {
		c, ok := findingColors[f.Kind]
		if !ok {
			c = color.New()
		}
		fmt.Fprintf(w, "%s  %s -> %s: %s\n", c.Sprint(f.Kind), f.ItemID, f.TargetID, f.Detail)
	}
	if len(findings) == 0 {
		fmt.Fprintln(w, color.GreenString("validation passed: no findings"))
		return
	}
	fmt.Fprintf(w, "%d finding(s)\n", len(findings))
}

// PrintMatrix writes a plain-text matrix table, repeating chain levels on
// every line so the output stays grep-friendly.
func PrintMatrix(w io.Writer, rows []matrix.Row) {
	bold := color.New(color.Bold)
	fmt.Fprintf(w, "%-14s %-14s %-14s %s\n",
		bold.Sprint("USE CASE"), bold.Sprint("REQUIREMENT"), bold.Sprint("TEST"), bold.Sprint("RESULTS"))
	for _, row := range rows {
		fmt.Fprintf(w, "%-14s %-14s %-14s %s\n",
			orDash(cellID(row.UseCase)), orDash(cellID(row.Requirement)),
			orDash(cellID(row.Test)), statusText(row))
	}
}

func orDash(s string) string {
	if s == "" {
		return "-"
	}
	return s
}

func statusText(row matrix.Row) string {
	out := ""
	for _, sc := range row.StatusCounts() {
		mark := sc.Status
		switch sc.Status {
		case types.StatusPassed:
			mark = color.GreenString("%s %d", sc.Status, sc.Count)
		case types.StatusFailure, types.StatusError:
			mark = color.RedString("%s %d", sc.Status, sc.Count)
		default:
			mark = fmt.Sprintf("%s %d", sc.Status, sc.Count)
		}
		if out != "" {
			out += " "
		}
		out += mark
	}
	return out
}
