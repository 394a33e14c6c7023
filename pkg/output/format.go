// Package output renders EATK reports for people and for other programs.
package output

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/iwvelando/substat-optimizer/internal/eatk"
	"github.com/iwvelando/substat-optimizer/internal/report"
	"github.com/iwvelando/substat-optimizer/pkg/constants"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

var (
	heading = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("63"))
	muted   = lipgloss.NewStyle().Foreground(lipgloss.Color("244"))
)

// Report writes r in the named format.
func Report(w io.Writer, format string, r report.Report) error {
	switch format {
	case constants.OutputFormatPretty, "":
		return PrettyFormat(w, r)
	case constants.OutputFormatCSV:
		return CsvFormat(w, r)
	case constants.OutputFormatJSON:
		return JSONFormat(w, r)
	default:
		return fmt.Errorf("unsupported output format %q", format)
	}
}

// Snapshot writes s in the named format.
func Snapshot(w io.Writer, format string, s report.Snapshot) error {
	switch format {
	case constants.OutputFormatPretty, "":
		return PrettySnapshot(w, s)
	case constants.OutputFormatCSV:
		return CsvSnapshot(w, s)
	case constants.OutputFormatJSON:
		return JSONFormat(w, s)
	default:
		return fmt.Errorf("unsupported output format %q", format)
	}
}

// PrettySnapshot outputs the base EATK and the effect of one more roll of
// each stat.
func PrettySnapshot(w io.Writer, s report.Snapshot) error {
	p := message.NewPrinter(language.English)
	if _, err := p.Fprintf(w, "%s %.2f\n", heading.Render("Base EATK:"), s.EATK); err != nil {
		return err
	}
	for _, effect := range s.Rolls {
		_, err := p.Fprintf(w, "Add 1 %s roll (+%s): EATK = %.2f (+%.2f, +%.2f%%)\n",
			effect.Label, rollAmount(p, effect), effect.EATK, effect.Increase, effect.Percent)
		if err != nil {
			return err
		}
	}
	return nil
}

// PrettyFormat outputs a human-readable rather than machine-readable report.
func PrettyFormat(w io.Writer, r report.Report) error {
	if err := PrettySnapshot(w, r.Base); err != nil {
		return err
	}

	p := message.NewPrinter(language.English)
	opt := r.Optimized
	if _, err := fmt.Fprintf(w, "\n%s\n", heading.Render("Optimized stats for balanced roll value:")); err != nil {
		return err
	}
	lines := []struct {
		format string
		value  float64
	}{
		{"Initial ATK: %.2f\n", opt.Profile.InitialAtk},
		{"CR: %.2f %%\n", opt.Profile.CritRate},
		{"CD: %.2f %%\n", opt.Profile.CritDamage},
	}
	for _, line := range lines {
		if _, err := p.Fprintf(w, line.format, line.value); err != nil {
			return err
		}
	}
	if _, err := p.Fprintf(w, "EATK: %.2f (%+.2f)\n", opt.EATK, r.Gain); err != nil {
		return err
	}
	if _, err := fmt.Fprintln(w, muted.Render(runSummary(r.Run))); err != nil {
		return err
	}

	if _, err := fmt.Fprintf(w, "\n%s\n", heading.Render("Step increases at optimized stats:")); err != nil {
		return err
	}
	for _, effect := range opt.Rolls {
		if _, err := p.Fprintf(w, "Add 1 %s roll: +%.2f (+%.3f%%)\n", effect.Label, effect.Increase, effect.Percent); err != nil {
			return err
		}
	}
	return nil
}

func rollAmount(p *message.Printer, effect report.RollEffect) string {
	if effect.Dimension == eatk.Atk.String() {
		return p.Sprintf("%.1f ATK", effect.Roll)
	}
	return p.Sprintf("%.1f%% %s", effect.Roll, strings.TrimSuffix(effect.Label, "%"))
}

func runSummary(run report.Run) string {
	status := "equilibrium reached"
	if !run.Converged {
		status = "equilibrium not reached"
	}
	return fmt.Sprintf("%d iterations, %d moves, %d rejected, %s", run.Iterations, run.Moves, run.Rejected, status)
}

// CsvFormat outputs the report as section,metric,value records.
func CsvFormat(w io.Writer, r report.Report) error {
	records := [][]string{{"section", "metric", "value"}}
	records = append(records, snapshotRecords("base", r.Base)...)
	records = append(records, snapshotRecords("optimized", r.Optimized)...)
	records = append(records,
		[]string{"run", "iterations", strconv.Itoa(r.Run.Iterations)},
		[]string{"run", "moves", strconv.Itoa(r.Run.Moves)},
		[]string{"run", "rejected", strconv.Itoa(r.Run.Rejected)},
		[]string{"run", "converged", strconv.FormatBool(r.Run.Converged)},
		[]string{"run", "gain", formatFloat(r.Gain)},
	)
	return writeCSV(w, records)
}

// CsvSnapshot outputs a single snapshot as section,metric,value records.
func CsvSnapshot(w io.Writer, s report.Snapshot) error {
	records := [][]string{{"section", "metric", "value"}}
	records = append(records, snapshotRecords("base", s)...)
	return writeCSV(w, records)
}

func snapshotRecords(section string, s report.Snapshot) [][]string {
	records := [][]string{
		{section, "initialAtk", formatFloat(s.Profile.InitialAtk)},
		{section, "critRate", formatFloat(s.Profile.CritRate)},
		{section, "critDamage", formatFloat(s.Profile.CritDamage)},
		{section, "finalAtk", formatFloat(s.FinalAtk)},
		{section, "eatk", formatFloat(s.EATK)},
	}
	for _, effect := range s.Rolls {
		records = append(records,
			[]string{section, effect.Dimension + "RollIncrease", formatFloat(effect.Increase)},
			[]string{section, effect.Dimension + "RollPercent", formatFloat(effect.Percent)},
		)
	}
	return records
}

func writeCSV(w io.Writer, records [][]string) error {
	cw := csv.NewWriter(w)
	if err := cw.WriteAll(records); err != nil {
		return fmt.Errorf("failed to write csv output: %w", err)
	}
	return nil
}

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'f', 4, 64)
}

// JSONFormat outputs v as indented JSON.
func JSONFormat(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(v); err != nil {
		return fmt.Errorf("failed to write json output: %w", err)
	}
	return nil
}
