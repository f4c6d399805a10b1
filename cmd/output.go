package cmd

import (
	"bufio"
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"scan-verifier/core/reconcile"
	"scan-verifier/feature/scanning"
)

var yesConfirm bool

// confirmDestructiveAction prompts the user for confirmation or uses --yes flag.
func confirmDestructiveAction(in io.Reader, out io.Writer, question string) bool {
	if yesConfirm {
		fmt.Fprintln(out, "✓ Auto-confirmed via --yes flag")
		return true
	}

	fmt.Fprintf(out, "⚠️  %s Type 'yes' to confirm: ", question)
	response, err := bufio.NewReader(in).ReadString('\n')
	if err != nil && response == "" {
		return false
	}
	return strings.TrimSpace(response) == "yes"
}

func printJSON(out io.Writer, v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal JSON: %w", err)
	}
	_, err = fmt.Fprintln(out, string(data))
	return err
}

// printScan writes one line per scan outcome.
func printScan(out io.Writer, res scanning.ScanResult) {
	switch res.Kind {
	case reconcile.OutcomeIgnored:
		if res.Err != nil {
			fmt.Fprintf(out, "- %s: not recorded (%v)\n", res.Value, res.Err)
		}
		return
	case reconcile.OutcomeBlocked:
		fmt.Fprintf(out, "✗ %s: scanning is not active\n", res.Value)
		return
	}

	line := fmt.Sprintf("%s → %s", res.Value, res.Category())
	if res.Event != nil && res.Event.ConsumedRowIndex != nil {
		line += fmt.Sprintf(" (row %d, %s)", *res.Event.ConsumedRowIndex, res.Event.MatchedField)
	}
	if res.Toast != nil {
		line += " | " + res.Toast.Title + ": " + res.Toast.Description
	}
	fmt.Fprintln(out, line)
	if res.Warning != "" {
		fmt.Fprintf(out, "  warning: %s\n", res.Warning)
	}
}

func printStats(out io.Writer, st reconcile.Stats) {
	fmt.Fprintln(out, "\n=== Session Statistics ===")
	fmt.Fprintf(out, "Manifest Rows: %d\n", st.ManifestRows)
	fmt.Fprintf(out, "Consumed Rows: %d\n", st.ConsumedRows)
	fmt.Fprintf(out, "Remaining Rows: %d\n", st.RemainingRows)
	fmt.Fprintf(out, "Excess Scans: %d\n", st.ExcessScans)
	fmt.Fprintf(out, "Total Scans: %d\n", st.TotalScans)
	for _, c := range st.Categories {
		fmt.Fprintf(out, "  %s: %d (%.1f%%)\n", c.Category, c.Count, c.Percent)
	}
}
