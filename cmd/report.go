package cmd

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var historyFilter string

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "Print the scan history",
	Long: `Prints the scan history oldest first.

Examples:
  # Only excess scans
  history --filter 'excess'

  # Everything matched by box number that needs inspection
  history --filter 'field == "boxNumber" && status == "Досмотр"'`,
	RunE: func(cmd *cobra.Command, args []string) error {
		rt, err := loadRuntime(cmd.Context())
		if err != nil {
			return err
		}
		defer rt.Close()

		events, err := rt.scan.History(historyFilter)
		if err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		if jsonOutput {
			return printJSON(out, events)
		}
		for _, ev := range events {
			row := "-"
			if ev.ConsumedRowIndex != nil {
				row = fmt.Sprint(*ev.ConsumedRowIndex)
			}
			fmt.Fprintf(out, "%s  %-20s %-14s row %-5s %s\n",
				ev.Timestamp.Local().Format(time.DateTime), ev.ScannedValue, ev.MatchedField, row, ev.ResolvedStatus)
		}
		fmt.Fprintf(out, "\n%d scans\n", len(events))
		return nil
	},
}

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Print session statistics",
	RunE: func(cmd *cobra.Command, args []string) error {
		rt, err := loadRuntime(cmd.Context())
		if err != nil {
			return err
		}
		defer rt.Close()

		if jsonOutput {
			return printJSON(cmd.OutOrStdout(), rt.scan.Stats())
		}
		printStats(cmd.OutOrStdout(), rt.scan.Stats())
		return nil
	},
}

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export the reconciliation report and end the session",
	Long: `Writes the reconciliation workbook to export.dir, archives it when an
archive is configured and clears the session.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()
		startTime := time.Now()

		rt, err := loadRuntime(ctx)
		if err != nil {
			return err
		}
		defer rt.Close()

		// Export clears the session, so the directory must exist beforehand.
		stats := rt.scan.Stats()
		if err := os.MkdirAll(rt.cfg.Export.Dir, 0o755); err != nil {
			return fmt.Errorf("failed to create export directory: %w", err)
		}

		res, err := rt.scan.Export(ctx)
		if err != nil {
			return err
		}
		path := filepath.Join(rt.cfg.Export.Dir, res.Filename)
		if err := os.WriteFile(path, res.Data, 0o644); err != nil {
			return fmt.Errorf("failed to save report %s: %w", path, err)
		}

		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "Report saved to: %s (%d rows)\n", path, res.Rows)
		printStats(out, stats)
		if res.Archive != nil {
			fmt.Fprintf(out, "\nArchived as session %s", res.Archive.SessionID)
			if res.Archive.ObjectKey != "" {
				fmt.Fprintf(out, " (%s)", res.Archive.ObjectKey)
			}
			fmt.Fprintln(out)
			if len(res.Archive.Errors) > 0 {
				fmt.Fprintf(out, "Archive errors: %s\n", strings.Join(res.Archive.Errors, "; "))
			}
		}
		if res.Warning != "" {
			fmt.Fprintf(out, "Warning: %s\n", res.Warning)
		}

		rt.logg.Info("Export completed",
			zap.String("file", path),
			zap.Int("rows", res.Rows),
			zap.Int("excess", stats.ExcessScans),
			zap.Duration("execution_time", time.Since(startTime)),
		)
		return nil
	},
}

func init() {
	historyCmd.Flags().StringVar(&historyFilter, "filter", "", "Boolean filter expression over value, status, field, excess, row, box, shipment_id, shipment_number and barcode")
	historyCmd.Flags().BoolVar(&jsonOutput, "json", false, "Print events as JSON")
	statsCmd.Flags().BoolVar(&jsonOutput, "json", false, "Print statistics as JSON")
	RootCmd.AddCommand(historyCmd, statsCmd, exportCmd)
}
