package cmd

import (
	"errors"
	"fmt"
	"sort"
	"time"

	"github.com/spf13/cobra"
)

var archiveLimit int

// archiveCmd is the parent command for report archive operations.
var archiveCmd = &cobra.Command{
	Use:   "archive",
	Short: "Inspect the report archive",
}

var archiveListCmd = &cobra.Command{
	Use:   "list",
	Short: "List archived sessions and report files",
	RunE: func(cmd *cobra.Command, args []string) error {
		rt, err := loadRuntime(cmd.Context())
		if err != nil {
			return err
		}
		defer rt.Close()

		if !rt.archive.IsEnabled() {
			return errors.New("archive is not configured (enable storage or database)")
		}
		listing, err := rt.archive.Service().List(cmd.Context(), archiveLimit)
		if err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		if jsonOutput {
			return printJSON(out, listing)
		}
		fmt.Fprintln(out, "=== Archived Sessions ===")
		for _, s := range listing.Sessions {
			fmt.Fprintf(out, "%s  %s  %s  rows %d/%d  excess %d\n",
				s.ID, s.ExportedAt.Local().Format(time.DateTime), s.Filename, s.ConsumedRows, s.ManifestRows, s.ExcessScans)
		}
		fmt.Fprintln(out, "\n=== Report Files ===")
		for _, o := range listing.Objects {
			fmt.Fprintf(out, "%s  %d bytes  %s\n", o.Key, o.Size, o.LastModified.Local().Format(time.DateTime))
		}
		return nil
	},
}

var archiveVerifyCmd = &cobra.Command{
	Use:   "verify",
	Short: "Check the archive database schema",
	RunE: func(cmd *cobra.Command, args []string) error {
		rt, err := loadRuntime(cmd.Context())
		if err != nil {
			return err
		}
		defer rt.Close()

		report, err := rt.archive.Service().Verify()
		if err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		if jsonOutput {
			return printJSON(out, report)
		}
		tables := make([]string, 0, len(report.Tables))
		for name := range report.Tables {
			tables = append(tables, name)
		}
		sort.Strings(tables)
		for _, name := range tables {
			t := report.Tables[name]
			fmt.Fprintf(out, "%s: %s\n", name, t.Status)
			for _, col := range t.MissingColumns {
				fmt.Fprintf(out, "  missing column: %s\n", col)
			}
			for _, m := range t.TypeMismatches {
				fmt.Fprintf(out, "  type mismatch: %s\n", m)
			}
		}
		if !report.Matched {
			return errors.New("archive schema does not match")
		}
		return nil
	},
}

func init() {
	archiveListCmd.Flags().IntVar(&archiveLimit, "limit", 50, "Maximum number of sessions")
	archiveListCmd.Flags().BoolVar(&jsonOutput, "json", false, "Print the listing as JSON")
	archiveVerifyCmd.Flags().BoolVar(&jsonOutput, "json", false, "Print the report as JSON")
	archiveCmd.AddCommand(archiveListCmd, archiveVerifyCmd)
	RootCmd.AddCommand(archiveCmd)
}
