package cmd

import (
	"errors"
	"fmt"
	"os"

	"scan-verifier/core/reconcile"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// manifestCmd is the parent command for manifest operations.
var manifestCmd = &cobra.Command{
	Use:   "manifest",
	Short: "Manage the session manifest",
}

var manifestLoadCmd = &cobra.Command{
	Use:   "load <file.xlsx>",
	Short: "Load a manifest workbook into the session",
	Long: `Parses the first sheet of an xlsx manifest and replaces the session manifest.
Loading is refused while scanning is active.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		rt, err := loadRuntime(cmd.Context())
		if err != nil {
			return err
		}
		defer rt.Close()

		f, err := os.Open(args[0])
		if err != nil {
			return fmt.Errorf("failed to open manifest: %w", err)
		}
		defer f.Close()

		records, err := rt.scan.LoadManifest(f)
		if err != nil && !errors.Is(err, reconcile.ErrNotPersisted) {
			return err
		}
		if err != nil {
			rt.logg.Warn("Manifest loaded but not saved", zap.Error(err))
		}

		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "Loaded %d rows from %s\n", len(records), args[0])
		printStats(out, rt.scan.Stats())
		return nil
	},
}

var manifestShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Print the loaded manifest",
	RunE: func(cmd *cobra.Command, args []string) error {
		rt, err := loadRuntime(cmd.Context())
		if err != nil {
			return err
		}
		defer rt.Close()

		out := cmd.OutOrStdout()
		for _, r := range rt.session.Manifest() {
			mark := " "
			if rt.session.IsConsumed(r.RowIndex) {
				mark = "✓"
			}
			fmt.Fprintf(out, "%s %4d  %-12s %-12s %-14s %-16s %s\n",
				mark, r.RowIndex, r.BoxNumber, r.ShipmentID, r.ShipmentNumber, r.Barcode, r.Status)
		}
		return nil
	},
}

func init() {
	manifestCmd.AddCommand(manifestLoadCmd, manifestShowCmd)
	RootCmd.AddCommand(manifestCmd)
}
