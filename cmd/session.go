package cmd

import (
	"errors"
	"fmt"
	"time"

	"scan-verifier/core/reconcile"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var jsonOutput bool

// sessionCmd is the parent command for session lifecycle operations.
var sessionCmd = &cobra.Command{
	Use:   "session",
	Short: "Start, stop, inspect or clear the scanning session",
}

var sessionStartCmd = &cobra.Command{
	Use:   "start",
	Short: "Enter scan mode",
	RunE: func(cmd *cobra.Command, args []string) error {
		return lifecycle(cmd, "Scanning started", func(rt *services) error { return rt.scan.Start() })
	},
}

var sessionStopCmd = &cobra.Command{
	Use:   "stop",
	Short: "Leave scan mode",
	RunE: func(cmd *cobra.Command, args []string) error {
		return lifecycle(cmd, "Scanning stopped", func(rt *services) error { return rt.scan.Stop() })
	},
}

var sessionClearCmd = &cobra.Command{
	Use:   "clear",
	Short: "Discard the manifest and scan history",
	Long: `Stops scanning and removes the manifest, scan history and consumed rows.
The session cannot be recovered afterwards.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		if !confirmDestructiveAction(cmd.InOrStdin(), cmd.OutOrStdout(), "This discards the current session.") {
			fmt.Fprintln(cmd.OutOrStdout(), "Aborted.")
			return nil
		}
		return lifecycle(cmd, "Session cleared", func(rt *services) error { return rt.scan.Clear() })
	},
}

var sessionStatusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show the session state",
	RunE: func(cmd *cobra.Command, args []string) error {
		rt, err := loadRuntime(cmd.Context())
		if err != nil {
			return err
		}
		defer rt.Close()

		out := cmd.OutOrStdout()
		st := rt.scan.Snapshot()
		if jsonOutput {
			return printJSON(out, st)
		}

		fmt.Fprintf(out, "Scanning: %t\n", st.Active)
		if st.StartedAt != nil {
			fmt.Fprintf(out, "Started At: %s\n", st.StartedAt.Local().Format(time.DateTime))
		}
		if last, ok := rt.scan.Last(); ok {
			fmt.Fprintf(out, "Last Scan: %s → %s at %s\n", last.ScannedValue, last.ResolvedStatus, last.Timestamp.Local().Format(time.DateTime))
		}
		printStats(out, rt.scan.Stats())
		return nil
	},
}

// lifecycle runs one session transition. Unsaved transitions are reported as warnings.
func lifecycle(cmd *cobra.Command, done string, fn func(rt *services) error) error {
	rt, err := loadRuntime(cmd.Context())
	if err != nil {
		return err
	}
	defer rt.Close()

	if err := fn(rt); err != nil {
		if !errors.Is(err, reconcile.ErrNotPersisted) {
			return err
		}
		rt.logg.Warn("Session change not saved", zap.Error(err))
	}
	fmt.Fprintln(cmd.OutOrStdout(), done)
	return nil
}

func init() {
	sessionCmd.AddCommand(sessionStartCmd, sessionStopCmd, sessionClearCmd, sessionStatusCmd)
	sessionClearCmd.Flags().BoolVar(&yesConfirm, "yes", false, "Auto-confirm (non-interactive)")
	sessionStatusCmd.Flags().BoolVar(&jsonOutput, "json", false, "Print the full session snapshot as JSON")
	RootCmd.AddCommand(sessionCmd)
}
