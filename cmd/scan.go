package cmd

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"
	"time"

	"scan-verifier/core/input"
	"scan-verifier/core/notify"
	"scan-verifier/core/reconcile"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var (
	autoStart bool
	ringBell  bool
)

var scanCmd = &cobra.Command{
	Use:   "scan <value>...",
	Short: "Submit scanned values to the active session",
	Long: `Resolves each value against the manifest in order and records the outcome.
Scanning must be started first (see "session start").`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		rt, err := loadRuntime(cmd.Context())
		if err != nil {
			return err
		}
		defer rt.Close()

		out := cmd.OutOrStdout()
		for _, value := range args {
			printScan(out, rt.scan.Scan(value))
		}
		return nil
	},
}

var listenCmd = &cobra.Command{
	Use:   "listen",
	Short: "Read scanner keystrokes from standard input",
	Long: `Reads keystrokes from standard input and submits every completed token.
A token ends at Enter, or when a fast burst of at least scanner.min_length
keystrokes is followed by a pause longer than scanner.manual_threshold_ms.
Slow, hand-typed input is only submitted on Enter and is discarded on interrupt.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		var observers []reconcile.Observer
		if ringBell {
			observers = append(observers, notify.Bell(cmd.ErrOrStderr()))
		}
		rt, err := loadRuntime(cmd.Context(), observers...)
		if err != nil {
			return err
		}
		defer rt.Close()

		if autoStart && !rt.session.Active() {
			if err := rt.scan.Start(); err != nil && !errors.Is(err, reconcile.ErrNotPersisted) {
				return err
			}
		}

		ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
		defer stop()

		out := cmd.OutOrStdout()
		submit := func(token string) {
			printScan(out, rt.scan.Scan(token))
		}

		gate := input.NewGate(rt.cfg.Scanner)
		runes, readErr := readRunes(ctx, cmd.InOrStdin())
		ticker := time.NewTicker(rt.cfg.Scanner.ManualThreshold())
		defer ticker.Stop()

		rt.logg.Info("Listening for scans", zap.Bool("scanning", rt.session.Active()))
		for {
			select {
			case <-ctx.Done():
				if gate.Manual() {
					rt.logg.Info("Discarding unfinished manual entry", zap.String("pending", gate.Pending()))
				} else if token, ok := gate.Terminate(); ok {
					submit(token)
				}
				return nil
			case r, ok := <-runes:
				if !ok {
					if token, ok := gate.Terminate(); ok {
						submit(token)
					}
					if err := <-readErr; err != nil && !errors.Is(err, io.EOF) {
						return fmt.Errorf("failed to read input: %w", err)
					}
					return nil
				}
				if token, ok := gate.Feed(r, time.Now()); ok {
					submit(token)
				}
			case now := <-ticker.C:
				if token, ok := gate.Expire(now); ok {
					submit(token)
				}
			}
		}
	},
}

// readRunes streams runes from in until reading fails or ctx is done. The
// terminating error is delivered once the rune channel is closed. A read that
// is already blocked is not interrupted, but no rune is sent after ctx is done.
func readRunes(ctx context.Context, in io.Reader) (<-chan rune, <-chan error) {
	runes := make(chan rune)
	errc := make(chan error, 1)
	go func() {
		defer close(runes)
		r := bufio.NewReader(in)
		for {
			ch, _, err := r.ReadRune()
			if err != nil {
				errc <- err
				return
			}
			select {
			case runes <- ch:
			case <-ctx.Done():
				errc <- ctx.Err()
				return
			}
		}
	}()
	return runes, errc
}

func init() {
	listenCmd.Flags().BoolVar(&autoStart, "start", false, "Start scanning before listening")
	listenCmd.Flags().BoolVar(&ringBell, "bell", true, "Ring the terminal bell on rejected, excess and blocked scans")
	RootCmd.AddCommand(scanCmd, listenCmd)
}
