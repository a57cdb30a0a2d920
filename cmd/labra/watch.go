package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/cobra"
)

// newWatchCmd re-runs a program every time its source file changes.
// Ctrl-C stops the loop.
func newWatchCmd(noColor *bool) *cobra.Command {
	var inputList bool

	cmd := &cobra.Command{
		Use:   "watch <source-file> [input]",
		Short: "Re-run a program whenever its source changes",
		Args:  cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel := newCancellableContext()
			defer cancel()

			watcher, err := fsnotify.NewWatcher()
			if err != nil {
				return err
			}
			defer func() { _ = watcher.Close() }()

			// watch the directory: editors replace files on save, which
			// drops a watch registered on the file itself
			target, err := filepath.Abs(args[0])
			if err != nil {
				return err
			}
			if err := watcher.Add(filepath.Dir(target)); err != nil {
				return err
			}

			runOnce := func() {
				if err := runProgram(cmd.OutOrStdout(), args, inputList); err != nil {
					FormatError(cmd.ErrOrStderr(), err, ShouldUseColor(*noColor))
				}
			}
			runOnce()

			for {
				select {
				case <-ctx.Done():
					return nil
				case event, ok := <-watcher.Events:
					if !ok {
						return nil
					}
					changed, _ := filepath.Abs(event.Name)
					if changed != target {
						continue
					}
					if event.Op&(fsnotify.Write|fsnotify.Create) == 0 {
						continue
					}
					_, _ = fmt.Fprintf(cmd.ErrOrStderr(), "%s changed, re-running\n", args[0])
					runOnce()
				case err, ok := <-watcher.Errors:
					if !ok {
						return nil
					}
					return err
				}
			}
		},
	}

	cmd.Flags().BoolVar(&inputList, "list", false, "Parse the input argument as a list literal")
	return cmd
}

// newCancellableContext creates a context that cancels on SIGINT/SIGTERM so
// Ctrl-C unwinds the watch loop cleanly
func newCancellableContext() (context.Context, context.CancelFunc) {
	ctx, cancel := context.WithCancel(context.Background())

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)

	go func() {
		select {
		case <-sigChan:
			cancel()
		case <-ctx.Done():
		}
		signal.Stop(sigChan)
	}()

	return ctx, cancel
}
