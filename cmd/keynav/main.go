// Command keynav is a keyboard-driven picker. It reads a list of items,
// lets the user choose one with arrow keys, Home/End or type-ahead, and
// prints the choice to stdout.
package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	tea "charm.land/bubbletea/v2"
	"github.com/spf13/cobra"

	"github.com/daptify14/keynav/internal/items"
	"github.com/daptify14/keynav/internal/tui"
)

var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	err := newRootCmd().ExecuteContext(ctx)
	stop()
	if err != nil {
		if !errors.Is(err, errAborted) {
			fmt.Fprintln(os.Stderr, "keynav:", err)
		}
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var f pickFlags

	rootCmd := &cobra.Command{
		Use:   "keynav [items...]",
		Short: "Pick an item from a list with the keyboard",
		Long: "keynav shows a list and prints the chosen item to stdout. Items come from " +
			"arguments, --file, --cmd, or standard input, one per line. Arrow keys move, Home and End " +
			"jump, typing a prefix jumps to the first match, / filters, Enter selects.",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			var opts tui.Options
			if f.command != "" {
				ctx, script := cmd.Context(), f.command
				opts.Load = func() ([]string, error) { return items.NewCommand().Lines(ctx, script) }
			} else {
				list, err := readItems(args, f.file, os.Stdin)
				if err != nil {
					return err
				}
				opts.Items = list
			}
			res, err := runPicker(cmd, f, opts)
			if err != nil {
				return err
			}
			_, err = fmt.Fprintln(cmd.OutOrStdout(), res.Value)
			return err
		},
	}
	rootCmd.Version = version + " (commit " + commit + ", built " + date + ")"
	f.register(rootCmd)
	rootCmd.Flags().StringVarP(&f.file, "file", "f", "", "read items from a file, one per line")
	rootCmd.Flags().StringVar(&f.command, "cmd", "", "read items from the output of a shell command")
	rootCmd.MarkFlagsMutuallyExclusive("file", "cmd")

	filesCmd := &cobra.Command{
		Use:   "files [dir]",
		Short: "Pick a path from a directory walk",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			root := "."
			if len(args) == 1 {
				root = args[0]
			}
			info, err := os.Stat(root)
			if err != nil {
				return err
			}
			if !info.IsDir() {
				return fmt.Errorf("%s is not a directory", root)
			}

			ctx := cmd.Context()
			walkOpts := items.WalkOptions{MaxDepth: f.depth, Dirs: f.dirs}
			res, err := runPicker(cmd, f, tui.Options{
				Load:  func() ([]string, error) { return items.Walk(ctx, root, walkOpts) },
				Files: true,
				Root:  root,
			})
			if err != nil {
				return err
			}
			_, err = fmt.Fprintln(cmd.OutOrStdout(), filepath.Join(root, filepath.FromSlash(res.Value)))
			return err
		},
	}
	filesCmd.Flags().IntVar(&f.depth, "depth", items.DefaultMaxDepth, "maximum directory depth to walk")
	filesCmd.Flags().BoolVar(&f.dirs, "dirs", false, "include directories in the list")
	rootCmd.AddCommand(filesCmd)

	return rootCmd
}

// runPicker resolves configuration, runs the picker on the terminal via
// stderr, and returns the committed result. Cancelling returns errAborted.
func runPicker(cmd *cobra.Command, f pickFlags, opts tui.Options) (tui.Result, error) {
	cfg, err := resolveConfig(cmd.Flags(), f)
	if err != nil {
		return tui.Result{}, err
	}
	if err := applyConfig(&opts, cfg); err != nil {
		return tui.Result{}, err
	}
	if cmd.Flags().Changed("default") {
		def := f.def
		opts.Default = &def
	}

	if debugPath := os.Getenv("KEYNAV_DEBUG"); debugPath != "" {
		cleanPath := filepath.Clean(debugPath)
		logFile, err := os.OpenFile(cleanPath, os.O_CREATE|os.O_TRUNC|os.O_WRONLY, 0o600) //#nosec G703 -- developer-controlled debug log path
		if err != nil {
			return tui.Result{}, fmt.Errorf("debug log: %w", err)
		}
		defer func() { _ = logFile.Close() }()
		opts.DebugLog = slog.New(slog.NewJSONHandler(logFile, &slog.HandlerOptions{Level: slog.LevelDebug}))
	}

	model, err := tui.NewModel(opts)
	if err != nil {
		return tui.Result{}, err
	}
	defer model.Close()

	p := tea.NewProgram(model, tea.WithOutput(os.Stderr), tea.WithContext(cmd.Context()))
	final, err := p.Run()
	if err != nil {
		if errors.Is(err, tea.ErrProgramKilled) {
			return tui.Result{}, errAborted
		}
		return tui.Result{}, fmt.Errorf("error: %w", err)
	}

	m, ok := final.(tui.Model)
	if !ok {
		return tui.Result{}, fmt.Errorf("unexpected model type %T", final)
	}
	res := m.Result()
	if !res.Chosen {
		return tui.Result{}, errAborted
	}
	return res, nil
}
