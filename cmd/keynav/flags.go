package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/charmbracelet/x/term"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/daptify14/keynav/internal/config"
	"github.com/daptify14/keynav/internal/items"
	"github.com/daptify14/keynav/internal/listnav"
	"github.com/daptify14/keynav/internal/tui"
)

var (
	errAborted = errors.New("aborted")
	errNoItems = errors.New("no items: pass them as arguments, with --file, or on stdin")
)

// pickFlags holds the command-line flags. Settings shared with the config
// file only override it when given explicitly.
type pickFlags struct {
	configPath string
	axis       string
	wait       bool
	interacts  bool
	def        string
	timeout    time.Duration
	height     int
	icons      string
	prompt     string

	file    string
	command string
	depth   int
	dirs    bool
}

func (f *pickFlags) register(cmd *cobra.Command) {
	pf := cmd.PersistentFlags()
	pf.StringVar(&f.configPath, "config", "", "config file (default ~/.config/keynav/config.yaml)")
	pf.StringVar(&f.axis, "axis", "", "arrow keys that move the cursor: vertical, horizontal or both")
	pf.BoolVar(&f.wait, "wait", false, "hide the selection until the first arrow key")
	pf.BoolVar(&f.interacts, "typeahead-interacts", false, "let a type-ahead match end --wait")
	pf.StringVar(&f.def, "default", "", "item to select initially")
	pf.DurationVar(&f.timeout, "timeout", 0, "type-ahead idle timeout (default 1s)")
	pf.IntVar(&f.height, "height", 0, "number of visible items")
	pf.StringVar(&f.icons, "icons", "", "icons in files mode: nerdfont, unicode or none")
	pf.StringVar(&f.prompt, "prompt", "", "prompt label")
}

// resolveConfig loads the config file and applies explicitly set flags on
// top of it.
func resolveConfig(flags *pflag.FlagSet, f pickFlags) (config.Config, error) {
	var (
		cfg config.Config
		err error
	)
	if f.configPath != "" {
		cfg, err = config.LoadFrom(f.configPath)
	} else {
		cfg, err = config.Load()
	}
	if err != nil {
		return cfg, fmt.Errorf("error loading config: %w", err)
	}

	if flags.Changed("axis") {
		cfg.Axis = f.axis
	}
	if flags.Changed("wait") {
		cfg.WaitForInteractive = f.wait
	}
	if flags.Changed("typeahead-interacts") {
		cfg.TypeaheadInteracts = f.interacts
	}
	if flags.Changed("timeout") {
		cfg.TypeaheadTimeout = f.timeout
	}
	if flags.Changed("height") {
		cfg.Height = f.height
	}
	if flags.Changed("icons") {
		cfg.Icons = f.icons
	}
	if flags.Changed("prompt") {
		cfg.Prompt = f.prompt
	}

	cfg.Normalize()
	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// applyConfig copies the resolved settings into the picker options.
func applyConfig(opts *tui.Options, cfg config.Config) error {
	axis, err := listnav.ParseAxis(cfg.Axis)
	if err != nil {
		return err
	}
	iconMode, err := tui.ParseIconMode(cfg.Icons)
	if err != nil {
		return fmt.Errorf("config: %w", err)
	}
	opts.Axis = axis
	opts.IconMode = iconMode
	opts.WaitForInteractive = cfg.WaitForInteractive
	opts.TypeaheadInteracts = cfg.TypeaheadInteracts
	opts.TypeaheadTimeout = cfg.TypeaheadTimeout
	opts.Height = cfg.Height
	opts.Prompt = cfg.Prompt
	return nil
}

// readItems returns the items from args, the named file, or stdin, in that
// order of preference. An interactive stdin with no other source is an error.
func readItems(args []string, file string, stdin *os.File) ([]string, error) {
	if len(args) > 0 {
		return args, nil
	}

	var r io.Reader
	switch {
	case file != "":
		fh, err := os.Open(file) //#nosec G304 -- user-supplied item list
		if err != nil {
			return nil, err
		}
		defer func() { _ = fh.Close() }()
		r = fh
	case stdin != nil && !term.IsTerminal(stdin.Fd()):
		r = stdin
	default:
		return nil, errNoItems
	}

	list, err := items.ReadLines(r)
	if err != nil {
		return nil, err
	}
	if len(list) == 0 {
		return nil, errNoItems
	}
	return list, nil
}
