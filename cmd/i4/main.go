package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/yourusername/i4/internal/config"
	"github.com/yourusername/i4/internal/ipc"
	"github.com/yourusername/i4/internal/logging"
	"github.com/yourusername/i4/internal/output"
	"github.com/yourusername/i4/internal/server"
	"github.com/yourusername/i4/internal/tree"
)

const version = "0.1.0"

var (
	// Color functions
	successColor = color.New(color.FgGreen, color.Bold)
	errorColor   = color.New(color.FgRed, color.Bold)
	keyColor     = color.New(color.FgYellow)
)

// app holds the global flags and the configuration they override
type app struct {
	socketPath string
	timeout    time.Duration
	jsonOutput bool
	noColor    bool
	asciiMode  bool
	debugMode  bool
	configPath string
	logFile    string
	logDefault bool

	// asciiSet is true when --ascii was given, in either direction
	asciiSet bool

	cfg *config.Config
}

// usageError marks a missing or unknown argument
type usageError struct {
	msg string
}

func (e *usageError) Error() string {
	return e.msg
}

func usagef(format string, args ...interface{}) error {
	return &usageError{msg: fmt.Sprintf(format, args...)}
}

func newRootCmd() *cobra.Command {
	a := &app{}

	rootCmd := &cobra.Command{
		Use:   "i4",
		Short: "Navigate the i3 layout tree",
		Long: `i4 reads the i3 (or sway) layout tree over the IPC socket.

It shows the focused node with its workspace and output, lists windows,
and moves focus to the previous or next window in tree order.`,
		Version:           version,
		SilenceUsage:      true,
		SilenceErrors:     true,
		PersistentPreRunE: a.setup,
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) > 0 {
				return usagef("unknown command %q for %q", args[0], cmd.CommandPath())
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}

	// Global flags
	flags := rootCmd.PersistentFlags()
	flags.StringVar(&a.socketPath, "socket", "", "IPC socket path (default: $I3SOCK, $SWAYSOCK, i3 --get-socketpath)")
	flags.DurationVar(&a.timeout, "timeout", ipc.DefaultTimeout, "Request timeout")
	flags.BoolVar(&a.jsonOutput, "json", false, "Output in JSON format")
	flags.BoolVar(&a.noColor, "no-color", false, "Disable colored output")
	flags.BoolVar(&a.asciiMode, "ascii", false, "Draw with ASCII characters only")
	flags.BoolVarP(&a.debugMode, "debug", "d", false, "Enable debug logging")
	flags.StringVar(&a.configPath, "config", "", "Config file (default: ~/.config/i4/config.yaml)")
	flags.StringVar(&a.logFile, "log-file", "", "Append log lines to this file instead of the console")
	flags.BoolVar(&a.logDefault, "log", false, "Append log lines to "+logging.DefaultPath())

	rootCmd.SetFlagErrorFunc(func(cmd *cobra.Command, err error) error {
		return &usageError{msg: err.Error()}
	})

	rootCmd.AddCommand(
		a.newListCmd(),
		a.newFocusCmd(),
		newMoveCmd(),
		a.newShowCmd(),
		a.newInfoCmd(),
		a.newDumpCmd(),
		a.newConfigCmd(),
	)

	return rootCmd
}

// setup loads the config, applies flag overrides and starts logging
func (a *app) setup(cmd *cobra.Command, args []string) error {
	cfg, err := config.LoadConfig(a.configPath)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	flags := cmd.Flags()
	if flags.Changed("socket") {
		if cfg.Socket.Path, err = absPath(a.socketPath); err != nil {
			return err
		}
	}
	if flags.Changed("timeout") {
		cfg.Socket.Timeout = a.timeout
	}
	if flags.Changed("json") {
		cfg.Output.JSON = a.jsonOutput
	}
	if a.noColor {
		cfg.Output.Color = false
	}
	if flags.Changed("ascii") {
		cfg.Output.ASCII = a.asciiMode
		a.asciiSet = true
	}
	if flags.Changed("debug") {
		cfg.Log.Debug = a.debugMode
	}
	if a.logDefault {
		cfg.Log.File = logging.DefaultPath()
	}
	if flags.Changed("log-file") {
		if cfg.Log.File, err = absPath(a.logFile); err != nil {
			return err
		}
	}
	if err := cfg.Validate(); err != nil {
		return &usageError{msg: err.Error()}
	}
	a.cfg = cfg

	if !cfg.Output.Color {
		color.NoColor = true
	}

	if err := logging.Init(logging.Options{
		Path:    cfg.Log.File,
		Debug:   cfg.Log.Debug,
		Console: cmd.ErrOrStderr(),
		Color:   !color.NoColor,
	}); err != nil {
		return fmt.Errorf("failed to open log: %w", err)
	}
	logging.Debug().Str("cmd", cmd.CommandPath()).Strs("args", args).Msg("starting")
	return nil
}

// style returns the render style for the current terminal and config
func (a *app) style() output.Style {
	s := output.DefaultStyle()
	s.Color = s.Color && a.cfg.Output.Color
	if a.asciiSet || a.cfg.Output.ASCII {
		s.ASCII = a.cfg.Output.ASCII
	}
	return s
}

func (a *app) treeOptions() tree.Options {
	return tree.Options{IncludeFloating: a.cfg.Navigation.IncludeFloating}
}

func (a *app) siblingPolicy() tree.SiblingPolicy {
	if a.cfg.Navigation.SkipEmptySiblings {
		return tree.SkipEmpty
	}
	return tree.StopAtAdjacent
}

// newClient resolves the socket and returns an unconnected client
func (a *app) newClient() (*ipc.Client, string, error) {
	path, err := ipc.ResolveSocketPath(a.cfg.Socket.Path)
	if err != nil {
		return nil, "", err
	}
	logging.Debug().Str("socket", path).Msg("resolved socket")
	return ipc.NewClient(path, a.cfg.Socket.Timeout), path, nil
}

// withSnapshot fetches one tree snapshot and hands it to fn together with
// the client it came from.
func (a *app) withSnapshot(
	cmd *cobra.Command,
	fn func(ctx context.Context, c *ipc.Client, snap *server.Snapshot) error,
) error {
	c, _, err := a.newClient()
	if err != nil {
		return err
	}
	defer c.Close()

	ctx := cmd.Context()
	start := time.Now()
	snap, err := server.Fetch(ctx, c, a.treeOptions())
	if err != nil {
		logging.Failure().Str("cmd", cmd.CommandPath()).Err(err).Msg("failed to fetch tree")
		return err
	}
	logging.Debug().
		Int("nodes", snap.Tree.Len()).
		Dur("elapsed", time.Since(start)).
		Msg("fetched tree")

	return fn(ctx, c, snap)
}

// absPath expands ~ and makes a flag path absolute
func absPath(path string) (string, error) {
	if path == "" {
		return "", nil
	}
	abs, err := filepath.Abs(config.ExpandHome(path))
	if err != nil {
		return "", fmt.Errorf("invalid path %q: %w", path, err)
	}
	return abs, nil
}

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

// run executes one invocation and returns the process exit status
func run(args []string, stdout, stderr io.Writer) int {
	defer logging.Close()

	rootCmd := newRootCmd()
	rootCmd.SetArgs(args)
	rootCmd.SetOut(stdout)
	rootCmd.SetErr(stderr)

	err := rootCmd.Execute()
	if err == nil {
		return 0
	}

	var ue *usageError
	if errors.As(err, &ue) {
		fmt.Fprintln(stderr, ue.msg)
		fmt.Fprintln(stderr, "Run 'i4 --help' for usage.")
		return 2
	}
	printError(stderr, err.Error())
	return 1
}

// Helper functions

func printError(w io.Writer, msg string) {
	if color.NoColor {
		fmt.Fprintln(w, "Error:", msg)
	} else {
		errorColor.Fprint(w, "✗ Error: ")
		fmt.Fprintln(w, msg)
	}
}
