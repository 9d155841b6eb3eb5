package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/vango-dev/tiny/internal/config"
	"github.com/vango-dev/tiny/internal/errors"
)

// Version information set at build time.
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

const banner = `
  ╔╦╗┬┌┐┌┬ ┬
   ║ ││││└┬┘
   ╩ ┴┘└┘ ┴
`

// app carries the state shared by every command.
type app struct {
	configPath string
	logLevel   string
	noColor    bool

	cfg    *config.Config
	logger *slog.Logger
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		errors.PrintError(err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	a := &app{}

	rootCmd := &cobra.Command{
		Use:   "tiny",
		Short: "Mount and reconcile element descriptions",
		Long: `tiny is a minimal virtual DOM reconciler.

The CLI mounts YAML or JSON element descriptions into an in-memory
document and shows what the reconciler does with them:

  • render   print the mounted HTML with identifiers
  • diff     print the operations that turn one tree into another
  • watch    re-render a description on every save
  • errors   explain the error codes`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if a.noColor || os.Getenv("NO_COLOR") != "" {
				errors.DisableColors()
			}
			return a.load(cmd.ErrOrStderr())
		},
	}

	rootCmd.PersistentFlags().StringVarP(&a.configPath, "config", "c", "", "Config file (default: ./tiny.yaml if present)")
	rootCmd.PersistentFlags().StringVar(&a.logLevel, "log-level", "", "Log level: debug, info, warn, error (overrides config)")
	rootCmd.PersistentFlags().BoolVar(&a.noColor, "no-color", false, "Disable colored error output")

	rootCmd.AddCommand(
		renderCmd(a),
		diffCmd(a),
		watchCmd(a),
		errorsCmd(),
		versionCmd(),
	)
	return rootCmd
}

// load reads the configuration and applies flag overrides.
func (a *app) load(stderr io.Writer) error {
	cfg, err := config.Load(a.configPath)
	if err != nil {
		return err
	}
	if a.logLevel != "" {
		cfg.LogLevel = a.logLevel
		if err := cfg.Validate(); err != nil {
			return err
		}
	}
	a.cfg = cfg
	a.logger = cfg.Logger(stderr)
	if path := cfg.Path(); path != "" {
		a.logger.Debug("loaded config", "path", path)
	}
	return nil
}

// printBanner prints the tiny ASCII art banner.
func printBanner(w io.Writer) {
	fmt.Fprint(w, banner)
}

// success prints a success message.
func success(w io.Writer, format string, args ...any) {
	fmt.Fprintf(w, "\033[32m✓\033[0m %s\n", fmt.Sprintf(format, args...))
}

// info prints an info message.
func info(w io.Writer, format string, args ...any) {
	fmt.Fprintf(w, "  %s\n", fmt.Sprintf(format, args...))
}

// errorMsg prints an error message.
func errorMsg(w io.Writer, format string, args ...any) {
	fmt.Fprintf(w, "\033[31m✗\033[0m %s\n", fmt.Sprintf(format, args...))
}
