package cmd

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/lal-lang/lal/internal/config"
	"github.com/lal-lang/lal/internal/diag"
)

// errDiagnostics signals that diagnostics were already printed and the
// process should exit non-zero without further output.
var errDiagnostics = errors.New("diagnostics reported")

// app carries per-invocation state shared by all subcommands.
type app struct {
	cfgFile string
	format  string
	noColor bool
	verbose bool

	cfg    *config.Config
	logger *slog.Logger
}

// NewRootCmd builds the lal command tree.
func NewRootCmd() *cobra.Command {
	a := &app{}

	rootCmd := &cobra.Command{
		Use:   "lal",
		Short: "lal - lexer and parser for a small C-like language",
		Long: `lal tokenizes and parses programs written in a small C-like language
with integer bindings, procedures, conditionals and calls.

Commands:
  tokens   - print the token stream of a source file
  parse    - print the parsed program and its diagnostics
  repl     - interactive read-tokenize-print loop
  lsp      - language server with diagnostics, hover and definitions
  version  - print version information`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.setup(cmd)
		},
	}

	rootCmd.PersistentFlags().StringVar(&a.cfgFile, "config", "", "config file (TOML)")
	rootCmd.PersistentFlags().StringVar(&a.format, "format", "", "output format: text or yaml")
	rootCmd.PersistentFlags().BoolVar(&a.noColor, "no-color", false, "disable styled diagnostics")
	rootCmd.PersistentFlags().BoolVarP(&a.verbose, "verbose", "v", false, "verbose logging")

	rootCmd.AddCommand(
		newTokensCmd(a),
		newParseCmd(a),
		newReplCmd(a),
		newLspCmd(a),
		newVersionCmd(),
	)

	return rootCmd
}

// Execute runs the root command against the process arguments.
func Execute() error {
	rootCmd := NewRootCmd()

	err := rootCmd.Execute()
	if err != nil && !errors.Is(err, errDiagnostics) {
		printError(rootCmd.ErrOrStderr(), err)
	}
	return err
}

// setup resolves configuration and flag overrides, then builds the logger.
func (a *app) setup(cmd *cobra.Command) error {
	cfg := config.Default()
	if a.cfgFile != "" {
		loaded, err := config.Load(a.cfgFile)
		if err != nil {
			return err
		}
		cfg = loaded
	}

	if cmd.Flags().Changed("format") {
		cfg.Output.Format = a.format
	}
	if a.noColor {
		color := false
		cfg.Output.Color = &color
	}
	if a.verbose {
		cfg.Log.Level = "debug"
	}

	if err := cfg.Validate(); err != nil {
		return err
	}

	a.cfg = cfg
	a.logger = slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{
		Level: cfg.SlogLevel(),
	}))

	a.logger.Debug("Configuration resolved",
		"config", a.cfgFile,
		"format", cfg.Output.Format,
		"color", cfg.ColorEnabled(),
	)

	return nil
}

func (a *app) yamlOutput() bool {
	return a.cfg.Output.Format == config.FormatYAML
}

func (a *app) formatter(w io.Writer) *diag.Formatter {
	return diag.NewFormatter(w, a.cfg.ColorEnabled())
}

// readSource reads the file named by args, or stdin when args is empty or "-".
func readSource(cmd *cobra.Command, args []string) (name, src string, err error) {
	if len(args) == 0 || args[0] == "-" {
		data, err := io.ReadAll(cmd.InOrStdin())
		if err != nil {
			return "", "", fmt.Errorf("read stdin: %w", err)
		}
		return "<stdin>", string(data), nil
	}

	data, err := os.ReadFile(args[0])
	if err != nil {
		return "", "", fmt.Errorf("read source: %w", err)
	}
	return args[0], string(data), nil
}

func printError(w io.Writer, err error) {
	fmt.Fprintf(w, "Error: %v\n", err)
}
