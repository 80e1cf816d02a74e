package cmd

import (
	"bufio"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/lal-lang/lal/internal/lexer"
)

const (
	replPrompt = ">> "
	replExit   = "exit()"
	replSource = "<repl>"
)

func newReplCmd(a *app) *cobra.Command {
	var parse bool

	cmd := &cobra.Command{
		Use:   "repl",
		Short: "Start an interactive read-tokenize-print loop",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			a.logger.Debug("Starting REPL", "parse", parse)
			return a.runRepl(cmd.InOrStdin(), cmd.OutOrStdout(), parse)
		},
	}

	cmd.Flags().BoolVar(&parse, "parse", false, "print the parsed program instead of tokens")

	return cmd
}

// runRepl reads one line at a time until exit() or end of input. Each line is
// an independent source; diagnostics never end the session.
func (a *app) runRepl(in io.Reader, out io.Writer, parse bool) error {
	scanner := bufio.NewScanner(in)

	for {
		fmt.Fprint(out, replPrompt)

		if !scanner.Scan() {
			fmt.Fprintln(out)
			break
		}

		line := scanner.Text()
		if line == replExit {
			break
		}

		if parse {
			a.replParse(out, line)
			continue
		}

		lx := lexer.New(line)
		for tok := lx.NextToken(); tok.Type != lexer.EOF; tok = lx.NextToken() {
			fmt.Fprintln(out, tok)
		}
	}

	if err := scanner.Err(); err != nil {
		return fmt.Errorf("read input: %w", err)
	}
	return nil
}

func (a *app) replParse(out io.Writer, line string) {
	program, ds := parseSource(replSource, line)

	if err := a.writeProgram(out, program); err != nil {
		a.logger.Error("Failed to print program", "error", err)
		return
	}

	f := a.formatter(out)
	f.AddSource(replSource, line)
	f.FormatAll(ds)
}
