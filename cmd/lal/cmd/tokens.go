package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/lal-lang/lal/internal/astdump"
	"github.com/lal-lang/lal/internal/diag"
	"github.com/lal-lang/lal/internal/lexer"
)

func newTokensCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "tokens [file|-]",
		Short: "Print the token stream of a source file",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			name, src, err := readSource(cmd, args)
			if err != nil {
				return err
			}

			lx := lexer.New(src)
			lx.SetFilename(name)

			toks := lx.Tokens()
			a.logger.Debug("Tokenized source", "file", name, "tokens", len(toks))

			out := cmd.OutOrStdout()
			if a.yamlOutput() {
				if err := astdump.WriteTokens(out, toks); err != nil {
					return err
				}
			} else {
				for _, tok := range toks[:len(toks)-1] {
					fmt.Fprintln(out, tok)
				}
			}

			if len(lx.Errors) == 0 {
				return nil
			}

			f := a.formatter(cmd.ErrOrStderr())
			f.AddSource(name, src)
			f.FormatAll(lexerDiagnostics(lx))
			a.logger.Debug("Lexing finished with errors", "file", name, "errors", len(lx.Errors))

			return errDiagnostics
		},
	}
}

func lexerDiagnostics(lx *lexer.Lexer) []diag.Diagnostic {
	ds := make([]diag.Diagnostic, 0, len(lx.Errors))
	for _, e := range lx.Errors {
		ds = append(ds, e.ToDiagnostic())
	}
	return ds
}
