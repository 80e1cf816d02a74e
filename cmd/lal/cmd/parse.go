package cmd

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/lal-lang/lal/internal/ast"
	"github.com/lal-lang/lal/internal/astdump"
	"github.com/lal-lang/lal/internal/diag"
	"github.com/lal-lang/lal/internal/lexer"
	"github.com/lal-lang/lal/internal/parser"
)

func newParseCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "parse [file|-]",
		Short: "Parse a source file and print the program",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			name, src, err := readSource(cmd, args)
			if err != nil {
				return err
			}

			program, ds := parseSource(name, src)
			a.logger.Debug("Parsed source",
				"file", name,
				"statements", len(program.Stmts),
				"diagnostics", len(ds),
			)

			if err := a.writeProgram(cmd.OutOrStdout(), program); err != nil {
				return err
			}

			if len(ds) == 0 {
				return nil
			}

			f := a.formatter(cmd.ErrOrStderr())
			f.AddSource(name, src)
			f.FormatAll(ds)

			return errDiagnostics
		},
	}
}

// parseSource parses src and returns the program with lexer diagnostics
// followed by parser diagnostics.
func parseSource(name, src string) (*ast.Program, []diag.Diagnostic) {
	lx := lexer.New(src)
	p := parser.New(lx, parser.WithFilename(name))
	program := p.ParseProgram()

	ds := lexerDiagnostics(lx)
	for _, e := range p.Diagnostics() {
		ds = append(ds, e.ToDiagnostic())
	}

	return program, ds
}

func (a *app) writeProgram(w io.Writer, program *ast.Program) error {
	if a.yamlOutput() {
		return astdump.WriteProgram(w, program)
	}

	if _, err := fmt.Fprintln(w, program.String()); err != nil {
		return fmt.Errorf("write program: %w", err)
	}
	return nil
}
