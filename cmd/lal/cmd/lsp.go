package cmd

import (
	"github.com/spf13/cobra"

	"github.com/lal-lang/lal/internal/lsp"
)

func newLspCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "lsp",
		Short: "Run a language server on stdin/stdout",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			lsp.ServerVersion = Version
			a.logger.Info("Starting language server")

			srv := lsp.NewServer(cmd.InOrStdin(), cmd.OutOrStdout(), a.logger)
			return srv.Run(cmd.Context())
		},
	}
}
