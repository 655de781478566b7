package commands

import (
	"github.com/spf13/cobra"
	"go.trai.ch/keel/internal/invocation"
)

func (c *CLI) newBuildCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "build [options] [goals...]",
		Short: "Run the build for the specified goals",
		Long: "Run the build for the specified goals.\n\n" +
			"Options are resolved by the invocation layer, which merges them with\n" +
			"defaults persisted in .keel/keel.config at the multi-module root.\n\n" +
			"Options:\n" + invocation.NewFlagSet().FlagUsages(),
		// The invocation resolver owns the full option surface, including
		// persisted argument-file defaults, so cobra must not parse here.
		DisableFlagParsing: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 1 && (args[0] == "-h" || args[0] == "--help") {
				return cmd.Help()
			}
			return c.app.Run(cmd.Context(), args)
		},
	}
	return cmd
}
