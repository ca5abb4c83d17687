package main

import (
	"context"
	"os"

	"github.com/dmitrijs2005/scriptoria/internal/client/cli"
	"github.com/dmitrijs2005/scriptoria/internal/client/config"
	"github.com/spf13/cobra"
)

func newRootCmd() *cobra.Command {
	var flags *config.Flags

	cmd := &cobra.Command{
		Use:          "scriptoria",
		Short:        "Interactive client for the Scriptoria server",
		SilenceUsage: true,
		Args:         cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := flags.Load()
			if err != nil {
				return err
			}

			app, err := cli.NewApp(cfg)
			if err != nil {
				return err
			}
			return app.Run(cmd.Context())
		},
	}
	flags = config.RegisterFlags(cmd.Flags())
	return cmd
}

func main() {
	if err := newRootCmd().ExecuteContext(context.Background()); err != nil {
		os.Exit(1)
	}
}
