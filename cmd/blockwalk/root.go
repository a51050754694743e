package main

import (
	"github.com/spf13/cobra"

	"github.com/next-trace/scg-event-bus/config"
)

type rootOptions struct {
	cfgFile string
}

func newRootCmd() *cobra.Command {
	opts := &rootOptions{}

	cmd := &cobra.Command{
		Use:           "blockwalk",
		Short:         "Walk on cobwebs: run the shape override rule against a demo world",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	cmd.PersistentFlags().StringVar(&opts.cfgFile, "config", "", "config file (default is $HOME/.blockwalk.yaml)")
	config.RegisterFlags(cmd.PersistentFlags())

	cmd.AddCommand(newSimulateCmd(opts))
	cmd.AddCommand(newBlocksCmd(opts))

	return cmd
}

func loadConfig(cmd *cobra.Command, opts *rootOptions) (*config.Config, error) {
	return config.Load(opts.cfgFile, cmd.Flags())
}
