package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newBlocksCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "blocks",
		Short: "Print the configured block set",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := loadConfig(cmd, opts)
			if err != nil {
				return err
			}

			set, err := cfg.BlockSet()
			if err != nil {
				return err
			}

			for _, id := range set.IDs() {
				fmt.Fprintln(cmd.OutOrStdout(), id)
			}

			return nil
		},
	}
}
