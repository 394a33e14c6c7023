package main

import (
	"github.com/spf13/cobra"
)

func newConfigCmd(opts *rootOptions) *cobra.Command {
	inputs := &profileFlags{}

	cmd := &cobra.Command{
		Use:   "config",
		Short: "Print the effective configuration as YAML",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			conf, logger, err := prepare(cmd, opts, inputs.overrides(cmd, opts))
			if err != nil {
				return err
			}
			defer func() {
				_ = logger.Sync()
			}()

			out, err := conf.YAML()
			if err != nil {
				return err
			}
			_, err = cmd.OutOrStdout().Write(out)
			return err
		},
	}
	inputs.register(cmd, true)
	return cmd
}
