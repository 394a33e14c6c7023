package main

import (
	"github.com/iwvelando/substat-optimizer/internal/report"
	"github.com/iwvelando/substat-optimizer/pkg/output"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

func newEvaluateCmd(opts *rootOptions) *cobra.Command {
	inputs := &profileFlags{}

	cmd := &cobra.Command{
		Use:   "evaluate",
		Short: "Print the base EATK and the gain from one more roll of each stat",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			conf, logger, err := prepare(cmd, opts, inputs.overrides(cmd, opts))
			if err != nil {
				return err
			}
			defer func() {
				_ = logger.Sync()
			}()

			snapshot := report.Evaluate(conf.Profile, conf.Rolls)
			logger.Debug("evaluated profile",
				zap.String("op", "main.evaluate"),
				zap.Float64("eatk", snapshot.EATK),
			)

			if err := output.Snapshot(cmd.OutOrStdout(), conf.Output.Format, snapshot); err != nil {
				logger.Error("failed to write output", zap.String("op", "main.evaluate"), zap.Error(err))
				return err
			}
			return nil
		},
	}
	inputs.register(cmd, false)
	return cmd
}
