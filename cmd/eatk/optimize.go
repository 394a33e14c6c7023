package main

import (
	"github.com/iwvelando/substat-optimizer/internal/optimizer"
	"github.com/iwvelando/substat-optimizer/internal/report"
	"github.com/iwvelando/substat-optimizer/pkg/output"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

func newOptimizeCmd(opts *rootOptions) *cobra.Command {
	inputs := &profileFlags{}

	cmd := &cobra.Command{
		Use:   "optimize",
		Short: "Rebalance rolls between ATK, CR and CD until their marginal gains even out",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			conf, logger, err := prepare(cmd, opts, inputs.overrides(cmd, opts))
			if err != nil {
				return err
			}
			defer func() {
				_ = logger.Sync()
			}()

			runner, err := optimizer.NewRunner(logger, conf)
			if err != nil {
				return err
			}
			result, err := runner.Run()
			if err != nil {
				logger.Error("optimizer failed", zap.String("op", "main.optimize"), zap.Error(err))
				return err
			}

			r := report.Build(runner.Profile(), runner.Rolls(), *result)
			if err := output.Report(cmd.OutOrStdout(), conf.Output.Format, r); err != nil {
				logger.Error("failed to write output", zap.String("op", "main.optimize"), zap.Error(err))
				return err
			}
			return nil
		},
	}
	inputs.register(cmd, true)
	return cmd
}
