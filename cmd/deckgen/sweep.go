package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/deckgen/deckgen/pkg/config"
	"github.com/deckgen/deckgen/pkg/generate"
)

func newSweepCmd() *cobra.Command {
	var (
		templatePath string
		paramsPath   string
		jobsDir      string
	)

	cmd := &cobra.Command{
		Use:     "sweep",
		Short:   MsgSweepShort,
		Long:    MsgSweepLong,
		Example: MsgSweepExample,
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(".")
			if err != nil {
				return err
			}

			result, err := generate.Sweep(generate.SweepOptions{
				TemplatePath: templatePath,
				ParamsPath:   paramsPath,
				JobsDir:      jobsDir,
				Config:       cfg,
			})
			if err != nil {
				return err
			}

			fmt.Printf("Successfully generated %d job file(s) in %s\n", len(result.Written), result.JobsDir)
			return nil
		},
	}

	cmd.Flags().StringVar(&templatePath, "template", "", MsgFlagTemplate)
	cmd.Flags().StringVar(&paramsPath, "params", "", MsgFlagParams)
	cmd.Flags().StringVar(&jobsDir, "jobs-dir", "", MsgFlagJobsDir)
	_ = cmd.MarkFlagRequired("template")
	_ = cmd.MarkFlagRequired("params")

	return cmd
}
