package main

import (
	"github.com/spf13/cobra"

	"github.com/deckgen/deckgen/pkg/config"
	"github.com/deckgen/deckgen/pkg/filesystem"
	"github.com/deckgen/deckgen/pkg/template"
	"github.com/deckgen/deckgen/pkg/ui"
)

func newCombineCmd() *cobra.Command {
	var (
		templatePath string
		outputDir    string
	)

	cmd := &cobra.Command{
		Use:     "combine",
		Short:   MsgCombineShort,
		Long:    MsgCombineLong,
		Example: MsgCombineExample,
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(".")
			if err != nil {
				return err
			}

			fsys := filesystem.NewOS()
			tmpl, err := template.Load(fsys, templatePath)
			if err != nil {
				return err
			}

			session := ui.NewSession(tmpl, fsys, cfg, outputDir)
			return session.Run()
		},
	}

	cmd.Flags().StringVar(&templatePath, "template", "", MsgFlagTemplate)
	cmd.Flags().StringVar(&outputDir, "output-dir", "", MsgFlagOutputDir)
	_ = cmd.MarkFlagRequired("template")

	return cmd
}
