package main

import (
	"fmt"

	toml "github.com/pelletier/go-toml/v2"
	"github.com/spf13/cobra"
	yaml "gopkg.in/yaml.v3"

	"github.com/deckgen/deckgen/pkg/config"
	"github.com/deckgen/deckgen/pkg/errors"
)

func newGenconfigCmd() *cobra.Command {
	var format string

	cmd := &cobra.Command{
		Use:   "genconfig",
		Short: MsgGenconfigShort,
		Long: `genconfig prints the default configuration. Redirect it to
.deckgen.toml (or .deckgen.yaml with --format yaml) and edit the values to
override the defaults.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := config.Default()

			var (
				out []byte
				err error
			)
			switch format {
			case "toml":
				out, err = toml.Marshal(cfg)
			case "yaml":
				out, err = yaml.Marshal(cfg)
			default:
				return errors.Newf(errors.ErrInvalidInput, "unknown config format %q", format)
			}
			if err != nil {
				return errors.Wrap(err, errors.ErrInternal, "failed to marshal config")
			}

			fmt.Print(string(out))
			return nil
		},
	}

	cmd.Flags().StringVar(&format, "format", "toml", MsgFlagFormat)

	return cmd
}
