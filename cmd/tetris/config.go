package main

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-tetris/internal/config"
)

var flagDefaults bool

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print the effective configuration",
	Long: `Prints the configuration a game would start with, as YAML.

The config is searched in this order:
  --config <path>
  ~/.tetris/configs/tetris.yaml
  ./configs/tetris.yaml
  built-in defaults

Use --defaults to print the built-in default file, ready to copy and edit.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return writeConfig(cmd.OutOrStdout())
	},
}

func init() {
	configCmd.Flags().BoolVar(&flagDefaults, "defaults", false, "Print the built-in default config file")
}

func writeConfig(w io.Writer) error {
	if flagDefaults {
		_, err := w.Write(config.DefaultYAML())
		return err
	}

	cfg, src, err := loadConfig()
	if err != nil {
		return err
	}
	data, err := config.Marshal(cfg)
	if err != nil {
		return err
	}

	fmt.Fprintf(w, "# source: %s\n", src)
	_, err = w.Write(data)
	return err
}
