package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-snake/internal/config"
)

var flagDefaults bool

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print the effective configuration",
	Long: `Print the snake configuration as YAML.

Without flags, prints the configuration the game would use: --config if
given, else ~/.tui-snake/configs/snake.yaml, else ./configs/snake.yaml,
else the built-in defaults.

Examples:
  snake config
  snake config --defaults > ~/.tui-snake/configs/snake.yaml
  snake config --config ./my-snake.yaml`,
	Args: cobra.NoArgs,
	Run:  runConfig,
}

func init() {
	configCmd.Flags().BoolVar(&flagDefaults, "defaults", false, "Print the built-in default file instead")
}

func runConfig(_ *cobra.Command, _ []string) {
	if flagDefaults {
		_, err := os.Stdout.Write(config.GetDefaultYAML())
		exitOnError(err)
		return
	}

	cfg, err := config.LoadSnake(flagConfig)
	exitOnError(err)

	data, err := config.Marshal(cfg)
	exitOnError(err)

	_, err = os.Stdout.Write(data)
	exitOnError(err)
}
