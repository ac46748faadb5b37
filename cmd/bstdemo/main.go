// Package main provides bstdemo, which replays inserts, lookups and removals
// on an unbalanced binary search tree and prints the results with the
// resulting in-order listing and shape.
package main

import (
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// flagKeys maps flag names to configuration keys.
var flagKeys = map[string]string{
	"insert":     "insert",
	"query":      "query",
	"remove":     "remove",
	"format":     "format",
	"no-color":   "no_color",
	"log-level":  "log.level",
	"log-format": "log.format",
}

func main() {
	err := newRootCommand().Execute()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func newRootCommand() *cobra.Command {
	var configPath string

	v := viper.New()

	rootCmd := &cobra.Command{
		Use:   "bstdemo",
		Short: "Replay operations on an unbalanced binary search tree",
		Long: `bstdemo inserts the --insert values in order, looks up the --query values,
removes the --remove values and looks up the --query values again.

Settings can also come from a YAML file (--config) or BSTDEMO_* environment
variables, e.g. BSTDEMO_INSERT=5,3,8 or BSTDEMO_LOG_LEVEL=debug.`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			err := bindFlags(v, cmd.Flags())
			if err != nil {
				return err
			}

			cfg, err := LoadConfig(v, configPath)
			if err != nil {
				return err
			}

			if cfg.NoColor {
				color.NoColor = true
			}

			logger := newLogger(cfg.Log, cmd.ErrOrStderr())

			return writeReport(cmd.OutOrStdout(), replay(cfg, logger), cfg.Format)
		},
	}

	flags := rootCmd.Flags()
	flags.StringVarP(&configPath, "config", "c", "", "YAML config file")
	flags.IntSlice("insert", defaultInsert, "values to insert, in order")
	flags.IntSlice("query", defaultQuery, "values to look up before and after the removals")
	flags.IntSlice("remove", defaultRemove, "values to remove, in order")
	flags.StringP("format", "f", formatTable, "output format: table, tree or plain")
	flags.Bool("no-color", false, "disable colored output")
	flags.String("log-level", "warn", "log level: debug, info, warn or error")
	flags.String("log-format", logFormatText, "log format: text or json")

	return rootCmd
}

func bindFlags(v *viper.Viper, flags *pflag.FlagSet) error {
	for name, key := range flagKeys {
		err := v.BindPFlag(key, flags.Lookup(name))
		if err != nil {
			return fmt.Errorf("bind flag %s: %w", name, err)
		}
	}

	return nil
}
