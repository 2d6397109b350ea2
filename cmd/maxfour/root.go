package main

import (
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/wttech/maxfour/pkg/cfg"
	"strings"
)

func (c *CLI) rootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "maxfour",
		Short: "Prints the maximum of four integers read from input",
		Args:  cobra.NoArgs,

		SilenceErrors: true,
		SilenceUsage:  true,

		// needed to properly bind CLI flags with viper values from env and YML files
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return c.configure()
		},
		PersistentPostRunE: func(cmd *cobra.Command, args []string) error {
			return c.exit()
		},
		Run: func(cmd *cobra.Command, args []string) {
			input, err := c.ReadInput()
			if err != nil {
				c.Error(err)
				return
			}
			result := input.Max()
			log.Debugf("maximum of %s is %d", input, result)

			c.SetResult("input", input)
			c.SetOutput("max", result)
			c.Ok("maximum computed")
		},
	}
	cmd.AddCommand(c.versionCmd())
	cmd.AddCommand(c.configCmd())
	c.rootFlags(cmd)
	return cmd
}

func (c *CLI) rootFlags(cmd *cobra.Command) {
	cmd.PersistentFlags().String(
		"input-file", "",
		"Provides input as file path or '"+cfg.InputStdin+"'")
	cmd.PersistentFlags().String(
		"input-string", "",
		"Provides input as string")
	cmd.PersistentFlags().String(
		"output-format", "",
		"Controls output format ("+strings.Join(cfg.OutputFormats(), "|")+")")
	cmd.PersistentFlags().Bool(
		"no-color", false,
		"Disables colored log output")
	cmd.PersistentFlags().String(
		"log-level", "",
		"Controls log level (debug|info|warn|error)")
}
