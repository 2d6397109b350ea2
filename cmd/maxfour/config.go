package main

import (
	"github.com/spf13/cobra"
	"github.com/wttech/maxfour/pkg/cfg"
)

func (c *CLI) configCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "config",
		Aliases: []string{"cfg"},
		Short:   "Manages configuration",
	}
	cmd.AddCommand(c.configValuesCmd())
	cmd.AddCommand(c.configFileCmd())
	return cmd
}

func (c *CLI) configValuesCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "values",
		Aliases: []string{"get-all"},
		Short:   "Read all configuration values",
		Args:    cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			c.SetOutput("file", cfg.FileEffective())
			c.SetResult("values", c.config.Values())
			c.Ok("config values read")
		},
	}
}

func (c *CLI) configFileCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "file",
		Short: "Print path of the configuration file in use",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			c.SetResult("file", cfg.File())
			if cfg.FileEffective() == "" {
				c.Ok("config file does not exist, using defaults")
			} else {
				c.Ok("config file read")
			}
		},
	}
}
