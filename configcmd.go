package main

import (
	"fmt"
	"os"

	"github.com/apex/log"
	"github.com/spf13/cobra"

	"github.com/dtinel/sneaky/config"
	"github.com/dtinel/sneaky/wizard"
)

func newConfigCommand(root *rootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "manage the configuration file",
		Args:  cobra.NoArgs,
	}
	cmd.AddCommand(newConfigInitCommand(root), newConfigShowCommand(root))
	return cmd
}

func newConfigInitCommand(root *rootOptions) *cobra.Command {
	var interactive, force bool
	cmd := &cobra.Command{
		Use:   "init",
		Short: "write a configuration file",
		Long: `Init writes the stock configuration file, or with --interactive walks
through the choices in the terminal first.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runConfigInit(root, interactive, force)
		},
	}
	cmd.Flags().BoolVar(&interactive, "interactive", false, "build the configuration in a terminal wizard")
	cmd.Flags().BoolVar(&force, "force", false, "overwrite an existing file")
	return cmd
}

func runConfigInit(root *rootOptions, interactive, force bool) error {
	path := root.configPath
	if path == "" {
		p, err := config.DefaultPath()
		if err != nil {
			return err
		}
		path = p
	}
	if _, err := os.Stat(path); err == nil && !force {
		return fmt.Errorf("%s already exists; use --force to overwrite", path)
	}

	cfg := config.Default()
	if interactive {
		c, ok, err := wizard.Run()
		if err != nil {
			return err
		}
		if !ok {
			log.Info("wizard aborted, nothing written")
			return nil
		}
		cfg = c
	}
	if err := cfg.Save(path); err != nil {
		return err
	}
	log.Infof("wrote %s", path)
	return nil
}

func newConfigShowCommand(root *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "print the effective configuration",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			data, err := loadConfig(root).Encode()
			if err != nil {
				return err
			}
			_, err = cmd.OutOrStdout().Write(data)
			return err
		},
	}
}
