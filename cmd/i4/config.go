package main

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/yourusername/i4/internal/config"
	"github.com/yourusername/i4/internal/logging"
	"github.com/yourusername/i4/internal/output"
)

// MARK: - Config Commands

func (a *app) newConfigCmd() *cobra.Command {
	configCmd := &cobra.Command{
		Use:   "config <show|init|validate>",
		Short: "Manage configuration",
		Long:  `Commands for showing, creating and validating the i4 configuration file.`,
		// Config commands must run even when the file is broken.
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if a.noColor {
				color.NoColor = true
			}
			return logging.Init(logging.Options{Debug: a.debugMode, Console: cmd.ErrOrStderr(), Color: !color.NoColor})
		},
		RunE: requireSubcommand([]string{"show", "init", "validate"}),
	}

	var force bool
	initCmd := &cobra.Command{
		Use:   "init",
		Short: "Create the default configuration file",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			path := a.configFile()
			if err := config.WriteDefault(path, force); err != nil {
				return err
			}
			successColor.Fprintf(cmd.OutOrStdout(), "✓ Wrote %s\n", path)
			return nil
		},
	}
	initCmd.Flags().BoolVar(&force, "force", false, "Overwrite an existing file")

	configCmd.AddCommand(
		&cobra.Command{
			Use:   "show",
			Short: "Show the effective configuration",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, args []string) error {
				cfg, err := config.LoadConfig(a.configPath)
				if err != nil {
					return fmt.Errorf("failed to load config: %w", err)
				}
				if a.jsonOutput {
					return output.PrintJSON(cmd.OutOrStdout(), cfg)
				}
				data, err := cfg.Marshal()
				if err != nil {
					return err
				}
				_, err = cmd.OutOrStdout().Write(data)
				return err
			},
		},
		initCmd,
		&cobra.Command{
			Use:   "validate [path]",
			Short: "Validate a configuration file",
			Args:  cobra.MaximumNArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				path := a.configPath
				if len(args) > 0 {
					path = args[0]
				}

				cfg, err := config.LoadConfig(path)
				if err != nil {
					return fmt.Errorf("validation failed: %w", err)
				}

				out := cmd.OutOrStdout()
				successColor.Fprintln(out, "✓ Configuration is valid")
				fmt.Fprintf(out, "  Timeout: %s\n", cfg.Socket.Timeout)
				fmt.Fprintf(out, "  Skip empty siblings: %v\n", cfg.Navigation.SkipEmptySiblings)
				fmt.Fprintf(out, "  Include floating: %v\n", cfg.Navigation.IncludeFloating)
				return nil
			},
		},
	)

	return configCmd
}

func (a *app) configFile() string {
	if a.configPath != "" {
		return config.ExpandHome(a.configPath)
	}
	return config.GetConfigPath()
}
