package main

import (
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/Saint-Jimmy-13/GWPF-GridWorldPathFinder/experiment"
)

func newRunCmd() *cobra.Command {
	var (
		configPath string
		outputPath string
	)

	cmd := &cobra.Command{
		Use:   "run",
		Short: "Run the experiment batch and write results to CSV",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := experiment.DefaultConfig()
			if configPath != "" {
				loaded, err := experiment.LoadConfig(configPath)
				if err != nil {
					return err
				}
				cfg = loaded
			}
			if outputPath != "" {
				cfg.OutputCSV = outputPath
			}

			runner := experiment.NewRunner(cfg, slog.Default())
			records, err := runner.Run()
			if err != nil {
				return err
			}

			if err := experiment.WriteCSVFile(cfg.OutputCSV, records); err != nil {
				return err
			}

			fmt.Fprint(cmd.OutOrStdout(), experiment.RenderTable(records))
			fmt.Fprintf(cmd.OutOrStdout(), "\nResults saved to %q.\n", cfg.OutputCSV)
			return nil
		},
	}

	cmd.Flags().StringVar(&configPath, "config", "", "experiment config YAML (defaults used when empty)")
	cmd.Flags().StringVar(&outputPath, "out", "", "override the configured CSV output path")

	return cmd
}

func newInitConfigCmd() *cobra.Command {
	var path string

	cmd := &cobra.Command{
		Use:   "init-config",
		Short: "Write an example experiment config, then exit",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := experiment.WriteExampleConfig(path); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Wrote example config to %q.\n", path)
			return nil
		},
	}

	cmd.Flags().StringVar(&path, "path", "gridworld.yaml", "where to write the example config")

	return cmd
}
