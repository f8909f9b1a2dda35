package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/LISSConsulting/LISSTech.Jester/internal/config"
)

func fetchCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "fetch",
		Short: "Fetch one joke and print it without the TUI",
		RunE: func(cmd *cobra.Command, args []string) error {
			configPath, _ := cmd.Flags().GetString("config")
			noDelay, _ := cmd.Flags().GetBool("no-delay")
			asJSON, _ := cmd.Flags().GetBool("json")
			verbose, _ := cmd.Flags().GetBool("verbose")
			return executeFetch(configPath, fetchOptions{
				NoDelay: noDelay,
				JSON:    asJSON,
				Verbose: verbose,
				Out:     cmd.OutOrStdout(),
			})
		},
	}
	cmd.Flags().Bool("no-delay", false, "print the joke as soon as it arrives")
	cmd.Flags().Bool("json", false, "print the joke as JSON")
	cmd.Flags().Bool("verbose", false, "log diagnostics to stderr instead of the log file")
	return cmd
}

func initCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "init",
		Short: "Create jester.toml in the current directory",
		RunE: func(cmd *cobra.Command, args []string) error {
			dir, err := os.Getwd()
			if err != nil {
				return fmt.Errorf("get working directory: %w", err)
			}
			created, err := config.ScaffoldProject(dir)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			if len(created) == 0 {
				fmt.Fprintln(out, "All files already exist — nothing to create.")
				return nil
			}
			for _, path := range created {
				fmt.Fprintf(out, "Created %s\n", path)
			}
			return nil
		},
	}
}
