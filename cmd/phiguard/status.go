package main

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"
)

var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Print the node's channel state and risk levels",
	Long: `Status restores the guard state from the configured store and prints
both channels, the bilateral risk level and any active handoff or
lockdown as JSON.`,
	RunE: runStatus,
}

func init() {
	rootCmd.AddCommand(statusCmd)
}

func runStatus(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}
	if err := setupLogging(cfg); err != nil {
		return fmt.Errorf("failed to configure logging: %w", err)
	}

	d, err := buildGuard(cfg)
	if err != nil {
		return err
	}
	defer d.Close()

	out, err := json.MarshalIndent(d.guard.Status(), "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode status: %w", err)
	}
	fmt.Fprintln(cmd.OutOrStdout(), string(out))
	return nil
}
