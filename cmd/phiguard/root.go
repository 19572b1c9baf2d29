package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	// Global flags
	cfgFile string
	verbose bool
)

var rootCmd = &cobra.Command{
	Use:   "phiguard",
	Short: "PhiGuard - bidirectional multi-language manipulation-risk guard",
	Long: `PhiGuard protects mesh communications from adversarial manipulation in
either direction: messages received by this node and messages it sends.

Every message is scored against per-language manipulation pattern tables
(Spanish, English, Portuguese), feeding per-direction risk/safety dynamics
with asymmetric memory: risk responds and decays quickly, safety erodes and
rebuilds slowly. Sustained or high-intensity manipulation raises a sticky
hand-off signal; lockdown is an explicit operator action.`,
	Version: Version,
}

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&cfgFile, "config", "c", "", "config file path (defaults apply when omitted)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")
}
