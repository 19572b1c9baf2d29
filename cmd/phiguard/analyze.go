package main

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"soberania-mesh/phiguard/pkg/guard"
	"soberania-mesh/phiguard/pkg/patterns"
)

var (
	analyzeDirection string
	analyzeLanguage  string
)

var analyzeCmd = &cobra.Command{
	Use:   "analyze [text...]",
	Short: "Score a single message and print the verdict",
	Long: `Analyze runs one message through the guard and prints the full
verdict as JSON: detected language, per-category signals, channel state
after the update and the bilateral decision.

The message updates the configured state store exactly as a served
message would, so repeated invocations accumulate channel history.`,
	Args: cobra.MinimumNArgs(1),
	RunE: runAnalyze,
}

func init() {
	analyzeCmd.Flags().StringVarP(&analyzeDirection, "direction", "d", "inbound", "message direction (inbound or outbound)")
	analyzeCmd.Flags().StringVarP(&analyzeLanguage, "lang", "l", "", "message language (es, en, pt; empty = auto-detect)")
	rootCmd.AddCommand(analyzeCmd)
}

func runAnalyze(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}
	if err := setupLogging(cfg); err != nil {
		return fmt.Errorf("failed to configure logging: %w", err)
	}

	dir, ok := guard.ParseDirection(analyzeDirection)
	if !ok {
		return fmt.Errorf("invalid direction %q (want inbound or outbound)", analyzeDirection)
	}
	lang, err := patterns.ParseLanguage(analyzeLanguage)
	if err != nil {
		return err
	}

	d, err := buildGuard(cfg)
	if err != nil {
		return err
	}
	defer d.Close()

	result := d.guard.ProcessMessage(strings.Join(args, " "), dir, lang, nil)

	out, err := json.MarshalIndent(result, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode result: %w", err)
	}
	fmt.Fprintln(cmd.OutOrStdout(), string(out))
	return nil
}
