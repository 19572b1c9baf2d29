package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"soberania-mesh/phiguard/pkg/counterspeech"
	"soberania-mesh/phiguard/pkg/patterns"
)

var counterSpeechLanguage string

var counterSpeechCmd = &cobra.Command{
	Use:   "counter-speech",
	Short: "Print a de-escalation line",
	Long: `Counter-speech prints one randomly chosen de-escalation line in the
requested language. Unsupported or empty languages fall back to the
node's primary language.`,
	RunE: runCounterSpeech,
}

func init() {
	counterSpeechCmd.Flags().StringVarP(&counterSpeechLanguage, "lang", "l", "", "line language (es, en, pt; empty = node primary)")
	rootCmd.AddCommand(counterSpeechCmd)
}

func runCounterSpeech(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	raw := counterSpeechLanguage
	if raw == "" {
		raw = cfg.Node.PrimaryLanguage
	}
	lang, err := patterns.ParseLanguage(raw)
	if err != nil {
		return err
	}

	fmt.Fprintln(cmd.OutOrStdout(), counterspeech.Pick(lang, counterspeech.NewRandomSelector()))
	return nil
}
