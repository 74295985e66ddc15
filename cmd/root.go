package cmd

import (
	"os"
	"time"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
)

var logger zerolog.Logger

var rootCmd = &cobra.Command{
	Use:   "clinicalgen [command]",
	Short: "Synthetic clinical dataset generator for a hospital EHR schema",
	Long: `Generate a reproducible synthetic hospital dataset (patients, encounters,
medication administrations, labs, vitals, nursing assessments), load it into
PostgreSQL, and run analytics against it.`,
}

func Execute() {
	logger = zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339}).
		With().Timestamp().Logger()
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
