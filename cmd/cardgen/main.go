// Package main provides the cardgen CLI: an HTTP server for achievement cards and a
// one-shot renderer.
package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var (
	configPath string
	logLevel   string
	devLogs    bool
)

func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:           "cardgen",
		Short:         "Achievement card generator",
		Long:          "cardgen turns a public developer profile into a self-contained SVG card of badges and certificates.",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	cmd.PersistentFlags().StringVarP(&configPath, "config", "c", "", "Path to JSON config file")
	cmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "Log level (debug, info, warn, error); overrides config")
	cmd.PersistentFlags().BoolVar(&devLogs, "dev", false, "Human-readable console logs")

	cmd.AddCommand(newServeCmd(), newRenderCmd())
	return cmd
}

func main() {
	// Load .env file if it exists
	_ = godotenv.Load()

	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
