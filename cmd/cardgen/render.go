package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/jonathan/achievement-card/internal/card"
	"github.com/jonathan/achievement-card/internal/observability"
)

func newRenderCmd() *cobra.Command {
	var (
		outputFile string
		verbose    bool
	)

	cmd := &cobra.Command{
		Use:   "render <username>",
		Short: "Render one card to a file or stdout",
		Long:  "Fetches the profile once, bypassing the cache, and writes the SVG card.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}
			logger, err := newLogger(cfg)
			if err != nil {
				return err
			}
			defer func() { _ = logger.Sync() }()

			renderer, err := newRenderer(cfg, nil, logger)
			if err != nil {
				return err
			}

			ctx := cmd.Context()
			if ctx == nil {
				ctx = context.Background()
			}

			username := args[0]
			profile, err := renderer.Profile(ctx, username)
			if err != nil {
				return fmt.Errorf("failed to load profile %q: %w", username, err)
			}
			svg, geometry, err := card.Compose(username, profile)
			if err != nil {
				return fmt.Errorf("failed to render card: %w", err)
			}

			if verbose {
				observability.NewPrinter(cmd.ErrOrStderr()).PrintProfile(username, profile, geometry)
			}

			if outputFile == "" {
				_, err = fmt.Fprint(cmd.OutOrStdout(), svg)
				return err
			}
			if dir := filepath.Dir(outputFile); dir != "." {
				if err := os.MkdirAll(dir, 0o755); err != nil {
					return fmt.Errorf("failed to create output directory: %w", err)
				}
			}
			if err := os.WriteFile(outputFile, []byte(svg), 0o644); err != nil {
				return fmt.Errorf("failed to write %s: %w", outputFile, err)
			}
			fmt.Fprintf(cmd.ErrOrStderr(), "Wrote %s\n", outputFile)
			return nil
		},
	}
	cmd.Flags().StringVarP(&outputFile, "out", "o", "", "Output SVG file (default stdout)")
	cmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "Print the parsed profile and layout to stderr")
	return cmd
}
