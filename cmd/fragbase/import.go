package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/fragbase/fragbase"
	"github.com/fragbase/fragbase/internal/log"
	"github.com/spf13/cobra"
)

func importCmd() *cobra.Command {
	var envFile string

	cmd := &cobra.Command{
		Use:   "import <archive>",
		Short: "Import a legacy export archive",
		Long: `Import a legacy export archive.

Extracts the archive's attachments into the media directory and reconciles
its relational dump manifest into the database. Imports are idempotent:
re-running the same archive converges on the same state. Records whose
manifest references do not resolve are skipped and reported; an
unreadable archive or malformed manifest aborts the import.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runImport(envFile, args[0])
		},
	}

	cmd.Flags().StringVar(&envFile, "env-file", "", "Path to .env file (default: .env in current directory)")

	return cmd
}

func runImport(envFile, archivePath string) error {
	cfg, err := loadConfig(envFile)
	if err != nil {
		return err
	}

	if err := cfg.EnsureDataDir(); err != nil {
		return fmt.Errorf("create data directory: %w", err)
	}

	logger := log.NewLogger(cfg)
	slogger := logger.Slog()

	opts := append(clientOptions(cfg), fragbase.WithLogger(slogger))

	client, err := fragbase.New(opts...)
	if err != nil {
		return fmt.Errorf("create fragbase client: %w", err)
	}
	defer func() {
		if err := client.Close(); err != nil {
			slogger.Error("failed to close fragbase client", slog.Any("error", err))
		}
	}()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	summary, err := client.Importer.Import(ctx, archivePath)
	if err != nil {
		return fmt.Errorf("import %s: %w", archivePath, err)
	}

	fmt.Printf("imported %s\n", archivePath)
	fmt.Printf("  attachments: %d\n", summary.Attachments)
	fmt.Printf("  users:       %d\n", summary.Users)
	fmt.Printf("  fragments:   %d\n", summary.Fragments)
	fmt.Printf("  tags:        %d\n", summary.Tags)
	fmt.Printf("  taggings:    %d\n", summary.Taggings)
	fmt.Printf("  relations:   %d\n", summary.Relations)
	if len(summary.Skipped) > 0 {
		fmt.Printf("  skipped:     %d\n", len(summary.Skipped))
		for _, rec := range summary.Skipped {
			fmt.Fprintf(os.Stderr, "  skipped %s\n", rec)
		}
	}
	return nil
}
