package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"time"

	"MeAPI_Playground/internal/config"
	"MeAPI_Playground/internal/seed"
	"MeAPI_Playground/internal/storage"

	"github.com/spf13/cobra"
)

var (
	fixturePath string
	appendOnly  bool
	timeout     time.Duration
)

var rootCmd = &cobra.Command{
	Use:   "seed",
	Short: "Write a portfolio profile fixture to the configured store",
	Long: `seed loads a YAML profile (the embedded sample unless --file is given),
validates it and writes it to the store selected by STORE_DRIVER.
By default every existing profile is replaced.`,
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runSeed(cmd.Context())
	},
}

func init() {
	rootCmd.Flags().StringVarP(&fixturePath, "file", "f", "", "YAML profile fixture (default: embedded sample)")
	rootCmd.Flags().BoolVar(&appendOnly, "append", false, "add the profile instead of replacing existing ones")
	rootCmd.Flags().DurationVar(&timeout, "timeout", 30*time.Second, "overall deadline for store operations")
}

func main() {
	if err := rootCmd.ExecuteContext(context.Background()); err != nil {
		os.Exit(1)
	}
}

func runSeed(ctx context.Context) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: cfg.SlogLevel()})))

	profile, err := seed.LoadFile(fixturePath)
	if err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	store, err := storage.Open(ctx, storage.Options{
		Driver:        cfg.Store.Driver,
		SQLitePath:    cfg.Store.SQLitePath,
		MongoURI:      cfg.Store.MongoURI,
		MongoDatabase: cfg.Store.MongoDatabase,
	})
	if err != nil {
		return fmt.Errorf("opening store: %w", err)
	}
	defer store.Close()

	if err := seed.Apply(ctx, store, &profile, appendOnly); err != nil {
		return err
	}

	out := os.Stdout
	fmt.Fprintln(out, "Database seeded successfully")
	fmt.Fprintf(out, "  Name:      %s\n", profile.Name)
	fmt.Fprintf(out, "  Email:     %s\n", profile.Email)
	fmt.Fprintf(out, "  Skills:    %d\n", len(profile.Skills))
	fmt.Fprintf(out, "  Projects:  %d\n", len(profile.Projects))
	fmt.Fprintf(out, "  Work:      %d\n", len(profile.Work))
	return nil
}
