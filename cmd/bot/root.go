package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"time"

	"rust-wipe-tracker/internal/adapters/battlemetrics"
	"rust-wipe-tracker/internal/adapters/battlemetrics/api"
	"rust-wipe-tracker/internal/adapters/discord/formatting"
	"rust-wipe-tracker/internal/config"
	"rust-wipe-tracker/internal/core/ports"
	"rust-wipe-tracker/internal/core/services/wipe"

	"github.com/spf13/cobra"
)

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:          "wipe-tracker",
		Short:        "Discord bot that tracks Rust server wipes via BattleMetrics",
		SilenceUsage: true,
		Args:         cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runBot(cmd.Context())
		},
	}

	root.AddCommand(newLookupCmd())
	return root
}

func runBot(ctx context.Context) error {
	cfg, err := config.Load()
	if err != nil {
		slog.Error("Failed to load configuration", "error", err)
		return err
	}

	InitLogger(os.Stdout, cfg.LogLevel, cfg.LogFormat)

	app, err := NewApp(ctx, cfg)
	if err != nil {
		slog.Error("Failed to initialize application", "error", err)
		return err
	}

	defer func() {
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := app.Shutdown(shutdownCtx); err != nil {
			slog.Error("Application shutdown error", "error", err)
		}
	}()

	if err := app.Run(); err != nil {
		slog.Error("Failed to start application", "error", err)
		return err
	}

	WaitForShutdown(ctx)
	return nil
}

func newLookupCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "lookup <server_id>",
		Short: "Print the projected next wipe of a BattleMetrics server",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			InitLogger(cmd.ErrOrStderr(), "warn", "text")

			bm, err := config.LoadBattleMetrics()
			if err != nil {
				return err
			}

			fetcher := battlemetrics.NewAdapter(api.NewClient(bm.BaseURL, bm.APIToken, bm.Timeout))
			return runLookup(cmd.Context(), cmd.OutOrStdout(), fetcher, args[0], time.Now())
		},
	}
}

func runLookup(ctx context.Context, w io.Writer, fetcher ports.ServerFetcher, serverID string, now time.Time) error {
	info, err := fetcher.FetchServer(ctx, serverID)
	if err != nil {
		return fmt.Errorf("lookup %s: %w", serverID, err)
	}

	fmt.Fprintf(w, "Server:     %s (%s)\n", info.Name, info.ID)
	fmt.Fprintf(w, "Status:     %s\n", info.Status)
	fmt.Fprintf(w, "Players:    %s\n", formatting.Players(info.Players, info.MaxPlayers))

	next, ok := wipe.NextWipe(info)
	if !ok {
		fmt.Fprintln(w, "Next wipe:  unknown")
		return nil
	}

	fmt.Fprintf(w, "Last wipe:  %s\n", info.LastWipe.Format(time.RFC3339))
	fmt.Fprintf(w, "Next wipe:  %s\n", next.Format(time.RFC3339))
	fmt.Fprintf(w, "Remaining:  %s\n", formatting.Countdown(wipe.Until(next, now.In(next.Location()))))
	return nil
}
