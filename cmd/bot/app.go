package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"rust-wipe-tracker/internal/adapters/battlemetrics"
	"rust-wipe-tracker/internal/adapters/battlemetrics/api"
	"rust-wipe-tracker/internal/adapters/discord"
	"rust-wipe-tracker/internal/adapters/discord/commands"
	"rust-wipe-tracker/internal/adapters/storage/jsonfile"
	"rust-wipe-tracker/internal/adapters/storage/postgres"
	"rust-wipe-tracker/internal/config"
	"rust-wipe-tracker/internal/core/ports"
	"rust-wipe-tracker/internal/core/services"
	"rust-wipe-tracker/internal/core/services/status"

	"github.com/bwmarrin/discordgo"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

type App struct {
	config             *config.Config
	store              ports.Repository
	discord            *discordgo.Session
	statusService      *status.Service
	router             *commands.Router
	metricsServer      *http.Server
	statusCtx          context.Context
	statusCancel       context.CancelFunc
	statusDone         chan struct{}
	registeredCommands []*discordgo.ApplicationCommand
}

func NewApp(ctx context.Context, cfg *config.Config) (*App, error) {
	store, err := newStore(ctx, cfg)
	if err != nil {
		slog.Error("Failed to open storage", "error", err)
		return nil, err
	}

	client := api.NewClient(cfg.BaseURL, cfg.APIToken, cfg.Timeout)
	if !client.HasToken() {
		slog.Warn("BATTLEMETRICS_TOKEN is not set; commands will report missing configuration")
	}
	fetcher := battlemetrics.NewAdapter(client)

	session, err := discord.NewSession(cfg)
	if err != nil {
		store.Close()
		return nil, err
	}

	tracking := services.NewTrackingService(store, fetcher)
	statusService := status.NewService(status.Dependencies{
		Config:   cfg,
		Storage:  store,
		Fetcher:  fetcher,
		Presence: discord.NewAdapter(session),
	})

	handler := &commands.BotHandler{Prefix: cfg.CommandPrefix, Service: tracking}
	router := commands.NewRouter(cfg.CommandPrefix)
	router.Register(commands.CmdTrack, handler.Track)
	router.Register(commands.CmdUntrack, handler.Untrack)
	router.Register(commands.CmdWipe, handler.Wipe)

	session.AddHandler(commands.ReadyHandler)
	session.AddHandler(router.HandleFunc())
	session.AddHandler(router.MessageHandlerFunc())

	return &App{
		config:        cfg,
		store:         store,
		discord:       session,
		statusService: statusService,
		router:        router,
	}, nil
}

func newStore(ctx context.Context, cfg *config.Config) (ports.Repository, error) {
	if cfg.DatabaseURL != "" {
		store, err := postgres.NewPostgresStore(ctx, cfg.DatabaseURL)
		if err != nil {
			return nil, fmt.Errorf("connect to postgres: %w", err)
		}
		slog.Info("Using postgres storage")
		return store, nil
	}

	store, err := jsonfile.NewFileStore(cfg.TrackedServersFile)
	if err != nil {
		return nil, fmt.Errorf("load tracked servers: %w", err)
	}
	slog.Info("Using file storage", "path", cfg.TrackedServersFile)
	return store, nil
}

func (a *App) Run() error {
	a.startMetricsServer()

	if err := a.discord.Open(); err != nil {
		slog.Error("Failed to open discord session", "error", err)
		return err
	}

	userID := a.discord.State.User.ID
	a.registeredCommands = commands.RegisterCommands(a.discord, commands.GetApplicationCommands(), userID, a.config.DiscordGuildID)

	a.statusCtx, a.statusCancel = context.WithCancel(context.Background())
	a.statusDone = make(chan struct{})
	go func() {
		defer close(a.statusDone)
		a.statusService.Start(a.statusCtx)
	}()

	slog.Info("Rust Wipe Tracker started", "prefix", a.config.CommandPrefix)
	return nil
}

func (a *App) startMetricsServer() {
	if a.config.MetricsAddr == "" {
		return
	}

	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.Handler())

	a.metricsServer = &http.Server{
		Addr:              a.config.MetricsAddr,
		Handler:           mux,
		ReadHeaderTimeout: 5 * time.Second,
	}

	go func() {
		slog.Info("Metrics server listening", "addr", a.config.MetricsAddr)
		if err := a.metricsServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			slog.Error("Metrics server failed", "error", err)
		}
	}()
}

func (a *App) Shutdown(ctx context.Context) error {
	slog.Info("Shutting down...")

	var errs []error

	if a.statusCancel != nil {
		a.statusCancel()
	}

	// A refresh in flight still uses the session and the store.
	if a.statusDone != nil {
		select {
		case <-a.statusDone:
		case <-ctx.Done():
			errs = append(errs, fmt.Errorf("wait for status service: %w", ctx.Err()))
		}
	}

	if a.discord != nil {
		if a.discord.State != nil && a.discord.State.User != nil {
			commands.CleanupCommands(a.discord, a.registeredCommands, a.discord.State.User.ID, a.config.DiscordGuildID)
		}
		if err := a.discord.Close(); err != nil {
			errs = append(errs, fmt.Errorf("close discord: %w", err))
		}
	}

	if a.metricsServer != nil {
		if err := a.metricsServer.Shutdown(ctx); err != nil {
			errs = append(errs, fmt.Errorf("stop metrics server: %w", err))
		}
	}

	if a.store != nil {
		a.store.Close()
	}

	return errors.Join(errs...)
}
