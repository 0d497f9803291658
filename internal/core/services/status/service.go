package status

import (
	"context"
	"log/slog"
	"time"

	"rust-wipe-tracker/internal/adapters/metrics"
	"rust-wipe-tracker/internal/config"
	"rust-wipe-tracker/internal/core/domain"
	"rust-wipe-tracker/internal/core/ports"
	"rust-wipe-tracker/internal/core/services/wipe"

	"github.com/robfig/cron/v3"
)

type Dependencies struct {
	Config   *config.Config
	Storage  ports.Repository
	Fetcher  ports.ServerFetcher
	Presence ports.PresenceService
}

// Service keeps the bot presence pointed at the soonest upcoming wipe among
// all tracked servers.
type Service struct {
	interval time.Duration
	storage  ports.Repository
	fetcher  ports.ServerFetcher
	presence ports.PresenceService
	now      func() time.Time
}

func NewService(deps Dependencies) *Service {
	return &Service{
		interval: deps.Config.StatusInterval,
		storage:  deps.Storage,
		fetcher:  deps.Fetcher,
		presence: deps.Presence,
		now:      time.Now,
	}
}

// Start refreshes once, then on every interval until ctx is cancelled.
// A refresh still running when the next one is due causes that tick to be skipped.
func (s *Service) Start(ctx context.Context) {
	logger := cronLogger{}
	c := cron.New(cron.WithChain(
		cron.Recover(logger),
		cron.SkipIfStillRunning(logger),
	), cron.WithLogger(logger))

	c.Schedule(cron.Every(s.interval), cron.FuncJob(func() {
		s.Refresh(ctx)
	}))

	slog.Info("Status service started", "interval", s.interval)

	s.Refresh(ctx)
	c.Start()

	<-ctx.Done()
	<-c.Stop().Done()
	slog.Info("Status service stopped")
}

type candidate struct {
	server domain.ServerInfo
	next   time.Time
}

// Refresh recomputes the soonest wipe and updates the presence. Servers that
// cannot be fetched or have no known wipe are left out.
func (s *Service) Refresh(ctx context.Context) {
	entries, err := s.storage.ListTrackedServers(ctx)
	if err != nil {
		slog.Error("Failed to list tracked servers", "error", err)
		return
	}
	metrics.TrackedServers.Set(float64(len(entries)))

	candidates := s.collect(ctx, entries)
	soonest, ok := selectSoonest(candidates)
	if !ok {
		s.clear()
		return
	}

	countdown := wipe.Until(soonest.next, s.now().In(soonest.next.Location()))
	if err := s.presence.ShowWipeCountdown(soonest.server.Name, countdown); err != nil {
		metrics.PresenceUpdates.WithLabelValues("countdown", "error").Inc()
		slog.Error("Failed to update presence", "server_name", soonest.server.Name, "error", err)
		return
	}
	metrics.PresenceUpdates.WithLabelValues("countdown", "success").Inc()
	slog.Debug("Presence updated",
		"server_id", soonest.server.ID,
		"server_name", soonest.server.Name,
		"next_wipe", soonest.next,
	)
}

func (s *Service) collect(ctx context.Context, entries []domain.TrackedServer) []candidate {
	candidates := make([]candidate, 0, len(entries))
	seen := make(map[string]struct{}, len(entries))

	for _, entry := range entries {
		if _, dup := seen[entry.ServerID]; dup {
			continue
		}
		seen[entry.ServerID] = struct{}{}

		info, err := s.fetcher.FetchServer(ctx, entry.ServerID)
		if err != nil {
			slog.Warn("Skipping server in status refresh", "guild_id", entry.GuildID, "server_id", entry.ServerID, "error", err)
			continue
		}

		next, ok := wipe.NextWipe(info)
		if !ok {
			slog.Debug("Skipping server without a known wipe", "server_id", entry.ServerID)
			continue
		}
		candidates = append(candidates, candidate{server: *info, next: next})
	}
	return candidates
}

// selectSoonest returns the earliest candidate; on equal instants the first
// one wins.
func selectSoonest(candidates []candidate) (candidate, bool) {
	if len(candidates) == 0 {
		return candidate{}, false
	}
	best := candidates[0]
	for _, c := range candidates[1:] {
		if c.next.Before(best.next) {
			best = c
		}
	}
	return best, true
}

func (s *Service) clear() {
	if err := s.presence.ClearPresence(); err != nil {
		metrics.PresenceUpdates.WithLabelValues("cleared", "error").Inc()
		slog.Error("Failed to clear presence", "error", err)
		return
	}
	metrics.PresenceUpdates.WithLabelValues("cleared", "success").Inc()
}

// cronLogger routes cron's own messages through slog.
type cronLogger struct{}

func (cronLogger) Info(msg string, keysAndValues ...interface{}) {
	slog.Debug("cron: "+msg, keysAndValues...)
}

func (cronLogger) Error(err error, msg string, keysAndValues ...interface{}) {
	slog.Error("cron: "+msg, append([]interface{}{"error", err}, keysAndValues...)...)
}
