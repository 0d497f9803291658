package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"rust-wipe-tracker/internal/core/domain"
	"rust-wipe-tracker/internal/core/ports"
	"rust-wipe-tracker/internal/core/services/wipe"
)

type TrackingService struct {
	repo    ports.Repository
	fetcher ports.ServerFetcher
	now     func() time.Time
}

func NewTrackingService(repo ports.Repository, fetcher ports.ServerFetcher) *TrackingService {
	return &TrackingService{repo: repo, fetcher: fetcher, now: time.Now}
}

// Track resolves serverID and, only when the lookup succeeds, stores it as
// the guild's tracked server.
func (s *TrackingService) Track(ctx context.Context, guildID, serverID string) (*domain.ServerInfo, error) {
	serverID = strings.TrimSpace(serverID)

	info, err := s.fetcher.FetchServer(ctx, serverID)
	if err != nil {
		if errors.Is(err, domain.ErrConfigurationMissing) {
			return nil, err
		}
		return nil, fmt.Errorf("%w: %w", domain.ErrServerNotFound, err)
	}

	if err := s.repo.SetTrackedServer(ctx, guildID, serverID); err != nil {
		return nil, fmt.Errorf("save tracked server: %w", err)
	}

	slog.Info("Tracking server", "guild_id", guildID, "server_id", serverID, "server_name", info.Name)
	return info, nil
}

func (s *TrackingService) Untrack(ctx context.Context, guildID string) (bool, error) {
	removed, err := s.repo.DeleteTrackedServer(ctx, guildID)
	if err != nil {
		return false, fmt.Errorf("delete tracked server: %w", err)
	}
	if removed {
		slog.Info("Stopped tracking server", "guild_id", guildID)
	}
	return removed, nil
}

func (s *TrackingService) WipeReport(ctx context.Context, guildID string) (*domain.WipeReport, error) {
	tracked, err := s.repo.GetTrackedServer(ctx, guildID)
	if err != nil {
		return nil, err
	}

	info, err := s.fetcher.FetchServer(ctx, tracked.ServerID)
	if err != nil {
		if errors.Is(err, domain.ErrConfigurationMissing) || errors.Is(err, domain.ErrUpstreamUnavailable) {
			return nil, err
		}
		return nil, fmt.Errorf("%w: %w", domain.ErrUpstreamUnavailable, err)
	}

	next, ok := wipe.NextWipe(info)
	if !ok {
		return nil, domain.ErrWipeUnknown
	}

	return &domain.WipeReport{
		Server:    *info,
		NextWipe:  next,
		Remaining: wipe.Until(next, s.now().In(next.Location())),
	}, nil
}
