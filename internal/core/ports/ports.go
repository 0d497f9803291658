package ports

import (
	"context"

	"rust-wipe-tracker/internal/core/domain"
)

type Repository interface {
	SetTrackedServer(ctx context.Context, discordGuildID, serverID string) error
	// GetTrackedServer returns domain.ErrNotTracked when the guild has no entry.
	GetTrackedServer(ctx context.Context, discordGuildID string) (*domain.TrackedServer, error)
	DeleteTrackedServer(ctx context.Context, discordGuildID string) (bool, error)
	// ListTrackedServers returns every entry ordered by guild ID.
	ListTrackedServers(ctx context.Context) ([]domain.TrackedServer, error)
	Close()
}

type ServerFetcher interface {
	FetchServer(ctx context.Context, serverID string) (*domain.ServerInfo, error)
}

type PresenceService interface {
	ShowWipeCountdown(serverName string, countdown domain.Countdown) error
	ClearPresence() error
}
