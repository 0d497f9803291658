package battlemetrics

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"rust-wipe-tracker/internal/adapters/battlemetrics/api"
	"rust-wipe-tracker/internal/core/domain"
)

type Adapter struct {
	client *api.Client
}

func NewAdapter(client *api.Client) *Adapter {
	return &Adapter{client: client}
}

// FetchServer looks a server up once. Failures are logged and translated to
// domain errors; nothing is retried.
func (a *Adapter) FetchServer(ctx context.Context, serverID string) (*domain.ServerInfo, error) {
	if !a.client.HasToken() {
		return nil, domain.ErrConfigurationMissing
	}

	resp, err := a.client.GetServer(ctx, serverID)
	if err != nil {
		slog.Warn("Failed to fetch server info", "server_id", serverID, "error", err)
		if errors.Is(err, api.ErrNotFound) {
			return nil, fmt.Errorf("%w: %s", domain.ErrServerNotFound, serverID)
		}
		return nil, fmt.Errorf("%w: %w", domain.ErrUpstreamUnavailable, err)
	}

	info := mapServer(resp)
	if info == nil {
		slog.Warn("BattleMetrics returned an empty server", "server_id", serverID)
		return nil, fmt.Errorf("%w: empty response for %s", domain.ErrUpstreamUnavailable, serverID)
	}

	return info, nil
}
