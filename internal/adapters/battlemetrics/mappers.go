package battlemetrics

import (
	"log/slog"
	"strings"
	"time"

	"rust-wipe-tracker/internal/adapters/battlemetrics/api"
	"rust-wipe-tracker/internal/core/domain"
)

func mapServer(resp *api.ServerResponse) *domain.ServerInfo {
	if resp == nil || resp.Data.Attributes.Name == "" {
		return nil
	}

	attrs := resp.Data.Attributes

	id := resp.Data.ID
	if id == "" {
		id = attrs.ID
	}

	return &domain.ServerInfo{
		ID:         id,
		Name:       attrs.Name,
		Status:     attrs.Status,
		Players:    attrs.Players,
		MaxPlayers: attrs.MaxPlayers,
		LastWipe:   parseLastWipe(id, attrs.Details.RustLastWipe),
	}
}

// lastWipeLayouts covers the ISO 8601 shapes BattleMetrics has been seen to
// return. Values without an offset are read as UTC.
var lastWipeLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02 15:04:05.999999999Z07:00",
	"2006-01-02T15:04:05.999999999",
	"2006-01-02 15:04:05.999999999",
	time.DateOnly,
}

// parseLastWipe keeps the offset of the timestamp when it has one. Anything
// unparsable is treated as an unknown wipe.
func parseLastWipe(serverID, raw string) *time.Time {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil
	}

	var err error
	for _, layout := range lastWipeLayouts {
		var ts time.Time
		if ts, err = time.Parse(layout, raw); err == nil {
			return &ts
		}
	}

	slog.Warn("Ignoring unparsable last wipe", "server_id", serverID, "value", raw, "error", err)
	return nil
}
