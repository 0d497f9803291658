package db

import (
	"context"

	"github.com/jackc/pgx/v5/pgconn"
)

const deleteTrackedServer = `-- name: DeleteTrackedServer :execresult
DELETE FROM tracked_servers WHERE guild_id = $1
`

func (q *Queries) DeleteTrackedServer(ctx context.Context, guildID string) (pgconn.CommandTag, error) {
	return q.db.Exec(ctx, deleteTrackedServer, guildID)
}

const getTrackedServer = `-- name: GetTrackedServer :one
SELECT guild_id, server_id, updated_at FROM tracked_servers WHERE guild_id = $1
`

func (q *Queries) GetTrackedServer(ctx context.Context, guildID string) (TrackedServer, error) {
	row := q.db.QueryRow(ctx, getTrackedServer, guildID)
	var i TrackedServer
	err := row.Scan(&i.GuildID, &i.ServerID, &i.UpdatedAt)
	return i, err
}

const listTrackedServers = `-- name: ListTrackedServers :many
SELECT guild_id, server_id, updated_at FROM tracked_servers ORDER BY guild_id
`

func (q *Queries) ListTrackedServers(ctx context.Context) ([]TrackedServer, error) {
	rows, err := q.db.Query(ctx, listTrackedServers)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var items []TrackedServer
	for rows.Next() {
		var i TrackedServer
		if err := rows.Scan(&i.GuildID, &i.ServerID, &i.UpdatedAt); err != nil {
			return nil, err
		}
		items = append(items, i)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return items, nil
}

const upsertTrackedServer = `-- name: UpsertTrackedServer :exec
INSERT INTO tracked_servers (guild_id, server_id, updated_at)
VALUES ($1, $2, NOW())
ON CONFLICT (guild_id) DO UPDATE
SET server_id = EXCLUDED.server_id, updated_at = NOW()
`

type UpsertTrackedServerParams struct {
	GuildID  string
	ServerID string
}

func (q *Queries) UpsertTrackedServer(ctx context.Context, arg UpsertTrackedServerParams) error {
	_, err := q.db.Exec(ctx, upsertTrackedServer, arg.GuildID, arg.ServerID)
	return err
}
