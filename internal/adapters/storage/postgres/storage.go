package postgres

import (
	"context"
	"errors"
	"fmt"

	"rust-wipe-tracker/internal/adapters/storage/postgres/db"
	"rust-wipe-tracker/internal/core/domain"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PostgresStore struct {
	pool *pgxpool.Pool
	conn db.DBTX
	q    *db.Queries
}

func NewPostgresStore(ctx context.Context, connString string) (*PostgresStore, error) {
	pool, err := pgxpool.New(ctx, connString)
	if err != nil {
		return nil, fmt.Errorf("create connection pool: %w", err)
	}

	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("ping database: %w", err)
	}

	store := newStore(pool)
	store.pool = pool

	if err := store.EnsureSchema(ctx); err != nil {
		pool.Close()
		return nil, err
	}

	return store, nil
}

func newStore(conn db.DBTX) *PostgresStore {
	return &PostgresStore{
		conn: conn,
		q:    db.New(conn),
	}
}

func (s *PostgresStore) EnsureSchema(ctx context.Context) error {
	if err := db.EnsureSchema(ctx, s.conn); err != nil {
		return fmt.Errorf("ensure schema: %w", err)
	}
	return nil
}

func (s *PostgresStore) Close() {
	if s.pool != nil {
		s.pool.Close()
	}
}

func (s *PostgresStore) SetTrackedServer(ctx context.Context, discordGuildID, serverID string) error {
	err := s.q.UpsertTrackedServer(ctx, db.UpsertTrackedServerParams{
		GuildID:  discordGuildID,
		ServerID: serverID,
	})
	if err != nil {
		return fmt.Errorf("set tracked server: %w", err)
	}
	return nil
}

func (s *PostgresStore) GetTrackedServer(ctx context.Context, discordGuildID string) (*domain.TrackedServer, error) {
	row, err := s.q.GetTrackedServer(ctx, discordGuildID)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, domain.ErrNotTracked
	}
	if err != nil {
		return nil, fmt.Errorf("get tracked server: %w", err)
	}

	return &domain.TrackedServer{
		GuildID:  row.GuildID,
		ServerID: row.ServerID,
	}, nil
}

func (s *PostgresStore) DeleteTrackedServer(ctx context.Context, discordGuildID string) (bool, error) {
	tag, err := s.q.DeleteTrackedServer(ctx, discordGuildID)
	if err != nil {
		return false, fmt.Errorf("delete tracked server: %w", err)
	}
	return tag.RowsAffected() > 0, nil
}

func (s *PostgresStore) ListTrackedServers(ctx context.Context) ([]domain.TrackedServer, error) {
	rows, err := s.q.ListTrackedServers(ctx)
	if err != nil {
		return nil, fmt.Errorf("list tracked servers: %w", err)
	}

	result := make([]domain.TrackedServer, 0, len(rows))
	for _, row := range rows {
		result = append(result, domain.TrackedServer{
			GuildID:  row.GuildID,
			ServerID: row.ServerID,
		})
	}
	return result, nil
}
