package db

import (
	"context"
	_ "embed"
)

//go:embed schema.sql
var Schema string

// EnsureSchema creates the tables the queries rely on when they are missing.
func EnsureSchema(ctx context.Context, conn DBTX) error {
	_, err := conn.Exec(ctx, Schema)
	return err
}
