package db

import (
	"github.com/jackc/pgx/v5/pgtype"
)

type TrackedServer struct {
	GuildID   string
	ServerID  string
	UpdatedAt pgtype.Timestamptz
}
