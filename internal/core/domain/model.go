package domain

import "time"

type TrackedServer struct {
	GuildID  string
	ServerID string
}

type ServerInfo struct {
	ID         string
	Name       string
	Status     string
	Players    int
	MaxPlayers int
	LastWipe   *time.Time
}

type Countdown struct {
	Days    int
	Hours   int
	Minutes int
	Overdue bool
}

type WipeReport struct {
	Server    ServerInfo
	NextWipe  time.Time
	Remaining Countdown
}
