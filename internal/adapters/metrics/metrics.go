package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	TrackedServers = promauto.NewGauge(prometheus.GaugeOpts{
		Name: "wipe_tracker_tracked_servers",
		Help: "Number of guilds with a tracked server at the last status refresh",
	})

	PresenceUpdates = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "wipe_tracker_presence_updates_total",
		Help: "Total number of presence updates, by resulting state",
	}, []string{"state", "status"})

	CommandInvocations = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "wipe_tracker_commands_total",
		Help: "Total number of handled commands",
	}, []string{"command", "outcome"})

	BattleMetricsRequestDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "battlemetrics_request_duration_seconds",
		Help:    "Duration of BattleMetrics API requests",
		Buckets: prometheus.DefBuckets,
	}, []string{"endpoint", "status"})

	BattleMetricsRequests = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "battlemetrics_requests_total",
		Help: "Total number of BattleMetrics API requests",
	}, []string{"endpoint", "status"})

	DiscordMessagesSent = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "discord_messages_sent_total",
		Help: "Total number of Discord replies sent",
	}, []string{"transport", "status"})
)
