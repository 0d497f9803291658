package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

// BattleMetrics holds the settings needed to query the BattleMetrics API.
// The token is optional at startup; commands report its absence.
type BattleMetrics struct {
	APIToken string        `envconfig:"BATTLEMETRICS_TOKEN"`
	BaseURL  string        `envconfig:"BATTLEMETRICS_BASE_URL" default:"https://api.battlemetrics.com"`
	Timeout  time.Duration `envconfig:"BATTLEMETRICS_TIMEOUT" default:"10s"`
}

type Config struct {
	Token              string        `envconfig:"DISCORD_TOKEN"`
	DiscordGuildID     string        `envconfig:"DISCORD_GUILD_ID"`
	CommandPrefix      string        `envconfig:"COMMAND_PREFIX" default:"!"`
	StatusInterval     time.Duration `envconfig:"STATUS_INTERVAL" default:"60m"`
	TrackedServersFile string        `envconfig:"TRACKED_SERVERS_FILE" default:"tracked_servers.json"`
	DatabaseURL        string        `envconfig:"DATABASE_URL"`
	MetricsAddr        string        `envconfig:"METRICS_ADDR" default:":9090"`
	LogLevel           string        `envconfig:"LOG_LEVEL" default:"info"`
	LogFormat          string        `envconfig:"LOG_FORMAT" default:"json"`
	BattleMetrics
}

func Load() (*Config, error) {
	_ = godotenv.Load()

	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, fmt.Errorf("process environment: %w", err)
	}

	if token := readSecret("discord_token"); token != "" {
		cfg.Token = token
	}
	if cfg.Token == "" {
		return nil, fmt.Errorf("DISCORD_TOKEN is not set (via secret or env var)")
	}
	if dbURL := readSecret("database_url"); dbURL != "" {
		cfg.DatabaseURL = dbURL
	}
	applyBattleMetricsSecret(&cfg.BattleMetrics)

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// LoadBattleMetrics loads only the API settings, for tools that never
// connect to Discord.
func LoadBattleMetrics() (*BattleMetrics, error) {
	_ = godotenv.Load()

	var bm BattleMetrics
	if err := envconfig.Process("", &bm); err != nil {
		return nil, fmt.Errorf("process environment: %w", err)
	}
	applyBattleMetricsSecret(&bm)

	if err := bm.Validate(); err != nil {
		return nil, err
	}

	return &bm, nil
}

func applyBattleMetricsSecret(bm *BattleMetrics) {
	if token := readSecret("battlemetrics_token"); token != "" {
		bm.APIToken = token
	}
}

var secretsDir = "/run/secrets/"

func readSecret(name string) string {
	data, err := os.ReadFile(secretsDir + name)
	if err != nil {
		return ""
	}
	return strings.TrimSpace(string(data))
}
