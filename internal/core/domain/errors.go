package domain

import "errors"

var (
	ErrConfigurationMissing = errors.New("battlemetrics token is not configured")
	ErrUpstreamUnavailable  = errors.New("battlemetrics is unavailable")
	ErrServerNotFound       = errors.New("server not found")
	ErrNotTracked           = errors.New("no server tracked for guild")
	ErrWipeUnknown          = errors.New("next wipe cannot be determined")
)
