package status

import (
	"context"
	"errors"
	"sync"

	"rust-wipe-tracker/internal/core/domain"
)

type mockStorage struct {
	listFunc func(ctx context.Context) ([]domain.TrackedServer, error)

	mu        sync.Mutex
	listCalls int
}

func (m *mockStorage) SetTrackedServer(ctx context.Context, guildID, serverID string) error {
	return nil
}

func (m *mockStorage) GetTrackedServer(ctx context.Context, guildID string) (*domain.TrackedServer, error) {
	return nil, domain.ErrNotTracked
}

func (m *mockStorage) DeleteTrackedServer(ctx context.Context, guildID string) (bool, error) {
	return false, nil
}

func (m *mockStorage) ListTrackedServers(ctx context.Context) ([]domain.TrackedServer, error) {
	m.mu.Lock()
	m.listCalls++
	m.mu.Unlock()
	if m.listFunc != nil {
		return m.listFunc(ctx)
	}
	return nil, nil
}

func (m *mockStorage) Close() {}

func (m *mockStorage) calls() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.listCalls
}

type mockFetcher struct {
	servers map[string]*domain.ServerInfo
	fetched []string
}

func (m *mockFetcher) FetchServer(ctx context.Context, serverID string) (*domain.ServerInfo, error) {
	m.fetched = append(m.fetched, serverID)
	info, ok := m.servers[serverID]
	if !ok {
		return nil, domain.ErrUpstreamUnavailable
	}
	return info, nil
}

type presenceCall struct {
	name      string
	countdown domain.Countdown
	cleared   bool
}

type mockPresence struct {
	calls    []presenceCall
	showErr  error
	clearErr error
}

func (m *mockPresence) ShowWipeCountdown(serverName string, countdown domain.Countdown) error {
	m.calls = append(m.calls, presenceCall{name: serverName, countdown: countdown})
	return m.showErr
}

func (m *mockPresence) ClearPresence() error {
	m.calls = append(m.calls, presenceCall{cleared: true})
	return m.clearErr
}

var errPresence = errors.New("gateway closed")
