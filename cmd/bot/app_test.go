package main

import (
	"context"
	"net/http"
	"path/filepath"
	"sync/atomic"
	"testing"
	"time"

	"rust-wipe-tracker/internal/adapters/storage/jsonfile"
	"rust-wipe-tracker/internal/config"
	"rust-wipe-tracker/internal/core/ports"
)

type mockStore struct {
	ports.Repository
	closed bool
}

func (m *mockStore) Close() {
	m.closed = true
}

func testConfig(t *testing.T) *config.Config {
	t.Helper()
	return &config.Config{
		Token:              "test-token",
		CommandPrefix:      "!",
		StatusInterval:     time.Hour,
		TrackedServersFile: filepath.Join(t.TempDir(), "tracked_servers.json"),
	}
}

func TestNewApp_FileStore(t *testing.T) {
	cfg := testConfig(t)

	app, err := NewApp(context.Background(), cfg)
	if err != nil {
		t.Fatalf("NewApp failed: %v", err)
	}
	defer app.store.Close()

	if _, ok := app.store.(*jsonfile.FileStore); !ok {
		t.Errorf("Expected file store, got %T", app.store)
	}
	if app.discord == nil {
		t.Error("Discord session not created")
	}
	if app.statusService == nil {
		t.Error("Status service not created")
	}
	if app.router == nil {
		t.Error("Router not created")
	}
}

func TestNewApp_MalformedStoreFile(t *testing.T) {
	cfg := testConfig(t)
	if err := writeFile(cfg.TrackedServersFile, "{not json"); err != nil {
		t.Fatal(err)
	}

	if _, err := NewApp(context.Background(), cfg); err == nil {
		t.Fatal("Expected error for malformed store file")
	}
}

func TestApp_Shutdown(t *testing.T) {
	cfg := &config.Config{}
	store := &mockStore{}

	statusCtx, statusCancel := context.WithCancel(context.Background())

	metricsServer := &http.Server{Addr: "127.0.0.1:0"}
	go func() {
		_ = metricsServer.ListenAndServe()
	}()
	time.Sleep(10 * time.Millisecond)

	app := &App{
		config:        cfg,
		store:         store,
		metricsServer: metricsServer,
		statusCtx:     statusCtx,
		statusCancel:  statusCancel,
	}

	ctx, cancel := context.WithTimeout(context.Background(), 1*time.Second)
	defer cancel()

	if err := app.Shutdown(ctx); err != nil {
		t.Fatalf("Shutdown failed: %v", err)
	}

	if !store.closed {
		t.Error("Store was not closed")
	}

	select {
	case <-statusCtx.Done():
	default:
		t.Error("Status context was not cancelled")
	}
}

func TestApp_Shutdown_WaitsForStatusService(t *testing.T) {
	statusCtx, statusCancel := context.WithCancel(context.Background())
	statusDone := make(chan struct{})
	var finished atomic.Bool

	store := &mockStore{}
	go func() {
		defer close(statusDone)
		<-statusCtx.Done()
		time.Sleep(50 * time.Millisecond)
		finished.Store(true)
	}()

	app := &App{
		config:       &config.Config{},
		store:        store,
		statusCtx:    statusCtx,
		statusCancel: statusCancel,
		statusDone:   statusDone,
	}

	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()

	if err := app.Shutdown(ctx); err != nil {
		t.Fatalf("Shutdown failed: %v", err)
	}
	if !finished.Load() {
		t.Error("Shutdown returned before the status service stopped")
	}
	if !store.closed {
		t.Error("Store was not closed")
	}
}

func TestApp_Shutdown_StatusServiceTimeout(t *testing.T) {
	_, statusCancel := context.WithCancel(context.Background())
	store := &mockStore{}

	app := &App{
		config:       &config.Config{},
		store:        store,
		statusCancel: statusCancel,
		statusDone:   make(chan struct{}),
	}

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()

	if err := app.Shutdown(ctx); err == nil {
		t.Fatal("Expected timeout error")
	}
	if !store.closed {
		t.Error("Store should still be closed after a timeout")
	}
}

func TestApp_Shutdown_NilComponents(t *testing.T) {
	app := &App{
		config: &config.Config{},
	}

	if err := app.Shutdown(context.Background()); err != nil {
		t.Errorf("Shutdown failed with nil components: %v", err)
	}
}

func TestApp_Shutdown_UnopenedSession(t *testing.T) {
	app, err := NewApp(context.Background(), testConfig(t))
	if err != nil {
		t.Fatalf("NewApp failed: %v", err)
	}

	if err := app.Shutdown(context.Background()); err != nil {
		t.Errorf("Shutdown failed: %v", err)
	}
}

func TestStartMetricsServer(t *testing.T) {
	app := &App{
		config: &config.Config{MetricsAddr: "127.0.0.1:0"},
	}

	app.startMetricsServer()

	if app.metricsServer == nil {
		t.Fatal("Metrics server not initialized")
	}

	_ = app.metricsServer.Close()
}

func TestStartMetricsServer_Disabled(t *testing.T) {
	app := &App{
		config: &config.Config{},
	}

	app.startMetricsServer()

	if app.metricsServer != nil {
		t.Error("Metrics server should not start without an address")
	}
}
