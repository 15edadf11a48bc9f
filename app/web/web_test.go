package web

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pitwall-app/pitwall/app/preset"
	"github.com/pitwall-app/pitwall/app/setting"
	"github.com/pitwall-app/pitwall/app/setting/request"
	"github.com/pitwall-app/pitwall/app/stats"
	"github.com/pitwall-app/pitwall/app/telemetry"
	"github.com/pitwall-app/pitwall/app/web/mocks"
)

// serverMocks bundles benign mocks for all server dependencies, tests
// override the Func fields they care about
type serverMocks struct {
	engine    *mocks.EngineMock
	settings  *mocks.SettingsMock
	presets   *mocks.PresetsMock
	telemetry *mocks.TelemetryMock
	stats     *mocks.StatsMock
}

func newServerMocks() *serverMocks {
	return &serverMocks{
		engine: &mocks.EngineMock{
			StatusFunc: func() setting.Status { return setting.Status{Queued: []string{}} },
			WaitFunc:   func(context.Context) error { return nil },
		},
		settings: &mocks.SettingsMock{
			ActivePresetFunc:     func() string { return "default" },
			GetFunc:              func(setting.Category) (map[string]any, error) { return map[string]any{"units": "metric"}, nil },
			UpdateFunc:           func(setting.Category, map[string]any) error { return nil },
			SaveAllFunc:          func(time.Duration) {},
			LoadFunc:             func(string) error { return nil },
			PrimaryPresetFunc:    func(string) string { return "" },
			SetPrimaryPresetFunc: func(string, string) error { return nil },
		},
		presets: &mocks.PresetsMock{
			ListFunc:      func() []preset.Info { return []preset.Info{} },
			ExistsFunc:    func(string) bool { return true },
			CreateFunc:    func(string) error { return nil },
			DuplicateFunc: func(context.Context, string, string) error { return nil },
			RenameFunc:    func(context.Context, string, string) error { return nil },
			DeleteFunc:    func(context.Context, string) error { return nil },
		},
		telemetry: &mocks.TelemetryMock{
			GetFunc: func() telemetry.Snapshot {
				return telemetry.Snapshot{Sim: "LMU", Connected: true, Data: map[string]any{"weather": "dry"}}
			},
		},
		stats: &mocks.StatsMock{
			ListDriverStatsFunc: func(context.Context, string) ([]stats.DriverRecord, error) { return []stats.DriverRecord{}, nil },
			ListTracksFunc:      func(context.Context) ([]string, error) { return []string{}, nil },
			ListSaveEventsFunc:  func(context.Context, int) ([]request.SaveEvent, error) { return []request.SaveEvent{}, nil },
		},
	}
}

func (m *serverMocks) config() Config {
	return Config{
		Engine:    m.engine,
		Settings:  m.settings,
		Presets:   m.presets,
		Telemetry: m.telemetry,
		Stats:     m.stats,
		Version:   "test",
	}
}

func TestNew(t *testing.T) {
	t.Run("all dependencies provided", func(t *testing.T) {
		m := newServerMocks()
		server, err := New(m.config())
		require.NoError(t, err)
		assert.NotNil(t, server)
		assert.Equal(t, 24*time.Hour, server.loginTTL, "default login TTL")
		assert.NotNil(t, server.sessions)
		assert.NotNil(t, server.csrfProtection)
	})

	t.Run("custom login TTL", func(t *testing.T) {
		m := newServerMocks()
		cfg := m.config()
		cfg.LoginTTL = time.Hour
		server, err := New(cfg)
		require.NoError(t, err)
		assert.Equal(t, time.Hour, server.loginTTL)
	})

	t.Run("missing engine", func(t *testing.T) {
		m := newServerMocks()
		cfg := m.config()
		cfg.Engine = nil
		_, err := New(cfg)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "Engine is required")
	})

	t.Run("missing settings", func(t *testing.T) {
		m := newServerMocks()
		cfg := m.config()
		cfg.Settings = nil
		_, err := New(cfg)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "Settings is required")
	})

	t.Run("missing presets", func(t *testing.T) {
		m := newServerMocks()
		cfg := m.config()
		cfg.Presets = nil
		_, err := New(cfg)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "Presets is required")
	})

	t.Run("telemetry and stats are optional", func(t *testing.T) {
		m := newServerMocks()
		cfg := m.config()
		cfg.Telemetry = nil
		cfg.Stats = nil
		server, err := New(cfg)
		require.NoError(t, err)
		assert.NotNil(t, server)
	})
}

func TestServer_Ping(t *testing.T) {
	server, err := New(newServerMocks().config())
	require.NoError(t, err)

	handler := server.routes()
	req := httptest.NewRequest("GET", "/ping", http.NoBody)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "pong", rec.Body.String())
}

func TestServer_handlerBaseURL(t *testing.T) {
	m := newServerMocks()
	cfg := m.config()
	cfg.BaseURL = "/pitwall"
	server, err := New(cfg)
	require.NoError(t, err)

	handler := server.handler()

	t.Run("redirects base URL to trailing slash", func(t *testing.T) {
		req := httptest.NewRequest("GET", "/pitwall", http.NoBody)
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, req)
		assert.Equal(t, http.StatusMovedPermanently, rec.Code)
		assert.Equal(t, "/pitwall/", rec.Header().Get("Location"))
	})

	t.Run("serves routes under base URL", func(t *testing.T) {
		req := httptest.NewRequest("GET", "/pitwall/ping", http.NoBody)
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, req)
		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "pong", rec.Body.String())
	})

	t.Run("unprefixed path not served", func(t *testing.T) {
		req := httptest.NewRequest("GET", "/ping", http.NoBody)
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, req)
		assert.Equal(t, http.StatusNotFound, rec.Code)
	})
}

func TestServer_Run(t *testing.T) {
	server, err := New(newServerMocks().config())
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// start server in background
	done := make(chan error)
	go func() {
		done <- server.Run(ctx, "127.0.0.1:0")
	}()

	// give server time to start
	time.Sleep(100 * time.Millisecond)

	// cancel context to stop server
	cancel()

	// wait for server to stop
	select {
	case err := <-done:
		assert.NoError(t, err, "graceful shutdown returns no error")
	case <-time.After(2 * time.Second):
		t.Fatal("server did not stop in time")
	}
}
