package main

import (
	"context"
	"os"
	"path/filepath"
	"strconv"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/natefinch/lumberjack.v2"

	"github.com/pitwall-app/pitwall/app/jsonfile"
	"github.com/pitwall-app/pitwall/app/setting"
)

func Test_makeHostName(t *testing.T) {
	opts.Notify.HostName = "test"
	assert.Equal(t, "test", makeHostName())

	opts.Notify.HostName = ""
	exp, err := os.Hostname()
	require.NoError(t, err)
	assert.Equal(t, exp, makeHostName())
}

func Test_makeNotifier(t *testing.T) {
	opts.Notify.EnabledFailure = false
	opts.Notify.FromEmail = ""
	opts.Notify.ToEmails = []string{"test@example.com"}
	assert.Nil(t, makeNotifier())

	opts.Notify.EnabledFailure = true
	notif := makeNotifier()
	require.NotNil(t, notif)
	assert.Equal(t, "pitwall@"+makeHostName(), opts.Notify.FromEmail)

	opts.Notify.EnabledFailure = false
}

func Test_setupLogsWithLogsDisabled(t *testing.T) {
	opts.Log.Enabled = false
	logWriter := setupLogs()
	assert.Equal(t, os.Stdout, logWriter)
}

func Test_setupLogsToFile(t *testing.T) {
	tmp := t.TempDir()

	opts.Log.Enabled = true
	opts.Log.Filename = filepath.Join(tmp, "pitwall.log")
	opts.Log.MaxSize = 100
	opts.Log.MaxBackups = 7
	logWriter := setupLogs()
	opts.Log.Enabled = false

	require.IsType(t, &lumberjack.Logger{}, logWriter)
	lj := logWriter.(*lumberjack.Logger)
	assert.Equal(t, filepath.Join(tmp, "pitwall.log"), lj.Filename)
	assert.Equal(t, 100, lj.MaxSize)
	assert.Equal(t, 7, lj.MaxBackups)
	assert.Equal(t, 0, lj.MaxAge)
	assert.False(t, lj.Compress)

	setupLogs() // back to stdout, the tmp dir goes away with the test
}

func Test_validateBaseURL(t *testing.T) {
	tbl := []struct {
		inp string
		out string
	}{
		{"", ""},
		{"/", ""},
		{"/pitwall", "/pitwall"},
		{"/pitwall/", "/pitwall"},
		{"app/pitwall", "/app/pitwall"},
		{"/app/pitwall/", "/app/pitwall"},
	}

	for i, tt := range tbl {
		t.Run(strconv.Itoa(i), func(t *testing.T) {
			assert.Equal(t, tt.out, validateBaseURL(tt.inp))
		})
	}
}

func Test_activatePrimary(t *testing.T) {
	tmp := t.TempDir()
	engine := setting.NewEngine(setting.Params{FileOps: jsonfile.Ops{}})
	manager := setting.NewManager(engine, tmp, filepath.Join(tmp, "presets"), 50*time.Millisecond)
	require.NoError(t, manager.Load("race"))
	require.NoError(t, manager.SetPrimaryPreset("LMU", "endurance"))

	activatePrimary(manager, "RF2") // nothing pinned for this sim
	assert.Equal(t, "race", manager.ActivePreset())

	activatePrimary(manager, "LMU")
	assert.Equal(t, "endurance", manager.ActivePreset())

	activatePrimary(manager, "LMU") // already active, no reload
	assert.Equal(t, "endurance", manager.ActivePreset())

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	require.NoError(t, engine.Wait(ctx))
}

func Test_run(t *testing.T) {
	tmp := t.TempDir()
	opts.ConfigDir = tmp
	opts.PresetDir = filepath.Join(tmp, "presets")
	opts.DBFile = filepath.Join(tmp, "pitwall.db")
	opts.Preset = "race"
	opts.Save.Debounce = 50 * time.Millisecond
	opts.Save.MaxAttempts = 3
	opts.Save.RetryDelay = 10 * time.Millisecond
	opts.Notify.EnabledFailure = false
	opts.Telemetry.Enabled = false
	opts.Web.Enabled = false
	opts.Maintenance.Enabled = false

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- run(ctx) }()

	time.Sleep(300 * time.Millisecond) // give the load and the config flush time to settle
	cancel()

	select {
	case err := <-done:
		require.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("run did not stop on context cancellation")
	}

	assert.FileExists(t, filepath.Join(tmp, "config.json"), "last preset should be recorded")
	assert.FileExists(t, filepath.Join(tmp, "presets", "classes.json"))
	assert.FileExists(t, filepath.Join(tmp, "presets", "heatmap.json"))
	assert.FileExists(t, filepath.Join(tmp, "pitwall.db"))
}
