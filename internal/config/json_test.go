package config

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseJSON_AllFields(t *testing.T) {
	raw := `{
		"app": {"version": "2.0.0", "log_level": "error", "log_file": "/tmp/c.log"},
		"storage": {"db": {"dsn": "postgres://json/notes"}, "local": {"path": "/tmp/local.db"}},
		"server": {"http_address": "0.0.0.0:8080", "request_timeout": "20s", "shutdown_timeout": 5000000000},
		"adapter": {"http_address": "http://json:8080", "request_timeout": "2s"},
		"workers": {"like_reconcile_interval": "1h"}
	}`
	path := filepath.Join(t.TempDir(), "config.json")
	require.NoError(t, os.WriteFile(path, []byte(raw), 0o600))

	cfg, err := parseJSON(path)

	require.NoError(t, err)
	assert.Equal(t, App{Version: "2.0.0", LogLevel: "error", LogFile: "/tmp/c.log"}, cfg.App)
	assert.Equal(t, "postgres://json/notes", cfg.Storage.DB.DSN)
	assert.Equal(t, "/tmp/local.db", cfg.Storage.Local.Path)
	assert.Equal(t, Server{HTTPAddress: "0.0.0.0:8080", RequestTimeout: 20 * time.Second, ShutdownTimeout: 5 * time.Second}, cfg.Server)
	assert.Equal(t, Adapter{HTTPAddress: "http://json:8080", RequestTimeout: 2 * time.Second}, cfg.Adapter)
	assert.Equal(t, time.Hour, cfg.Workers.LikeReconcileInterval)
	assert.Empty(t, cfg.JSONFilePath)
}

func TestParseJSON_Errors(t *testing.T) {
	_, err := parseJSON(filepath.Join(t.TempDir(), "missing.json"))
	assert.Error(t, err)

	path := filepath.Join(t.TempDir(), "bad.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"server": {"request_timeout": "soon"}}`), 0o600))
	_, err = parseJSON(path)
	assert.Error(t, err)
}

func TestDuration_JSON(t *testing.T) {
	var d Duration
	require.NoError(t, json.Unmarshal([]byte(`"1m30s"`), &d))
	assert.Equal(t, Duration(90*time.Second), d)

	require.NoError(t, json.Unmarshal([]byte(`1000`), &d))
	assert.Equal(t, Duration(time.Microsecond), d)

	out, err := json.Marshal(Duration(90 * time.Second))
	require.NoError(t, err)
	assert.Equal(t, `"1m30s"`, string(out))
}
