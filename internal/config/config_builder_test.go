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

// ── helpers ───────────────────────────────────────────────────────────────────

func writeTempJSONConfig(t *testing.T, v any) string {
	t.Helper()
	data, err := json.Marshal(v)
	require.NoError(t, err)
	f, err := os.CreateTemp(t.TempDir(), "config-*.json")
	require.NoError(t, err)
	_, err = f.Write(data)
	require.NoError(t, err)
	require.NoError(t, f.Close())
	return f.Name()
}

// newEmptyBuilder returns a builder without defaults so tests only see the
// layers they add.
func newEmptyBuilder() *configBuilder {
	b := newConfigBuilder()
	b.defaults = nil
	return b
}

// ── newConfigBuilder ──────────────────────────────────────────────────────────

// TestNewConfigBuilder_InitialState verifies that a freshly created builder
// has no error, no layers and the built-in defaults.
func TestNewConfigBuilder_InitialState(t *testing.T) {
	b := newConfigBuilder()
	require.NotNil(t, b)
	assert.NoError(t, b.err)
	assert.Empty(t, b.configs)
	assert.Nil(t, b.json)
	assert.Equal(t, defaults(), b.defaults)
}

// ── build ─────────────────────────────────────────────────────────────────────

// TestBuild_EmptyBuilder verifies that building with no layers and no
// defaults returns a zero-value StructuredConfig.
func TestBuild_EmptyBuilder(t *testing.T) {
	cfg, err := newEmptyBuilder().build()
	require.NoError(t, err)
	assert.Equal(t, &StructuredConfig{}, cfg)
}

// TestBuild_Defaults verifies that defaults fill every unset field.
func TestBuild_Defaults(t *testing.T) {
	cfg, err := newConfigBuilder().build()
	require.NoError(t, err)
	assert.Equal(t, "localhost:8080", cfg.Server.HTTPAddress)
	assert.Equal(t, 30*time.Second, cfg.Server.RequestTimeout)
	assert.Equal(t, "http://localhost:8080", cfg.Adapter.HTTPAddress)
	assert.Equal(t, 5*time.Minute, cfg.Workers.LikeReconcileInterval)
	assert.Equal(t, "coffee-notes.db", cfg.Storage.Local.Path)
}

// TestBuild_PropagatesBuilderError verifies that a pre-set b.err is wrapped
// and returned, with nil config.
func TestBuild_PropagatesBuilderError(t *testing.T) {
	b := newConfigBuilder()
	b.err = assert.AnError

	cfg, err := b.build()
	assert.Nil(t, cfg)
	require.Error(t, err)
	assert.ErrorIs(t, err, assert.AnError)
}

// TestBuild_LaterLayersWin verifies that non-zero fields of later layers
// override earlier ones while zero fields are kept.
func TestBuild_LaterLayersWin(t *testing.T) {
	b := newEmptyBuilder()
	b.configs = append(b.configs,
		&StructuredConfig{App: App{Version: "1.0.0", LogLevel: "info"}},
		&StructuredConfig{App: App{Version: "2.0.0"}},
	)

	cfg, err := b.build()
	require.NoError(t, err)
	assert.Equal(t, "2.0.0", cfg.App.Version)
	assert.Equal(t, "info", cfg.App.LogLevel)
}

// TestBuild_JSONHasLowestPriority verifies that the JSON layer loses against
// environment and flags but beats the defaults.
func TestBuild_JSONHasLowestPriority(t *testing.T) {
	b := newConfigBuilder()
	b.json = &StructuredConfig{
		App:    App{Version: "json"},
		Server: Server{HTTPAddress: "0.0.0.0:9000"},
	}
	b.configs = append(b.configs, &StructuredConfig{App: App{Version: "env"}})

	cfg, err := b.build()
	require.NoError(t, err)
	assert.Equal(t, "env", cfg.App.Version)
	assert.Equal(t, "0.0.0.0:9000", cfg.Server.HTTPAddress)
}

// TestBuild_Validates verifies that an invalid merged config is rejected.
func TestBuild_Validates(t *testing.T) {
	b := newEmptyBuilder()
	b.configs = append(b.configs, &StructuredConfig{Workers: Workers{LikeReconcileInterval: -time.Second}})

	_, err := b.build()
	assert.ErrorIs(t, err, ErrInvalidWorkerConfigs)
}

// ── withEnv / withDotEnv ──────────────────────────────────────────────────────

// TestWithEnv_ReturnsBuilder verifies the fluent interface.
func TestWithEnv_ReturnsBuilder(t *testing.T) {
	b := newConfigBuilder()
	assert.Same(t, b, b.withEnv())
}

// TestWithEnv_ReadsEnvVars verifies that environment variables are picked up.
func TestWithEnv_ReadsEnvVars(t *testing.T) {
	t.Setenv("APP_VERSION", "env-version")
	t.Setenv("WORKERS_LIKE_RECONCILE_INTERVAL", "1m")

	b := newConfigBuilder()
	b.withEnv()

	require.Len(t, b.configs, 1)
	assert.Equal(t, "env-version", b.configs[0].App.Version)
	assert.Equal(t, time.Minute, b.configs[0].Workers.LikeReconcileInterval)
}

// TestWithDotEnv_LoadsFile verifies that variables from the .env file named
// by ENV_FILE reach the env layer.
func TestWithDotEnv_LoadsFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "test.env")
	require.NoError(t, os.WriteFile(path, []byte("STORAGE_DB_DATABASE_URI=postgres://dotenv/notes\n"), 0o600))
	t.Setenv("ENV_FILE", path)
	t.Setenv("STORAGE_DB_DATABASE_URI", "")
	require.NoError(t, os.Unsetenv("STORAGE_DB_DATABASE_URI"))

	b := newConfigBuilder().withDotEnv().withEnv()

	require.NoError(t, b.err)
	require.Len(t, b.configs, 1)
	assert.Equal(t, "postgres://dotenv/notes", b.configs[0].Storage.DB.DSN)
}

// TestWithDotEnv_MissingFileIsIgnored verifies that an absent .env file is
// not an error.
func TestWithDotEnv_MissingFileIsIgnored(t *testing.T) {
	t.Setenv("ENV_FILE", filepath.Join(t.TempDir(), "absent.env"))

	b := newConfigBuilder().withDotEnv()

	assert.NoError(t, b.err)
}

// ── withFlags / withConfig ────────────────────────────────────────────────────

// TestWithFlags_AppendsParsedFlags verifies that flags become a layer.
func TestWithFlags_AppendsParsedFlags(t *testing.T) {
	b := newConfigBuilder().withFlags([]string{"-a", "127.0.0.1:9999", "-d", "postgres://flags"})

	require.NoError(t, b.err)
	require.Len(t, b.configs, 1)
	assert.Equal(t, "127.0.0.1:9999", b.configs[0].Server.HTTPAddress)
	assert.Equal(t, "postgres://flags", b.configs[0].Storage.DB.DSN)
}

// TestWithFlags_SetsErrorOnBadFlag verifies that an unknown flag is reported.
func TestWithFlags_SetsErrorOnBadFlag(t *testing.T) {
	b := newConfigBuilder().withFlags([]string{"-unknown"})

	assert.Error(t, b.err)
	assert.Empty(t, b.configs)
}

// TestWithConfig_IgnoresNil verifies that a nil layer is skipped.
func TestWithConfig_IgnoresNil(t *testing.T) {
	b := newConfigBuilder().withConfig(nil)
	assert.Empty(t, b.configs)
}

// ── withJSON ──────────────────────────────────────────────────────────────────

// TestWithJSON_NoOp_WhenNoPathSet verifies that withJSON does nothing when
// no config has a JSONFilePath.
func TestWithJSON_NoOp_WhenNoPathSet(t *testing.T) {
	b := newConfigBuilder()
	b.configs = append(b.configs, &StructuredConfig{})
	b.withJSON()

	assert.Nil(t, b.json)
	assert.NoError(t, b.err)
}

// TestWithJSON_LoadsFile verifies that a valid JSON file is parsed into the
// JSON layer.
func TestWithJSON_LoadsFile(t *testing.T) {
	payload := StructuredJSONConfig{}
	payload.App.Version = "json-version"
	payload.Workers.LikeReconcileInterval = Duration(time.Minute)
	path := writeTempJSONConfig(t, payload)

	b := newConfigBuilder()
	b.configs = append(b.configs, &StructuredConfig{JSONFilePath: path})
	b.withJSON()

	require.NoError(t, b.err)
	require.NotNil(t, b.json)
	assert.Equal(t, "json-version", b.json.App.Version)
	assert.Equal(t, time.Minute, b.json.Workers.LikeReconcileInterval)
}

// TestWithJSON_SetsError_WhenFileNotFound verifies that a missing file path
// sets b.err.
func TestWithJSON_SetsError_WhenFileNotFound(t *testing.T) {
	b := newConfigBuilder()
	b.configs = append(b.configs, &StructuredConfig{JSONFilePath: "/nonexistent/config.json"})
	b.withJSON()

	assert.Error(t, b.err)
}

// TestWithJSON_UsesLastPath verifies that when multiple layers name a JSON
// file, the last non-empty one wins.
func TestWithJSON_UsesLastPath(t *testing.T) {
	first := StructuredJSONConfig{}
	first.App.Version = "first"
	last := StructuredJSONConfig{}
	last.App.Version = "last-wins"

	b := newConfigBuilder()
	b.configs = append(b.configs,
		&StructuredConfig{JSONFilePath: writeTempJSONConfig(t, first)},
		&StructuredConfig{JSONFilePath: ""},
		&StructuredConfig{JSONFilePath: writeTempJSONConfig(t, last)},
	)
	b.withJSON()

	require.NoError(t, b.err)
	assert.Equal(t, "last-wins", b.json.App.Version)
}

// ── GetClientConfig ───────────────────────────────────────────────────────────

// TestGetClientConfig_Overrides verifies that command-line overrides beat
// environment variables.
func TestGetClientConfig_Overrides(t *testing.T) {
	t.Setenv("ENV_FILE", filepath.Join(t.TempDir(), "absent.env"))
	t.Setenv("ADAPTER_ADDRESS", "http://env:8080")

	cfg, err := GetClientConfig(ClientOverrides{
		ServerAddress: "https://notes.example.com",
		LocalPath:     filepath.Join(t.TempDir(), "local.db"),
	})

	require.NoError(t, err)
	assert.Equal(t, "https://notes.example.com", cfg.Adapter.HTTPAddress)
	assert.Equal(t, 10*time.Second, cfg.Adapter.RequestTimeout)
}

// TestGetClientConfig_InvalidAddress verifies the adapter URL check.
func TestGetClientConfig_InvalidAddress(t *testing.T) {
	t.Setenv("ENV_FILE", filepath.Join(t.TempDir(), "absent.env"))

	_, err := GetClientConfig(ClientOverrides{ServerAddress: "localhost:8080"})

	assert.ErrorIs(t, err, ErrInvalidAdapterConfigs)
}

// TestClientConfig_Validate covers the client validation rules.
func TestClientConfig_Validate(t *testing.T) {
	valid := ClientConfig{
		Adapter: ClientAdapter{HTTPAddress: "http://localhost:8080", RequestTimeout: time.Second},
		Storage: ClientStorage{LocalPath: "notes.db"},
	}
	require.NoError(t, valid.validate())

	inMemory := valid
	inMemory.Storage.LocalPath = "file::memory:?cache=shared"
	assert.ErrorIs(t, inMemory.validate(), ErrInvalidStorageConfigs)

	noTimeout := valid
	noTimeout.Adapter.RequestTimeout = 0
	assert.ErrorIs(t, noTimeout.validate(), ErrInvalidAdapterConfigs)

	noPersistence := valid
	noPersistence.Storage.LocalPath = ""
	assert.NoError(t, noPersistence.validate())
}

// TestStructuredConfig_ValidateServer covers the server-only rules.
func TestStructuredConfig_ValidateServer(t *testing.T) {
	cfg := defaults()
	assert.ErrorIs(t, cfg.validateServer(), ErrInvalidStorageConfigs)

	cfg.Storage.DB.DSN = "postgres://localhost/notes"
	assert.NoError(t, cfg.validateServer())

	cfg.Server.HTTPAddress = ""
	assert.ErrorIs(t, cfg.validateServer(), ErrInvalidServerConfigs)
}
