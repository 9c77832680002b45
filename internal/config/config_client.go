package config

import (
	"fmt"
	"time"
)

// ClientApp holds client-side application settings derived from the shared
// structured config.
type ClientApp struct {
	// Version is shown by the version command and the board footer.
	Version string
	// LogLevel is the minimum level written to the client log.
	LogLevel string
	// LogFile is the client log file; empty selects the default location.
	LogFile string
}

// ClientAdapter holds network settings used by the client transport layer.
type ClientAdapter struct {
	// HTTPAddress is the base URL of the note store.
	HTTPAddress string
	// RequestTimeout is the default timeout for outbound client requests.
	RequestTimeout time.Duration
}

// ClientStorage groups client storage backend settings.
type ClientStorage struct {
	// LocalPath is the SQLite file holding the session identifier.
	// Empty disables persistence: the client then runs without a session.
	LocalPath string
}

// ClientConfig is the top-level client configuration assembled from
// [StructuredConfig].
type ClientConfig struct {
	// App contains application-level client settings.
	App ClientApp
	// Adapter contains the note store address and timeout.
	Adapter ClientAdapter
	// Storage contains client storage settings.
	Storage ClientStorage
}

// ClientOverrides are values taken from the client command line. Empty
// fields leave the other sources in charge.
type ClientOverrides struct {
	ServerAddress  string
	RequestTimeout time.Duration
	LocalPath      string
	ConfigPath     string
	LogFile        string
	LogLevel       string
}

func (o ClientOverrides) toStructured() *StructuredConfig {
	return &StructuredConfig{
		App: App{
			LogFile:  o.LogFile,
			LogLevel: o.LogLevel,
		},
		Storage: Storage{
			Local: Local{Path: o.LocalPath},
		},
		Adapter: Adapter{
			HTTPAddress:    o.ServerAddress,
			RequestTimeout: o.RequestTimeout,
		},
		JSONFilePath: o.ConfigPath,
	}
}

// GetClientConfig builds and validates a client-specific config view from
// defaults, the JSON file, the .env file, environment variables and the
// command-line overrides, in increasing priority.
func GetClientConfig(overrides ClientOverrides) (*ClientConfig, error) {
	cfg, err := newConfigBuilder().
		withDotEnv().
		withEnv().
		withConfig(overrides.toStructured()).
		withJSON().
		build()
	if err != nil {
		return nil, fmt.Errorf("error get structured config: %w", err)
	}

	clientCfg := newClientConfig(cfg)

	return clientCfg, clientCfg.validate()
}

func newClientConfig(cfg *StructuredConfig) *ClientConfig {
	return &ClientConfig{
		App: ClientApp{
			Version:  cfg.App.Version,
			LogLevel: cfg.App.LogLevel,
			LogFile:  cfg.App.LogFile,
		},
		Adapter: ClientAdapter{
			HTTPAddress:    cfg.Adapter.HTTPAddress,
			RequestTimeout: cfg.Adapter.RequestTimeout,
		},
		Storage: ClientStorage{
			LocalPath: cfg.Storage.Local.Path,
		},
	}
}
