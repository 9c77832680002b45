package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestNetAddress_String tests the String method of NetAddress
func TestNetAddress_String(t *testing.T) {
	tests := []struct {
		name     string
		addr     NetAddress
		expected string
	}{
		{"empty address", NetAddress{}, ""},
		{"localhost with port", NetAddress{Host: "localhost", Port: 8080}, "localhost:8080"},
		{"IP address with port", NetAddress{Host: "127.0.0.1", Port: 9090}, "127.0.0.1:9090"},
		{"only port no host", NetAddress{Host: "", Port: 8080}, ":8080"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.addr.String())
		})
	}
}

// TestNetAddress_Set tests the Set method of NetAddress
func TestNetAddress_Set(t *testing.T) {
	tests := []struct {
		name         string
		input        string
		expectError  bool
		errorMsg     string
		expectedAddr NetAddress
	}{
		{name: "valid localhost", input: "localhost:8080", expectedAddr: NetAddress{Host: "localhost", Port: 8080}},
		{name: "valid IPv4", input: "127.0.0.1:9090", expectedAddr: NetAddress{Host: "127.0.0.1", Port: 9090}},
		{name: "all interfaces", input: ":8080", expectedAddr: NetAddress{Port: 8080}},
		{name: "missing colon", input: "localhost8080", expectError: true, errorMsg: "need address in a form `host:port`"},
		{name: "multiple colons", input: "host:port:extra", expectError: true, errorMsg: "need address in a form `host:port`"},
		{name: "non-numeric port", input: "localhost:abc", expectError: true, errorMsg: "invalid syntax"},
		{name: "zero port", input: "localhost:0", expectError: true, errorMsg: "port number must be between 1 and 65535"},
		{name: "port too large", input: "localhost:70000", expectError: true, errorMsg: "port number must be between 1 and 65535"},
		{name: "invalid IP address", input: "invalid.host:8080", expectError: true, errorMsg: "incorrect IP-address provided"},
		{name: "empty string", input: "", expectError: true, errorMsg: "need address in a form `host:port`"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			addr := &NetAddress{}
			err := addr.Set(tt.input)

			if tt.expectError {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.errorMsg)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.expectedAddr, *addr)
		})
	}
}

// TestParseFlags tests the ParseFlags function
func TestParseFlags(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want *StructuredConfig
	}{
		{
			name: "no flags",
			args: nil,
			want: &StructuredConfig{},
		},
		{
			name: "all flags",
			args: []string{
				"-a", "localhost:8081",
				"-d", "postgres://flags/notes",
				"-c", "/etc/coffee-notes.json",
				"-request-timeout", "15s",
				"-shutdown-timeout", "3s",
				"-reconcile-interval", "2m",
				"-log-level", "info",
			},
			want: &StructuredConfig{
				App:     App{LogLevel: "info"},
				Storage: Storage{DB: DB{DSN: "postgres://flags/notes"}},
				Server: Server{
					HTTPAddress:     "localhost:8081",
					RequestTimeout:  15 * time.Second,
					ShutdownTimeout: 3 * time.Second,
				},
				Workers:      Workers{LikeReconcileInterval: 2 * time.Minute},
				JSONFilePath: "/etc/coffee-notes.json",
			},
		},
		{
			name: "config alias",
			args: []string{"-config", "/tmp/c.json"},
			want: &StructuredConfig{JSONFilePath: "/tmp/c.json"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg, err := ParseFlags(tt.args)
			require.NoError(t, err)
			assert.Equal(t, tt.want, cfg)
		})
	}
}

// TestParseFlags_InvalidAddress tests ParseFlags with invalid addresses
func TestParseFlags_InvalidAddress(t *testing.T) {
	for _, addr := range []string{"nope", "example.com:80", "localhost:0"} {
		t.Run(addr, func(t *testing.T) {
			_, err := ParseFlags([]string{"-a", addr})
			assert.Error(t, err)
		})
	}
}
