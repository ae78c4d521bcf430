package server

import "net"

// Config holds configuration for the optional status HTTP server.
type Config struct {
	// Enabled turns the status server on.
	Enabled bool `mapstructure:"enabled" default:"false"`
	// Host is the interface the status server binds to.
	Host string `mapstructure:"host" default:"127.0.0.1"`
	// Port is the port where the status server will listen.
	Port string `mapstructure:"port" default:"8090"`
	// ApiKey is the secret key required to access the status API. Empty disables auth.
	ApiKey string `mapstructure:"api_key" default:""`
}

// Address returns the host:port pair the status server listens on.
func (c Config) Address() string {
	return net.JoinHostPort(c.Host, c.Port)
}

// RequiresAuth reports whether requests must carry the API key.
func (c Config) RequiresAuth() bool {
	return c.ApiKey != ""
}
