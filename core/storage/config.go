package storage

// Config holds configuration for the bucket that public assets are mirrored from.
type Config struct {
	// Enabled turns on the public asset sync before the studio starts.
	Enabled bool `mapstructure:"enabled" default:"false"`
	// Endpoint is the URL of the storage service.
	Endpoint string `mapstructure:"endpoint" default:"localhost:9000"`
	// AccessKey is the access key ID for authentication.
	AccessKey string `mapstructure:"access_key" default:"minioadmin"`
	// SecretKey is the secret access key for authentication.
	SecretKey string `mapstructure:"secret_key" default:"minioadmin"`
	// UseSSL indicates whether to use SSL/TLS for connections.
	UseSSL bool `mapstructure:"use_ssl" default:"false"`
	// Bucket holds the shared studio assets.
	Bucket string `mapstructure:"bucket" default:"studio-assets"`
	// Prefix limits the sync to keys under this prefix.
	Prefix string `mapstructure:"prefix" default:"public/"`
	// PublicDir is the project-relative directory assets are written to.
	PublicDir string `mapstructure:"public_dir" default:"public"`
	// Region is the location of the bucket (e.g., us-east-1).
	Region string `mapstructure:"region" default:""`
	// TimeoutSeconds is the connection timeout in seconds.
	TimeoutSeconds int `mapstructure:"timeout_seconds" default:"30"`
}
