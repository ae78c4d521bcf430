// Package config loads the launcher's configuration.
//
// Sources, lowest precedence first: `default` struct tags, a studio.yaml
// (or .json/.toml) file in the given directory, and environment variables.
// A .env file in the same directory is loaded into the environment first and
// wins over variables already set. Nested keys map to upper-case variables, e.g. studio.port is
// STUDIO_PORT and server.api_key is SERVER_API_KEY. Command-line flags of the
// start command override all of these.
//
// # Configuration Structure
//
//   - Studio: port, project root, entry point, log level, preview entry, node binary
//   - Server: optional status HTTP server
//   - Storage: optional S3/MinIO public asset sync
//   - Database: optional launch journal (sqlite or mysql)
//   - Log: logging level and format
//
// # Usage
//
//	cfg, err := config.LoadConfig(".")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	opts, err := cfg.Studio.Options()
package config
