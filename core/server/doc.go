// Package server holds the configuration of the launcher's status HTTP server.
//
// The server itself is assembled in the start command; this package only
// defines where it listens and whether requests need an API key. It is
// disabled unless SERVER_ENABLED=true.
package server
