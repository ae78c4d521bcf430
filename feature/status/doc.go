// Package status exposes the state of the launched studio over HTTP.
//
// Tracker observes studio.Service starts (it implements studio.Observer) and is
// told by the start command when the studio exits.
//
// # HTTP Endpoints
//
//   - GET /status : launch id, state (idle, starting, running, failed, stopped), ports, timestamps, error.
//   - GET /status/config : the full configuration handed to the studio server (404 before the first launch).
package status
