// Package middleware contains HTTP middleware for the status server.
//
// # Components
//
//   - auth: API key validation (X-API-Key), disabled when no key is configured.
//   - rayid: tags every request with a RayID, stored in fiber locals and echoed
//     in the X-Ray-ID response header for log correlation.
package middleware
