// Package journal records every studio launch in a database.
//
// The journal is optional: the start command only wires it when the database
// is enabled and reachable. Rows live in the studio_launches table and follow
// a launch through starting, running, failed or stopped. The history command
// reads them back with Recent.
package journal
