// Package deployment contains the administrative commands for indexed
// workloads: info, pause, resume, and restart. Each command is a
// command.Command value, so it can be executed directly for synchronous
// operator actions or stacked with the extension layers for identified,
// tracked, backgrounded runs.
//
// Persistence is behind the Store interface; the PostgreSQL implementation
// lives in integration/database/pg.
package deployment
