// Package pg provides PostgreSQL connection management with migrations for
// the administrative command engine, plus the concrete stores backing the
// deployment commands and the execution-tracking extensions.
//
// # Connection management
//
// Connect creates a pgxpool with retry logic to ride out transient network
// issues during startup:
//
//	cfg, err := pg.LoadConfig()
//	pool, err := pg.Connect(ctx, cfg)
//	defer pool.Close()
//
//	if err := pg.Migrate(ctx, pool, cfg, log); err != nil { ... }
//
// Configuration is handled through the Config struct with environment
// variable mapping; LoadConfig reads a local .env file first when present.
//
// # Stores
//
// NewExecutionStore returns an extension.Store over the command_executions
// table; NewDeploymentStore returns a deployment.Store over the deployments
// table. Both accept anything satisfying the DB interface, which *pgxpool.Pool
// and pgx.Tx do, and both prefer a transaction carried in the context via
// WithTx.
//
// The duplicate-execution gate relies on a check-then-insert against
// command_executions that is not atomic at the application level; the
// bundled migration documents an optional partial unique index for
// deployments that need a hard guarantee.
package pg
