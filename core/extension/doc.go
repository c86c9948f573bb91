// Package extension provides the cross-cutting layers that can be stacked
// onto administrative commands: identification, duplicate prevention,
// broken-execution cleanup, background dispatch, and persistent execution
// tracking with heartbeats and timeouts.
//
// Extensions communicate through the dynamic context: Identify stores a
// fresh ExecutionID and the CommandKind, and every other extension reads
// them from there. Identify must therefore be the outermost layer of any
// stack that uses the rest of the package.
//
// The canonical full stack, in declaration order:
//
//	out, err := command.Stack5(
//	    cmd,
//	    extension.Identify[uuid.UUID](kind),
//	    extension.HandleBroken[uuid.UUID](store),
//	    extension.PreventDuplicates[uuid.UUID](store),
//	    extension.ExecuteInBackground[bool](),
//	    extension.Track[bool](store),
//	).Execute(ctx)
//
// HandleBroken runs before PreventDuplicates so that abandoned executions
// are reaped before they can block new work. ExecuteInBackground detaches
// everything inside it and returns the execution ID immediately; Track, the
// innermost layer, persists the execution record and supervises the command
// to completion.
//
// Persistence goes through the Store interface. MemoryStore is a complete
// in-memory implementation for tests and local development; the
// integration/database/pg package provides the PostgreSQL-backed one.
package extension
