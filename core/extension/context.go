package extension

import "github.com/google/uuid"

// Dynamic context value types shared between extensions. Each type doubles
// as its own context key, so any layer can read what Identify stored
// without depending on Identify directly.

// ExecutionID identifies a single run of a composed command.
type ExecutionID uuid.UUID

// CommandKind tags an execution with the command type that produced it.
type CommandKind string
