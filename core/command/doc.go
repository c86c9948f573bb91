// Package command provides the primitives used by all administrative commands
// and their extensions: a typed command contract, a layering mechanism for
// stacking cross-cutting behavior onto commands, and a dynamic context that
// lets independently written layers share per-execution data.
//
// # Commands
//
// A Command is a single unit of executable work with a typed output:
//
//	cmd := command.Func[string](func(ctx context.Context) (string, error) {
//	    return "done", nil
//	})
//
//	out, err := cmd.Execute(ctx)
//
// # Layers
//
// A Layer wraps a command with additional behavior and may change the
// observable output type. Layers are stacked with the StackN helpers, where
// the first layer listed is the outermost wrapper:
//
//	composed := command.Stack2(cmd, audit, retryGate)
//
// Execution order: audit enters, retryGate enters, cmd runs, retryGate
// observes the result, audit observes the result. Composition is fully
// type-checked; a stack whose layer types do not chain onto the base
// command does not compile.
//
// # Dynamic context
//
// Layers exchange data through context values keyed by their static type.
// Extend stores a value, Value retrieves it, and a second Extend of the
// same type shadows the first:
//
//	ctx = command.Extend(ctx, TraceTag("abc"))
//	tag, err := command.Value[TraceTag](ctx)
//
// The dynamic context is owned by the executing chain and is never shared
// between goroutines except by explicit context hand-off.
package command
