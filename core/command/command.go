package command

import "context"

// Command is a single unit of executable work producing a typed output.
// A command value describes the work to be done; it carries no execution
// history and is treated as consumed once executed.
type Command[O any] interface {
	Execute(ctx context.Context) (O, error)
}

// Func adapts a plain function to the Command interface.
type Func[O any] func(ctx context.Context) (O, error)

// Execute runs the function.
func (f Func[O]) Execute(ctx context.Context) (O, error) {
	return f(ctx)
}
