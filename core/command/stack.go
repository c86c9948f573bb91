package command

// Layer adds cross-cutting behavior around a command. Wrapping may change
// the observable output type: the returned command runs the layer's own
// logic, invokes the wrapped command, and may transform its result.
type Layer[I, O any] func(inner Command[I]) Command[O]

// Stack wraps a command with a single layer.
func Stack[A, B any](cmd Command[A], l1 Layer[A, B]) Command[B] {
	return l1(cmd)
}

// Stack2 composes two layers onto a command. The first layer listed is the
// outermost wrapper: it is the first to run and the last to observe the
// result. The last layer listed sits directly around the base command. The
// same ordering rule holds for every StackN variant.
func Stack2[A, B, C any](cmd Command[A], l1 Layer[B, C], l2 Layer[A, B]) Command[C] {
	return l1(l2(cmd))
}

// Stack3 composes three layers onto a command, first layer outermost.
func Stack3[A, B, C, D any](cmd Command[A], l1 Layer[C, D], l2 Layer[B, C], l3 Layer[A, B]) Command[D] {
	return l1(l2(l3(cmd)))
}

// Stack4 composes four layers onto a command, first layer outermost.
func Stack4[A, B, C, D, E any](cmd Command[A], l1 Layer[D, E], l2 Layer[C, D], l3 Layer[B, C], l4 Layer[A, B]) Command[E] {
	return l1(l2(l3(l4(cmd))))
}

// Stack5 composes five layers onto a command, first layer outermost.
func Stack5[A, B, C, D, E, F any](cmd Command[A], l1 Layer[E, F], l2 Layer[D, E], l3 Layer[C, D], l4 Layer[B, C], l5 Layer[A, B]) Command[F] {
	return l1(l2(l3(l4(l5(cmd)))))
}

// Stack6 composes six layers onto a command, first layer outermost.
func Stack6[A, B, C, D, E, F, G any](cmd Command[A], l1 Layer[F, G], l2 Layer[E, F], l3 Layer[D, E], l4 Layer[C, D], l5 Layer[B, C], l6 Layer[A, B]) Command[G] {
	return l1(l2(l3(l4(l5(l6(cmd))))))
}

// Stack7 composes seven layers onto a command, first layer outermost.
func Stack7[A, B, C, D, E, F, G, H any](cmd Command[A], l1 Layer[G, H], l2 Layer[F, G], l3 Layer[E, F], l4 Layer[D, E], l5 Layer[C, D], l6 Layer[B, C], l7 Layer[A, B]) Command[H] {
	return l1(l2(l3(l4(l5(l6(l7(cmd)))))))
}

// Stack8 composes eight layers onto a command, first layer outermost.
func Stack8[A, B, C, D, E, F, G, H, I any](cmd Command[A], l1 Layer[H, I], l2 Layer[G, H], l3 Layer[F, G], l4 Layer[E, F], l5 Layer[D, E], l6 Layer[C, D], l7 Layer[B, C], l8 Layer[A, B]) Command[I] {
	return l1(l2(l3(l4(l5(l6(l7(l8(cmd))))))))
}

// Stack9 composes nine layers onto a command, first layer outermost.
func Stack9[A, B, C, D, E, F, G, H, I, J any](cmd Command[A], l1 Layer[I, J], l2 Layer[H, I], l3 Layer[G, H], l4 Layer[F, G], l5 Layer[E, F], l6 Layer[D, E], l7 Layer[C, D], l8 Layer[B, C], l9 Layer[A, B]) Command[J] {
	return l1(l2(l3(l4(l5(l6(l7(l8(l9(cmd)))))))))
}

// Stack10 composes ten layers onto a command, first layer outermost.
func Stack10[A, B, C, D, E, F, G, H, I, J, K any](cmd Command[A], l1 Layer[J, K], l2 Layer[I, J], l3 Layer[H, I], l4 Layer[G, H], l5 Layer[F, G], l6 Layer[E, F], l7 Layer[D, E], l8 Layer[C, D], l9 Layer[B, C], l10 Layer[A, B]) Command[K] {
	return l1(l2(l3(l4(l5(l6(l7(l8(l9(l10(cmd))))))))))
}
