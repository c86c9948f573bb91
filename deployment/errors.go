package deployment

import "errors"

var (
	// ErrNotFound is returned when a selector matches no deployment.
	ErrNotFound = errors.New("deployment not found")

	// ErrAmbiguousSelector is returned when an operation that targets a
	// single deployment matches more than one.
	ErrAmbiguousSelector = errors.New("selector matches multiple deployments")
)
