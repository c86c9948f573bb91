package extension

import (
	"errors"
	"fmt"
)

// Error taxonomy shared by all extensions. Concrete failures wrap one of
// these sentinels so callers can classify errors with errors.Is regardless
// of which extension produced them.
var (
	// ErrContext marks a missing dynamic context value. This is a layer
	// ordering bug, never an expected runtime condition.
	ErrContext = errors.New("context error")

	// ErrDatastore marks a failed execution store operation.
	ErrDatastore = errors.New("datastore error")

	// ErrExtensionFailed marks a refusal by an extension's own rules,
	// such as a duplicate execution or an elapsed timeout.
	ErrExtensionFailed = errors.New("extension failed")

	// ErrCommandFailed marks a failure of the wrapped command itself.
	ErrCommandFailed = errors.New("command failed")

	// ErrDuplicateExecution reports that another execution of the same
	// kind is already in progress. Wrapped under ErrExtensionFailed.
	ErrDuplicateExecution = errors.New("duplicate execution")

	// ErrTimeout reports that an execution exceeded its maximum execution
	// time. Wrapped under ErrExtensionFailed.
	ErrTimeout = errors.New("timeout")
)

func contextErr(extension string, err error) error {
	return fmt.Errorf("%s: %w: %w", extension, ErrContext, err)
}

func datastoreErr(extension string, err error) error {
	return fmt.Errorf("%s: %w: %w", extension, ErrDatastore, err)
}

func commandErr(extension string, err error) error {
	return fmt.Errorf("%s: %w: %w", extension, ErrCommandFailed, err)
}
