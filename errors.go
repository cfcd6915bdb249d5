package helpers

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
)

// Sentinel errors for common helper failures.
// These errors can be used with errors.Is() for error checking.
var (
	// ErrMalformedField indicates a payload field could not be parsed into the
	// requested kind. It signals an upstream contract violation.
	ErrMalformedField = errors.New("malformed field")

	// ErrRecycled indicates a bitmap was used after its pixels were released.
	ErrRecycled = errors.New("bitmap already recycled")

	// ErrTrayUnavailable indicates the notification tray could not be reached.
	ErrTrayUnavailable = errors.New("notification tray unavailable")
)

// Error kinds categorize errors by their type.
const (
	// KindParse represents errors where payload text could not be parsed.
	KindParse = "parse"

	// KindOwnership represents errors where a consumed buffer was reused.
	KindOwnership = "ownership"

	// KindPlatform represents errors returned by the notification service.
	KindPlatform = "platform"

	// KindConfiguration represents errors related to configuration.
	KindConfiguration = "configuration"
)

// Error is a structured error type that wraps underlying errors with
// the operation that failed and the category of error.
//
// Error supports unwrapping, so errors.Is() and errors.As() see through it.
//
// Example usage:
//
//	err := &Error{
//		Op:   "avatar.Circle",
//		Kind: KindOwnership,
//		Err:  ErrRecycled,
//	}
type Error struct {
	// Op is the operation that failed (e.g., "avatar.Circle", "notify.RedisTray.Active").
	Op string

	// Kind categorizes the error (e.g., KindParse, KindPlatform).
	Kind string

	// Err is the underlying error that caused this error.
	Err error

	// Context provides additional debugging information (optional).
	Context map[string]any
}

// Error implements the error interface.
func (e *Error) Error() string {
	if e.Err == nil {
		return fmt.Sprintf("helpers: %s: %s", e.Op, e.Kind)
	}

	if len(e.Context) > 0 {
		return fmt.Sprintf("helpers: %s (%s): %v [context: %+v]", e.Op, e.Kind, e.Err, e.Context)
	}

	return fmt.Sprintf("helpers: %s (%s): %v", e.Op, e.Kind, e.Err)
}

// Unwrap returns the underlying error.
func (e *Error) Unwrap() error {
	return e.Err
}

// Is matches another *Error by Kind (and Op, when the target sets one),
// otherwise it delegates to the wrapped error.
func (e *Error) Is(target error) bool {
	if target == nil {
		return false
	}

	if t, ok := target.(*Error); ok {
		if t.Kind != "" && e.Kind == t.Kind {
			if t.Op == "" || e.Op == t.Op {
				return true
			}
		}
	}

	return errors.Is(e.Err, target)
}

// WithContext returns a copy of e with the provided context merged in.
func (e *Error) WithContext(ctx map[string]any) *Error {
	newErr := *e
	newErr.Context = make(map[string]any, len(e.Context)+len(ctx))
	for k, v := range e.Context {
		newErr.Context[k] = v
	}
	for k, v := range ctx {
		newErr.Context[k] = v
	}
	return &newErr
}

// NewOwnershipError creates a new Error with KindOwnership.
func NewOwnershipError(op string, err error) *Error {
	return &Error{Op: op, Kind: KindOwnership, Err: err}
}

// NewPlatformError creates a new Error with KindPlatform.
func NewPlatformError(op string, err error) *Error {
	return &Error{Op: op, Kind: KindPlatform, Err: err}
}

// NewConfigurationError creates a new Error with KindConfiguration.
func NewConfigurationError(op string, err error) *Error {
	return &Error{Op: op, Kind: KindConfiguration, Err: err}
}

// CloseWithLog closes the provided resource and logs any error at warning
// level. It is meant for defer statements.
//
// If logger is nil, slog.Default() is used.
//
//	defer helpers.CloseWithLog(tray, logger, "redis tray")
func CloseWithLog(closer io.Closer, logger *slog.Logger, name string) {
	if closer == nil {
		return
	}

	if logger == nil {
		logger = slog.Default()
	}

	if err := closer.Close(); err != nil {
		logger.Warn("failed to close resource",
			"resource", name,
			"error", err)
	}
}
