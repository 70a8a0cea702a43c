package domain

import (
	"errors"
	"fmt"
)

// FailureKind classifies a failure into the category that decides the
// process exit code.
type FailureKind int

const (
	KindUnclassified FailureKind = iota
	KindNetwork
	KindFilesystem
	KindValidation
	KindCancelled
)

// String returns the lowercase name of the kind.
func (k FailureKind) String() string {
	switch k {
	case KindNetwork:
		return "network"
	case KindFilesystem:
		return "filesystem"
	case KindValidation:
		return "validation"
	case KindCancelled:
		return "cancelled"
	default:
		return "unclassified"
	}
}

// Failure is a classified error raised by pipeline components. Each
// component describes what went wrong and tags the kind; only the
// top-level exit point turns kinds into exit codes.
type Failure struct {
	Kind FailureKind
	err  error
}

func newFailure(kind FailureKind, format string, args ...any) *Failure {
	return &Failure{Kind: kind, err: fmt.Errorf(format, args...)}
}

// NewNetworkFailure creates a network-kind failure. The format string
// supports %w for wrapping an underlying cause.
func NewNetworkFailure(format string, args ...any) *Failure {
	return newFailure(KindNetwork, format, args...)
}

// NewFilesystemFailure creates a filesystem-kind failure.
func NewFilesystemFailure(format string, args ...any) *Failure {
	return newFailure(KindFilesystem, format, args...)
}

// NewValidationFailure creates a validation-kind failure.
func NewValidationFailure(format string, args ...any) *Failure {
	return newFailure(KindValidation, format, args...)
}

// NewCancelled creates a cancelled-kind failure for a declined
// confirmation.
func NewCancelled(format string, args ...any) *Failure {
	return newFailure(KindCancelled, format, args...)
}

// Error implements the error interface.
func (f *Failure) Error() string {
	return f.err.Error()
}

// Unwrap exposes the underlying cause to errors.Is and errors.As.
func (f *Failure) Unwrap() error {
	return f.err
}

// ExitCode is the process exit status reported to the calling shell,
// the only channel automation should rely on.
type ExitCode int

const (
	ExitSuccess         ExitCode = 0
	ExitGeneralError    ExitCode = 1
	ExitNetworkError    ExitCode = 2
	ExitFileSystemError ExitCode = 3
	ExitValidationError ExitCode = 4
	ExitUserCancelled   ExitCode = 5
)

// ExitCodeFor maps an error to the exit-code taxonomy. A nil error is
// success, a Failure anywhere in the chain decides the code, and
// anything unclassified is the general error.
func ExitCodeFor(err error) ExitCode {
	if err == nil {
		return ExitSuccess
	}

	var failure *Failure
	if errors.As(err, &failure) {
		switch failure.Kind {
		case KindNetwork:
			return ExitNetworkError
		case KindFilesystem:
			return ExitFileSystemError
		case KindValidation:
			return ExitValidationError
		case KindCancelled:
			return ExitUserCancelled
		}
	}

	return ExitGeneralError
}
