package domain

import (
	"errors"
	"fmt"
	"strings"

	m "minipack.dev/pkg/minipack/internal/model"
)

// ErrCycleDetected is matched by every CycleError.
var ErrCycleDetected = errors.New("cycle detected")

// ErrAssetLimitExceeded is returned when a build discovers more assets than
// BuildOptions.MaxAssets allows.
var ErrAssetLimitExceeded = errors.New("asset limit exceeded")

// ErrorKind classifies extraction failures.
type ErrorKind string

const (
	// KindIO means the module could not be read.
	KindIO ErrorKind = "io"
	// KindParse means the module source is not valid.
	KindParse ErrorKind = "parse"
	// KindTransform means a construct could not be lowered to the target.
	KindTransform ErrorKind = "transform"
)

// ExtractError reports a failure to turn a file into an asset.
type ExtractError struct {
	Kind ErrorKind
	Path m.Path
	Err  error
}

func (e *ExtractError) Error() string {
	return fmt.Sprintf("%s error in %s: %v", e.Kind, e.Path, e.Err)
}

func (e *ExtractError) Unwrap() error {
	return e.Err
}

// ResolutionError attaches the declaring file and the reference string to a
// failure that happened while following a dependency.
type ResolutionError struct {
	Parent    m.Path
	Reference string
	Resolved  m.Path
	Err       error
}

func (e *ResolutionError) Error() string {
	return fmt.Sprintf("resolve %q from %s: %v", e.Reference, e.Parent, e.Err)
}

func (e *ResolutionError) Unwrap() error {
	return e.Err
}

// CycleError lists the files forming a dependency loop, starting and ending
// with the same path.
type CycleError struct {
	Chain []m.Path
}

func (e *CycleError) Error() string {
	parts := make([]string, 0, len(e.Chain))
	for _, path := range e.Chain {
		parts = append(parts, string(path))
	}

	return fmt.Sprintf("%s: %s", ErrCycleDetected, strings.Join(parts, " -> "))
}

// Is makes errors.Is(err, ErrCycleDetected) hold for any CycleError.
func (e *CycleError) Is(target error) bool {
	return target == ErrCycleDetected
}

// ExtractErrorKind returns the kind of the first ExtractError in err's
// chain, if any.
func ExtractErrorKind(err error) (ErrorKind, bool) {
	var extractErr *ExtractError
	if errors.As(err, &extractErr) {
		return extractErr.Kind, true
	}

	return "", false
}
