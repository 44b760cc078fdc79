package combine

import (
	"errors"
	"fmt"
)

var (
	// ErrNotFound is matched by a NotFoundError.
	ErrNotFound = errors.New("not found")

	// ErrDecode is returned when no encoding in the fallback chain could decode a file.
	ErrDecode = errors.New("could not decode file")
)

// NotFoundError reports a scan root that is missing or not a directory.
type NotFoundError struct {
	Path string
	Err  error // Underlying stat error, nil when the path exists but is not a directory.
}

func (e *NotFoundError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("input directory %q not found: %v", e.Path, e.Err)
	}
	return fmt.Sprintf("input directory %q is not a directory", e.Path)
}

func (e *NotFoundError) Unwrap() error { return e.Err }

// Is lets errors.Is(err, ErrNotFound) match any NotFoundError.
func (e *NotFoundError) Is(target error) bool { return target == ErrNotFound }
