package organize

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrMalformedName marks files whose name does not follow the acquisition convention.
	ErrMalformedName = errors.New("malformed name")
	// ErrFilesystem marks failed directory creation, rename, or move operations.
	ErrFilesystem = errors.New("filesystem error")
	// ErrCollision marks a destination that already exists with different content.
	ErrCollision = errors.New("collision")
	// ErrPreflight marks an unusable working directory; nothing was modified.
	ErrPreflight = errors.New("preflight failed")
)

// Wrap builds an error message that includes the operation and file context
// while tagging it with the provided marker for later classification. The
// marker should be one of the exported sentinel errors above.
func Wrap(marker error, operation, name, message string, err error) error {
	detail := buildDetail(operation, name, message)
	if marker == nil {
		marker = ErrFilesystem
	}
	if err != nil {
		return fmt.Errorf("%w: %s: %w", marker, detail, err)
	}
	return fmt.Errorf("%w: %s", marker, detail)
}

func buildDetail(operation, name, message string) string {
	parts := make([]string, 0, 3)
	if operation = strings.TrimSpace(operation); operation != "" {
		parts = append(parts, operation)
	}
	if name = strings.TrimSpace(name); name != "" {
		parts = append(parts, name)
	}
	if message = strings.TrimSpace(message); message != "" {
		parts = append(parts, message)
	}
	if len(parts) == 0 {
		return "organize failure"
	}
	return strings.Join(parts, ": ")
}
