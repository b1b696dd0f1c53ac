package mask

import (
	"errors"
	"fmt"
)

// ErrInvalidPattern is the sentinel for all mask compilation failures.
// Match with errors.Is.
var ErrInvalidPattern = errors.New("invalid mask pattern")

// PatternError reports why a pattern failed to compile and where.
type PatternError struct {
	Reason string
	Pos    int // rune offset into the pattern
}

// Error implements the error interface.
func (e *PatternError) Error() string {
	return fmt.Sprintf("invalid mask pattern at %d: %s", e.Pos, e.Reason)
}

// Is makes PatternError match ErrInvalidPattern.
func (e *PatternError) Is(target error) bool {
	return target == ErrInvalidPattern
}

func patternErr(pos int, reason string) error {
	return &PatternError{Reason: reason, Pos: pos}
}
