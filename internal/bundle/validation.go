package bundle

import (
	"fmt"
	"strings"
	"unicode"
)

// ValidatePrefix checks that prefix can start canonical identifiers.
// Returns ErrInvalidPrefix if it is empty, contains path separators or
// whitespace, or starts or ends with a dot.
func ValidatePrefix(prefix string) error {
	if prefix == "" {
		return fmt.Errorf("%w: empty prefix", ErrInvalidPrefix)
	}
	if strings.ContainsAny(prefix, "/\\") {
		return fmt.Errorf("%w: %q contains a path separator", ErrInvalidPrefix, prefix)
	}
	if strings.IndexFunc(prefix, unicode.IsSpace) >= 0 {
		return fmt.Errorf("%w: %q contains whitespace", ErrInvalidPrefix, prefix)
	}
	if strings.HasPrefix(prefix, ".") || strings.HasSuffix(prefix, ".") || strings.Contains(prefix, "..") {
		return fmt.Errorf("%w: %q has an empty segment", ErrInvalidPrefix, prefix)
	}
	return nil
}
