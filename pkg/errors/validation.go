package errors

import (
	"strings"
	"unicode"
)

// maxModuleNameLen bounds module names; anything longer is almost certainly
// a corrupted argument rather than a real dotted module path.
const maxModuleNameLen = 256

// ValidateModuleName validates a dotted module name before it reaches the
// loader. It rejects names that could be used for path traversal, since
// module names are resolved against filesystem search paths.
//
// The validation rules are intentionally conservative:
//   - No empty names
//   - No control characters or null bytes
//   - No path separators or parent-directory sequences
//   - No empty dotted segments ("a..b", leading or trailing dots)
//   - Maximum length of 256 characters
func ValidateModuleName(name string) error {
	if name == "" {
		return New(ErrCodeInvalidModule, "module name cannot be empty")
	}

	if len(name) > maxModuleNameLen {
		return New(ErrCodeInvalidModule, "module name too long (max %d characters)", maxModuleNameLen)
	}

	for _, r := range name {
		if unicode.IsControl(r) {
			return New(ErrCodeInvalidModule, "module name contains invalid control characters")
		}
	}

	if strings.ContainsAny(name, "/\\") {
		return New(ErrCodeInvalidModule, "module name cannot contain path separators")
	}

	for _, part := range strings.Split(name, ".") {
		if part == "" {
			return New(ErrCodeInvalidModule, "module name %q has an empty segment", name)
		}
	}

	return nil
}

// ValidateSearchPath validates a loader search path supplied by the user.
func ValidateSearchPath(path string) error {
	if path == "" {
		return New(ErrCodeInvalidPath, "search path cannot be empty")
	}
	if strings.ContainsRune(path, '\x00') {
		return New(ErrCodeInvalidPath, "search path contains a null byte")
	}
	return nil
}
