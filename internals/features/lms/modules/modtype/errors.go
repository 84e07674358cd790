// file: internals/features/lms/modules/modtype/errors.go
package modtype

import (
	"fmt"
	"sort"
	"strings"
)

// FieldErrors maps a dot-notation path into the module (e.g.
// "data.questions.2.options.0.text") to a human-readable message, so the UI
// can attach inline errors. A nil map means the module is valid.
type FieldErrors map[string]string

func (fe FieldErrors) add(message string, path ...any) {
	parts := make([]string, 0, len(path))
	for _, p := range path {
		parts = append(parts, fmt.Sprint(p))
	}
	fe[strings.Join(parts, ".")] = message
}

// OrNil returns nil when no error was collected, so callers can use the
// idiomatic `if errs := Validate(m); errs != nil` check.
func (fe FieldErrors) OrNil() FieldErrors {
	if len(fe) == 0 {
		return nil
	}
	return fe
}

// Error renders the collected errors as a single line, sorted by path.
// FieldErrors is returned as a value, not an error, but controllers log it.
func (fe FieldErrors) Error() string {
	paths := make([]string, 0, len(fe))
	for p := range fe {
		paths = append(paths, p)
	}
	sort.Strings(paths)
	var b strings.Builder
	for i, p := range paths {
		if i > 0 {
			b.WriteString("; ")
		}
		b.WriteString(p)
		b.WriteString(": ")
		b.WriteString(fe[p])
	}
	return b.String()
}
