package document

import (
	"fmt"

	"docflow/internal/pkg/errs"
)

// Status represents the lifecycle state of a document version.
//
// A version starts as Draft (first generation) or Regenerated (correction
// cycle), becomes Final when approved, and becomes Superseded when a newer
// version replaces it. Superseded versions are kept forever; nothing is
// deleted.
type Status int

const (
	// Unknown represents an invalid or undefined status.
	Unknown Status = iota

	// Draft is a freshly generated version awaiting review.
	Draft

	// Final is an approved version; exactly one per order may carry it.
	Final

	// Regenerated is a version produced by a correction cycle.
	Regenerated

	// Superseded is a prior version replaced by a newer one. Never deleted.
	Superseded
)

func getStatusStrings() map[Status]string {
	return map[Status]string{
		Unknown:     "Unknown",
		Draft:       "Draft",
		Final:       "Final",
		Regenerated: "Regenerated",
		Superseded:  "Superseded",
	}
}

// StatusFromString parses a status from its string representation.
// Returns an error for unknown names and for "Unknown" itself.
func StatusFromString(s string) (Status, error) {
	for status, name := range getStatusStrings() {
		if name == s && status != Unknown {
			return status, nil
		}
	}
	return Unknown, errs.NewValueIsInvalidErrorWithCause(
		"document status is invalid",
		fmt.Errorf("%q is not a valid document status", s),
	)
}

// Validate checks if the Status value is a member of the closed enum.
func (s Status) Validate() error {
	if _, ok := getStatusStrings()[s]; !ok || s == Unknown {
		return errs.NewValueIsInvalidErrorWithCause(
			"document status is invalid",
			fmt.Errorf("%d is not a valid document status", s),
		)
	}
	return nil
}

// String returns the human-readable name of the status.
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "Unknown"
}

// IsCurrent reports whether the version is still the order's current one.
func (s Status) IsCurrent() bool {
	return s != Superseded && s != Unknown
}
