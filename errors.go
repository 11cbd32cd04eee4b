package dyncast

import (
	"errors"
	"fmt"
)

// RegistryError represents a failed hierarchy declaration or type
// registration.
//
// Downcast mismatches are not errors - they are signaled by a false ok
// result. RegistryError covers the declaration surface only:
//   - Declaring a hierarchy over a non-interface type
//   - Re-declaring a hierarchy name
//   - Re-registering a type or display name
//   - Adding a member that does not implement the hierarchy's interface
type RegistryError struct {
	// Code identifies the error category.
	Code RegistryErrorCode

	// Message is a human-readable description.
	Message string

	// Hierarchy names the affected hierarchy, when one is involved.
	Hierarchy string

	// Type names the affected concrete type, when one is involved.
	Type string
}

// RegistryErrorCode categorizes registry errors.
type RegistryErrorCode string

const (
	// ErrCodeNotInterface indicates Declare was instantiated with a
	// non-interface type parameter.
	ErrCodeNotInterface RegistryErrorCode = "NOT_INTERFACE"

	// ErrCodeDuplicateHierarchy indicates the hierarchy name is already
	// declared in the registry.
	ErrCodeDuplicateHierarchy RegistryErrorCode = "DUPLICATE_HIERARCHY"

	// ErrCodeDuplicateType indicates the concrete type is already
	// registered under another display name.
	ErrCodeDuplicateType RegistryErrorCode = "DUPLICATE_TYPE"

	// ErrCodeDuplicateName indicates the display name is already taken by
	// another type.
	ErrCodeDuplicateName RegistryErrorCode = "DUPLICATE_NAME"

	// ErrCodeNotMember indicates the concrete type does not implement the
	// hierarchy's interface.
	ErrCodeNotMember RegistryErrorCode = "NOT_MEMBER"
)

// Error implements the error interface.
func (e *RegistryError) Error() string {
	switch {
	case e.Hierarchy != "" && e.Type != "":
		return fmt.Sprintf("%s: %s (hierarchy=%s, type=%s)", e.Code, e.Message, e.Hierarchy, e.Type)
	case e.Hierarchy != "":
		return fmt.Sprintf("%s: %s (hierarchy=%s)", e.Code, e.Message, e.Hierarchy)
	case e.Type != "":
		return fmt.Sprintf("%s: %s (type=%s)", e.Code, e.Message, e.Type)
	default:
		return fmt.Sprintf("%s: %s", e.Code, e.Message)
	}
}

// IsRegistryError reports whether err is a *RegistryError with the given
// code. Uses errors.As to handle wrapped errors.
func IsRegistryError(err error, code RegistryErrorCode) bool {
	var re *RegistryError
	if errors.As(err, &re) {
		return re.Code == code
	}
	return false
}
