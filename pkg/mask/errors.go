package mask

import "errors"

var (
	// ErrUnknownKind is returned when a kind name does not match any rule.
	ErrUnknownKind = errors.New("mask: unknown field kind")

	// ErrNotStructPointer is returned by Struct for anything but a non-nil pointer to struct.
	ErrNotStructPointer = errors.New("mask: target must be a non-nil pointer to struct")

	// ErrInvalidFieldMap is returned when a field map document cannot be decoded.
	ErrInvalidFieldMap = errors.New("mask: invalid field map")
)
