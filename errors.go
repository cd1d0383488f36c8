package stanza

import "errors"

var (
	// ErrNilNode is returned when a nil node is handed to an operation
	// that needs one.
	ErrNilNode = errors.New("nil node")

	// ErrNoElement is returned by Parser when the input ends without a
	// single top-level element.
	ErrNoElement = errors.New("no element in input")
)
