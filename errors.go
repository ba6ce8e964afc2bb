package matdata

import "github.com/pkg/errors"

var (
	// ErrAttributeOverflow indicates a name and value combination that does
	// not fit the fixed attribute record payload.
	ErrAttributeOverflow = errors.New("attribute data overflow")

	// ErrInvalidAttribute indicates access to an unset attribute record.
	ErrInvalidAttribute = errors.New("invalid attribute")

	// ErrTypeMismatch indicates a typed read against a record holding a
	// different type.
	ErrTypeMismatch = errors.New("attribute type mismatch")

	// ErrUnknownAttribute indicates a well-known attribute value outside the
	// enumeration.
	ErrUnknownAttribute = errors.New("unknown material attribute")

	// ErrRawData indicates a malformed flat attribute array.
	ErrRawData = errors.New("malformed attribute data")
)
