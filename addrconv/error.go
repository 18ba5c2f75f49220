// Copyright (c) 2014-2016 The btcsuite developers
// Copyright (c) 2019-2020 The Decred developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package addrconv

// ErrorKind identifies a kind of error.  It has full support for errors.Is and
// errors.As, so the caller can directly check against an error kind when
// determining the reason for an error.
type ErrorKind string

// These constants are used to identify a specific Error.
const (
	// ErrUnsupportedVersion indicates a legacy version byte that is not
	// used by any known network, or an address kind that has no legacy
	// version byte.
	ErrUnsupportedVersion = ErrorKind("ErrUnsupportedVersion")

	// ErrUnknownPrefix indicates a CashAddr prefix that is not registered
	// with the converter.
	ErrUnknownPrefix = ErrorKind("ErrUnknownPrefix")

	// ErrUnknownFormat indicates a format name that is not registered with
	// the converter, or a format that has no prefix for the requested
	// network.
	ErrUnknownFormat = ErrorKind("ErrUnknownFormat")

	// ErrUnsupportedPayloadLength indicates a CashAddr hash that cannot be
	// expressed as a legacy address because it is not 20 bytes.
	ErrUnsupportedPayloadLength = ErrorKind("ErrUnsupportedPayloadLength")

	// ErrInvalidConfig indicates a converter configuration with an unnamed
	// or reserved format, an invalid prefix or a prefix registered twice.
	ErrInvalidConfig = ErrorKind("ErrInvalidConfig")
)

// Error satisfies the error interface and prints human-readable errors.
func (e ErrorKind) Error() string {
	return string(e)
}

// Error identifies an address conversion error.  It has full support for
// errors.Is and errors.As, so the caller can ascertain the specific reason for
// the error by checking the underlying error.
type Error struct {
	Err         error
	Description string
}

// Error satisfies the error interface and prints human-readable errors.
func (e Error) Error() string {
	return e.Description
}

// Unwrap returns the underlying wrapped error.
func (e Error) Unwrap() error {
	return e.Err
}

// makeError creates an Error given a set of arguments.
func makeError(kind ErrorKind, desc string) Error {
	return Error{Err: kind, Description: desc}
}
