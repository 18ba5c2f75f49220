// Copyright (c) 2017 The btcsuite developers
// Copyright (c) 2019-2020 The Decred developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package cashaddr

// ErrorKind identifies a kind of error.  It has full support for errors.Is and
// errors.As, so the caller can directly check against an error kind when
// determining the reason for an error.
type ErrorKind string

// These constants are used to identify a specific Error.
const (
	// ErrInvalidCharacter indicates the payload contains a character that
	// is not part of the CashAddr charset, or the prefix contains a
	// character that is not an ASCII letter or digit.
	ErrInvalidCharacter = ErrorKind("ErrInvalidCharacter")

	// ErrInvalidLength indicates the prefix is empty or the payload is too
	// short to hold a version byte and a checksum.
	ErrInvalidLength = ErrorKind("ErrInvalidLength")

	// ErrChecksumMismatch indicates the polymod checksum over the prefix
	// and payload did not verify.
	ErrChecksumMismatch = ErrorKind("ErrChecksumMismatch")

	// ErrInvalidPadding indicates the trailing bits left over when
	// regrouping 5-bit groups into bytes are not all zero or span a whole
	// group.
	ErrInvalidPadding = ErrorKind("ErrInvalidPadding")

	// ErrInvalidBitGroups indicates a bit group width outside of 1..8 or a
	// value that does not fit in its declared group width.
	ErrInvalidBitGroups = ErrorKind("ErrInvalidBitGroups")

	// ErrMissingPrefix indicates an address without a prefix was decoded
	// and no default prefix was supplied.
	ErrMissingPrefix = ErrorKind("ErrMissingPrefix")

	// ErrMixedCase indicates an address mixes upper and lower case
	// characters.
	ErrMixedCase = ErrorKind("ErrMixedCase")

	// ErrUnsupportedPayloadLength indicates a hash length that has no
	// CashAddr size class.
	ErrUnsupportedPayloadLength = ErrorKind("ErrUnsupportedPayloadLength")

	// ErrLengthMismatch indicates the size class in the version byte does
	// not agree with the length of the decoded hash.
	ErrLengthMismatch = ErrorKind("ErrLengthMismatch")

	// ErrUnknownAddressKind indicates an address kind other than
	// pay-to-pubkey-hash or pay-to-script-hash, or a version byte with the
	// reserved bit set.
	ErrUnknownAddressKind = ErrorKind("ErrUnknownAddressKind")
)

// Error satisfies the error interface and prints human-readable errors.
func (e ErrorKind) Error() string {
	return string(e)
}

// Error identifies an error related to CashAddr encoding or decoding.  It has
// full support for errors.Is and errors.As, so the caller can ascertain the
// specific reason for the error by checking the underlying error.
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
