// Copyright (c) 2017 The btcsuite developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

/*
Package cashaddr implements the CashAddr address format used by Bitcoin Cash.

A CashAddr string is a human-readable prefix, a ':' separator and a payload
written in the 32 character charset "qpzry9x8gf2tvdw0s3jn54khce6mua7l".  The
payload is a version byte followed by a hash, regrouped into 5-bit groups, and
is followed by a 40-bit BCH checksum covering both the prefix and the payload.

# Version Byte

The most significant bit of the version byte is reserved and must be zero.  The
next four bits hold the address kind, 0 for pay-to-pubkey-hash and 1 for
pay-to-script-hash, and the low three bits hold the size class of the hash:

	class  0   1   2   3   4   5   6   7
	bytes  20  24  28  32  40  48  56  64

# Case

Addresses are emitted in lowercase.  Decoding accepts all lowercase or all
uppercase input and rejects a mix of both.

# Errors

Errors returned by this package are of type Error and wrap an ErrorKind, so
callers can test for a specific reason with errors.Is:

	_, _, _, err := cashaddr.Decode(addr, "bitcoincash")
	if errors.Is(err, cashaddr.ErrChecksumMismatch) {
		// The address was mistyped.
	}
*/
package cashaddr
