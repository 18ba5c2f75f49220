// Copyright (c) 2017 The btcsuite developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package cashaddr

import (
	"fmt"
)

// AddressKind is the kind of script an address pays to.  Its value is the
// type field of the CashAddr version byte.
type AddressKind uint8

const (
	// PubKeyHash is a pay-to-pubkey-hash address.
	PubKeyHash AddressKind = 0

	// ScriptHash is a pay-to-script-hash address.
	ScriptHash AddressKind = 1
)

// String returns the AddressKind in human-readable form.
func (k AddressKind) String() string {
	switch k {
	case PubKeyHash:
		return "P2PKH"
	case ScriptHash:
		return "P2SH"
	}
	return fmt.Sprintf("Unknown AddressKind (%d)", uint8(k))
}

const (
	versionReservedBit = 0x80
	versionTypeShift   = 3
	versionTypeMask    = 0x78
	versionSizeMask    = 0x07
)

// sizeClasses maps the size class bits of the version byte to hash lengths.
var sizeClasses = [8]int{20, 24, 28, 32, 40, 48, 56, 64}

// sizeClass returns the size class for a hash length.
func sizeClass(hashLen int) (byte, bool) {
	for class, size := range sizeClasses {
		if size == hashLen {
			return byte(class), true
		}
	}
	return 0, false
}

// encodeVersion packs the address kind and the size class of hashLen into a
// version byte.
func encodeVersion(kind AddressKind, hashLen int) (byte, error) {
	if kind != PubKeyHash && kind != ScriptHash {
		str := fmt.Sprintf("unsupported address kind %d", uint8(kind))
		return 0, makeError(ErrUnknownAddressKind, str)
	}
	class, ok := sizeClass(hashLen)
	if !ok {
		str := fmt.Sprintf("hash length %d has no size class", hashLen)
		return 0, makeError(ErrUnsupportedPayloadLength, str)
	}
	return byte(kind)<<versionTypeShift | class, nil
}

// decodeVersion unpacks a version byte into the address kind and the hash
// length its size class declares.
func decodeVersion(version byte) (AddressKind, int, error) {
	if version&versionReservedBit != 0 {
		str := fmt.Sprintf("version byte 0x%02x has the reserved bit set",
			version)
		return 0, 0, makeError(ErrUnknownAddressKind, str)
	}
	kind := AddressKind((version & versionTypeMask) >> versionTypeShift)
	if kind != PubKeyHash && kind != ScriptHash {
		str := fmt.Sprintf("version byte 0x%02x has unknown type %d",
			version, uint8(kind))
		return 0, 0, makeError(ErrUnknownAddressKind, str)
	}
	return kind, sizeClasses[version&versionSizeMask], nil
}
