// Copyright (c) 2017 The btcsuite developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package cashaddr

import (
	"fmt"
	"strings"
)

// Separator splits the prefix from the payload of a CashAddr string.
const Separator = ':'

// checkPrefix ensures a lowercase prefix is non-empty and consists of ASCII
// letters and digits only.
func checkPrefix(prefix string) error {
	if len(prefix) == 0 {
		return makeError(ErrInvalidLength, "empty prefix")
	}
	for i := 0; i < len(prefix); i++ {
		c := prefix[i]
		if (c < 'a' || c > 'z') && (c < '0' || c > '9') {
			str := fmt.Sprintf("invalid prefix character %q at "+
				"position %d", c, i)
			return makeError(ErrInvalidCharacter, str)
		}
	}
	return nil
}

// EncodeRaw encodes a 5-bit payload under prefix, appending the checksum.  The
// result is always lowercase.
func EncodeRaw(prefix string, payload []byte) (string, error) {
	prefix = strings.ToLower(prefix)
	if err := checkPrefix(prefix); err != nil {
		return "", err
	}

	var sb strings.Builder
	sb.Grow(len(prefix) + 1 + len(payload) + ChecksumLen)
	sb.WriteString(prefix)
	sb.WriteByte(Separator)
	for i, v := range payload {
		if v >= 32 {
			str := fmt.Sprintf("value %d at index %d does not fit "+
				"in 5 bits", v, i)
			return "", makeError(ErrInvalidBitGroups, str)
		}
		sb.WriteByte(charset[v])
	}
	for _, v := range CreateChecksum(prefix, payload) {
		sb.WriteByte(charset[v])
	}

	return sb.String(), nil
}

// DecodeRaw verifies the checksum of a CashAddr string and returns the
// lowercase prefix together with the 5-bit payload, checksum removed.
//
// The prefix is everything before the last separator.  When addr has no
// separator defaultPrefix is used instead, and ErrMissingPrefix is returned
// if it is empty.
func DecodeRaw(addr, defaultPrefix string) (string, []byte, error) {
	// CashAddr strings are case insensitive, but may not mix cases.
	var lower, upper bool
	for i := 0; i < len(addr); i++ {
		c := addr[i]
		switch {
		case c >= 'a' && c <= 'z':
			lower = true
		case c >= 'A' && c <= 'Z':
			upper = true
		}
	}
	if lower && upper {
		str := fmt.Sprintf("address %q mixes upper and lower case", addr)
		return "", nil, makeError(ErrMixedCase, str)
	}

	prefix, encoded := defaultPrefix, addr
	if i := strings.LastIndexByte(addr, Separator); i >= 0 {
		prefix, encoded = addr[:i], addr[i+1:]
	} else if defaultPrefix == "" {
		str := fmt.Sprintf("address %q has no prefix", addr)
		return "", nil, makeError(ErrMissingPrefix, str)
	}

	prefix = strings.ToLower(prefix)
	if err := checkPrefix(prefix); err != nil {
		return "", nil, err
	}

	if len(encoded) < ChecksumLen {
		str := fmt.Sprintf("payload of %d characters is shorter than "+
			"the checksum", len(encoded))
		return "", nil, makeError(ErrInvalidLength, str)
	}

	values := make([]byte, len(encoded))
	for i := 0; i < len(encoded); i++ {
		c := encoded[i]
		if c >= 128 || charsetRev[c] == -1 {
			str := fmt.Sprintf("invalid character %q at position %d",
				c, len(addr)-len(encoded)+i)
			return "", nil, makeError(ErrInvalidCharacter, str)
		}
		values[i] = byte(charsetRev[c])
	}

	if !VerifyChecksum(prefix, values) {
		str := fmt.Sprintf("checksum mismatch for prefix %q", prefix)
		return "", nil, makeError(ErrChecksumMismatch, str)
	}

	return prefix, values[:len(values)-ChecksumLen], nil
}

// Encode returns the CashAddr string for a hash of the given address kind.
// The hash length must be one of the CashAddr size classes.
func Encode(prefix string, kind AddressKind, hash []byte) (string, error) {
	version, err := encodeVersion(kind, len(hash))
	if err != nil {
		return "", err
	}

	data := make([]byte, 0, 1+len(hash))
	data = append(data, version)
	data = append(data, hash...)
	payload, err := ConvertBits(data, 8, 5, true)
	if err != nil {
		return "", err
	}

	return EncodeRaw(prefix, payload)
}

// Decode decodes a CashAddr string into its lowercase prefix, address kind
// and hash.  See DecodeRaw for how defaultPrefix is used.
func Decode(addr, defaultPrefix string) (string, AddressKind, []byte, error) {
	prefix, payload, err := DecodeRaw(addr, defaultPrefix)
	if err != nil {
		return "", 0, nil, err
	}

	data, err := ConvertBits(payload, 5, 8, false)
	if err != nil {
		return "", 0, nil, err
	}
	if len(data) == 0 {
		return "", 0, nil, makeError(ErrInvalidLength,
			"payload has no version byte")
	}

	kind, size, err := decodeVersion(data[0])
	if err != nil {
		return "", 0, nil, err
	}
	hash := data[1:]
	if len(hash) != size {
		str := fmt.Sprintf("version byte 0x%02x declares a %d byte "+
			"hash, got %d bytes", data[0], size, len(hash))
		return "", 0, nil, makeError(ErrLengthMismatch, str)
	}

	return prefix, kind, hash, nil
}
