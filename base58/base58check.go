// Copyright (c) 2013-2014 The btcsuite developers
// Copyright (c) 2015 The Decred developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package base58

import (
	"bytes"
	"fmt"

	"github.com/btcsuite/btcd/chaincfg/chainhash"
	"golang.org/x/crypto/ripemd160"
)

const (
	// ChecksumLen is the number of checksum bytes appended by CheckEncode.
	ChecksumLen = 4

	// AddressLen is the number of bytes a legacy address decodes to: a
	// version byte, a hash160 and the checksum.
	AddressLen = 1 + ripemd160.Size + ChecksumLen
)

// checksum: first four bytes of sha256^2
func checksum(input []byte) (cksum [ChecksumLen]byte) {
	h := chainhash.DoubleHashB(input)
	copy(cksum[:], h[:ChecksumLen])
	return
}

// CheckEncode prepends a version byte and appends a four byte checksum.
func CheckEncode(input []byte, version byte) string {
	b := make([]byte, 0, 1+len(input)+ChecksumLen)
	b = append(b, version)
	b = append(b, input...)
	cksum := checksum(b)
	b = append(b, cksum[:]...)
	return Encode(b)
}

// CheckDecode decodes a legacy address string that was encoded with
// CheckEncode, verifies the checksum and returns the 20-byte hash along with
// the version byte.
func CheckDecode(input string) (result []byte, version byte, err error) {
	decoded, err := Decode(input)
	if err != nil {
		return nil, 0, err
	}
	if len(decoded) != AddressLen {
		str := fmt.Sprintf("decoded length %d, want %d", len(decoded),
			AddressLen)
		return nil, 0, makeError(ErrInvalidLength, str)
	}

	body := decoded[:AddressLen-ChecksumLen]
	cksum := checksum(body)
	if !bytes.Equal(cksum[:], decoded[AddressLen-ChecksumLen:]) {
		str := fmt.Sprintf("checksum %x does not match computed %x",
			decoded[AddressLen-ChecksumLen:], cksum[:])
		return nil, 0, makeError(ErrChecksumMismatch, str)
	}

	version = body[0]
	result = append(result, body[1:]...)
	return result, version, nil
}
