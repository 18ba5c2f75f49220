// Copyright (c) 2017 The btcsuite developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package cashaddr

// ChecksumLen is the number of 5-bit checksum groups appended to the payload.
const ChecksumLen = 8

// gen holds the generator constants {2^n}k(x) for n = 0..4, where
// k(x) = x^8 mod g(x) and g(x) is the CashAddr BCH generator
// x^8 + {19}x^7 + {3}x^6 + {25}x^5 + {11}x^4 + {25}x^3 + {3}x^2 + {19}x + {1}.
var gen = [5]uint64{
	0x98f2bc8e61,
	0x79b76d99e2,
	0xf33e5fb3c4,
	0xae2eabe2a8,
	0x1e4f43e470,
}

// PolyMod computes the 40-bit remainder of the polynomial formed by values
// over GF(32), with an implicit leading 1, modulo the CashAddr generator.  The
// result is XORed with 1 so a correctly checksummed input yields zero.
func PolyMod(values []byte) uint64 {
	c := uint64(1)
	for _, d := range values {
		c0 := byte(c >> 35)
		c = (c&0x07ffffffff)<<5 ^ uint64(d)
		for i := 0; i < len(gen); i++ {
			if (c0>>uint(i))&1 == 1 {
				c ^= gen[i]
			}
		}
	}
	return c ^ 1
}

// expandPrefix returns the lower 5 bits of every prefix character followed by
// a zero separator group.
func expandPrefix(prefix string) []byte {
	out := make([]byte, len(prefix)+1)
	for i := 0; i < len(prefix); i++ {
		out[i] = prefix[i] & 0x1f
	}
	return out
}

// checksumInput concatenates the expanded prefix, the payload and extra
// trailing groups.
func checksumInput(prefix string, payload []byte, extra int) []byte {
	exp := expandPrefix(prefix)
	values := make([]byte, 0, len(exp)+len(payload)+extra)
	values = append(values, exp...)
	values = append(values, payload...)
	return values
}

// CreateChecksum returns the eight 5-bit checksum groups for the lowercase
// prefix and the 5-bit payload, most significant group first.
func CreateChecksum(prefix string, payload []byte) []byte {
	values := checksumInput(prefix, payload, ChecksumLen)
	values = append(values, make([]byte, ChecksumLen)...)
	mod := PolyMod(values)

	checksum := make([]byte, ChecksumLen)
	for i := 0; i < ChecksumLen; i++ {
		checksum[i] = byte(mod>>uint(5*(ChecksumLen-1-i))) & 0x1f
	}
	return checksum
}

// VerifyChecksum reports whether values, a 5-bit payload followed by its
// eight checksum groups, carries a valid checksum for the lowercase prefix.
func VerifyChecksum(prefix string, values []byte) bool {
	return PolyMod(checksumInput(prefix, values, 0)) == 0
}
