// Copyright (c) 2017 The btcsuite developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package cashaddr

import (
	"fmt"
)

// ConvertBits converts a byte slice where each byte is encoding fromBits bits,
// to a byte slice where each byte is encoding toBits bits.  The input is read
// as one big-endian bit stream.
//
// When pad is true a trailing partial group is right-padded with zero bits
// and kept.  When pad is false a trailing partial group is dropped if it is
// shorter than fromBits and all of its bits are zero, otherwise
// ErrInvalidPadding is returned.
func ConvertBits(data []byte, fromBits, toBits uint8, pad bool) ([]byte, error) {
	if fromBits < 1 || fromBits > 8 || toBits < 1 || toBits > 8 {
		str := fmt.Sprintf("invalid bit group widths %d -> %d",
			fromBits, toBits)
		return nil, makeError(ErrInvalidBitGroups, str)
	}

	// The final bytes needed is ceil(len(data)*fromBits / toBits).
	maxSize := (len(data)*int(fromBits) + int(toBits) - 1) / int(toBits)
	regrouped := make([]byte, 0, maxSize)

	maxv := uint32(1)<<toBits - 1

	// acc holds the bits that have been read but not written yet, bits is
	// how many of them there are.
	var acc uint32
	var bits uint8
	for i, b := range data {
		if fromBits < 8 && b>>fromBits != 0 {
			str := fmt.Sprintf("value %d at index %d does not fit in "+
				"%d bits", b, i, fromBits)
			return nil, makeError(ErrInvalidBitGroups, str)
		}

		acc = acc<<fromBits | uint32(b)
		bits += fromBits
		for bits >= toBits {
			bits -= toBits
			regrouped = append(regrouped, byte(acc>>bits&maxv))
		}
		acc &= uint32(1)<<bits - 1
	}

	if pad {
		if bits > 0 {
			regrouped = append(regrouped, byte(acc<<(toBits-bits)&maxv))
		}
		return regrouped, nil
	}

	if bits >= fromBits {
		str := fmt.Sprintf("%d leftover bits form a whole input group",
			bits)
		return nil, makeError(ErrInvalidPadding, str)
	}
	if acc != 0 {
		str := fmt.Sprintf("non-zero padding %0*b", int(bits), acc)
		return nil, makeError(ErrInvalidPadding, str)
	}

	return regrouped, nil
}
