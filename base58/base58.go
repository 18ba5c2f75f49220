// Copyright (c) 2013-2015 The btcsuite developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package base58

import (
	"fmt"
)

// Encode encodes a byte slice to a modified base58 string.
//
// The conversion works on a little scratch buffer of base58 digits which is
// multiplied by 256 and added to for every input byte, so no arbitrary
// precision arithmetic is required.
func Encode(b []byte) string {
	zeros := 0
	for zeros < len(b) && b[zeros] == 0 {
		zeros++
	}

	// log(256) / log(58), rounded up.
	size := (len(b)-zeros)*138/100 + 1
	digits := make([]byte, size)

	// high is the lowest index that has not been written yet.
	high := size - 1
	for _, v := range b[zeros:] {
		carry := uint32(v)
		j := size - 1
		for ; j > high || carry != 0; j-- {
			carry += 256 * uint32(digits[j])
			digits[j] = byte(carry % 58)
			carry /= 58
		}
		high = j
	}

	i := 0
	for i < size && digits[i] == 0 {
		i++
	}

	answer := make([]byte, zeros+size-i)
	for k := 0; k < zeros; k++ {
		answer[k] = alphabetIdx0
	}
	for k := zeros; i < size; i, k = i+1, k+1 {
		answer[k] = alphabet[digits[i]]
	}

	return string(answer)
}

// Decode decodes a modified base58 string to a byte slice.  Every leading '1'
// becomes a leading zero byte.
func Decode(s string) ([]byte, error) {
	zeros := 0
	for zeros < len(s) && s[zeros] == alphabetIdx0 {
		zeros++
	}

	// log(58) / log(256), rounded up.
	size := (len(s)-zeros)*733/1000 + 1
	bin := make([]byte, size)

	high := size - 1
	for i := zeros; i < len(s); i++ {
		digit := b58[s[i]]
		if digit == 255 {
			str := fmt.Sprintf("invalid character %q at position %d",
				s[i], i)
			return nil, makeError(ErrInvalidCharacter, str)
		}

		carry := uint32(digit)
		j := size - 1
		for ; j > high || carry != 0; j-- {
			carry += 58 * uint32(bin[j])
			bin[j] = byte(carry)
			carry >>= 8
		}
		high = j
	}

	i := 0
	for i < size && bin[i] == 0 {
		i++
	}

	decoded := make([]byte, zeros+size-i)
	copy(decoded[zeros:], bin[i:])
	return decoded, nil
}
