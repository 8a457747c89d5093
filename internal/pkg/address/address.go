// Package address validates Ethereum wallet addresses written in the
// mixed-case checksum form, where the casing of each letter is derived from
// the Keccak-256 hash of the lower-cased address.
package address

import (
	"encoding/hex"
	"strings"

	"github.com/ethereum/go-ethereum/crypto"
)

const (
	prefix       = "0x"
	digitsLength = 40
	// Length is the size of a prefixed address string.
	Length = len(prefix) + digitsLength
)

// Normalize returns the lower-cased 40 hex digits of address without the
// 0x prefix. It is the form used to compare two addresses for equality and
// the input of the checksum hash. The input is not validated.
func Normalize(address string) string {
	return strings.TrimPrefix(strings.ToLower(address), prefix)
}

// Equal reports whether a and b refer to the same account, ignoring casing.
func Equal(a, b string) bool {
	return Normalize(a) == Normalize(b)
}

// IsValid reports whether address is a 0x-prefixed, 40 hex digit address
// whose letter casing matches its checksum.
//
// For each digit position i, the i-th hex digit of the Keccak-256 hash of the
// lower-cased digits decides the expected casing: values above 7 require an
// upper-case letter, the rest a lower-case one. Decimal digits have no case
// and always match. IsValid never panics.
func IsValid(address string) bool {
	if len(address) != Length || !strings.HasPrefix(address, prefix) {
		return false
	}

	digits := address[len(prefix):]
	if !isHex(digits) {
		return false
	}

	hash := hex.EncodeToString(crypto.Keccak256([]byte(strings.ToLower(digits))))

	for i := range digitsLength {
		c := digits[i]
		if c >= '0' && c <= '9' {
			continue
		}

		upper := c >= 'A' && c <= 'F'
		if hexValue(hash[i]) > 7 {
			if !upper {
				return false
			}
		} else if upper {
			return false
		}
	}

	return true
}

// isHex reports whether every byte of s is a hex digit in either case.
func isHex(s string) bool {
	for i := range len(s) {
		if hexValue(s[i]) < 0 {
			return false
		}
	}
	return true
}

// hexValue returns the numeric value of a hex digit, or -1.
func hexValue(c byte) int {
	switch {
	case c >= '0' && c <= '9':
		return int(c - '0')
	case c >= 'a' && c <= 'f':
		return int(c-'a') + 10
	case c >= 'A' && c <= 'F':
		return int(c-'A') + 10
	default:
		return -1
	}
}
