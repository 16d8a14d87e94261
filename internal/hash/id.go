// Package hash derives fixed-width keys from dataset identifiers.
package hash

import (
	"strconv"

	"github.com/cespare/xxhash/v2"
)

// ID computes the xxHash64 of the given string.
func ID(data string) uint64 {
	return xxhash.Sum64String(data)
}

// Key returns the 16-digit lowercase hex form of ID(data), suitable for store keys.
func Key(data string) string {
	s := strconv.FormatUint(ID(data), 16)
	for len(s) < 16 {
		s = "0" + s
	}

	return s
}
