package utils

import (
	crand "crypto/rand"
	"encoding/binary"
	"time"
)

// SecureSeed returns a seed for math/rand sources drawn from crypto/rand.
// Falls back to the wall clock if the system entropy source is unavailable.
func SecureSeed() int64 {
	var b [8]byte
	if _, err := crand.Read(b[:]); err != nil {
		return time.Now().UnixNano()
	}
	return int64(binary.LittleEndian.Uint64(b[:]) >> 1)
}

// ClampInt bounds value to [lo, hi]
func ClampInt(value, lo, hi int) int {
	if value < lo {
		return lo
	}
	if value > hi {
		return hi
	}
	return value
}
