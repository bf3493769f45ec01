package domain

import (
	"math"
	"unicode/utf16"
)

// Draw derives a pseudo-random value in [0,1) from a seed string.
//
// The hash is a rolling multiply-by-31-and-add over the seed's UTF-16 code
// units, accumulated in a 32-bit signed integer with two's-complement
// wraparound, then |hash| / 2147483647. The int32 arithmetic is the contract:
// identical seeds produce bit-identical float64 results on every platform,
// which is what lets a regenerated fortune match a cached one. Not
// cryptographically secure, by contract.
func Draw(seed string) float64 {
	var h int32
	for _, cu := range utf16.Encode([]rune(seed)) {
		h = h*31 + int32(cu)
	}

	// |math.MinInt32| does not fit in int32; widen before negating.
	v := int64(h)
	if v < 0 {
		v = -v
	}

	r := float64(v) / 2147483647
	if r >= 1 {
		// Only reachable for hash == math.MinInt32; keep the contract of [0,1).
		return math.Nextafter(1, 0)
	}
	return r
}

// fortuneSeed builds the engine's base seed: user identity plus the UTC
// calendar day, so draws change exactly at the day boundary.
func fortuneSeed(userID, day string) string {
	return userID + day
}
