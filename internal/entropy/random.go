// Package entropy supplies seeds for runs that did not ask for a fixed one.
// Seeds come from crypto/rand, falling back to the wall clock.
package entropy

import (
	"crypto/rand"
	"encoding/binary"
	"log/slog"
	"math"
	mrand "math/rand"
	"time"
)

// Seed returns a fresh non-zero seed.
func Seed() int64 {
	var buf [8]byte
	if _, err := rand.Read(buf[:]); err != nil {
		slog.Debug("crypto seed failed, using clock", "error", err)
		return clockSeed()
	}
	seed := int64(binary.LittleEndian.Uint64(buf[:]) & math.MaxInt64)
	if seed == 0 {
		return clockSeed()
	}
	return seed
}

func clockSeed() int64 {
	seed := time.Now().UnixNano()
	if seed == 0 {
		seed = 1
	}
	return seed
}

// Resolve returns seed unchanged unless it is zero, in which case a fresh
// seed is drawn.
func Resolve(seed int64) int64 {
	if seed != 0 {
		return seed
	}
	return Seed()
}

// NewRand returns a generator for the resolved seed along with the seed
// actually used, so a run can be reproduced from logs.
func NewRand(seed int64) (*mrand.Rand, int64) {
	seed = Resolve(seed)
	return mrand.New(mrand.NewSource(seed)), seed
}
