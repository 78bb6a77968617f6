package core

import (
	"crypto/rand"
	"encoding/binary"
	"io"
	randv2 "math/rand/v2"
	"time"
)

// RNG is a thin convenience wrapper around math/rand/v2 for deterministic seeding.
type RNG struct {
	r *randv2.Rand
}

// NewRNG creates a deterministic RNG using the provided seed.
func NewRNG(seed int64) *RNG {
	return &RNG{r: randv2.New(randv2.NewPCG(uint64(seed), 0))}
}

// IntN returns a random int in [0, n). It returns 0 when n <= 0.
func (r *RNG) IntN(n int) int {
	if n <= 0 {
		return 0
	}
	return r.r.IntN(n)
}

// Entropy source names reported by EntropySeed.
const (
	EntropySystem = "crypto/rand"
	EntropyClock  = "time"
)

// EntropySeed draws a 32-bit seed from src, falling back to the wall clock
// when src is nil or cannot supply four bytes. The second result names the
// source that was used.
func EntropySeed(src io.Reader) (uint32, string) {
	if src != nil {
		var buf [4]byte
		if _, err := io.ReadFull(src, buf[:]); err == nil {
			return binary.LittleEndian.Uint32(buf[:]), EntropySystem
		}
	}
	return uint32(time.Now().Unix()), EntropyClock
}

// SystemSeed is EntropySeed backed by the operating system's entropy pool.
func SystemSeed() (uint32, string) {
	return EntropySeed(rand.Reader)
}
