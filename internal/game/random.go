package game

import (
	"fmt"
	"hash/fnv"
	"math/rand/v2"
)

func seededRNG(seed int64) *rand.Rand {
	// Non-cryptographic PRNG is intentional for deterministic simulation behavior.
	// #nosec G404
	return rand.New(rand.NewPCG(seedWord(seed, "a"), seedWord(seed, "b")))
}

// seededIDSource feeds uuid generation so a seed reproduces animal ids too.
func seededIDSource(seed int64) *rand.ChaCha8 {
	var key [32]byte
	for i := 0; i < 4; i++ {
		w := seedWord(seed, fmt.Sprintf("id%d", i))
		for j := 0; j < 8; j++ {
			key[i*8+j] = byte(w >> (8 * j))
		}
	}
	return rand.NewChaCha8(key)
}

func seedWord(seed int64, salt string) uint64 {
	h := fnv.New64a()
	_, _ = h.Write([]byte(fmt.Sprintf("%d:%s", seed, salt)))
	return h.Sum64()
}

// uniformRange draws from [lo, hi).
func uniformRange(rng *rand.Rand, lo, hi float64) float64 {
	return lo + rng.Float64()*(hi-lo)
}
