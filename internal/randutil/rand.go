// Package randutil centralises how seeded random generators are derived so
// that a single int64 seed reproduces a full run.
package randutil

import (
	"encoding/binary"
	rand "math/rand/v2"
)

// New returns a *rand.Rand seeded deterministically from seed. The 32-byte
// ChaCha8 key is expanded from the seed with fixed masks so that nearby
// seeds still produce unrelated streams.
func New(seed int64) *rand.Rand {
	u := uint64(seed)
	var key [32]byte
	binary.LittleEndian.PutUint64(key[0:8], u)
	binary.LittleEndian.PutUint64(key[8:16], u^0xa5a5a5a5a5a5a5a5)
	binary.LittleEndian.PutUint64(key[16:24], ^u)
	binary.LittleEndian.PutUint64(key[24:32], u*0x9e3779b97f4a7c15)
	return rand.New(rand.NewChaCha8(key))
}
