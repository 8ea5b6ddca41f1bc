// Package matchid generates short match identifiers that sort roughly by
// creation time.
package matchid

import "time"

// Crockford's base32 alphabet, lowercase
const alphabet = "0123456789abcdefghjkmnpqrstvwxyz"

// RandSource is the subset of math/rand/v2 Rand used for ID generation,
// kept as an interface so tests can supply deterministic tails.
type RandSource interface {
	IntN(n int) int
}

// New returns a 16-character identifier: 8 characters of millisecond
// timestamp followed by 8 random characters. Uniqueness within one process
// only needs the random tail; the timestamp prefix keeps logs and history
// files readable in creation order.
func New(rs RandSource) string {
	return at(time.Now(), rs)
}

func at(t time.Time, rs RandSource) string {
	ms := uint64(t.UnixMilli())
	var b [16]byte
	for i := 7; i >= 0; i-- {
		b[i] = alphabet[ms&31]
		ms >>= 5
	}
	for i := 8; i < 16; i++ {
		b[i] = alphabet[rs.IntN(len(alphabet))]
	}
	return string(b[:])
}
