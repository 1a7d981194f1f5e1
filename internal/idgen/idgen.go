// Package idgen produces the short prefixed identifiers used for all
// console entities: a kind prefix followed by six random base-36
// characters, e.g. "u3k9x0a" or "td8h2mq1".
//
// IDs are opaque and unique only by convention; at the target volumes
// (hundreds to low thousands of live records per kind) the collision
// probability is negligible, and the store rejects a colliding insert
// rather than overwriting (models.ErrDuplicateID).
package idgen

import "math/rand/v2"

const (
	alphabet     = "0123456789abcdefghijklmnopqrstuvwxyz"
	suffixLength = 6
)

// Entity kind prefixes.
const (
	PrefixUnit        = "u"
	PrefixIncident    = "i"
	PrefixAlert       = "a"
	PrefixCamera      = "c"
	PrefixSignal      = "s"
	PrefixTrafficData = "td"
)

// New returns a fresh identifier for the given kind prefix.
func New(prefix string) string {
	buf := make([]byte, len(prefix)+suffixLength)
	copy(buf, prefix)
	for i := len(prefix); i < len(buf); i++ {
		buf[i] = alphabet[rand.IntN(len(alphabet))]
	}
	return string(buf)
}
