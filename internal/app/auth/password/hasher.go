package password

import (
	"github.com/alexedwards/argon2id"
)

var argonParams = &argon2id.Params{
	Memory:      64 * 1024, // 64 MiB
	Iterations:  2,
	Parallelism: 4,
	SaltLength:  16,
	KeyLength:   32,
}

// Hasher produces self-salted argon2id digests. An optional pepper is
// appended to every plaintext before hashing; it lives in config, never in
// the database.
type Hasher struct {
	pepper string
}

func NewHasher(pepper string) *Hasher {
	return &Hasher{pepper: pepper}
}

func (h *Hasher) Hash(plaintext string) (string, error) {
	return argon2id.CreateHash(plaintext+h.pepper, argonParams)
}

// Verify reports whether plaintext matches digest. A malformed digest (for
// example from a corrupted row) yields false, never an error the caller
// could mistake for a match.
func (h *Hasher) Verify(plaintext, digest string) bool {
	ok, err := argon2id.ComparePasswordAndHash(plaintext+h.pepper, digest)
	if err != nil {
		return false
	}
	return ok
}
