package utils

import (
	"crypto/sha256"
	"encoding/hex"
	"hash"
	"sync"
)

// digestPool is a package-level pool of reusable SHA-256 hash instances.
// Pooling avoids repeated allocations of hash.Hash values on the hot
// cache-key derivation path.
var digestPool = sync.Pool{
	New: func() any {
		return sha256.New()
	},
}

// Digest computes a SHA-256 digest over the concatenation of the given
// segments using a hasher pulled from the pool.
//
// Segment boundaries are not encoded: callers that need unambiguous keys
// must include fixed-width or delimited segments themselves.
func Digest(segments ...[]byte) []byte {
	h := digestPool.Get().(hash.Hash)
	h.Reset()

	for _, s := range segments {
		h.Write(s)
	}
	sum := h.Sum(nil)

	h.Reset()
	digestPool.Put(h)

	return sum
}

// DigestHex computes a SHA-256 digest over the given segments and returns
// the result as a hex-encoded string. See [Digest] for the concatenation
// semantics.
func DigestHex(segments ...[]byte) string {
	return hex.EncodeToString(Digest(segments...))
}
