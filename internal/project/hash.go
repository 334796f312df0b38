package project

import (
	"crypto/sha256"
	"encoding/hex"
)

// Digest - 256-битный sha256, того же вида что source.File.Hash.
type Digest [32]byte

// Sum hashes raw bytes, e.g. a module dump.
func Sum(data []byte) Digest {
	return Digest(sha256.Sum256(data))
}

func (d Digest) String() string {
	return hex.EncodeToString(d[:])
}

// Combine folds a dump digest with the digests it depends on (check settings,
// the source file): H(content || part1 || part2 ...). Parts are order
// sensitive; callers pass settings first, then the source.
func Combine(content Digest, parts ...Digest) Digest {
	h := sha256.New()
	_, _ = h.Write(content[:])
	for _, p := range parts {
		_, _ = h.Write(p[:])
	}
	var out Digest
	copy(out[:], h.Sum(nil))
	return out
}
