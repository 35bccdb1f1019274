package ubip39

import (
	"crypto/sha256"

	"github.com/15ho/bip39-utils-go/internal/bitcodec"
)

// ChecksumBits returns the first len(entropy)*8/32 bits of SHA-256(entropy)
// as a string of binary digits.
func ChecksumBits(entropy []byte) string {
	digest := sha256.Sum256(entropy)
	cs := min(len(entropy)*8/32, sha256.Size*8)
	return bitcodec.BytesToBits(digest[:])[:cs]
}
