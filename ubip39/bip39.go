package ubip39

// BIP-0039: https://github.com/bitcoin/bips/blob/master/bip-0039.mediawiki
// This BIP describes the implementation of a mnemonic code or mnemonic sentence -- a group of easy to remember words -- for the generation of deterministic wallets.
// It consists of two parts: generating the mnemonic and converting it into a binary seed. This seed can be later used to generate deterministic wallets using BIP-0032 or similar methods.

import "errors"

const (
	// DefaultStrength is the entropy size of a 12-word mnemonic.
	DefaultStrength = 128

	MinEntropyBits = 128
	MaxEntropyBits = 256

	// SeedSize is the length of a derived seed in bytes (512 bits).
	SeedSize = 64

	bitsPerWord    = 11
	seedIterations = 2048
	seedSalt       = "mnemonic"
)

var (
	// ErrInvalidMnemonic is returned when the word count is wrong or a word
	// is missing from the word list.
	ErrInvalidMnemonic = errors.New("invalid mnemonic")
	// ErrInvalidChecksum is returned when the checksum bits carried by the
	// last word do not match the decoded entropy.
	ErrInvalidChecksum      = errors.New("invalid mnemonic checksum")
	ErrInvalidEntropyLength = errors.New("entropy length must be [128, 256] bits and a multiple of 32")
	ErrInvalidEntropy       = errors.New("invalid entropy")
	ErrInvalidStrength      = errors.New("strength must be [128, 256] bits and a multiple of 32")
	ErrInvalidWordList      = errors.New("invalid word list")
	ErrUnknownLanguage      = errors.New("unknown word list language")
)

func validEntropyBits(bits int) bool {
	return bits%32 == 0 && bits >= MinEntropyBits && bits <= MaxEntropyBits
}

func validWordCount(n int) bool {
	return n%3 == 0 && n >= MinEntropyBits/32*3 && n <= MaxEntropyBits/32*3
}
