package ubip39

import (
	"crypto/sha512"
	"encoding/hex"

	"golang.org/x/crypto/pbkdf2"
	"golang.org/x/text/unicode/norm"
)

// MnemonicToSeed derives the 64-byte wallet seed with PBKDF2-HMAC-SHA512
// over the NFKD form of mnemonic, salt "mnemonic" and 2048 iterations.
// The mnemonic is not validated; any text yields a seed.
func MnemonicToSeed(mnemonic string) []byte {
	return MnemonicToSeedWithPassphrase(mnemonic, "")
}

// MnemonicToSeedHex is MnemonicToSeed as 128 lower-case hex characters.
func MnemonicToSeedHex(mnemonic string) string {
	seed := MnemonicToSeed(mnemonic)
	defer clear(seed)
	return hex.EncodeToString(seed)
}

// MnemonicToSeedWithPassphrase uses "mnemonic" followed by the NFKD form of
// passphrase as the salt. An empty passphrase gives MnemonicToSeed.
func MnemonicToSeedWithPassphrase(mnemonic, passphrase string) []byte {
	password := []byte(norm.NFKD.String(mnemonic))
	defer clear(password)
	salt := []byte(seedSalt + norm.NFKD.String(passphrase))
	return pbkdf2.Key(password, salt, seedIterations, SeedSize, sha512.New)
}

// NewSeedWithErrorChecking validates mnemonic against wordList before
// deriving the seed.
func NewSeedWithErrorChecking(mnemonic, passphrase string, wordList ...*WordList) ([]byte, error) {
	entropy, err := MnemonicToEntropy(mnemonic, wordList...)
	if err != nil {
		return nil, err
	}
	clear(entropy)
	return MnemonicToSeedWithPassphrase(mnemonic, passphrase), nil
}
