package ubip39

import (
	"crypto/subtle"
	"encoding/hex"
	"fmt"
	"strings"

	"go.uber.org/zap"
	"golang.org/x/text/unicode/norm"

	"github.com/15ho/bip39-utils-go/internal/bitcodec"
	"github.com/15ho/bip39-utils-go/internal/zlog"
)

// EntropyToMnemonic encodes 16, 20, 24, 28 or 32 bytes of entropy as a
// mnemonic of 12 to 24 words taken from wordList (English if omitted).
func EntropyToMnemonic(entropy []byte, wordList ...*WordList) (string, error) {
	if !validEntropyBits(len(entropy) * 8) {
		return "", fmt.Errorf("%w: got %d bits", ErrInvalidEntropyLength, len(entropy)*8)
	}
	wl, err := pickWordList(wordList)
	if err != nil {
		return "", err
	}

	bits := bitcodec.BytesToBits(entropy) + ChecksumBits(entropy)
	chunks := bitcodec.Chunks(bits, bitsPerWord)
	words := make([]string, len(chunks))
	for i, chunk := range chunks {
		idx, err := bitcodec.Uint(chunk)
		if err != nil {
			return "", err
		}
		words[i] = wl.words[idx]
	}
	return strings.Join(words, wl.sep), nil
}

// EntropyHexToMnemonic is EntropyToMnemonic for hex encoded entropy. A 0x
// prefix is accepted.
func EntropyHexToMnemonic(entropyHex string, wordList ...*WordList) (string, error) {
	entropy, err := hex.DecodeString(strings.TrimPrefix(entropyHex, "0x"))
	if err != nil {
		return "", fmt.Errorf("%w: decode hex: %v", ErrInvalidEntropy, err)
	}
	defer clear(entropy)
	return EntropyToMnemonic(entropy, wordList...)
}

// MnemonicToEntropy decodes a mnemonic back to its entropy and verifies the
// checksum. It fails with ErrInvalidMnemonic when the word count is not 12,
// 15, 18, 21 or 24 or a word is not in wordList, and with ErrInvalidChecksum
// when the checksum bits do not match.
//
// The mnemonic is NFKD-normalized before it is split, so NFC and NFKD
// spellings decode alike and a U+3000 separated phrase may use plain spaces.
func MnemonicToEntropy(mnemonic string, wordList ...*WordList) ([]byte, error) {
	wl, err := pickWordList(wordList)
	if err != nil {
		return nil, err
	}

	words := strings.Split(norm.NFKD.String(mnemonic), wl.splitSep)
	if !validWordCount(len(words)) {
		return nil, fmt.Errorf("%w: got %d words", ErrInvalidMnemonic, len(words))
	}

	var sb strings.Builder
	sb.Grow(len(words) * bitsPerWord)
	for i, w := range words {
		idx, ok := wl.index[w]
		if !ok {
			return nil, fmt.Errorf("%w: word %d is not in the word list", ErrInvalidMnemonic, i+1)
		}
		sb.WriteString(bitcodec.FromUint(uint64(idx), bitsPerWord))
	}
	bits := sb.String()

	// CS = ENT/32 and ENT+CS is a multiple of 11, so ENT = floor(len/33)*32.
	divider := len(bits) / 33 * 32
	entropyBits, checksum := bits[:divider], bits[divider:]

	entropy, err := bitcodec.BitsToBytes(entropyBits)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidMnemonic, err)
	}
	if subtle.ConstantTimeCompare([]byte(ChecksumBits(entropy)), []byte(checksum)) != 1 {
		clear(entropy)
		return nil, ErrInvalidChecksum
	}
	return entropy, nil
}

// MnemonicToEntropyHex is MnemonicToEntropy returning lower-case hex.
func MnemonicToEntropyHex(mnemonic string, wordList ...*WordList) (string, error) {
	entropy, err := MnemonicToEntropy(mnemonic, wordList...)
	if err != nil {
		return "", err
	}
	defer clear(entropy)
	return hex.EncodeToString(entropy), nil
}

// ValidateMnemonic reports whether mnemonic decodes against wordList with a
// matching checksum.
func ValidateMnemonic(mnemonic string, wordList ...*WordList) bool {
	entropy, err := MnemonicToEntropy(mnemonic, wordList...)
	if err != nil {
		zlog.Named("validator").Debug("mnemonic rejected", zap.Error(err))
		return false
	}
	clear(entropy)
	return true
}
