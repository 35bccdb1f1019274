package ubip39

import (
	"crypto/rand"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tyler-smith/go-bip39"
	"github.com/tyler-smith/go-bip39/wordlists"
)

func TestInteropWithGoBIP39(t *testing.T) {
	for _, bits := range []int{128, 160, 192, 224, 256} {
		entropy := make([]byte, bits/8)
		_, err := rand.Read(entropy)
		require.NoError(t, err)

		want, err := bip39.NewMnemonic(entropy)
		require.NoError(t, err)
		got, err := EntropyToMnemonic(entropy)
		require.NoError(t, err)
		assert.Equal(t, want, got)

		theirs, err := bip39.EntropyFromMnemonic(got)
		require.NoError(t, err)
		ours, err := MnemonicToEntropy(want)
		require.NoError(t, err)
		assert.Equal(t, theirs, ours)

		assert.Equal(t, bip39.NewSeed(got, "TREZOR"), MnemonicToSeedWithPassphrase(got, "TREZOR"))
	}

	mnemonic, err := GenerateMnemonic(t.Context(), 192, nil, nil)
	require.NoError(t, err)
	assert.True(t, bip39.IsMnemonicValid(mnemonic))
}

func TestInteropWithGoBIP39Japanese(t *testing.T) {
	bip39.SetWordList(wordlists.Japanese)
	defer bip39.SetWordList(wordlists.English)

	for _, bits := range []int{128, 256} {
		entropy := make([]byte, bits/8)
		_, err := rand.Read(entropy)
		require.NoError(t, err)

		// go-bip39 joins Japanese words with ASCII spaces
		theirs, err := bip39.NewMnemonic(entropy)
		require.NoError(t, err)
		assert.True(t, ValidateMnemonic(theirs, Japanese()))
		decoded, err := MnemonicToEntropy(theirs, Japanese())
		require.NoError(t, err)
		assert.Equal(t, entropy, decoded)

		ours, err := EntropyToMnemonic(entropy, Japanese())
		require.NoError(t, err)
		assert.Equal(t, theirs, strings.ReplaceAll(ours, "\u3000", " "))
		assert.Equal(t, MnemonicToSeed(theirs), MnemonicToSeed(ours))
	}
}
