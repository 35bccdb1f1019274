package bitcodec

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBytesToBits(t *testing.T) {
	assert.Equal(t, "", BytesToBits(nil))
	assert.Equal(t, "00000000", BytesToBits([]byte{0x00}))
	assert.Equal(t, "0000000111111111", BytesToBits([]byte{0x01, 0xff}))
	assert.Equal(t, "1000000001111111", BytesToBits([]byte{0x80, 0x7f}))
	assert.Len(t, BytesToBits(make([]byte, 32)), 256)
}

func TestChunks(t *testing.T) {
	t.Run("exact", func(t *testing.T) {
		assert.Equal(t, []string{"000", "111", "010"}, Chunks("000111010", 3))
	})
	t.Run("eleven bit words", func(t *testing.T) {
		bits := BytesToBits(make([]byte, 16)) + "0000"
		chunks := Chunks(bits, 11)
		assert.Len(t, chunks, 12)
		for _, c := range chunks {
			assert.Len(t, c, 11)
		}
	})
	t.Run("short tail", func(t *testing.T) {
		assert.Equal(t, []string{"0101", "1"}, Chunks("01011", 4))
	})
	t.Run("empty", func(t *testing.T) {
		assert.Empty(t, Chunks("", 8))
		assert.Nil(t, Chunks("0101", 0))
	})
}

func TestLeftPad(t *testing.T) {
	assert.Equal(t, "00000000101", LeftPad("101", 11))
	assert.Equal(t, "11111111111", LeftPad("11111111111", 11))
	assert.Equal(t, "110", LeftPad("110", 2))
	assert.Equal(t, "00000000", LeftPad("", 8))
}

func TestUint(t *testing.T) {
	v, err := Uint("11111111111")
	require.NoError(t, err)
	assert.Equal(t, uint64(2047), v)

	v, err = Uint(FromUint(1234, 11))
	require.NoError(t, err)
	assert.Equal(t, uint64(1234), v)

	_, err = Uint("10201")
	assert.Error(t, err)
}

func TestBitsToBytes(t *testing.T) {
	in := []byte{0x00, 0x7f, 0x80, 0xff, 0x9e}
	out, err := BitsToBytes(BytesToBits(in))
	require.NoError(t, err)
	assert.Equal(t, in, out)

	_, err = BitsToBytes("0101")
	assert.Error(t, err)
}
