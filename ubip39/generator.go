package ubip39

import (
	"context"
	"crypto/rand"
	"fmt"

	"go.uber.org/zap"

	"github.com/15ho/bip39-utils-go/internal/zlog"
)

// RandomSource returns n random bytes. Implementations must be backed by a
// cryptographically secure generator.
type RandomSource func(ctx context.Context, n int) ([]byte, error)

// CryptoRandom reads from the operating system CSPRNG.
func CryptoRandom(ctx context.Context, n int) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	b := make([]byte, n)
	if _, err := rand.Read(b); err != nil {
		return nil, fmt.Errorf("read random bytes: %w", err)
	}
	return b, nil
}

// GenerateMnemonic draws strength/8 bytes from random and encodes them with
// wordList. A zero strength means DefaultStrength, a nil random means
// CryptoRandom and a nil wordList means English. An error from random is
// returned unchanged and is not retried.
func GenerateMnemonic(ctx context.Context, strength int, random RandomSource, wordList *WordList) (string, error) {
	if strength == 0 {
		strength = DefaultStrength
	}
	if !validEntropyBits(strength) {
		return "", fmt.Errorf("%w: got %d", ErrInvalidStrength, strength)
	}
	if random == nil {
		random = CryptoRandom
	}
	log := zlog.Named("generator")

	entropy, err := random(ctx, strength/8)
	if err != nil {
		log.Warn("random source failed", zap.Int("strength", strength), zap.Error(err))
		return "", err
	}
	defer clear(entropy)

	mnemonic, err := EntropyToMnemonic(entropy, wordList)
	if err != nil {
		return "", err
	}
	log.Debug("generate mnemonic", zap.Int("strength", strength), zap.Int("words", strength/32*3))
	return mnemonic, nil
}

// MnemonicGenerator creates mnemonics in one language.
type MnemonicGenerator struct {
	lang     string
	wordList *WordList
	random   RandomSource
}

// GeneratorOption configures NewMnemonicGenerator.
type GeneratorOption func(*MnemonicGenerator)

// WithRandomSource replaces CryptoRandom.
func WithRandomSource(random RandomSource) GeneratorOption {
	return func(mg *MnemonicGenerator) {
		if random != nil {
			mg.random = random
		}
	}
}

// WithWordList replaces the bundled list of the generator's language.
func WithWordList(wl *WordList) GeneratorOption {
	return func(mg *MnemonicGenerator) {
		if wl != nil {
			mg.wordList = wl
		}
	}
}

// NewMnemonicGenerator returns a generator for one of Languages().
func NewMnemonicGenerator(lang string, opts ...GeneratorOption) (*MnemonicGenerator, error) {
	wl, err := WordListByLanguage(lang)
	if err != nil {
		return nil, err
	}
	mg := &MnemonicGenerator{
		lang:     lang,
		wordList: wl,
		random:   CryptoRandom,
	}
	for _, opt := range opts {
		opt(mg)
	}
	return mg, nil
}

// Generate returns a new mnemonic. strength defaults to 128 bits (12 words).
func (mg *MnemonicGenerator) Generate(strength ...int) (string, error) {
	return mg.GenerateContext(context.Background(), strength...)
}

// GenerateContext is Generate with a context passed to the random source.
func (mg *MnemonicGenerator) GenerateContext(ctx context.Context, strength ...int) (string, error) {
	s := DefaultStrength
	if len(strength) > 0 {
		s = strength[0]
	}
	return GenerateMnemonic(ctx, s, mg.random, mg.wordList)
}

// Language returns the key the generator was created with.
func (mg *MnemonicGenerator) Language() string {
	return mg.lang
}

// WordList returns the list mnemonics are drawn from.
func (mg *MnemonicGenerator) WordList() *WordList {
	return mg.wordList
}
