package ubip39

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"slices"
	"sort"
	"strings"
	"sync"

	"github.com/tyler-smith/go-bip39/wordlists"
	"go.uber.org/zap"
	"golang.org/x/text/unicode/norm"

	"github.com/15ho/bip39-utils-go/internal/zlog"
)

// WordListSize is the number of words in every BIP-39 word list.
const WordListSize = 2048

const (
	spaceSeparator            = " "
	ideographicSpaceSeparator = "\u3000"
)

// WordList is an immutable BIP-39 dictionary. A word's position in the list
// is its 11-bit code. It is safe for concurrent use.
//
// Words are kept in NFKD form. A WordList must be built with NewWordList or
// LoadWordList; the zero value is rejected with ErrInvalidWordList.
type WordList struct {
	words []string
	index map[string]int
	sep   string
	// sep after NFKD, used to split normalized mnemonics
	splitSep string
}

// NewWordList builds a word list from exactly 2048 unique, non-empty words.
// The optional sep joins mnemonic words and defaults to a single space.
func NewWordList(words []string, sep ...string) (*WordList, error) {
	if len(words) != WordListSize {
		return nil, fmt.Errorf("%w: got %d words, want %d", ErrInvalidWordList, len(words), WordListSize)
	}
	wl := &WordList{
		words: make([]string, len(words)),
		index: make(map[string]int, WordListSize),
		sep:   spaceSeparator,
	}
	if len(sep) > 0 && sep[0] != "" {
		wl.sep = sep[0]
	}
	wl.splitSep = norm.NFKD.String(wl.sep)
	for i, w := range words {
		if w == "" {
			return nil, fmt.Errorf("%w: empty word at index %d", ErrInvalidWordList, i)
		}
		w = norm.NFKD.String(w)
		if strings.Contains(w, wl.sep) || strings.Contains(w, wl.splitSep) {
			return nil, fmt.Errorf("%w: word at index %d contains the separator", ErrInvalidWordList, i)
		}
		wl.words[i] = w
		if j, ok := wl.index[w]; ok {
			return nil, fmt.Errorf("%w: duplicate word at index %d and %d", ErrInvalidWordList, j, i)
		}
		wl.index[w] = i
	}
	return wl, nil
}

// LoadWordList reads a word list file: either one word per line or a JSON
// array of strings. Order is significant.
func LoadWordList(r io.Reader, sep ...string) (*WordList, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("read word list: %w", err)
	}
	data = bytes.TrimPrefix(data, []byte("\xef\xbb\xbf"))
	data = bytes.TrimSpace(data)

	var words []string
	if bytes.HasPrefix(data, []byte("[")) {
		if err = json.Unmarshal(data, &words); err != nil {
			return nil, fmt.Errorf("%w: decode json: %v", ErrInvalidWordList, err)
		}
	} else if len(data) > 0 {
		words = strings.Split(string(data), "\n")
		for i := range words {
			words[i] = strings.TrimRight(words[i], "\r")
		}
	}

	wl, err := NewWordList(words, sep...)
	if err != nil {
		return nil, err
	}
	zlog.Named("wordlist").Debug("load word list", zap.Int("words", wl.Len()), zap.String("separator", wl.sep))
	return wl, nil
}

// Len returns the number of words, always 2048.
func (wl *WordList) Len() int {
	return len(wl.words)
}

// Word returns the word for an 11-bit code.
func (wl *WordList) Word(i int) (string, bool) {
	if i < 0 || i >= len(wl.words) {
		return "", false
	}
	return wl.words[i], true
}

// Index returns the 11-bit code of word. Lookup is case-sensitive and
// ignores the Unicode normal form of word.
func (wl *WordList) Index(word string) (int, bool) {
	i, ok := wl.index[word]
	if !ok {
		i, ok = wl.index[norm.NFKD.String(word)]
	}
	return i, ok
}

// Words returns a copy of the list.
func (wl *WordList) Words() []string {
	return slices.Clone(wl.words)
}

// Separator returns the string placed between mnemonic words.
func (wl *WordList) Separator() string {
	return wl.sep
}

func bundledWordList(lang string, words []string, sep string) func() *WordList {
	return sync.OnceValue(func() *WordList {
		wl, err := NewWordList(words, sep)
		if err != nil {
			panic(fmt.Sprintf("bundled %s word list: %v", lang, err))
		}
		zlog.Named("wordlist").Debug("init bundled word list", zap.String("lang", lang))
		return wl
	})
}

var (
	english            = bundledWordList("english", wordlists.English, spaceSeparator)
	japanese           = bundledWordList("japanese", wordlists.Japanese, ideographicSpaceSeparator)
	chineseSimplified  = bundledWordList("chinese_simplified", wordlists.ChineseSimplified, spaceSeparator)
	chineseTraditional = bundledWordList("chinese_traditional", wordlists.ChineseTraditional, spaceSeparator)
	czech              = bundledWordList("czech", wordlists.Czech, spaceSeparator)
	french             = bundledWordList("french", wordlists.French, spaceSeparator)
	italian            = bundledWordList("italian", wordlists.Italian, spaceSeparator)
	korean             = bundledWordList("korean", wordlists.Korean, spaceSeparator)
	spanish            = bundledWordList("spanish", wordlists.Spanish, spaceSeparator)

	languages = map[string]func() *WordList{
		"english":             english,
		"japanese":            japanese,
		"chinese_simplified":  chineseSimplified,
		"chinese_traditional": chineseTraditional,
		"czech":               czech,
		"french":              french,
		"italian":             italian,
		"korean":              korean,
		"spanish":             spanish,
	}
)

// English returns the default word list.
func English() *WordList { return english() }

// Japanese returns the Japanese list; its mnemonics are joined with U+3000.
func Japanese() *WordList { return japanese() }

// ChineseSimplified returns the simplified Chinese list.
func ChineseSimplified() *WordList { return chineseSimplified() }

// ChineseTraditional returns the traditional Chinese list.
func ChineseTraditional() *WordList { return chineseTraditional() }

// Czech returns the Czech list.
func Czech() *WordList { return czech() }

// French returns the French list.
func French() *WordList { return french() }

// Italian returns the Italian list.
func Italian() *WordList { return italian() }

// Korean returns the Korean list.
func Korean() *WordList { return korean() }

// Spanish returns the Spanish list.
func Spanish() *WordList { return spanish() }

// WordListByLanguage returns a bundled word list by its lower-case key,
// e.g. "english" or "chinese_simplified".
func WordListByLanguage(lang string) (*WordList, error) {
	get, ok := languages[lang]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownLanguage, lang)
	}
	return get(), nil
}

// Languages lists the keys accepted by WordListByLanguage.
func Languages() []string {
	keys := make([]string, 0, len(languages))
	for k := range languages {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

func pickWordList(wordList []*WordList) (*WordList, error) {
	if len(wordList) == 0 || wordList[0] == nil {
		return English(), nil
	}
	wl := wordList[0]
	if len(wl.words) != WordListSize || len(wl.index) != WordListSize || wl.sep == "" {
		return nil, fmt.Errorf("%w: not built by NewWordList", ErrInvalidWordList)
	}
	return wl, nil
}
