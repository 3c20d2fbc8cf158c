// internal/dictionary/dictionary.go
package dictionary

import (
	"bufio"
	"embed"
	"errors"
	"os"
	"strings"
	"sync"
)

// The process-wide dictionary is a read-only word oracle: loaded once at
// startup, never mutated afterwards, so concurrent lookups need no locking.

//go:embed words_default.txt
var embedded embed.FS

// Set is an immutable word-validity set.
type Set struct {
	words map[string]struct{}
}

// NewSet builds a Set from a word list. Words are stored in canonical
// uppercase form.
func NewSet(words []string) *Set {
	s := &Set{words: make(map[string]struct{}, len(words))}
	for _, w := range words {
		if n := Normalize(w); n != "" {
			s.words[n] = struct{}{}
		}
	}
	return s
}

// Contains reports whether word is a valid placement. The lookup is done on
// the canonical uppercase form.
func (s *Set) Contains(word string) bool {
	_, ok := s.words[Normalize(word)]
	return ok
}

// Len returns the number of loaded words.
func (s *Set) Len() int {
	return len(s.words)
}

// Normalize maps a submitted word to its canonical dictionary form.
func Normalize(word string) string {
	return strings.ToUpper(strings.TrimSpace(word))
}

var (
	initOnce   sync.Once
	defaultSet *Set
	initErr    error
)

// Init loads the process-wide word list exactly once. If path is empty, a
// small embedded default list is used so the server can run without
// external files.
func Init(path string) error {
	initOnce.Do(func() {
		var words []string
		if path != "" {
			words, initErr = readWordFile(path)
			if initErr != nil {
				return
			}
		} else {
			data, err := embedded.ReadFile("words_default.txt")
			if err != nil {
				initErr = err
				return
			}
			words = strings.Split(string(data), "\n")
		}
		defaultSet = NewSet(words)
		if defaultSet.Len() == 0 {
			initErr = errors.New("dictionary: word list is empty")
		}
	})
	return initErr
}

// Default returns the process-wide set loaded by Init, or nil before Init.
func Default() *Set {
	return defaultSet
}

func readWordFile(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var out []string
	sc := bufio.NewScanner(f)
	for sc.Scan() {
		out = append(out, sc.Text())
	}
	return out, sc.Err()
}
