// internal/dictionary/dictionary_test.go
package dictionary

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSetNormalizesOnBuildAndLookup(t *testing.T) {
	s := NewSet([]string{"game", " Word ", "MINE", ""})

	assert.Equal(t, 3, s.Len())
	assert.True(t, s.Contains("GAME"))
	assert.True(t, s.Contains("game"))
	assert.True(t, s.Contains("  word "))
	assert.True(t, s.Contains("Mine"))
	assert.False(t, s.Contains("ZZZZ"))
	assert.False(t, s.Contains(""))
}

func TestNormalize(t *testing.T) {
	assert.Equal(t, "GAME", Normalize(" game "))
	assert.Equal(t, "", Normalize("   "))
}

func TestReadWordFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "words.txt")
	require.NoError(t, os.WriteFile(path, []byte("alpha\nbeta\n\ngamma\n"), 0o644))

	words, err := readWordFile(path)
	require.NoError(t, err)
	assert.Equal(t, []string{"alpha", "beta", "", "gamma"}, words)

	s := NewSet(words)
	assert.Equal(t, 3, s.Len(), "blank lines are dropped")
	assert.True(t, s.Contains("BETA"))
}

func TestEmbeddedDefaultListIsUsable(t *testing.T) {
	data, err := embedded.ReadFile("words_default.txt")
	require.NoError(t, err)
	require.NotEmpty(t, data)
}
