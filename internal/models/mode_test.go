package models

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseGameMode(t *testing.T) {
	for _, tc := range []struct {
		input string
		mode  GameMode
		want  time.Duration
	}{
		{"2_min", ModeFast2Min, 2 * time.Minute},
		{"5_min", ModeFast5Min, 5 * time.Minute},
		{"12_hour", ModeExtended12Hour, 12 * time.Hour},
		{"24_hour", ModeExtended24Hour, 24 * time.Hour},
	} {
		m, err := ParseGameMode(tc.input)
		require.NoError(t, err)
		assert.Equal(t, tc.mode, m)
		assert.Equal(t, tc.want, m.Duration())
	}
}

func TestParseGameModeRejectsUnknown(t *testing.T) {
	for _, input := range []string{"", "3_min", "5_MIN", "fast"} {
		_, err := ParseGameMode(input)
		assert.Error(t, err, "input %q", input)
	}
}

func TestSpecialTypeIsMine(t *testing.T) {
	assert.True(t, MineScoreSplit.IsMine())
	assert.True(t, MineExtraMoveJoker.IsMine())
	assert.False(t, SpecialTripleWord.IsMine())
	assert.False(t, SpecialType("").IsMine())
}
