package models

import (
	"fmt"
	"time"
)

// GameMode selects the wall-clock duration of a match.
type GameMode string

const (
	ModeFast2Min       GameMode = "2_min"
	ModeFast5Min       GameMode = "5_min"
	ModeExtended12Hour GameMode = "12_hour"
	ModeExtended24Hour GameMode = "24_hour"
)

var modeDurations = map[GameMode]time.Duration{
	ModeFast2Min:       2 * time.Minute,
	ModeFast5Min:       5 * time.Minute,
	ModeExtended12Hour: 12 * time.Hour,
	ModeExtended24Hour: 24 * time.Hour,
}

// ParseGameMode validates a client-supplied mode string. Unknown modes are a
// configuration error and must be rejected before any ticket is created.
func ParseGameMode(s string) (GameMode, error) {
	m := GameMode(s)
	if _, ok := modeDurations[m]; !ok {
		return "", fmt.Errorf("unknown game mode %q", s)
	}
	return m, nil
}

// Duration returns the match duration for the mode.
func (m GameMode) Duration() time.Duration {
	return modeDurations[m]
}
