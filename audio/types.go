package audio

import (
	"errors"
)

// SoundType represents different sound effects
type SoundType int

const (
	SoundThump   SoundType = iota // Needle drop
	SoundScratch                  // Needle crossing a ring while dragging
	SoundCrackle                  // Continuous vinyl surface noise
	soundTypeCount
)

var soundNames = [soundTypeCount]string{"thump", "scratch", "crackle"}

func (s SoundType) String() string {
	if s < 0 || s >= soundTypeCount {
		return "unknown"
	}
	return soundNames[s]
}

// Sentinel errors
var (
	ErrAudioUnavailable = errors.New("audio output unavailable")
)
