// SPDX-License-Identifier: EPL-2.0

package piano

import "fmt"

const (
	// BaseNote is middle C, the pitch at which the bite plays at natural
	// speed.
	BaseNote = 60

	// FirstKey and LastKey bound the keyboard, C3 through C5.
	FirstKey = 48
	LastKey  = 72
)

var noteNames = [12]string{"C", "C#", "D", "D#", "E", "F", "F#", "G", "G#", "A", "A#", "B"}

// NoteName formats a MIDI note number as a pitch name with its octave,
// e.g. "C4" for middle C or "F#3" for 54.
func NoteName(midi int) string {
	name := noteNames[((midi%12)+12)%12]
	return fmt.Sprintf("%s%d", name, midi/12-1)
}
