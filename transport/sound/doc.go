// Package sound plays short synthesized tones for game events using beep.
//
// Food pickups chime with one note per bonus step (two, three or four
// segments of growth give one, two or three rising notes), a manual growth
// plays a soft low note and every crash ends with a falling saw buzz. Plain
// moves are silent.
//
// Player implements service.SoundPlayer.
package sound
