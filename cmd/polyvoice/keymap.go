// keymap.go - Computer-keyboard piano layout

/*
 ██▓ ███▄    █ ▄▄▄█████▓ █    ██  ██▓▄▄▄█████▓ ██▓ ▒█████   ███▄    █    ▓█████  ███▄    █   ▄████  ██▓ ███▄    █ ▓█████
▓██▒ ██ ▀█   █ ▓  ██▒ ▓▒ ██  ▓██▒▓██▒▓  ██▒ ▓▒▓██▒▒██▒  ██▒ ██ ▀█   █    ▓█   ▀  ██ ▀█   █  ██▒ ▀█▒▓██▒ ██ ▀█   █ ▓█   ▀
▒██▒▓██  ▀█ ██▒▒ ▓██░ ▒░▓██  ▒██░▒██▒▒ ▓██░ ▒░▒██▒▒██░  ██▒▓██  ▀█ ██▒   ▒███   ▓██  ▀█ ██▒▒██░▄▄▄░▒██▒▓██  ▀█ ██▒▒███
░██░▓██▒  ▐▌██▒░ ▓██▓ ░ ▓▓█  ░██░░██░░ ▓██▓ ░ ░██░▒██   ██░▓██▒  ▐▌██▒   ▒▓█  ▄ ▓██▒  ▐▌██▒░▓█  ██▓░██░▓██▒  ▐▌██▒▒▓█  ▄
░██░▒██░   ▓██░  ▒██▒ ░ ▒▒█████▓ ░██░  ▒██▒ ░ ░██░░ ████▓▒░▒██░   ▓██░   ░▒████▒▒██░   ▓██░░▒▓███▀▒░██░▒██░   ▓██░░▒████▒
░▓  ░ ▒░   ▒ ▒   ▒ ░░   ░▒▓▒ ▒ ▒ ░▓    ▒ ░░   ░▓  ░ ▒░▒░▒░ ░ ▒░   ▒ ▒    ░░ ▒░ ░░ ▒░   ▒ ▒  ░▒   ▒ ░▓  ░ ▒░   ▒ ▒ ░░ ▒░ ░
 ▒ ░░ ░░   ░ ▒░    ░    ░░▒░ ░ ░  ▒ ░    ░     ▒ ░  ░ ▒ ▒░ ░ ░░   ░ ▒░    ░ ░  ░░ ░░   ░ ▒░  ░   ░  ▒ ░░ ░░   ░ ▒░ ░ ░  ░
 ▒ ░   ░   ░ ░   ░       ░░░ ░ ░  ▒ ░  ░       ▒ ░░ ░ ░ ▒     ░   ░ ░       ░      ░   ░ ░ ░ ░   ░  ▒ ░   ░   ░ ░    ░
 ░           ░             ░      ░            ░      ░ ░           ░       ░  ░         ░       ░  ░           ░    ░  ░

(c) 2024 - 2026 Zayn Otley
https://github.com/IntuitionAmiga/IntuitionEngine
License: GPLv3 or later
*/

package main

import "strings"

// pianoKeys lays two rows of the keyboard out as a piano, lowest key first.
const pianoKeys = "awsedftgyhujkolp;'"

type keyAction int

const (
	keyNone keyAction = iota
	keyNote
	keyOctave
	keyModWheel
	keyQuit
)

// keyMap turns raw key bytes into synth actions.
type keyMap struct {
	octave   int // MIDI octave of the 'a' key, C4 = 60 at 5
	modWheel float32
}

func newKeyMap() *keyMap {
	return &keyMap{octave: 5}
}

// Press decodes one key. For keyNote the note number is returned.
func (k *keyMap) Press(b byte) (keyAction, int) {
	if i := strings.IndexByte(pianoKeys, b); i >= 0 {
		return keyNote, min(k.octave*12+i, 127)
	}
	switch b {
	case 'z':
		k.octave = max(k.octave-1, 0)
		return keyOctave, k.octave
	case 'x':
		k.octave = min(k.octave+1, 9)
		return keyOctave, k.octave
	case 'c':
		k.modWheel = max(k.modWheel-0.125, 0)
		return keyModWheel, 0
	case 'v':
		k.modWheel = min(k.modWheel+0.125, 1)
		return keyModWheel, 0
	case 'q', 0x03, 0x1B:
		return keyQuit, 0
	}
	return keyNone, 0
}
