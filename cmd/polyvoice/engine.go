// engine.go - Round-robin voice pool shared by playback and the keyboard

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

import (
	"fmt"
	"sync"

	"github.com/intuitionamiga/polyvoice"
)

// Engine is a small polyphonic synth built from polyvoice voices. It hides
// the numeric backend from the playback and keyboard code.
type Engine interface {
	Backend() string
	SampleRate() int
	SetPatch(p polyvoice.Patch) error
	NoteOn(note int, velocity float32)
	NoteOff(note int)
	SetModWheel(v float32)
	SetPitchBend(semitones float32)
	Render(out []float32)
	ActiveVoices() int
}

// masterGain keeps a full chord inside [-1, 1] before the output clip.
const masterGain = 0.25

// NewEngine builds an engine with the given number of voices on the named
// backend.
func NewEngine(backend string, sampleRate, voices int, patch polyvoice.Patch) (Engine, error) {
	switch backend {
	case "float":
		return newVoicePool[float32, polyvoice.Float](sampleRate, voices, patch)
	case "fixed":
		return newVoicePool[int32, polyvoice.Fixed](sampleRate, voices, patch)
	}
	return nil, fmt.Errorf("unknown backend %q (want float or fixed)", backend)
}

type voiceSlot[T polyvoice.Num, B polyvoice.Backend[T]] struct {
	voice *polyvoice.Voice[T, B]
	in    polyvoice.VoiceInput[T]
	note  int
	held  bool
	stale bool // routing cache predates the current matrix
}

type voicePool[T polyvoice.Num, B polyvoice.Backend[T]] struct {
	mu     sync.Mutex
	ctx    *polyvoice.Context[T, B]
	params polyvoice.VoiceParams[T]
	matrix polyvoice.ModMatrix[T]
	ch     polyvoice.ChannelInput[T]
	slots  []voiceSlot[T, B]
	next   int
}

func newVoicePool[T polyvoice.Num, B polyvoice.Backend[T]](sampleRate, voices int, patch polyvoice.Patch) (*voicePool[T, B], error) {
	if voices < 1 {
		return nil, fmt.Errorf("voice pool needs at least one voice, got %d", voices)
	}
	ctx, err := polyvoice.NewContext[T, B](sampleRate)
	if err != nil {
		return nil, err
	}
	vp := &voicePool[T, B]{ctx: ctx, slots: make([]voiceSlot[T, B], voices)}
	for i := range vp.slots {
		v, err := polyvoice.NewVoice[T, B](uint64(2*i+1), uint64(2*i+2))
		if err != nil {
			return nil, err
		}
		vp.slots[i].voice = v
	}
	if err := vp.SetPatch(patch); err != nil {
		return nil, err
	}
	return vp, nil
}

func (vp *voicePool[T, B]) Backend() string {
	return vp.ctx.Backend().Name()
}

func (vp *voicePool[T, B]) SampleRate() int { return vp.ctx.SampleRate() }

func (vp *voicePool[T, B]) SetPatch(p polyvoice.Patch) error {
	params, matrix, err := polyvoice.Realize[T, B](p)
	if err != nil {
		return err
	}
	vp.mu.Lock()
	defer vp.mu.Unlock()
	vp.params, vp.matrix = params, matrix
	for i := range vp.slots {
		vp.slots[i].stale = true
	}
	return nil
}

// NoteOn starts note on the first idle voice after the last one used,
// stealing that voice when all are busy.
func (vp *voicePool[T, B]) NoteOn(note int, velocity float32) {
	vp.mu.Lock()
	defer vp.mu.Unlock()
	n := len(vp.slots)
	pick := vp.next
	for i := range n {
		j := (vp.next + i) % n
		if s := &vp.slots[j]; !s.held && !s.voice.Active() {
			pick = j
			break
		}
	}
	vp.next = (pick + 1) % n

	s := &vp.slots[pick]
	s.note, s.held = note, true
	s.in = polyvoice.VoiceInput[T]{
		Note:     vp.ctx.Value(polyvoice.KindNote, float32(note)),
		Gate:     vp.ctx.Value(polyvoice.KindSample, 1),
		Velocity: vp.ctx.Value(polyvoice.KindScalar, velocity),
	}
}

// NoteOff releases every held voice playing note.
func (vp *voicePool[T, B]) NoteOff(note int) {
	vp.mu.Lock()
	defer vp.mu.Unlock()
	for i := range vp.slots {
		if s := &vp.slots[i]; s.held && s.note == note {
			s.held = false
			s.in.Gate = 0
		}
	}
}

func (vp *voicePool[T, B]) SetModWheel(v float32) {
	vp.mu.Lock()
	vp.ch.ModWheel = vp.ctx.Value(polyvoice.KindScalar, v)
	vp.mu.Unlock()
}

func (vp *voicePool[T, B]) SetPitchBend(semitones float32) {
	vp.mu.Lock()
	vp.ch.PitchBend = vp.ctx.Value(polyvoice.KindNoteOffset, semitones)
	vp.mu.Unlock()
}

// Render mixes every sounding voice into out, overwriting it.
func (vp *voicePool[T, B]) Render(out []float32) {
	vp.mu.Lock()
	defer vp.mu.Unlock()
	clear(out)
	for i := range vp.slots {
		s := &vp.slots[i]
		if !s.held && !s.voice.Active() {
			continue
		}
		var m *polyvoice.ModMatrix[T]
		if s.stale {
			m, s.stale = &vp.matrix, false
		}
		for j := range out {
			y := s.voice.Next(vp.ctx, m, s.in, vp.ch, vp.params)
			out[j] += vp.ctx.Float(polyvoice.KindSample, y) * masterGain
			m = nil
		}
	}
	for j, x := range out {
		out[j] = min(max(x, -1), 1)
	}
}

func (vp *voicePool[T, B]) ActiveVoices() int {
	vp.mu.Lock()
	defer vp.mu.Unlock()
	n := 0
	for i := range vp.slots {
		if vp.slots[i].held || vp.slots[i].voice.Active() {
			n++
		}
	}
	return n
}
