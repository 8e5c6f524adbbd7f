// voice.go - Per-sample subtractive voice

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

package polyvoice

import "fmt"

// VoiceInput is the per-note performance state. Note is a Note, Gate a
// Sample, Velocity and Aftertouch Scalars.
type VoiceInput[T Num] struct {
	Note       T
	Gate       T
	Velocity   T
	Aftertouch T
}

// ChannelInput is performance state shared by every voice of a channel.
// ModWheel is a Scalar; PitchBend a NoteOffset added to the played note.
type ChannelInput[T Num] struct {
	ModWheel  T
	PitchBend T
}

// VoiceParams is the full parameter pack of a voice. Osc1Wave and Osc2Wave
// pick the oscillator outputs fed to the ring modulator.
type VoiceParams[T Num] struct {
	Osc      SyncedOscParams[T]
	Osc1Wave OscWave
	Osc2Wave OscWave
	Ring     RingModParams[T]
	Filt     ModFiltParams[T]
	FiltEnv  EnvParams[T]
	AmpEnv   EnvParams[T]
	Mod      ModSectionParams[T]
}

// Voice is one monophonic subtractive voice: a synced oscillator pair into a
// ring modulator, a modulated filter and an envelope-driven VCA, all driven
// by a modulation section.
type Voice[T Num, B Backend[T]] struct {
	Oscs    SyncedOscs[T, B]
	Ring    RingMod[T, B]
	Filt    ModFilt[T, B]
	FiltEnv Env[T, B]
	AmpEnv  Env[T, B]
	Mod     ModSection[T, B]
}

// FloatVoice and FixedVoice are the two stock backend pairings.
type (
	FloatVoice = Voice[float32, Float]
	FixedVoice = Voice[int32, Fixed]
)

// NewVoice returns a voice in its reset state. The seeds drive the LFO1 and
// LFO2 random streams and must differ.
func NewVoice[T Num, B Backend[T]](seed1, seed2 uint64) (*Voice[T, B], error) {
	if seed1 == seed2 {
		return nil, fmt.Errorf("voice: seed %#x: %w", seed1, ErrSeedsNotDistinct)
	}
	v := &Voice[T, B]{}
	v.Mod.init(seed1, seed2)
	v.FiltEnv.Reset()
	v.AmpEnv.Reset()
	return v, nil
}

// NewFloatVoice returns a float32 voice.
func NewFloatVoice(seed1, seed2 uint64) (*FloatVoice, error) {
	return NewVoice[float32, Float](seed1, seed2)
}

// NewFixedVoice returns a fixed-point voice.
func NewFixedVoice(seed1, seed2 uint64) (*FixedVoice, error) {
	return NewVoice[int32, Fixed](seed1, seed2)
}

// Reset returns every device to its initial state. The routing cache is
// kept.
func (v *Voice[T, B]) Reset() {
	v.Oscs.Reset()
	v.Filt.Reset()
	v.FiltEnv.Reset()
	v.AmpEnv.Reset()
	v.Mod.Reset()
}

// Active reports whether the amp envelope is still sounding.
func (v *Voice[T, B]) Active() bool {
	var be B
	lo, _ := be.EnvBounds()
	return v.AmpEnv.state != EnvRelease || v.AmpEnv.last > lo
}

// Next renders one sample. A non-nil matrix replaces the voice's routing
// cache before use; pass nil while the matrix is unchanged.
func (v *Voice[T, B]) Next(ctx *Context[T, B], matrix *ModMatrix[T], in VoiceInput[T], ch ChannelInput[T], p VoiceParams[T]) T {
	be := ctx.be
	mod := v.Mod.Next(ctx, matrix, ModSectionInput[T]{
		Gate:       in.Gate,
		Velocity:   in.Velocity,
		Aftertouch: in.Aftertouch,
		ModWheel:   ch.ModWheel,
	}, p.Mod)

	// p is a copy; modulation never leaks back to the caller.
	modulateRange(&mod, &p, DestNull+1, firstPrimaryOnly)

	note := be.OffsetNote(in.Note, ch.PitchBend)
	osc := v.Oscs.Next(ctx, note, p.Osc)
	ring := v.Ring.Next(ctx, RingModInput[T]{
		A: osc.Primary.Select(p.Osc1Wave),
		B: osc.Secondary.Select(p.Osc2Wave),
	}, p.Ring)
	filtEnv := v.FiltEnv.Next(ctx, in.Gate, p.FiltEnv)
	out := v.Filt.Next(ctx, ModFiltInput[T]{
		Signal: ring,
		Env:    filtEnv,
		Vel:    in.Velocity,
		Kbd:    note,
	}, p.Filt)
	amp := v.AmpEnv.Next(ctx, in.Gate, p.AmpEnv)
	return VCA(ctx, out, amp)
}

// VCA scales a sample by a Scalar gain.
func VCA[T Num, B Backend[T]](ctx *Context[T, B], s, gain T) T {
	return ctx.be.ScaleSample(s, gain)
}
