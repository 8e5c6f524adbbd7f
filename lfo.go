// lfo.go - Low-frequency oscillator with sample-and-hold streams

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

// LfoWave is an LFO waveform.
type LfoWave uint8

const (
	LfoSine LfoWave = iota
	LfoSquare
	LfoTriangle
	LfoSaw
	LfoSampleHold
	LfoSampleGlide
	numLfoWaves
)

var lfoWaveNames = [numLfoWaves]string{
	LfoSine:        "sine",
	LfoSquare:      "square",
	LfoTriangle:    "triangle",
	LfoSaw:         "saw",
	LfoSampleHold:  "sample-hold",
	LfoSampleGlide: "sample-glide",
}

func (w LfoWave) String() string {
	if w < numLfoWaves {
		return lfoWaveNames[w]
	}
	return "invalid"
}

// ParseLfoWave looks a waveform up by name.
func ParseLfoWave(name string) (LfoWave, bool) {
	for i, n := range lfoWaveNames {
		if n == name {
			return LfoWave(i), true
		}
	}
	return LfoSine, false
}

// LfoOptions packs the waveform into the low byte and flags into the high
// byte of a 16-bit word.
type LfoOptions uint16

const (
	lfoWaveMask  LfoOptions = 0x00FF
	LfoBipolar   LfoOptions = 1 << 8
	LfoRetrigger LfoOptions = 1 << 9
)

// DefaultLfoOptions is a bipolar, retriggering sine.
const DefaultLfoOptions = LfoBipolar | LfoRetrigger | LfoOptions(LfoSine)

// NewLfoOptions packs a waveform and flags.
func NewLfoOptions(w LfoWave, bipolar, retrigger bool) LfoOptions {
	o := LfoOptions(w) & lfoWaveMask
	if bipolar {
		o |= LfoBipolar
	}
	if retrigger {
		o |= LfoRetrigger
	}
	return o
}

// Wave decodes the waveform. Codes outside the known set decode as sine.
func (o LfoOptions) Wave() LfoWave {
	w := LfoWave(o & lfoWaveMask)
	if w >= numLfoWaves {
		return LfoSine
	}
	return w
}

func (o LfoOptions) Bipolar() bool   { return o&LfoBipolar != 0 }
func (o LfoOptions) Retrigger() bool { return o&LfoRetrigger != 0 }

// LfoParams are the LFO controls. Freq is an LfoFreq, Depth a Scalar.
type LfoParams[T Num] struct {
	Freq    T
	Depth   T
	Options LfoOptions
}

// Lfo is a low-frequency oscillator. Its sample-and-hold values come from a
// private generator, so two LFOs built with the same seed produce the same
// stream.
type Lfo[T Num, B Backend[T]] struct {
	phase T
	gate  bool
	rng   SeededRNG
	rands [2]T // current, previous
}

// NewLfo returns an LFO seeded with seed.
func NewLfo[T Num, B Backend[T]](seed uint64) *Lfo[T, B] {
	l := &Lfo[T, B]{}
	l.Seed(seed)
	return l
}

// Seed reseeds the generator and resets the LFO.
func (l *Lfo[T, B]) Seed(seed uint64) {
	l.rng.SetSeed(seed)
	l.Reset()
}

// Reset rewinds phase, gate and random stream to their seeded state.
func (l *Lfo[T, B]) Reset() {
	var be B
	l.rng.Reset()
	l.phase = 0
	l.gate = false
	l.rands[1] = be.RandomSample(l.rng.Uint64())
	l.rands[0] = be.RandomSample(l.rng.Uint64())
}

// Next advances the LFO by one sample and returns its output as a Sample.
func (l *Lfo[T, B]) Next(ctx *Context[T, B], gate T, p LfoParams[T]) T {
	be := ctx.be
	on := be.GateOn(gate)
	if p.Options.Retrigger() && on && !l.gate {
		l.phase = 0
	}
	l.gate = on

	var v T
	switch p.Options.Wave() {
	case LfoSampleHold:
		v = l.rands[0]
	case LfoSampleGlide:
		v = be.Glide(l.rands[1], l.rands[0], l.phase)
	default:
		w := be.Waves(l.phase)
		switch p.Options.Wave() {
		case LfoSquare:
			v = w.Sq
		case LfoTriangle:
			v = w.Tri
		case LfoSaw:
			v = w.Saw
		default:
			v = w.Sin
		}
	}
	if !p.Options.Bipolar() {
		v = be.Unipolar(v)
	}
	v = be.ScaleSample(v, p.Depth)

	next, wrapped := be.AdvancePhase(l.phase, be.LfoPhaseStep(&ctx.rate, p.Freq))
	l.phase = next
	if wrapped {
		l.rands[1] = l.rands[0]
		l.rands[0] = be.RandomSample(l.rng.Uint64())
	}
	return v
}
