// num_traits.go - Numeric kinds and the backend capability surface

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

// Package polyvoice is a polyphonic subtractive synthesis voice engine that
// runs over either float32 or narrow fixed-point arithmetic.
//
// Every device is generic over a carrier type T and a backend B. The carrier
// holds all semantic kinds (samples, notes, scalars, phases); the backend
// knows how each kind is laid out and supplies the arithmetic for it. Pick a
// pair with the aliases FloatVoice / FixedVoice or instantiate the generic
// types directly.
package polyvoice

import (
	"errors"

	"github.com/intuitionamiga/polyvoice/fixed"
)

// Num is the carrier type of a backend.
type Num interface {
	~float32 | ~int32
}

// Kind names the semantic numeric kind of a value.
type Kind uint8

const (
	KindSample     Kind = iota // audio sample, +-8 headroom
	KindNote                   // MIDI note, 0..128
	KindNoteOffset             // signed note delta, +-64
	KindScalar                 // [0, 1)
	KindIScalar                // [-1, 1)
	KindEnvParam               // envelope stage time in seconds, 0..16
	KindLfoFreq                // LFO rate in Hz, 0..32
	numKinds
)

var kindNames = [numKinds]string{
	KindSample:     "sample",
	KindNote:       "note",
	KindNoteOffset: "note-offset",
	KindScalar:     "scalar",
	KindIScalar:    "iscalar",
	KindEnvParam:   "env-param",
	KindLfoFreq:    "lfo-freq",
}

func (k Kind) String() string {
	if k < numKinds {
		return kindNames[k]
	}
	return "unknown"
}

// Range returns the nominal span of k in natural units.
func (k Kind) Range() (lo, hi float32) {
	switch k {
	case KindSample:
		return -SampleHeadroom, SampleHeadroom
	case KindNote:
		return 0, NoteMax
	case KindNoteOffset:
		return -NoteOffsetMax, NoteOffsetMax
	case KindIScalar:
		return -1, 1
	case KindEnvParam:
		return 0, EnvTimeMax
	case KindLfoFreq:
		return 0, LfoFreqMax
	}
	return 0, 1
}

// FullScale is the natural-unit amount a modulation depth of 1 moves a
// parameter of kind k.
func (k Kind) FullScale() float32 {
	switch k {
	case KindSample, KindScalar, KindIScalar:
		return 1
	}
	_, hi := k.Range()
	return hi
}

// ErrUnsupportedRate is returned when a context is built for a sample rate
// the backend cannot run at.
var ErrUnsupportedRate = fixed.ErrUnsupportedRate

// ErrSeedsNotDistinct is returned when a voice is created with equal LFO seeds.
var ErrSeedsNotDistinct = errors.New("voice LFO seeds must differ")

// Rate holds the per-sample-rate constants both backends read.
type Rate struct {
	SampleRate int
	inv        float32 // 1/sr
	half       float32 // sr/2
	fx         fixed.Rate
}

// Backend is the capability surface a numeric backend provides. Values of
// every kind travel in T; the backend owns their layout. Backends are
// stateless zero-size types.
type Backend[T Num] interface {
	Name() string
	NewRate(sampleRate int) (Rate, error)

	// Conversions and domains.
	FromFloat(k Kind, v float32) T
	ToFloat(k Kind, v T) float32
	Saturate(k Kind, v T) T
	Bounds(k Kind) (lo, hi T)

	// Modulation signals are IScalars. ModDelta returns signal*depth*FullScale(k)
	// in the raw units of k without saturating.
	ScalarSignal(v T) T
	SampleSignal(v T) T
	ModDelta(k Kind, signal, depth T) T

	// Sample and note arithmetic. All results saturate.
	GateOn(gate T) bool
	AddSamples(a, b T) T
	MulSamples(a, b T) T
	ScaleSample(s, k T) T
	ScaleNote(n, k T) T
	OffsetNote(n, off T) T

	// Phase is carried as phase over pi in [-1, 1).
	PhaseStep(r *Rate, note T) T
	LfoPhaseStep(r *Rate, freq T) T
	AdvancePhase(p, step T) (next T, wrapped bool)
	CrossingFraction(post, step T) T
	SyncPhase(frac, step T) T
	WarpPhase(p, shape T) T
	Waves(q T) OscOutput[T]
	Glide(from, to, phase T) T
	Unipolar(v T) T
	RandomSample(bits uint64) T

	// FilterTick advances the state-variable filter by one sample. zLow and
	// zBand are the integrator states in the backend's wide layout.
	FilterTick(r *Rate, zLow, zBand *T, x, cutoff, resonance T) FiltOutput[T]

	// Envelope accumulator.
	EnvBounds() (lo, hi T)
	EnvAttackThreshold() T
	EnvFromScalar(v T) T
	EnvToScalar(v T) T
	EnvStep(r *Rate, last, prev, next, rise T) T
}

// Context is the immutable per-call bundle handed to every device: the
// backend and the constants for one sample rate.
type Context[T Num, B Backend[T]] struct {
	be   B
	rate Rate
}

// NewContext builds a context for sampleRate. The fixed backend only accepts
// the rates listed by fixed.SupportedRates.
func NewContext[T Num, B Backend[T]](sampleRate int) (*Context[T, B], error) {
	var be B
	r, err := be.NewRate(sampleRate)
	if err != nil {
		return nil, err
	}
	return &Context[T, B]{be: be, rate: r}, nil
}

// SampleRate returns the context's sample rate in Hz.
func (c *Context[T, B]) SampleRate() int { return c.rate.SampleRate }

// Backend returns the context's backend.
func (c *Context[T, B]) Backend() B { return c.be }

// Value converts a natural-unit float into the backend's layout for kind k.
func (c *Context[T, B]) Value(k Kind, v float32) T { return c.be.FromFloat(k, v) }

// Float converts a value of kind k back to natural units.
func (c *Context[T, B]) Float(k Kind, v T) float32 { return c.be.ToFloat(k, v) }

// FloatContext and FixedContext are the two stock backend pairings.
type (
	FloatContext = Context[float32, Float]
	FixedContext = Context[int32, Fixed]
)

// NewFloatContext builds a float32 context.
func NewFloatContext(sampleRate int) (*FloatContext, error) {
	return NewContext[float32, Float](sampleRate)
}

// NewFixedContext builds a fixed-point context.
func NewFixedContext(sampleRate int) (*FixedContext, error) {
	return NewContext[int32, Fixed](sampleRate)
}
