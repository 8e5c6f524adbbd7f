// num_fixed.go - Narrow fixed-point backend

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

import (
	"github.com/intuitionamiga/polyvoice/fixed"
)

// Fixed is the fixed-point backend for targets without an FPU. Every kind is
// an int32 carrying a 16-bit Q-format value:
//
//	Sample      s4.12     Note      u7.9     NoteOffset  s7.9
//	Scalar      u0.16     IScalar   s1.15    EnvParam    u4.12 s
//	LfoFreq     u5.11 Hz  Phase     s0.31 (phase over pi, wraps)
//
// Envelope accumulators use s3.29 and filter state s12.20.
type Fixed struct{}

var _ Backend[int32] = Fixed{}

var kindFrac = [numKinds]uint{
	KindSample:     fixed.SampleFrac,
	KindNote:       fixed.NoteFrac,
	KindNoteOffset: fixed.OffsetFrac,
	KindScalar:     fixed.ScalarFrac,
	KindIScalar:    fixed.IScalarFrac,
	KindEnvParam:   fixed.EnvParamFrac,
	KindLfoFreq:    fixed.LfoFreqFrac,
}

// wideShift converts between samples and filter state.
const wideShift = fixed.WideFrac - fixed.SampleFrac

func (Fixed) Name() string { return "fixed" }

func (Fixed) NewRate(sampleRate int) (Rate, error) {
	fx, err := fixed.RateFor(sampleRate)
	if err != nil {
		return Rate{}, err
	}
	sr := float32(sampleRate)
	return Rate{SampleRate: sampleRate, inv: 1 / sr, half: sr / 2, fx: fx}, nil
}

func (f Fixed) FromFloat(k Kind, v float32) int32 {
	if k >= numKinds {
		return 0
	}
	lo, hi := f.Bounds(k)
	return int32(fixed.Clamp(fixed.FromFloat(v, kindFrac[k]), int64(lo), int64(hi)))
}

func (Fixed) ToFloat(k Kind, v int32) float32 {
	if k >= numKinds {
		return 0
	}
	return fixed.ToFloat(int64(v), kindFrac[k])
}

func (f Fixed) Saturate(k Kind, v int32) int32 {
	lo, hi := f.Bounds(k)
	return int32(fixed.Clamp(int64(v), int64(lo), int64(hi)))
}

func (Fixed) Bounds(k Kind) (int32, int32) {
	switch k {
	case KindSample, KindNoteOffset, KindIScalar:
		return fixed.MinS16, fixed.MaxS16
	}
	return 0, fixed.MaxU16
}

// fullScale is FullScale(k) in raw units, unsaturated.
func fullScale(k Kind) int64 {
	return fixed.FromFloat(k.FullScale(), kindFrac[k])
}

func (Fixed) ScalarSignal(v int32) int32 { return v >> 1 }

func (Fixed) SampleSignal(v int32) int32 {
	return fixed.SatS16(int64(v) << (fixed.IScalarFrac - fixed.SampleFrac))
}

func (Fixed) ModDelta(k Kind, signal, depth int32) int32 {
	if k >= numKinds {
		return 0
	}
	p := int64(signal) * int64(depth)
	return fixed.SatS32((p * fullScale(k)) >> (2 * fixed.IScalarFrac))
}

func (Fixed) GateOn(gate int32) bool { return gate > gateThresholdFx }

func (Fixed) AddSamples(a, b int32) int32 { return fixed.SatS16(int64(a) + int64(b)) }

func (Fixed) MulSamples(a, b int32) int32 {
	return fixed.SatS16((int64(a) * int64(b)) >> fixed.SampleFrac)
}

// ScaleSample rounds so a gain of MaxU16 passes samples through unchanged.
func (Fixed) ScaleSample(s, k int32) int32 {
	return fixed.SatS16((int64(s)*int64(k) + 1<<(fixed.ScalarFrac-1)) >> fixed.ScalarFrac)
}

func (Fixed) ScaleNote(n, k int32) int32 {
	return fixed.SatU16((int64(n) * int64(k)) >> fixed.ScalarFrac)
}

func (Fixed) OffsetNote(n, off int32) int32 { return fixed.SatU16(int64(n) + int64(off)) }

func (Fixed) PhaseStep(r *Rate, note int32) int32 {
	return r.fx.PhaseStep(fixed.NoteToFreq(note))
}

func (Fixed) LfoPhaseStep(r *Rate, freq int32) int32 {
	return r.fx.LfoPhaseStep(freq)
}

func (Fixed) AdvancePhase(p, step int32) (int32, bool) {
	next := p + step
	return next, next < p
}

func (Fixed) CrossingFraction(post, step int32) int32 {
	if step <= 0 || post < 0 {
		return 0
	}
	return fixed.SatU16((int64(post) << fixed.ScalarFrac) / int64(step))
}

func (Fixed) SyncPhase(frac, step int32) int32 {
	return int32((int64(frac) * int64(step)) >> fixed.ScalarFrac)
}

// WarpPhase bends p so the half-cycle below shape is stretched and the rest
// compressed. 1/(1+s) and 1/(1-s) come from the reciprocal table; the ratio
// between the two slopes is the residual rescale applied where the warped
// phase crosses zero and where it wraps.
func (Fixed) WarpPhase(p, shape int32) int32 {
	s := fixed.Clamp(int64(shape), 0, shapeMaxFx)
	s31 := s << (fixed.PhaseFrac - fixed.ScalarFrac)
	if int64(p) <= s31 {
		m, e := fixed.Recip1p(uint64(s))
		q := fixed.MulRecip(int64(p)+1<<31, m, e) - 1<<31
		return fixed.SatS32(q)
	}
	m, e := fixed.Recip1m(uint32(s))
	return fixed.SatS32(fixed.MulRecip(int64(p)-s31, m, e))
}

func (Fixed) Waves(q int32) OscOutput[int32] {
	const toSample = fixed.PhaseFrac - fixed.SampleFrac
	sq := int32(fixed.SampleOne)
	if q < 0 {
		sq = -fixed.SampleOne
	}
	a := int64(q)
	if a < 0 {
		a = -a
	}
	return OscOutput[int32]{
		Sin: fixed.Sin(q) >> (fixed.IScalarFrac - fixed.SampleFrac),
		Sq:  sq,
		Tri: int32((1<<31 - 2*a) >> toSample),
		Saw: q >> toSample,
	}
}

func (Fixed) Glide(from, to, phase int32) int32 {
	t := int64(uint32(phase) + 1<<31) // u0.32 position in the cycle
	return int32(int64(from) + ((int64(to)-int64(from))*t)>>32)
}

func (Fixed) Unipolar(v int32) int32 { return (v + fixed.SampleOne) >> 1 }

func (Fixed) RandomSample(bits uint64) int32 {
	return int32(int16(bits>>48)) >> (fixed.IScalarFrac - fixed.SampleFrac)
}

func (Fixed) FilterTick(r *Rate, zLow, zBand *int32, x, cutoff, resonance int32) FiltOutput[int32] {
	damp := fixed.One16 - fixed.Clamp(int64(resonance), 0, resonanceMaxFx)
	g := int64(fixed.Tan(r.fx.TanArgument(fixed.NoteToFreq(cutoff))))
	m, e := fixed.Recip(uint64((g*g)>>16 + (2*damp*g)>>16 + fixed.One16))

	s1, s2 := int64(*zBand), int64(*zLow)
	in := int64(x) << wideShift
	high := fixed.MulRecip(in-((2*damp+g)*s1)>>16-s2, m, e)
	bandGain := (g * high) >> 16
	band := bandGain + s1
	*zBand = fixed.SatS32(band + bandGain)
	lowGain := (g * band) >> 16
	low := lowGain + s2
	*zLow = fixed.SatS32(low + lowGain)

	return FiltOutput[int32]{
		Low:  fixed.SatS16(low >> wideShift),
		Band: fixed.SatS16(band >> wideShift),
		High: fixed.SatS16(high >> wideShift),
	}
}

func (Fixed) EnvBounds() (int32, int32) { return envSignalMinFx, envSignalMaxFx }

func (Fixed) EnvAttackThreshold() int32 { return attackThreshFx }

func (Fixed) EnvFromScalar(v int32) int32 {
	return int32(fixed.Clamp(int64(v)<<13, envSignalMinFx, envSignalMaxFx))
}

func (Fixed) EnvToScalar(v int32) int32 { return fixed.SatU16(int64(v) >> 13) }

// EnvStep applies the trapezoidal approach law. k = 1 + rise*sr/2 is
// inverted through the 1/(1+x) table.
func (Fixed) EnvStep(r *Rate, last, prev, next, rise int32) int32 {
	x := (uint64(fixed.Clamp(int64(rise), 0, fixed.MaxU16)) * r.fx.HalfRate) << (16 - fixed.EnvParamFrac)
	if x < fixed.One16 {
		return int32(fixed.Clamp(int64(next), envSignalMinFx, envSignalMaxFx))
	}
	m, e := fixed.Recip1p(x)
	d := fixed.MulRecip(int64(prev)+int64(next)-2*int64(last), m, e)
	return int32(fixed.Clamp(int64(last)+d, envSignalMinFx, envSignalMaxFx))
}
