// num_float.go - float32 backend

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
	"fmt"

	"github.com/chewxy/math32"
)

// Float is the float32 backend for hosts with an FPU. Kinds are stored in
// their natural units.
type Float struct{}

var _ Backend[float32] = Float{}

func (Float) Name() string { return "float" }

func (Float) NewRate(sampleRate int) (Rate, error) {
	if sampleRate <= 0 {
		return Rate{}, fmt.Errorf("float: %d Hz: %w", sampleRate, ErrUnsupportedRate)
	}
	sr := float32(sampleRate)
	return Rate{SampleRate: sampleRate, inv: 1 / sr, half: sr / 2}, nil
}

func (f Float) FromFloat(k Kind, v float32) float32 { return f.Saturate(k, v) }

func (Float) ToFloat(_ Kind, v float32) float32 { return v }

func (f Float) Saturate(k Kind, v float32) float32 {
	lo, hi := f.Bounds(k)
	return clampF(v, lo, hi)
}

func (Float) Bounds(k Kind) (float32, float32) {
	switch k {
	case KindSample:
		return -SampleHeadroom, SampleHeadroom - 0x1p-12
	case KindNote:
		return 0, NoteMax
	case KindNoteOffset:
		return -NoteOffsetMax, NoteOffsetMax - 0x1p-9
	case KindIScalar:
		return -1, scalarMaxF
	case KindEnvParam:
		return 0, EnvTimeMax
	case KindLfoFreq:
		return 0, LfoFreqMax
	}
	return 0, scalarMaxF
}

func (Float) ScalarSignal(v float32) float32 { return v }

func (Float) SampleSignal(v float32) float32 { return clampF(v, -1, scalarMaxF) }

func (Float) ModDelta(k Kind, signal, depth float32) float32 {
	return signal * depth * k.FullScale()
}

func (Float) GateOn(gate float32) bool { return gate > GateThreshold }

func (f Float) AddSamples(a, b float32) float32 { return f.Saturate(KindSample, a+b) }

func (f Float) MulSamples(a, b float32) float32 { return f.Saturate(KindSample, a*b) }

func (Float) ScaleSample(s, k float32) float32 { return s * k }

func (Float) ScaleNote(n, k float32) float32 { return n * k }

func (f Float) OffsetNote(n, off float32) float32 { return f.Saturate(KindNote, n+off) }

// noteToFreq is the equal-tempered A440 mapping.
func noteToFreq(note float32) float32 {
	return 440 * math32.Exp2((note-69)/12)
}

func (Float) PhaseStep(r *Rate, note float32) float32 {
	return 2 * noteToFreq(note) * r.inv
}

func (Float) LfoPhaseStep(r *Rate, freq float32) float32 {
	return 2 * freq * r.inv
}

func (Float) AdvancePhase(p, step float32) (float32, bool) {
	p += step
	if p >= 1 {
		return p - 2, true
	}
	return p, false
}

func (Float) CrossingFraction(post, step float32) float32 {
	if step <= 0 {
		return 0
	}
	return clampF(post/step, 0, scalarMaxF)
}

func (Float) SyncPhase(frac, step float32) float32 { return frac * step }

func (Float) WarpPhase(p, shape float32) float32 {
	s := clampF(shape, 0, ShapeMax)
	if p <= s {
		return (1+p)/(1+s) - 1
	}
	return (p - s) / (1 - s)
}

func (Float) Waves(q float32) OscOutput[float32] {
	sq := float32(1)
	if q < 0 {
		sq = -1
	}
	return OscOutput[float32]{
		Sin: math32.Sin(math32.Pi * q),
		Sq:  sq,
		Tri: 1 - 2*math32.Abs(q),
		Saw: q,
	}
}

func (Float) Glide(from, to, phase float32) float32 {
	t := (phase + 1) / 2
	return from + (to-from)*t
}

func (Float) Unipolar(v float32) float32 { return (v + 1) / 2 }

func (Float) RandomSample(bits uint64) float32 {
	return float32(int32(bits>>32)>>8) * 0x1p-23
}

func (Float) FilterTick(r *Rate, zLow, zBand *float32, x, cutoff, resonance float32) FiltOutput[float32] {
	damp := 1 - clampF(resonance, 0, ResonanceMax)
	fc := math32.Min(noteToFreq(cutoff), CutoffRatioMax*float32(r.SampleRate))
	g := math32.Tan(math32.Pi * fc * r.inv)

	s1, s2 := *zBand, *zLow
	high := (x - (2*damp+g)*s1 - s2) / (g*g + 2*damp*g + 1)
	bandGain := g * high
	band := bandGain + s1
	*zBand = band + bandGain
	lowGain := g * band
	low := lowGain + s2
	*zLow = low + lowGain
	return FiltOutput[float32]{Low: low, Band: band, High: high}
}

func (Float) EnvBounds() (float32, float32) { return EnvSignalMin, EnvSignalMax }

func (Float) EnvAttackThreshold() float32 { return AttackThreshold }

func (Float) EnvFromScalar(v float32) float32 { return clampF(v, EnvSignalMin, EnvSignalMax) }

func (Float) EnvToScalar(v float32) float32 { return clampF(v, 0, scalarMaxF) }

func (Float) EnvStep(r *Rate, last, prev, next, rise float32) float32 {
	x := rise * r.half
	if x < 1 {
		return clampF(next, EnvSignalMin, EnvSignalMax)
	}
	last += (prev + next - 2*last) / (x + 1)
	// float32 rounding stalls the approach a few ulps short of the target.
	if math32.Abs(next-last) < envSnap {
		last = next
	}
	return clampF(last, EnvSignalMin, EnvSignalMax)
}

// envSnap is the distance at which the float envelope lands on its target.
const envSnap = 0x1p-20

func clampF(v, lo, hi float32) float32 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
