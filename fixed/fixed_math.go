// fixed_math.go - Fixed-point tangent, MIDI note to frequency, and per-rate constants

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

package fixed

import (
	"errors"
	"fmt"
)

// ErrUnsupportedRate is returned by RateFor for sample rates without a
// precomputed constant set.
var ErrUnsupportedRate = errors.New("unsupported sample rate")

// baseFreqQ32 is the frequency of MIDI note 0 (8.1758 Hz) in u.32.
const baseFreqQ32 = 35114788961

// Rate carries the division constants the fixed backend needs for one sample
// rate. They are precomputed because the target has no divider worth using on
// the sample path.
type Rate struct {
	SampleRate int
	OscStep    uint64 // 2^38/sr: u14.18 Hz to s0.31 phase-over-pi step, u.24
	LfoStep    uint64 // 2^45/sr: u5.11 Hz to s0.31 phase-over-pi step, u.24
	TanArg     uint64 // pi*2^38/sr: u14.18 Hz to u.16 radians, u.40
	HalfRate   uint64 // sr/2
	CutoffMax  uint32 // 0.3*sr in u14.18
}

var rates = [...]Rate{
	{
		SampleRate: 44100,
		OscStep:    6233059,
		LfoStep:    797831567,
		TanArg:     19581733,
		HalfRate:   22050,
		CutoffMax:  3468165120,
	},
	{
		SampleRate: 48000,
		OscStep:    5726623,
		LfoStep:    733007752,
		TanArg:     17990717,
		HalfRate:   24000,
		CutoffMax:  3774873600,
	},
}

// RateFor returns the constant set for sampleRate.
func RateFor(sampleRate int) (Rate, error) {
	for _, r := range rates {
		if r.SampleRate == sampleRate {
			return r, nil
		}
	}
	return Rate{}, fmt.Errorf("fixed: %d Hz: %w", sampleRate, ErrUnsupportedRate)
}

// SupportedRates lists the sample rates RateFor accepts.
func SupportedRates() []int {
	out := make([]int, len(rates))
	for i, r := range rates {
		out[i] = r.SampleRate
	}
	return out
}

// NoteToFreq converts a u7.9 MIDI note to a u14.18 frequency.
func NoteToFreq(note int32) uint32 {
	n := uint64(Clamp(int64(note), 0, MaxU16))
	oct := n * 32 / 3 // n/12 semitones per octave, u.16
	m := uint64(Exp2Frac(uint32(oct&0xFFFF))) >> 10
	f := (baseFreqQ32 * m) >> 20
	f <<= oct >> 16
	return uint32(f >> (32 - FreqFrac))
}

// Tan returns tan(x) in u.16 for x in u.16 radians, using the odd Taylor
// series evaluated as a polynomial in x^2. Accurate to 0.5% up to 0.3*pi.
func Tan(x uint32) uint32 {
	const (
		c1 = 21845 // 1/3
		c2 = 8738  // 2/15
		c3 = 3537  // 17/315
		c4 = 1433  // 62/2835
	)
	xx := int64(x)
	u := (xx * xx) >> 16
	p := int64(c4)
	p = c3 + (p*u)>>16
	p = c2 + (p*u)>>16
	p = c1 + (p*u)>>16
	p = One16 + (p*u)>>16
	return uint32(SatS32((xx * p) >> 16))
}

// PhaseStep returns the per-sample s0.31 phase-over-pi increment for a u14.18
// frequency.
func (r *Rate) PhaseStep(freq uint32) int32 {
	return int32(Clamp(int64((uint64(freq)*r.OscStep)>>24), 0, 1<<31-1))
}

// LfoPhaseStep returns the per-sample s0.31 increment for a u5.11 LFO rate.
func (r *Rate) LfoPhaseStep(freq int32) int32 {
	return int32((uint64(Clamp(int64(freq), 0, MaxU16)) * r.LfoStep) >> 24)
}

// TanArgument returns pi*freq/sr in u.16 radians for a u14.18 frequency, with the
// frequency limited to 0.3*sr.
func (r *Rate) TanArgument(freq uint32) uint32 {
	if freq > r.CutoffMax {
		freq = r.CutoffMax
	}
	return uint32((uint64(freq) * r.TanArg) >> 40)
}
