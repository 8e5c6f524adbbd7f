// fixed.go - Q-format layouts and saturating helpers for the fixed-point backend

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

// Package fixed holds the narrow fixed-point arithmetic used by the
// polyvoice fixed backend: Q-format layouts, saturation, lookup-table
// transcendentals, and MIDI note to frequency conversion.
//
// Every semantic kind is carried in an int32 whose fractional bit count is
// given by the *Frac constants below. Values that are nominally 16 bits wide
// saturate to the 16-bit range of their kind.
package fixed

import "math"

// Fractional bits per kind.
const (
	SampleFrac   = 12 // s4.12, +-8.0
	WideFrac     = 20 // s12.20, filter state
	NoteFrac     = 9  // u7.9, 0..128
	OffsetFrac   = 9  // s7.9, +-64
	ScalarFrac   = 16 // u0.16, [0, 1)
	IScalarFrac  = 15 // s1.15, [-1, 1)
	PhaseFrac    = 31 // s0.31 phase over pi, [-1, 1)
	EnvFrac      = 29 // s3.29 envelope accumulator
	EnvParamFrac = 12 // u4.12 seconds, 0..16
	LfoFreqFrac  = 11 // u5.11 Hz, 0..32
	FreqFrac     = 18 // u14.18 Hz
	GainFrac     = 16 // filter gains and reciprocals
)

const (
	One16     = 1 << 16
	MaxU16    = math.MaxUint16
	MinS16    = math.MinInt16
	MaxS16    = math.MaxInt16
	SampleOne = 1 << SampleFrac
)

// Clamp limits v to [lo, hi].
func Clamp(v, lo, hi int64) int64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// SatS16 saturates v to the signed 16-bit range.
func SatS16(v int64) int32 {
	return int32(Clamp(v, MinS16, MaxS16))
}

// SatU16 saturates v to the unsigned 16-bit range.
func SatU16(v int64) int32 {
	return int32(Clamp(v, 0, MaxU16))
}

// SatS32 saturates v to the int32 range.
func SatS32(v int64) int32 {
	return int32(Clamp(v, math.MinInt32, math.MaxInt32))
}

// FromFloat converts f to a fixed value with frac fractional bits, rounding
// to nearest. The result is not saturated.
func FromFloat(f float32, frac uint) int64 {
	return int64(math.Round(float64(f) * float64(int64(1)<<frac)))
}

// ToFloat converts a fixed value with frac fractional bits to float32.
func ToFloat(v int64, frac uint) float32 {
	return float32(float64(v) / float64(int64(1)<<frac))
}

// MulShift multiplies a and b and shifts the product right by n, rounding
// toward negative infinity.
func MulShift(a, b int64, n uint) int64 {
	return (a * b) >> n
}

// Shift shifts v right by n when n is positive and left by -n otherwise.
func Shift(v int64, n int) int64 {
	if n >= 0 {
		return v >> uint(n)
	}
	return v << uint(-n)
}
