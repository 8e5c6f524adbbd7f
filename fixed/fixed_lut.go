// fixed_lut.go - Lookup tables for the fixed-point transcendentals

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
	"math"
	"math/bits"
)

// Table sizes. Each table carries one guard entry so interpolation never
// wraps.
const (
	sinTabSize   = 256
	exp2TabSize  = 256
	recipTabSize = 256
)

// sinTab holds sin(pi*x) for x in [-1, 1] in s1.15.
var sinTab [sinTabSize + 1]int32

// exp2Tab holds 2^x for x in [0, 1] in u2.30.
var exp2Tab [exp2TabSize + 1]uint32

// recipTab holds 1/(1+x) for x in [0, 1] in u0.16 (entry 0 is 1.0).
var recipTab [recipTabSize + 1]uint32

func init() {
	for i := range sinTab {
		x := float64(i)/(sinTabSize/2) - 1
		v := math.Round(math.Sin(math.Pi*x) * (1 << IScalarFrac))
		sinTab[i] = int32(Clamp(int64(v), MinS16, MaxS16))
	}
	for i := range exp2Tab {
		exp2Tab[i] = uint32(math.Round(math.Exp2(float64(i)/exp2TabSize) * (1 << 30)))
	}
	for i := range recipTab {
		recipTab[i] = uint32(math.Round(One16 / (1 + float64(i)/recipTabSize)))
	}
}

// Sin returns sin(pi*p) in s1.15 for a phase-over-pi p in s0.31.
func Sin(p int32) int32 {
	u := uint32(p) + 1<<31
	idx := u >> 24
	frac := int64((u >> 8) & 0xFFFF)
	a := int64(sinTab[idx])
	b := int64(sinTab[idx+1])
	return int32(a + ((b-a)*frac)>>16)
}

// Cos returns cos(pi*p) in s1.15 for a phase-over-pi p in s0.31.
func Cos(p int32) int32 {
	return Sin(p + 1<<30)
}

// Exp2Frac returns 2^x in u2.30 for x in [0, 1) given in u0.16.
func Exp2Frac(x uint32) uint32 {
	x &= 0xFFFF
	idx := x >> 8
	frac := uint64(x & 0xFF)
	a := uint64(exp2Tab[idx])
	b := uint64(exp2Tab[idx+1])
	return uint32(a + ((b-a)*frac)>>8)
}

// Exp2 returns 2^x in u16.16 for x in s15.16. Results beyond the range
// saturate.
func Exp2(x int32) uint64 {
	whole := int(x >> 16)
	m := uint64(Exp2Frac(uint32(x) & 0xFFFF))
	switch {
	case whole >= 32:
		return math.MaxUint32 << 16
	case whole <= -31:
		return 0
	}
	return uint64(Shift(int64(m), 14-whole))
}

// Recip normalises d (u.16) into a mantissa in [1, 2) and looks up its
// reciprocal. It returns m in u0.16 and an exponent e such that
// 1/d = m/2^16 * 2^-e. Apply it with Shift(v*m>>16, e).
func Recip(d uint64) (m uint32, e int) {
	if d == 0 {
		d = 1
	}
	n := bits.Len64(d) - 1
	var mr uint64
	if n >= 16 {
		mr = d >> uint(n-16)
	} else {
		mr = d << uint(16-n)
	}
	x := mr - One16
	idx := x >> 8
	frac := x & 0xFF
	a := uint64(recipTab[idx])
	b := uint64(recipTab[idx+1])
	return uint32(a - ((a-b)*frac)>>8), n - 16
}

// Recip1p returns the reciprocal of 1+x for x in u.16.
func Recip1p(x uint64) (uint32, int) {
	return Recip(One16 + x)
}

// Recip1m returns the reciprocal of 1-x for x in u0.16, x < 1.
func Recip1m(x uint32) (uint32, int) {
	if x >= One16 {
		x = One16 - 1
	}
	return Recip(uint64(One16 - x))
}

// MulRecip multiplies v by the reciprocal (m, e) returned by Recip.
func MulRecip(v int64, m uint32, e int) int64 {
	return Shift((v*int64(m))>>16, e)
}
