// fixed_test.go - Accuracy tests for the fixed-point helpers

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
	"math"
	"testing"
)

// TestSaturation covers the clamp helpers at and past their limits.
func TestSaturation(t *testing.T) {
	tests := []struct {
		name string
		got  int32
		want int32
	}{
		{"s16 high", SatS16(40000), MaxS16},
		{"s16 low", SatS16(-40000), MinS16},
		{"s16 pass", SatS16(-1234), -1234},
		{"u16 negative", SatU16(-1), 0},
		{"u16 high", SatU16(1 << 20), MaxU16},
		{"s32 high", SatS32(1 << 40), math.MaxInt32},
		{"s32 low", SatS32(-(1 << 40)), math.MinInt32},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.got != tt.want {
				t.Errorf("got %d, want %d", tt.got, tt.want)
			}
		})
	}
	if v := FromFloat(-0.5, SampleFrac); v != -2048 {
		t.Errorf("FromFloat(-0.5, s4.12) = %d, want -2048", v)
	}
	if f := ToFloat(3<<NoteFrac, NoteFrac); f != 3 {
		t.Errorf("ToFloat(3 notes) = %v", f)
	}
}

// TestSin checks the interpolated sine against math.Sin across the cycle.
func TestSin(t *testing.T) {
	for i := int64(math.MinInt32); i <= math.MaxInt32; i += 1<<20 + 12345 {
		p := int32(i)
		want := math.Sin(math.Pi*float64(p)/(1<<PhaseFrac)) * (1 << IScalarFrac)
		if d := math.Abs(float64(Sin(p)) - want); d > 8 {
			t.Fatalf("Sin(%d) = %d, want %.1f", p, Sin(p), want)
		}
	}
	if c := Cos(0); c < MaxS16-2 {
		t.Errorf("Cos(0) = %d, want ~%d", c, MaxS16)
	}
}

// TestExp2 checks whole and fractional powers of two.
func TestExp2(t *testing.T) {
	tests := []struct {
		x    float64
		want float64
	}{
		{0, 1}, {1, 2}, {-1, 0.5}, {1.5, math.Sqrt2 * 2}, {10, 1024}, {-2.25, math.Exp2(-2.25)},
	}
	for _, tt := range tests {
		got := float64(Exp2(int32(tt.x*One16))) / One16
		if math.Abs(got/tt.want-1) > 1e-4 {
			t.Errorf("Exp2(%v) = %v, want %v", tt.x, got, tt.want)
		}
	}
}

// TestRecip checks 1/d across several octaves of d.
func TestRecip(t *testing.T) {
	for _, d := range []uint64{1 << 16, 3 << 15, 70000, 123456, 5 << 20, 1000, 65535 * 3} {
		m, e := Recip(d)
		got := float64(m) / One16 * math.Exp2(-float64(e))
		want := One16 / float64(d)
		if math.Abs(got/want-1) > 1e-4 {
			t.Errorf("Recip(%d) = %v, want %v", d, got, want)
		}
	}
	m, e := Recip1m(One16 / 4)
	if got := MulRecip(3<<16, m, e); math.Abs(float64(got)/(4<<16)-1) > 1e-4 {
		t.Errorf("3/(1-0.25) = %v, want 4", float64(got)/One16)
	}
}

// TestTan checks the polynomial tangent over the prewarp range.
func TestTan(t *testing.T) {
	tests := []struct {
		upTo float64 // fraction of pi
		tol  float64
	}{
		{0.2, 1e-3},
		{0.3, 1e-2},
	}
	for _, tt := range tests {
		for f := 0.01; f <= tt.upTo+1e-9; f += 0.01 {
			x := uint32(math.Round(math.Pi * f * One16))
			want := math.Tan(float64(x) / One16)
			got := float64(Tan(x)) / One16
			if math.Abs(got/want-1) > tt.tol {
				t.Errorf("Tan(%.2f pi) = %v, want %v", f, got, want)
			}
		}
	}
}

// TestNoteToFreq checks every MIDI note and a sweep of fractional notes
// lands within one cent of equal temperament.
func TestNoteToFreq(t *testing.T) {
	cents := func(note int32) float64 {
		got := float64(NoteToFreq(note)) / (1 << FreqFrac)
		want := 440 * math.Exp2((float64(note)/(1<<NoteFrac)-69)/12)
		return math.Abs(1200 * math.Log2(got/want))
	}
	for n := int32(0); n < 128; n++ {
		if c := cents(n << NoteFrac); c > 1 {
			t.Errorf("note %d off by %.3f cents", n, c)
		}
	}
	for n := int32(0); n < MaxU16; n += 97 {
		if c := cents(n); c > 1 {
			t.Errorf("note %.3f off by %.3f cents", float64(n)/(1<<NoteFrac), c)
		}
	}
}

// TestRateFor covers the supported rates, the step conversions, and the
// rejection of anything else.
func TestRateFor(t *testing.T) {
	for _, sr := range SupportedRates() {
		r, err := RateFor(sr)
		if err != nil {
			t.Fatalf("RateFor(%d): %v", sr, err)
		}
		freq := uint32(440 << FreqFrac)
		want := 2 * 440 / float64(sr) * (1 << PhaseFrac)
		if got := float64(r.PhaseStep(freq)); math.Abs(got/want-1) > 1e-6 {
			t.Errorf("%d Hz: PhaseStep(440) = %v, want %v", sr, got, want)
		}
		want = 2 * 5 / float64(sr) * (1 << PhaseFrac)
		if got := float64(r.LfoPhaseStep(5 << LfoFreqFrac)); math.Abs(got/want-1) > 1e-5 {
			t.Errorf("%d Hz: LfoPhaseStep(5) = %v, want %v", sr, got, want)
		}
		if a := r.TanArgument(math.MaxUint32); float64(a)/One16 > 0.3*math.Pi+1e-3 {
			t.Errorf("%d Hz: TanArgument not limited: %v", sr, float64(a)/One16)
		}
	}
	for _, sr := range []int{0, 22050, 96000} {
		if _, err := RateFor(sr); !errors.Is(err, ErrUnsupportedRate) {
			t.Errorf("RateFor(%d) error = %v, want ErrUnsupportedRate", sr, err)
		}
	}
}
