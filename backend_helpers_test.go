// backend_helpers_test.go - Shared helpers that run tests on both backends

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
	"math"
	"testing"
)

// bothBackends runs the float and fixed instantiations of a generic test body
// as subtests at sampleRate.
func bothBackends(t *testing.T, sampleRate int, float func(*testing.T, *FloatContext), fixed func(*testing.T, *FixedContext)) {
	t.Helper()
	t.Run("float", func(t *testing.T) {
		ctx, err := NewFloatContext(sampleRate)
		if err != nil {
			t.Fatalf("NewFloatContext(%d): %v", sampleRate, err)
		}
		float(t, ctx)
	})
	t.Run("fixed", func(t *testing.T) {
		ctx, err := NewFixedContext(sampleRate)
		if err != nil {
			t.Fatalf("NewFixedContext(%d): %v", sampleRate, err)
		}
		fixed(t, ctx)
	})
}

// upCrossings returns the indices i where xs[i-1] < 0 and xs[i] >= 0.
func upCrossings(xs []float32) []int {
	var out []int
	for i := 1; i < len(xs); i++ {
		if xs[i-1] < 0 && xs[i] >= 0 {
			out = append(out, i)
		}
	}
	return out
}

func mean(xs []float32) float64 {
	var s float64
	for _, x := range xs {
		s += float64(x)
	}
	return s / float64(len(xs))
}

func peak(xs []float32) float64 {
	var p float64
	for _, x := range xs {
		p = math.Max(p, math.Abs(float64(x)))
	}
	return p
}

func rmsDiff(a, b []float32) float64 {
	var s float64
	for i := range a {
		d := float64(a[i]) - float64(b[i])
		s += d * d
	}
	return math.Sqrt(s / float64(len(a)))
}

// sineInput returns n samples of amp*sin(2*pi*freq*i/sr) in the backend's
// Sample layout.
func sineInput[T Num, B Backend[T]](ctx *Context[T, B], freq, amp float64, n int) []T {
	out := make([]T, n)
	sr := float64(ctx.SampleRate())
	for i := range out {
		out[i] = ctx.Value(KindSample, float32(amp*math.Sin(2*math.Pi*freq*float64(i)/sr)))
	}
	return out
}
