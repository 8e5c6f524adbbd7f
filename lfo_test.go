// lfo_test.go - LFO waveform, option and determinism tests

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

	"github.com/google/go-cmp/cmp"
)

func lfoParams[T Num, B Backend[T]](ctx *Context[T, B], freq, depth float32, opts LfoOptions) LfoParams[T] {
	return LfoParams[T]{Freq: ctx.Value(KindLfoFreq, freq), Depth: ctx.Value(KindScalar, depth), Options: opts}
}

func runLfo[T Num, B Backend[T]](ctx *Context[T, B], seed uint64, p LfoParams[T], n int) []float32 {
	l := NewLfo[T, B](seed)
	out := make([]float32, 0, n)
	for v := range l.Stream(ctx, GateSeq(ctx, n, 0), p) {
		out = append(out, ctx.Float(KindSample, v))
	}
	return out
}

// TestLfoOptions_Decode checks packing and decoding, including invalid wave
// codes falling back to sine.
func TestLfoOptions_Decode(t *testing.T) {
	tests := []struct {
		name      string
		opts      LfoOptions
		wave      LfoWave
		bipolar   bool
		retrigger bool
	}{
		{"default", DefaultLfoOptions, LfoSine, true, true},
		{"unipolar saw", NewLfoOptions(LfoSaw, false, true), LfoSaw, false, true},
		{"free glide", NewLfoOptions(LfoSampleGlide, true, false), LfoSampleGlide, true, false},
		{"invalid wave", LfoOptions(0x00FE) | LfoBipolar, LfoSine, true, false},
		{"invalid just past end", LfoOptions(numLfoWaves), LfoSine, false, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.opts.Wave(); got != tt.wave {
				t.Errorf("Wave() = %v, want %v", got, tt.wave)
			}
			if got := tt.opts.Bipolar(); got != tt.bipolar {
				t.Errorf("Bipolar() = %v, want %v", got, tt.bipolar)
			}
			if got := tt.opts.Retrigger(); got != tt.retrigger {
				t.Errorf("Retrigger() = %v, want %v", got, tt.retrigger)
			}
		})
	}
}

// TestLfo_Sine1Hz checks a 1 Hz bipolar sine at full depth over one second.
func TestLfo_Sine1Hz(t *testing.T) {
	bothBackends(t, 48000, testLfoSine[float32, Float], testLfoSine[int32, Fixed])
}

func testLfoSine[T Num, B Backend[T]](t *testing.T, ctx *Context[T, B]) {
	out := runLfo(ctx, 1, lfoParams(ctx, 1, 1, DefaultLfoOptions), 48000)
	if p := peak(out); math.Abs(p-1) > 0.02 {
		t.Errorf("amplitude %.4f, want 1", p)
	}
	if m := mean(out); math.Abs(m) > 0.01 {
		t.Errorf("mean %.4f, want 0", m)
	}
	for i := 0; i < len(out); i += 1000 {
		want := math.Sin(2 * math.Pi * float64(i) / 48000)
		if math.Abs(float64(out[i])-want) > 0.02 {
			t.Errorf("sample %d = %.4f, want %.4f", i, out[i], want)
		}
	}
}

// TestLfo_Unipolar checks unipolar output stays in [0, depth].
func TestLfo_Unipolar(t *testing.T) {
	bothBackends(t, 48000, testLfoUnipolar[float32, Float], testLfoUnipolar[int32, Fixed])
}

func testLfoUnipolar[T Num, B Backend[T]](t *testing.T, ctx *Context[T, B]) {
	for _, w := range []LfoWave{LfoSine, LfoSquare, LfoTriangle, LfoSaw, LfoSampleHold, LfoSampleGlide} {
		out := runLfo(ctx, 7, lfoParams(ctx, 8, 0.5, NewLfoOptions(w, false, true)), 24000)
		for i, v := range out {
			if v < -1e-3 || v > 0.5+1e-3 {
				t.Fatalf("%v sample %d = %.4f, want in [0, 0.5]", w, i, v)
			}
		}
	}
}

// TestLfo_SampleHoldDeterministic checks equal seeds give equal streams and
// different seeds do not.
func TestLfo_SampleHoldDeterministic(t *testing.T) {
	bothBackends(t, 48000, testLfoDeterministic[float32, Float], testLfoDeterministic[int32, Fixed])
}

func testLfoDeterministic[T Num, B Backend[T]](t *testing.T, ctx *Context[T, B]) {
	p := lfoParams(ctx, 2, 1, NewLfoOptions(LfoSampleHold, true, true))
	a := runLfo(ctx, 0xC0FFEE, p, 48000)
	b := runLfo(ctx, 0xC0FFEE, p, 48000)
	if diff := cmp.Diff(a, b); diff != "" {
		t.Errorf("same seed, different stream (-first +second):\n%s", diff)
	}
	c := runLfo(ctx, 0xBEEF, p, 48000)
	if cmp.Equal(a, c) {
		t.Error("different seeds gave identical streams")
	}

	// Held values change only on wraps: two per second at 2 Hz.
	changes := 0
	for i := 1; i < len(a); i++ {
		if a[i] != a[i-1] {
			changes++
		}
	}
	if changes < 1 || changes > 2 {
		t.Errorf("held value changed %d times in 1 s, want 2", changes)
	}
}

// TestLfo_SampleGlideContinuous checks the glide output has no jumps.
func TestLfo_SampleGlideContinuous(t *testing.T) {
	bothBackends(t, 48000, testLfoGlide[float32, Float], testLfoGlide[int32, Fixed])
}

func testLfoGlide[T Num, B Backend[T]](t *testing.T, ctx *Context[T, B]) {
	out := runLfo(ctx, 99, lfoParams(ctx, 4, 1, NewLfoOptions(LfoSampleGlide, true, true)), 48000)
	// A full-scale glide over a 4 Hz cycle moves at most 2/12000 per sample.
	for i := 1; i < len(out); i++ {
		if d := math.Abs(float64(out[i] - out[i-1])); d > 1e-3 {
			t.Fatalf("glide jumped %.5f at sample %d", d, i)
		}
	}
}

// TestLfo_Retrigger checks a rising gate restarts the phase only when the
// retrigger flag is set.
func TestLfo_Retrigger(t *testing.T) {
	bothBackends(t, 48000, testLfoRetrigger[float32, Float], testLfoRetrigger[int32, Fixed])
}

func testLfoRetrigger[T Num, B Backend[T]](t *testing.T, ctx *Context[T, B]) {
	high := ctx.Value(KindSample, 1)
	for _, retrig := range []bool{true, false} {
		l := NewLfo[T, B](3)
		p := lfoParams(ctx, 5, 1, NewLfoOptions(LfoSaw, true, retrig))
		for range 1000 {
			l.Next(ctx, high, p)
		}
		l.Next(ctx, 0, p)
		got := ctx.Float(KindSample, l.Next(ctx, high, p))
		if retrig && math.Abs(float64(got)) > 1e-3 {
			t.Errorf("retrigger: first value after gate %.4f, want 0", got)
		}
		if !retrig && math.Abs(float64(got)) < 0.01 {
			t.Errorf("free running: value after gate %.4f, want unchanged phase", got)
		}
	}
}
