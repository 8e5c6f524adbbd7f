// env_test.go - ADSR envelope tests

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

func envParams[T Num, B Backend[T]](ctx *Context[T, B], a, d, s, r float32) EnvParams[T] {
	return EnvParams[T]{
		Attack:  ctx.Value(KindEnvParam, a),
		Decay:   ctx.Value(KindEnvParam, d),
		Sustain: ctx.Value(KindScalar, s),
		Release: ctx.Value(KindEnvParam, r),
	}
}

// runEnv drives a fresh envelope with gate high for on samples then low for
// off samples, recording level and stage.
func runEnv[T Num, B Backend[T]](ctx *Context[T, B], p EnvParams[T], on, off int) ([]float32, []EnvState) {
	e := NewEnv[T, B]()
	var out []float32
	var states []EnvState
	for g := range GateSeq(ctx, on, off) {
		out = append(out, ctx.Float(KindScalar, e.Next(ctx, g, p)))
		states = append(states, e.State())
	}
	return out, states
}

// TestEnv_InstantAttackRelease runs an instant attack with full sustain and
// a 100 ms release at 44.1 kHz.
func TestEnv_InstantAttackRelease(t *testing.T) {
	bothBackends(t, 44100, testEnvInstant[float32, Float], testEnvInstant[int32, Fixed])
}

func testEnvInstant[T Num, B Backend[T]](t *testing.T, ctx *Context[T, B]) {
	out, _ := runEnv(ctx, envParams(ctx, 0, 0, 1, 0.1), 4410, 4410)
	rise := -1
	for i, v := range out[:50] {
		if v >= 0.98 {
			rise = i
			break
		}
	}
	if rise < 0 {
		t.Errorf("level %.4f after 50 samples, want >= 0.98", out[49])
	}
	if out[4409] < 0.99 || out[4410] < 0.99 {
		t.Errorf("level at gate off = %.4f, %.4f, want >= 0.99", out[4409], out[4410])
	}
	if out[8819] >= 0.5 {
		t.Errorf("level 100 ms after release = %.4f, want < 0.5", out[8819])
	}
}

// TestEnv_Monotonic checks the attack never falls, the release never rises,
// and the held level settles on the sustain value.
func TestEnv_Monotonic(t *testing.T) {
	bothBackends(t, 48000, testEnvMonotonic[float32, Float], testEnvMonotonic[int32, Fixed])
}

func testEnvMonotonic[T Num, B Backend[T]](t *testing.T, ctx *Context[T, B]) {
	tests := []struct {
		name       string
		a, d, s, r float32
	}{
		{"pluck", 0.005, 0.2, 0, 0.1},
		{"pad", 0.5, 0.3, 0.6, 0.8},
		{"organ", 0.01, 0.01, 0.9, 0.05},
		{"swell", 0.2, 0.1, 0.3, 0.2},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			on := 48000 * 3 / 2
			out, states := runEnv(ctx, envParams(ctx, tt.a, tt.d, tt.s, tt.r), on, 48000)
			for i := 1; i < len(out); i++ {
				switch states[i] {
				case EnvAttack:
					if out[i] < out[i-1] {
						t.Fatalf("attack fell at %d: %.5f -> %.5f", i, out[i-1], out[i])
					}
				case EnvRelease:
					if out[i] > out[i-1] {
						t.Fatalf("release rose at %d: %.5f -> %.5f", i, out[i-1], out[i])
					}
				}
			}
			if got := out[on-1]; math.Abs(float64(got-tt.s)) > 0.01 {
				t.Errorf("held level %.4f, want sustain %.2f", got, tt.s)
			}
			if states[on-1] != EnvDecay {
				t.Errorf("held stage %v, want decay", states[on-1])
			}
		})
	}
}

// TestEnv_EarlyRelease checks a gate dropped mid-attack never pushes the
// level up.
func TestEnv_EarlyRelease(t *testing.T) {
	bothBackends(t, 48000, testEnvEarlyRelease[float32, Float], testEnvEarlyRelease[int32, Fixed])
}

func testEnvEarlyRelease[T Num, B Backend[T]](t *testing.T, ctx *Context[T, B]) {
	out, states := runEnv(ctx, envParams(ctx, 1, 0.1, 0.5, 0.05), 100, 4800)
	if states[100] != EnvRelease {
		t.Fatalf("stage after gate off = %v, want release", states[100])
	}
	for i := 100; i < len(out); i++ {
		if out[i] > out[i-1] {
			t.Fatalf("level rose after gate off at %d: %.6f -> %.6f", i, out[i-1], out[i])
		}
	}
}

// TestEnv_ZeroParams checks all-zero settings stay inside the Scalar range.
func TestEnv_ZeroParams(t *testing.T) {
	bothBackends(t, 48000, testEnvZeroParams[float32, Float], testEnvZeroParams[int32, Fixed])
}

func testEnvZeroParams[T Num, B Backend[T]](t *testing.T, ctx *Context[T, B]) {
	out, _ := runEnv(ctx, envParams(ctx, 0, 0, 0, 0), 10, 10)
	for i, v := range out {
		if v < 0 || v >= 1 {
			t.Fatalf("sample %d: level %v outside [0, 1)", i, v)
		}
	}
	if out[len(out)-1] > 0.001 {
		t.Errorf("final level %v, want near 0", out[len(out)-1])
	}
}
