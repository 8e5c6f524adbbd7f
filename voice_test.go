// voice_test.go - Voice composition tests

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
	"errors"
	"math"
	"testing"

	"github.com/google/go-cmp/cmp"
)

// renderVoice plays note through a fresh voice built from patch: gate high
// for on samples, then low until n samples have been rendered.
func renderVoice[T Num, B Backend[T]](t *testing.T, ctx *Context[T, B], patch Patch, note, vel float32, on, n int) []float32 {
	t.Helper()
	params, matrix, err := Realize[T, B](patch)
	if err != nil {
		t.Fatalf("Realize: %v", err)
	}
	v, err := NewVoice[T, B](0x1234, 0x5678)
	if err != nil {
		t.Fatalf("NewVoice: %v", err)
	}
	in := VoiceInput[T]{
		Note:     ctx.Value(KindNote, note),
		Gate:     ctx.Value(KindSample, 1),
		Velocity: ctx.Value(KindScalar, vel),
	}
	out := make([]float32, n)
	m := &matrix
	for i := range out {
		if i == on {
			in.Gate = 0
		}
		out[i] = ctx.Float(KindSample, v.Next(ctx, m, in, ChannelInput[T]{}, params))
		m = nil
	}
	return out
}

// TestNewVoice_Seeds checks equal LFO seeds are refused.
func TestNewVoice_Seeds(t *testing.T) {
	if _, err := NewFloatVoice(7, 7); !errors.Is(err, ErrSeedsNotDistinct) {
		t.Errorf("NewFloatVoice(7, 7) error = %v, want ErrSeedsNotDistinct", err)
	}
	if _, err := NewFixedVoice(7, 8); err != nil {
		t.Errorf("NewFixedVoice(7, 8) error = %v", err)
	}
}

// TestVoice_SoundsAndReleases checks a held note is audible, the release
// decays to silence, and the voice reports itself inactive afterwards.
func TestVoice_SoundsAndReleases(t *testing.T) {
	bothBackends(t, 48000, testVoiceSoundsAndReleases[float32, Float], testVoiceSoundsAndReleases[int32, Fixed])
}

func testVoiceSoundsAndReleases[T Num, B Backend[T]](t *testing.T, ctx *Context[T, B]) {
	out := renderVoice(t, ctx, DefaultPatch(), 57, 1, 24000, 96000)
	if p := peak(out[4800:24000]); p < 0.1 {
		t.Errorf("held note peak %.4f, want audible", p)
	}
	if p := peak(out); p > SampleHeadroom {
		t.Errorf("peak %.4f beyond sample headroom", p)
	}
	if p := peak(out[90000:]); p > 1e-3 {
		t.Errorf("tail peak %.5f 1.4 s after release, want silence", p)
	}
}

// TestVoice_VelocityToCutoff routes velocity to the filter cutoff at full
// depth and compares the effective cutoff at velocity 1 and 0.
func TestVoice_VelocityToCutoff(t *testing.T) {
	bothBackends(t, 48000, testVoiceVelocityCutoff[float32, Float], testVoiceVelocityCutoff[int32, Fixed])
}

func testVoiceVelocityCutoff[T Num, B Backend[T]](t *testing.T, ctx *Context[T, B]) {
	patch := DefaultPatch()
	patch.Filter = FilterPatch{LowMix: 1}
	patch.Routes = []RoutePatch{{Source: SrcVelocity, Dest: DestFiltCutoff, Depth: 1}}
	params, matrix, err := Realize[T, B](patch)
	if err != nil {
		t.Fatal(err)
	}
	cutoff := func(vel float32) float32 {
		v, err := NewVoice[T, B](1, 2)
		if err != nil {
			t.Fatal(err)
		}
		in := VoiceInput[T]{
			Note:     ctx.Value(KindNote, 60),
			Gate:     ctx.Value(KindSample, 1),
			Velocity: ctx.Value(KindScalar, vel),
		}
		v.Next(ctx, &matrix, in, ChannelInput[T]{}, params)
		return ctx.Float(KindNote, v.Filt.Cutoff())
	}
	diff := cutoff(1) - cutoff(0)
	if math.Abs(float64(diff)-NoteMax) > 0.01*NoteMax {
		t.Errorf("cutoff difference %.3f, want %d", diff, NoteMax)
	}
}

// TestVoice_CancellingRoutes checks equal and opposite routes leave the
// output bit-identical.
func TestVoice_CancellingRoutes(t *testing.T) {
	bothBackends(t, 48000, testVoiceCancelling[float32, Float], testVoiceCancelling[int32, Fixed])
}

func testVoiceCancelling[T Num, B Backend[T]](t *testing.T, ctx *Context[T, B]) {
	base := DefaultPatch()
	withRoutes := DefaultPatch()
	withRoutes.Routes = append(withRoutes.Routes,
		RoutePatch{Source: SrcEnv1, Dest: DestOsc2Shape, Depth: 0.6},
		RoutePatch{Source: SrcEnv1, Dest: DestOsc2Shape, Depth: -0.6},
		RoutePatch{Source: SrcLfo2, Dest: DestAmpEnvSustain, Depth: 0.3},
		RoutePatch{Source: SrcLfo2, Dest: DestAmpEnvSustain, Depth: -0.3},
	)
	a := renderVoice(t, ctx, base, 60, 0.8, 9600, 14400)
	b := renderVoice(t, ctx, withRoutes, 60, 0.8, 9600, 14400)
	if diff := cmp.Diff(a, b); diff != "" {
		t.Errorf("cancelling routes changed the output:\n%s", diff)
	}
}

// TestVoice_SecondaryIsolation checks routes from LFO2 or ENV2 to their own
// parameters change nothing.
func TestVoice_SecondaryIsolation(t *testing.T) {
	bothBackends(t, 48000, testVoiceSecondaryIsolation[float32, Float], testVoiceSecondaryIsolation[int32, Fixed])
}

func testVoiceSecondaryIsolation[T Num, B Backend[T]](t *testing.T, ctx *Context[T, B]) {
	base := DefaultPatch()
	base.Routes = append(base.Routes,
		RoutePatch{Source: SrcLfo2, Dest: DestFiltResonance, Depth: 0.4},
		RoutePatch{Source: SrcEnv2, Dest: DestOsc1Shape, Depth: 0.5},
	)
	isolated := base
	isolated.Routes = append([]RoutePatch(nil), base.Routes...)
	isolated.Routes = append(isolated.Routes,
		RoutePatch{Source: SrcLfo2, Dest: DestLfo2Freq, Depth: 1},
		RoutePatch{Source: SrcLfo2, Dest: DestEnv2Attack, Depth: 1},
		RoutePatch{Source: SrcEnv2, Dest: DestLfo2Depth, Depth: -1},
		RoutePatch{Source: SrcEnv2, Dest: DestEnv2Release, Depth: 1},
	)
	a := renderVoice(t, ctx, base, 64, 1, 9600, 19200)
	b := renderVoice(t, ctx, isolated, 64, 1, 9600, 19200)
	if diff := cmp.Diff(a, b); diff != "" {
		t.Errorf("secondary self-routes changed the output:\n%s", diff)
	}
}

// TestVoice_ParamsNotModified checks modulation is applied to a copy.
func TestVoice_ParamsNotModified(t *testing.T) {
	ctx, err := NewFixedContext(48000)
	if err != nil {
		t.Fatal(err)
	}
	params, matrix, err := Realize[int32, Fixed](DefaultPatch())
	if err != nil {
		t.Fatal(err)
	}
	matrix[SrcVelocity][0] = ModRoute[int32]{DestOsc1Tune, ctx.Value(KindIScalar, 0.5)}
	before := params
	v, err := NewFixedVoice(3, 4)
	if err != nil {
		t.Fatal(err)
	}
	in := VoiceInput[int32]{Note: ctx.Value(KindNote, 60), Gate: ctx.Value(KindSample, 1), Velocity: ctx.Value(KindScalar, 1)}
	for range 100 {
		v.Next(ctx, &matrix, in, ChannelInput[int32]{}, params)
	}
	if diff := cmp.Diff(before, params); diff != "" {
		t.Errorf("params modified (-before +after):\n%s", diff)
	}
}

// TestVoice_BackendAgreement renders the default patch on both backends and
// compares them sample by sample.
func TestVoice_BackendAgreement(t *testing.T) {
	fctx, err := NewFloatContext(48000)
	if err != nil {
		t.Fatal(err)
	}
	xctx, err := NewFixedContext(48000)
	if err != nil {
		t.Fatal(err)
	}
	patch := DefaultPatch()
	a := renderVoice(t, fctx, patch, 57, 1, 36000, 48000)
	b := renderVoice(t, xctx, patch, 57, 1, 36000, 48000)
	if d := rmsDiff(a, b); d > 0.02 {
		t.Errorf("RMS difference %.4f, want < 0.02 of full scale", d)
	}

	// Sign agreement on clearly non-zero samples.
	disagree := 0
	for i := range a {
		if math.Abs(float64(a[i])) > 0.05 && (a[i] > 0) != (b[i] > 0) {
			disagree++
		}
	}
	if disagree > len(a)/100 {
		t.Errorf("%d samples with opposite sign", disagree)
	}
}
