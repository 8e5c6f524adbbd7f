// iter_test.go - Iterator adapter tests

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
	"slices"
	"testing"

	"github.com/google/go-cmp/cmp"
)

// TestRepeat_Drive checks the adapters count correctly and honour an early
// break.
func TestRepeat_Drive(t *testing.T) {
	got := slices.Collect(Drive(Repeat(3, 4), func(v int) int { return v * 2 }))
	if diff := cmp.Diff([]int{6, 6, 6, 6}, got); diff != "" {
		t.Errorf("Drive(Repeat) (-want +got):\n%s", diff)
	}

	calls := 0
	for range Drive(Repeat(1, -1), func(v int) int { calls++; return v }) {
		if calls == 10 {
			break
		}
	}
	if calls != 10 {
		t.Errorf("step ran %d times after break at 10", calls)
	}
}

// TestGateSeq checks the gate pattern on the fixed backend.
func TestGateSeq(t *testing.T) {
	ctx, err := NewFixedContext(44100)
	if err != nil {
		t.Fatal(err)
	}
	got := slices.Collect(GateSeq(ctx, 2, 3))
	want := []int32{4096, 4096, 0, 0, 0}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("GateSeq (-want +got):\n%s", diff)
	}
}

// TestEnv_StreamMatchesNext checks the envelope stream yields what stepping
// it by hand does.
func TestEnv_StreamMatchesNext(t *testing.T) {
	ctx, err := NewFloatContext(48000)
	if err != nil {
		t.Fatal(err)
	}
	p := EnvParams[float32]{Attack: 0.001, Decay: 0.002, Sustain: 0.4, Release: 0.001}

	a := NewEnv[float32, Float]()
	streamed := slices.Collect(a.Stream(ctx, GateSeq(ctx, 200, 100), p))

	b := NewEnv[float32, Float]()
	var stepped []float32
	for g := range GateSeq(ctx, 200, 100) {
		stepped = append(stepped, b.Next(ctx, g, p))
	}
	if diff := cmp.Diff(stepped, streamed); diff != "" {
		t.Errorf("Stream differs from Next (-next +stream):\n%s", diff)
	}
}

// TestVoice_FillMatchesStream renders the same note through Fill and Stream.
func TestVoice_FillMatchesStream(t *testing.T) {
	ctx, err := NewFixedContext(48000)
	if err != nil {
		t.Fatal(err)
	}
	params, matrix, err := Realize[int32, Fixed](DefaultPatch())
	if err != nil {
		t.Fatal(err)
	}
	in := VoiceInput[int32]{
		Note:     ctx.Value(KindNote, 60),
		Gate:     ctx.Value(KindSample, 1),
		Velocity: ctx.Value(KindScalar, 0.8),
	}

	a, _ := NewFixedVoice(1, 2)
	filled := make([]int32, 2048)
	a.Fill(ctx, &matrix, in, ChannelInput[int32]{}, &params, filled)

	b, _ := NewFixedVoice(1, 2)
	frame := VoiceFrame[int32]{In: in, Params: &params}
	streamed := slices.Collect(b.Stream(ctx, &matrix, Repeat(frame, len(filled))))
	if diff := cmp.Diff(filled, streamed); diff != "" {
		t.Errorf("Stream differs from Fill (-fill +stream):\n%s", diff)
	}
}

// TestSeededRNG checks determinism, Reset and SetSeed.
func TestSeededRNG(t *testing.T) {
	draw := func(r *SeededRNG, n int) []uint64 {
		out := make([]uint64, n)
		for i := range out {
			out[i] = r.Uint64()
		}
		return out
	}
	a, b := NewSeededRNG(42), NewSeededRNG(42)
	first := draw(a, 8)
	if diff := cmp.Diff(first, draw(b, 8)); diff != "" {
		t.Errorf("same seed diverged (-a +b):\n%s", diff)
	}
	a.Reset()
	if diff := cmp.Diff(first, draw(a, 8)); diff != "" {
		t.Errorf("Reset did not rewind (-first +after):\n%s", diff)
	}
	a.SetSeed(43)
	if a.Seed() != 43 {
		t.Errorf("Seed() = %d after SetSeed(43)", a.Seed())
	}
	if slices.Equal(first, draw(a, 8)) {
		t.Error("different seeds produced the same stream")
	}
}
