// voice_benchmark_test.go - Per-sample cost of the voice and its devices

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

import "testing"

// createBenchmarkVoice builds a gated voice running the default patch.
func createBenchmarkVoice[T Num, B Backend[T]](b *testing.B) (*Context[T, B], *Voice[T, B], VoiceInput[T], VoiceParams[T], ModMatrix[T]) {
	ctx, err := NewContext[T, B](48000)
	if err != nil {
		b.Fatal(err)
	}
	params, matrix, err := Realize[T, B](DefaultPatch())
	if err != nil {
		b.Fatal(err)
	}
	v, err := NewVoice[T, B](1, 2)
	if err != nil {
		b.Fatal(err)
	}
	in := VoiceInput[T]{
		Note:     ctx.Value(KindNote, 60),
		Gate:     ctx.Value(KindSample, 1),
		Velocity: ctx.Value(KindScalar, 0.8),
	}
	return ctx, v, in, params, matrix
}

// BenchmarkVoice_Float benchmarks one float voice sample with the default patch
func BenchmarkVoice_Float(b *testing.B) {
	ctx, v, in, params, matrix := createBenchmarkVoice[float32, Float](b)
	v.Next(ctx, &matrix, in, ChannelInput[float32]{}, params)

	b.ResetTimer()
	b.ReportAllocs()

	for i := 0; i < b.N; i++ {
		_ = v.Next(ctx, nil, in, ChannelInput[float32]{}, params)
	}
}

// BenchmarkVoice_Fixed benchmarks one fixed-point voice sample with the default patch
func BenchmarkVoice_Fixed(b *testing.B) {
	ctx, v, in, params, matrix := createBenchmarkVoice[int32, Fixed](b)
	v.Next(ctx, &matrix, in, ChannelInput[int32]{}, params)

	b.ResetTimer()
	b.ReportAllocs()

	for i := 0; i < b.N; i++ {
		_ = v.Next(ctx, nil, in, ChannelInput[int32]{}, params)
	}
}

// BenchmarkVoice_Fixed_MatrixRebuild benchmarks a sample that re-presents the matrix
func BenchmarkVoice_Fixed_MatrixRebuild(b *testing.B) {
	ctx, v, in, params, matrix := createBenchmarkVoice[int32, Fixed](b)

	b.ResetTimer()
	b.ReportAllocs()

	for i := 0; i < b.N; i++ {
		_ = v.Next(ctx, &matrix, in, ChannelInput[int32]{}, params)
	}
}

// BenchmarkFilt_Fixed benchmarks the fixed state-variable filter alone
func BenchmarkFilt_Fixed(b *testing.B) {
	ctx, err := NewFixedContext(48000)
	if err != nil {
		b.Fatal(err)
	}
	var f Filt[int32, Fixed]
	p := FiltParams[int32]{Cutoff: ctx.Value(KindNote, 90), Resonance: ctx.Value(KindScalar, 0.5)}
	x := ctx.Value(KindSample, 0.5)

	b.ResetTimer()
	b.ReportAllocs()

	for i := 0; i < b.N; i++ {
		x = -x
		_ = f.Next(ctx, x, p)
	}
}

// BenchmarkOsc_Fixed benchmarks the fixed oscillator with phase distortion
func BenchmarkOsc_Fixed(b *testing.B) {
	ctx, err := NewFixedContext(48000)
	if err != nil {
		b.Fatal(err)
	}
	var o Osc[int32, Fixed]
	p := OscParams[int32]{Shape: ctx.Value(KindScalar, 0.5)}
	note := ctx.Value(KindNote, 69)

	b.ResetTimer()
	b.ReportAllocs()

	for i := 0; i < b.N; i++ {
		_ = o.Next(ctx, note, p)
	}
}
