// iter.go - Iterator adapters over the per-sample API

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

import "iter"

// Drive maps every input of seq through step. It is the one adapter the
// device streams below are built from.
func Drive[In, Out any](seq iter.Seq[In], step func(In) Out) iter.Seq[Out] {
	return func(yield func(Out) bool) {
		for in := range seq {
			if !yield(step(in)) {
				return
			}
		}
	}
}

// Repeat yields v n times; n < 0 repeats forever.
func Repeat[T any](v T, n int) iter.Seq[T] {
	return func(yield func(T) bool) {
		for i := 0; n < 0 || i < n; i++ {
			if !yield(v) {
				return
			}
		}
	}
}

// GateSeq yields a gate held high for on samples and then low for off
// samples.
func GateSeq[T Num, B Backend[T]](ctx *Context[T, B], on, off int) iter.Seq[T] {
	high := ctx.Value(KindSample, 1)
	return func(yield func(T) bool) {
		for i := range on + off {
			g := high
			if i >= on {
				g = 0
			}
			if !yield(g) {
				return
			}
		}
	}
}

// Stream runs the oscillator once per note.
func (o *Osc[T, B]) Stream(ctx *Context[T, B], notes iter.Seq[T], p OscParams[T]) iter.Seq[OscOutput[T]] {
	return Drive(notes, func(n T) OscOutput[T] { return o.Next(ctx, n, p) })
}

// Stream runs the filter once per input sample.
func (f *Filt[T, B]) Stream(ctx *Context[T, B], in iter.Seq[T], p FiltParams[T]) iter.Seq[FiltOutput[T]] {
	return Drive(in, func(x T) FiltOutput[T] { return f.Next(ctx, x, p) })
}

// Stream runs the envelope once per gate value.
func (e *Env[T, B]) Stream(ctx *Context[T, B], gates iter.Seq[T], p EnvParams[T]) iter.Seq[T] {
	return Drive(gates, func(g T) T { return e.Next(ctx, g, p) })
}

// Stream runs the LFO once per gate value.
func (l *Lfo[T, B]) Stream(ctx *Context[T, B], gates iter.Seq[T], p LfoParams[T]) iter.Seq[T] {
	return Drive(gates, func(g T) T { return l.Next(ctx, g, p) })
}

// VoiceFrame is one sample's worth of voice input.
type VoiceFrame[T Num] struct {
	In      VoiceInput[T]
	Channel ChannelInput[T]
	Params  *VoiceParams[T]
}

// Stream runs the voice once per frame. matrix is presented on the first
// frame only.
func (v *Voice[T, B]) Stream(ctx *Context[T, B], matrix *ModMatrix[T], frames iter.Seq[VoiceFrame[T]]) iter.Seq[T] {
	return Drive(frames, func(f VoiceFrame[T]) T {
		out := v.Next(ctx, matrix, f.In, f.Channel, *f.Params)
		matrix = nil
		return out
	})
}

// Fill renders len(buf) samples with constant inputs. matrix is presented
// on the first sample only.
func (v *Voice[T, B]) Fill(ctx *Context[T, B], matrix *ModMatrix[T], in VoiceInput[T], ch ChannelInput[T], p *VoiceParams[T], buf []T) {
	for i := range buf {
		buf[i] = v.Next(ctx, matrix, in, ch, *p)
		matrix = nil
	}
}
