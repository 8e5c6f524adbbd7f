// modfilter.go - Filter with envelope, velocity and key tracking

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

// ModFiltInput carries the audio signal and the per-sample cutoff sources.
// Env and Vel are Scalars; Kbd is the played Note.
type ModFiltInput[T Num] struct {
	Signal T
	Env    T
	Vel    T
	Kbd    T
}

// ModFiltParams extend FiltParams with cutoff modulation gains and the
// output mix. EnvMod and VelMod are IScalars (full scale moves the cutoff by
// NoteMax); KbdTracking and the three mixes are Scalars.
type ModFiltParams[T Num] struct {
	Filt        FiltParams[T]
	EnvMod      T
	VelMod      T
	KbdTracking T
	LowMix      T
	BandMix     T
	HighMix     T
}

// ModFilt wraps a Filt with cutoff modulation and a low/band/high mixer.
type ModFilt[T Num, B Backend[T]] struct {
	filt   Filt[T, B]
	last   T
	cutoff T
}

// Reset clears the filter state.
func (m *ModFilt[T, B]) Reset() {
	m.filt.Reset()
	m.last = 0
	m.cutoff = 0
}

// Last returns the most recent output sample.
func (m *ModFilt[T, B]) Last() T { return m.last }

// Cutoff returns the effective cutoff Note used by the most recent sample.
func (m *ModFilt[T, B]) Cutoff() T { return m.cutoff }

// EffectiveCutoff returns the modulated cutoff for in under p, saturated to
// the Note range.
func EffectiveCutoff[T Num, B Backend[T]](ctx *Context[T, B], in ModFiltInput[T], p ModFiltParams[T]) T {
	be := ctx.be
	acc := p.Filt.Cutoff
	acc += be.ModDelta(KindNote, be.ScalarSignal(in.Env), p.EnvMod)
	acc += be.ModDelta(KindNote, be.ScalarSignal(in.Vel), p.VelMod)
	acc += be.ScaleNote(in.Kbd, p.KbdTracking)
	return be.Saturate(KindNote, acc)
}

// Next filters one sample.
func (m *ModFilt[T, B]) Next(ctx *Context[T, B], in ModFiltInput[T], p ModFiltParams[T]) T {
	be := ctx.be
	m.cutoff = EffectiveCutoff(ctx, in, p)
	f := m.filt.Next(ctx, in.Signal, FiltParams[T]{Cutoff: m.cutoff, Resonance: p.Filt.Resonance})
	out := be.ScaleSample(f.Low, p.LowMix)
	out = be.AddSamples(out, be.ScaleSample(f.Band, p.BandMix))
	out = be.AddSamples(out, be.ScaleSample(f.High, p.HighMix))
	m.last = out
	return out
}
