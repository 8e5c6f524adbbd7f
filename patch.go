// patch.go - Backend-independent patch description

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
	"fmt"
)

// OscPatch describes one oscillator. Coarse spans +-CoarseTuneMax and Fine
// +-FineTuneMax semitones; they are summed into the oscillator's tune.
type OscPatch struct {
	Wave   OscWave
	Coarse float32
	Fine   float32
	Shape  float32
}

// RingPatch describes the ring modulator mix.
type RingPatch struct {
	MixA   float32
	MixB   float32
	MixMod float32
}

// FilterPatch describes the modulated filter. Cutoff is a note number.
type FilterPatch struct {
	Cutoff      float32
	Resonance   float32
	EnvMod      float32
	VelMod      float32
	KbdTracking float32
	LowMix      float32
	BandMix     float32
	HighMix     float32
}

// EnvPatch describes an envelope; times are in seconds.
type EnvPatch struct {
	Attack  float32
	Decay   float32
	Sustain float32
	Release float32
}

// LfoPatch describes an LFO.
type LfoPatch struct {
	Wave      LfoWave
	Freq      float32
	Depth     float32
	Bipolar   bool
	Retrigger bool
}

// Options packs the LFO flags.
func (l LfoPatch) Options() LfoOptions { return NewLfoOptions(l.Wave, l.Bipolar, l.Retrigger) }

// RoutePatch is one modulation route.
type RoutePatch struct {
	Source ModSrc
	Dest   ModDest
	Depth  float32
}

// Patch is a complete voice setup in natural units. It converts to either
// backend with Realize.
type Patch struct {
	Name      string
	Osc1      OscPatch
	Osc2      OscPatch
	Sync      bool
	Ring      RingPatch
	Filter    FilterPatch
	FilterEnv EnvPatch
	AmpEnv    EnvPatch
	Lfo1      LfoPatch
	Lfo2      LfoPatch
	Env1      EnvPatch
	Env2      EnvPatch
	Routes    []RoutePatch
}

// ErrTooManyRoutes is returned when a source has more routes than slots.
var ErrTooManyRoutes = errors.New("too many routes for source")

// DefaultPatch is a plain two-oscillator lead: saws an octave apart through
// a low-pass filter with gentle LFO1 cutoff movement.
func DefaultPatch() Patch {
	return Patch{
		Name: "init",
		Osc1: OscPatch{Wave: WaveSaw},
		Osc2: OscPatch{Wave: WaveSaw, Coarse: 12},
		Ring: RingPatch{MixA: 0.5, MixB: 0.5},
		Filter: FilterPatch{
			Cutoff:    84,
			Resonance: 0.3,
			EnvMod:    0.15,
			LowMix:    1,
		},
		FilterEnv: EnvPatch{Attack: 0.01, Decay: 0.3, Sustain: 0.5, Release: 0.3},
		AmpEnv:    EnvPatch{Attack: 0.01, Decay: 0.2, Sustain: 0.8, Release: 0.3},
		Lfo1:      LfoPatch{Wave: LfoSine, Freq: 5, Depth: 1, Bipolar: true, Retrigger: true},
		Lfo2:      LfoPatch{Wave: LfoTriangle, Freq: 0.5, Depth: 1, Bipolar: true, Retrigger: true},
		Env1:      EnvPatch{Attack: 0.1, Decay: 0.5, Sustain: 0.5, Release: 0.5},
		Env2:      EnvPatch{Attack: 0.1, Decay: 0.5, Sustain: 0.5, Release: 0.5},
		Routes: []RoutePatch{
			{Source: SrcLfo1, Dest: DestFiltCutoff, Depth: 0.02},
			{Source: SrcModWheel, Dest: DestFiltCutoff, Depth: 0.2},
		},
	}
}

// Value returns the natural-unit value of a registry parameter. Oscillator
// tune reports coarse plus fine.
func (p *Patch) Value(id ParamID) float32 {
	switch id {
	case ParamOsc1Tune:
		return p.Osc1.Coarse + p.Osc1.Fine
	case ParamOsc2Tune:
		return p.Osc2.Coarse + p.Osc2.Fine
	}
	if f := p.field(id); f != nil {
		return *f
	}
	return 0
}

// SetValue sets a registry parameter, clamped to its span. Setting an
// oscillator tune sets the coarse value and clears fine.
func (p *Patch) SetValue(id ParamID, v float32) error {
	info, err := ParamInfo(id)
	if err != nil {
		return err
	}
	v = clampF(v, info.Lo, info.Hi)
	switch id {
	case ParamOsc1Tune:
		p.Osc1.Coarse, p.Osc1.Fine = v, 0
		return nil
	case ParamOsc2Tune:
		p.Osc2.Coarse, p.Osc2.Fine = v, 0
		return nil
	}
	*p.field(id) = v
	return nil
}

func (p *Patch) field(id ParamID) *float32 {
	switch id {
	case ParamOsc1Shape:
		return &p.Osc1.Shape
	case ParamOsc2Shape:
		return &p.Osc2.Shape
	case ParamRingMixA:
		return &p.Ring.MixA
	case ParamRingMixB:
		return &p.Ring.MixB
	case ParamRingMixMod:
		return &p.Ring.MixMod
	case ParamFiltCutoff:
		return &p.Filter.Cutoff
	case ParamFiltResonance:
		return &p.Filter.Resonance
	case ParamFiltEnvMod:
		return &p.Filter.EnvMod
	case ParamFiltVelMod:
		return &p.Filter.VelMod
	case ParamFiltKbdTracking:
		return &p.Filter.KbdTracking
	case ParamFiltLowMix:
		return &p.Filter.LowMix
	case ParamFiltBandMix:
		return &p.Filter.BandMix
	case ParamFiltHighMix:
		return &p.Filter.HighMix
	case ParamLfo1Freq:
		return &p.Lfo1.Freq
	case ParamLfo1Depth:
		return &p.Lfo1.Depth
	case ParamLfo2Freq:
		return &p.Lfo2.Freq
	case ParamLfo2Depth:
		return &p.Lfo2.Depth
	}
	var env *EnvPatch
	var base ParamID
	switch {
	case id >= ParamFiltEnvAttack && id <= ParamFiltEnvRelease:
		env, base = &p.FilterEnv, ParamFiltEnvAttack
	case id >= ParamAmpEnvAttack && id <= ParamAmpEnvRelease:
		env, base = &p.AmpEnv, ParamAmpEnvAttack
	case id >= ParamEnv1Attack && id <= ParamEnv1Release:
		env, base = &p.Env1, ParamEnv1Attack
	case id >= ParamEnv2Attack && id <= ParamEnv2Release:
		env, base = &p.Env2, ParamEnv2Attack
	default:
		return nil
	}
	switch id - base {
	case 0:
		return &env.Attack
	case 1:
		return &env.Decay
	case 2:
		return &env.Sustain
	}
	return &env.Release
}

// Realize converts p into backend values. Every value saturates to its
// kind's domain.
func Realize[T Num, B Backend[T]](p Patch) (VoiceParams[T], ModMatrix[T], error) {
	var be B
	var vp VoiceParams[T]
	for _, info := range paramTable {
		*vp.Field(info.ID) = be.FromFloat(info.Kind, p.Value(info.ID))
	}
	vp.Osc1Wave = p.Osc1.Wave
	vp.Osc2Wave = p.Osc2.Wave
	vp.Osc.Sync = p.Sync
	vp.Mod.Lfo1.Options = p.Lfo1.Options()
	vp.Mod.Lfo2.Options = p.Lfo2.Options()

	var m ModMatrix[T]
	for _, r := range p.Routes {
		if r.Source >= NumModSrc || r.Dest >= NumModDest {
			return vp, m, fmt.Errorf("patch %q: route %v -> %v out of range", p.Name, r.Source, r.Dest)
		}
		if err := m.Add(r.Source, r.Dest, be.FromFloat(KindIScalar, r.Depth)); err != nil {
			return vp, m, fmt.Errorf("patch %q: %v: %w", p.Name, r.Source, ErrTooManyRoutes)
		}
	}
	return vp, m, nil
}
