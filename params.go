// params.go - Registry of continuous voice parameters

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

import "fmt"

// ParamID identifies one continuous voice parameter.
type ParamID uint8

const (
	ParamOsc1Tune ParamID = iota
	ParamOsc1Shape
	ParamOsc2Tune
	ParamOsc2Shape
	ParamRingMixA
	ParamRingMixB
	ParamRingMixMod
	ParamFiltCutoff
	ParamFiltResonance
	ParamFiltEnvMod
	ParamFiltVelMod
	ParamFiltKbdTracking
	ParamFiltLowMix
	ParamFiltBandMix
	ParamFiltHighMix
	ParamFiltEnvAttack
	ParamFiltEnvDecay
	ParamFiltEnvSustain
	ParamFiltEnvRelease
	ParamAmpEnvAttack
	ParamAmpEnvDecay
	ParamAmpEnvSustain
	ParamAmpEnvRelease
	ParamLfo1Freq
	ParamLfo1Depth
	ParamLfo2Freq
	ParamLfo2Depth
	ParamEnv1Attack
	ParamEnv1Decay
	ParamEnv1Sustain
	ParamEnv1Release
	ParamEnv2Attack
	ParamEnv2Decay
	ParamEnv2Sustain
	ParamEnv2Release
	NumParams
)

// Param describes a parameter: its kind, the destination that modulates it
// (DestNull when none), and the natural-unit span a controller sweeps.
type Param struct {
	ID   ParamID
	Name string
	Kind Kind
	Dest ModDest
	Lo   float32
	Hi   float32
}

func (p Param) String() string { return p.Name }

func scalarParam(id ParamID, name string, dest ModDest) Param {
	return Param{ID: id, Name: name, Kind: KindScalar, Dest: dest, Lo: 0, Hi: 1}
}

func timeParam(id ParamID, name string, dest ModDest) Param {
	return Param{ID: id, Name: name, Kind: KindEnvParam, Dest: dest, Lo: 0, Hi: EnvTimeMax}
}

var paramTable = [NumParams]Param{
	ParamOsc1Tune:        {ParamOsc1Tune, "osc1.tune", KindNoteOffset, DestOsc1Tune, -CoarseTuneMax, CoarseTuneMax},
	ParamOsc1Shape:       {ParamOsc1Shape, "osc1.shape", KindScalar, DestOsc1Shape, 0, ShapeMax},
	ParamOsc2Tune:        {ParamOsc2Tune, "osc2.tune", KindNoteOffset, DestOsc2Tune, -CoarseTuneMax, CoarseTuneMax},
	ParamOsc2Shape:       {ParamOsc2Shape, "osc2.shape", KindScalar, DestOsc2Shape, 0, ShapeMax},
	ParamRingMixA:        scalarParam(ParamRingMixA, "ring.mix_a", DestRingMixA),
	ParamRingMixB:        scalarParam(ParamRingMixB, "ring.mix_b", DestRingMixB),
	ParamRingMixMod:      scalarParam(ParamRingMixMod, "ring.mix_mod", DestRingMixMod),
	ParamFiltCutoff:      {ParamFiltCutoff, "filter.cutoff", KindNote, DestFiltCutoff, 0, NoteMax},
	ParamFiltResonance:   scalarParam(ParamFiltResonance, "filter.resonance", DestFiltResonance),
	ParamFiltEnvMod:      {ParamFiltEnvMod, "filter.env_mod", KindIScalar, DestFiltEnvMod, -1, 1},
	ParamFiltVelMod:      {ParamFiltVelMod, "filter.vel_mod", KindIScalar, DestFiltVelMod, -1, 1},
	ParamFiltKbdTracking: scalarParam(ParamFiltKbdTracking, "filter.kbd_tracking", DestFiltKbdTracking),
	ParamFiltLowMix:      scalarParam(ParamFiltLowMix, "filter.low_mix", DestFiltLowMix),
	ParamFiltBandMix:     scalarParam(ParamFiltBandMix, "filter.band_mix", DestFiltBandMix),
	ParamFiltHighMix:     scalarParam(ParamFiltHighMix, "filter.high_mix", DestFiltHighMix),
	ParamFiltEnvAttack:   timeParam(ParamFiltEnvAttack, "filter_env.attack", DestFiltEnvAttack),
	ParamFiltEnvDecay:    timeParam(ParamFiltEnvDecay, "filter_env.decay", DestFiltEnvDecay),
	ParamFiltEnvSustain:  scalarParam(ParamFiltEnvSustain, "filter_env.sustain", DestFiltEnvSustain),
	ParamFiltEnvRelease:  timeParam(ParamFiltEnvRelease, "filter_env.release", DestFiltEnvRelease),
	ParamAmpEnvAttack:    timeParam(ParamAmpEnvAttack, "amp_env.attack", DestAmpEnvAttack),
	ParamAmpEnvDecay:     timeParam(ParamAmpEnvDecay, "amp_env.decay", DestAmpEnvDecay),
	ParamAmpEnvSustain:   scalarParam(ParamAmpEnvSustain, "amp_env.sustain", DestAmpEnvSustain),
	ParamAmpEnvRelease:   timeParam(ParamAmpEnvRelease, "amp_env.release", DestAmpEnvRelease),
	ParamLfo1Freq:        {ParamLfo1Freq, "lfo1.freq", KindLfoFreq, DestNull, 0, LfoFreqMax},
	ParamLfo1Depth:       scalarParam(ParamLfo1Depth, "lfo1.depth", DestNull),
	ParamLfo2Freq:        {ParamLfo2Freq, "lfo2.freq", KindLfoFreq, DestLfo2Freq, 0, LfoFreqMax},
	ParamLfo2Depth:       scalarParam(ParamLfo2Depth, "lfo2.depth", DestLfo2Depth),
	ParamEnv1Attack:      timeParam(ParamEnv1Attack, "env1.attack", DestNull),
	ParamEnv1Decay:       timeParam(ParamEnv1Decay, "env1.decay", DestNull),
	ParamEnv1Sustain:     scalarParam(ParamEnv1Sustain, "env1.sustain", DestNull),
	ParamEnv1Release:     timeParam(ParamEnv1Release, "env1.release", DestNull),
	ParamEnv2Attack:      timeParam(ParamEnv2Attack, "env2.attack", DestEnv2Attack),
	ParamEnv2Decay:       timeParam(ParamEnv2Decay, "env2.decay", DestEnv2Decay),
	ParamEnv2Sustain:     scalarParam(ParamEnv2Sustain, "env2.sustain", DestEnv2Sustain),
	ParamEnv2Release:     timeParam(ParamEnv2Release, "env2.release", DestEnv2Release),
}

// destParam maps each destination back to the parameter it moves.
var destParam [NumModDest]ParamID

func init() {
	for _, p := range paramTable {
		if p.Dest != DestNull {
			destParam[p.Dest] = p.ID
		}
	}
}

// Params returns the parameter registry in ParamID order.
func Params() []Param {
	out := make([]Param, NumParams)
	copy(out, paramTable[:])
	return out
}

// ParamInfo returns the descriptor for id.
func ParamInfo(id ParamID) (Param, error) {
	if id >= NumParams {
		return Param{}, fmt.Errorf("param %d out of range", id)
	}
	return paramTable[id], nil
}

// ParamByName looks a parameter up by its dotted name.
func ParamByName(name string) (Param, bool) {
	for _, p := range paramTable {
		if p.Name == name {
			return p, true
		}
	}
	return Param{}, false
}

func (id ParamID) String() string {
	if id < NumParams {
		return paramTable[id].Name
	}
	return fmt.Sprintf("param(%d)", uint8(id))
}

// Field returns a pointer to the value of id inside p, or nil when id is out
// of range.
func (p *VoiceParams[T]) Field(id ParamID) *T {
	switch id {
	case ParamOsc1Tune:
		return &p.Osc.Primary.Tune
	case ParamOsc1Shape:
		return &p.Osc.Primary.Shape
	case ParamOsc2Tune:
		return &p.Osc.Secondary.Tune
	case ParamOsc2Shape:
		return &p.Osc.Secondary.Shape
	case ParamRingMixA:
		return &p.Ring.MixA
	case ParamRingMixB:
		return &p.Ring.MixB
	case ParamRingMixMod:
		return &p.Ring.MixMod
	case ParamFiltCutoff:
		return &p.Filt.Filt.Cutoff
	case ParamFiltResonance:
		return &p.Filt.Filt.Resonance
	case ParamFiltEnvMod:
		return &p.Filt.EnvMod
	case ParamFiltVelMod:
		return &p.Filt.VelMod
	case ParamFiltKbdTracking:
		return &p.Filt.KbdTracking
	case ParamFiltLowMix:
		return &p.Filt.LowMix
	case ParamFiltBandMix:
		return &p.Filt.BandMix
	case ParamFiltHighMix:
		return &p.Filt.HighMix
	case ParamFiltEnvAttack, ParamFiltEnvDecay, ParamFiltEnvSustain, ParamFiltEnvRelease:
		return p.FiltEnv.field(id - ParamFiltEnvAttack)
	case ParamAmpEnvAttack, ParamAmpEnvDecay, ParamAmpEnvSustain, ParamAmpEnvRelease:
		return p.AmpEnv.field(id - ParamAmpEnvAttack)
	}
	return p.Mod.Field(id)
}

// Field returns a pointer to the value of id inside p for the LFO and
// modulation-envelope parameters, or nil for any other id.
func (p *ModSectionParams[T]) Field(id ParamID) *T {
	switch id {
	case ParamLfo1Freq:
		return &p.Lfo1.Freq
	case ParamLfo1Depth:
		return &p.Lfo1.Depth
	case ParamLfo2Freq:
		return &p.Lfo2.Freq
	case ParamLfo2Depth:
		return &p.Lfo2.Depth
	case ParamEnv1Attack, ParamEnv1Decay, ParamEnv1Sustain, ParamEnv1Release:
		return p.Env1.field(id - ParamEnv1Attack)
	case ParamEnv2Attack, ParamEnv2Decay, ParamEnv2Sustain, ParamEnv2Release:
		return p.Env2.field(id - ParamEnv2Attack)
	}
	return nil
}

// field indexes an envelope's controls in ADSR order.
func (p *EnvParams[T]) field(i ParamID) *T {
	switch i {
	case 0:
		return &p.Attack
	case 1:
		return &p.Decay
	case 2:
		return &p.Sustain
	}
	return &p.Release
}

// modulateRange applies m to every parameter whose destination lies in
// [lo, hi).
func modulateRange[T Num, B Backend[T], P interface{ Field(ParamID) *T }](m *Modulator[T, B], p P, lo, hi ModDest) {
	for d := lo; d < hi; d++ {
		if !m.Routed(d) {
			continue
		}
		info := paramTable[destParam[d]]
		if f := p.Field(info.ID); f != nil {
			*f = m.Modulate(d, info.Kind, *f)
		}
	}
}
