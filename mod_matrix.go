// mod_matrix.go - Modulation sources, destinations and routing matrix

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

// ModSrc is a modulation source.
type ModSrc uint8

const (
	SrcVelocity ModSrc = iota
	SrcAftertouch
	SrcModWheel
	SrcEnv1
	SrcEnv2
	SrcLfo1
	SrcLfo2
	NumModSrc
)

var modSrcNames = [NumModSrc]string{
	SrcVelocity:   "velocity",
	SrcAftertouch: "aftertouch",
	SrcModWheel:   "modwheel",
	SrcEnv1:       "env1",
	SrcEnv2:       "env2",
	SrcLfo1:       "lfo1",
	SrcLfo2:       "lfo2",
}

func (s ModSrc) String() string {
	if s < NumModSrc {
		return modSrcNames[s]
	}
	return fmt.Sprintf("src(%d)", uint8(s))
}

// Secondary reports whether s is computed after modulation is applied to
// the secondary sources' own parameters.
func (s ModSrc) Secondary() bool { return s == SrcEnv2 || s == SrcLfo2 }

// ParseModSrc looks a source up by name.
func ParseModSrc(name string) (ModSrc, bool) {
	for i, n := range modSrcNames {
		if n == name {
			return ModSrc(i), true
		}
	}
	return 0, false
}

// ModDest is a modulation destination. The numeric values are the codes
// written by the NRPN destination field.
type ModDest uint8

const (
	DestNull ModDest = iota
	DestOsc1Tune
	DestOsc1Shape
	DestOsc2Tune
	DestOsc2Shape
	DestRingMixA
	DestRingMixB
	DestRingMixMod
	DestFiltCutoff
	DestFiltResonance
	DestFiltEnvMod
	DestFiltVelMod
	DestFiltKbdTracking
	DestFiltLowMix
	DestFiltBandMix
	DestFiltHighMix
	DestFiltEnvAttack
	DestFiltEnvDecay
	DestFiltEnvSustain
	DestFiltEnvRelease
	DestAmpEnvAttack
	DestAmpEnvDecay
	DestAmpEnvSustain
	DestAmpEnvRelease

	// Destinations below are reachable only from primary sources.
	DestLfo2Freq
	DestLfo2Depth
	DestEnv2Attack
	DestEnv2Decay
	DestEnv2Sustain
	DestEnv2Release
	NumModDest
)

// firstPrimaryOnly is the first destination secondary sources may not reach.
const firstPrimaryOnly = DestLfo2Freq

var modDestNames = [NumModDest]string{
	DestNull:            "null",
	DestOsc1Tune:        "osc1.tune",
	DestOsc1Shape:       "osc1.shape",
	DestOsc2Tune:        "osc2.tune",
	DestOsc2Shape:       "osc2.shape",
	DestRingMixA:        "ring.mix_a",
	DestRingMixB:        "ring.mix_b",
	DestRingMixMod:      "ring.mix_mod",
	DestFiltCutoff:      "filter.cutoff",
	DestFiltResonance:   "filter.resonance",
	DestFiltEnvMod:      "filter.env_mod",
	DestFiltVelMod:      "filter.vel_mod",
	DestFiltKbdTracking: "filter.kbd_tracking",
	DestFiltLowMix:      "filter.low_mix",
	DestFiltBandMix:     "filter.band_mix",
	DestFiltHighMix:     "filter.high_mix",
	DestFiltEnvAttack:   "filter_env.attack",
	DestFiltEnvDecay:    "filter_env.decay",
	DestFiltEnvSustain:  "filter_env.sustain",
	DestFiltEnvRelease:  "filter_env.release",
	DestAmpEnvAttack:    "amp_env.attack",
	DestAmpEnvDecay:     "amp_env.decay",
	DestAmpEnvSustain:   "amp_env.sustain",
	DestAmpEnvRelease:   "amp_env.release",
	DestLfo2Freq:        "lfo2.freq",
	DestLfo2Depth:       "lfo2.depth",
	DestEnv2Attack:      "env2.attack",
	DestEnv2Decay:       "env2.decay",
	DestEnv2Sustain:     "env2.sustain",
	DestEnv2Release:     "env2.release",
}

func (d ModDest) String() string {
	if d < NumModDest {
		return modDestNames[d]
	}
	return fmt.Sprintf("dest(%d)", uint8(d))
}

// PrimaryOnly reports whether only primary sources may modulate d.
func (d ModDest) PrimaryOnly() bool { return d >= firstPrimaryOnly && d < NumModDest }

// Allows reports whether a route from src to d has any effect.
func (d ModDest) Allows(src ModSrc) bool {
	return d != DestNull && d < NumModDest && !(src.Secondary() && d.PrimaryOnly())
}

// ParseModDest looks a destination up by name.
func ParseModDest(name string) (ModDest, bool) {
	for i, n := range modDestNames {
		if n == name {
			return ModDest(i), true
		}
	}
	return DestNull, false
}

// ModRoute is one slot of a source row. Depth is an IScalar.
type ModRoute[T Num] struct {
	Dest  ModDest
	Depth T
}

// ModMatrix is the dense, source-indexed routing table external code edits.
// The zero value routes nothing.
type ModMatrix[T Num] [NumModSrc][ModSlots]ModRoute[T]

// Route sets slot of src's row.
func (m *ModMatrix[T]) Route(src ModSrc, slot int, dest ModDest, depth T) error {
	if src >= NumModSrc || slot < 0 || slot >= ModSlots || dest >= NumModDest {
		return fmt.Errorf("mod matrix: route %v slot %d -> %v out of range", src, slot, dest)
	}
	m[src][slot] = ModRoute[T]{Dest: dest, Depth: depth}
	return nil
}

// Add places a route in the first free slot of src's row.
func (m *ModMatrix[T]) Add(src ModSrc, dest ModDest, depth T) error {
	if src >= NumModSrc {
		return fmt.Errorf("mod matrix: source %v out of range", src)
	}
	for slot, r := range m[src] {
		if r.Dest == DestNull {
			return m.Route(src, slot, dest, depth)
		}
	}
	return fmt.Errorf("mod matrix: no free slot for %v", src)
}

// modRow is the sparse list of sources reaching one destination. Capacity
// is NumModSrc because routes from the same source are merged.
type modRow[T Num] struct {
	n     uint8
	src   [NumModSrc]ModSrc
	depth [NumModSrc]T
}

func (r *modRow[T]) add(src ModSrc, depth T) {
	for i := uint8(0); i < r.n; i++ {
		if r.src[i] == src {
			r.depth[i] += depth
			return
		}
	}
	if int(r.n) < len(r.src) {
		r.src[r.n] = src
		r.depth[r.n] = depth
		r.n++
	}
}

// expandedMatrix is the destination-indexed view the sample path reads.
type expandedMatrix[T Num] [NumModDest]modRow[T]

// rebuild inverts m. Null routes, zero depths and routes a secondary source
// may not take are left out.
func (x *expandedMatrix[T]) rebuild(m *ModMatrix[T]) {
	*x = expandedMatrix[T]{}
	for src := range NumModSrc {
		for _, r := range m[src] {
			if r.Depth == 0 || !r.Dest.Allows(src) {
				continue
			}
			x[r.Dest].add(src, r.Depth)
		}
	}
}

// Modulator is the bundle of source values sampled for one sample, paired
// with the routes they feed. Source values are IScalar signals.
type Modulator[T Num, B Backend[T]] struct {
	be      B
	signals [NumModSrc]T
	routes  *expandedMatrix[T]
}

// Value returns the signal of src.
func (m *Modulator[T, B]) Value(src ModSrc) T {
	if src >= NumModSrc {
		return 0
	}
	return m.signals[src]
}

// Routed reports whether any source reaches d.
func (m *Modulator[T, B]) Routed(d ModDest) bool {
	return m.routes != nil && d < NumModDest && m.routes[d].n > 0
}

// Modulate returns v, of kind k, with every route into d applied and the
// sum saturated to the domain of k.
func (m *Modulator[T, B]) Modulate(d ModDest, k Kind, v T) T {
	if !m.Routed(d) {
		return v
	}
	row := &m.routes[d]
	acc := v
	for i := uint8(0); i < row.n; i++ {
		acc += m.be.ModDelta(k, m.signals[row.src[i]], row.depth[i])
	}
	return m.be.Saturate(k, acc)
}
