// osc.go - Phase-distortion oscillator with hard sync

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

// OscOutput holds the four waveforms an oscillator emits each sample.
type OscOutput[T Num] struct {
	Sin T
	Sq  T
	Tri T
	Saw T
}

// OscWave selects one of the oscillator outputs.
type OscWave uint8

const (
	WaveSaw OscWave = iota
	WaveSquare
	WaveTriangle
	WaveSine
	numOscWaves
)

var oscWaveNames = [numOscWaves]string{
	WaveSaw:      "saw",
	WaveSquare:   "square",
	WaveTriangle: "triangle",
	WaveSine:     "sine",
}

func (w OscWave) String() string {
	if w < numOscWaves {
		return oscWaveNames[w]
	}
	return "invalid"
}

// ParseOscWave looks a waveform up by name.
func ParseOscWave(name string) (OscWave, bool) {
	for i, n := range oscWaveNames {
		if n == name {
			return OscWave(i), true
		}
	}
	return WaveSaw, false
}

// Select returns the output for w. Unknown waves select the saw.
func (o OscOutput[T]) Select(w OscWave) T {
	switch w {
	case WaveSquare:
		return o.Sq
	case WaveTriangle:
		return o.Tri
	case WaveSine:
		return o.Sin
	}
	return o.Saw
}

// OscParams are the per-sample oscillator controls. Tune is a NoteOffset
// added to the played note; Shape is the phase-distortion amount (Scalar,
// clamped to ShapeMax).
type OscParams[T Num] struct {
	Tune  T
	Shape T
}

// SyncMode selects an oscillator's role in a hard-sync chain.
type SyncMode uint8

const (
	SyncOff       SyncMode = iota
	SyncPrimary            // report zero crossings
	SyncSecondary          // restart at the reported crossing
)

func (m SyncMode) String() string {
	switch m {
	case SyncPrimary:
		return "primary"
	case SyncSecondary:
		return "secondary"
	}
	return "off"
}

// OscSync is the sync signal passed between oscillators. Crossing is only
// meaningful in SyncSecondary mode, where it holds the Scalar position of
// the primary's zero crossing inside the sample.
type OscSync[T Num] struct {
	Mode     SyncMode
	Crossing T
}

// NoSync returns the inactive sync signal.
func NoSync[T Num]() OscSync[T] { return OscSync[T]{} }

// PrimarySync asks an oscillator to report its zero crossings.
func PrimarySync[T Num]() OscSync[T] { return OscSync[T]{Mode: SyncPrimary} }

// SecondarySync forces a restart at crossing.
func SecondarySync[T Num](crossing T) OscSync[T] {
	return OscSync[T]{Mode: SyncSecondary, Crossing: crossing}
}

// Osc is a single oscillator. The zero value starts at phase 0.
//
// The phase accumulator stays linear; the shape warp is applied to a copy
// each sample. Because the warp maps [-1, s] and (s, 1) onto [-1, 0] and
// (0, 1) with slopes 1/(1+s) and 1/(1-s), the warped phase already carries
// the (1+s)/(1-s) rescale at the zero crossing and its inverse at the wrap,
// so the fundamental is unchanged by shape.
type Osc[T Num, B Backend[T]] struct {
	phase T
}

// Reset returns the oscillator to phase 0.
func (o *Osc[T, B]) Reset() { o.phase = 0 }

// Phase returns the current unwarped phase over pi.
func (o *Osc[T, B]) Phase() T { return o.phase }

// Next runs one free-running sample.
func (o *Osc[T, B]) Next(ctx *Context[T, B], note T, p OscParams[T]) OscOutput[T] {
	out, _ := o.NextSync(ctx, note, p, OscSync[T]{})
	return out
}

// NextSync runs one sample with a sync signal. A primary returns
// SecondarySync when its phase crossed zero during this sample, and NoSync
// otherwise. A secondary receiving SecondarySync(c) jumps to c times its own
// step instead of advancing.
func (o *Osc[T, B]) NextSync(ctx *Context[T, B], note T, p OscParams[T], sync OscSync[T]) (OscOutput[T], OscSync[T]) {
	be := ctx.be
	step := be.PhaseStep(&ctx.rate, be.OffsetNote(note, p.Tune))
	out := be.Waves(be.WarpPhase(o.phase, p.Shape))

	pre := o.phase
	next, _ := be.AdvancePhase(pre, step)
	var report OscSync[T]
	switch sync.Mode {
	case SyncPrimary:
		if pre < 0 && next >= 0 {
			report = SecondarySync(be.CrossingFraction(next, step))
		}
	case SyncSecondary:
		next = be.SyncPhase(sync.Crossing, step)
	}
	o.phase = next
	return out, report
}

// SyncedOscParams drive a SyncedOscs pair.
type SyncedOscParams[T Num] struct {
	Primary   OscParams[T]
	Secondary OscParams[T]
	Sync      bool
}

// SyncedOscOutput is the output of both oscillators of a pair.
type SyncedOscOutput[T Num] struct {
	Primary   OscOutput[T]
	Secondary OscOutput[T]
}

// SyncedOscs is a primary/secondary oscillator pair. The primary is always
// evaluated first and its crossing is consumed by the secondary in the same
// call.
type SyncedOscs[T Num, B Backend[T]] struct {
	Primary   Osc[T, B]
	Secondary Osc[T, B]
}

// Reset returns both oscillators to phase 0.
func (s *SyncedOscs[T, B]) Reset() {
	s.Primary.Reset()
	s.Secondary.Reset()
}

// Next runs both oscillators on note.
func (s *SyncedOscs[T, B]) Next(ctx *Context[T, B], note T, p SyncedOscParams[T]) SyncedOscOutput[T] {
	mode := NoSync[T]()
	if p.Sync {
		mode = PrimarySync[T]()
	}
	a, sig := s.Primary.NextSync(ctx, note, p.Primary, mode)
	b, _ := s.Secondary.NextSync(ctx, note, p.Secondary, sig)
	return SyncedOscOutput[T]{Primary: a, Secondary: b}
}
