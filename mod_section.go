// mod_section.go - LFOs and modulation envelopes feeding the matrix

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

// ModSectionInput carries the performance sources. All are Scalars except
// Gate, which is a Sample compared against GateThreshold.
type ModSectionInput[T Num] struct {
	Gate       T
	Velocity   T
	Aftertouch T
	ModWheel   T
}

// ModSectionParams are the controls of the two LFOs and two modulation
// envelopes.
type ModSectionParams[T Num] struct {
	Lfo1 LfoParams[T]
	Lfo2 LfoParams[T]
	Env1 EnvParams[T]
	Env2 EnvParams[T]
}

// ModSection owns the modulation generators and the expanded routing cache.
// LFO1 and ENV1 are computed from unmodulated parameters; their values then
// modulate LFO2 and ENV2, which never see their own outputs.
type ModSection[T Num, B Backend[T]] struct {
	Lfo1 Lfo[T, B]
	Lfo2 Lfo[T, B]
	Env1 Env[T, B]
	Env2 Env[T, B]

	routes expandedMatrix[T]
}

// NewModSection returns a section whose LFOs are seeded with seed1 and seed2.
func NewModSection[T Num, B Backend[T]](seed1, seed2 uint64) *ModSection[T, B] {
	s := &ModSection[T, B]{}
	s.init(seed1, seed2)
	return s
}

func (s *ModSection[T, B]) init(seed1, seed2 uint64) {
	s.Lfo1.Seed(seed1)
	s.Lfo2.Seed(seed2)
	s.Env1.Reset()
	s.Env2.Reset()
}

// Reset returns the generators to their initial state. The routing cache is
// kept.
func (s *ModSection[T, B]) Reset() {
	s.Lfo1.Reset()
	s.Lfo2.Reset()
	s.Env1.Reset()
	s.Env2.Reset()
}

// SetMatrix rebuilds the routing cache from m.
func (s *ModSection[T, B]) SetMatrix(m *ModMatrix[T]) {
	s.routes.rebuild(m)
}

// Next samples every source for one sample. A non-nil matrix replaces the
// routing cache first; nil keeps the routes from the last matrix presented.
func (s *ModSection[T, B]) Next(ctx *Context[T, B], matrix *ModMatrix[T], in ModSectionInput[T], p ModSectionParams[T]) Modulator[T, B] {
	be := ctx.be
	if matrix != nil {
		s.routes.rebuild(matrix)
	}

	m := Modulator[T, B]{be: be, routes: &s.routes}
	m.signals[SrcVelocity] = be.ScalarSignal(in.Velocity)
	m.signals[SrcAftertouch] = be.ScalarSignal(in.Aftertouch)
	m.signals[SrcModWheel] = be.ScalarSignal(in.ModWheel)
	m.signals[SrcLfo1] = be.SampleSignal(s.Lfo1.Next(ctx, in.Gate, p.Lfo1))
	m.signals[SrcEnv1] = be.ScalarSignal(s.Env1.Next(ctx, in.Gate, p.Env1))

	// LFO2 and ENV2 read zero from themselves while their own parameters
	// are modulated; the rebuild already drops such routes.
	modulateRange(&m, &p, firstPrimaryOnly, NumModDest)

	m.signals[SrcLfo2] = be.SampleSignal(s.Lfo2.Next(ctx, in.Gate, p.Lfo2))
	m.signals[SrcEnv2] = be.ScalarSignal(s.Env2.Next(ctx, in.Gate, p.Env2))
	return m
}
