// env.go - Gate-driven ADSR envelope

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

// EnvState is the stage an envelope is in.
type EnvState uint8

const (
	EnvRelease EnvState = iota
	EnvAttack
	EnvDecay
)

func (s EnvState) String() string {
	switch s {
	case EnvAttack:
		return "attack"
	case EnvDecay:
		return "decay"
	}
	return "release"
}

// EnvParams are the ADSR controls. Attack, Decay and Release are EnvParam
// times; Sustain is a Scalar level.
type EnvParams[T Num] struct {
	Attack  T
	Decay   T
	Sustain T
	Release T
}

// Env is an ADSR envelope. The accumulator approaches its setpoint with a
// two-point trapezoidal law whose time constant is a quarter of the stage
// time, so a stage reaches 98% in about its nominal duration.
//
// Create envelopes with NewEnv or call Reset before use: the idle level is
// the backend's lower envelope bound, not zero.
type Env[T Num, B Backend[T]] struct {
	state    EnvState
	last     T
	setpoint T
}

// NewEnv returns an envelope idling in Release.
func NewEnv[T Num, B Backend[T]]() *Env[T, B] {
	e := &Env[T, B]{}
	e.Reset()
	return e
}

// Reset returns the envelope to Release at the lower bound.
func (e *Env[T, B]) Reset() {
	var be B
	lo, _ := be.EnvBounds()
	e.state = EnvRelease
	e.last = lo
	e.setpoint = lo
}

// State returns the current stage.
func (e *Env[T, B]) State() EnvState { return e.state }

// Next advances the envelope by one sample and returns its Scalar level.
func (e *Env[T, B]) Next(ctx *Context[T, B], gate T, p EnvParams[T]) T {
	be := ctx.be
	lo, hi := be.EnvBounds()
	prev := e.setpoint

	switch {
	case !be.GateOn(gate):
		e.state = EnvRelease
		e.setpoint = lo
	case e.state == EnvRelease:
		e.state = EnvAttack
		e.setpoint = hi
	case e.state == EnvAttack && e.last > be.EnvAttackThreshold():
		e.state = EnvDecay
	}

	var rise T
	switch e.state {
	case EnvAttack:
		rise = p.Attack
	case EnvDecay:
		e.setpoint = be.EnvFromScalar(p.Sustain)
		rise = p.Decay
	default:
		rise = p.Release
	}

	next := be.EnvStep(&ctx.rate, e.last, prev, e.setpoint, rise)
	// A gate change mid-stage can leave prev on the far side of last; hold
	// the level rather than step backwards.
	if (e.state == EnvAttack && next < e.last) || (e.state == EnvRelease && next > e.last) {
		next = e.last
	}
	e.last = next
	return be.EnvToScalar(next)
}
