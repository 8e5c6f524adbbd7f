// synth_constants.go - Shared constants for the voice engine

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

// Nominal ranges in natural units.
const (
	SampleHeadroom = 8    // samples span [-8, 8), about 9 dB over unit reference
	NoteMax        = 128  // highest note, also the filter cutoff ceiling
	NoteOffsetMax  = 64   // tune offsets span [-64, 64) semitones
	EnvTimeMax     = 16   // longest attack/decay/release in seconds
	LfoFreqMax     = 32   // fastest LFO rate in Hz
	CoarseTuneMax  = 32   // coarse tune span used by the parameter registry
	FineTuneMax    = 2    // fine tune span
	scalarMaxF     = 1 - 0x1p-24
)

const (
	ShapeMax        = 0.9375 // phase-distortion ceiling
	ResonanceMax    = 0.9375 // maps full resonance to minimal damping
	GateThreshold   = 0.5
	AttackThreshold = 0.98
	CutoffRatioMax  = 0.3 // prewarp limit as a fraction of the sample rate

	// Envelope accumulator bounds. Both sit strictly inside [0, 1) so the
	// approach law never divides by a zero span.
	EnvSignalMin = 0x0.0004p0
	EnvSignalMax = 1 - 0x0.0004p0
)

// ModSlots is the number of routing slots per modulation source row.
const ModSlots = 4

// Fixed-point images of the constants above.
const (
	shapeMaxFx      = 61440 // u0.16
	resonanceMaxFx  = 61440 // u0.16
	gateThresholdFx = 2048  // s4.12
	envSignalMinFx  = 4 << 13
	envSignalMaxFx  = (1<<16 - 4) << 13
	attackThreshFx  = 526133494 // 0.98 in s3.29
)
