// main.go - Command-line front end for the polyvoice engine

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

package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strconv"
	"strings"
	"time"

	"github.com/intuitionamiga/polyvoice"
	"github.com/intuitionamiga/polyvoice/patchfile"
)

// Version is the release string printed by the banner and -features.
const Version = "0.3.0"

// patchTimeout bounds how long a patch script may run.
const patchTimeout = 2 * time.Second

func boilerPlate() {
	fmt.Println("\n\033[38;2;255;20;147m█▀█ █▀█ █   █▄█ █ █ █▀█ █ █▀▀ █▀▀\033[0m\n\033[38;2;255;140;147m█▀▀ █▄█ █▄▄  █  ▀▄▀ █▄█ █ █▄▄ ██▄\033[0m")
	fmt.Println("\nSubtractive synth voices on float or fixed-point arithmetic.")
	fmt.Println("(c) 2024 - 2026 Zayn Otley")
	fmt.Println("https://github.com/IntuitionAmiga/IntuitionEngine")
	fmt.Println("License: GPLv3 or later")
}

type options struct {
	backend   string
	rate      int
	voices    int
	patchPath string
	render    string
	notes     string
	velocity  float64
	dur       float64
	release   float64
	hold      time.Duration
	modWheel  float64
	bend      float64
	play      bool
	keys      bool
	dump      bool
	features  bool
}

func main() {
	var o options

	flagSet := flag.NewFlagSet(os.Args[0], flag.ContinueOnError)
	flagSet.SetOutput(io.Discard)
	flagSet.StringVar(&o.backend, "backend", "float", "Numeric backend: float or fixed")
	flagSet.IntVar(&o.rate, "rate", 48000, "Sample rate in Hz")
	flagSet.IntVar(&o.voices, "voices", 8, "Voice pool size for -keys")
	flagSet.StringVar(&o.patchPath, "patch", "", "Lua patch script (default: built-in init patch)")
	flagSet.StringVar(&o.render, "render", "", "Render the chord to this WAV file")
	flagSet.StringVar(&o.notes, "notes", "60,64,67", "Comma-separated MIDI notes for -render and -play")
	flagSet.Float64Var(&o.velocity, "vel", 0.8, "Note velocity 0..1")
	flagSet.Float64Var(&o.dur, "dur", 2, "Seconds each note is held")
	flagSet.Float64Var(&o.release, "release", 1, "Seconds rendered after note off")
	flagSet.DurationVar(&o.hold, "hold", 400*time.Millisecond, "Note length for -keys")
	flagSet.Float64Var(&o.modWheel, "modwheel", 0, "Mod wheel position 0..1 for -play")
	flagSet.Float64Var(&o.bend, "bend", 0, "Pitch bend in semitones for -play")
	flagSet.BoolVar(&o.play, "play", false, "Play the chord through the audio device")
	flagSet.BoolVar(&o.keys, "keys", false, "Play the terminal keyboard")
	flagSet.BoolVar(&o.dump, "dump", false, "Print the loaded patch as a Lua script")
	flagSet.BoolVar(&o.features, "features", false, "Print build features and exit")

	flagSet.Usage = func() {
		flagSet.SetOutput(os.Stdout)
		fmt.Println("Usage: ./polyvoice -render out.wav|-play|-keys|-dump|-features [-backend float|fixed] [-patch file.lua]")
		flagSet.PrintDefaults()
	}

	if err := flagSet.Parse(os.Args[1:]); err != nil {
		if err == flag.ErrHelp {
			flagSet.Usage()
			os.Exit(0)
		}
		fmt.Printf("Error: %v\n", err)
		os.Exit(1)
	}

	if o.features {
		printFeatures()
		return
	}

	modeCount := 0
	for _, set := range []bool{o.render != "", o.play, o.keys, o.dump} {
		if set {
			modeCount++
		}
	}
	if modeCount != 1 {
		fmt.Println("Error: select exactly one mode: -render, -play, -keys, -dump or -features")
		os.Exit(1)
	}

	patch, err := loadPatch(o.patchPath)
	if err != nil {
		fmt.Printf("Error loading patch: %v\n", err)
		os.Exit(1)
	}
	if o.dump {
		if err := patchfile.Write(os.Stdout, patch); err != nil {
			fmt.Printf("Error: %v\n", err)
			os.Exit(1)
		}
		return
	}

	boilerPlate()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	switch {
	case o.render != "":
		err = runRender(ctx, o, patch)
	case o.play:
		err = runPlay(ctx, o, patch)
	case o.keys:
		err = runKeys(ctx, o, patch)
	}
	if err != nil && !errors.Is(err, context.Canceled) {
		fmt.Printf("Error: %v\n", err)
		os.Exit(1)
	}
}

func loadPatch(path string) (polyvoice.Patch, error) {
	if path == "" {
		return polyvoice.DefaultPatch(), nil
	}
	ctx, cancel := context.WithTimeout(context.Background(), patchTimeout)
	defer cancel()
	return patchfile.LoadFile(ctx, path)
}

// parseNotes reads a comma-separated list of MIDI note numbers.
func parseNotes(s string) ([]int, error) {
	var notes []int
	for field := range strings.SplitSeq(s, ",") {
		field = strings.TrimSpace(field)
		if field == "" {
			continue
		}
		n, err := strconv.Atoi(field)
		if err != nil {
			return nil, fmt.Errorf("note %q: %w", field, err)
		}
		if n < 0 || n > 127 {
			return nil, fmt.Errorf("note %d outside 0..127", n)
		}
		notes = append(notes, n)
	}
	if len(notes) == 0 {
		return nil, fmt.Errorf("no notes in %q", s)
	}
	return notes, nil
}

func runRender(ctx context.Context, o options, patch polyvoice.Patch) error {
	notes, err := parseNotes(o.notes)
	if err != nil {
		return err
	}
	start := time.Now()
	mix, err := RenderChord(ctx, RenderRequest{
		Backend:    o.backend,
		SampleRate: o.rate,
		Patch:      patch,
		Notes:      notes,
		Velocity:   float32(o.velocity),
		Hold:       o.dur,
		Release:    o.release,
	})
	if err != nil {
		return err
	}
	if err := WriteWAV(o.render, mix, o.rate); err != nil {
		return err
	}
	fmt.Printf("Rendered %q: %d notes, %d samples at %d Hz on the %s backend in %v\n",
		patch.Name, len(notes), len(mix), o.rate, o.backend, time.Since(start).Round(time.Millisecond))
	return nil
}

func runPlay(ctx context.Context, o options, patch polyvoice.Patch) error {
	notes, err := parseNotes(o.notes)
	if err != nil {
		return err
	}
	engine, err := NewEngine(o.backend, o.rate, len(notes), patch)
	if err != nil {
		return err
	}
	engine.SetModWheel(float32(o.modWheel))
	engine.SetPitchBend(float32(o.bend))

	player, err := NewOtoPlayer(o.rate)
	if err != nil {
		return fmt.Errorf("audio: %w", err)
	}
	defer player.Close()
	player.SetupPlayer(engine)

	fmt.Printf("Playing %q: notes %v on the %s backend\n", patch.Name, notes, engine.Backend())
	for _, n := range notes {
		engine.NoteOn(n, float32(o.velocity))
	}
	player.Start()
	if err := sleepCtx(ctx, time.Duration(o.dur*float64(time.Second))); err != nil {
		return err
	}
	for _, n := range notes {
		engine.NoteOff(n)
	}
	return sleepCtx(ctx, time.Duration(o.release*float64(time.Second)))
}

func runKeys(ctx context.Context, o options, patch polyvoice.Patch) error {
	engine, err := NewEngine(o.backend, o.rate, o.voices, patch)
	if err != nil {
		return err
	}
	player, err := NewOtoPlayer(o.rate)
	if err != nil {
		return fmt.Errorf("audio: %w", err)
	}
	defer player.Close()
	player.SetupPlayer(engine)
	player.Start()

	fmt.Println("Keys: a w s e d f t g y h u j k o l p ; '   octave: z/x   mod wheel: c/v   quit: q")
	host := NewKeyboardHost(engine, o.hold)
	if err := host.Start(); err != nil {
		return err
	}
	defer host.Stop()

	select {
	case <-host.Quit():
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

func sleepCtx(ctx context.Context, d time.Duration) error {
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-t.C:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}
