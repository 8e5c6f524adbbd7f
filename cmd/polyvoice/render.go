// render.go - Offline chord rendering, one goroutine per voice

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
	"fmt"
	"runtime"

	"github.com/intuitionamiga/polyvoice"
	"golang.org/x/sync/errgroup"
)

// renderBlock is the number of samples rendered between cancellation checks.
const renderBlock = 4096

// RenderRequest describes an offline chord: every note starts at zero, is
// held for Hold seconds and then left to ring for Release seconds.
type RenderRequest struct {
	Backend    string
	SampleRate int
	Patch      polyvoice.Patch
	Notes      []int
	Velocity   float32
	Hold       float64
	Release    float64
}

// RenderChord renders req. Voices are independent, so each note renders on
// its own goroutine into its own buffer and the buffers are summed at the
// end.
func RenderChord(ctx context.Context, req RenderRequest) ([]float32, error) {
	if len(req.Notes) == 0 {
		return nil, fmt.Errorf("render: no notes")
	}
	if req.Hold < 0 || req.Release < 0 {
		return nil, fmt.Errorf("render: negative duration")
	}
	on := int(req.Hold * float64(req.SampleRate))
	total := on + int(req.Release*float64(req.SampleRate))

	parts := make([][]float32, len(req.Notes))
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(runtime.GOMAXPROCS(0))
	for i, note := range req.Notes {
		g.Go(func() error {
			e, err := NewEngine(req.Backend, req.SampleRate, 1, req.Patch)
			if err != nil {
				return err
			}
			buf := make([]float32, total)
			e.NoteOn(note, req.Velocity)
			for start := 0; start < total; {
				if err := ctx.Err(); err != nil {
					return err
				}
				end := min(start+renderBlock, total)
				if start < on {
					end = min(end, on)
				}
				if start == on {
					e.NoteOff(note)
				}
				e.Render(buf[start:end])
				start = end
			}
			parts[i] = buf
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	mix := make([]float32, total)
	for _, p := range parts {
		for i, x := range p {
			mix[i] += x
		}
	}
	for i, x := range mix {
		mix[i] = min(max(x, -1), 1)
	}
	return mix, nil
}
