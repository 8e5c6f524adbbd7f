// format.go - Lua patch script writer

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

package patchfile

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/intuitionamiga/polyvoice"
)

// Write prints p as a script Load reads back to the same patch.
func Write(w io.Writer, p polyvoice.Patch) error {
	var b strings.Builder
	fmt.Fprintf(&b, "name = %q\n", p.Name)
	fmt.Fprintf(&b, "sync = %t\n", p.Sync)
	for _, sec := range sections {
		b.WriteString(sec)
		b.WriteString(" = { ")
		writeSection(&b, &p, sec)
		b.WriteString(" }\n")
	}
	for _, r := range p.Routes {
		fmt.Fprintf(&b, "route(%q, %q, %s)\n", r.Source, r.Dest, num(r.Depth))
	}
	_, err := io.WriteString(w, b.String())
	return err
}

func writeSection(b *strings.Builder, p *polyvoice.Patch, sec string) {
	var fields []string
	add := func(k, v string) { fields = append(fields, k+" = "+v) }

	switch sec {
	case "osc1", "osc2":
		o := p.Osc1
		if sec == "osc2" {
			o = p.Osc2
		}
		add("wave", strconv.Quote(o.Wave.String()))
		add("coarse", num(o.Coarse))
		add("fine", num(o.Fine))
	case "lfo1", "lfo2":
		l := p.Lfo1
		if sec == "lfo2" {
			l = p.Lfo2
		}
		add("wave", strconv.Quote(l.Wave.String()))
		add("bipolar", strconv.FormatBool(l.Bipolar))
		add("retrigger", strconv.FormatBool(l.Retrigger))
	}
	prefix := sec + "."
	for _, info := range polyvoice.Params() {
		if info.ID == polyvoice.ParamOsc1Tune || info.ID == polyvoice.ParamOsc2Tune {
			continue
		}
		if k, ok := strings.CutPrefix(info.Name, prefix); ok {
			add(k, num(p.Value(info.ID)))
		}
	}
	b.WriteString(strings.Join(fields, ", "))
}

func num(v float32) string {
	return strconv.FormatFloat(float64(v), 'g', -1, 32)
}
