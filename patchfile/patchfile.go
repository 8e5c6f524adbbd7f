// patchfile.go - Lua patch scripts

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

// Package patchfile loads voice patches from Lua scripts. A script assigns
// one table per section and may call route to add modulation routes:
//
//	name = "bass"
//	osc1 = { wave = "saw", coarse = -12, shape = 0.2 }
//	filter = { cutoff = 48, resonance = 0.6, env_mod = 0.4 }
//	amp_env = { attack = 0.002, release = 0.1 }
//	lfo1 = { wave = "triangle", freq = 3 }
//	route("lfo1", "osc1.shape", 0.3)
//
// Fields left out keep the values of polyvoice.DefaultPatch. The first call
// to route discards the default routes.
package patchfile

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/intuitionamiga/polyvoice"
	lua "github.com/yuin/gopher-lua"
)

// Sections are the table globals a script may assign.
var sections = []string{
	"osc1", "osc2", "ring", "filter", "filter_env", "amp_env",
	"lfo1", "lfo2", "env1", "env2",
}

// LoadFile runs the script at path and returns the patch it describes. The
// patch is named after the file unless the script sets name.
func LoadFile(ctx context.Context, path string) (polyvoice.Patch, error) {
	src, err := os.ReadFile(path)
	if err != nil {
		return polyvoice.Patch{}, err
	}
	name := strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	return Load(ctx, name, string(src))
}

// Load runs src and returns the patch it describes. ctx bounds the script's
// run time.
func Load(ctx context.Context, name, src string) (polyvoice.Patch, error) {
	L := lua.NewState(lua.Options{SkipOpenLibs: true})
	defer L.Close()
	L.SetContext(ctx)
	if err := openLibs(L); err != nil {
		return polyvoice.Patch{}, err
	}

	p := polyvoice.DefaultPatch()
	p.Name = name
	l := &loader{patch: &p}
	L.SetGlobal("route", L.NewFunction(l.route))

	if err := L.DoString(src); err != nil {
		return polyvoice.Patch{}, fmt.Errorf("patch %s: %w", name, err)
	}
	if err := l.read(L); err != nil {
		return polyvoice.Patch{}, fmt.Errorf("patch %s: %w", name, err)
	}
	return p, nil
}

// openLibs loads the libraries a patch may use. io and os are left out.
func openLibs(L *lua.LState) error {
	for _, lib := range []struct {
		name string
		fn   lua.LGFunction
	}{
		{lua.BaseLibName, lua.OpenBase},
		{lua.StringLibName, lua.OpenString},
		{lua.MathLibName, lua.OpenMath},
		{lua.TabLibName, lua.OpenTable},
	} {
		err := L.CallByParam(lua.P{Fn: L.NewFunction(lib.fn), NRet: 0, Protect: true}, lua.LString(lib.name))
		if err != nil {
			return fmt.Errorf("patch: open %q: %w", lib.name, err)
		}
	}
	return nil
}

type loader struct {
	patch  *polyvoice.Patch
	routed bool
}

// route(src, dest, depth) appends a modulation route.
func (l *loader) route(L *lua.LState) int {
	src, ok := polyvoice.ParseModSrc(L.CheckString(1))
	if !ok {
		L.ArgError(1, "unknown modulation source")
	}
	dest, ok := polyvoice.ParseModDest(L.CheckString(2))
	if !ok || dest == polyvoice.DestNull {
		L.ArgError(2, "unknown modulation destination")
	}
	if !dest.Allows(src) {
		L.ArgError(2, fmt.Sprintf("%v cannot modulate %v", src, dest))
	}
	depth := float32(L.OptNumber(3, 1))
	if !l.routed {
		l.patch.Routes = nil
		l.routed = true
	}
	l.patch.Routes = append(l.patch.Routes, polyvoice.RoutePatch{Source: src, Dest: dest, Depth: depth})
	return 0
}

// read copies the script's globals into the patch.
func (l *loader) read(L *lua.LState) error {
	p := l.patch
	if v := L.GetGlobal("name"); v != lua.LNil {
		s, ok := v.(lua.LString)
		if !ok {
			return fmt.Errorf("name: want string, got %s", v.Type())
		}
		p.Name = string(s)
	}
	if v := L.GetGlobal("sync"); v != lua.LNil {
		b, ok := v.(lua.LBool)
		if !ok {
			return fmt.Errorf("sync: want boolean, got %s", v.Type())
		}
		p.Sync = bool(b)
	}
	for _, sec := range sections {
		v := L.GetGlobal(sec)
		if v == lua.LNil {
			continue
		}
		tb, ok := v.(*lua.LTable)
		if !ok {
			return fmt.Errorf("%s: want table, got %s", sec, v.Type())
		}
		var err error
		tb.ForEach(func(k, v lua.LValue) {
			if err == nil {
				err = l.field(sec, k, v)
			}
		})
		if err != nil {
			return err
		}
	}
	return nil
}

// field applies one section.key = value assignment.
func (l *loader) field(sec string, k, v lua.LValue) error {
	key, ok := k.(lua.LString)
	if !ok {
		return fmt.Errorf("%s: non-string key %v", sec, k)
	}
	name := sec + "." + string(key)
	p := l.patch

	switch string(key) {
	case "wave":
		s, ok := v.(lua.LString)
		if !ok {
			return fmt.Errorf("%s: want string, got %s", name, v.Type())
		}
		return l.wave(sec, string(s))
	case "bipolar", "retrigger":
		lfo := l.lfo(sec)
		b, ok := v.(lua.LBool)
		if lfo == nil || !ok {
			return fmt.Errorf("%s: unknown field or not a boolean", name)
		}
		if key == "bipolar" {
			lfo.Bipolar = bool(b)
		} else {
			lfo.Retrigger = bool(b)
		}
		return nil
	}

	n, ok := v.(lua.LNumber)
	if !ok {
		return fmt.Errorf("%s: want number, got %s", name, v.Type())
	}
	f := float32(n)
	switch name {
	case "osc1.coarse":
		p.Osc1.Coarse = clamp(f, polyvoice.CoarseTuneMax)
		return nil
	case "osc1.fine":
		p.Osc1.Fine = clamp(f, polyvoice.FineTuneMax)
		return nil
	case "osc2.coarse":
		p.Osc2.Coarse = clamp(f, polyvoice.CoarseTuneMax)
		return nil
	case "osc2.fine":
		p.Osc2.Fine = clamp(f, polyvoice.FineTuneMax)
		return nil
	}
	info, ok := polyvoice.ParamByName(name)
	if !ok || info.ID == polyvoice.ParamOsc1Tune || info.ID == polyvoice.ParamOsc2Tune {
		return fmt.Errorf("%s: unknown field", name)
	}
	return p.SetValue(info.ID, f)
}

func (l *loader) wave(sec, s string) error {
	p := l.patch
	switch sec {
	case "osc1", "osc2":
		w, ok := polyvoice.ParseOscWave(s)
		if !ok {
			return fmt.Errorf("%s.wave: unknown oscillator wave %q", sec, s)
		}
		if sec == "osc1" {
			p.Osc1.Wave = w
		} else {
			p.Osc2.Wave = w
		}
		return nil
	}
	lfo := l.lfo(sec)
	if lfo == nil {
		return fmt.Errorf("%s.wave: unknown field", sec)
	}
	w, ok := polyvoice.ParseLfoWave(s)
	if !ok {
		return fmt.Errorf("%s.wave: unknown lfo wave %q", sec, s)
	}
	lfo.Wave = w
	return nil
}

func (l *loader) lfo(sec string) *polyvoice.LfoPatch {
	switch sec {
	case "lfo1":
		return &l.patch.Lfo1
	case "lfo2":
		return &l.patch.Lfo2
	}
	return nil
}

func clamp(v, lim float32) float32 {
	return min(max(v, -lim), lim)
}
