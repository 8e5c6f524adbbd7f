// nrpn.go - Reserved NRPN mapping for parameters and the mod matrix

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

import (
	"errors"
	"fmt"
)

// ErrBadNRPN is returned for messages outside the reserved NRPN scheme.
var ErrBadNRPN = errors.New("nrpn outside reserved scheme")

// NRPN is one complete non-registered parameter message: 7-bit MSB and LSB
// parameter numbers and a 14-bit data word.
//
// MSB 0 addresses high-resolution controllers: LSB is a ParamID and the data
// word spans the parameter's Lo..Hi. MSB 1+src addresses the modulation row
// of source src: LSB is slot*2+field, where field 0 writes a destination
// code and field 1 a depth, signed 14-bit centred on 8192.
type NRPN struct {
	MSB   uint8
	LSB   uint8
	Value uint16
}

const (
	nrpnHighResCC = 0
	nrpnModRow    = 1
	nrpnDataMax   = 1<<14 - 1
	nrpnCentre    = 1 << 13

	nrpnFieldDest  = 0
	nrpnFieldDepth = 1
)

// ParamNRPN encodes a natural-unit parameter value.
func ParamNRPN(id ParamID, v float32) NRPN {
	info := paramTable[id%NumParams]
	t := (clampF(v, info.Lo, info.Hi) - info.Lo) / (info.Hi - info.Lo)
	return NRPN{MSB: nrpnHighResCC, LSB: uint8(id), Value: uint16(t*nrpnDataMax + 0.5)}
}

// DestNRPN encodes a destination write for slot of src's row.
func DestNRPN(src ModSrc, slot int, dest ModDest) NRPN {
	return NRPN{MSB: nrpnModRow + uint8(src), LSB: uint8(slot*2 + nrpnFieldDest), Value: uint16(dest)}
}

// DepthNRPN encodes a depth write for slot of src's row.
func DepthNRPN(src ModSrc, slot int, depth float32) NRPN {
	d := int(clampF(depth, -1, 1)*nrpnCentre) + nrpnCentre
	return NRPN{
		MSB:   nrpnModRow + uint8(src),
		LSB:   uint8(slot*2 + nrpnFieldDepth),
		Value: uint16(min(max(d, 0), nrpnDataMax)),
	}
}

// ApplyNRPN writes msg into p or m.
func ApplyNRPN[T Num, B Backend[T]](msg NRPN, p *VoiceParams[T], m *ModMatrix[T]) error {
	var be B
	if msg.Value > nrpnDataMax {
		return fmt.Errorf("nrpn %d/%d: value %d: %w", msg.MSB, msg.LSB, msg.Value, ErrBadNRPN)
	}
	if msg.MSB == nrpnHighResCC {
		if ParamID(msg.LSB) >= NumParams {
			return fmt.Errorf("nrpn %d/%d: no such parameter: %w", msg.MSB, msg.LSB, ErrBadNRPN)
		}
		info := paramTable[msg.LSB]
		v := info.Lo + (info.Hi-info.Lo)*float32(msg.Value)/nrpnDataMax
		*p.Field(info.ID) = be.FromFloat(info.Kind, v)
		return nil
	}

	src := ModSrc(msg.MSB - nrpnModRow)
	slot, field := int(msg.LSB/2), msg.LSB%2
	if src >= NumModSrc || slot >= ModSlots {
		return fmt.Errorf("nrpn %d/%d: %w", msg.MSB, msg.LSB, ErrBadNRPN)
	}
	route := &m[src][slot]
	switch field {
	case nrpnFieldDest:
		if ModDest(msg.Value) >= NumModDest {
			return fmt.Errorf("nrpn %d/%d: destination %d: %w", msg.MSB, msg.LSB, msg.Value, ErrBadNRPN)
		}
		route.Dest = ModDest(msg.Value)
	case nrpnFieldDepth:
		// Sign-extend the 14-bit word around its centre.
		d := float32(int(msg.Value)-nrpnCentre) / nrpnCentre
		route.Depth = be.FromFloat(KindIScalar, d)
	}
	return nil
}
