// This file is part of ay-driver.
//
// ay-driver is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// ay-driver is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with ay-driver.  If not, see <https://www.gnu.org/licenses/>.

package psg

// Register is the address of one of the fourteen byte-wide registers inside
// the PSG. Addresses are 4-bit values in the range 0x0 to 0xd.
type Register uint8

// The register file of the AY-3-8910. Addresses from the General Instrument
// data manual.
const (
	ToneFineA      Register = 0x0
	ToneCoarseA    Register = 0x1
	ToneFineB      Register = 0x2
	ToneCoarseB    Register = 0x3
	ToneFineC      Register = 0x4
	ToneCoarseC    Register = 0x5
	Noise          Register = 0x6
	MixerEnable    Register = 0x7
	AmplitudeA     Register = 0x8
	AmplitudeB     Register = 0x9
	AmplitudeC     Register = 0xa
	EnvelopeCoarse Register = 0xb
	EnvelopeFine   Register = 0xc
	EnvelopeShape  Register = 0xd
)

// NumRegisters is the number of registers in the PSG register file.
const NumRegisters = 14

func (r Register) String() string {
	switch r {
	case ToneFineA:
		return "tone fine (A)"
	case ToneCoarseA:
		return "tone coarse (A)"
	case ToneFineB:
		return "tone fine (B)"
	case ToneCoarseB:
		return "tone coarse (B)"
	case ToneFineC:
		return "tone fine (C)"
	case ToneCoarseC:
		return "tone coarse (C)"
	case Noise:
		return "noise period"
	case MixerEnable:
		return "mixer enable"
	case AmplitudeA:
		return "amplitude (A)"
	case AmplitudeB:
		return "amplitude (B)"
	case AmplitudeC:
		return "amplitude (C)"
	case EnvelopeCoarse:
		return "envelope coarse tune"
	case EnvelopeFine:
		return "envelope fine tune"
	case EnvelopeShape:
		return "envelope shape/cycle"
	}
	return "unknown register"
}
