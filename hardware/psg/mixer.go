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

// MixerSettings is the 8-bit flag set for the mixer enable register, backed
// by a single byte.
//
// The chip treats the bits as active-low disables: a set tone or noise bit
// mutes that source. MixerSettings(0xff) followed by clearing the bits of
// the sources that should sound is the usual way of building a value.
//
// No masking happens on construction or through the accessors. The two
// input-enable bits are only cleared when the value is encoded for
// transmission; they never survive a trip to the chip.
type MixerSettings uint8

const (
	mixerToneA MixerSettings = 1 << iota
	mixerToneB
	mixerToneC
	mixerNoiseA
	mixerNoiseB
	mixerNoiseC
	mixerInputA
	mixerInputB
)

func (s MixerSettings) ToneA() bool  { return s&mixerToneA == mixerToneA }
func (s MixerSettings) ToneB() bool  { return s&mixerToneB == mixerToneB }
func (s MixerSettings) ToneC() bool  { return s&mixerToneC == mixerToneC }
func (s MixerSettings) NoiseA() bool { return s&mixerNoiseA == mixerNoiseA }
func (s MixerSettings) NoiseB() bool { return s&mixerNoiseB == mixerNoiseB }
func (s MixerSettings) NoiseC() bool { return s&mixerNoiseC == mixerNoiseC }
func (s MixerSettings) InputA() bool { return s&mixerInputA == mixerInputA }
func (s MixerSettings) InputB() bool { return s&mixerInputB == mixerInputB }

func (s *MixerSettings) SetToneA(v bool)  { s.set(mixerToneA, v) }
func (s *MixerSettings) SetToneB(v bool)  { s.set(mixerToneB, v) }
func (s *MixerSettings) SetToneC(v bool)  { s.set(mixerToneC, v) }
func (s *MixerSettings) SetNoiseA(v bool) { s.set(mixerNoiseA, v) }
func (s *MixerSettings) SetNoiseB(v bool) { s.set(mixerNoiseB, v) }
func (s *MixerSettings) SetNoiseC(v bool) { s.set(mixerNoiseC, v) }
func (s *MixerSettings) SetInputA(v bool) { s.set(mixerInputA, v) }
func (s *MixerSettings) SetInputB(v bool) { s.set(mixerInputB, v) }

func (s *MixerSettings) set(mask MixerSettings, v bool) {
	if v {
		*s |= mask
	} else {
		*s &^= mask
	}
}

// MixerControl routes the tone and noise sources to the three channels.
type MixerControl struct {
	Settings MixerSettings
}

// Payload implements the Command interface. Only the low six bits of the
// settings are meaningful to the sound generator; the two input-enable bits
// are cleared here, at the encoding boundary, regardless of the caller's
// stored value.
func (c MixerControl) Payload(_ uint32) Payload {
	return Payload{
		Packet{Register: MixerEnable, Value: uint8(c.Settings) & 0x3f},
	}
}
