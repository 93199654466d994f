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

// AmplitudeMode selects how a channel's amplitude is governed.
type AmplitudeMode int

const (
	// Fixed amplitude. The 4-bit level of the AmplitudeControl is used
	// directly.
	Fixed AmplitudeMode = iota

	// Variable amplitude. The channel's amplitude follows the shared
	// envelope generator and the level field is ignored.
	Variable
)

// AmplitudeControl sets the amplitude of one of the three channels.
type AmplitudeControl struct {
	Chan Channel
	Mode AmplitudeMode

	// 4-bit level, 0 to 15. only meaningful in Fixed mode
	Level uint8
}

// Payload implements the Command interface.
func (c AmplitudeControl) Payload(_ uint32) Payload {
	var val uint8
	switch c.Mode {
	case Fixed:
		val = c.Level & 0x0f
	case Variable:
		val = 0x10
	}

	return Payload{
		Packet{Register: c.Chan.amplitudeRegister(), Value: val},
	}
}
