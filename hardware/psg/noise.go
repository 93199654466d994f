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

// NoiseControl sets the period of the noise generator. A Freq of zero stops
// the generator.
type NoiseControl struct {
	// desired frequency in Hz
	Freq uint32
}

// Payload implements the Command interface.
//
// The noise period register is only five bits wide. The computed period is
// masked rather than clamped; periods of 32 or more silently wrap.
func (c NoiseControl) Payload(clock uint32) Payload {
	var period uint8
	if c.Freq > 0 {
		period = uint8((clock / (clockCountdown * c.Freq)) & 0x1f)
	}

	return Payload{
		Packet{Register: Noise, Value: period},
	}
}
