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

// ToneControl sets the pitch of one of the three tone channels.
//
// Freq must be greater than zero. The encoder divides the master clock by
// the scaled frequency so a zero frequency is undefined; the
// hardware.AY38910 facade rejects it before the encoder is reached.
type ToneControl struct {
	Chan Channel

	// desired frequency in Hz
	Freq uint32
}

// Payload implements the Command interface. The 12-bit tone period is split
// over two registers, fine byte first.
func (c ToneControl) Payload(clock uint32) Payload {
	period := clock / (clockCountdown * c.Freq)

	fine, coarse := c.Chan.toneRegisters()

	return Payload{
		Packet{Register: fine, Value: uint8(period % memoryWidth)},
		Packet{Register: coarse, Value: uint8(period / memoryWidth)},
	}
}
