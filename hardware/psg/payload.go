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

import "fmt"

// Packet is a single register write. Packets are transient; they are
// produced by a Command and consumed by the bus sequencer within one write
// operation and never stored.
type Packet struct {
	Register Register
	Value    uint8
}

func (p Packet) String() string {
	return fmt.Sprintf("%s <- %#02x", p.Register, p.Value)
}

// Payload is the one or two Packets produced by a Command. For a two-packet
// Payload the order is significant and must be preserved when writing to the
// chip.
type Payload []Packet

// Command is implemented by every control type in this package. The Payload
// function is the parameter encoder: a pure function of the control
// parameters and the master clock frequency (in Hz).
type Command interface {
	Payload(clock uint32) Payload
}

// the tone and noise period counters divide the master clock by sixteen
const clockCountdown = 16

// a coarse register counts in units of 256 fine counts
const memoryWidth = 256
