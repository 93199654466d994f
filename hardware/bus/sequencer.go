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

package bus

// Sequencer drives the control lines of the PSG bus. It performs the
// two-phase register write: the address byte is latched into the chip's
// register-select logic and the data byte is then written to the selected
// register.
type Sequencer struct {
	bdir  Line
	bc1   Line
	bc2   Line
	latch Line

	transfer Transfer
}

// NewSequencer is the preferred method of initialisation for the Sequencer
// type. The Sequencer takes exclusive ownership of the lines and the
// transfer primitive.
func NewSequencer(transfer Transfer, latch, bdir, bc1, bc2 Line) *Sequencer {
	return &Sequencer{
		bdir:     bdir,
		bc1:      bc1,
		bc2:      bc2,
		latch:    latch,
		transfer: transfer,
	}
}

// the three bus operations, each defined by the joint level of the control
// lines.
//
//	            BDIR  BC1   BC2
//	idle        low   low   high
//	latch addr  high  high  high
//	write data  high  low   high

func (seq *Sequencer) inactive() {
	seq.bdir.Low()
	seq.bc1.Low()
	seq.bc2.High()
}

func (seq *Sequencer) latchAddress() {
	seq.bdir.High()
	seq.bc1.High()
	seq.bc2.High()
}

func (seq *Sequencer) writeData() {
	seq.bdir.High()
	seq.bc1.Low()
	seq.bc2.High()
}

// present a byte on the shared bus. the byte travels serially to the
// external shift register and appears in parallel form when the latch-enable
// line is raised.
func (seq *Sequencer) present(data uint8) {
	seq.latch.Low()
	seq.transfer.Send(data)
	seq.latch.High()
}

// WriteRegister writes a value to the chip register at the given address.
//
// The sequence is fixed and runs to completion; there is no partial-write
// recovery. No other bus transaction may interleave with it.
func (seq *Sequencer) WriteRegister(address uint8, value uint8) {
	// address phase
	seq.inactive()
	seq.latchAddress()
	seq.present(address)
	seq.inactive()

	// the second inactive assertion has not been shown to be load-bearing
	// but it has not been shown to be vestigial either, so it stays until
	// someone proves the point with a logic analyser
	seq.inactive()

	// data phase. the chip latches the value on the edge into the
	// write-data operation
	seq.present(value)
	seq.writeData()
	seq.inactive()
}
