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

// Package bus implements the write sequencer for the PSG's multiplexed
// address/data bus.
//
// The chip is driven over a handful of general purpose output lines. Three
// of them (BDIR, BC1, BC2) jointly select the chip's current bus operation.
// The byte on the bus itself arrives through an external shift register: a
// byte is pushed serially down the Transfer line and presented in parallel
// form when the latch-enable line is raised.
//
// The Line and Transfer interfaces are the seam between the sequencer and
// the physical hardware. They return no errors: on the original
// resource-constrained target a failed pin write was deliberately discarded
// in exchange for code size, and the policy is kept here so that the write
// path has exactly one behaviour. An application wanting fault visibility
// should wrap its Line implementations before handing them to the
// sequencer.
//
// The Sequencer is single-threaded and non-reentrant. It owns its lines for
// the duration of one WriteRegister call and there is no internal locking;
// mutual exclusion between callers is the application's responsibility.
package bus
