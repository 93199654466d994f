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

// Package monitor watches the driver side of the bus and reconstructs what
// the chip would have received. It stands in for the physical PSG when there
// is no hardware attached: integration tests use it to prove that encoders
// and sequencer compose, and the demo command uses it to show decoded
// register writes.
//
// The monitor keeps a 14-entry register file and an ordered log of decoded
// writes, nothing more. It does not model the sound synthesis of the chip.
package monitor
