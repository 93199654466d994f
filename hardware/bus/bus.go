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

// Line is a digital output that can be driven to a binary level. The three
// bus control lines and the latch-enable line are Line instances.
//
// Neither function returns an error. Failure of the underlying output is
// deliberately invisible; implementations absorb any error from the real
// hardware. See the package documentation for the reasoning.
type Line interface {
	High()
	Low()
}

// Transfer pushes a single byte down the serial path that feeds the external
// latch. Send blocks until the byte has gone.
//
// As with the Line interface, failure is absorbed by the implementation.
type Transfer interface {
	Send(data uint8)
}
