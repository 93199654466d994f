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

// Package hardware assembles the driver for the AY-3-8910 programmable
// sound generator. The AY38910 type is the facade: it accepts a command
// from the psg package and transmits the encoded register writes through
// the bus sequencer.
//
// The capability interfaces in the bus package are the seam for the
// physical hardware. The periphio package implements them for GPIO/SPI
// hosts and the monitor package implements them for a simulated chip.
package hardware
