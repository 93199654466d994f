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

// Package clocks defines master clock frequencies for the sound generator.
//
// The chip itself accepts anything from 1MHz to about 2.6MHz. The constants
// here are the rates used by the machines the chip (or its YM2149 twin)
// commonly shipped in, and are useful when driving the chip from the same
// crystal arrangement as one of those machines. Every encoder result depends
// on the clock so the value handed to the driver must match the physical
// oscillator.
//
// All values in Hz.
package clocks

const (
	AmstradCPC = 1000000
	ZXSpectrum = 1773400
	MSX        = 1789772
	AtariST    = 2000000
)
