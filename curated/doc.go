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

// Package curated is a helper package for the plain Go language error type.
// Curated errors implement the error interface.
//
// Errors are created with the Errorf() function. It works like Errorf() in
// the fmt package except that the formatting pattern doubles as the error's
// identity. The Is() function checks whether an error was created with a
// specific pattern:
//
//	e := curated.Errorf("encoder: bad value = %d", v)
//
//	if curated.Is(e, "encoder: bad value = %d") {
//		fmt.Println("true")
//	}
//
// The Has() function is similar but checks if the pattern occurs anywhere in
// the error chain, rather than only at the outermost wrapping.
//
// The Error() function for curated errors normalises the message chain so
// that adjacent duplicate parts appear only once. This means errors can be
// wrapped freely at every level of the call stack without the final message
// stuttering.
package curated
