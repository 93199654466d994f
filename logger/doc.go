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

// Package logger is the central log for the application. There is no provision
// for log levels; an entry is either in the log or it isn't. Repeated entries
// are compressed into a single entry with a repeat count.
//
// New entries are added with the Log() and Logf() functions. The contents of
// the log can be written to an io.Writer with Write() or, for only the most
// recent entries, with Tail(). The SetEcho() function assigns an io.Writer to
// which new entries are written as they arrive, which is useful for command
// line tools that want log output on the terminal immediately.
package logger
