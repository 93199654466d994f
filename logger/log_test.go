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

package logger_test

import (
	"strings"
	"testing"

	"github.com/rrwalton/ay-driver/logger"
	"github.com/rrwalton/ay-driver/test"
)

func TestCentralLogger(t *testing.T) {
	logger.Clear()
	w := &strings.Builder{}

	logger.Write(w)
	test.ExpectEquality(t, w.String(), "")

	logger.Log("test", "this is a test")
	logger.Write(w)
	test.ExpectEquality(t, w.String(), "test: this is a test\n")

	// clear the string builder before continuing, makes comparisons easier
	// to manage
	w.Reset()

	logger.Log("test2", "this is another test")
	logger.Write(w)
	test.ExpectEquality(t, w.String(), "test: this is a test\ntest2: this is another test\n")

	// asking for too many entries in a Tail() should be okay
	w.Reset()
	logger.Tail(w, 100)
	test.ExpectEquality(t, w.String(), "test: this is a test\ntest2: this is another test\n")

	// asking for fewer entries is okay too
	w.Reset()
	logger.Tail(w, 1)
	test.ExpectEquality(t, w.String(), "test2: this is another test\n")
}

func TestRepeatedEntries(t *testing.T) {
	logger.Clear()
	w := &strings.Builder{}

	logger.Log("test", "same detail")
	logger.Log("test", "same detail")
	logger.Write(w)
	test.ExpectEquality(t, w.String(), "test: same detail (repeat x2)\n")
}
