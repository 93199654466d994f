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

// Package version records the application name and build information.
package version

import (
	"runtime/debug"
)

// The name to use when referring to the application.
const ApplicationName = "aydriver"

// Version returns the revision string as recorded by the version control
// system at build time. If the source had uncommitted changes the string is
// suffixed with "+dirty". Returns "unknown" if no build information is
// available, which happens with "go run .".
func Version() string {
	revision := "unknown"
	modified := false

	info, ok := debug.ReadBuildInfo()
	if !ok {
		return revision
	}

	for _, v := range info.Settings {
		switch v.Key {
		case "vcs.revision":
			revision = v.Value
		case "vcs.modified":
			modified = v.Value == "true"
		}
	}

	if modified {
		revision += "+dirty"
	}

	return revision
}
