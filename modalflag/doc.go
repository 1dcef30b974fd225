// This file is part of nescore.
//
// nescore is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// nescore is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with nescore.  If not, see <https://www.gnu.org/licenses/>.

// Package modalflag is a wrapper for the flag package in the Go standard
// library. It handles program modes (and sub-modes) and allows a different
// set of flags for each mode.
//
// Unlike flag.FlagSet, arguments are given to NewArgs() and Parse() is called
// with no arguments:
//
//	md = Modes{Output: os.Stdout}
//	md.NewArgs(os.Args[1:])
//	md.AddSubModes("run", "table")
//	p, err := md.Parse()
//	switch p {
//	case modalflag.ParseHelp:
//		return nil
//	case modalflag.ParseError:
//		return err
//	}
//
// After parsing, Mode() returns the selected sub-mode. The first sub-mode is
// the default and is selected if the first non-flag argument does not name a
// sub-mode. Sub-mode comparisons are case insensitive and modes are always
// reported in upper case.
//
// A mode is given its own flags by calling NewMode() and then Parse() again:
//
//	switch md.Mode() {
//	case "RUN":
//		md.NewMode()
//		origin := md.AddAddress("origin", 0x8000, "load address")
//		trace := md.AddBool("trace", false, "log every instruction")
//		_, _ = md.Parse()
//		run(*origin, *trace, md.RemainingArgs())
//	}
//
// Non-flag arguments left after the final Parse() are returned by
// RemainingArgs() and GetArg().
package modalflag
