// This file is part of Actionmap.
//
// Actionmap is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// Actionmap is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with Actionmap.  If not, see <https://www.gnu.org/licenses/>.

// Package logger is the central logging facility. Log entries are made with
// the Log() and Logf() functions and are kept in memory; the contents can be
// written out at any time with Write() or Tail(), or echoed to an io.Writer
// as they arrive with SetEcho().
//
// Entries are tagged with the name of the package or subsystem that made
// them. Consecutive identical entries are folded into one.
package logger
