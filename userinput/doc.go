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

// Package userinput translates raw input events (keyboard, mouse, gamepad)
// into a stable set of application defined actions. Each action exposes a
// continuous intensity value and discrete just-pressed/just-released edges,
// intended to be read once per frame by the application loop.
//
// The package knows nothing about the windowing system or the gamepad
// polling library in use. Raw events are delivered as the Event types
// defined in this package. A translation layer converts the events of a
// real event source - the sdlinput package in this repository is such a
// layer for SDL.
//
// The expected shape of the application loop:
//
//	inp := userinput.NewInputMap[Action](binds...)
//	for {
//		// pump the event source, forwarding each event to the
//		// appropriate Handle...Event() function
//
//		// read actions with Value(), Pressing(), JustPressed(), etc.
//
//		inp.Reset()
//	}
//
// The InputMap is not safe for concurrent use. All updates and queries must
// happen on the goroutine that pumps the event source.
package userinput
