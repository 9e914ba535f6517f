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

// Package sdlinput translates SDL events into the events understood by the
// userinput package. It is the only package in this repository that imports
// SDL; applications using a different windowing or gamepad library can
// write an equivalent translation and use the userinput package unchanged.
//
// Events are forwarded with the Service() function, called for every event
// returned by sdl.PollEvent():
//
//	for ev := sdl.PollEvent(); ev != nil; ev = sdl.PollEvent() {
//		pads.Service(ev)
//		sdlinput.Service(inp, ev)
//	}
//
// The Gamepads type keeps SDL game controllers open so that their button
// and axis events are delivered at all. SDL must have been initialised with
// sdl.INIT_GAMECONTROLLER.
package sdlinput
