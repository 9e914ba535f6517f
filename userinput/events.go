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

package userinput

// Event represents any input event. Events are passed to the InputMap
// through one of the Handle...Event() functions, according to the source
// the event originated from. Events of an unexpected type are ignored.
type Event interface{}

// EventCursorMoved is the absolute position of the mouse cursor in window
// coordinates. Delivered by the window event source.
type EventCursorMoved struct {
	X float32
	Y float32
}

// EventMouseButton is a mouse button changing state. Delivered by the window
// event source.
type EventMouseButton struct {
	Button MouseButton
	Down   bool
}

// EventKeyboard is a keyboard key changing state. Text is the logical text
// produced by the keypress, if any. An event may carry a key state change,
// text, or both - window systems that report text separately (SDL does)
// should send a second event with only the Text field set.
type EventKeyboard struct {
	Key  Key
	Down bool
	Text string
}

// EventMouseMotion is a raw mouse movement delta, unrelated to the cursor
// position. Delivered by the device event source. Many small deltas arrive
// per frame; the input map accumulates them.
type EventMouseMotion struct {
	X float32
	Y float32
}

// EventMouseWheel is a scroll delta in line units. Delivered by the device
// event source. Accumulated in the same way as mouse motion.
type EventMouseWheel struct {
	X float32
	Y float32
}

// EventGamepadButton is a gamepad button changing state.
type EventGamepadButton struct {
	ID     GamepadID
	Button GamepadButton
	Down   bool
}

// EventGamepadButtonChanged is an analogue reading of a gamepad button, in
// the range 0.0 to 1.0. Gamepad libraries that report pressure sensitive
// buttons deliver these in addition to (or instead of) EventGamepadButton.
type EventGamepadButtonChanged struct {
	ID     GamepadID
	Button GamepadButton
	Value  float32
}

// EventGamepadAxis is an analogue axis reading, in the range -1.0 to 1.0
// (0.0 to 1.0 for trigger axes).
type EventGamepadAxis struct {
	ID    GamepadID
	Axis  GamepadAxis
	Value float32
}
