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

package main

import "actionmap/userinput"

// key names accepted in bindings.json.
var keyNames = map[string]userinput.Key{
	"A": userinput.KeyA,
	"B": userinput.KeyB,
	"C": userinput.KeyC,
	"D": userinput.KeyD,
	"E": userinput.KeyE,
	"F": userinput.KeyF,
	"G": userinput.KeyG,
	"H": userinput.KeyH,
	"I": userinput.KeyI,
	"J": userinput.KeyJ,
	"K": userinput.KeyK,
	"L": userinput.KeyL,
	"M": userinput.KeyM,
	"N": userinput.KeyN,
	"O": userinput.KeyO,
	"P": userinput.KeyP,
	"Q": userinput.KeyQ,
	"R": userinput.KeyR,
	"S": userinput.KeyS,
	"T": userinput.KeyT,
	"U": userinput.KeyU,
	"V": userinput.KeyV,
	"W": userinput.KeyW,
	"X": userinput.KeyX,
	"Y": userinput.KeyY,
	"Z": userinput.KeyZ,

	"0": userinput.Key0,
	"1": userinput.Key1,
	"2": userinput.Key2,
	"3": userinput.Key3,
	"4": userinput.Key4,
	"5": userinput.Key5,
	"6": userinput.Key6,
	"7": userinput.Key7,
	"8": userinput.Key8,
	"9": userinput.Key9,

	"Return":    userinput.KeyReturn,
	"Escape":    userinput.KeyEscape,
	"Backspace": userinput.KeyBackspace,
	"Tab":       userinput.KeyTab,
	"Space":     userinput.KeySpace,

	"Right": userinput.KeyRight,
	"Left":  userinput.KeyLeft,
	"Down":  userinput.KeyDown,
	"Up":    userinput.KeyUp,

	"LCtrl":  userinput.KeyLeftCtrl,
	"LShift": userinput.KeyLeftShift,
	"LAlt":   userinput.KeyLeftAlt,
	"RCtrl":  userinput.KeyRightCtrl,
	"RShift": userinput.KeyRightShift,
	"RAlt":   userinput.KeyRightAlt,
}

// gamepad button names accepted in bindings.json.
var gamepadButtonNames = map[string]userinput.GamepadButton{
	"a":            userinput.GamepadButtonA,
	"b":            userinput.GamepadButtonB,
	"x":            userinput.GamepadButtonX,
	"y":            userinput.GamepadButtonY,
	"back":         userinput.GamepadButtonBack,
	"guide":        userinput.GamepadButtonGuide,
	"start":        userinput.GamepadButtonStart,
	"left_stick":   userinput.GamepadButtonLeftStick,
	"right_stick":  userinput.GamepadButtonRightStick,
	"bumper_left":  userinput.GamepadButtonBumperLeft,
	"bumper_right": userinput.GamepadButtonBumperRight,
	"dpad_up":      userinput.GamepadButtonDPadUp,
	"dpad_down":    userinput.GamepadButtonDPadDown,
	"dpad_left":    userinput.GamepadButtonDPadLeft,
	"dpad_right":   userinput.GamepadButtonDPadRight,
}
