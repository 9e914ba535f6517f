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

import "fmt"

// AxisSign selects one half of a bidirectional axis. Intensity values in the
// input map are never negative so each direction of travel on a physical
// axis is keyed separately.
type AxisSign int

// List of valid AxisSign values.
const (
	SignPos AxisSign = iota
	SignNeg
)

func (s AxisSign) String() string {
	if s == SignNeg {
		return "-"
	}
	return "+"
}

// Key identifies a physical keyboard key. Values correspond to USB HID
// scancodes, the same numbering used by SDL.
type Key int32

// Common keyboard keys. The list is not exhaustive - any scancode value can
// be used as a Key.
const (
	KeyUnknown Key = 0

	KeyA Key = 4
	KeyB Key = 5
	KeyC Key = 6
	KeyD Key = 7
	KeyE Key = 8
	KeyF Key = 9
	KeyG Key = 10
	KeyH Key = 11
	KeyI Key = 12
	KeyJ Key = 13
	KeyK Key = 14
	KeyL Key = 15
	KeyM Key = 16
	KeyN Key = 17
	KeyO Key = 18
	KeyP Key = 19
	KeyQ Key = 20
	KeyR Key = 21
	KeyS Key = 22
	KeyT Key = 23
	KeyU Key = 24
	KeyV Key = 25
	KeyW Key = 26
	KeyX Key = 27
	KeyY Key = 28
	KeyZ Key = 29

	Key1 Key = 30
	Key2 Key = 31
	Key3 Key = 32
	Key4 Key = 33
	Key5 Key = 34
	Key6 Key = 35
	Key7 Key = 36
	Key8 Key = 37
	Key9 Key = 38
	Key0 Key = 39

	KeyReturn    Key = 40
	KeyEscape    Key = 41
	KeyBackspace Key = 42
	KeyTab       Key = 43
	KeySpace     Key = 44

	KeyF1  Key = 58
	KeyF2  Key = 59
	KeyF3  Key = 60
	KeyF4  Key = 61
	KeyF5  Key = 62
	KeyF6  Key = 63
	KeyF7  Key = 64
	KeyF8  Key = 65
	KeyF9  Key = 66
	KeyF10 Key = 67
	KeyF11 Key = 68
	KeyF12 Key = 69

	KeyRight Key = 79
	KeyLeft  Key = 80
	KeyDown  Key = 81
	KeyUp    Key = 82

	KeyLeftCtrl   Key = 224
	KeyLeftShift  Key = 225
	KeyLeftAlt    Key = 226
	KeyRightCtrl  Key = 228
	KeyRightShift Key = 229
	KeyRightAlt   Key = 230
)

// MouseButton identifies a button on the mouse. Values correspond to SDL
// button numbering.
type MouseButton int32

// List of valid MouseButton values.
const (
	MouseButtonNone MouseButton = iota
	MouseButtonLeft
	MouseButtonMiddle
	MouseButtonRight
	MouseButtonX1
	MouseButtonX2
)

// GamepadID identifies a specific gamepad device. The id is assigned by the
// gamepad polling layer (for SDL it is the joystick instance id).
type GamepadID int32

// AnyGamepad matches input from every connected gamepad.
const AnyGamepad GamepadID = -1

// GamepadButton identifies a button on a gamepad. Values correspond to SDL
// game controller numbering.
type GamepadButton int32

// List of valid GamepadButton values.
const (
	GamepadButtonNone GamepadButton = iota - 1
	GamepadButtonA
	GamepadButtonB
	GamepadButtonX
	GamepadButtonY
	GamepadButtonBack
	GamepadButtonGuide
	GamepadButtonStart
	GamepadButtonLeftStick
	GamepadButtonRightStick
	GamepadButtonBumperLeft
	GamepadButtonBumperRight
	GamepadButtonDPadUp
	GamepadButtonDPadDown
	GamepadButtonDPadLeft
	GamepadButtonDPadRight
)

// GamepadAxis identifies an analogue axis on a gamepad. Values correspond to
// SDL game controller numbering. Trigger axes only ever produce positive
// values.
type GamepadAxis int32

// List of valid GamepadAxis values.
const (
	GamepadAxisLeftX GamepadAxis = iota
	GamepadAxisLeftY
	GamepadAxisRightX
	GamepadAxisRightY
	GamepadAxisTriggerLeft
	GamepadAxisTriggerRight
)

type codeKind int

const (
	codeNone codeKind = iota
	codeKey
	codeMouseButton
	codeMouseMoveX
	codeMouseMoveY
	codeScroll
	codeScrollX
	codeGamepadButton
	codeGamepadAxis
)

// InputCode identifies a single physical signal source: a keyboard key, a
// mouse button, one direction of travel of a motion or scroll axis, or a
// gamepad control. InputCode values are comparable and are used as the keys
// of the binding table.
//
// The zero value is not a valid code. IsValid() returns false for it.
type InputCode struct {
	kind   codeKind
	code   int32
	sign   AxisSign
	device GamepadID
}

// KeyCode returns the InputCode for a keyboard key.
func KeyCode(k Key) InputCode {
	return InputCode{kind: codeKey, code: int32(k)}
}

// MouseButtonCode returns the InputCode for a mouse button.
func MouseButtonCode(b MouseButton) InputCode {
	return InputCode{kind: codeMouseButton, code: int32(b)}
}

// MouseMoveX returns the InputCode for one direction of horizontal mouse
// movement.
func MouseMoveX(s AxisSign) InputCode {
	return InputCode{kind: codeMouseMoveX, sign: s}
}

// MouseMoveY returns the InputCode for one direction of vertical mouse
// movement.
func MouseMoveY(s AxisSign) InputCode {
	return InputCode{kind: codeMouseMoveY, sign: s}
}

// Scroll returns the InputCode for one direction of the vertical scroll
// wheel.
func Scroll(s AxisSign) InputCode {
	return InputCode{kind: codeScroll, sign: s}
}

// ScrollX returns the InputCode for one direction of horizontal scrolling.
func ScrollX(s AxisSign) InputCode {
	return InputCode{kind: codeScrollX, sign: s}
}

// GamepadButtonCode returns the InputCode for a button on any connected
// gamepad. Use OnGamepad() to restrict the code to a specific device.
func GamepadButtonCode(b GamepadButton) InputCode {
	return InputCode{kind: codeGamepadButton, code: int32(b), device: AnyGamepad}
}

// GamepadAxisCode returns the InputCode for one half of an analogue axis on
// any connected gamepad. Use OnGamepad() to restrict the code to a specific
// device.
func GamepadAxisCode(a GamepadAxis, s AxisSign) InputCode {
	return InputCode{kind: codeGamepadAxis, code: int32(a), sign: s, device: AnyGamepad}
}

// OnGamepad returns the device scoped form of a gamepad code. The device
// scoped and device agnostic forms are distinct binding table keys, although
// both are updated on every gamepad event.
//
// Returns the receiver unchanged if the code does not refer to a gamepad.
func (c InputCode) OnGamepad(id GamepadID) InputCode {
	switch c.kind {
	case codeGamepadButton, codeGamepadAxis:
		c.device = id
	}
	return c
}

// IsValid returns false if the code is the zero value.
func (c InputCode) IsValid() bool {
	return c.kind != codeNone
}

func (c InputCode) String() string {
	switch c.kind {
	case codeKey:
		return fmt.Sprintf("key %d", c.code)
	case codeMouseButton:
		return fmt.Sprintf("mouse button %d", c.code)
	case codeMouseMoveX:
		return fmt.Sprintf("mouse move x%s", c.sign)
	case codeMouseMoveY:
		return fmt.Sprintf("mouse move y%s", c.sign)
	case codeScroll:
		return fmt.Sprintf("scroll%s", c.sign)
	case codeScrollX:
		return fmt.Sprintf("scroll x%s", c.sign)
	case codeGamepadButton:
		if c.device == AnyGamepad {
			return fmt.Sprintf("gamepad button %d", c.code)
		}
		return fmt.Sprintf("gamepad #%d button %d", c.device, c.code)
	case codeGamepadAxis:
		if c.device == AnyGamepad {
			return fmt.Sprintf("gamepad axis %d%s", c.code, c.sign)
		}
		return fmt.Sprintf("gamepad #%d axis %d%s", c.device, c.code, c.sign)
	}
	return "invalid input code"
}
