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

package sdlinput

import (
	"github.com/veandco/go-sdl2/sdl"

	"actionmap/logger"
	"actionmap/userinput"
)

// Service forwards an SDL event to the input map. Window events (keyboard,
// mouse buttons, cursor), device events (mouse motion, wheel) and gamepad
// events are routed to the corresponding userinput entry point. Events the
// input map has no use for are ignored.
func Service[F comparable](inp *userinput.InputMap[F], ev sdl.Event) {
	switch ev := ev.(type) {
	case *sdl.KeyboardEvent:
		inp.HandleWindowEvent(userinput.EventKeyboard{
			Key:  userinput.Key(ev.Keysym.Scancode),
			Down: ev.Type == sdl.KEYDOWN,
		})

	case *sdl.TextInputEvent:
		inp.HandleWindowEvent(userinput.EventKeyboard{
			Text: textFromEvent(ev.Text[:]),
		})

	case *sdl.MouseMotionEvent:
		// a single SDL event carries both the absolute cursor position and
		// the relative motion delta
		inp.HandleWindowEvent(userinput.EventCursorMoved{
			X: float32(ev.X),
			Y: float32(ev.Y),
		})
		inp.HandleDeviceEvent(userinput.EventMouseMotion{
			X: float32(ev.XRel),
			Y: float32(ev.YRel),
		})

	case *sdl.MouseButtonEvent:
		button := translateMouseButton(ev.Button)
		if button == userinput.MouseButtonNone {
			logger.Logf("sdlinput", "unrecognised mouse button %d", ev.Button)
			return
		}
		inp.HandleWindowEvent(userinput.EventMouseButton{
			Button: button,
			Down:   ev.Type == sdl.MOUSEBUTTONDOWN,
		})

	case *sdl.MouseWheelEvent:
		inp.HandleDeviceEvent(userinput.EventMouseWheel{
			X: float32(ev.X),
			Y: float32(ev.Y),
		})

	case *sdl.ControllerButtonEvent:
		button := translateGamepadButton(ev.Button)
		if button == userinput.GamepadButtonNone {
			logger.Logf("sdlinput", "unrecognised gamepad button %d", ev.Button)
			return
		}
		inp.HandleGamepadEvent(userinput.EventGamepadButton{
			ID:     userinput.GamepadID(ev.Which),
			Button: button,
			Down:   ev.Type == sdl.CONTROLLERBUTTONDOWN,
		})

	case *sdl.ControllerAxisEvent:
		axis, ok := translateGamepadAxis(ev.Axis)
		if !ok {
			logger.Logf("sdlinput", "unrecognised gamepad axis %d", ev.Axis)
			return
		}
		inp.HandleGamepadEvent(userinput.EventGamepadAxis{
			ID:    userinput.GamepadID(ev.Which),
			Axis:  axis,
			Value: normaliseAxis(ev.Value),
		})
	}
}

// textFromEvent trims the NUL padding from the fixed size text buffer of an
// SDL text input event.
func textFromEvent(text []byte) string {
	for i, b := range text {
		if b == 0 {
			return string(text[:i])
		}
	}
	return string(text)
}

// normaliseAxis converts a raw SDL axis reading to the -1.0 to 1.0 range.
func normaliseAxis(v int16) float32 {
	n := float32(v) / 32767.0
	return max(n, -1.0)
}

func translateMouseButton(button uint8) userinput.MouseButton {
	switch button {
	case sdl.BUTTON_LEFT:
		return userinput.MouseButtonLeft
	case sdl.BUTTON_MIDDLE:
		return userinput.MouseButtonMiddle
	case sdl.BUTTON_RIGHT:
		return userinput.MouseButtonRight
	case sdl.BUTTON_X1:
		return userinput.MouseButtonX1
	case sdl.BUTTON_X2:
		return userinput.MouseButtonX2
	}
	return userinput.MouseButtonNone
}

func translateGamepadButton(button uint8) userinput.GamepadButton {
	switch button {
	case sdl.CONTROLLER_BUTTON_A:
		return userinput.GamepadButtonA
	case sdl.CONTROLLER_BUTTON_B:
		return userinput.GamepadButtonB
	case sdl.CONTROLLER_BUTTON_X:
		return userinput.GamepadButtonX
	case sdl.CONTROLLER_BUTTON_Y:
		return userinput.GamepadButtonY
	case sdl.CONTROLLER_BUTTON_BACK:
		return userinput.GamepadButtonBack
	case sdl.CONTROLLER_BUTTON_GUIDE:
		return userinput.GamepadButtonGuide
	case sdl.CONTROLLER_BUTTON_START:
		return userinput.GamepadButtonStart
	case sdl.CONTROLLER_BUTTON_LEFTSTICK:
		return userinput.GamepadButtonLeftStick
	case sdl.CONTROLLER_BUTTON_RIGHTSTICK:
		return userinput.GamepadButtonRightStick
	case sdl.CONTROLLER_BUTTON_LEFTSHOULDER:
		return userinput.GamepadButtonBumperLeft
	case sdl.CONTROLLER_BUTTON_RIGHTSHOULDER:
		return userinput.GamepadButtonBumperRight
	case sdl.CONTROLLER_BUTTON_DPAD_UP:
		return userinput.GamepadButtonDPadUp
	case sdl.CONTROLLER_BUTTON_DPAD_DOWN:
		return userinput.GamepadButtonDPadDown
	case sdl.CONTROLLER_BUTTON_DPAD_LEFT:
		return userinput.GamepadButtonDPadLeft
	case sdl.CONTROLLER_BUTTON_DPAD_RIGHT:
		return userinput.GamepadButtonDPadRight
	}
	return userinput.GamepadButtonNone
}

func translateGamepadAxis(axis uint8) (userinput.GamepadAxis, bool) {
	switch axis {
	case sdl.CONTROLLER_AXIS_LEFTX:
		return userinput.GamepadAxisLeftX, true
	case sdl.CONTROLLER_AXIS_LEFTY:
		return userinput.GamepadAxisLeftY, true
	case sdl.CONTROLLER_AXIS_RIGHTX:
		return userinput.GamepadAxisRightX, true
	case sdl.CONTROLLER_AXIS_RIGHTY:
		return userinput.GamepadAxisRightY, true
	case sdl.CONTROLLER_AXIS_TRIGGERLEFT:
		return userinput.GamepadAxisTriggerLeft, true
	case sdl.CONTROLLER_AXIS_TRIGGERRIGHT:
		return userinput.GamepadAxisTriggerRight, true
	}
	return 0, false
}
