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

// actionState is the aggregated state of one action. the pressed and
// released fields are edge flags, valid until the next Reset().
type actionState struct {
	val      float32
	pressed  bool
	released bool
}

// Bind associates an action with the list of input codes that drive it.
// Used with NewInputMap(); afterwards the Bind() function adds individual
// bindings.
type Bind[F comparable] struct {
	Action F
	Codes  []InputCode
}

// InputMap maintains the mapping of input codes to actions and the current
// state of every action. The type parameter F is the application's action
// type - anything comparable will do, the package never inspects it.
//
// The exported fields can be read at any time. The three scale/sensitivity
// fields can also be written at any time.
type InputMap[F comparable] struct {
	// Binds is the binding table. Every key present has a non-empty action
	// list. Prefer the Bind() function for adding entries.
	Binds map[InputCode][]F

	actions map[F]actionState

	// MousePos is the most recent absolute cursor position.
	MousePos Vec2

	// RecentlyPressed is the last input code to register as pressed, even if
	// it isn't in the binding table. Useful for rebinding screens. The zero
	// value (IsValid() == false) means nothing has been pressed this frame.
	RecentlyPressed InputCode

	// TextTyped is the text typed this frame.
	TextTyped string

	// MouseScale scales raw mouse motion deltas before accumulation. Most
	// action values lie in the range 0 to 1 so a low scale gives better
	// consistency with buttons. Defaults to 0.1.
	MouseScale float32

	// ScrollScale is the equivalent of MouseScale for the scroll wheel.
	// Defaults to 0.1.
	ScrollScale float32

	// PressSensitivity is the minimum value at which an action counts as
	// being pressed. Defaults to 0.5. Values over 1.0 will leave ordinary
	// buttons unable to register as pressed.
	PressSensitivity float32
}

// NewInputMap is the preferred method of initialisation of the InputMap
// type.
func NewInputMap[F comparable](binds ...Bind[F]) *InputMap[F] {
	inp := &InputMap[F]{
		Binds:            make(map[InputCode][]F),
		actions:          make(map[F]actionState),
		MouseScale:       0.1,
		ScrollScale:      0.1,
		PressSensitivity: 0.5,
	}
	for _, b := range binds {
		for _, c := range b.Codes {
			inp.Bind(c, b.Action)
		}
	}
	return inp
}

// Bind adds an action to the list of actions driven by an input code. No
// duplicate suppression is performed - binding the same action to the same
// code twice means it is updated twice per event, to the same value.
func (inp *InputMap[F]) Bind(code InputCode, action F) {
	inp.Binds[code] = append(inp.Binds[code], action)
}

// Lookup returns the actions bound to an input code. The returned slice is
// empty if the code is unbound. The slice is owned by the InputMap and must
// not be modified.
func (inp *InputMap[F]) Lookup(code InputCode) []F {
	return inp.Binds[code]
}

// HandleWindowEvent updates the input map with an event from the window
// system: cursor position, mouse buttons and the keyboard.
func (inp *InputMap[F]) HandleWindowEvent(ev Event) {
	switch ev := ev.(type) {
	case EventCursorMoved:
		inp.MousePos = Vec2{X: ev.X, Y: ev.Y}
	case EventMouseButton:
		inp.setValue(MouseButtonCode(ev.Button), downValue(ev.Down))
	case EventKeyboard:
		inp.TextTyped += ev.Text
		if ev.Key != KeyUnknown {
			inp.setValue(KeyCode(ev.Key), downValue(ev.Down))
		}
	}
}

// HandleDeviceEvent updates the input map with a raw device event: mouse
// motion and scroll deltas. Deltas are scaled by MouseScale/ScrollScale and
// accumulate over the frame - call Reset() at the end of every frame to
// zero them.
func (inp *InputMap[F]) HandleDeviceEvent(ev Event) {
	switch ev := ev.(type) {
	case EventMouseMotion:
		x := ev.X * inp.MouseScale
		y := ev.Y * inp.MouseScale
		inp.adjustValue(MouseMoveX(SignPos), max(x, 0))
		inp.adjustValue(MouseMoveX(SignNeg), max(-x, 0))
		inp.adjustValue(MouseMoveY(SignPos), max(y, 0))
		inp.adjustValue(MouseMoveY(SignNeg), max(-y, 0))
	case EventMouseWheel:
		x := ev.X * inp.ScrollScale
		y := ev.Y * inp.ScrollScale
		inp.adjustValue(Scroll(SignPos), max(y, 0))
		inp.adjustValue(Scroll(SignNeg), max(-y, 0))
		inp.adjustValue(ScrollX(SignPos), max(x, 0))
		inp.adjustValue(ScrollX(SignNeg), max(-x, 0))
	}
}

// HandleGamepadEvent updates the input map with an event from the gamepad
// polling layer. Every event updates both the device scoped and the device
// agnostic form of the input code, so actions can be bound to "any gamepad"
// or to one specific device.
func (inp *InputMap[F]) HandleGamepadEvent(ev Event) {
	switch ev := ev.(type) {
	case EventGamepadButton:
		code := GamepadButtonCode(ev.Button)
		inp.setValue(code, downValue(ev.Down))
		inp.setValue(code.OnGamepad(ev.ID), downValue(ev.Down))
	case EventGamepadButtonChanged:
		code := GamepadButtonCode(ev.Button)
		inp.setValue(code, ev.Value)
		inp.setValue(code.OnGamepad(ev.ID), ev.Value)
	case EventGamepadAxis:
		pos := GamepadAxisCode(ev.Axis, SignPos)
		neg := GamepadAxisCode(ev.Axis, SignNeg)
		vpos := max(ev.Value, 0)
		vneg := max(-ev.Value, 0)
		inp.setValue(pos, vpos)
		inp.setValue(neg, vneg)
		inp.setValue(pos.OnGamepad(ev.ID), vpos)
		inp.setValue(neg.OnGamepad(ev.ID), vneg)
	}
}

// Reset makes the input map ready to receive the next frame's events. Must
// be called once per frame, after the application has read everything it
// needs.
//
// Accumulating axes (mouse motion, scroll) are zeroed, edge flags are
// cleared on every action, and the transient RecentlyPressed and TextTyped
// fields are emptied. The intensity of held buttons and keys is preserved.
func (inp *InputMap[F]) Reset() {
	inp.setValue(MouseMoveX(SignPos), 0.0)
	inp.setValue(MouseMoveX(SignNeg), 0.0)
	inp.setValue(MouseMoveY(SignPos), 0.0)
	inp.setValue(MouseMoveY(SignNeg), 0.0)
	inp.setValue(Scroll(SignPos), 0.0)
	inp.setValue(Scroll(SignNeg), 0.0)
	inp.setValue(ScrollX(SignPos), 0.0)
	inp.setValue(ScrollX(SignNeg), 0.0)
	for a, s := range inp.actions {
		inp.actions[a] = actionState{val: s.val}
	}
	inp.RecentlyPressed = InputCode{}
	inp.TextTyped = ""
}

// setValue replaces the intensity of an input code, propagating the new
// value to every bound action. Used for discrete sources where the event
// carries an absolute state.
func (inp *InputMap[F]) setValue(code InputCode, val float32) {
	pressed := val >= inp.PressSensitivity
	if pressed {
		inp.RecentlyPressed = code
	}
	for _, action := range inp.Binds[code] {
		jpressed := pressed && !inp.Pressing(action)
		released := !pressed && inp.Pressing(action)
		inp.actions[action] = actionState{val: val, pressed: jpressed, released: released}
	}
}

// adjustValue adds a delta to the accumulated intensity of an input code's
// bound actions. Used for continuous sources that deliver many small deltas
// per frame. The edge flags are recomputed against the state as it stood
// immediately before this update, the same as setValue.
func (inp *InputMap[F]) adjustValue(code InputCode, delta float32) {
	for _, action := range inp.Binds[code] {
		val := inp.actions[action].val + delta
		pressed := val >= inp.PressSensitivity
		if pressed {
			inp.RecentlyPressed = code
		}
		jpressed := pressed && !inp.Pressing(action)
		released := !pressed && inp.Pressing(action)
		inp.actions[action] = actionState{val: val, pressed: jpressed, released: released}
	}
}

func downValue(down bool) float32 {
	if down {
		return 1.0
	}
	return 0.0
}
