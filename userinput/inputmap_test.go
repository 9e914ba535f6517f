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

package userinput_test

import (
	"testing"

	"actionmap/test"
	"actionmap/userinput"
)

type action int

const (
	fire action = iota
	jump
	padFire
	padTwoFire
)

const tolerance = 0.0001

func TestUnboundActions(t *testing.T) {
	inp := userinput.NewInputMap[action]()

	// events for codes that aren't in the binding table are no-ops
	inp.HandleWindowEvent(userinput.EventKeyboard{Key: userinput.KeySpace, Down: true})
	inp.HandleDeviceEvent(userinput.EventMouseMotion{X: 100, Y: 100})

	test.ExpectEquality(t, inp.Value(fire), 0.0)
	test.ExpectEquality(t, inp.Pressing(fire), false)
	test.ExpectEquality(t, inp.JustPressed(fire), false)
	test.ExpectEquality(t, inp.JustReleased(fire), false)
}

func TestLastWriteWins(t *testing.T) {
	inp := userinput.NewInputMap[action]()
	inp.Bind(userinput.KeyCode(userinput.KeySpace), fire)
	inp.Bind(userinput.MouseButtonCode(userinput.MouseButtonLeft), fire)

	// two codes drive the same action. the action reflects whichever code
	// reported last, not a combination
	inp.HandleWindowEvent(userinput.EventKeyboard{Key: userinput.KeySpace, Down: true})
	inp.HandleWindowEvent(userinput.EventMouseButton{Button: userinput.MouseButtonLeft, Down: false})

	test.ExpectEquality(t, inp.Value(fire), 0.0)
	test.ExpectEquality(t, inp.Pressing(fire), false)
}

func TestEdgeFlags(t *testing.T) {
	inp := userinput.NewInputMap[action]()
	inp.Bind(userinput.KeyCode(userinput.KeySpace), fire)

	inp.HandleWindowEvent(userinput.EventKeyboard{Key: userinput.KeySpace, Down: true})
	test.ExpectEquality(t, inp.Pressing(fire), true)
	test.ExpectEquality(t, inp.JustPressed(fire), true)
	test.ExpectEquality(t, inp.JustReleased(fire), false)

	// a repeated press is not a new edge
	inp.HandleWindowEvent(userinput.EventKeyboard{Key: userinput.KeySpace, Down: true})
	test.ExpectEquality(t, inp.Pressing(fire), true)
	test.ExpectEquality(t, inp.JustPressed(fire), false)
}

func TestReleaseAndReset(t *testing.T) {
	inp := userinput.NewInputMap[action]()
	inp.Bind(userinput.KeyCode(userinput.KeySpace), fire)

	inp.HandleWindowEvent(userinput.EventKeyboard{Key: userinput.KeySpace, Down: true})
	inp.HandleWindowEvent(userinput.EventKeyboard{Key: userinput.KeySpace, Down: false})
	test.ExpectEquality(t, inp.JustReleased(fire), true)
	test.ExpectEquality(t, inp.Pressing(fire), false)

	inp.Reset()
	test.ExpectEquality(t, inp.JustReleased(fire), false)
	test.ExpectEquality(t, inp.Value(fire), 0.0)
}

func TestHeldAcrossReset(t *testing.T) {
	inp := userinput.NewInputMap[action]()
	inp.Bind(userinput.KeyCode(userinput.KeySpace), fire)

	inp.HandleWindowEvent(userinput.EventKeyboard{Key: userinput.KeySpace, Down: true})
	inp.Reset()

	// the key is still held. only the edge flags are cleared
	test.ExpectEquality(t, inp.Pressing(fire), true)
	test.ExpectEquality(t, inp.Value(fire), 1.0)
	test.ExpectEquality(t, inp.JustPressed(fire), false)
}

func TestMouseMotionAccumulates(t *testing.T) {
	inp := userinput.NewInputMap[action]()
	inp.Bind(userinput.MouseMoveX(userinput.SignPos), jump)

	// two deltas within one frame sum rather than overwrite
	inp.HandleDeviceEvent(userinput.EventMouseMotion{X: 2.0})
	inp.HandleDeviceEvent(userinput.EventMouseMotion{X: 3.0})
	test.ExpectApproximate(t, inp.Value(jump), 0.5, tolerance)

	inp.Reset()
	test.ExpectEquality(t, inp.Value(jump), 0.0)
}

func TestMouseMotionHalves(t *testing.T) {
	inp := userinput.NewInputMap[action]()
	inp.Bind(userinput.MouseMoveX(userinput.SignPos), fire)
	inp.Bind(userinput.MouseMoveX(userinput.SignNeg), jump)

	inp.HandleDeviceEvent(userinput.EventMouseMotion{X: -6.0})
	test.ExpectEquality(t, inp.Value(fire), 0.0)
	test.ExpectApproximate(t, inp.Value(jump), 0.6, tolerance)
}

func TestScrollAccumulates(t *testing.T) {
	inp := userinput.NewInputMap[action]()
	inp.Bind(userinput.Scroll(userinput.SignPos), jump)

	inp.HandleDeviceEvent(userinput.EventMouseWheel{Y: 3.0})
	inp.HandleDeviceEvent(userinput.EventMouseWheel{Y: 3.0})
	test.ExpectApproximate(t, inp.Value(jump), 0.6, tolerance)
	test.ExpectEquality(t, inp.Pressing(jump), true)
	test.ExpectEquality(t, inp.JustPressed(jump), true)

	inp.Reset()
	test.ExpectEquality(t, inp.Value(jump), 0.0)
	test.ExpectEquality(t, inp.Pressing(jump), false)
}

func TestGamepadDeviceScoped(t *testing.T) {
	inp := userinput.NewInputMap[action]()
	inp.Bind(userinput.GamepadButtonCode(userinput.GamepadButtonA), padFire)
	inp.Bind(userinput.GamepadButtonCode(userinput.GamepadButtonA).OnGamepad(2), padTwoFire)

	// an event from gamepad #2 updates both the device scoped and the
	// device agnostic binding
	inp.HandleGamepadEvent(userinput.EventGamepadButton{ID: 2, Button: userinput.GamepadButtonA, Down: true})
	test.ExpectEquality(t, inp.Pressing(padFire), true)
	test.ExpectEquality(t, inp.Pressing(padTwoFire), true)

	// an event from a different gamepad only touches the agnostic binding
	inp.HandleGamepadEvent(userinput.EventGamepadButton{ID: 1, Button: userinput.GamepadButtonA, Down: false})
	test.ExpectEquality(t, inp.Pressing(padFire), false)
	test.ExpectEquality(t, inp.Pressing(padTwoFire), true)
}

func TestGamepadAxisHalves(t *testing.T) {
	inp := userinput.NewInputMap[action]()
	inp.Bind(userinput.GamepadAxisCode(userinput.GamepadAxisLeftX, userinput.SignPos), fire)
	inp.Bind(userinput.GamepadAxisCode(userinput.GamepadAxisLeftX, userinput.SignNeg), jump)

	inp.HandleGamepadEvent(userinput.EventGamepadAxis{ID: 0, Axis: userinput.GamepadAxisLeftX, Value: -0.75})
	test.ExpectEquality(t, inp.Value(fire), 0.0)
	test.ExpectApproximate(t, inp.Value(jump), 0.75, tolerance)
	test.ExpectEquality(t, inp.JustPressed(jump), true)

	// stick returning to centre releases the pressed half
	inp.HandleGamepadEvent(userinput.EventGamepadAxis{ID: 0, Axis: userinput.GamepadAxisLeftX, Value: 0.0})
	test.ExpectEquality(t, inp.Value(jump), 0.0)
	test.ExpectEquality(t, inp.JustReleased(jump), true)
}

func TestGamepadButtonChanged(t *testing.T) {
	inp := userinput.NewInputMap[action]()
	inp.Bind(userinput.GamepadButtonCode(userinput.GamepadButtonA), fire)

	inp.HandleGamepadEvent(userinput.EventGamepadButtonChanged{ID: 0, Button: userinput.GamepadButtonA, Value: 0.6})
	test.ExpectApproximate(t, inp.Value(fire), 0.6, tolerance)
	test.ExpectEquality(t, inp.Pressing(fire), true)

	inp.HandleGamepadEvent(userinput.EventGamepadButtonChanged{ID: 0, Button: userinput.GamepadButtonA, Value: 0.2})
	test.ExpectEquality(t, inp.Pressing(fire), false)
	test.ExpectEquality(t, inp.JustReleased(fire), true)
}

func TestRecentlyPressed(t *testing.T) {
	inp := userinput.NewInputMap[action]()
	test.ExpectEquality(t, inp.RecentlyPressed.IsValid(), false)

	// the last touched code is recorded even when it isn't in the binding
	// table. useful for rebinding screens
	inp.HandleWindowEvent(userinput.EventKeyboard{Key: userinput.KeyQ, Down: true})
	test.ExpectEquality(t, inp.RecentlyPressed, userinput.KeyCode(userinput.KeyQ))

	inp.Reset()
	test.ExpectEquality(t, inp.RecentlyPressed.IsValid(), false)
}

func TestTextTyped(t *testing.T) {
	inp := userinput.NewInputMap[action]()

	inp.HandleWindowEvent(userinput.EventKeyboard{Text: "he"})
	inp.HandleWindowEvent(userinput.EventKeyboard{Text: "llo"})
	test.ExpectEquality(t, inp.TextTyped, "hello")

	inp.Reset()
	test.ExpectEquality(t, inp.TextTyped, "")
}

func TestCursorMoved(t *testing.T) {
	inp := userinput.NewInputMap[action]()

	inp.HandleWindowEvent(userinput.EventCursorMoved{X: 320, Y: 200})
	test.ExpectEquality(t, inp.MousePos, userinput.Vec2{X: 320, Y: 200})

	// the cursor position is not transient frame state
	inp.Reset()
	test.ExpectEquality(t, inp.MousePos, userinput.Vec2{X: 320, Y: 200})
}

func TestBindingTable(t *testing.T) {
	inp := userinput.NewInputMap[action]()
	code := userinput.KeyCode(userinput.KeySpace)

	test.ExpectEquality(t, len(inp.Lookup(code)), 0)

	// no duplicate suppression. the binding list is a list, not a set
	inp.Bind(code, fire)
	inp.Bind(code, fire)
	test.ExpectEquality(t, len(inp.Lookup(code)), 2)

	// both entries are updated to the same intensity but the second pass
	// computes its edges against the record the first pass just wrote, so
	// a duplicate bind swallows the just-pressed edge
	inp.HandleWindowEvent(userinput.EventKeyboard{Key: userinput.KeySpace, Down: true})
	test.ExpectEquality(t, inp.Pressing(fire), true)
	test.ExpectEquality(t, inp.JustPressed(fire), false)

	// the just-released edge is swallowed the same way
	inp.HandleWindowEvent(userinput.EventKeyboard{Key: userinput.KeySpace, Down: false})
	test.ExpectEquality(t, inp.Pressing(fire), false)
	test.ExpectEquality(t, inp.JustReleased(fire), false)

	// an action bound once to the same code sees its edges as normal
	inp.Bind(userinput.KeyCode(userinput.KeyW), jump)
	inp.HandleWindowEvent(userinput.EventKeyboard{Key: userinput.KeyW, Down: true})
	test.ExpectEquality(t, inp.JustPressed(jump), true)
}

func TestNewInputMapBinds(t *testing.T) {
	inp := userinput.NewInputMap[action](
		userinput.Bind[action]{Action: fire, Codes: []userinput.InputCode{
			userinput.KeyCode(userinput.KeySpace),
			userinput.MouseButtonCode(userinput.MouseButtonLeft),
		}},
		userinput.Bind[action]{Action: jump, Codes: []userinput.InputCode{
			userinput.KeyCode(userinput.KeyW),
		}},
	)

	test.ExpectEquality(t, inp.MouseScale, 0.1)
	test.ExpectEquality(t, inp.ScrollScale, 0.1)
	test.ExpectEquality(t, inp.PressSensitivity, 0.5)

	inp.HandleWindowEvent(userinput.EventMouseButton{Button: userinput.MouseButtonLeft, Down: true})
	test.ExpectEquality(t, inp.Pressing(fire), true)
	test.ExpectEquality(t, inp.Pressing(jump), false)
}

func TestPressSensitivity(t *testing.T) {
	inp := userinput.NewInputMap[action]()
	inp.Bind(userinput.KeyCode(userinput.KeySpace), fire)

	// a sensitivity above 1.0 makes ordinary buttons unreachable. this is
	// accepted caller responsibility, not an error
	inp.PressSensitivity = 1.1

	inp.HandleWindowEvent(userinput.EventKeyboard{Key: userinput.KeySpace, Down: true})
	test.ExpectEquality(t, inp.Value(fire), 1.0)
	test.ExpectEquality(t, inp.Pressing(fire), false)
	test.ExpectEquality(t, inp.JustPressed(fire), false)
}
