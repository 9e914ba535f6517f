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

import "math"

// Vec2 is a two dimensional vector. Returned by the Direction() functions
// and used for the mouse position.
type Vec2 struct {
	X float32
	Y float32
}

// Value returns how much an action is being pressed. May be higher than 1.0
// for actions driven by mouse motion or the scroll wheel. Returns 0.0 for
// actions that have never received an event.
func (inp *InputMap[F]) Value(action F) float32 {
	return inp.actions[action].val
}

// Pressing returns true if the action is currently pressed. Shorthand for
// Value(action) >= PressSensitivity.
func (inp *InputMap[F]) Pressing(action F) bool {
	return inp.Value(action) >= inp.PressSensitivity
}

// JustPressed returns true if the action became pressed this frame.
func (inp *InputMap[F]) JustPressed(action F) bool {
	return inp.actions[action].pressed
}

// JustReleased returns true if the action stopped being pressed this frame.
func (inp *InputMap[F]) JustReleased(action F) bool {
	return inp.actions[action].released
}

// Axis combines two actions into a single signed value. Useful for movement
// controls. Shorthand for Value(pos) - Value(neg).
func (inp *InputMap[F]) Axis(pos F, neg F) float32 {
	return inp.Value(pos) - inp.Value(neg)
}

// Direction combines four actions into a vector. The vector is not
// normalised and may exceed unit length, particularly for actions driven by
// mouse motion or scrolling. For movement controls DirectionClamped() is
// usually what's wanted.
func (inp *InputMap[F]) Direction(posX F, negX F, posY F, negY F) Vec2 {
	return Vec2{
		X: inp.Axis(posX, negX),
		Y: inp.Axis(posY, negY),
	}
}

// DirectionClamped is the same as Direction() except that the length of the
// returned vector never exceeds 1.0.
func (inp *InputMap[F]) DirectionClamped(posX F, negX F, posY F, negY F) Vec2 {
	x := inp.Axis(posX, negX)
	y := inp.Axis(posY, negY)

	// if the length is lower than 1 then treat it as 1. since x/1 = x,
	// anything already inside the unit circle is left unchanged exactly
	length := max(float32(math.Sqrt(float64(x*x+y*y))), 1.0)

	return Vec2{X: x / length, Y: y / length}
}
