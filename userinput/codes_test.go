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

func TestCodeIdentity(t *testing.T) {
	// device scoped and device agnostic forms of the same physical gesture
	// are distinct binding table keys
	agnostic := userinput.GamepadButtonCode(userinput.GamepadButtonA)
	scoped := agnostic.OnGamepad(2)
	test.ExpectFailure(t, agnostic == scoped)
	test.ExpectEquality(t, scoped.OnGamepad(2), scoped)

	// signed halves of the same axis are distinct
	test.ExpectFailure(t, userinput.MouseMoveX(userinput.SignPos) == userinput.MouseMoveX(userinput.SignNeg))

	// OnGamepad has no effect on codes that aren't gamepad codes
	key := userinput.KeyCode(userinput.KeyA)
	test.ExpectEquality(t, key.OnGamepad(2), key)
}

func TestCodeValidity(t *testing.T) {
	test.ExpectFailure(t, userinput.InputCode{}.IsValid())
	test.ExpectSuccess(t, userinput.KeyCode(userinput.KeyA).IsValid())
	test.ExpectSuccess(t, userinput.Scroll(userinput.SignNeg).IsValid())
}

func TestCodeString(t *testing.T) {
	test.ExpectEquality(t, userinput.KeyCode(userinput.KeyA).String(), "key 4")
	test.ExpectEquality(t, userinput.MouseMoveY(userinput.SignNeg).String(), "mouse move y-")
	test.ExpectEquality(t, userinput.GamepadButtonCode(userinput.GamepadButtonA).String(), "gamepad button 0")
	test.ExpectEquality(t, userinput.GamepadButtonCode(userinput.GamepadButtonA).OnGamepad(2).String(), "gamepad #2 button 0")
	test.ExpectEquality(t, userinput.InputCode{}.String(), "invalid input code")
}
