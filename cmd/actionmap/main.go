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

// The actionmap command is a small demonstration host for the userinput
// package. It opens an SDL window, pumps events through the sdlinput
// translation layer and prints the resulting action state once per frame.
//
// Scale and sensitivity knobs can be set through the environment (or a
// .env file in the working directory): MOUSE_SCALE, SCROLL_SCALE,
// PRESS_SENSITIVITY. Extra bindings can be added with an optional
// bindings.json file:
//
//	{
//	    "binds": [
//	        {"action": "fire", "keys": ["F"], "gamepad": ["b"]}
//	    ]
//	}
package main

import (
	"errors"
	"fmt"
	"os"
	"strconv"

	"github.com/joho/godotenv"
	"github.com/tidwall/gjson"
	"github.com/veandco/go-sdl2/sdl"

	"actionmap/curated"
	"actionmap/logger"
	"actionmap/sdlinput"
	"actionmap/userinput"
)

type action int

const (
	moveUp action = iota
	moveDown
	moveLeft
	moveRight
	lookUp
	lookDown
	lookLeft
	lookRight
	fire
	quit
)

// action names accepted in bindings.json.
var actionNames = map[string]action{
	"move_up":    moveUp,
	"move_down":  moveDown,
	"move_left":  moveLeft,
	"move_right": moveRight,
	"look_up":    lookUp,
	"look_down":  lookDown,
	"look_left":  lookLeft,
	"look_right": lookRight,
	"fire":       fire,
	"quit":       quit,
}

func defaultBinds() []userinput.Bind[action] {
	return []userinput.Bind[action]{
		{Action: moveUp, Codes: []userinput.InputCode{
			userinput.KeyCode(userinput.KeyW),
			userinput.KeyCode(userinput.KeyUp),
			userinput.GamepadAxisCode(userinput.GamepadAxisLeftY, userinput.SignNeg),
		}},
		{Action: moveDown, Codes: []userinput.InputCode{
			userinput.KeyCode(userinput.KeyS),
			userinput.KeyCode(userinput.KeyDown),
			userinput.GamepadAxisCode(userinput.GamepadAxisLeftY, userinput.SignPos),
		}},
		{Action: moveLeft, Codes: []userinput.InputCode{
			userinput.KeyCode(userinput.KeyA),
			userinput.KeyCode(userinput.KeyLeft),
			userinput.GamepadAxisCode(userinput.GamepadAxisLeftX, userinput.SignNeg),
		}},
		{Action: moveRight, Codes: []userinput.InputCode{
			userinput.KeyCode(userinput.KeyD),
			userinput.KeyCode(userinput.KeyRight),
			userinput.GamepadAxisCode(userinput.GamepadAxisLeftX, userinput.SignPos),
		}},
		{Action: lookUp, Codes: []userinput.InputCode{
			userinput.MouseMoveY(userinput.SignNeg),
			userinput.GamepadAxisCode(userinput.GamepadAxisRightY, userinput.SignNeg),
		}},
		{Action: lookDown, Codes: []userinput.InputCode{
			userinput.MouseMoveY(userinput.SignPos),
			userinput.GamepadAxisCode(userinput.GamepadAxisRightY, userinput.SignPos),
		}},
		{Action: lookLeft, Codes: []userinput.InputCode{
			userinput.MouseMoveX(userinput.SignNeg),
			userinput.GamepadAxisCode(userinput.GamepadAxisRightX, userinput.SignNeg),
		}},
		{Action: lookRight, Codes: []userinput.InputCode{
			userinput.MouseMoveX(userinput.SignPos),
			userinput.GamepadAxisCode(userinput.GamepadAxisRightX, userinput.SignPos),
		}},
		{Action: fire, Codes: []userinput.InputCode{
			userinput.KeyCode(userinput.KeySpace),
			userinput.MouseButtonCode(userinput.MouseButtonLeft),
			userinput.GamepadButtonCode(userinput.GamepadButtonA),
		}},
		{Action: quit, Codes: []userinput.InputCode{
			userinput.KeyCode(userinput.KeyEscape),
			userinput.GamepadButtonCode(userinput.GamepadButtonBack),
		}},
	}
}

func main() {
	logger.SetEcho(os.Stdout)

	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run() error {
	// missing .env file is fine, the environment may be set directly
	_ = godotenv.Load()

	if err := sdl.Init(sdl.INIT_VIDEO | sdl.INIT_GAMECONTROLLER); err != nil {
		return curated.Errorf("actionmap: %v", err)
	}
	defer sdl.Quit()

	window, err := sdl.CreateWindow("actionmap demo",
		sdl.WINDOWPOS_UNDEFINED, sdl.WINDOWPOS_UNDEFINED,
		640, 480, sdl.WINDOW_SHOWN)
	if err != nil {
		return curated.Errorf("actionmap: %v", err)
	}
	defer window.Destroy()

	inp := userinput.NewInputMap(defaultBinds()...)
	applyEnv(inp)

	if err := loadBindings(inp, "bindings.json"); err != nil {
		return err
	}

	pads := sdlinput.NewGamepads()
	defer pads.Close()

	sdl.StartTextInput()

	running := true
	for running {
		for ev := sdl.PollEvent(); ev != nil; ev = sdl.PollEvent() {
			if _, ok := ev.(*sdl.QuitEvent); ok {
				running = false
			}
			pads.Service(ev)
			sdlinput.Service(inp, ev)
		}

		if inp.JustPressed(quit) {
			running = false
		}

		if inp.JustPressed(fire) {
			fmt.Println("fire")
		}
		if inp.JustReleased(fire) {
			fmt.Println("fire released")
		}

		move := inp.DirectionClamped(moveRight, moveLeft, moveDown, moveUp)
		if move.X != 0 || move.Y != 0 {
			fmt.Printf("move: %+.2f %+.2f\n", move.X, move.Y)
		}

		look := inp.Direction(lookRight, lookLeft, lookDown, lookUp)
		if look.X != 0 || look.Y != 0 {
			fmt.Printf("look: %+.2f %+.2f\n", look.X, look.Y)
		}

		if inp.TextTyped != "" {
			fmt.Printf("typed: %q\n", inp.TextTyped)
		}

		inp.Reset()
		sdl.Delay(16)
	}

	return nil
}

// applyEnv copies the scale/sensitivity knobs from the environment to the
// input map. Unset variables leave the defaults in place.
func applyEnv(inp *userinput.InputMap[action]) {
	envFloat("MOUSE_SCALE", &inp.MouseScale)
	envFloat("SCROLL_SCALE", &inp.ScrollScale)
	envFloat("PRESS_SENSITIVITY", &inp.PressSensitivity)
}

func envFloat(name string, dst *float32) {
	s, ok := os.LookupEnv(name)
	if !ok {
		return
	}
	v, err := strconv.ParseFloat(s, 32)
	if err != nil {
		logger.Logf("actionmap", "bad value for %s: %v", name, s)
		return
	}
	*dst = float32(v)
}

// loadBindings adds the bindings described in a JSON file to the input map.
// A missing file is not an error.
func loadBindings(inp *userinput.InputMap[action], path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil
		}
		return curated.Errorf("bindings: %v", err)
	}

	if !gjson.ValidBytes(data) {
		return curated.Errorf("bindings: %s: not valid JSON", path)
	}

	gjson.GetBytes(data, "binds").ForEach(func(_, bind gjson.Result) bool {
		name := bind.Get("action").String()
		act, ok := actionNames[name]
		if !ok {
			logger.Logf("actionmap", "bindings: unknown action %q", name)
			return true
		}

		bind.Get("keys").ForEach(func(_, k gjson.Result) bool {
			if key, ok := keyNames[k.String()]; ok {
				inp.Bind(userinput.KeyCode(key), act)
			} else {
				logger.Logf("actionmap", "bindings: unknown key %q", k.String())
			}
			return true
		})

		bind.Get("gamepad").ForEach(func(_, b gjson.Result) bool {
			if button, ok := gamepadButtonNames[b.String()]; ok {
				inp.Bind(userinput.GamepadButtonCode(button), act)
			} else {
				logger.Logf("actionmap", "bindings: unknown gamepad button %q", b.String())
			}
			return true
		})

		return true
	})

	return nil
}
