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

	"actionmap/curated"
	"actionmap/logger"
)

// Gamepads keeps track of the SDL game controllers that are currently open.
// SDL only delivers controller button and axis events for devices that have
// been opened.
type Gamepads struct {
	pads map[sdl.JoystickID]*sdl.GameController
}

// NewGamepads opens every game controller already connected at startup.
// Controllers connected and disconnected later are handled by the Service()
// function.
func NewGamepads() *Gamepads {
	g := &Gamepads{
		pads: make(map[sdl.JoystickID]*sdl.GameController),
	}

	for i := 0; i < sdl.NumJoysticks(); i++ {
		if !sdl.IsGameController(i) {
			continue
		}
		if err := g.open(i); err != nil {
			logger.Logf("sdlinput", "%v", err)
		}
	}

	if len(g.pads) == 0 {
		logger.Log("sdlinput", "no gamepads found")
	}

	return g
}

// Service keeps the set of open controllers up to date with device
// connection events. Call for every event returned by sdl.PollEvent(),
// alongside the package level Service() function.
func (g *Gamepads) Service(ev sdl.Event) {
	switch ev := ev.(type) {
	case *sdl.ControllerDeviceEvent:
		switch ev.Type {
		case sdl.CONTROLLERDEVICEADDED:
			// Which is a device index for added events
			if err := g.open(int(ev.Which)); err != nil {
				logger.Logf("sdlinput", "%v", err)
			}
		case sdl.CONTROLLERDEVICEREMOVED:
			// Which is an instance id for removed events
			g.close(ev.Which)
		}
	}
}

// Close releases every open controller. The Gamepads instance cannot be
// used afterwards.
func (g *Gamepads) Close() {
	for id := range g.pads {
		g.close(id)
	}
}

func (g *Gamepads) open(idx int) error {
	pad := sdl.GameControllerOpen(idx)
	if pad == nil || !pad.Attached() {
		return curated.Errorf("gamepad: failed to open device %d", idx)
	}

	id := pad.Joystick().InstanceID()
	g.pads[id] = pad
	logger.Logf("sdlinput", "gamepad #%d: %s", id, pad.Joystick().Name())

	return nil
}

func (g *Gamepads) close(id sdl.JoystickID) {
	if pad, ok := g.pads[id]; ok {
		pad.Close()
		delete(g.pads, id)
		logger.Logf("sdlinput", "gamepad #%d: disconnected", id)
	}
}
