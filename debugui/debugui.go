// Package debugui provides a Dear ImGui overlay for a running game. Panels
// are registered as ImguiItems and rendered by the ImguiSystem after the
// frame's systems have run.
package debugui

import (
	"github.com/AllenDang/cimgui-go/imgui"
	"github.com/plus3/colortris/engine"
	"github.com/plus3/colortris/game"
)

// ImguiItem holds a Dear ImGui render function.
type ImguiItem struct {
	Name   string
	Render func()
}

// ImguiItems is the resource listing every panel drawn each frame.
type ImguiItems struct {
	Items []ImguiItem
}

// Add appends a panel.
func (i *ImguiItems) Add(name string, render func()) {
	i.Items = append(i.Items, ImguiItem{Name: name, Render: render})
}

// ImguiInputState tracks whether Dear ImGui is consuming mouse or keyboard
// input. Front ends stop feeding the game while it does.
type ImguiInputState struct {
	WantCaptureMouse    bool
	WantCaptureKeyboard bool
}

// ImguiSystem refreshes ImguiInputState and defers every panel's render
// function to the end of the frame.
type ImguiSystem struct {
	Items      engine.Resource[ImguiItems]
	InputState engine.Resource[ImguiInputState]
}

func (i *ImguiSystem) Execute(frame *engine.UpdateFrame) {
	state := i.InputState.Get()
	state.WantCaptureMouse = imgui.CurrentIO().WantCaptureMouse()
	state.WantCaptureKeyboard = imgui.CurrentIO().WantCaptureKeyboard()

	for _, item := range i.Items.Get().Items {
		frame.Commands.Defer(item.Render)
	}
}

// Install adds the overlay's resources and panels to rt and registers the
// ImguiSystem last on its update scheduler.
func Install(rt *game.Runtime) {
	items := engine.NewResource(rt.World, ImguiItems{})
	engine.NewResource(rt.World, ImguiInputState{})

	session := NewSessionPanel(rt)
	playfield := NewPlayfieldPanel(rt)
	perf := NewPerformancePanel(rt, 120)

	items.Get().Add("session", session.Render)
	items.Get().Add("playfield", playfield.Render)
	items.Get().Add("performance", perf.Render)

	rt.Updates.Register(&ImguiSystem{})
}

// CapturingKeyboard reports whether the overlay installed in world currently
// owns the keyboard.
func CapturingKeyboard(world *engine.World) bool {
	state := engine.Read[ImguiInputState](world)
	return state != nil && state.WantCaptureKeyboard
}
