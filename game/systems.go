package game

import (
	"time"

	"github.com/plus3/colortris/engine"
)

// InputSystem feeds queued input events to the session.
type InputSystem struct {
	Session engine.Resource[Session]
	Queue   engine.Resource[InputQueue]
}

func (s *InputSystem) Execute(frame *engine.UpdateFrame) {
	session := s.Session.Get()
	for in := range s.Queue.Get().Drain() {
		session.HandleInput(in)
	}
}

// TimerSystem advances the session's timers by the frame's elapsed time.
// It runs after InputSystem so a key release disarms its repeat timer before
// the timer can fire again.
type TimerSystem struct {
	Session engine.Resource[Session]
}

func (s *TimerSystem) Execute(frame *engine.UpdateFrame) {
	session := s.Session.Get()
	session.Stats.Frames++
	session.Advance(frame.DeltaTime)
}

// RenderSystem draws the session to Target, if one is set.
type RenderSystem struct {
	Session engine.Resource[Session]
	Target  Renderer
	Layout  Layout
}

func (s *RenderSystem) Execute(frame *engine.UpdateFrame) {
	if s.Target == nil {
		return
	}
	s.Session.Get().Render(s.Target, s.Layout)
}

// Runtime wires a session into an engine world with one scheduler for
// updates and one for drawing. Front ends call Update once per frame and
// Draw whenever they repaint.
type Runtime struct {
	World   *engine.World
	Updates *engine.Scheduler
	Draws   *engine.Scheduler

	session *engine.Resource[Session]
	queue   *engine.Resource[InputQueue]
	render  *RenderSystem
}

// NewRuntime creates a session from opts and registers the systems that
// drive and draw it.
func NewRuntime(opts Options, layout Layout) *Runtime {
	world := engine.NewWorld()

	rt := &Runtime{
		World:   world,
		Updates: engine.NewScheduler(world),
		Draws:   engine.NewScheduler(world),
		session: engine.NewResource(world, *NewSession(opts)),
		queue:   engine.NewResource(world, NewInputQueue(DefaultQueueSize)),
		render:  &RenderSystem{Layout: layout},
	}

	rt.Updates.Register(&InputSystem{})
	rt.Updates.Register(&TimerSystem{})
	rt.Draws.Register(rt.render)

	return rt
}

// Session returns the session held by the runtime's world.
func (rt *Runtime) Session() *Session {
	return rt.session.Get()
}

// Input returns the queue front ends push events into.
func (rt *Runtime) Input() InputQueue {
	return *rt.queue.Get()
}

// Update runs one frame: queued input first, then dt of timer time.
func (rt *Runtime) Update(dt time.Duration) {
	rt.Updates.Once(dt)
}

// Draw renders the session through r.
func (rt *Runtime) Draw(r Renderer) {
	rt.render.Target = r
	rt.Draws.Once(0)
	rt.render.Target = nil
}

// Layout returns the layout the runtime draws with.
func (rt *Runtime) Layout() Layout {
	return rt.render.Layout
}

// Done reports whether the player asked to quit.
func (rt *Runtime) Done() bool {
	return rt.Session().QuitRequested()
}
