package engine

import "time"

// UpdateFrame is handed to every system during one Scheduler.Once call.
type UpdateFrame struct {
	DeltaTime time.Duration
	Commands  *Commands
	World     *World
}

func newUpdateFrame(dt time.Duration, world *World, commands *Commands) *UpdateFrame {
	return &UpdateFrame{
		DeltaTime: dt,
		Commands:  commands,
		World:     world,
	}
}
