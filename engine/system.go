package engine

// System is one step of a frame. Systems may declare Resource fields, which
// the Scheduler binds to its World, and keep their own state between frames.
type System interface {
	Execute(frame *UpdateFrame)
}

// SystemFunc adapts a plain function to the System interface.
type SystemFunc func(frame *UpdateFrame)

func (f SystemFunc) Execute(frame *UpdateFrame) {
	f(frame)
}
