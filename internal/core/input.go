package core

// InputFrame is the input snapshot the simulation reads once per frame.
// The platform overwrites it continuously (last writer wins); the simulation
// only ever clears Fire after consuming a launch or a shot.
type InputFrame struct {
	Left  bool // move paddle left
	Right bool // move paddle right
	Fire  bool // launch the attached ball, or shoot while the laser is active

	// PointerDX is the horizontal pointer/touch movement since the last frame,
	// in world units. Zero for keyboard-only play.
	PointerDX float64
}

// ConsumeFire clears the fire action. Returns whether it was set.
func (f *InputFrame) ConsumeFire() bool {
	was := f.Fire
	f.Fire = false
	return was
}

// Clear resets every action for the next frame.
func (f *InputFrame) Clear() {
	*f = InputFrame{}
}

// IsZero reports whether no action is set.
func (f InputFrame) IsZero() bool {
	return f == InputFrame{}
}
