package input

// Action is a logical gunnery control, decoupled from key bindings.
type Action uint8

const (
	ActionNone Action = iota
	ActionTraverseLeft
	ActionTraverseRight
	ActionElevateUp
	ActionElevateDown
	ActionFire
	ActionQuit

	actionCount
)

// Frame is the per-frame input snapshot consumed by the simulation:
// the currently-held movement keys plus the discrete fire trigger.
type Frame struct {
	TraverseLeft  bool
	TraverseRight bool
	ElevateUp     bool
	ElevateDown   bool
	FastTraverse  bool
	Fire          bool
}

// Traversing reports whether either traverse direction is active.
func (f Frame) Traversing() bool {
	return f.TraverseLeft || f.TraverseRight
}
