package input

import (
	"time"
)

// holdWindow is how long a pressed key counts as held without a
// refresh. Terminals deliver no key-release events, so a key is "held"
// while autorepeat keeps re-pressing it; the window must outlast the
// initial repeat delay of common terminal settings.
const holdWindow = 250 * time.Millisecond

// Tracker converts discrete key events into held-key state.
// Single-owner: fed from the event loop, snapshotted once per frame.
type Tracker struct {
	deadline [actionCount]time.Time
	fastHeld [actionCount]bool
	firePend bool
}

func NewTracker() *Tracker {
	return &Tracker{}
}

// Press records a key event for an action. fast marks the fast-traverse
// modifier being held with this press.
func (t *Tracker) Press(a Action, fast bool, now time.Time) {
	if a == ActionNone || a >= actionCount {
		return
	}
	if a == ActionFire {
		t.firePend = true
		return
	}
	t.deadline[a] = now.Add(holdWindow)
	t.fastHeld[a] = fast
}

// held reports whether an action's hold window is still open.
func (t *Tracker) held(a Action, now time.Time) bool {
	return now.Before(t.deadline[a])
}

// Snapshot returns the frame input state and consumes the pending fire
// trigger.
func (t *Tracker) Snapshot(now time.Time) Frame {
	f := Frame{
		TraverseLeft:  t.held(ActionTraverseLeft, now),
		TraverseRight: t.held(ActionTraverseRight, now),
		ElevateUp:     t.held(ActionElevateUp, now),
		ElevateDown:   t.held(ActionElevateDown, now),
		Fire:          t.firePend,
	}
	t.firePend = false

	// Fast modifier applies while any traverse hold carries it
	if f.TraverseLeft && t.fastHeld[ActionTraverseLeft] {
		f.FastTraverse = true
	}
	if f.TraverseRight && t.fastHeld[ActionTraverseRight] {
		f.FastTraverse = true
	}
	return f
}
