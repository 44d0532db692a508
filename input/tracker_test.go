package input

import (
	"testing"
	"time"
)

func TestTrackerHoldWindow(t *testing.T) {
	tr := NewTracker()
	start := time.Now()

	tr.Press(ActionTraverseLeft, false, start)

	f := tr.Snapshot(start.Add(100 * time.Millisecond))
	if !f.TraverseLeft {
		t.Error("traverse-left not held inside hold window")
	}

	f = tr.Snapshot(start.Add(holdWindow + time.Millisecond))
	if f.TraverseLeft {
		t.Error("traverse-left still held after hold window expired")
	}
}

func TestTrackerRefresh(t *testing.T) {
	tr := NewTracker()
	start := time.Now()

	// Autorepeat keeps the hold alive past the original window
	tr.Press(ActionElevateUp, false, start)
	tr.Press(ActionElevateUp, false, start.Add(200*time.Millisecond))

	f := tr.Snapshot(start.Add(400 * time.Millisecond))
	if !f.ElevateUp {
		t.Error("refreshed hold expired early")
	}
}

func TestTrackerFireConsumed(t *testing.T) {
	tr := NewTracker()
	now := time.Now()

	tr.Press(ActionFire, false, now)

	if f := tr.Snapshot(now); !f.Fire {
		t.Error("fire trigger not reported")
	}
	if f := tr.Snapshot(now); f.Fire {
		t.Error("fire trigger reported twice for one press")
	}
}

func TestTrackerFastModifier(t *testing.T) {
	tr := NewTracker()
	now := time.Now()

	tr.Press(ActionTraverseRight, true, now)
	f := tr.Snapshot(now.Add(10 * time.Millisecond))
	if !f.FastTraverse {
		t.Error("fast modifier lost on shifted traverse press")
	}

	// Plain press clears the modifier
	tr.Press(ActionTraverseRight, false, now.Add(20*time.Millisecond))
	f = tr.Snapshot(now.Add(30 * time.Millisecond))
	if f.FastTraverse {
		t.Error("fast modifier stuck after unshifted press")
	}
}

func TestTrackerIgnoresNone(t *testing.T) {
	tr := NewTracker()
	now := time.Now()

	tr.Press(ActionNone, false, now)
	f := tr.Snapshot(now)
	if f.TraverseLeft || f.TraverseRight || f.ElevateUp || f.ElevateDown || f.Fire {
		t.Errorf("ActionNone produced held state: %+v", f)
	}
}
