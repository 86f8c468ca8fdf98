package knobkit

import (
	"log/slog"
	"time"
)

// DragEvent identifies the phase of a pointer gesture delivered to a
// knob.
type DragEvent int

const (
	// DragStart is sent when the pointer goes down on a widget.
	DragStart DragEvent = iota
	// DragMove is sent for each pointer movement while down; the
	// event carries the delta since the previous report.
	DragMove
	// DragEnd is sent when the pointer is released.
	DragEnd
	// DragClick is sent just before DragEnd when the gesture was
	// short and mostly stationary; the event carries the pointer
	// position rather than a delta.
	DragClick
)

// DragFunc is a callback for gesture events.  For DragMove, x and y
// are the pointer delta since the previous event.  For DragClick they
// are the position where the click happened.  For DragStart and
// DragEnd they are zero.
type DragFunc func(event DragEvent, x, y int)

// isClick decides whether a completed gesture was a click or a drag:
// released within half a second and net travel inside a 20-pixel box
// means click.  Double-click would need the tracker to sit on click
// events waiting for a second press, so it isn't offered.
func isClick(duration time.Duration, x, y int) bool {
	if duration > 500*time.Millisecond {
		return false
	}

	if x > 20 || x < -20 {
		return false
	}

	if y > 20 || y < -20 {
		return false
	}

	return true
}

// DragTracker turns raw pointer down/move/up reports from a host
// framework into DragStart/DragMove/DragEnd/DragClick events.  The
// host calls Down, Move and Up with pointer positions; the tracker
// computes per-event deltas and runs click discrimination on release.
// Feed the resulting events to a knob's HandleDrag.
type DragTracker struct {
	f              DragFunc
	started        bool
	startX, startY int
	lastX, lastY   int
	startTime      time.Time
}

// NewDragTracker creates a DragTracker that delivers gesture events
// to f.
func NewDragTracker(f DragFunc) *DragTracker {
	return &DragTracker{f: f}
}

// Dragging reports whether a gesture is currently in progress.
func (t *DragTracker) Dragging() bool {
	return t.started
}

// Down reports that the pointer went down at x, y.  Repeated Down
// calls during a gesture are ignored; hosts that report a held button
// every frame can call Down unconditionally.
func (t *DragTracker) Down(x, y int) {
	if t.started {
		return
	}
	t.started = true
	t.startX, t.startY = x, y
	t.lastX, t.lastY = x, y
	t.startTime = time.Now()
	t.f(DragStart, 0, 0)
}

// Move reports the current pointer position while down.
func (t *DragTracker) Move(x, y int) {
	if !t.started {
		slog.Warn("Received pointer move while not dragging")
		return
	}
	dx := x - t.lastX
	dy := y - t.lastY
	t.lastX, t.lastY = x, y
	if dx != 0 || dy != 0 {
		t.f(DragMove, dx, dy)
	}
}

// Up reports that the pointer was released at x, y.
func (t *DragTracker) Up(x, y int) {
	if !t.started {
		slog.Warn("Received pointer up while not dragging")
		return
	}
	t.started = false

	duration := time.Since(t.startTime)
	dx := x - t.startX
	dy := y - t.startY
	slog.Debug("Drag complete", "dx", dx, "dy", dy, "elapsed", duration)

	if isClick(duration, dx, dy) {
		t.f(DragClick, x, y) // use x/y, not dx/dy
	}
	t.f(DragEnd, 0, 0)
}
