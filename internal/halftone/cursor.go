package halftone

// PointerID distinguishes simultaneous pointers (mouse, touches).
type PointerID int

// PointerKind is the event type carried by a PointerEvent.
type PointerKind int

const (
	// PointerMove updates a cursor's position.
	PointerMove PointerKind = iota
	// PointerDown marks a cursor pressed.
	PointerDown
	// PointerUp releases a cursor but keeps it tracked (mouse).
	PointerUp
	// PointerEnd removes the cursor entirely (touch lift, cancel).
	PointerEnd
)

// PointerEvent is the single typed input routed into the engine, instead
// of per-event-name callbacks.
type PointerEvent struct {
	ID       PointerID
	Kind     PointerKind
	Position Vector2
}

// Cursor tracks one active pointer.
type Cursor struct {
	Position Vector2
	IsDown   bool
}

// farAway parks the default cursor well outside any surface so force
// math has a defined position before the first input event.
var farAway = Vector2{X: -1e9, Y: -1e9}

// newCursorSet seeds the primary cursor so the map is never empty.
func newCursorSet() map[PointerID]*Cursor {
	return map[PointerID]*Cursor{0: {Position: farAway}}
}

// applyPointer mutates the cursor set for one event.
func applyPointer(cursors map[PointerID]*Cursor, ev PointerEvent) {
	c, ok := cursors[ev.ID]
	if !ok {
		if ev.Kind == PointerUp || ev.Kind == PointerEnd {
			return
		}
		c = &Cursor{}
		cursors[ev.ID] = c
	}
	switch ev.Kind {
	case PointerMove:
		c.Position = ev.Position
	case PointerDown:
		c.Position = ev.Position
		c.IsDown = true
	case PointerUp:
		c.Position = ev.Position
		c.IsDown = false
	case PointerEnd:
		delete(cursors, ev.ID)
	}
}
