package curvedit

import (
	"fmt"
	"strings"
)

// Button identifies a pointer button. Only [ButtonLeft] edits the curve.
type Button uint8

const (
	ButtonLeft Button = iota + 1
	ButtonRight
	ButtonMiddle
)

var buttonNames = [...]string{
	ButtonLeft:   "left",
	ButtonRight:  "right",
	ButtonMiddle: "middle",
}

func (b Button) String() string {
	if int(b) < len(buttonNames) && buttonNames[b] != "" {
		return buttonNames[b]
	}
	return fmt.Sprintf("Button(%d)", uint8(b))
}

// ParseButton returns the button named s. Names are case-insensitive.
func ParseButton(s string) (Button, error) {
	for b, name := range buttonNames {
		if name != "" && strings.EqualFold(name, s) {
			return Button(b), nil
		}
	}
	return 0, fmt.Errorf("unknown button %q", s)
}

// Key identifies a keyboard key the editor responds to. Hosts translate
// everything else to [KeyUnknown].
type Key uint8

const (
	KeyUnknown Key = iota
	// KeyS toggles smooth mode.
	KeyS
	// KeyZ deletes the last point.
	KeyZ
	// KeyLeft decrements the degree.
	KeyLeft
	// KeyRight increments the degree.
	KeyRight
)

var keyNames = [...]string{
	KeyUnknown: "unknown",
	KeyS:       "S",
	KeyZ:       "Z",
	KeyLeft:    "Left",
	KeyRight:   "Right",
}

func (k Key) String() string {
	if int(k) < len(keyNames) {
		return keyNames[k]
	}
	return fmt.Sprintf("Key(%d)", uint8(k))
}

// ParseKey returns the key named s. Names are case-insensitive.
func ParseKey(s string) (Key, error) {
	for k, name := range keyNames {
		if Key(k) != KeyUnknown && strings.EqualFold(name, s) {
			return Key(k), nil
		}
	}
	return KeyUnknown, fmt.Errorf("unknown key %q", s)
}

type EventKind uint8

const (
	EventMouseMoved EventKind = iota + 1
	EventButtonPressed
	EventButtonReleased
	EventKeyPressed
	EventKeyReleased
)

var eventKindNames = [...]string{
	EventMouseMoved:     "move",
	EventButtonPressed:  "press",
	EventButtonReleased: "release",
	EventKeyPressed:     "key-down",
	EventKeyReleased:    "key-up",
}

func (k EventKind) String() string {
	if int(k) < len(eventKindNames) && eventKindNames[k] != "" {
		return eventKindNames[k]
	}
	return fmt.Sprintf("EventKind(%d)", uint8(k))
}

// ParseEventKind returns the event kind named s, as printed by
// [EventKind.String].
func ParseEventKind(s string) (EventKind, error) {
	for k, name := range eventKindNames {
		if name != "" && name == s {
			return EventKind(k), nil
		}
	}
	return 0, fmt.Errorf("unknown event kind %q", s)
}

// Event is one input event delivered by the host. Pos is in the editor's
// logical coordinate space. Only the fields relevant to Kind are used.
type Event struct {
	Kind   EventKind
	Pos    Point
	Button Button
	Key    Key
}

func (ev Event) String() string {
	switch ev.Kind {
	case EventMouseMoved:
		return fmt.Sprintf("%s %s", ev.Kind, ev.Pos)
	case EventButtonPressed, EventButtonReleased:
		return fmt.Sprintf("%s %s %s", ev.Kind, ev.Button, ev.Pos)
	case EventKeyPressed, EventKeyReleased:
		return fmt.Sprintf("%s %s", ev.Kind, ev.Key)
	default:
		return ev.Kind.String()
	}
}

// MouseMoved returns a pointer-move event.
func MouseMoved(pos Point) Event {
	return Event{Kind: EventMouseMoved, Pos: pos}
}

// ButtonPressed returns a pointer-down event.
func ButtonPressed(btn Button, pos Point) Event {
	return Event{Kind: EventButtonPressed, Button: btn, Pos: pos}
}

// ButtonReleased returns a pointer-up event.
func ButtonReleased(btn Button, pos Point) Event {
	return Event{Kind: EventButtonReleased, Button: btn, Pos: pos}
}

// KeyPressed returns a key-down event.
func KeyPressed(key Key) Event {
	return Event{Kind: EventKeyPressed, Key: key}
}

// KeyReleased returns a key-up event.
func KeyReleased(key Key) Event {
	return Event{Kind: EventKeyReleased, Key: key}
}
