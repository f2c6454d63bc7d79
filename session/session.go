// Package session reads scripted editor input from YAML and replays it.
//
// A script is a list of events, applied in order:
//
//	- {type: press, x: 100, y: 100}
//	- {type: move, x: 140, y: 90}
//	- {type: release, x: 140, y: 90}
//	- {type: frame}
//	- {type: key-down, key: S}
//
// Pointer events take x and y and an optional button (left, right, middle;
// left by default). Key events take a key (S, Z, Left, Right). Entries of
// type "frame" end a frame: everything before them is applied before the
// frame is drawn. Events after the last frame marker form a final frame.
//
// Positions are taken as given. Scripts recorded in window pixels are
// converted with [Session.Map].
package session

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"
	"honnef.co/go/curvedit"
)

const frameMarker = "frame"

type record struct {
	Type   string  `yaml:"type"`
	X      float64 `yaml:"x"`
	Y      float64 `yaml:"y"`
	Button string  `yaml:"button"`
	Key    string  `yaml:"key"`
}

// Session is a decoded script, split into frames.
type Session struct {
	Frames [][]curvedit.Event
}

// Len returns the total number of events.
func (s *Session) Len() int {
	n := 0
	for _, f := range s.Frames {
		n += len(f)
	}
	return n
}

// Decode reads a script from r. An empty document is an empty session.
func Decode(r io.Reader) (*Session, error) {
	var recs []record
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&recs); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("decoding session: %w", err)
	}

	s := &Session{}
	var cur []curvedit.Event
	for i, rec := range recs {
		if rec.Type == frameMarker {
			s.Frames = append(s.Frames, cur)
			cur = nil
			continue
		}
		ev, err := rec.event()
		if err != nil {
			return nil, fmt.Errorf("event %d: %w", i, err)
		}
		cur = append(cur, ev)
	}
	if len(cur) > 0 || len(s.Frames) == 0 {
		s.Frames = append(s.Frames, cur)
	}
	return s, nil
}

// Load reads the script file at path. See [Decode].
func Load(path string) (*Session, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	s, err := Decode(bytes.NewReader(b))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return s, nil
}

func (rec record) event() (curvedit.Event, error) {
	kind, err := curvedit.ParseEventKind(rec.Type)
	if err != nil {
		return curvedit.Event{}, err
	}
	ev := curvedit.Event{Kind: kind}
	switch kind {
	case curvedit.EventMouseMoved:
		ev.Pos = curvedit.Pt(rec.X, rec.Y)
	case curvedit.EventButtonPressed, curvedit.EventButtonReleased:
		ev.Pos = curvedit.Pt(rec.X, rec.Y)
		ev.Button = curvedit.ButtonLeft
		if rec.Button != "" {
			if ev.Button, err = curvedit.ParseButton(rec.Button); err != nil {
				return curvedit.Event{}, err
			}
		}
	case curvedit.EventKeyPressed, curvedit.EventKeyReleased:
		if rec.Key == "" {
			return curvedit.Event{}, fmt.Errorf("%s event without a key", kind)
		}
		if ev.Key, err = curvedit.ParseKey(rec.Key); err != nil {
			return curvedit.Event{}, err
		}
	}
	return ev, nil
}

// Map returns a copy of s with fn applied to every event. Hosts use it to
// convert scripts recorded in window pixels, for example with
// render.View.MapEvent.
func (s *Session) Map(fn func(curvedit.Event) curvedit.Event) *Session {
	out := &Session{Frames: make([][]curvedit.Event, len(s.Frames))}
	for i, events := range s.Frames {
		if events == nil {
			continue
		}
		mapped := make([]curvedit.Event, len(events))
		for j, ev := range events {
			mapped[j] = fn(ev)
		}
		out.Frames[i] = mapped
	}
	return out
}

// Replay applies every frame's events to ed in order. After each frame it
// calls frame, if not nil, with the frame's index; a non-nil error stops the
// replay and is returned.
func (s *Session) Replay(ed *curvedit.Editor, frame func(n int) error) error {
	for n, events := range s.Frames {
		for _, ev := range events {
			ed.Handle(ev)
		}
		if frame != nil {
			if err := frame(n); err != nil {
				return fmt.Errorf("frame %d: %w", n, err)
			}
		}
	}
	return nil
}
