package session

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"honnef.co/go/curvedit"
	"honnef.co/go/curvedit/render"
)

const script = `
- {type: press, x: 10, y: 10}
- {type: release, x: 10, y: 10}
- type: frame
- {type: press, x: 90, y: 10, button: left}
- {type: move, x: 90, y: 50}
- {type: release, x: 90, y: 50}
- {type: press, x: 50, y: 50, button: Right}
- type: frame
- {type: key-down, key: right}
- {type: key-up, key: Right}
`

func TestDecode(t *testing.T) {
	s, err := Decode(strings.NewReader(script))
	require.NoError(t, err)

	want := [][]curvedit.Event{
		{
			curvedit.ButtonPressed(curvedit.ButtonLeft, curvedit.Pt(10, 10)),
			curvedit.ButtonReleased(curvedit.ButtonLeft, curvedit.Pt(10, 10)),
		},
		{
			curvedit.ButtonPressed(curvedit.ButtonLeft, curvedit.Pt(90, 10)),
			curvedit.MouseMoved(curvedit.Pt(90, 50)),
			curvedit.ButtonReleased(curvedit.ButtonLeft, curvedit.Pt(90, 50)),
			curvedit.ButtonPressed(curvedit.ButtonRight, curvedit.Pt(50, 50)),
		},
		{
			curvedit.KeyPressed(curvedit.KeyRight),
			curvedit.KeyReleased(curvedit.KeyRight),
		},
	}
	assert.Equal(t, want, s.Frames)
	assert.Equal(t, 8, s.Len())
}

func TestDecodeEmpty(t *testing.T) {
	for _, doc := range []string{"", "[]"} {
		s, err := Decode(strings.NewReader(doc))
		require.NoError(t, err, "%q", doc)
		assert.Len(t, s.Frames, 1)
		assert.Zero(t, s.Len())
	}
}

func TestDecodeTrailingFrame(t *testing.T) {
	s, err := Decode(strings.NewReader("- {type: key-down, key: Z}\n- {type: frame}\n"))
	require.NoError(t, err)
	assert.Len(t, s.Frames, 1)

	s, err = Decode(strings.NewReader("- {type: frame}\n- {type: frame}\n"))
	require.NoError(t, err)
	assert.Equal(t, [][]curvedit.Event{nil, nil}, s.Frames)
}

func TestDecodeErrors(t *testing.T) {
	tests := []struct {
		name string
		doc  string
		msg  string
	}{
		{"unknown type", "- {type: scroll}", `event 0: unknown event kind "scroll"`},
		{"unknown button", "- {type: frame}\n- {type: press, button: fourth}", `event 1: unknown button "fourth"`},
		{"missing key", "- {type: key-down}", "event 0: key-down event without a key"},
		{"unknown key", "- {type: key-up, key: Q}", `unknown key "Q"`},
		{"unknown field", "- {type: move, z: 1}", "decoding session"},
		{"not a list", "type: move", "decoding session"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Decode(strings.NewReader(tt.doc))
			assert.ErrorContains(t, err, tt.msg)
		})
	}
}

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "session.yaml")
	require.NoError(t, os.WriteFile(path, []byte(script), 0o644))
	s, err := Load(path)
	require.NoError(t, err)
	assert.Len(t, s.Frames, 3)

	require.NoError(t, os.WriteFile(path, []byte("- {type: nope}"), 0o644))
	_, err = Load(path)
	assert.ErrorContains(t, err, path)

	_, err = Load(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestReplay(t *testing.T) {
	s, err := Decode(strings.NewReader(script))
	require.NoError(t, err)

	cfg := curvedit.DefaultConfig()
	ed := curvedit.NewEditor(curvedit.NewCurve(cfg), cfg)

	var lens []int
	err = s.Replay(ed, func(n int) error {
		assert.Equal(t, len(lens), n)
		lens = append(lens, ed.Curve().Len())
		return nil
	})
	require.NoError(t, err)
	assert.Equal(t, []int{1, 2, 2}, lens)
	assert.Equal(t, curvedit.Pt(90, 50), ed.Curve().Point(1).Position)
	assert.Equal(t, 3, ed.Curve().(curvedit.DegreeCurve).Degree())
}

func TestReplayStops(t *testing.T) {
	s, err := Decode(strings.NewReader(script))
	require.NoError(t, err)
	cfg := curvedit.DefaultConfig()
	ed := curvedit.NewEditor(curvedit.NewCurve(cfg), cfg)

	errStop := errors.New("stop")
	calls := 0
	err = s.Replay(ed, func(n int) error {
		calls++
		if n == 1 {
			return errStop
		}
		return nil
	})
	assert.ErrorIs(t, err, errStop)
	assert.ErrorContains(t, err, "frame 1")
	assert.Equal(t, 2, calls)
	assert.Equal(t, 2, ed.Curve().(curvedit.DegreeCurve).Degree(), "events after the failing frame must not be applied")

	require.NoError(t, s.Replay(ed, nil))
}

func TestMapThroughView(t *testing.T) {
	s, err := Decode(strings.NewReader(script))
	require.NoError(t, err)
	view := render.NewView(curvedit.Scale(2, 2))
	mapped := s.Map(view.MapEvent)

	require.Len(t, mapped.Frames, len(s.Frames))
	assert.Equal(t, curvedit.ButtonPressed(curvedit.ButtonLeft, curvedit.Pt(5, 5)), mapped.Frames[0][0])
	assert.Equal(t, curvedit.MouseMoved(curvedit.Pt(45, 25)), mapped.Frames[1][1])
	assert.Equal(t, curvedit.KeyPressed(curvedit.KeyRight), mapped.Frames[2][0])
	assert.Equal(t, curvedit.ButtonPressed(curvedit.ButtonLeft, curvedit.Pt(10, 10)), s.Frames[0][0], "the original session is left alone")

	cfg := curvedit.DefaultConfig()
	ed := curvedit.NewEditor(curvedit.NewCurve(cfg), cfg)
	require.NoError(t, mapped.Replay(ed, nil))
	assert.Equal(t, []curvedit.Point{curvedit.Pt(5, 5), curvedit.Pt(45, 25)}, []curvedit.Point{
		ed.Curve().Point(0).Position,
		ed.Curve().Point(1).Position,
	})
}

func TestMapKeepsEmptyFrames(t *testing.T) {
	s := &Session{Frames: [][]curvedit.Event{nil, {curvedit.KeyPressed(curvedit.KeyZ)}}}
	calls := 0
	mapped := s.Map(func(ev curvedit.Event) curvedit.Event {
		calls++
		return ev
	})
	assert.Equal(t, s.Frames, mapped.Frames)
	assert.Equal(t, 1, calls)
}
