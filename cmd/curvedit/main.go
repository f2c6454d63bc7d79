// Command curvedit replays a scripted editing session against a curve editor
// and writes the resulting frame as a PNG image.
//
// Usage:
//
//	curvedit [flags] [session.yaml]
//
// Without a session file, only the initial state (see -demo) is drawn.
//
// Session positions are window pixels. They are mapped into model space
// with the -scale view before being handed to the editor, the way an
// interactive host maps pointer events.
package main

import (
	"flag"
	"fmt"
	"log"
	"log/slog"
	"math"
	"os"
	"path/filepath"

	"honnef.co/go/curvedit"
	"honnef.co/go/curvedit/render"
	"honnef.co/go/curvedit/session"
)

func main() {
	var (
		configPath = flag.String("config", "", "TOML configuration file")
		kind       = flag.String("kind", "", "curve kind: bezier, tangent-bezier or hermite (overrides -config)")
		output     = flag.String("o", "curve.png", "output file")
		framesDir  = flag.String("frames", "", "also write every frame as frame-NNN.png into this directory")
		width      = flag.Int("width", 400, "image width")
		height     = flag.Int("height", 400, "image height")
		scale      = flag.Float64("scale", 1, "window pixels per model unit; session positions are window pixels")
		fit        = flag.Bool("fit", false, "scale the final curve to fit the image instead of using -scale")
		demo       = flag.Bool("demo", false, "start with two demo points")
		verbose    = flag.Bool("v", false, "log editor events to stderr")
	)
	flag.Parse()

	if *verbose {
		curvedit.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
			Level: slog.LevelDebug,
		})))
	}

	cfg := curvedit.DefaultConfig()
	if *configPath != "" {
		var err error
		cfg, err = curvedit.LoadConfig(*configPath)
		if err != nil {
			log.Fatalf("Failed to load config: %v", err)
		}
	}
	if *kind != "" {
		k, err := curvedit.ParseKind(*kind)
		if err != nil {
			log.Fatal(err)
		}
		cfg.Kind = k
	}

	sess := &session.Session{Frames: [][]curvedit.Event{nil}}
	if flag.NArg() > 0 {
		var err error
		sess, err = session.Load(flag.Arg(0))
		if err != nil {
			log.Fatalf("Failed to load session: %v", err)
		}
	}

	if !(*scale > 0) || math.IsInf(*scale, 0) {
		log.Fatalf("Invalid scale %g", *scale)
	}
	input := render.NewView(curvedit.Scale(*scale, *scale))
	sess = sess.Map(input.MapEvent)

	r, err := render.New(cfg)
	if err != nil {
		log.Fatalf("Invalid style: %v", err)
	}

	ed := curvedit.NewEditor(curvedit.NewCurve(cfg), cfg)
	if *demo {
		seedDemo(ed.Curve())
	}

	write := func(path string) error {
		view := input
		if *fit {
			if b, ok := render.Bounds(ed); ok {
				view = render.FitView(b, cfg.Style.IndicatorRadius, *width, *height)
			}
		}
		f, err := os.Create(path)
		if err != nil {
			return err
		}
		if err := r.EncodePNG(f, ed, view, *width, *height); err != nil {
			f.Close()
			return err
		}
		return f.Close()
	}

	err = sess.Replay(ed, func(n int) error {
		if *framesDir == "" {
			return nil
		}
		return write(filepath.Join(*framesDir, fmt.Sprintf("frame-%03d.png", n)))
	})
	if err != nil {
		log.Fatalf("Failed to replay session: %v", err)
	}

	if err := write(*output); err != nil {
		log.Fatalf("Failed to save: %v", err)
	}
	log.Printf("%s curve with %d points saved to %s (%dx%d)", cfg.Kind, ed.Curve().Len(), *output, *width, *height)
}

// seedDemo adds the two points the editor traditionally starts with.
func seedDemo(c curvedit.Curve) {
	if tc, ok := c.(curvedit.TangentCurve); ok {
		tc.AddPointTangent(curvedit.Pt(10, 10), curvedit.Vec(1000, 0))
		tc.AddPointTangent(curvedit.Pt(390, 390), curvedit.Vec(-500, 0))
		return
	}
	c.AddPoint(curvedit.Pt(10, 10))
	c.AddPoint(curvedit.Pt(390, 390))
}
