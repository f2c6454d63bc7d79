package curvedit

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/pelletier/go-toml/v2"
)

// ErrInvalidConfig is returned, wrapped, by [Config.Validate] and the
// decoding functions when a configuration value is out of range.
var ErrInvalidConfig = errors.New("invalid configuration")

// Config holds every tunable of the editor and its renderer. The zero value
// is not useful; start from [DefaultConfig].
type Config struct {
	Kind Kind `toml:"kind"`
	// Degree is the initial degree of Bézier curves. Validate rejects
	// degrees outside [MinDegree, MaxDegree]; NewBezier clamps them for
	// configurations that were never validated.
	Degree int `toml:"degree"`
	// Smooth is the initial smooth mode of Bézier curves. It has no effect
	// below MinSmoothDegree.
	Smooth bool `toml:"smooth"`

	// PointRadius is the hit radius for control points and tangent
	// indicators. A position hits if its distance is strictly less.
	PointRadius float64 `toml:"point_radius"`
	// TangentScale maps tangents to indicator offsets: the indicator of a
	// point is drawn at Position + Tangent·TangentScale.
	TangentScale float64 `toml:"tangent_scale"`
	// SamplesPerSegment is the number of intervals each segment is sampled
	// with when drawn.
	SamplesPerSegment int `toml:"samples_per_segment"`
	// ClearFocusOnRelease clears the focused point when the button is
	// released. When unset, the point stays focused and its tangent
	// indicator stays reachable.
	ClearFocusOnRelease bool `toml:"clear_focus_on_release"`

	Style Style `toml:"style"`
}

// Style controls how the renderer draws a curve.
type Style struct {
	PointRadius     float64 `toml:"point_radius"`
	IndicatorRadius float64 `toml:"indicator_radius"`
	LineWidth       float64 `toml:"line_width"`

	// Colors are hex strings as accepted by gg.Hex, such as "#ff0000".
	Background   string `toml:"background"`
	PointColor   string `toml:"point_color"`
	FocusColor   string `toml:"focus_color"`
	TangentColor string `toml:"tangent_color"`
	CurveColor   string `toml:"curve_color"`
}

// DefaultConfig returns the default configuration: a quadratic Bézier curve
// with smooth mode off.
func DefaultConfig() Config {
	return Config{
		Kind:              KindBezier,
		Degree:            2,
		PointRadius:       10,
		TangentScale:      0.1,
		SamplesPerSegment: 200,
		Style: Style{
			PointRadius:     10,
			IndicatorRadius: 15,
			LineWidth:       2,
			Background:      "#000000",
			PointColor:      "#ffffff",
			FocusColor:      "#00ff00",
			TangentColor:    "#ff0000",
			CurveColor:      "#ffffff",
		},
	}
}

// Validate reports the first out-of-range value, wrapping [ErrInvalidConfig].
func (cfg Config) Validate() error {
	switch {
	case !validKind(cfg.Kind):
		return fmt.Errorf("%w: unknown kind %s", ErrInvalidConfig, cfg.Kind)
	case cfg.Degree < MinDegree || cfg.Degree > MaxDegree:
		return fmt.Errorf("%w: degree %d out of range [%d, %d]", ErrInvalidConfig, cfg.Degree, MinDegree, MaxDegree)
	case !(cfg.PointRadius > 0):
		return fmt.Errorf("%w: point radius must be positive, got %g", ErrInvalidConfig, cfg.PointRadius)
	case !(cfg.TangentScale > 0):
		return fmt.Errorf("%w: tangent scale must be positive, got %g", ErrInvalidConfig, cfg.TangentScale)
	case cfg.SamplesPerSegment < 1:
		return fmt.Errorf("%w: need at least one sample per segment, got %d", ErrInvalidConfig, cfg.SamplesPerSegment)
	case cfg.Style.PointRadius < 0 || cfg.Style.IndicatorRadius < 0 || cfg.Style.LineWidth < 0:
		return fmt.Errorf("%w: style sizes must not be negative", ErrInvalidConfig)
	}
	return nil
}

func validKind(k Kind) bool {
	_, ok := kindNames[k]
	return ok
}

// DecodeConfig reads a TOML configuration from r. Fields missing from the
// document keep their [DefaultConfig] values; unknown fields are an error.
func DecodeConfig(r io.Reader) (Config, error) {
	cfg := DefaultConfig()
	dec := toml.NewDecoder(r).DisallowUnknownFields()
	if err := dec.Decode(&cfg); err != nil {
		var serr *toml.StrictMissingError
		if errors.As(err, &serr) {
			return Config{}, fmt.Errorf("decoding config: %w:\n%s", err, serr.String())
		}
		return Config{}, fmt.Errorf("decoding config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// LoadConfig reads the TOML configuration file at path. See [DecodeConfig].
func LoadConfig(path string) (Config, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return Config{}, err
	}
	cfg, err := DecodeConfig(bytes.NewReader(b))
	if err != nil {
		return Config{}, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}
