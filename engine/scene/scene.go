package scene

import (
	"bytes"
	"errors"
	"fmt"
	gomath "math"
	"os"

	"github.com/pelletier/go-toml/v2"
	"golang.org/x/image/math/f32"

	"github.com/spaghettifunk/affine/engine/math"
)

var (
	ErrInvalidScene  = errors.New("invalid scene")
	ErrInvalidMatrix = errors.New("invalid matrix")
)

type PlaybackMode string

const (
	// Play from A to B and stop.
	PlaybackOnce PlaybackMode = "once"
	// Play from A to B and jump back to A.
	PlaybackLoop PlaybackMode = "loop"
	// Play from A to B and back again.
	PlaybackPingPong PlaybackMode = "pingpong"
)

const (
	DefaultDuration  = 2.0
	DefaultFrameRate = 30
	DefaultHistory   = 64
)

type Playback struct {
	// Seconds for one pass from A to B.
	Duration  float64      `toml:"duration"`
	Mode      PlaybackMode `toml:"mode"`
	FrameRate int          `toml:"frame_rate"`
	// Number of recent frames kept by the player.
	History int `toml:"history"`
}

// Endpoint describes one of the two interpolated matrices, either as a full
// row-major matrix or as translation, rotation and scale.
type Endpoint struct {
	Matrix      *f32.Mat4 `toml:"matrix,omitempty"`
	Translation *f32.Vec3 `toml:"translation,omitempty"`
	// Quaternion as x, y, z, w.
	Rotation *f32.Vec4 `toml:"rotation,omitempty"`
	// Euler angles in degrees, applied Z first, then X, then Y.
	Euler *f32.Vec3 `toml:"euler,omitempty"`
	Scale *f32.Vec3 `toml:"scale,omitempty"`
}

type Scene struct {
	Name     string                 `toml:"name"`
	T        float32                `toml:"t"`
	Mask     math.InterpolationMask `toml:"mask"`
	A        Endpoint               `toml:"a"`
	B        Endpoint               `toml:"b"`
	Playback Playback               `toml:"playback"`
}

// Default returns the sample scene: identity to a half turn about Y with a
// translation and a stretch along X.
func Default() *Scene {
	s := empty()
	s.Name = "sample"
	s.T = 0.5
	s.B = Endpoint{
		Translation: &f32.Vec3{1, 0, 0},
		Euler:       &f32.Vec3{0, 90, 0},
		Scale:       &f32.Vec3{2, 1, 1},
	}
	return s
}

func empty() *Scene {
	return &Scene{
		Mask: math.MaskAll,
		Playback: Playback{
			Duration:  DefaultDuration,
			Mode:      PlaybackPingPong,
			FrameRate: DefaultFrameRate,
			History:   DefaultHistory,
		},
	}
}

// Load reads and validates a scene file.
func Load(path string) (*Scene, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("scene: read %s: %w", path, err)
	}
	s, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("scene: %s: %w", path, err)
	}
	return s, nil
}

// Parse decodes a scene. Missing keys keep their defaults and unknown keys
// are rejected.
func Parse(data []byte) (*Scene, error) {
	s := empty()
	dec := toml.NewDecoder(bytes.NewReader(data))
	dec.DisallowUnknownFields()
	if err := dec.Decode(s); err != nil {
		var derr *toml.DecodeError
		if errors.As(err, &derr) {
			row, col := derr.Position()
			return nil, fmt.Errorf("%w: line %d column %d: %w", ErrInvalidScene, row, col, err)
		}
		return nil, fmt.Errorf("%w: %w", ErrInvalidScene, err)
	}
	if err := s.Validate(); err != nil {
		return nil, err
	}
	return s, nil
}

// Save writes the scene as TOML.
func (s *Scene) Save(path string) error {
	data, err := toml.Marshal(s)
	if err != nil {
		return fmt.Errorf("scene: encode: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("scene: write %s: %w", path, err)
	}
	return nil
}

func (s *Scene) Validate() error {
	if !finite(s.T) {
		return fmt.Errorf("%w: t must be finite", ErrInvalidScene)
	}
	if s.Playback.Duration <= 0 || gomath.IsInf(s.Playback.Duration, 0) {
		return fmt.Errorf("%w: playback duration must be positive, got %v", ErrInvalidScene, s.Playback.Duration)
	}
	if s.Playback.FrameRate <= 0 {
		return fmt.Errorf("%w: playback frame_rate must be positive, got %d", ErrInvalidScene, s.Playback.FrameRate)
	}
	if s.Playback.History < 0 {
		return fmt.Errorf("%w: playback history must not be negative, got %d", ErrInvalidScene, s.Playback.History)
	}
	switch s.Playback.Mode {
	case PlaybackOnce, PlaybackLoop, PlaybackPingPong:
	default:
		return fmt.Errorf("%w: unknown playback mode %q", ErrInvalidScene, s.Playback.Mode)
	}
	if err := s.A.validate(); err != nil {
		return fmt.Errorf("a: %w", err)
	}
	if err := s.B.validate(); err != nil {
		return fmt.Errorf("b: %w", err)
	}
	return nil
}

// Matrices builds both endpoint matrices.
func (s *Scene) Matrices() (math.Mat4, math.Mat4, error) {
	a, err := s.A.Mat4()
	if err != nil {
		return math.Mat4{}, math.Mat4{}, fmt.Errorf("a: %w", err)
	}
	b, err := s.B.Mat4()
	if err != nil {
		return math.Mat4{}, math.Mat4{}, fmt.Errorf("b: %w", err)
	}
	return a, b, nil
}

func (e Endpoint) validate() error {
	if e.Matrix != nil && (e.Translation != nil || e.Rotation != nil || e.Euler != nil || e.Scale != nil) {
		return fmt.Errorf("%w: matrix cannot be combined with translation, rotation, euler or scale", ErrInvalidScene)
	}
	if e.Rotation != nil && e.Euler != nil {
		return fmt.Errorf("%w: rotation and euler are mutually exclusive", ErrInvalidScene)
	}
	if e.Matrix != nil {
		for i, v := range e.Matrix {
			if !finite(v) {
				return fmt.Errorf("%w: element %d is %v", ErrInvalidMatrix, i, v)
			}
		}
	}
	for _, part := range [][]float32{vec3Slice(e.Translation), vec3Slice(e.Euler), vec3Slice(e.Scale), vec4Slice(e.Rotation)} {
		for _, v := range part {
			if !finite(v) {
				return fmt.Errorf("%w: non-finite component %v", ErrInvalidScene, v)
			}
		}
	}
	return nil
}

// Mat4 builds the endpoint matrix. Omitted parts default to no translation,
// no rotation and unit scale.
func (e Endpoint) Mat4() (math.Mat4, error) {
	if err := e.validate(); err != nil {
		return math.Mat4{}, err
	}
	if e.Matrix != nil {
		return math.NewMat4FromF32(*e.Matrix), nil
	}

	translation := math.NewVec3Zero()
	if e.Translation != nil {
		translation = math.NewVec3FromF32(*e.Translation)
	}
	rotation := math.NewQuatIdentity()
	switch {
	case e.Rotation != nil:
		rotation = math.NewQuatFromF32(*e.Rotation)
	case e.Euler != nil:
		rotation = math.NewQuatFromEuler(e.Euler[0], e.Euler[1], e.Euler[2])
	}
	scale := math.NewVec3One()
	if e.Scale != nil {
		scale = math.NewVec3FromF32(*e.Scale)
	}
	return math.TransformFromPositionRotationScale(translation, rotation, scale).GetLocal(), nil
}

// EndpointFromMat4 stores a matrix in its row-major form.
func EndpointFromMat4(mt math.Mat4) Endpoint {
	m := mt.ToF32()
	return Endpoint{Matrix: &m}
}

func finite(v float32) bool {
	return !gomath.IsNaN(float64(v)) && !gomath.IsInf(float64(v), 0)
}

func vec3Slice(v *f32.Vec3) []float32 {
	if v == nil {
		return nil
	}
	return v[:]
}

func vec4Slice(v *f32.Vec4) []float32 {
	if v == nil {
		return nil
	}
	return v[:]
}
