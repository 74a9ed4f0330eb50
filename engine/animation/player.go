package animation

import (
	gomath "math"

	"github.com/spaghettifunk/affine/engine/containers"
	"github.com/spaghettifunk/affine/engine/core"
	"github.com/spaghettifunk/affine/engine/math"
	"github.com/spaghettifunk/affine/engine/scene"
)

// Frame is one evaluated step of the playback.
type Frame struct {
	Index      uint64
	T          float32
	Matrix     math.Mat4
	Components math.TransformComponents
	RunID      core.RunID
}

// Player drives the interpolation parameter over time and evaluates the
// interpolated matrix for each step.
type Player struct {
	start    math.TransformComponents
	end      math.TransformComponents
	mask     math.InterpolationMask
	duration float64
	mode     scene.PlaybackMode

	elapsed float64
	index   uint64
	runID   core.RunID
	history *containers.RingQueue[Frame]
}

func NewPlayer(a, b math.Mat4, mask math.InterpolationMask, playback scene.Playback) *Player {
	p := &Player{
		mask:     mask,
		duration: playback.Duration,
		mode:     playback.Mode,
		runID:    core.NewRunID(),
		history:  containers.NewRingQueue[Frame](playback.History),
	}
	p.SetEndpoints(a, b)
	return p
}

// NewPlayerFromScene builds a player for the scene endpoints, mask and
// playback settings.
func NewPlayerFromScene(s *scene.Scene) (*Player, error) {
	a, b, err := s.Matrices()
	if err != nil {
		return nil, err
	}
	return NewPlayer(a, b, s.Mask, s.Playback), nil
}

// SetEndpoints replaces A and B. Playback time is kept.
func (p *Player) SetEndpoints(a, b math.Mat4) {
	p.start = math.Decompose(a)
	p.end = math.Decompose(b)
}

func (p *Player) SetMask(mask math.InterpolationMask) {
	p.mask = mask
}

// Reload applies an edited scene without restarting the run. The history
// size only takes effect for new players.
func (p *Player) Reload(s *scene.Scene) error {
	a, b, err := s.Matrices()
	if err != nil {
		return err
	}
	p.SetEndpoints(a, b)
	p.mask = s.Mask
	p.duration = s.Playback.Duration
	p.mode = s.Playback.Mode
	return nil
}

// Advance moves playback by delta seconds and evaluates the new position.
// Negative deltas are ignored.
func (p *Player) Advance(delta float64) Frame {
	if delta > 0 {
		p.elapsed += delta
	}
	return p.evaluate(p.T())
}

// Seek jumps to parameter t, clamped to [0, 1], and evaluates it.
func (p *Player) Seek(t float32) Frame {
	t = math.Clamp(t, 0, 1)
	p.elapsed = float64(t) * p.duration
	return p.evaluate(t)
}

// T is the interpolation parameter for the current playback time.
func (p *Player) T() float32 {
	phase := p.elapsed / p.duration
	switch p.mode {
	case scene.PlaybackLoop:
		return float32(phase - gomath.Floor(phase))
	case scene.PlaybackPingPong:
		leg := gomath.Mod(phase, 2)
		if leg > 1 {
			leg = 2 - leg
		}
		return float32(leg)
	default:
		return math.Clamp(float32(phase), 0, 1)
	}
}

// Finished reports whether a one-shot playback reached B. Looping modes
// never finish.
func (p *Player) Finished() bool {
	return p.mode == scene.PlaybackOnce && p.elapsed >= p.duration
}

func (p *Player) Elapsed() float64 {
	return p.elapsed
}

func (p *Player) RunID() core.RunID {
	return p.runID
}

// History returns the most recent frames, oldest first.
func (p *Player) History() []Frame {
	return p.history.Items()
}

func (p *Player) evaluate(t float32) Frame {
	c := math.InterpolateComponents(p.start, p.end, t, p.mask)
	f := Frame{
		Index:      p.index,
		T:          t,
		Matrix:     c.Mat4(),
		Components: c,
		RunID:      p.runID,
	}
	p.index++
	p.history.Push(f)
	return f
}
