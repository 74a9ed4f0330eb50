package engine

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/charmbracelet/log"

	"github.com/spaghettifunk/affine/engine/animation"
	"github.com/spaghettifunk/affine/engine/core"
	"github.com/spaghettifunk/affine/engine/math"
	"github.com/spaghettifunk/affine/engine/scene"
)

type Stage uint8

const (
	// Engine is in an uninitialized state
	EngineStageUninitialized Stage = iota
	// Engine is currently initializing
	EngineStageInitializing
	// Engine initialization is complete
	EngineStageInitialized
	// Engine is currently running
	EngineStageRunning
	// Engine is in the process of shutting down
	EngineStageShuttingDown
)

func (s Stage) String() string {
	switch s {
	case EngineStageUninitialized:
		return "uninitialized"
	case EngineStageInitializing:
		return "initializing"
	case EngineStageInitialized:
		return "initialized"
	case EngineStageRunning:
		return "running"
	case EngineStageShuttingDown:
		return "shutting down"
	default:
		return fmt.Sprintf("stage(%d)", uint8(s))
	}
}

// Engine plays a scene: it advances the interpolation at the scene frame
// rate and hands every frame to the hooks.
type Engine struct {
	currentStage Stage
	config       *ApplicationConfig
	hooks        Hooks

	scene   *scene.Scene
	player  *animation.Player
	watcher *scene.Watcher
	log     *log.Logger

	clock    *core.Clock
	metrics  *core.Metrics
	lastTime float64
	frames   uint64
}

func New(config *ApplicationConfig, hooks Hooks) (*Engine, error) {
	if config == nil {
		return nil, errors.New("engine: nil application config")
	}
	return &Engine{
		currentStage: EngineStageUninitialized,
		config:       config,
		hooks:        hooks,
		clock:        core.NewClock(),
		metrics:      core.NewMetrics(),
		lastTime:     0,
	}, nil
}

func (e *Engine) Initialize() error {
	e.currentStage = EngineStageInitializing
	core.LogSetLevel(e.config.LogLevel)

	s := scene.Default()
	if e.config.ScenePath != "" {
		loaded, err := scene.Load(e.config.ScenePath)
		if err != nil {
			return err
		}
		s = loaded
	}

	player, err := animation.NewPlayerFromScene(s)
	if err != nil {
		return err
	}
	e.scene = s
	e.player = player
	keyvals := []interface{}{"run", core.ShortRunID(player.RunID())}
	if e.config.Name != "" {
		keyvals = append([]interface{}{"app", e.config.Name}, keyvals...)
	}
	e.log = core.LogWith(keyvals...)
	e.log.Infof("scene %q loaded: %s playback over %.2fs at %d fps", s.Name, s.Playback.Mode, s.Playback.Duration, s.Playback.FrameRate)
	e.inspect(s)

	if e.config.Watch && e.config.ScenePath != "" {
		w, err := scene.NewWatcher(e.config.ScenePath)
		if err != nil {
			return err
		}
		e.watcher = w
		e.log.Infof("watching %s", w.Path())
	}

	if e.hooks.FnInitialize != nil {
		if err := e.hooks.FnInitialize(s); err != nil {
			return err
		}
	}

	e.currentStage = EngineStageInitialized
	return nil
}

// Run plays until the context is cancelled, MaxFrames frames were produced,
// a one-shot playback finished, or a hook failed.
func (e *Engine) Run(ctx context.Context) error {
	if e.currentStage != EngineStageInitialized {
		return core.ErrNotInitialized
	}
	e.currentStage = EngineStageRunning

	ticker := time.NewTicker(frameInterval(e.scene.Playback.FrameRate))
	defer ticker.Stop()

	var scenes <-chan *scene.Scene
	var watchErrors <-chan error
	if e.watcher != nil {
		scenes = e.watcher.Scenes()
		watchErrors = e.watcher.Errors()
	}

	e.clock.Start()
	e.clock.Update()
	e.lastTime = e.clock.Elapsed()

	// first frame shows A
	if done, err := e.frame(0); done || err != nil {
		return err
	}

	for {
		select {
		case <-ctx.Done():
			e.log.Info("context cancelled, stopping")
			return nil

		case <-ticker.C:
			// Update clock and get delta time.
			e.clock.Update()
			currentTime := e.clock.Elapsed()
			delta := currentTime - e.lastTime
			e.lastTime = currentTime

			if done, err := e.frame(delta); done || err != nil {
				return err
			}

		case s, ok := <-scenes:
			if !ok {
				scenes = nil
				continue
			}
			if err := e.reload(s); err != nil {
				e.log.Errorf("reload failed: %v", err)
				continue
			}
			ticker.Reset(frameInterval(s.Playback.FrameRate))

		case err, ok := <-watchErrors:
			if !ok {
				watchErrors = nil
				continue
			}
			e.log.Warnf("scene not reloaded: %v", err)
		}
	}
}

func (e *Engine) Shutdown() error {
	e.currentStage = EngineStageShuttingDown
	e.clock.Stop()

	if e.log != nil {
		fps, avg := e.metrics.Frame()
		e.log.Infof("played %d frames, %.1f fps, %.3f ms per frame", e.frames, fps, avg)
	}

	var errs []error
	if e.watcher != nil {
		if err := e.watcher.Close(); err != nil && !errors.Is(err, core.ErrWatcherClosed) {
			errs = append(errs, err)
		}
	}
	if e.hooks.FnShutdown != nil {
		if err := e.hooks.FnShutdown(); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

func (e *Engine) Stage() Stage {
	return e.currentStage
}

func (e *Engine) Scene() *scene.Scene {
	return e.scene
}

func (e *Engine) Player() *animation.Player {
	return e.player
}

func (e *Engine) Metrics() *core.Metrics {
	return e.metrics
}

// frame advances playback by delta seconds and reports whether the run is
// complete.
func (e *Engine) frame(delta float64) (bool, error) {
	frameStartTime := time.Now()

	f := e.player.Advance(delta)
	if e.hooks.FnOnFrame != nil {
		if err := e.hooks.FnOnFrame(f); err != nil {
			e.log.Errorf("frame %d failed, stopping: %v", f.Index, err)
			return true, err
		}
	}
	e.log.Debugf("frame %d t=%.4f %s", f.Index, f.T, f.Components)

	e.metrics.Update(time.Since(frameStartTime).Seconds())
	e.frames++

	if e.config.MaxFrames > 0 && e.frames >= e.config.MaxFrames {
		e.log.Infof("reached %d frames", e.frames)
		return true, nil
	}
	if e.player.Finished() {
		e.log.Info("playback finished")
		return true, nil
	}
	return false, nil
}

func (e *Engine) reload(s *scene.Scene) error {
	if err := e.player.Reload(s); err != nil {
		return err
	}
	e.scene = s
	e.log.Infof("scene %q reloaded", s.Name)
	e.inspect(s)

	if e.hooks.FnOnReload != nil {
		return e.hooks.FnOnReload(s)
	}
	return nil
}

// inspect warns about endpoints that do not survive decomposition intact.
func (e *Engine) inspect(s *scene.Scene) {
	a, b, err := s.Matrices()
	if err != nil {
		e.log.Error(err.Error())
		return
	}
	for _, endpoint := range []struct {
		name string
		mt   math.Mat4
	}{{"a", a}, {"b", b}} {
		report := math.Inspect(endpoint.mt)
		for _, issue := range report.Issues() {
			e.log.Warnf("endpoint %s: %s (det %.4f)", endpoint.name, issue, report.Determinant)
		}
	}
}

func frameInterval(frameRate int) time.Duration {
	if frameRate <= 0 {
		frameRate = scene.DefaultFrameRate
	}
	return time.Second / time.Duration(frameRate)
}
