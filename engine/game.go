package engine

import (
	"github.com/spaghettifunk/affine/engine/animation"
	"github.com/spaghettifunk/affine/engine/scene"
)

// Hooks are the callbacks the engine invokes while running. Any of them may
// be nil.
type Hooks struct {
	FnInitialize Initialize
	FnOnFrame    OnFrame
	FnOnReload   OnReload
	FnShutdown   Shutdown
}

type Initialize func(s *scene.Scene) error
type OnFrame func(frame animation.Frame) error
type OnReload func(s *scene.Scene) error
type Shutdown func() error
