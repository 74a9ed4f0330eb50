package engine

import (
	"github.com/spaghettifunk/affine/engine/core"
)

type ApplicationConfig struct {
	// The application name, used as the log prefix.
	Name     string
	LogLevel core.LogLevel
	// Scene file to play. The built-in sample scene is used when empty.
	ScenePath string
	// Reload the scene whenever the file changes.
	Watch bool
	// Stop after this many frames, 0 runs until cancelled.
	MaxFrames uint64
}
