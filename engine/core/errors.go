package core

import (
	"errors"
)

var (
	ErrNotInitialized = errors.New("not initialized")
	ErrWatcherClosed  = errors.New("watcher already closed")
)
