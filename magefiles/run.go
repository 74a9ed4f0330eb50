//go:build mage

package main

import (
	"fmt"

	"github.com/magefile/mage/mg"
)

type Run mg.Namespace

// Writes the sample scene if needed and plays it for a few seconds.
func (Run) Demo() error {
	if _, err := executeCmd("go", withArgs("run", ".", "init", "-force", "scene.toml")); err != nil {
		return err
	}
	fmt.Println("Run demo...")
	if _, err := executeCmd("go", withArgs("run", ".", "play", "-scene", "scene.toml", "-frames", "120"), withStream()); err != nil {
		return err
	}
	return nil
}

// Plays scene.toml and reloads it on every save.
func (Run) Watch() error {
	if _, err := executeCmd("go", withArgs("run", ".", "-log-level", "debug", "play", "-scene", "scene.toml", "-watch"), withStream()); err != nil {
		return err
	}
	return nil
}
