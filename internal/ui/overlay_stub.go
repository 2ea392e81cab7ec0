//go:build !ebiten

package ui

import "flakemaker/internal/core"

// Overlay is a no-op placeholder for headless builds.
type Overlay struct{}

// NewOverlay returns nil in the headless build.
func NewOverlay(core.Sim) *Overlay { return nil }

// Toggle is a no-op in the headless build.
func (o *Overlay) Toggle() {}
