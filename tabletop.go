// Copyright 2024 Gustavo C. Viegas. All rights reserved.

// Package tabletop composes and renders a fixed 3D still
// life over an OpenGL-style GPU abstraction.
//
// The driver package defines the GPU boundary and driver/gl
// implements it; engine and its subpackages provide the
// texture registry, material palette, light sources, mesh
// library and the draw-state composer; scene assembles the
// still life itself. cmd/tabletop is a windowed harness.
package tabletop

import (
	"log/slog"

	"gviegas/tabletop/internal/logx"
)

// SetLogger replaces the logger used throughout the module.
// The default discards everything. Pass nil to restore it.
// Safe to call concurrently with logging.
func SetLogger(l *slog.Logger) { logx.SetLogger(l) }
