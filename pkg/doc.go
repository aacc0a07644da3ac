// Package pkg provides the core libraries of the tilekit layout engine.
//
// # Overview
//
// Tilekit turns window lifecycle events into window-to-rectangle assignments.
// The pkg directory is organized into small, composable packages:
//
//  1. [geometry] - Pixel-space primitives (rectangles, exact integer distribution)
//  2. [layout] - Layout algorithms, gap post-processing, and the algorithm registry
//  3. [config] - The flat TOML configuration document
//  4. [engine] - Per-screen tiling state and the event-driven orchestrator
//  5. [errors] - Structured error codes shared across engine, CLI, and API
//  6. [observability] - Optional instrumentation hooks
//
// # Architecture
//
// The typical data flow through tilekit:
//
//	Host events (window opened/closed/focused, screen geometry)
//	         ↓
//	engine.Engine (ordered per-screen state, debounced settings retile)
//	         ↓
//	layout.Algorithm.CalculateZones + layout.ApplyGaps
//	         ↓
//	Host callbacks (WindowTiled, FocusWindowRequested, ...)
//
// The engine never places windows itself; it computes geometry and emits it
// through the Host interface, keeping the compositor boundary explicit.
package pkg
