// Package layout implements the tiling algorithms and their registry.
//
// An Algorithm is a stateless geometry function: given a window count, a
// screen rectangle, and layout parameters, it produces one zone rectangle per
// window slot. Algorithms never see window ids or any other engine state,
// which keeps them trivially previewable and safe to call from multiple
// readers.
//
// # Architecture
//
// The package has three layers:
//
//  1. Algorithm implementations (master-stack, columns, rows, bsp, monocle),
//     all built on the exact integer distribution helpers in pkg/geometry.
//  2. Gap post-processing (ApplyGaps), which is algorithm-independent and
//     classifies zone edges as screen edges or interior edges.
//  3. The Registry, which owns algorithm instances, preserves registration
//     order for UI enumeration, and provides normalized previews.
//
// # Usage
//
// Build a registry from the built-in declaration table:
//
//	reg := layout.NewRegistry(logger, layout.Builtins()...)
//	alg := reg.Default()
//	zones := alg.CalculateZones(3, screen, layout.Params{MasterCount: 1, SplitRatio: 0.6})
//	zones = layout.ApplyGaps(zones, screen, 8, 8)
package layout
