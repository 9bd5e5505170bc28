// Package contourgrid extracts boundary polylines and fillable
// polygons-with-holes from rectangular grids of discrete category values.
//
// 🚀 What is contourgrid?
//
//	A small, pure-Go computational-geometry library that takes a 2D mesh of
//	sampled (x, y) coordinates with a category value per sample — typically
//	the output of a classifier or a discretized function evaluated over a
//	meshgrid — and produces:
//	  • Boundary polylines separating regions of different value
//	  • Closed, counter-clockwise region polygons, hole-punched so that
//	    nested regions never overlap when filled
//
// ✨ Why choose contourgrid?
//
//   - Renderer-agnostic – output is plain vertex slices; bring any plotter
//   - Deterministic – the same mesh always yields the same polygons
//   - Strict validation – malformed meshes are rejected up front
//   - Pure Go – no cgo, no hidden deps
//
// Everything is organized under two subpackages:
//
//	mesh/    — validated sampling grids, discretization of continuous values
//	contour/ — boundary extraction, path stitching, region assembly
//
// Quick ASCII example:
//
//	A A B        the single A/B boundary is traced as one polyline,
//	A B B   ⇒    and solid-fill mode yields two polygons whose areas
//	A B B        sum exactly to the mesh extent.
//
// Dive into the package docs and the example_test.go files for runnable
// walkthroughs, starting with contour.Boundaries and contour.Regions.
//
//	go get github.com/katalvlaran/contourgrid
package contourgrid
