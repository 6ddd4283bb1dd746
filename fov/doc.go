// Package fov computes field of view on a tile grid by recursive shadow casting.
//
// The engine owns no map. A request walks the eight octants around a source,
// asking the caller's Callbacks whether each tile blocks light and telling it
// which tiles are lit. Circle lights every octant; Beam lights a cone pointing
// in one of eight directions.
//
// Settings selects the outer shape (precalculated circle, circle, octagon,
// square), whether opaque tiles are lit, and a corner peek option that is
// accepted but not implemented. Settings also owns the circle height cache,
// so one Settings value can be shared by many requests and goroutines.
//
// The source tile is never passed to the callbacks; callers that want it
// lit do so themselves.
package fov
