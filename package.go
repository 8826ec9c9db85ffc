// Copyright 2023 The strtree (Go) Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

// Package strtree provides a generic Sort-Tile-Recursive (STR) packed
// tree: a static spatial index bulk-loaded in one pass from a complete
// set of bounded items, and queried by bounding-region intersection.
//
// The tree is generic over its bounds type and its item type, so the
// same engine underlies both rectangle indexes and interval indexes.
// See the rtree and sirtree sub-packages for ready-made concrete
// indexes; use this package directly only to build a custom index over
// your own bounds algebra.
//
// A Tree has two phases. Before Build, items may be inserted but not
// queried. Build packs the inserted items bottom-up into a balanced
// tree and freezes it: no further insertion is possible, and queries,
// removals and size accessors become available. Query, Remove, Count
// and Depth trigger Build implicitly if it has not run yet; Bounds is
// the one accessor that requires an explicit Build first.
//
// Trees are not safe for concurrent use. A single goroutine must
// sequence the insert phase and the Build call; afterward concurrent
// Query calls are safe only if no Remove runs concurrently.
package strtree
