// Copyright 2023 The strtree (Go) Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package rtree

import (
	"math"
	"strconv"
)

// A Box is an axis-aligned bounding rectangle. It is the bounds type
// of the RTree.
type Box struct {
	XMin float64
	YMin float64
	XMax float64
	YMax float64
}

// EmptyBox is the empty rectangle: the bounds of an RTree holding no
// items, and the identity element of Union. Its minimums are +Inf and
// its maximums -Inf, so it intersects and contains nothing.
var EmptyBox = Box{
	XMin: math.Inf(1),
	YMin: math.Inf(1),
	XMax: math.Inf(-1),
	YMax: math.Inf(-1),
}

// Width returns the horizontal extent of the box.
func (b Box) Width() float64 {
	return b.XMax - b.XMin
}

// Height returns the vertical extent of the box.
func (b Box) Height() float64 {
	return b.YMax - b.YMin
}

// CenterX returns the X-coordinate of the box's center point.
func (b Box) CenterX() float64 {
	return (b.XMin + b.XMax) / 2
}

// CenterY returns the Y-coordinate of the box's center point.
func (b Box) CenterY() float64 {
	return (b.YMin + b.YMax) / 2
}

// Union returns the smallest box covering both b and o.
func (b Box) Union(o Box) Box {
	return Box{
		XMin: math.Min(b.XMin, o.XMin),
		YMin: math.Min(b.YMin, o.YMin),
		XMax: math.Max(b.XMax, o.XMax),
		YMax: math.Max(b.YMax, o.YMax),
	}
}

// Intersects reports whether b and o share at least one point. Boxes
// that merely touch along an edge or at a corner intersect.
func (b Box) Intersects(o Box) bool {
	return b.XMin <= o.XMax && b.XMax >= o.XMin &&
		b.YMin <= o.YMax && b.YMax >= o.YMin
}

// Contains reports whether o lies entirely within b.
func (b Box) Contains(o Box) bool {
	return b.XMin <= o.XMin && b.XMax >= o.XMax &&
		b.YMin <= o.YMin && b.YMax >= o.YMax
}

// String returns the box in the compact form "[XMin,YMin,XMax,YMax]".
func (b Box) String() string {
	s := make([]byte, 0, 64)
	s = append(s, '[')
	s = strconv.AppendFloat(s, b.XMin, 'g', 8, 64)
	s = append(s, ',')
	s = strconv.AppendFloat(s, b.YMin, 'g', 8, 64)
	s = append(s, ',')
	s = strconv.AppendFloat(s, b.XMax, 'g', 8, 64)
	s = append(s, ',')
	s = strconv.AppendFloat(s, b.YMax, 'g', 8, 64)
	s = append(s, ']')
	return string(s)
}
