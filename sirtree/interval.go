// Copyright 2023 The strtree (Go) Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package sirtree

import (
	"math"
	"strconv"
)

// An Interval is a closed one-dimensional range. It is the bounds type
// of the SIRTree.
type Interval struct {
	Min float64
	Max float64
}

// EmptyInterval is the empty range: the bounds of a SIRTree holding no
// items, and the identity element of Union. Its Min is +Inf and its
// Max -Inf, so it intersects and contains nothing.
var EmptyInterval = Interval{
	Min: math.Inf(1),
	Max: math.Inf(-1),
}

// Length returns the extent of the interval.
func (v Interval) Length() float64 {
	return v.Max - v.Min
}

// Center returns the interval's midpoint.
func (v Interval) Center() float64 {
	return (v.Min + v.Max) / 2
}

// Union returns the smallest interval covering both v and o.
func (v Interval) Union(o Interval) Interval {
	return Interval{
		Min: math.Min(v.Min, o.Min),
		Max: math.Max(v.Max, o.Max),
	}
}

// Intersects reports whether v and o share at least one point.
// Intervals that merely touch at an endpoint intersect.
func (v Interval) Intersects(o Interval) bool {
	return v.Min <= o.Max && v.Max >= o.Min
}

// Contains reports whether o lies entirely within v.
func (v Interval) Contains(o Interval) bool {
	return v.Min <= o.Min && v.Max >= o.Max
}

// String returns the interval in the compact form "[Min,Max]".
func (v Interval) String() string {
	s := make([]byte, 0, 32)
	s = append(s, '[')
	s = strconv.AppendFloat(s, v.Min, 'g', 8, 64)
	s = append(s, ',')
	s = strconv.AppendFloat(s, v.Max, 'g', 8, 64)
	s = append(s, ']')
	return string(s)
}
