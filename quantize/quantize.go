// Copyright (c) 2026, Seedtone Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Adapted from https://github.com/material-foundation/material-color-utilities
// Copyright 2021 Google LLC
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//      http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package quantize reduces a set of pixels to a small palette of
// representative colors. It provides the Wu statistical quantizer,
// the WSMeans weighted k-means refiner, and the Celebi composite that
// runs Wu to seed WSMeans, which is the recommended entry point.
package quantize

import (
	"errors"

	"github.com/seedtone/seedtone/cam/cie"
)

// ErrNoPixels is returned when quantization is requested for an empty
// pixel set, or one whose pixels are all filtered out as non-opaque.
var ErrNoPixels = errors.New("quantize: no opaque input pixels")

// ErrNoColors is returned when zero output colors are requested.
var ErrNoColors = errors.New("quantize: max colors must be positive")

// Result holds quantized colors in first-seen order along with the
// population of input pixels each color represents.
type Result struct {
	colors []uint32
	counts map[uint32]int
}

func newResult() *Result {
	return &Result{counts: map[uint32]int{}}
}

func (r *Result) add(argb uint32, count int) {
	if _, ok := r.counts[argb]; !ok {
		r.colors = append(r.colors, argb)
	}
	r.counts[argb] += count
}

// Len returns the number of distinct colors in the result.
func (r *Result) Len() int {
	return len(r.colors)
}

// Colors returns the palette colors in first-seen order.
func (r *Result) Colors() []uint32 {
	return r.colors
}

// Count returns the population of the given palette color,
// 0 if it is not in the result.
func (r *Result) Count(argb uint32) int {
	return r.counts[argb]
}

// ColorToCount returns a copy of the color to population mapping,
// in the shape the score package consumes.
func (r *Result) ColorToCount() map[uint32]int {
	m := make(map[uint32]int, len(r.counts))
	for c, n := range r.counts {
		m[c] = n
	}
	return m
}

// Quantize reduces the pixels to at most maxColors representative
// colors using the Celebi composite: Wu cuts the color space into
// boxes, and WSMeans refines the box means as weighted k-means
// centroids. This is the recommended quantizer for image theming.
func Quantize(pixels []uint32, maxColors int) (*Result, error) {
	return NewCelebi().Quantize(pixels, maxColors)
}

// Pixels tallies the population of each distinct fully opaque pixel
// without reducing the palette. It is the degenerate quantizer the
// others build on, useful when the input is already a small palette.
func Pixels(pixels []uint32) (*Result, error) {
	r := countOpaque(pixels)
	if r.Len() == 0 {
		return nil, ErrNoPixels
	}
	return r, nil
}

// countOpaque tallies the population of each distinct fully opaque
// pixel, preserving first-seen order. Translucent and transparent
// pixels carry no usable color and are dropped.
func countOpaque(pixels []uint32) *Result {
	r := newResult()
	for _, p := range pixels {
		if cie.Alpha(p) < 255 {
			continue
		}
		r.add(p, 1)
	}
	return r
}
