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

package quantize

import (
	"github.com/seedtone/seedtone/cam/cie"
)

// A histogram of all the input colors is constructed. It has the
// shape of a cube. The cube would be too large if it contained all 16
// million colors: historical best practice is to use 5 bits of the 8
// in each channel, reducing the histogram to a volume of ~32,000.
const (
	indexBits  = 5
	maxIndex   = 32
	sideLength = 33
	totalSize  = sideLength * sideLength * sideLength
)

// Wu is Xiaolin Wu's color quantizer, which cuts an RGB histogram
// into boxes along the planes that maximize the between-halves
// variance, then emits each box's mean color. It produces excellent
// seed palettes but no per-color populations beyond box weights.
type Wu struct {
	weights  []int64
	momentsR []int64
	momentsG []int64
	momentsB []int64
	moments  []float64
	cubes    []box
}

// box is one axis-aligned region of the histogram. Bounds are
// exclusive of the low index and inclusive of the high index, which
// matches the 1-offset prefix-summed moment tables.
type box struct {
	r0, r1 int
	g0, g1 int
	b0, b1 int
	vol    int
}

type direction int

const (
	directionRed direction = iota
	directionGreen
	directionBlue
)

// NewWu returns a ready Wu quantizer. A Wu value may be reused for
// multiple quantizations; each call resets its histogram.
func NewWu() *Wu {
	return &Wu{
		weights:  make([]int64, totalSize),
		momentsR: make([]int64, totalSize),
		momentsG: make([]int64, totalSize),
		momentsB: make([]int64, totalSize),
		moments:  make([]float64, totalSize),
	}
}

// Quantize reduces the pixels to at most maxColors box-mean colors.
// The count attached to each color is the total pixel weight of its
// box. Non-opaque pixels are ignored; if none remain, ErrNoPixels is
// returned.
func (w *Wu) Quantize(pixels []uint32, maxColors int) (*Result, error) {
	if maxColors <= 0 {
		return nil, ErrNoColors
	}
	counted := countOpaque(pixels)
	if counted.Len() == 0 {
		return nil, ErrNoPixels
	}
	w.constructHistogram(counted)
	w.computeMoments()
	n := w.createBoxes(maxColors)
	return w.createResult(n), nil
}

func index(r, g, b int) int {
	return (r << (indexBits * 2)) + (r << (indexBits + 1)) + (g << indexBits) + r + g + b
}

func (w *Wu) constructHistogram(counted *Result) {
	for i := range w.weights {
		w.weights[i] = 0
		w.momentsR[i] = 0
		w.momentsG[i] = 0
		w.momentsB[i] = 0
		w.moments[i] = 0
	}
	for _, pixel := range counted.Colors() {
		count := int64(counted.Count(pixel))
		red := int64(cie.Red(pixel))
		green := int64(cie.Green(pixel))
		blue := int64(cie.Blue(pixel))
		bitsToRemove := 8 - indexBits
		iR := int(red>>bitsToRemove) + 1
		iG := int(green>>bitsToRemove) + 1
		iB := int(blue>>bitsToRemove) + 1
		idx := index(iR, iG, iB)
		w.weights[idx] += count
		w.momentsR[idx] += red * count
		w.momentsG[idx] += green * count
		w.momentsB[idx] += blue * count
		w.moments[idx] += float64(count * (red*red + green*green + blue*blue))
	}
}

// computeMoments converts the histogram in place into 3D prefix sums,
// so any box total is an 8-term inclusion-exclusion over corners.
func (w *Wu) computeMoments() {
	for r := 1; r < sideLength; r++ {
		var area, areaR, areaG, areaB [sideLength]int64
		var area2 [sideLength]float64
		for g := 1; g < sideLength; g++ {
			var line, lineR, lineG, lineB int64
			var line2 float64
			for b := 1; b < sideLength; b++ {
				idx := index(r, g, b)
				line += w.weights[idx]
				lineR += w.momentsR[idx]
				lineG += w.momentsG[idx]
				lineB += w.momentsB[idx]
				line2 += w.moments[idx]

				area[b] += line
				areaR[b] += lineR
				areaG[b] += lineG
				areaB[b] += lineB
				area2[b] += line2

				prev := index(r-1, g, b)
				w.weights[idx] = w.weights[prev] + area[b]
				w.momentsR[idx] = w.momentsR[prev] + areaR[b]
				w.momentsG[idx] = w.momentsG[prev] + areaG[b]
				w.momentsB[idx] = w.momentsB[prev] + areaB[b]
				w.moments[idx] = w.moments[prev] + area2[b]
			}
		}
	}
}

// createBoxes repeatedly cuts the highest-variance box until
// maxColors boxes exist or no box has variance left to reduce,
// and returns the number of boxes produced.
func (w *Wu) createBoxes(maxColors int) int {
	w.cubes = make([]box, maxColors)
	w.cubes[0] = box{r1: maxIndex, g1: maxIndex, b1: maxIndex}

	generated := maxColors
	volumeVariance := make([]float64, maxColors)
	next := 0
	for i := 1; i < maxColors; i++ {
		if one, two, ok := w.cut(w.cubes[next]); ok {
			w.cubes[next] = one
			w.cubes[i] = two
			volumeVariance[next] = 0
			if one.vol > 1 {
				volumeVariance[next] = w.variance(one)
			}
			volumeVariance[i] = 0
			if two.vol > 1 {
				volumeVariance[i] = w.variance(two)
			}
		} else {
			volumeVariance[next] = 0
			i--
		}

		next = 0
		temp := volumeVariance[0]
		for j := 1; j <= i; j++ {
			if volumeVariance[j] > temp {
				temp = volumeVariance[j]
				next = j
			}
		}
		if temp <= 0 {
			generated = i + 1
			break
		}
	}
	return generated
}

func (w *Wu) createResult(colorCount int) *Result {
	result := newResult()
	for i := 0; i < colorCount; i++ {
		cube := w.cubes[i]
		weight := w.volume(cube, w.weights)
		if weight <= 0 {
			continue
		}
		r := uint32(w.volume(cube, w.momentsR) / weight)
		g := uint32(w.volume(cube, w.momentsG) / weight)
		b := uint32(w.volume(cube, w.momentsB) / weight)
		result.add(cie.ARGB(r, g, b), int(weight))
	}
	return result
}

// cut splits the box along whichever axis maximizes the
// between-halves variance, returning the two halves. It reports false
// when the box cannot be split without producing an empty half.
func (w *Wu) cut(one box) (box, box, bool) {
	wholeR := w.volume(one, w.momentsR)
	wholeG := w.volume(one, w.momentsG)
	wholeB := w.volume(one, w.momentsB)
	wholeW := w.volume(one, w.weights)

	maxR, cutR := w.maximize(one, directionRed, one.r0+1, one.r1, wholeR, wholeG, wholeB, wholeW)
	maxG, cutG := w.maximize(one, directionGreen, one.g0+1, one.g1, wholeR, wholeG, wholeB, wholeW)
	maxB, cutB := w.maximize(one, directionBlue, one.b0+1, one.b1, wholeR, wholeG, wholeB, wholeW)

	// Ties prefer red, then green, then blue.
	dir := directionRed
	if maxR >= maxG && maxR >= maxB {
		if cutR < 0 {
			return box{}, box{}, false
		}
	} else if maxG >= maxR && maxG >= maxB {
		dir = directionGreen
	} else {
		dir = directionBlue
	}

	two := box{r1: one.r1, g1: one.g1, b1: one.b1}
	switch dir {
	case directionRed:
		one.r1 = cutR
		two.r0 = one.r1
		two.g0 = one.g0
		two.b0 = one.b0
	case directionGreen:
		one.g1 = cutG
		two.r0 = one.r0
		two.g0 = one.g1
		two.b0 = one.b0
	case directionBlue:
		one.b1 = cutB
		two.r0 = one.r0
		two.g0 = one.g0
		two.b0 = one.b1
	}
	one.vol = (one.r1 - one.r0) * (one.g1 - one.g0) * (one.b1 - one.b0)
	two.vol = (two.r1 - two.r0) * (two.g1 - two.g0) * (two.b1 - two.b0)
	return one, two, true
}

// maximize scans every split plane on the given axis and returns the
// best between-halves weighted sum of squares and its location, -1 if
// every plane leaves an empty half.
func (w *Wu) maximize(cube box, dir direction, first, last int, wholeR, wholeG, wholeB, wholeW int64) (float64, int) {
	bottomR := w.bottom(cube, dir, w.momentsR)
	bottomG := w.bottom(cube, dir, w.momentsG)
	bottomB := w.bottom(cube, dir, w.momentsB)
	bottomW := w.bottom(cube, dir, w.weights)

	maxScore := 0.0
	cut := -1
	for i := first; i < last; i++ {
		halfR := bottomR + w.top(cube, dir, i, w.momentsR)
		halfG := bottomG + w.top(cube, dir, i, w.momentsG)
		halfB := bottomB + w.top(cube, dir, i, w.momentsB)
		halfW := bottomW + w.top(cube, dir, i, w.weights)
		if halfW == 0 {
			continue
		}
		temp := float64(halfR*halfR+halfG*halfG+halfB*halfB) / float64(halfW)

		halfR = wholeR - halfR
		halfG = wholeG - halfG
		halfB = wholeB - halfB
		halfW = wholeW - halfW
		if halfW == 0 {
			continue
		}
		temp += float64(halfR*halfR+halfG*halfG+halfB*halfB) / float64(halfW)

		if temp > maxScore {
			maxScore = temp
			cut = i
		}
	}
	return maxScore, cut
}

func (w *Wu) volume(cube box, moment []int64) int64 {
	return moment[index(cube.r1, cube.g1, cube.b1)] -
		moment[index(cube.r1, cube.g1, cube.b0)] -
		moment[index(cube.r1, cube.g0, cube.b1)] +
		moment[index(cube.r1, cube.g0, cube.b0)] -
		moment[index(cube.r0, cube.g1, cube.b1)] +
		moment[index(cube.r0, cube.g1, cube.b0)] +
		moment[index(cube.r0, cube.g0, cube.b1)] -
		moment[index(cube.r0, cube.g0, cube.b0)]
}

// bottom is the part of the box total lying at or below the low bound
// of the split axis, negated so adding a top slice yields a half.
func (w *Wu) bottom(cube box, dir direction, moment []int64) int64 {
	switch dir {
	case directionRed:
		return -moment[index(cube.r0, cube.g1, cube.b1)] +
			moment[index(cube.r0, cube.g1, cube.b0)] +
			moment[index(cube.r0, cube.g0, cube.b1)] -
			moment[index(cube.r0, cube.g0, cube.b0)]
	case directionGreen:
		return -moment[index(cube.r1, cube.g0, cube.b1)] +
			moment[index(cube.r1, cube.g0, cube.b0)] +
			moment[index(cube.r0, cube.g0, cube.b1)] -
			moment[index(cube.r0, cube.g0, cube.b0)]
	default:
		return -moment[index(cube.r1, cube.g1, cube.b0)] +
			moment[index(cube.r1, cube.g0, cube.b0)] +
			moment[index(cube.r0, cube.g1, cube.b0)] -
			moment[index(cube.r0, cube.g0, cube.b0)]
	}
}

// top is the part of the box total lying at or below the candidate
// split position on the given axis.
func (w *Wu) top(cube box, dir direction, position int, moment []int64) int64 {
	switch dir {
	case directionRed:
		return moment[index(position, cube.g1, cube.b1)] -
			moment[index(position, cube.g1, cube.b0)] -
			moment[index(position, cube.g0, cube.b1)] +
			moment[index(position, cube.g0, cube.b0)]
	case directionGreen:
		return moment[index(cube.r1, position, cube.b1)] -
			moment[index(cube.r1, position, cube.b0)] -
			moment[index(cube.r0, position, cube.b1)] +
			moment[index(cube.r0, position, cube.b0)]
	default:
		return moment[index(cube.r1, cube.g1, position)] -
			moment[index(cube.r1, cube.g0, position)] -
			moment[index(cube.r0, cube.g1, position)] +
			moment[index(cube.r0, cube.g0, position)]
	}
}

// variance is the sum of squared deviations of the box's pixels from
// the box mean, computed from the summed moments.
func (w *Wu) variance(cube box) float64 {
	dr := w.volume(cube, w.momentsR)
	dg := w.volume(cube, w.momentsG)
	db := w.volume(cube, w.momentsB)
	xx := w.moments[index(cube.r1, cube.g1, cube.b1)] -
		w.moments[index(cube.r1, cube.g1, cube.b0)] -
		w.moments[index(cube.r1, cube.g0, cube.b1)] +
		w.moments[index(cube.r1, cube.g0, cube.b0)] -
		w.moments[index(cube.r0, cube.g1, cube.b1)] +
		w.moments[index(cube.r0, cube.g1, cube.b0)] +
		w.moments[index(cube.r0, cube.g0, cube.b1)] -
		w.moments[index(cube.r0, cube.g0, cube.b0)]

	hypotenuse := float64(dr*dr + dg*dg + db*db)
	volume := float64(w.volume(cube, w.weights))
	return xx - hypotenuse/volume
}
