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

package hct

import (
	"math"

	"github.com/seedtone/seedtone/cam/cam16"
	"github.com/seedtone/seedtone/cam/cie"
)

// SolveToARGB returns the sRGB color that comes closest to realizing
// the given HCT coordinates. Hue is in degrees and is wrapped into
// [0, 360); tone is L* and is clamped to [0, 100]; chroma is reduced
// as needed to stay inside the sRGB gamut at the requested tone.
//
// The search bisects on chroma in the outer loop, and for each
// candidate chroma bisects on CAM16 lightness J until the candidate's
// L* lands within 0.2 of the requested tone. Among candidates whose
// sRGB clipping moved them, the one with the smallest CAM16-UCS
// delta to its own clipped color wins.
func SolveToARGB(hue, chroma, tone float64) uint32 {
	hue = cie.SanitizeDegrees(hue)
	tone = cie.Clamp(0, 100, tone)
	if chroma < 1 || tone <= 0 || tone >= 100 {
		return cie.LToARGB(tone)
	}

	low, high := 0.0, chroma
	mid := chroma
	answer := cie.LToARGB(tone)
	isFirst := true
	for high-low >= 0.4 {
		possible, ok := findByJ(hue, mid, tone)
		if ok {
			if isFirst {
				return possible
			}
			answer = possible
			low = mid
		} else {
			high = mid
		}
		isFirst = false
		mid = low + (high-low)/2
	}
	return answer
}

// findByJ searches CAM16 lightness for the sRGB color whose L* is
// within 0.2 of tone at the given hue and chroma. Among the candidates
// that satisfy the tone tolerance, the one whose sRGB clipping
// displaced it the least in CAM16-UCS wins. The returned bool reports
// whether any candidate satisfied the tolerance.
func findByJ(hue, chroma, tone float64) (uint32, bool) {
	low, high := 0.0, 100.0
	bestdE := math.Inf(1)
	best := uint32(0)
	found := false

	for high-low > 0.01 {
		mid := low + (high-low)/2
		clipped := cam16.FromJCH(mid, chroma, hue).ARGB()
		clippedL := cie.ARGBToL(clipped)
		if math.Abs(tone-clippedL) < 0.2 {
			// The re-analyzed clipped color is compared against the
			// ideal color at the clipped color's own J and C, so the
			// delta isolates the hue shift introduced by clipping.
			clippedCAM := cam16.FromARGB(clipped)
			ideal := cam16.FromJCH(clippedCAM.Lightness, clippedCAM.Chroma, hue)
			dE := clippedCAM.Distance(ideal)
			if dE < bestdE {
				bestdE = dE
				best = clipped
				found = true
			}
			if bestdE < 1e-9 {
				break
			}
		}
		if clippedL < tone {
			low = mid
		} else {
			high = mid
		}
	}
	return best, found
}
