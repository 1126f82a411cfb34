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

// Package score ranks colors by their suitability as a UI theme seed.
// Given a large set of colors from image quantization, it removes
// colors that are unsuitable (dark, unchromatic, or barely present)
// and ranks the rest so the most suitable comes first. This lets
// quantization run with a high cluster count, keeping colors from
// being muddied, while curating the result down to a few good choices.
package score

import (
	"sort"

	"github.com/seedtone/seedtone/cam/cie"
	"github.com/seedtone/seedtone/cam/hct"
)

const (
	targetChroma            = 48.0
	weightProportion        = 0.7
	weightChromaAbove       = 0.3
	weightChromaBelow       = 0.1
	cutoffChroma            = 5.0
	cutoffTone              = 10.0
	cutoffExcitedProportion = 0.01
)

// GoogleBlue is the fallback returned when no input color survives
// filtering.
const GoogleBlue uint32 = 0xff4285f4

// Options configure [RankedWith].
type Options struct {

	// Desired is the maximum number of colors to return.
	Desired int

	// Fallback is the color returned when no input color is suitable.
	Fallback uint32

	// Filter removes unsuitable colors when set. Disabling it ranks
	// every input color.
	Filter bool
}

// DefaultOptions returns the standard ranking options: 4 colors,
// with filtering, falling back to Google Blue. Four is the number of
// colors shown in Android 12's wallpaper picker.
func DefaultOptions() Options {
	return Options{Desired: 4, Fallback: GoogleBlue, Filter: true}
}

// Ranked ranks the given colors by suitability for a UI theme with
// the default options. colorsToPopulation maps each color to how
// often it appears, usually from a source image. The first returned
// color is the most suitable; there is always at least one.
func Ranked(colorsToPopulation map[uint32]int) []uint32 {
	return RankedWith(colorsToPopulation, DefaultOptions())
}

type scoredColor struct {
	argb  uint32
	hct   hct.HCT
	score float64
}

// RankedWith is [Ranked] with explicit options.
func RankedWith(colorsToPopulation map[uint32]int, opts Options) []uint32 {
	if opts.Desired <= 0 {
		opts.Desired = 4
	}
	if opts.Fallback == 0 {
		opts.Fallback = GoogleBlue
	}

	// Map iteration order must not leak into the ranking.
	colors := make([]uint32, 0, len(colorsToPopulation))
	populationSum := 0.0
	for argb, population := range colorsToPopulation {
		colors = append(colors, argb)
		populationSum += float64(population)
	}
	sort.Slice(colors, func(i, j int) bool { return colors[i] < colors[j] })

	// Proportion of input mass in each rounded hue degree.
	var hueProportions [360]float64
	hcts := make([]hct.HCT, len(colors))
	for i, argb := range colors {
		h := hct.FromARGB(argb)
		hcts[i] = h
		proportion := float64(colorsToPopulation[argb]) / populationSum
		hueProportions[cie.SanitizeDegreesInt(int(h.Hue+0.5))] += proportion
	}

	// A color's excited proportion is the mass within 15 degrees of
	// its hue, so a cluster of near-identical hues counts as one
	// strongly present color.
	scored := make([]scoredColor, 0, len(colors))
	for i, argb := range colors {
		h := hcts[i]
		hue := cie.SanitizeDegreesInt(int(h.Hue + 0.5))
		excitedProportion := 0.0
		for d := hue - 15; d < hue+15; d++ {
			excitedProportion += hueProportions[cie.SanitizeDegreesInt(d)]
		}

		if opts.Filter && (h.Chroma < cutoffChroma ||
			h.Tone < cutoffTone ||
			excitedProportion <= cutoffExcitedProportion) {
			continue
		}

		proportionScore := excitedProportion * 100 * weightProportion
		chromaWeight := weightChromaBelow
		if h.Chroma > targetChroma {
			chromaWeight = weightChromaAbove
		}
		score := proportionScore + (h.Chroma-targetChroma)*chromaWeight
		scored = append(scored, scoredColor{argb: argb, hct: h, score: score})
	}
	sort.SliceStable(scored, func(i, j int) bool { return scored[i].score > scored[j].score })

	// Greedily pick by descending score, relaxing the minimum hue
	// separation until enough colors fit.
	var chosen []scoredColor
	for differenceDegrees := 90; differenceDegrees >= 15; differenceDegrees-- {
		chosen = chosen[:0]
		for _, entry := range scored {
			duplicateHue := false
			for _, c := range chosen {
				if cie.DifferenceDegrees(entry.hct.Hue, c.hct.Hue) < float64(differenceDegrees) {
					duplicateHue = true
					break
				}
			}
			if !duplicateHue {
				chosen = append(chosen, entry)
			}
			if len(chosen) >= opts.Desired {
				break
			}
		}
		if len(chosen) >= opts.Desired {
			break
		}
	}

	if len(chosen) == 0 {
		return []uint32{opts.Fallback}
	}
	out := make([]uint32, len(chosen))
	for i, c := range chosen {
		out[i] = c.argb
	}
	return out
}
