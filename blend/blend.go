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

// Package blend provides functions for blending colors in HCT and
// CAM16.
package blend

import (
	"github.com/seedtone/seedtone/cam/cam16"
	"github.com/seedtone/seedtone/cam/cie"
	"github.com/seedtone/seedtone/cam/hct"
)

// Harmonize shifts designColor's hue towards sourceColor's, creating
// a slightly warmer or cooler variant of designColor. Hue shifts up
// to 15 degrees; chroma and tone are preserved.
func Harmonize(designColor, sourceColor uint32) uint32 {
	from := hct.FromARGB(designColor)
	to := hct.FromARGB(sourceColor)
	differenceDegrees := cie.DifferenceDegrees(from.Hue, to.Hue)
	rotationDegrees := min(differenceDegrees*0.5, 15)
	outputHue := cie.SanitizeDegrees(from.Hue + rotationDegrees*cie.RotationDirection(from.Hue, to.Hue))
	return hct.New(outputHue, from.Chroma, from.Tone).ARGB()
}

// HCTHue blends from's hue in HCT towards to's hue by amount
// (0 to 1), keeping from's chroma and tone.
func HCTHue(from, to uint32, amount float64) uint32 {
	ucs := CAM16UCS(from, to, amount)
	ucsCAM := cam16.FromARGB(ucs)
	fromCAM := cam16.FromARGB(from)
	return hct.New(ucsCAM.Hue, fromCAM.Chroma, cie.ARGBToL(from)).ARGB()
}

// CAM16UCS blends from and to by amount (0 to 1) in the CAM16-UCS
// color space.
func CAM16UCS(from, to uint32, amount float64) uint32 {
	fromCAM := cam16.FromARGB(from)
	toCAM := cam16.FromARGB(to)

	jstar := fromCAM.JStar + (toCAM.JStar-fromCAM.JStar)*amount
	astar := fromCAM.AStar + (toCAM.AStar-fromCAM.AStar)*amount
	bstar := fromCAM.BStar + (toCAM.BStar-fromCAM.BStar)*amount

	return cam16.FromUCS(jstar, astar, bstar).ARGB()
}
