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

// labPoint is a color as a point in L*a*b* space, the coordinate
// system WSMeans clusters in.
type labPoint [3]float64

func labFromARGB(argb uint32) labPoint {
	l, a, b := cie.ARGBToLAB(argb)
	return labPoint{l, a, b}
}

func (p labPoint) toARGB() uint32 {
	return cie.LABToARGB(p[0], p[1], p[2])
}

// distance is the squared CIE 1976 delta E. The square root is
// skipped: the relative ordering is the same with or without it, and
// this runs at least once per pixel in an image.
func (p labPoint) distance(other labPoint) float64 {
	dl := p[0] - other[0]
	da := p[1] - other[1]
	db := p[2] - other[2]
	return dl*dl + da*da + db*db
}
