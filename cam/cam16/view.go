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

package cam16

import (
	"math"

	"github.com/seedtone/seedtone/cam/cie"
)

// View represents viewing conditions under which a color is being
// perceived, which greatly affects the subjective perception. Defaults
// represent the standard defined such conditions, under which the
// CAM16 computations operate. A View caches the intermediate values of
// the CAM16 conversion process that depend only on these conditions.
type View struct {

	// white point illumination, typically cie.WhiteD65
	WhitePoint [3]float64

	// the ambient light strength in lux
	Luminance float64

	// the average L* of the 10 degrees surrounding the color in question
	BgLstar float64

	// the brightness of the entire environment, 0 to 2
	Surround float64

	// whether the person's eyes have fully adapted to (discounted)
	// the illuminant
	Adapted bool

	// luminance the eye is adapted to, computed from Luminance
	AdaptingLuminance float64

	// ratio of background relative luminance to white relative luminance
	BgYToWhiteY float64

	// achromatic response to the white point
	AW float64

	// luminance level induction factor
	NBB float64

	// chromatic induction factor counterpart of NBB
	NCB float64

	// exponential nonlinearity
	C float64

	// chromatic induction factor
	NC float64

	// luminance-level adaptation factor, per the HuntLiLuo03 equations
	FL float64

	// FL to the 1/4 power
	FLRoot float64

	// base exponential nonlinearity
	Z float64

	// cone responses to the white point, adjusted for discounting
	RGBD [3]float64
}

// NewView returns a new view with all derived factors computed from
// the given major parameters.
func NewView(whitePoint [3]float64, lum, bgLstar, surround float64, adapted bool) *View {
	vw := &View{WhitePoint: whitePoint, Luminance: lum, BgLstar: bgLstar, Surround: surround, Adapted: adapted}
	vw.Update()
	return vw
}

// stdView is the singleton standard viewing conditions,
// created on first use.
var stdView *View

// StdView returns the standard sRGB viewing conditions: D65 white
// point, 200 lux, background L* of 50, average surround, and no
// illuminant discounting. The same instance is reused process-wide.
func StdView() *View {
	if stdView == nil {
		stdView = NewView(cie.WhiteD65, 200, 50, 2, false)
	}
	return stdView
}

// Update recomputes all the derived factors from the main parameters.
func (vw *View) Update() {
	vw.AdaptingLuminance = (vw.Luminance / math.Pi) * (cie.LToY(50) / 100)

	// A background approaching pure black is non-physical and drives
	// the induction factors toward infinity.
	vw.BgLstar = math.Max(30, vw.BgLstar)

	// Transform the test illuminant white to cone/rgb responses.
	rW, gW, bW := xyzToCone(vw.WhitePoint[0], vw.WhitePoint[1], vw.WhitePoint[2])

	// Scale input surround, domain (0, 2), to CAM16 surround, domain (0.8, 1.0).
	vw.Surround = cie.Clamp(0, 2, vw.Surround)
	f := 0.8 + vw.Surround/10

	// Exponential nonlinearity.
	if f >= 0.9 {
		vw.C = cie.Lerp(0.59, 0.69, (f-0.9)*10)
	} else {
		vw.C = cie.Lerp(0.525, 0.59, (f-0.8)*10)
	}

	// Degree of adaptation to the illuminant.
	d := 1.0
	if !vw.Adapted {
		d = f * (1 - (1/3.6)*math.Exp((-vw.AdaptingLuminance-42)/92))
	}
	// Per Li et al, clamp D into [0, 1].
	d = cie.Clamp(0, 1, d)

	vw.NC = f

	// Cone responses to the white point, adjusted for discounting.
	//
	// Some CAM02/CAM16 implementations use the Y value of the
	// reference white here instead of 100; Fairchild's Color
	// Appearance Models (3rd ed) notes that is an error carried over
	// from the CIE 2004a report. Later parts of the conversion account
	// for appearance scaling relative to the white point luminance.
	vw.RGBD[0] = d*(100/rW) + 1 - d
	vw.RGBD[1] = d*(100/gW) + 1 - d
	vw.RGBD[2] = d*(100/bW) + 1 - d

	k := 1 / (5*vw.AdaptingLuminance + 1)
	k4 := k * k * k * k
	k4F := 1 - k4

	// Luminance-level adaptation factor.
	vw.FL = k4*vw.AdaptingLuminance +
		0.1*k4F*k4F*math.Cbrt(5*vw.AdaptingLuminance)
	vw.FLRoot = math.Pow(vw.FL, 0.25)

	n := cie.LToY(vw.BgLstar) / vw.WhitePoint[1]
	vw.BgYToWhiteY = n

	// Base exponential nonlinearity.
	// Note Schlomer 2018 has a typo and uses 1.58; the correct factor is 1.48.
	vw.Z = 1.48 + math.Sqrt(n)

	// Luminance-level induction factors.
	vw.NBB = 0.725 / math.Pow(n, 0.2)
	vw.NCB = vw.NBB

	// Discounted cone responses to the white point, adjusted for the
	// post-saturation adaptation perceptual nonlinearity.
	rA := chromaticAdapt(vw.FL * vw.RGBD[0] * rW / 100)
	gA := chromaticAdapt(vw.FL * vw.RGBD[1] * gW / 100)
	bA := chromaticAdapt(vw.FL * vw.RGBD[2] * bW / 100)

	vw.AW = ((40*rA + 20*gA + bA) / 20) * vw.NBB
}

// xyzToCone transforms XYZ coordinates into the CAM16 cone/rgb
// response space using the fixed CAM16 transformation matrix.
func xyzToCone(x, y, z float64) (r, g, b float64) {
	r = 0.401288*x + 0.650173*y - 0.051461*z
	g = -0.250268*x + 1.204414*y + 0.045854*z
	b = -0.002079*x + 0.048952*y + 0.953127*z
	return
}

// chromaticAdapt applies the signed post-adaptation nonlinearity
// (exponent 0.42, Michaelis-Menten scaling by 27.13) to a discounted
// cone response.
func chromaticAdapt(comp float64) float64 {
	af := math.Pow(math.Abs(comp), 0.42)
	return cie.Signum(comp) * 400 * af / (af + 27.13)
}
