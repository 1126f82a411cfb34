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

// Package cam16 implements the CAM16 color appearance model, which
// produces perceptual correlates (hue, chroma, lightness, brightness,
// colorfulness, saturation) for a color viewed under given
// [View] conditions, along with the CAM16-UCS uniform coordinates
// used for measuring perceptual distance.
package cam16

import (
	"image/color"
	"math"

	"github.com/seedtone/seedtone/cam/cie"
)

// CAM represents a point in the CAM16 color model along 6 dimensions
// representing the perceived hue, colorfulness, and brightness,
// similar to HSL but much more well-calibrated to actual human
// subjective judgments, plus the CAM16-UCS coordinates.
type CAM struct {

	// hue (h) is the spectral identity of the color (red, green, blue etc)
	// in degrees, always in [0, 360)
	Hue float64

	// chroma (C) is the colorfulness or saturation of the color; grayscale
	// colors have no chroma, and fully saturated ones have high chroma
	Chroma float64

	// lightness (J) is the brightness relative to a reference white
	Lightness float64

	// brightness (Q) is the apparent amount of light from the color, which
	// is not a simple function of actual light energy emitted
	Brightness float64

	// colorfulness (M) is the absolute chromatic intensity
	Colorfulness float64

	// saturation (s) is the colorfulness relative to brightness
	Saturation float64

	// JStar is the CAM16-UCS J coordinate
	JStar float64

	// AStar is the CAM16-UCS a coordinate
	AStar float64

	// BStar is the CAM16-UCS b coordinate
	BStar float64
}

// Distance returns the perceptual difference between two colors as
// CAM16-UCS distance. The Euclidean delta is compressed through
// 1.41*d^0.63 so that ranking by this value tracks human judgments of
// large differences better than the raw delta.
func (cam *CAM) Distance(other *CAM) float64 {
	dj := cam.JStar - other.JStar
	da := cam.AStar - other.AStar
	db := cam.BStar - other.BStar
	de := math.Sqrt(dj*dj + da*da + db*db)
	return 1.41 * math.Pow(de, 0.63)
}

// FromARGB returns the CAM values for the given ARGB color under
// standard viewing conditions.
func FromARGB(argb uint32) *CAM {
	return FromARGBView(argb, StdView())
}

// FromARGBView returns the CAM values for the given ARGB color under
// the given viewing conditions.
func FromARGBView(argb uint32, vw *View) *CAM {
	x, y, z := cie.ARGBToXYZ(argb)
	return FromXYZView(x, y, z, vw)
}

// FromXYZView returns the CAM values for the given 100-based XYZ
// coordinates under the given viewing conditions.
func FromXYZView(x, y, z float64, vw *View) *CAM {
	rC, gC, bC := xyzToCone(x, y, z)

	// Discount illuminant, then apply the post-adaptation nonlinearity.
	rA := chromaticAdapt(vw.RGBD[0] * rC * vw.FL / 100)
	gA := chromaticAdapt(vw.RGBD[1] * gC * vw.FL / 100)
	bA := chromaticAdapt(vw.RGBD[2] * bC * vw.FL / 100)

	// Opponent channels: redness-greenness and yellowness-blueness.
	a := (11*rA + -12*gA + bA) / 11
	b := (rA + gA - 2*bA) / 9

	// Auxiliary components.
	u := (20*rA + 20*gA + 21*bA) / 20
	p2 := (40*rA + 20*gA + bA) / 20

	// atan2(0, 0) is defined as 0 in Go, so a pure black input lands on
	// hue 0 rather than NaN.
	hue := cie.SanitizeDegrees(math.Atan2(b, a) * 180 / math.Pi)
	hueRad := hue * math.Pi / 180

	// Achromatic response to the color.
	ac := p2 * vw.NBB

	// CAM16 lightness and brightness.
	j := 100 * math.Pow(ac/vw.AW, vw.C*vw.Z)
	q := (4 / vw.C) * math.Sqrt(j/100) * (vw.AW + 4) * vw.FLRoot

	huePrime := hue
	if hue < 20.14 {
		huePrime += 360
	}
	eHue := 0.25 * (math.Cos(huePrime*math.Pi/180+2) + 3.8)
	p1 := 50000.0 / 13.0 * eHue * vw.NC * vw.NCB
	t := p1 * math.Sqrt(a*a+b*b) / (u + 0.305)
	alpha := math.Pow(t, 0.9) * math.Pow(1.64-math.Pow(0.29, vw.BgYToWhiteY), 0.73)

	// CAM16 chroma, colorfulness, saturation.
	c := alpha * math.Sqrt(j/100)
	m := c * vw.FLRoot
	s := 50 * math.Sqrt((alpha*vw.C)/(vw.AW+4))

	// CAM16-UCS components.
	jstar := (1 + 100*0.007) * j / (1 + 0.007*j)
	mstar := math.Log(1+0.0228*m) / 0.0228

	return &CAM{
		Hue:          hue,
		Chroma:       c,
		Lightness:    j,
		Brightness:   q,
		Colorfulness: m,
		Saturation:   s,
		JStar:        jstar,
		AStar:        mstar * math.Cos(hueRad),
		BStar:        mstar * math.Sin(hueRad),
	}
}

// FromJCH returns the CAM values for the given lightness (J), chroma
// (C), and hue (h) under standard viewing conditions.
func FromJCH(j, c, h float64) *CAM {
	return FromJCHView(j, c, h, StdView())
}

// FromJCHView returns the CAM values for the given lightness (J),
// chroma (C), and hue (h) under the given viewing conditions.
func FromJCHView(j, c, h float64, vw *View) *CAM {
	q := (4 / vw.C) * math.Sqrt(j/100) * (vw.AW + 4) * vw.FLRoot
	m := c * vw.FLRoot
	// Guard the J=0 division so pure black yields saturation 0, not NaN.
	alpha := 0.0
	if j > 0 {
		alpha = c / math.Sqrt(j/100)
	}
	s := 50 * math.Sqrt((alpha*vw.C)/(vw.AW+4))

	hueRad := h * math.Pi / 180
	jstar := (1 + 100*0.007) * j / (1 + 0.007*j)
	mstar := math.Log(1+0.0228*m) / 0.0228

	return &CAM{
		Hue:          h,
		Chroma:       c,
		Lightness:    j,
		Brightness:   q,
		Colorfulness: m,
		Saturation:   s,
		JStar:        jstar,
		AStar:        mstar * math.Cos(hueRad),
		BStar:        mstar * math.Sin(hueRad),
	}
}

// FromUCS returns the CAM values for the given CAM16-UCS coordinates
// (J*, a*, b*) under standard viewing conditions.
func FromUCS(jstar, astar, bstar float64) *CAM {
	return FromUCSView(jstar, astar, bstar, StdView())
}

// FromUCSView returns the CAM values for the given CAM16-UCS
// coordinates (J*, a*, b*) under the given viewing conditions.
func FromUCSView(jstar, astar, bstar float64, vw *View) *CAM {
	mstar := math.Sqrt(astar*astar + bstar*bstar)
	m := (math.Exp(mstar*0.0228) - 1) / 0.0228
	c := m / vw.FLRoot
	h := math.Atan2(bstar, astar) * 180 / math.Pi
	if h < 0 {
		h += 360
	}
	j := jstar / (1 - (jstar-100)*0.007)
	return FromJCHView(j, c, h, vw)
}

// ARGB returns the ARGB representation of the color, given it was
// viewed under standard viewing conditions.
func (cam *CAM) ARGB() uint32 {
	return cam.ARGBView(StdView())
}

// ARGBView returns the ARGB representation of the color, given it was
// viewed under the given viewing conditions.
func (cam *CAM) ARGBView(vw *View) uint32 {
	x, y, z := cam.XYZView(vw)
	return cie.XYZToARGB(x, y, z)
}

// XYZView inverts the model, returning the 100-based XYZ coordinates
// of the color under the given viewing conditions.
func (cam *CAM) XYZView(vw *View) (x, y, z float64) {
	alpha := 0.0
	if cam.Chroma != 0 && cam.Lightness != 0 {
		alpha = cam.Chroma / math.Sqrt(cam.Lightness/100)
	}

	t := math.Pow(alpha/math.Pow(1.64-math.Pow(0.29, vw.BgYToWhiteY), 0.73), 1/0.9)

	hueRad := cam.Hue * math.Pi / 180
	eHue := 0.25 * (math.Cos(hueRad+2) + 3.8)
	ac := vw.AW * math.Pow(cam.Lightness/100, 1/vw.C/vw.Z)
	p1 := eHue * (50000.0 / 13.0) * vw.NC * vw.NCB
	p2 := ac / vw.NBB

	hSin := math.Sin(hueRad)
	hCos := math.Cos(hueRad)

	gamma := 23 * (p2 + 0.305) * t / (23*p1 + 11*t*hCos + 108*t*hSin)
	a := gamma * hCos
	b := gamma * hSin

	rA := (460*p2 + 451*a + 288*b) / 1403
	gA := (460*p2 - 891*a - 261*b) / 1403
	bA := (460*p2 - 220*a - 6300*b) / 1403

	rF := inverseAdapt(rA, vw.FL) / vw.RGBD[0]
	gF := inverseAdapt(gA, vw.FL) / vw.RGBD[1]
	bF := inverseAdapt(bA, vw.FL) / vw.RGBD[2]

	// Fixed inverse of the CAM16 cone response matrix.
	x = 1.86206786*rF - 1.01125463*gF + 0.14918677*bF
	y = 0.38752654*rF + 0.62144744*gF - 0.00897398*bF
	z = -0.01584150*rF - 0.03412294*gF + 1.04996444*bF
	return
}

// inverseAdapt inverts the post-adaptation nonlinearity for one
// adapted cone response, branching on its sign. The scaling by
// 100/FL is folded in here; callers divide by the discount factor.
func inverseAdapt(adapted, fl float64) float64 {
	base := math.Max(0, 27.13*math.Abs(adapted)/(400-math.Abs(adapted)))
	return cie.Signum(adapted) * (100 / fl) * math.Pow(base, 1/0.42)
}

// RGBA implements the color.Color interface under standard viewing
// conditions.
func (cam *CAM) RGBA() (r, g, b, a uint32) {
	argb := cam.ARGB()
	r = cie.Red(argb) * 0x101
	g = cie.Green(argb) * 0x101
	b = cie.Blue(argb) * 0x101
	a = 0xffff
	return
}

// AsRGBA returns the color as a [color.RGBA] under standard viewing
// conditions.
func (cam *CAM) AsRGBA() color.RGBA {
	argb := cam.ARGB()
	return color.RGBA{uint8(cie.Red(argb)), uint8(cie.Green(argb)), uint8(cie.Blue(argb)), 255}
}

// FromColor returns the CAM values for the given [color.Color] under
// standard viewing conditions; alpha is ignored.
func FromColor(c color.Color) *CAM {
	rgba := color.RGBAModel.Convert(c).(color.RGBA)
	return FromARGB(cie.ARGB(uint32(rgba.R), uint32(rgba.G), uint32(rgba.B)))
}
