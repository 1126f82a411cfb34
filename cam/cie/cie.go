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

// Package cie provides the CIE standard color spaces and conversions
// between them and packed 32-bit ARGB colors: linear sRGB, XYZ, and
// L*a*b*, along with the L* (perceptual luminance) transfer functions
// used throughout the rest of the color system.
package cie

import "math"

// WhiteD65 is the standard D65 white point; white on a sunny day.
var WhiteD65 = [3]float64{95.047, 100.0, 108.883}

// Matrix3 is a 3x3 row-major transformation matrix.
type Matrix3 [3][3]float64

// SRGBToXYZMat transforms linear sRGB (0-100) to XYZ (0-100).
var SRGBToXYZMat = Matrix3{
	{0.41233895, 0.35762064, 0.18051042},
	{0.2126, 0.7152, 0.0722},
	{0.01932141, 0.11916382, 0.95034478},
}

// XYZToSRGBMat transforms XYZ (0-100) to linear sRGB (0-100).
var XYZToSRGBMat = Matrix3{
	{3.2413774792388685, -1.5376652402851851, -0.49885366846268053},
	{-0.9691452513005321, 1.8758853451067872, 0.04156585616912061},
	{0.05562093689691305, -0.20395524564742123, 1.0571799111220335},
}

// MatMul multiplies a 1x3 row vector with a 3x3 matrix.
func MatMul(row [3]float64, m Matrix3) [3]float64 {
	return [3]float64{
		row[0]*m[0][0] + row[1]*m[0][1] + row[2]*m[0][2],
		row[0]*m[1][0] + row[1]*m[1][1] + row[2]*m[1][2],
		row[0]*m[2][0] + row[1]*m[2][1] + row[2]*m[2][2],
	}
}

// Alpha returns the alpha component of an ARGB color.
func Alpha(argb uint32) uint32 { return (argb >> 24) & 255 }

// Red returns the red component of an ARGB color.
func Red(argb uint32) uint32 { return (argb >> 16) & 255 }

// Green returns the green component of an ARGB color.
func Green(argb uint32) uint32 { return (argb >> 8) & 255 }

// Blue returns the blue component of an ARGB color.
func Blue(argb uint32) uint32 { return argb & 255 }

// ARGB packs fully-opaque 8-bit RGB components into an ARGB color.
func ARGB(r, g, b uint32) uint32 {
	return 255<<24 | (r&255)<<16 | (g&255)<<8 | b&255
}

// Linearize converts a gamma-corrected 8-bit R/G/B channel to a
// linear sRGB value in the 0-100 range.
func Linearize(comp uint32) float64 {
	normalized := float64(comp) / 255
	if normalized <= 0.040449936 {
		return normalized / 12.92 * 100
	}
	return math.Pow((normalized+0.055)/1.055, 2.4) * 100
}

// Delinearize converts a linear sRGB value in the 0-100 range to a
// gamma-corrected 8-bit R/G/B channel, clamping to [0, 255].
func Delinearize(comp float64) uint32 {
	normalized := comp / 100
	delinearized := 0.0
	if normalized <= 0.0031308 {
		delinearized = normalized * 12.92
	} else {
		delinearized = 1.055*math.Pow(normalized, 1/2.4) - 0.055
	}
	return uint32(Clamp(0, 255, math.Round(delinearized*255)))
}

// ARGBToXYZ converts an ARGB color to XYZ coordinates (0-100).
func ARGBToXYZ(argb uint32) (x, y, z float64) {
	lin := MatMul([3]float64{
		Linearize(Red(argb)),
		Linearize(Green(argb)),
		Linearize(Blue(argb)),
	}, SRGBToXYZMat)
	return lin[0], lin[1], lin[2]
}

// XYZToARGB converts XYZ coordinates (0-100) to the nearest ARGB color.
func XYZToARGB(x, y, z float64) uint32 {
	lin := MatMul([3]float64{x, y, z}, XYZToSRGBMat)
	return ARGB(Delinearize(lin[0]), Delinearize(lin[1]), Delinearize(lin[2]))
}

// LinearToARGB converts linear sRGB components (0-100) to an ARGB color.
func LinearToARGB(rl, gl, bl float64) uint32 {
	return ARGB(Delinearize(rl), Delinearize(gl), Delinearize(bl))
}

// ARGBToLAB converts an ARGB color to L*a*b* coordinates.
func ARGBToLAB(argb uint32) (l, a, b float64) {
	x, y, z := ARGBToXYZ(argb)
	fx := LABCompress(x / WhiteD65[0])
	fy := LABCompress(y / WhiteD65[1])
	fz := LABCompress(z / WhiteD65[2])
	l = 116*fy - 16
	a = 500 * (fx - fy)
	b = 200 * (fy - fz)
	return
}

// LABToARGB converts L*a*b* coordinates to the nearest ARGB color.
func LABToARGB(l, a, b float64) uint32 {
	fy := (l + 16) / 116
	fx := a/500 + fy
	fz := fy - b/200
	x := LABUncompress(fx) * WhiteD65[0]
	y := LABUncompress(fy) * WhiteD65[1]
	z := LABUncompress(fz) * WhiteD65[2]
	return XYZToARGB(x, y, z)
}

// ARGBToL computes the L* (tone) value of an ARGB color.
func ARGBToL(argb uint32) float64 {
	_, y, _ := ARGBToXYZ(argb)
	return 116*LABCompress(y/100) - 16
}

// LToARGB returns the neutral gray whose L* matches the given tone.
func LToARGB(lstar float64) uint32 {
	comp := Delinearize(LToY(lstar))
	return ARGB(comp, comp, comp)
}

// LToY converts an L* value to XYZ relative luminance Y.
//
// L* in L*a*b* and Y in XYZ measure the same quantity: L* on a
// perceptually linear scale, Y on a relative (logarithmic-feeling)
// scale.
func LToY(lstar float64) float64 {
	return 100 * LABUncompress((lstar+16)/116)
}

// YToL converts XYZ relative luminance Y to an L* value.
func YToL(y float64) float64 {
	return 116*LABCompress(y/100) - 16
}

const (
	labE     = 216.0 / 24389.0
	labKappa = 24389.0 / 27.0
)

// LABCompress is the L*a*b* forward transfer function f.
func LABCompress(t float64) float64 {
	if t > labE {
		return math.Cbrt(t)
	}
	return (labKappa*t + 16) / 116
}

// LABUncompress is the L*a*b* inverse transfer function f^-1.
func LABUncompress(ft float64) float64 {
	ft3 := ft * ft * ft
	if ft3 > labE {
		return ft3
	}
	return (116*ft - 16) / labKappa
}

// Clamp returns v constrained to [lo, hi].
func Clamp(lo, hi, v float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// Lerp linearly interpolates between start and stop;
// returns start at amount = 0 and stop at amount = 1.
func Lerp(start, stop, amount float64) float64 {
	return (1-amount)*start + amount*stop
}

// SanitizeDegrees wraps a degree measure into [0, 360).
func SanitizeDegrees(degrees float64) float64 {
	degrees = math.Mod(degrees, 360)
	if degrees < 0 {
		degrees += 360
	}
	return degrees
}

// SanitizeDegreesInt wraps an integer degree measure into [0, 360).
func SanitizeDegreesInt(degrees int) int {
	degrees %= 360
	if degrees < 0 {
		degrees += 360
	}
	return degrees
}

// DifferenceDegrees returns the distance of two points on a circle,
// represented using degrees.
func DifferenceDegrees(a, b float64) float64 {
	return 180 - math.Abs(math.Abs(a-b)-180)
}

// RotationDirection returns the shortest angular travel direction,
// 1 or -1, from one hue to another.
func RotationDirection(from, to float64) float64 {
	increasing := SanitizeDegrees(to - from)
	if increasing <= 180 {
		return 1
	}
	return -1
}

// Signum returns 1 for positive values, -1 for negative values,
// and 0 for 0, unlike [math.Signbit]-based formulations that map
// 0 to a sign.
func Signum(v float64) float64 {
	if v < 0 {
		return -1
	}
	if v > 0 {
		return 1
	}
	return 0
}
