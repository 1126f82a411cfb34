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

// Package hct provides the HCT (hue, chroma, tone) color space: a
// color system combining CAM16 hue and chroma with L*a*b* tone,
// providing a perceptually accurate color measurement system that can
// also accurately render what colors will appear as in different
// lighting environments.
package hct

import (
	"fmt"
	"image/color"

	"github.com/seedtone/seedtone/cam/cam16"
	"github.com/seedtone/seedtone/cam/cie"
)

// HCT is a color in the hue, chroma, tone color space. Every HCT is
// backed by the sRGB color that most closely realizes the requested
// coordinates, so converting to ARGB is always exact and in gamut.
type HCT struct {

	// hue (h) is the spectral identity of the color (red, green, blue etc)
	// in degrees, 0-360
	Hue float64

	// chroma (C) is the colorfulness or saturation of the color; grayscale
	// colors have no chroma, and fully saturated ones have high chroma.
	// The maximum varies as a function of hue and tone.
	Chroma float64

	// tone is the L* component from the L*a*b* color system, 0-100,
	// which is linear in human perception of lightness
	Tone float64

	argb uint32
}

// New returns the HCT color for the given hue (0-360), chroma
// (0 to a hue- and tone-dependent maximum), and tone (0-100).
// Out-of-range hue is wrapped and out-of-range tone is clamped; if the
// requested chroma is not achievable at the requested tone, the
// closest achievable chroma at that exact tone is used instead.
func New(hue, chroma, tone float64) HCT {
	return FromARGB(SolveToARGB(hue, chroma, tone))
}

// FromARGB returns the HCT representation of an ARGB color.
func FromARGB(argb uint32) HCT {
	cam := cam16.FromARGB(argb)
	return HCT{Hue: cam.Hue, Chroma: cam.Chroma, Tone: cie.ARGBToL(argb), argb: argb}
}

// FromColor returns the HCT representation of a standard
// [color.Color]; alpha is ignored.
func FromColor(c color.Color) HCT {
	rgba := color.RGBAModel.Convert(c).(color.RGBA)
	return FromARGB(cie.ARGB(uint32(rgba.R), uint32(rgba.G), uint32(rgba.B)))
}

// Model is the standard [color.Model] that converts colors to HCT.
var Model = color.ModelFunc(model)

func model(c color.Color) color.Color {
	if h, ok := c.(HCT); ok {
		return h
	}
	return FromColor(c)
}

// ARGB returns the packed ARGB color backing this HCT color.
func (h HCT) ARGB() uint32 {
	return h.argb
}

// AsRGBA returns the color as a standard [color.RGBA].
func (h HCT) AsRGBA() color.RGBA {
	return color.RGBA{
		uint8(cie.Red(h.argb)),
		uint8(cie.Green(h.argb)),
		uint8(cie.Blue(h.argb)),
		uint8(cie.Alpha(h.argb)),
	}
}

// RGBA implements the color.Color interface.
func (h HCT) RGBA() (r, g, b, a uint32) {
	r = cie.Red(h.argb) * 0x101
	g = cie.Green(h.argb) * 0x101
	b = cie.Blue(h.argb) * 0x101
	a = cie.Alpha(h.argb) * 0x101
	return
}

// SetHue sets the hue of this color (0-360; invalid values are
// corrected). Chroma may decrease because chroma has a different
// maximum for any given hue and tone.
func (h *HCT) SetHue(hue float64) {
	*h = New(hue, h.Chroma, h.Tone)
}

// WithHue is like [HCT.SetHue] except it returns a new color instead
// of setting the existing one.
func (h HCT) WithHue(hue float64) HCT {
	return New(hue, h.Chroma, h.Tone)
}

// SetChroma sets the chroma of this color (0 to a maximum that
// depends on the hue and tone), keeping the sRGB representation
// within its gamut, which may cause the chroma to decrease until it
// is inside the gamut.
func (h *HCT) SetChroma(chroma float64) {
	*h = New(h.Hue, chroma, h.Tone)
}

// WithChroma is like [HCT.SetChroma] except it returns a new color
// instead of setting the existing one.
func (h HCT) WithChroma(chroma float64) HCT {
	return New(h.Hue, chroma, h.Tone)
}

// SetTone sets the tone of this color (0-100; invalid values are
// corrected), keeping the sRGB representation within its gamut, which
// may cause the chroma to decrease until it is inside the gamut.
func (h *HCT) SetTone(tone float64) {
	*h = New(h.Hue, h.Chroma, tone)
}

// WithTone is like [HCT.SetTone] except it returns a new color
// instead of setting the existing one.
func (h HCT) WithTone(tone float64) HCT {
	return New(h.Hue, h.Chroma, tone)
}

func (h HCT) String() string {
	return fmt.Sprintf("hct(%g, %g, %g)", h.Hue, h.Chroma, h.Tone)
}
