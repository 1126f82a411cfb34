// Copyright (c) 2026, Seedtone Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cie

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func sweep(start, stop float64, count int) []float64 {
	step := (stop - start) / float64(count-1)
	out := make([]float64, count)
	for i := range out {
		out[i] = start + step*float64(i)
	}
	return out
}

func TestARGBComponents(t *testing.T) {
	c := ARGB(0x12, 0x34, 0x56)
	assert.Equal(t, uint32(0xff123456), c)
	assert.Equal(t, uint32(255), Alpha(c))
	assert.Equal(t, uint32(0x12), Red(c))
	assert.Equal(t, uint32(0x34), Green(c))
	assert.Equal(t, uint32(0x56), Blue(c))
}

func TestYToLToY(t *testing.T) {
	for _, y := range sweep(0, 100, 1001) {
		assert.InDelta(t, y, LToY(YToL(y)), 1e-5)
	}
}

func TestLToYToL(t *testing.T) {
	for _, l := range sweep(0, 100, 1001) {
		assert.InDelta(t, l, YToL(LToY(l)), 1e-5)
	}
}

// The kappa/epsilon boundary at L*=8 must be continuous under correct
// constants.
func TestYContinuity(t *testing.T) {
	delta := 1e-8
	mid := LToY(8)
	assert.InDelta(t, mid, LToY(8-delta), 1e-4)
	assert.InDelta(t, mid, LToY(8+delta), 1e-4)
}

func TestLinearizeDelinearize(t *testing.T) {
	for c := uint32(0); c < 256; c++ {
		assert.Equal(t, c, Delinearize(Linearize(c)))
	}
}

func TestRGBToXYZToRGB(t *testing.T) {
	for r := uint32(0); r < 256; r += 36 {
		for g := uint32(0); g < 256; g += 36 {
			for b := uint32(0); b < 256; b += 36 {
				argb := ARGB(r, g, b)
				x, y, z := ARGBToXYZ(argb)
				back := XYZToARGB(x, y, z)
				assert.InDelta(t, float64(r), float64(Red(back)), 1.5)
				assert.InDelta(t, float64(g), float64(Green(back)), 1.5)
				assert.InDelta(t, float64(b), float64(Blue(back)), 1.5)
			}
		}
	}
}

func TestRGBToLABToRGB(t *testing.T) {
	for r := uint32(0); r < 256; r += 36 {
		for g := uint32(0); g < 256; g += 36 {
			for b := uint32(0); b < 256; b += 36 {
				argb := ARGB(r, g, b)
				l, la, lb := ARGBToLAB(argb)
				back := LABToARGB(l, la, lb)
				assert.InDelta(t, float64(r), float64(Red(back)), 1.5)
				assert.InDelta(t, float64(g), float64(Green(back)), 1.5)
				assert.InDelta(t, float64(b), float64(Blue(back)), 1.5)
			}
		}
	}
}

func TestGrayRoundTrip(t *testing.T) {
	for c := uint32(0); c < 256; c++ {
		argb := ARGB(c, c, c)
		assert.Equal(t, argb, LToARGB(ARGBToL(argb)))
	}
}

func TestLToARGBToYCommutes(t *testing.T) {
	for _, l := range sweep(0, 100, 1001) {
		argb := LToARGB(l)
		_, y, _ := ARGBToXYZ(argb)
		assert.InDelta(t, LToY(l), y, 1)
	}
}

func TestSanitizeDegrees(t *testing.T) {
	assert.Equal(t, 30.0, SanitizeDegrees(30))
	assert.Equal(t, 330.0, SanitizeDegrees(-30))
	assert.Equal(t, 10.0, SanitizeDegrees(730))
	assert.Equal(t, 0.0, SanitizeDegrees(360))
	assert.Equal(t, 350, SanitizeDegreesInt(-10))
	assert.Equal(t, 3, SanitizeDegreesInt(363))
}

func TestDifferenceDegrees(t *testing.T) {
	assert.InDelta(t, 20, DifferenceDegrees(10, 350), 1e-9)
	assert.InDelta(t, 180, DifferenceDegrees(0, 180), 1e-9)
	assert.InDelta(t, 0, DifferenceDegrees(90, 90), 1e-9)
}

func TestRotationDirection(t *testing.T) {
	assert.Equal(t, 1.0, RotationDirection(0, 90))
	assert.Equal(t, -1.0, RotationDirection(90, 0))
	assert.Equal(t, -1.0, RotationDirection(10, 350))
}

func TestSignum(t *testing.T) {
	assert.Equal(t, -1.0, Signum(-3.2))
	assert.Equal(t, 0.0, Signum(0))
	assert.Equal(t, 1.0, Signum(0.004))
}
