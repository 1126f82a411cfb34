// Copyright (c) 2026, Seedtone Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package hct

import (
	"fmt"
	"image/color"
	"math/rand"
	"testing"

	"github.com/seedtone/seedtone/cam/cam16"
	"github.com/seedtone/seedtone/cam/cie"
	"github.com/stretchr/testify/assert"
)

const (
	black = 0xff000000
	white = 0xffffffff
	red   = 0xffff0000
	green = 0xff00ff00
	blue  = 0xff0000ff
)

func TestHCTWhite(t *testing.T) {
	h := FromARGB(white)
	assert.InDelta(t, 209.492, h.Hue, 0.005)
	assert.InDelta(t, 2.869, h.Chroma, 0.005)
	assert.InDelta(t, 100, h.Tone, 0.005)
	assert.Equal(t, uint32(white), h.ARGB())
}

func TestGamutMapPrimaries(t *testing.T) {
	for _, c := range []uint32{red, green, blue, white, black} {
		cam := cam16.FromARGB(c)
		got := New(cam.Hue, cam.Chroma, cie.ARGBToL(c)).ARGB()
		assert.Equal(t, c, got, "argb %08x", c)
	}
}

func TestPreservesOriginalColorSampled(t *testing.T) {
	rnd := rand.New(rand.NewSource(3))
	for i := 0; i < 3000; i++ {
		argb := 0xff000000 | uint32(rnd.Intn(1<<24))
		h := FromARGB(argb)
		back := New(h.Hue, h.Chroma, h.Tone).ARGB()
		assert.Equal(t, argb, back, "argb %08x", argb)
	}
}

func TestReturnsSufficientlyCloseColor(t *testing.T) {
	for hue := 15; hue < 360; hue += 30 {
		for chroma := 0; chroma <= 100; chroma += 10 {
			for tone := 20; tone <= 80; tone += 10 {
				desc := fmt.Sprintf("H%d C%d T%d", hue, chroma, tone)
				h := New(float64(hue), float64(chroma), float64(tone))
				if chroma > 0 {
					assert.InDelta(t, float64(hue), h.Hue, 4.0, desc)
				}
				assert.GreaterOrEqual(t, h.Chroma, 0.0, desc)
				assert.LessOrEqual(t, h.Chroma, float64(chroma)+2.5, desc)
				assert.InDelta(t, float64(tone), h.Tone, 0.5, desc)
			}
		}
	}
}

func TestDegenerateRequests(t *testing.T) {
	// Chroma below 1 and extreme tones resolve to the neutral gray
	// without searching.
	assert.Equal(t, cie.LToARGB(50), New(120, 0.5, 50).ARGB())
	assert.Equal(t, uint32(black), New(120, 60, 0).ARGB())
	assert.Equal(t, uint32(white), New(120, 60, 100).ARGB())
	assert.Equal(t, uint32(white), New(120, 60, 120).ARGB())
	assert.Equal(t, uint32(black), New(120, 60, -10).ARGB())
}

func TestHueWrapping(t *testing.T) {
	a := New(30, 50, 50)
	b := New(390, 50, 50)
	c := New(-330, 50, 50)
	assert.Equal(t, a.ARGB(), b.ARGB())
	assert.Equal(t, a.ARGB(), c.ARGB())
}

func TestSetters(t *testing.T) {
	h := New(270, 40, 60)
	h.SetHue(120)
	assert.InDelta(t, 120, h.Hue, 4.0)
	h.SetTone(30)
	assert.InDelta(t, 30, h.Tone, 0.5)
	h.SetChroma(20)
	assert.InDelta(t, 20, h.Chroma, 2.5)

	w := New(270, 40, 60).WithTone(80)
	assert.InDelta(t, 80, w.Tone, 0.5)
}

func TestFromColorAndModel(t *testing.T) {
	h := FromColor(color.RGBA{R: 0xff, A: 0xff})
	assert.Equal(t, uint32(red), h.ARGB())

	m := Model.Convert(color.RGBA{G: 0xff, A: 0xff}).(HCT)
	assert.Equal(t, uint32(green), m.ARGB())

	r, g, b, a := h.RGBA()
	assert.Equal(t, uint32(0xffff), r)
	assert.Equal(t, uint32(0), g)
	assert.Equal(t, uint32(0), b)
	assert.Equal(t, uint32(0xffff), a)
}

func TestString(t *testing.T) {
	h := FromARGB(white)
	assert.Contains(t, h.String(), "hct(")
}
