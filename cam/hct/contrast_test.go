// Copyright (c) 2026, Seedtone Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package hct

import (
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestToneContrastRatio(t *testing.T) {
	assert.InDelta(t, 21, ToneContrastRatio(100, 0), 1e-9)
	assert.InDelta(t, 21, ToneContrastRatio(0, 100), 1e-9)
	assert.InDelta(t, 1, ToneContrastRatio(50, 50), 1e-9)
	// Out-of-range tones clamp instead of misbehaving.
	assert.InDelta(t, 21, ToneContrastRatio(120, -10), 1e-9)
}

func TestContrastRatioOfYs(t *testing.T) {
	assert.InDelta(t, 21, ContrastRatioOfYs(100, 0), 1e-9)
	assert.InDelta(t, 21, ContrastRatioOfYs(0, 100), 1e-9)
	assert.InDelta(t, 1, ContrastRatioOfYs(30, 30), 1e-9)
}

func TestContrastToneLighter(t *testing.T) {
	lighter, ok := ContrastToneLighter(30, 3)
	assert.True(t, ok)
	assert.Greater(t, lighter, 30.0)
	assert.GreaterOrEqual(t, ToneContrastRatio(lighter, 30), 3.0)

	// No lighter tone can reach 21:1 against a mid gray.
	_, ok = ContrastToneLighter(50, 21)
	assert.False(t, ok)
}

func TestContrastToneDarker(t *testing.T) {
	darker, ok := ContrastToneDarker(70, 3)
	assert.True(t, ok)
	assert.Less(t, darker, 70.0)
	assert.GreaterOrEqual(t, ToneContrastRatio(darker, 70), 3.0)

	_, ok = ContrastToneDarker(50, 21)
	assert.False(t, ok)
}

func TestContrastTone(t *testing.T) {
	// A light tone prefers a darker answer.
	ct, ok := ContrastTone(80, 4.5)
	assert.True(t, ok)
	assert.Less(t, ct, 80.0)
	assert.GreaterOrEqual(t, ToneContrastRatio(ct, 80), 4.5)

	// A dark tone prefers a lighter answer.
	ct, ok = ContrastTone(20, 4.5)
	assert.True(t, ok)
	assert.Greater(t, ct, 20.0)
	assert.GreaterOrEqual(t, ToneContrastRatio(ct, 20), 4.5)

	// 21:1 is unreachable from mid tones in either direction.
	_, ok = ContrastTone(50, 21)
	assert.False(t, ok)
}

func TestContrastToneUnsafe(t *testing.T) {
	assert.Equal(t, 0.0, ContrastToneUnsafe(80, 21))
	assert.Equal(t, 100.0, ContrastToneUnsafe(20, 21))

	ct := ContrastToneUnsafe(30, 3)
	assert.GreaterOrEqual(t, ToneContrastRatio(ct, 30), 3.0)
}

func TestContrastToneLighterDarkerUnsafe(t *testing.T) {
	assert.Equal(t, 100.0, ContrastToneLighterUnsafe(50, 21))
	assert.Equal(t, 0.0, ContrastToneDarkerUnsafe(50, 21))

	lighter := ContrastToneLighterUnsafe(30, 3)
	assert.GreaterOrEqual(t, ToneContrastRatio(lighter, 30), 3.0)
}

func TestContrastColor(t *testing.T) {
	bg := color.RGBA{R: 0x21, G: 0x21, B: 0x21, A: 0xff}
	fg, ok := ContrastColor(bg, 4.5)
	assert.True(t, ok)
	assert.GreaterOrEqual(t, ContrastRatio(bg, fg), 4.5)

	_, ok = ContrastColor(color.RGBA{R: 0x80, G: 0x80, B: 0x80, A: 0xff}, 21)
	assert.False(t, ok)
}

func TestContrastColorUnsafe(t *testing.T) {
	bg := color.RGBA{R: 0x80, G: 0x80, B: 0x80, A: 0xff}
	fg := ContrastColorUnsafe(bg, 21)
	// Unsafe falls back to the extreme that yields the highest ratio.
	h := FromColor(fg)
	assert.True(t, h.Tone < 1 || h.Tone > 99)
}

func TestLightenDarken(t *testing.T) {
	c := color.RGBA{R: 0x42, G: 0x85, B: 0xf4, A: 0xff}
	base := FromColor(c)

	lighter := FromColor(Lighten(c, 20))
	assert.InDelta(t, base.Tone+20, lighter.Tone, 0.5)

	darker := FromColor(Darken(c, 20))
	assert.InDelta(t, base.Tone-20, darker.Tone, 0.5)
}
