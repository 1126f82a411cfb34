// Copyright (c) 2026, Seedtone Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package matcolor

import (
	"testing"

	"github.com/seedtone/seedtone/cam/hct"
	"github.com/stretchr/testify/assert"
)

func TestNewSchemes(t *testing.T) {
	k := &Key{
		Primary:        0xff343deb,
		Secondary:      0xff7b877a,
		Tertiary:       0xff6ac4b2,
		Error:          0xffdb2e25,
		Neutral:        0xff858379,
		NeutralVariant: 0xff6b6a65,
	}
	p := NewPalette(k)
	s := NewSchemes(p)

	// Light accents sit at tone 40, dark accents at tone 80.
	assert.InDelta(t, 40, hct.FromARGB(s.Light.Primary.Base).Tone, 0.5)
	assert.InDelta(t, 80, hct.FromARGB(s.Dark.Primary.Base).Tone, 0.5)
	assert.InDelta(t, 90, hct.FromARGB(s.Light.Primary.Container).Tone, 0.5)
	assert.InDelta(t, 30, hct.FromARGB(s.Dark.Primary.Container).Tone, 0.5)
}

func TestNewSchemesFromPrimary(t *testing.T) {
	k := KeyFromPrimary(0xff0000ff)
	p := NewPalette(k)
	s := NewSchemes(p)

	primaryHue := hct.FromARGB(k.Primary).Hue
	tertiaryHue := hct.FromARGB(k.Tertiary).Hue
	assert.InDelta(t, 60, tertiaryHue-primaryHue, 10)

	assert.NotEqual(t, s.Light, s.Dark)
}

func TestSchemesFromARGB(t *testing.T) {
	s := SchemesFromARGB(0xff4285f4)

	// The light background is a near-white neutral of the seed hue.
	bg := hct.FromARGB(s.Light.Background)
	assert.Greater(t, bg.Tone, 98.0)
	assert.Less(t, bg.Chroma, 10.0)

	dbg := hct.FromARGB(s.Dark.Background)
	assert.Less(t, dbg.Tone, 11.0)
}

func TestPaletteListRoundTrip(t *testing.T) {
	p := PaletteFromARGB(0xff0000ff)
	list := p.AsList()
	assert.Len(t, list, PaletteSize*CommonSize)

	back, err := PaletteFromList(list)
	assert.NoError(t, err)
	assert.Equal(t, list, back.AsList())
	assert.Equal(t, p.Primary.MustTone(40), back.Primary.MustTone(40))
	assert.Equal(t, p.NeutralVariant.MustTone(90), back.NeutralVariant.MustTone(90))

	// The error palette is fixed rather than serialized.
	assert.InDelta(t, 25, back.Error.Hue, 1e-9)
	assert.InDelta(t, 84, back.Error.Chroma, 1e-9)
}

func TestPaletteFromListWrongSize(t *testing.T) {
	_, err := PaletteFromList(make([]uint32, 3))
	assert.Error(t, err)
}

func TestPaletteFromARGBChromaFloor(t *testing.T) {
	// A low-chroma seed still yields a chroma-48 primary palette.
	p := PaletteFromARGB(0xff777788)
	assert.InDelta(t, 48, p.Primary.Chroma, 1e-9)
	assert.InDelta(t, 16, p.Secondary.Chroma, 1e-9)
	assert.InDelta(t, 24, p.Tertiary.Chroma, 1e-9)
	assert.InDelta(t, 4, p.Neutral.Chroma, 1e-9)
	assert.InDelta(t, 8, p.NeutralVariant.Chroma, 1e-9)
	assert.InDelta(t, 25, p.Error.Hue, 1e-9)
	assert.InDelta(t, 84, p.Error.Chroma, 1e-9)
}
