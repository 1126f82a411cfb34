// Copyright (c) 2026, Seedtone Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package matcolor

import (
	"testing"

	"github.com/seedtone/seedtone/cam/hct"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustTone(t *testing.T, tones *Tones, tone int) uint32 {
	t.Helper()
	c, err := tones.Tone(tone)
	require.NoError(t, err)
	return c
}

func TestTonesOfBlue(t *testing.T) {
	blue := TonesFromARGB(0xff0000ff)

	assert.Equal(t, uint32(0xffffffff), mustTone(t, blue, 100))
	assert.Equal(t, uint32(0xfffffbff), mustTone(t, blue, 99))
	assert.Equal(t, uint32(0xfff1efff), mustTone(t, blue, 95))
	assert.Equal(t, uint32(0xffe0e0ff), mustTone(t, blue, 90))
	assert.Equal(t, uint32(0xffbec2ff), mustTone(t, blue, 80))
	assert.Equal(t, uint32(0xff9da3ff), mustTone(t, blue, 70))
	assert.Equal(t, uint32(0xff7c84ff), mustTone(t, blue, 60))
	assert.Equal(t, uint32(0xff5a64ff), mustTone(t, blue, 50))
	assert.Equal(t, uint32(0xff343dff), mustTone(t, blue, 40))
	assert.Equal(t, uint32(0xff0000ef), mustTone(t, blue, 30))
	assert.Equal(t, uint32(0xff0001ac), mustTone(t, blue, 20))
	assert.Equal(t, uint32(0xff00006e), mustTone(t, blue, 10))
	assert.Equal(t, uint32(0xff000000), mustTone(t, blue, 0))

	assert.Equal(t, uint32(0xff00003e), mustTone(t, blue, 3))
}

func TestAsList(t *testing.T) {
	h := hct.FromARGB(0xff0000ff)
	tones := TonesOf(h.Hue, h.Chroma)
	assert.Equal(t, []uint32{
		0xff000000, 0xff00006e, 0xff0001ac, 0xff0000ef, 0xff343dff,
		0xff5a64ff, 0xff7c84ff, 0xff9da3ff, 0xffbec2ff, 0xffe0e0ff,
		0xfff1efff, 0xfffffbff, 0xffffffff,
	}, tones.AsList())
}

func TestFromListRoundTrip(t *testing.T) {
	ints := make([]uint32, CommonSize)
	for i := range ints {
		ints[i] = uint32(i)
	}
	tones, err := TonesFromList(ints)
	require.NoError(t, err)
	assert.Equal(t, ints, tones.AsList())

	for i, tone := range CommonTones {
		assert.Equal(t, uint32(i), mustTone(t, tones, tone))
	}
}

func TestFromListInvalidTone(t *testing.T) {
	ints := make([]uint32, CommonSize)
	tones, err := TonesFromList(ints)
	require.NoError(t, err)

	_, err = tones.Tone(3)
	var toneErr *ToneError
	require.ErrorAs(t, err, &toneErr)
	assert.Equal(t, 3, toneErr.Tone)
}

func TestFromListWrongSize(t *testing.T) {
	_, err := TonesFromList([]uint32{1, 2, 3})
	assert.Error(t, err)
}

func TestToneCaching(t *testing.T) {
	tones := TonesFromARGB(0xff0000ff)
	a := mustTone(t, tones, 40)
	b := mustTone(t, tones, 40)
	assert.Equal(t, a, b)
}
