// Copyright (c) 2026, Seedtone Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package score

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

const (
	red   = 0xffff0000
	green = 0xff00ff00
	blue  = 0xff0000ff
	black = 0xff000000
)

func TestPrioritizesChromaWhenProportionsEqual(t *testing.T) {
	ranked := Ranked(map[uint32]int{red: 1, green: 1, blue: 1})
	assert.Equal(t, []uint32{red, green, blue}, ranked)
}

func TestFallbackWhenNoColorsAvailable(t *testing.T) {
	ranked := Ranked(map[uint32]int{black: 1})
	assert.Equal(t, []uint32{GoogleBlue}, ranked)
}

func TestDedupesNearbyHues(t *testing.T) {
	ranked := Ranked(map[uint32]int{0xff008772: 1, 0xff318477: 1})
	assert.Equal(t, []uint32{0xff008772}, ranked)
}

func TestMaximizesHueDistance(t *testing.T) {
	input := map[uint32]int{
		0xff008772: 1,
		0xff008587: 1,
		0xff007ebc: 1,
	}
	ranked := RankedWith(input, Options{Desired: 2, Filter: true})
	assert.Equal(t, []uint32{0xff007ebc, 0xff008772}, ranked)
}

func TestDesiredCountLimits(t *testing.T) {
	input := map[uint32]int{
		0xffff0000: 1,
		0xffffff00: 1,
		0xff00ff00: 1,
		0xff00ffff: 1,
		0xff0000ff: 1,
		0xffff00ff: 1,
	}
	ranked := Ranked(input)
	assert.LessOrEqual(t, len(ranked), 4)

	two := RankedWith(input, Options{Desired: 2, Filter: true})
	assert.Len(t, two, 2)
}

func TestTinyPopulationFilteredByExcitedProportion(t *testing.T) {
	// Blue's share of the hue mass is 1/101, below the 1% cutoff.
	ranked := Ranked(map[uint32]int{red: 100, blue: 1})
	assert.Equal(t, []uint32{red}, ranked)
}

func TestDarkToneFiltered(t *testing.T) {
	ranked := Ranked(map[uint32]int{0xff000020: 1})
	assert.Equal(t, []uint32{GoogleBlue}, ranked)
}

func TestFilterDisabled(t *testing.T) {
	ranked := RankedWith(map[uint32]int{black: 1}, Options{Filter: false})
	assert.Equal(t, []uint32{black}, ranked)
}

func TestCustomFallback(t *testing.T) {
	ranked := RankedWith(map[uint32]int{black: 1}, Options{Filter: true, Fallback: red})
	assert.Equal(t, []uint32{red}, ranked)
}
