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

// Package matcolor generates Material Design 3 color palettes and
// schemes from a seed color: tonal palettes constant in hue and
// chroma, key color sets, accent groups, and full light and dark
// schemes.
package matcolor

import (
	"fmt"

	"github.com/seedtone/seedtone/cam/hct"
)

// CommonTones are the commonly used tone values, the closed key set
// of a list-backed [Tones].
var CommonTones = []int{0, 10, 20, 30, 40, 50, 60, 70, 80, 90, 95, 99, 100}

// CommonSize is the number of [CommonTones].
const CommonSize = 13

// ToneError is returned when a list-backed [Tones] is asked for a
// tone that is not one of [CommonTones].
type ToneError struct {
	Tone int
}

func (e *ToneError) Error() string {
	return fmt.Sprintf("matcolor: invalid tone %d: a Tones created with TonesFromList only has tones %v", e.Tone, CommonTones)
}

// Tones retrieves colors that are constant in hue and chroma but
// vary in tone. It can be created two ways:
//  1. [TonesOf], from a hue and chroma (preferred).
//  2. [TonesFromList], from a fixed-size list of ARGB colors; then
//     [Tones.Tone] only returns the inputs for [CommonTones].
//
// Generated tones are cached.
type Tones struct {

	// the HCT hue shared by every tone
	Hue float64

	// the HCT chroma shared by every tone
	Chroma float64

	// the fixed tone list; nil unless created by TonesFromList
	fixed map[int]uint32

	cache map[int]uint32
}

// TonesOf returns the [Tones] with the given hue and chroma.
func TonesOf(hue, chroma float64) *Tones {
	return &Tones{Hue: hue, Chroma: chroma, cache: map[int]uint32{}}
}

// TonesFromARGB returns the [Tones] with the HCT hue and chroma of
// the given ARGB color.
func TonesFromARGB(argb uint32) *Tones {
	h := hct.FromARGB(argb)
	return TonesOf(h.Hue, h.Chroma)
}

// TonesFromList returns the [Tones] backed by the given fixed-size
// list of ARGB colors, one per entry of [CommonTones] in order.
// Constant hue and chroma of the input is not enforced.
func TonesFromList(colors []uint32) (*Tones, error) {
	if len(colors) != CommonSize {
		return nil, fmt.Errorf("matcolor: TonesFromList needs %d colors, got %d", CommonSize, len(colors))
	}
	fixed := make(map[int]uint32, CommonSize)
	for i, tone := range CommonTones {
		fixed[tone] = colors[i]
	}
	return &Tones{fixed: fixed, cache: map[int]uint32{}}, nil
}

// Tone returns the ARGB color at the given tone (0 to 100). For a
// list-backed Tones the tone must be one of [CommonTones]; otherwise
// a [ToneError] is returned.
func (t *Tones) Tone(tone int) (uint32, error) {
	if t.fixed != nil {
		c, ok := t.fixed[tone]
		if !ok {
			return 0, &ToneError{Tone: tone}
		}
		return c, nil
	}
	if c, ok := t.cache[tone]; ok {
		return c, nil
	}
	chroma := t.Chroma
	// Chroma is capped at 40 for tones 90 and above.
	if tone >= 90 {
		chroma = min(chroma, 40)
	}
	c := hct.New(t.Hue, chroma, float64(tone)).ARGB()
	t.cache[tone] = c
	return c, nil
}

// MustTone is [Tones.Tone] but panics on error. It is safe for any
// Tones created by [TonesOf] or [TonesFromARGB], which have every
// tone.
func (t *Tones) MustTone(tone int) uint32 {
	c, err := t.Tone(tone)
	if err != nil {
		panic(err)
	}
	return c
}

// AsList returns the ARGB colors for all of [CommonTones], in order.
func (t *Tones) AsList() []uint32 {
	list := make([]uint32, CommonSize)
	for i, tone := range CommonTones {
		list[i] = t.MustTone(tone)
	}
	return list
}
