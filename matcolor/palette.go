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

package matcolor

import (
	"fmt"

	"github.com/seedtone/seedtone/cam/hct"
)

// Key contains the key colors that generate a [Palette].
type Key struct {

	// Primary is the primary key color
	Primary uint32

	// Secondary is the secondary key color
	Secondary uint32

	// Tertiary is the tertiary key color
	Tertiary uint32

	// Error is the error key color
	Error uint32

	// Neutral is the neutral key color
	Neutral uint32

	// NeutralVariant is the neutral variant key color
	NeutralVariant uint32
}

// KeyFromPrimary returns the [Key] derived from the given primary
// seed color: all other key colors share the primary's hue, except
// tertiary which is rotated 60 degrees, and error which is fixed,
// and all vary in chroma.
func KeyFromPrimary(primary uint32) *Key {
	h := hct.FromARGB(primary)
	return &Key{
		Primary:        primary,
		Secondary:      hct.New(h.Hue, 16, h.Tone).ARGB(),
		Tertiary:       hct.New(h.Hue+60, 24, h.Tone).ARGB(),
		Error:          hct.New(25, 84, h.Tone).ARGB(),
		Neutral:        hct.New(h.Hue, 4, h.Tone).ARGB(),
		NeutralVariant: hct.New(h.Hue, 8, h.Tone).ARGB(),
	}
}

// Palette is an intermediate concept between the key colors for a UI
// theme and a full color [Scheme]: one [Tones] per key color.
type Palette struct {

	// Primary is the primary tones
	Primary *Tones

	// Secondary is the secondary tones
	Secondary *Tones

	// Tertiary is the tertiary tones
	Tertiary *Tones

	// Error is the error tones
	Error *Tones

	// Neutral is the neutral tones
	Neutral *Tones

	// NeutralVariant is the neutral variant tones
	NeutralVariant *Tones
}

// NewPalette returns the [Palette] for the given [Key].
func NewPalette(key *Key) *Palette {
	return &Palette{
		Primary:        TonesFromARGB(key.Primary),
		Secondary:      TonesFromARGB(key.Secondary),
		Tertiary:       TonesFromARGB(key.Tertiary),
		Error:          TonesFromARGB(key.Error),
		Neutral:        TonesFromARGB(key.Neutral),
		NeutralVariant: TonesFromARGB(key.NeutralVariant),
	}
}

// PaletteFromARGB returns the [Palette] generated directly from a
// single seed color: primary keeps the seed hue at a chroma of at
// least 48, and the other palettes vary in chroma around the seed
// hue, except error which is fixed.
func PaletteFromARGB(argb uint32) *Palette {
	h := hct.FromARGB(argb)
	return &Palette{
		Primary:        TonesOf(h.Hue, max(48, h.Chroma)),
		Secondary:      TonesOf(h.Hue, 16),
		Tertiary:       TonesOf(h.Hue+60, 24),
		Error:          TonesOf(25, 84),
		Neutral:        TonesOf(h.Hue, 4),
		NeutralVariant: TonesOf(h.Hue, 8),
	}
}

// PaletteSize is the number of tonal palettes serialized by
// [Palette.AsList]: primary, secondary, tertiary, neutral, and
// neutral variant. The error palette is fixed and not serialized.
const PaletteSize = 5

// PaletteFromList returns the [Palette] backed by the given list of
// [PaletteSize] concatenated tonal palettes, each with one color per
// entry of [CommonTones] in order. It is the inverse of
// [Palette.AsList]. The error palette is the fixed one.
func PaletteFromList(colors []uint32) (*Palette, error) {
	if len(colors) != PaletteSize*CommonSize {
		return nil, fmt.Errorf("matcolor: PaletteFromList needs %d colors, got %d", PaletteSize*CommonSize, len(colors))
	}
	parts := make([]*Tones, PaletteSize)
	for i := range parts {
		t, err := TonesFromList(colors[i*CommonSize : (i+1)*CommonSize])
		if err != nil {
			return nil, err
		}
		parts[i] = t
	}
	return &Palette{
		Primary:        parts[0],
		Secondary:      parts[1],
		Tertiary:       parts[2],
		Neutral:        parts[3],
		NeutralVariant: parts[4],
		Error:          TonesOf(25, 84),
	}, nil
}

// AsList returns the [PaletteSize] serialized tonal palettes as a
// single list of [CommonTones] colors each, in order. It is the
// inverse of [PaletteFromList].
func (p *Palette) AsList() []uint32 {
	list := make([]uint32, 0, PaletteSize*CommonSize)
	for _, tones := range []*Tones{p.Primary, p.Secondary, p.Tertiary, p.Neutral, p.NeutralVariant} {
		list = append(list, tones.AsList()...)
	}
	return list
}
