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

// Scheme contains the colors for one color scheme (light or dark).
type Scheme struct {

	// Primary is the primary accent
	Primary Accent

	// Secondary is the secondary accent
	Secondary Accent

	// Tertiary is the tertiary accent
	Tertiary Accent

	// Error is the error accent
	Error Accent

	// Background is the color applied to the background of the app
	Background uint32

	// OnBackground is the color applied to content on top of [Scheme.Background]
	OnBackground uint32

	// Surface is the color applied to surfaces
	Surface uint32

	// OnSurface is the color applied to content on top of [Scheme.Surface]
	OnSurface uint32

	// SurfaceVariant is the color applied to alternative surfaces
	SurfaceVariant uint32

	// OnSurfaceVariant is the color applied to content on top of [Scheme.SurfaceVariant]
	OnSurfaceVariant uint32

	// InverseSurface is the color applied to surfaces that contrast with the theme
	InverseSurface uint32

	// OnInverseSurface is the color applied to content on top of [Scheme.InverseSurface]
	OnInverseSurface uint32

	// InversePrimary is the primary base color in the opposite scheme
	InversePrimary uint32

	// Outline is the color applied to borders
	Outline uint32

	// OutlineVariant is the color applied to decorative borders
	OutlineVariant uint32

	// Shadow is the color applied to shadows
	Shadow uint32

	// Scrim is the color applied to scrims behind modal content
	Scrim uint32
}

// NewLightScheme returns the light [Scheme] for the given [Palette].
func NewLightScheme(p *Palette) Scheme {
	return Scheme{
		Primary:   NewAccentLight(p.Primary),
		Secondary: NewAccentLight(p.Secondary),
		Tertiary:  NewAccentLight(p.Tertiary),
		Error:     NewAccentLight(p.Error),

		Background:       p.Neutral.MustTone(99),
		OnBackground:     p.Neutral.MustTone(10),
		Surface:          p.Neutral.MustTone(99),
		OnSurface:        p.Neutral.MustTone(10),
		SurfaceVariant:   p.NeutralVariant.MustTone(90),
		OnSurfaceVariant: p.NeutralVariant.MustTone(30),
		InverseSurface:   p.Neutral.MustTone(20),
		OnInverseSurface: p.Neutral.MustTone(95),
		InversePrimary:   p.Primary.MustTone(80),
		Outline:          p.NeutralVariant.MustTone(50),
		OutlineVariant:   p.NeutralVariant.MustTone(80),
		Shadow:           p.Neutral.MustTone(0),
		Scrim:            p.Neutral.MustTone(0),
	}
}

// NewDarkScheme returns the dark [Scheme] for the given [Palette].
func NewDarkScheme(p *Palette) Scheme {
	return Scheme{
		Primary:   NewAccentDark(p.Primary),
		Secondary: NewAccentDark(p.Secondary),
		Tertiary:  NewAccentDark(p.Tertiary),
		Error:     NewAccentDark(p.Error),

		Background:       p.Neutral.MustTone(10),
		OnBackground:     p.Neutral.MustTone(90),
		Surface:          p.Neutral.MustTone(10),
		OnSurface:        p.Neutral.MustTone(90),
		SurfaceVariant:   p.NeutralVariant.MustTone(30),
		OnSurfaceVariant: p.NeutralVariant.MustTone(80),
		InverseSurface:   p.Neutral.MustTone(90),
		OnInverseSurface: p.Neutral.MustTone(20),
		InversePrimary:   p.Primary.MustTone(40),
		Outline:          p.NeutralVariant.MustTone(60),
		OutlineVariant:   p.NeutralVariant.MustTone(30),
		Shadow:           p.Neutral.MustTone(0),
		Scrim:            p.Neutral.MustTone(0),
	}
}
