// Copyright (c) 2026, Seedtone Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package matcolor

// Accent contains the four standard variations of a base accent color.
type Accent struct {

	// Base is the base color
	Base uint32

	// On is the color applied to content on top of [Accent.Base]
	On uint32

	// Container is the color applied to elements with less emphasis than [Accent.Base]
	Container uint32

	// OnContainer is the color applied to content on top of [Accent.Container]
	OnContainer uint32
}

// NewAccentLight returns a new light theme [Accent] from the given [Tones]
func NewAccentLight(tones *Tones) Accent {
	return Accent{
		Base:        tones.MustTone(40),
		On:          tones.MustTone(100),
		Container:   tones.MustTone(90),
		OnContainer: tones.MustTone(10),
	}
}

// NewAccentDark returns a new dark theme [Accent] from the given [Tones]
func NewAccentDark(tones *Tones) Accent {
	return Accent{
		Base:        tones.MustTone(80),
		On:          tones.MustTone(20),
		Container:   tones.MustTone(30),
		OnContainer: tones.MustTone(90),
	}
}
