// Copyright (c) 2026, Seedtone Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package matcolor

// Schemes contains the light and dark color schemes generated from
// one palette.
type Schemes struct {
	Light Scheme
	Dark  Scheme
}

// NewSchemes returns the [Schemes] for the given [Palette].
func NewSchemes(p *Palette) *Schemes {
	return &Schemes{
		Light: NewLightScheme(p),
		Dark:  NewDarkScheme(p),
	}
}

// SchemesFromARGB returns the light and dark [Schemes] generated
// from a single seed color, typically the top ranked color from
// score.Ranked over a quantized image.
func SchemesFromARGB(argb uint32) *Schemes {
	return NewSchemes(PaletteFromARGB(argb))
}
