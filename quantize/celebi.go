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

package quantize

// Celebi is the composite quantizer from Celebi's 2011 survey of
// improvements to k-means: Wu produces a well-spread seed palette,
// then WSMeans refines it against the actual pixel populations.
type Celebi struct {
	wu *Wu
}

// NewCelebi returns a ready Celebi quantizer.
func NewCelebi() *Celebi {
	return &Celebi{wu: NewWu()}
}

// Quantize reduces the pixels to at most maxColors colors with
// populations. Non-opaque pixels are ignored; if none remain,
// ErrNoPixels is returned.
func (q *Celebi) Quantize(pixels []uint32, maxColors int) (*Result, error) {
	wuResult, err := q.wu.Quantize(pixels, maxColors)
	if err != nil {
		return nil, err
	}
	wsmeans := NewWSMeans(wuResult.Colors())
	return wsmeans.Quantize(pixels, maxColors)
}
