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

import (
	"log/slog"
	"math/rand"
)

// wsmeansSeed makes supplemental centroid selection reproducible.
// It must never be replaced by a time-based seed; quantizer output is
// part of the tested contract.
const wsmeansSeed = 0x42688

// WSMeans is a weighted k-means quantizer operating in L*a*b* space.
// It is meant to refine the output of a seeding quantizer such as
// [Wu]; k-means is extremely sensitive to its initial clusters, and
// random centroids tend to end up nowhere near any pixel.
type WSMeans struct {

	// StartingClusters seeds the centroids, typically with Wu output.
	// If fewer seeds than clusters are given, the remainder are drawn
	// from the observed pixel colors.
	StartingClusters []uint32

	// MaxIterations bounds the refinement loop. Zero or negative
	// selects the default of 5.
	MaxIterations int
}

// NewWSMeans returns a WSMeans quantizer seeded with the given
// starting clusters.
func NewWSMeans(startingClusters []uint32) *WSMeans {
	return &WSMeans{StartingClusters: startingClusters}
}

// Quantize clusters the pixels around at most maxColors centroids and
// returns each final centroid color with the population of pixels
// assigned to it. Non-opaque pixels are ignored; if none remain,
// ErrNoPixels is returned.
func (q *WSMeans) Quantize(pixels []uint32, maxColors int) (*Result, error) {
	if maxColors <= 0 {
		return nil, ErrNoColors
	}
	counted := countOpaque(pixels)
	if counted.Len() == 0 {
		return nil, ErrNoPixels
	}

	random := rand.New(rand.NewSource(wsmeansSeed))
	pointCount := counted.Len()
	points := make([]labPoint, pointCount)
	counts := make([]int, pointCount)
	for i, pixel := range counted.Colors() {
		points[i] = labFromARGB(pixel)
		counts[i] = counted.Count(pixel)
	}

	clusterCount := min(maxColors, pointCount)
	clusters := make([]labPoint, 0, clusterCount)
	for _, argb := range q.StartingClusters {
		if len(clusters) == clusterCount {
			break
		}
		clusters = append(clusters, labFromARGB(argb))
	}
	// Supplement with actual observed colors, never synthetic random
	// points, to avoid seeding centroids far from every pixel.
	if additional := clusterCount - len(clusters); additional > 0 {
		used := map[int]bool{}
		for n := 0; n < additional; n++ {
			idx := random.Intn(pointCount)
			for used[idx] {
				idx = random.Intn(pointCount)
			}
			used[idx] = true
			clusters = append(clusters, points[idx])
		}
	}
	slog.Debug("wsmeans seeded", "clusters", len(clusters), "points", pointCount)

	clusterIndices := make([]int, pointCount)
	for i := range clusterIndices {
		clusterIndices[i] = i % clusterCount
	}

	maxIterations := q.MaxIterations
	if maxIterations <= 0 {
		maxIterations = 5
	}

	clusterDistances := make([][]float64, clusterCount)
	for i := range clusterDistances {
		clusterDistances[i] = make([]float64, clusterCount)
	}
	pixelCountSums := make([]int, clusterCount)

	for iteration := 0; iteration < maxIterations; iteration++ {
		for i := 0; i < clusterCount; i++ {
			for j := i + 1; j < clusterCount; j++ {
				d := clusters[i].distance(clusters[j])
				clusterDistances[i][j] = d
				clusterDistances[j][i] = d
			}
		}

		pointsMoved := 0
		for i := 0; i < pointCount; i++ {
			point := points[i]
			previousIndex := clusterIndices[i]
			previousDistance := point.distance(clusters[previousIndex])
			minimumDistance := previousDistance
			newIndex := -1
			for j := 0; j < clusterCount; j++ {
				// Triangle inequality pruning: a centroid more than
				// twice as far from the current centroid as the point
				// is cannot be closer to the point.
				if clusterDistances[previousIndex][j] >= 4*previousDistance {
					continue
				}
				if d := point.distance(clusters[j]); d < minimumDistance {
					minimumDistance = d
					newIndex = j
				}
			}
			if newIndex != -1 {
				pointsMoved++
				clusterIndices[i] = newIndex
			}
		}

		if pointsMoved == 0 && iteration > 0 {
			slog.Debug("wsmeans converged", "iterations", iteration)
			break
		}
		slog.Debug("wsmeans iteration", "iteration", iteration+1, "moved", pointsMoved)

		componentASums := make([]float64, clusterCount)
		componentBSums := make([]float64, clusterCount)
		componentCSums := make([]float64, clusterCount)
		for i := range pixelCountSums {
			pixelCountSums[i] = 0
		}
		for i := 0; i < pointCount; i++ {
			clusterIndex := clusterIndices[i]
			point := points[i]
			count := counts[i]
			pixelCountSums[clusterIndex] += count
			componentASums[clusterIndex] += point[0] * float64(count)
			componentBSums[clusterIndex] += point[1] * float64(count)
			componentCSums[clusterIndex] += point[2] * float64(count)
		}
		for i := 0; i < clusterCount; i++ {
			count := pixelCountSums[i]
			if count == 0 {
				clusters[i] = labPoint{}
				continue
			}
			clusters[i] = labPoint{
				componentASums[i] / float64(count),
				componentBSums[i] / float64(count),
				componentCSums[i] / float64(count),
			}
		}
	}

	// Centroids that round-trip to the same ARGB merge into one entry;
	// empty clusters are dropped.
	result := newResult()
	for i := 0; i < clusterCount; i++ {
		count := pixelCountSums[i]
		if count == 0 {
			continue
		}
		result.add(clusters[i].toARGB(), count)
	}
	slog.Debug("wsmeans finished", "generated", result.Len(), "requested", clusterCount)
	return result, nil
}
