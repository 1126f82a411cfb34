// Copyright (c) 2026, Seedtone Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Seedtone suggests Material Design 3 seed colors for an image and
// prints the color scheme generated from the best one.
//
// Usage:
//
//	seedtone [flags] image.png
//
// The image is downscaled, quantized to a palette with populations,
// and the palette is ranked by theme suitability. Swatches are
// rendered with the terminal's color support.
package main

import (
	"flag"
	"fmt"
	"image"
	_ "image/jpeg"
	_ "image/png"
	"log/slog"
	"os"

	"github.com/anthonynsimon/bild/transform"
	"github.com/muesli/termenv"

	"github.com/seedtone/seedtone/cam/hct"
	"github.com/seedtone/seedtone/matcolor"
	"github.com/seedtone/seedtone/quantize"
	"github.com/seedtone/seedtone/score"
)

func main() {
	maxColors := flag.Int("colors", 128, "maximum number of quantized colors")
	desired := flag.Int("desired", 4, "number of seed colors to suggest")
	maxSide := flag.Int("resize", 112, "longest image side used for quantization")
	dark := flag.Bool("dark", false, "print the dark scheme instead of the light one")
	verbose := flag.Bool("v", false, "enable debug logging")
	flag.Parse()

	if *verbose {
		slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelDebug})))
	}
	if flag.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "usage: seedtone [flags] image")
		flag.PrintDefaults()
		os.Exit(2)
	}

	if err := run(flag.Arg(0), *maxColors, *desired, *maxSide, *dark); err != nil {
		slog.Error("seedtone failed", "err", err)
		os.Exit(1)
	}
}

func run(path string, maxColors, desired, maxSide int, dark bool) error {
	f, err := os.Open(path)
	if err != nil {
		return err
	}
	defer f.Close()

	img, _, err := image.Decode(f)
	if err != nil {
		return fmt.Errorf("decoding %s: %w", path, err)
	}
	img = shrink(img, maxSide)

	result, err := quantize.Quantize(pixels(img), maxColors)
	if err != nil {
		return err
	}
	ranked := score.RankedWith(result.ColorToCount(), score.Options{
		Desired:  desired,
		Fallback: score.GoogleBlue,
		Filter:   true,
	})

	out := termenv.NewOutput(os.Stdout)
	fmt.Fprintln(out, "suggested seed colors:")
	for _, argb := range ranked {
		h := hct.FromARGB(argb)
		fmt.Fprintf(out, "  %s #%06x  hue %5.1f  chroma %5.1f  tone %5.1f  population %d\n",
			swatch(out, argb), argb&0xffffff, h.Hue, h.Chroma, h.Tone, result.Count(argb))
	}

	schemes := matcolor.SchemesFromARGB(ranked[0])
	scheme := schemes.Light
	name := "light"
	if dark {
		scheme = schemes.Dark
		name = "dark"
	}
	fmt.Fprintf(out, "\n%s scheme from #%06x:\n", name, ranked[0]&0xffffff)
	printAccent(out, "primary", scheme.Primary)
	printAccent(out, "secondary", scheme.Secondary)
	printAccent(out, "tertiary", scheme.Tertiary)
	printAccent(out, "error", scheme.Error)
	printRole(out, "background", scheme.Background)
	printRole(out, "surface variant", scheme.SurfaceVariant)
	printRole(out, "outline", scheme.Outline)
	return nil
}

// shrink bounds the longest side of the image to maxSide, preserving
// aspect ratio.
func shrink(img image.Image, maxSide int) image.Image {
	b := img.Bounds()
	w, h := b.Dx(), b.Dy()
	if w <= maxSide && h <= maxSide {
		return img
	}
	if w > h {
		h = h * maxSide / w
		w = maxSide
	} else {
		w = w * maxSide / h
		h = maxSide
	}
	return transform.Resize(img, max(w, 1), max(h, 1), transform.Linear)
}

// pixels flattens the image to packed ARGB values.
func pixels(img image.Image) []uint32 {
	b := img.Bounds()
	out := make([]uint32, 0, b.Dx()*b.Dy())
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			r, g, bl, a := img.At(x, y).RGBA()
			out = append(out, (a>>8)<<24|(r>>8)<<16|(g>>8)<<8|bl>>8)
		}
	}
	return out
}

func swatch(out *termenv.Output, argb uint32) string {
	hex := fmt.Sprintf("#%06x", argb&0xffffff)
	return out.String("      ").Background(termenv.RGBColor(hex)).String()
}

func printAccent(out *termenv.Output, name string, a matcolor.Accent) {
	fmt.Fprintf(out, "  %-16s %s #%06x  on #%06x  container #%06x  on container #%06x\n",
		name, swatch(out, a.Base), a.Base&0xffffff, a.On&0xffffff, a.Container&0xffffff, a.OnContainer&0xffffff)
}

func printRole(out *termenv.Output, name string, argb uint32) {
	fmt.Fprintf(out, "  %-16s %s #%06x\n", name, swatch(out, argb), argb&0xffffff)
}
