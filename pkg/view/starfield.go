package view

import (
	"image/color"
	"math/rand"
)

type Star struct {
	X, Y  int
	Size  int
	Color color.RGBA
}

// GenerateStars scatters up to n stars over a w×h area. Duplicate positions
// are skipped, so fewer than n may come back. Most stars are 1px, about one
// in five is 2px, and each gets a small brightness jitter around base.
func GenerateStars(rng *rand.Rand, w, h, n int, base color.RGBA) []Star {
	if w <= 0 || h <= 0 || n <= 0 {
		return nil
	}

	seen := make(map[[2]int]struct{}, n)
	stars := make([]Star, 0, n)
	for i := 0; i < n; i++ {
		x, y := rng.Intn(w), rng.Intn(h)
		if _, dup := seen[[2]int{x, y}]; dup {
			continue
		}
		seen[[2]int{x, y}] = struct{}{}

		size := 1
		if rng.Float64() >= 0.8 {
			size = 2
		}
		j := rng.Intn(61) - 30
		stars = append(stars, Star{
			X:    x,
			Y:    y,
			Size: size,
			Color: color.RGBA{
				R: jitter(base.R, j),
				G: jitter(base.G, j),
				B: jitter(base.B, j),
				A: 255,
			},
		})
	}
	return stars
}

func jitter(c uint8, d int) uint8 {
	v := int(c) + d
	if v < 0 {
		return 0
	}
	if v > 255 {
		return 255
	}
	return uint8(v)
}
