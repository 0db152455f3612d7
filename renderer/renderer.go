package renderer

import (
	"image"
	"image/color"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/maidamai0/bvh/scene"
	"github.com/maidamai0/bvh/tracer"
)

// Surface is anything a primary ray can be traced against: a built BVH or
// the brute-force reference.
type Surface interface {
	Intersect(*tracer.Ray)
}

// BruteForce tests a ray against every triangle in turn. It is the ground
// truth the acceleration structure is measured against.
type BruteForce []scene.Triangle

func (s BruteForce) Intersect(r *tracer.Ray) {
	for i := range s {
		tracer.IntersectTriangle(&s[i], r)
	}
}

type FrameStats struct {
	Rays       int
	Hits       int
	RenderTime time.Duration
}

// Render traces one primary ray per pixel and depth-shades the hits.
// Rows are fanned out over the worker pool.
func Render(s Surface, cam Camera, opts Options) (*image.RGBA, FrameStats, error) {
	start := time.Now()
	img := image.NewRGBA(image.Rect(0, 0, opts.FrameW, opts.FrameH))
	rowHits := make([]int, opts.FrameH)

	var group errgroup.Group
	group.SetLimit(opts.workers())
	for y := 0; y < opts.FrameH; y++ {
		y := y
		group.Go(func() error {
			for x := 0; x < opts.FrameW; x++ {
				u := float32(x) / float32(opts.FrameW)
				v := float32(y) / float32(opts.FrameH)
				r := cam.Ray(u, v)
				s.Intersect(&r)
				if r.Hit() {
					rowHits[y]++
					img.SetRGBA(x, y, shade(r.T))
				}
			}
			return nil
		})
	}
	if err := group.Wait(); err != nil {
		return nil, FrameStats{}, err
	}

	stats := FrameStats{
		Rays:       opts.FrameW * opts.FrameH,
		RenderTime: time.Since(start),
	}
	for _, h := range rowHits {
		stats.Hits += h
	}
	return img, stats, nil
}

// Grayscale by hit distance: nearer is brighter.
func shade(t float32) color.RGBA {
	v := 500 - int(t*42)
	if v < 0 {
		v = 0
	} else if v > 255 {
		v = 255
	}
	c := uint8(v)
	return color.RGBA{R: c, G: c, B: c, A: 0xff}
}
