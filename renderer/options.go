package renderer

import "runtime"

type Options struct {
	// Frame dimensions in pixels.
	FrameW int
	FrameH int

	// Number of goroutines rendering rows. Zero means one per CPU.
	Workers int
}

func (o Options) workers() int {
	if o.Workers > 0 {
		return o.Workers
	}
	return runtime.NumCPU()
}
