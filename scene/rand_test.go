package scene

import (
	"math"
	"testing"
)

func TestRandSequence(t *testing.T) {
	rnd := NewRand(DefaultSeed)

	expUints := []uint32{0x87985aa5, 0x155b24a3, 0x4820f4c4}
	for index, exp := range expUints {
		if got := rnd.Uint32(); got != exp {
			t.Fatalf("[value %d] expected %#08x; got %#08x", index, exp, got)
		}
	}
}

func TestRandFloat32(t *testing.T) {
	rnd := NewRand(DefaultSeed)

	expFloats := []float32{0.5296685, 0.08342198, 0.28175288}
	for index, exp := range expFloats {
		got := rnd.Float32()
		if math.Abs(float64(got-exp)) > 1e-6 {
			t.Fatalf("[value %d] expected %f; got %f", index, exp, got)
		}
	}
}

func TestRandRange(t *testing.T) {
	rnd := NewRand(1)
	for i := 0; i < 10000; i++ {
		v := rnd.Float32()
		if v < 0 || v > 1 {
			t.Fatalf("expected value in [0, 1]; got %f after %d draws", v, i)
		}
	}
}
