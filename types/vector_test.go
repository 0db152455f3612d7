package types

import (
	"math"
	"testing"
)

func TestVectorArithmetic(t *testing.T) {
	type spec struct {
		op  string
		got Vec3
		exp Vec3
	}

	a := XYZ(1, 2, 3)
	b := XYZ(4, -5, 6)

	specs := []spec{
		{"add", a.Add(b), Vec3{5, -3, 9}},
		{"sub", a.Sub(b), Vec3{-3, 7, -3}},
		{"mul", a.Mul(2), Vec3{2, 4, 6}},
		{"cross", a.Cross(b), Vec3{27, 6, -13}},
		{"min", MinVec3(a, b), Vec3{1, -5, 3}},
		{"max", MaxVec3(a, b), Vec3{4, 2, 6}},
	}

	for _, s := range specs {
		if s.got != s.exp {
			t.Fatalf("[%s] expected %v; got %v", s.op, s.exp, s.got)
		}
	}
}

func TestDot(t *testing.T) {
	got := XYZ(1, 2, 3).Dot(XYZ(4, -5, 6))
	if got != 12 {
		t.Fatalf("expected dot product 12; got %f", got)
	}
}

func TestNormalize(t *testing.T) {
	v := XYZ(3, 0, 4).Normalize()
	if math.Abs(float64(v.Len()-1)) > 1e-6 {
		t.Fatalf("expected unit length; got %f", v.Len())
	}
	if v[0] != 0.6 || v[2] != 0.8 {
		t.Fatalf("expected (0.6, 0, 0.8); got %v", v)
	}

	zero := Vec3{}.Normalize()
	if zero != (Vec3{}) {
		t.Fatalf("expected zero vector to normalize to itself; got %v", zero)
	}
}

func TestRcp(t *testing.T) {
	v := XYZ(2, -4, 0).Rcp()
	if v[0] != 0.5 || v[1] != -0.25 {
		t.Fatalf("expected (0.5, -0.25, +Inf); got %v", v)
	}
	if !math.IsInf(float64(v[2]), 1) {
		t.Fatalf("expected reciprocal of zero component to be +Inf; got %f", v[2])
	}
}

func TestMaxAxis(t *testing.T) {
	type spec struct {
		v   Vec3
		exp int
	}
	specs := []spec{
		{Vec3{3, 1, 2}, 0},
		{Vec3{1, 3, 2}, 1},
		{Vec3{1, 2, 3}, 2},
		// ties resolve to the first axis
		{Vec3{2, 2, 2}, 0},
	}

	for index, s := range specs {
		if got := s.v.MaxAxis(); got != s.exp {
			t.Fatalf("[spec %d] expected axis %d; got %d", index, s.exp, got)
		}
	}
}
