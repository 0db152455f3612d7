package scene

import "github.com/maidamai0/bvh/types"

// Generate creates count random triangles. Each triangle has its first
// vertex in [-5, 4]^3 and edge vectors in [0, 1]^3.
func Generate(count int, seed uint32) []Triangle {
	rnd := NewRand(seed)
	randVec := func() types.Vec3 {
		return types.Vec3{rnd.Float32(), rnd.Float32(), rnd.Float32()}
	}

	triangles := make([]Triangle, count)
	for i := range triangles {
		r0 := randVec()
		r1 := randVec()
		r2 := randVec()

		v0 := r0.Mul(9).Sub(types.Vec3{5, 5, 5})
		triangles[i] = Triangle{
			V0: v0,
			V1: v0.Add(r1),
			V2: v0.Add(r2),
		}
	}

	return triangles
}
