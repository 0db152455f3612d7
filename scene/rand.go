package scene

// DefaultSeed is the seed used by the procedural test scenes.
const DefaultSeed uint32 = 0x12345678

// Rand is a 32-bit xorshift generator. The shift triple (13, 17, 5) and the
// float scale are fixed; changing either changes every generated scene.
type Rand struct {
	state uint32
}

func NewRand(seed uint32) *Rand {
	return &Rand{state: seed}
}

func (r *Rand) Uint32() uint32 {
	r.state ^= r.state << 13
	r.state ^= r.state >> 17
	r.state ^= r.state << 5
	return r.state
}

// Float32 returns a value in [0, 1]. The float32 conversion rounds the
// topmost 128 uint32 values up to 2^32, so 1 itself can be returned.
func (r *Rand) Float32() float32 {
	return float32(r.Uint32()) * 2.3283064365387e-10
}
