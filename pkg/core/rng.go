package core

// Default xorshift128+ state used when no seed is supplied
const (
	defaultSeed0 uint64 = 0x4587ba0ead01370f
	defaultSeed1 uint64 = 0xdd817882dc98c4aa
)

// Rng is a xorshift128+ pseudo random generator.
// It is not safe for concurrent use; every worker owns its own Rng.
type Rng struct {
	s0, s1 uint64
}

// NewRng creates a generator with the fixed default state
func NewRng() *Rng {
	return &Rng{s0: defaultSeed0, s1: defaultSeed1}
}

// NewSeededRng creates a generator with the given state words.
// The state must not be all zero, otherwise the generator only yields zeros.
func NewSeededRng(s0, s1 uint64) *Rng {
	return &Rng{s0: s0, s1: s1}
}

// Reseed replaces both state words
func (r *Rng) Reseed(s0, s1 uint64) {
	r.s0 = s0
	r.s1 = s1
}

// State returns the current state words
func (r *Rng) State() (uint64, uint64) {
	return r.s0, r.s1
}

// Uint64 returns the next raw 64-bit value
func (r *Rng) Uint64() uint64 {
	s1 := r.s0
	s0 := r.s1
	r.s0 = s0
	s1 ^= s1 << 23
	r.s1 = s1 ^ s0 ^ (s1 >> 17) ^ (s0 >> 26)
	return r.s1 + s0
}

// Uint32 returns the low 32 bits of the next raw value
func (r *Rng) Uint32() uint32 {
	return uint32(r.Uint64())
}

// Float64 returns a uniform value in [0, 1) built from the top 53 bits
func (r *Rng) Float64() float64 {
	return float64(r.Uint64()>>11) * (1.0 / (1 << 53))
}

// Get1D returns a uniform value in [0, 1)
func (r *Rng) Get1D() float64 {
	return r.Float64()
}

// Get2D returns two uniform values in [0, 1)
func (r *Rng) Get2D() Vec2 {
	x := r.Float64()
	y := r.Float64()
	return NewVec2(x, y)
}

// Get3D returns three uniform values in [0, 1)
func (r *Rng) Get3D() Vec3 {
	x := r.Float64()
	y := r.Float64()
	z := r.Float64()
	return NewVec3(x, y, z)
}
