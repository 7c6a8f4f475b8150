package maze

import (
	"crypto/rand"
	"fmt"
	"math/big"
	mrand "math/rand/v2"
)

// RandomSource draws uniform integers in [0, bound).
type RandomSource interface {
	Intn(bound int) (int, error)
}

// CryptoSource draws from crypto/rand. It cannot be seeded.
type CryptoSource struct{}

// NewCryptoSource returns a RandomSource backed by the operating system CSPRNG.
func NewCryptoSource() *CryptoSource {
	return &CryptoSource{}
}

// Intn implements RandomSource.
func (CryptoSource) Intn(bound int) (int, error) {
	if bound <= 0 {
		return 0, fmt.Errorf("random bound must be positive, got %d", bound)
	}
	n, err := rand.Int(rand.Reader, big.NewInt(int64(bound)))
	if err != nil {
		return 0, fmt.Errorf("%w: %v", ErrExhaustedRandomSource, err)
	}
	return int(n.Int64()), nil
}

// SeededSource is a deterministic PCG generator.
type SeededSource struct {
	r *mrand.Rand
}

// NewSeededSource creates a deterministic RandomSource using the provided seed.
func NewSeededSource(seed uint64) *SeededSource {
	return &SeededSource{r: mrand.New(mrand.NewPCG(seed, 0))}
}

// Intn implements RandomSource.
func (s *SeededSource) Intn(bound int) (int, error) {
	if bound <= 0 {
		return 0, fmt.Errorf("random bound must be positive, got %d", bound)
	}
	return s.r.IntN(bound), nil
}

// ScriptedSource replays a fixed sequence of draws. Each draw is reduced
// modulo the requested bound. Once the script is used up every call fails
// with ErrExhaustedRandomSource.
type ScriptedSource struct {
	draws []int
	next  int
}

// NewScriptedSource returns a RandomSource that replays draws in order.
func NewScriptedSource(draws ...int) *ScriptedSource {
	return &ScriptedSource{draws: draws}
}

// Intn implements RandomSource.
func (s *ScriptedSource) Intn(bound int) (int, error) {
	if bound <= 0 {
		return 0, fmt.Errorf("random bound must be positive, got %d", bound)
	}
	if s.next >= len(s.draws) {
		return 0, fmt.Errorf("%w: script of %d draws used up", ErrExhaustedRandomSource, len(s.draws))
	}
	d := s.draws[s.next] % bound
	if d < 0 {
		d += bound
	}
	s.next++
	return d, nil
}

// Used returns how many draws have been consumed.
func (s *ScriptedSource) Used() int {
	return s.next
}
