package engine

import "fmt"

// Stats is a freshly rolled (hp, atk) pair.
type Stats struct {
	HP  int
	ATK int
}

// GenerateStats rolls hp and atk independently and uniformly within the
// rarity's configured range. When min == max the result is that constant.
func GenerateStats(r Rarity, rng RandomSource) (Stats, error) {
	sr, err := StatRangeFor(r)
	if err != nil {
		return Stats{}, err
	}
	return Stats{
		HP:  randInt(sr.Min, sr.Max, rng),
		ATK: randInt(sr.Min, sr.Max, rng),
	}, nil
}

// randInt draws uniformly from the closed interval [min, max].
func randInt(min, max int, rng RandomSource) int {
	if max <= min {
		return min
	}
	return min + rng.IntN(max-min+1)
}

// NewSeed mints a cosmetic seed for card art. The seed is gameplay-inert:
// the same seed always renders the same pixel art.
func NewSeed(rng RandomSource) string {
	return fmt.Sprintf("%08x%08x", rng.IntN(1<<31), rng.IntN(1<<31))
}
