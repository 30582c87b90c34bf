package runner

import "math/rand"

// newOfferSource returns a seeded source for shop sampling, separate from the
// track RNG so buying does not change the layout.
func newOfferSource(seed int64) RandomSource {
	return rand.New(rand.NewSource(seed ^ 0x5eed))
}
