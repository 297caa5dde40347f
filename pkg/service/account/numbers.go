package account

import (
	"fmt"
	"math/rand"
	"time"
)

// NumberGenerator produces account numbers and IBAN identifiers from an
// injected random source so tests stay deterministic. The IBAN is treated as
// an opaque identifier and carries no check-digit computation.
type NumberGenerator struct {
	rand *rand.Rand
}

// NewNumberGenerator creates a NumberGenerator. A nil source is seeded from
// the wall clock.
func NewNumberGenerator(r *rand.Rand) *NumberGenerator {
	if r == nil {
		r = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	return &NumberGenerator{rand: r}
}

// AccountNumber returns a 16-digit account number.
func (g *NumberGenerator) AccountNumber() string {
	return fmt.Sprintf("%08d%08d", g.rand.Intn(100000000), g.rand.Intn(100000000))
}

// IBAN returns an IR-prefixed 26-character IBAN-style identifier.
func (g *NumberGenerator) IBAN() string {
	return fmt.Sprintf("IR%012d%012d", g.rand.Int63n(1000000000000), g.rand.Int63n(1000000000000))
}
