package transaction

import (
	"fmt"
	"math/rand"
	"time"
)

// RefGenerator produces transfer reference numbers of the form
// "TRX" + UTC timestamp (yyyyMMddHHmmss) + a 4-digit random suffix.
// Clock and randomness are injected so tests stay deterministic.
type RefGenerator struct {
	now  func() time.Time
	rand *rand.Rand
}

// NewRefGenerator creates a RefGenerator with the given clock and random
// source. A nil clock uses time.Now.
func NewRefGenerator(now func() time.Time, r *rand.Rand) *RefGenerator {
	if now == nil {
		now = time.Now
	}
	if r == nil {
		r = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	return &RefGenerator{now: now, rand: r}
}

// Next returns the next reference number.
func (g *RefGenerator) Next() string {
	return fmt.Sprintf("TRX%s%04d", g.now().UTC().Format("20060102150405"), g.rand.Intn(10000))
}
