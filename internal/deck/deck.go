// Package deck holds the plug-in contract game variants implement to supply
// their cards, plus the seeded shuffle used before dealing.
package deck

import (
	crand "crypto/rand"
	"encoding/binary"
	"fmt"
	"math/rand/v2"

	"github.com/arcanaland/patience/internal/card"
)

// Generator produces the full, fixed card list of one game variant,
// duplicates included.
type Generator[R card.Rank, S card.Suit] interface {
	Generate() []card.Card[R, S]
}

// Shuffle returns a shuffled copy of cards. The same seed always yields the
// same order.
func Shuffle[T any](cards []T, seed uint64) []T {
	out := make([]T, len(cards))
	copy(out, cards)
	r := rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
	r.Shuffle(len(out), func(i, j int) {
		out[i], out[j] = out[j], out[i]
	})
	return out
}

// NewSeed draws a shuffle seed from crypto/rand.
func NewSeed() (uint64, error) {
	var b [8]byte
	if _, err := crand.Read(b[:]); err != nil {
		return 0, fmt.Errorf("read random seed: %w", err)
	}
	return binary.LittleEndian.Uint64(b[:]), nil
}
