package board

import "github.com/arcanaland/patience/internal/card"

// RunFunc reports whether upper may rest directly on lower inside a run
// that is moved as a group.
type RunFunc[R card.Rank, S card.Suit] func(lower, upper card.Card[R, S]) bool

// Rules carries the variant-specific legality a board enforces.
type Rules[R card.Rank, S card.Suit] struct {
	// Run is the adjacency predicate for Stack moves. Nil means DescendingByOne.
	Run RunFunc[R, S]
}

// DescendingByOne accepts upper when its ordinal is exactly one less than lower's.
func DescendingByOne[R card.Rank, S card.Suit](lower, upper card.Card[R, S]) bool {
	return upper.Rank.Ordinal() == lower.Rank.Ordinal()-1
}

// AnyRun accepts every pair. Useful for variants that move arbitrary piles.
func AnyRun[R card.Rank, S card.Suit](lower, upper card.Card[R, S]) bool {
	return true
}

func (r Rules[R, S]) run() RunFunc[R, S] {
	if r.Run == nil {
		return DescendingByOne[R, S]
	}
	return r.Run
}

// IsRun reports whether every adjacent pair in cards satisfies the run predicate.
// Empty and single-card sequences are runs.
func (r Rules[R, S]) IsRun(cards []card.Card[R, S]) bool {
	adjacent := r.run()
	for i := 1; i < len(cards); i++ {
		if !adjacent(cards[i-1], cards[i]) {
			return false
		}
	}
	return true
}
