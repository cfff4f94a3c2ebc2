package card

import (
	"cmp"
	"fmt"
)

// Rank is the capability set a game variant's rank type must provide.
// The underlying type gives the total order and hashing; Ordinal gives the
// value used for sequential adjacency, which need not follow that order.
type Rank interface {
	cmp.Ordered
	Ordinal() int
}

// Suit is the capability set a game variant's suit type must provide.
type Suit interface {
	cmp.Ordered
}

// Card represents one playing card of a variant. Cards have no identity
// beyond their value, so duplicates in a deck are equal.
type Card[R Rank, S Suit] struct {
	Rank R
	Suit S
}

// New returns the card with the given rank and suit.
func New[R Rank, S Suit](rank R, suit S) Card[R, S] {
	return Card[R, S]{Rank: rank, Suit: suit}
}

// Compare orders cards by rank, then suit.
func (c Card[R, S]) Compare(other Card[R, S]) int {
	if r := cmp.Compare(c.Rank, other.Rank); r != 0 {
		return r
	}
	return cmp.Compare(c.Suit, other.Suit)
}

// String renders the card as its suit label followed by its rank label.
func (c Card[R, S]) String() string {
	return fmt.Sprintf("%v%v", c.Suit, c.Rank)
}

// Count returns the multiset of cards in the given sequences.
func Count[R Rank, S Suit](piles ...[]Card[R, S]) map[Card[R, S]]int {
	counts := make(map[Card[R, S]]int)
	for _, pile := range piles {
		for _, c := range pile {
			counts[c]++
		}
	}
	return counts
}
