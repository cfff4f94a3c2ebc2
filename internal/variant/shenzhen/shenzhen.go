// Package shenzhen is the rule pack for the dragon patience game: three
// coloured suits numbered one to nine, four dragons per colour and a single
// flower, dealt evenly into eight stacks.
package shenzhen

import (
	"fmt"
	"strings"

	"github.com/arcanaland/patience/internal/board"
	"github.com/arcanaland/patience/internal/card"
	"github.com/arcanaland/patience/internal/deck"
)

// Name identifies the variant in configuration.
const Name = "shenzhen"

// Table layout for a standard game.
const (
	Stacks  = 8
	Pattern = board.Even
	// DragonsPerSuit is the number of identical dragons in each colour.
	DragonsPerSuit = 4
)

// Suit is a card colour; Flower holds only the flower card.
type Suit int

const (
	Green Suit = iota
	Red
	Black
	Flower
)

var suitNames = []string{"green", "red", "black", "flower"}

// Suits lists every suit in order.
var Suits = []Suit{Green, Red, Black, Flower}

func (s Suit) String() string {
	switch s {
	case Green:
		return "G"
	case Red:
		return "R"
	case Black:
		return "B"
	case Flower:
		return "F"
	}
	return "?"
}

// Name returns the lower-case suit name used in configuration.
func (s Suit) Name() string {
	if s < 0 || int(s) >= len(suitNames) {
		return fmt.Sprintf("suit(%d)", int(s))
	}
	return suitNames[s]
}

// ParseSuit maps a suit name to its Suit.
func ParseSuit(name string) (Suit, error) {
	for i, n := range suitNames {
		if strings.EqualFold(name, n) {
			return Suit(i), nil
		}
	}
	return 0, fmt.Errorf("unknown suit %q", name)
}

// Rank is a card value. Dragon sorts first but has the highest ordinal.
type Rank int

const (
	Dragon Rank = iota
	One
	Two
	Three
	Four
	Five
	Six
	Seven
	Eight
	Nine
	FlowerRank
)

// Ordinal places dragons and the flower above nine, so no numbered card is
// ever one below them.
func (r Rank) Ordinal() int {
	switch r {
	case Dragon:
		return 11
	case FlowerRank:
		return 12
	}
	return int(r)
}

func (r Rank) String() string {
	switch {
	case r == Dragon:
		return "D"
	case r == FlowerRank:
		return "F"
	case r >= One && r <= Nine:
		return fmt.Sprint(int(r))
	}
	return "?"
}

// Card is a card of this variant.
type Card = card.Card[Rank, Suit]

// Deck generates the 40-card deck.
type Deck struct{}

var _ deck.Generator[Rank, Suit] = Deck{}

// Generate returns dragons first, then the numbered cards suit by suit,
// then the flower.
func (Deck) Generate() []Card {
	colours := []Suit{Green, Red, Black}
	cards := make([]Card, 0, 40)
	for _, s := range colours {
		for i := 0; i < DragonsPerSuit; i++ {
			cards = append(cards, card.New(Dragon, s))
		}
	}
	for _, s := range colours {
		for r := One; r <= Nine; r++ {
			cards = append(cards, card.New(r, s))
		}
	}
	return append(cards, card.New(FlowerRank, Flower))
}

// Run accepts upper on lower when upper is the next lower number in a
// different suit. Dragons and the flower never form runs.
func Run(lower, upper Card) bool {
	if !numbered(lower) || !numbered(upper) {
		return false
	}
	return lower.Suit != upper.Suit && board.DescendingByOne(lower, upper)
}

func numbered(c Card) bool {
	return c.Rank >= One && c.Rank <= Nine
}

// Rules returns the board rules for the variant.
func Rules() board.Rules[Rank, Suit] {
	return board.Rules[Rank, Suit]{Run: Run}
}

// NewBoard deals cards into the standard layout.
func NewBoard(cards []Card) (*board.Board[Rank, Suit], error) {
	return board.New(cards, Pattern, Stacks, Rules())
}
