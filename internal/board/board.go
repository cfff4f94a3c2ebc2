package board

import (
	"slices"

	"github.com/arcanaland/patience/internal/card"
)

// Board is a fixed number of tableau stacks. Index 0 of each stack is the
// bottom card and the last index is the top.
//
// A Board must not be mutated by one goroutine while others read it.
// Boards returned by Clone and NextBoard share no storage with their source,
// so each may be handed to its own goroutine.
type Board[R card.Rank, S card.Suit] struct {
	stacks [][]card.Card[R, S]
	rules  Rules[R, S]
}

// New deals cards into numStacks stacks following pattern.
func New[R card.Rank, S card.Suit](cards []card.Card[R, S], pattern Pattern, numStacks int, rules Rules[R, S]) (*Board[R, S], error) {
	stacks, err := deal(cards, pattern, numStacks)
	if err != nil {
		return nil, err
	}
	return &Board[R, S]{stacks: stacks, rules: rules}, nil
}

// FromStacks builds a board holding a copy of stacks.
func FromStacks[R card.Rank, S card.Suit](stacks [][]card.Card[R, S], rules Rules[R, S]) *Board[R, S] {
	return &Board[R, S]{stacks: cloneStacks(stacks), rules: rules}
}

func cloneStacks[R card.Rank, S card.Suit](stacks [][]card.Card[R, S]) [][]card.Card[R, S] {
	out := make([][]card.Card[R, S], len(stacks))
	for i, s := range stacks {
		out[i] = make([]card.Card[R, S], len(s))
		copy(out[i], s)
	}
	return out
}

// Rules returns the legality rules the board enforces.
func (b *Board[R, S]) Rules() Rules[R, S] {
	return b.rules
}

// Stacks returns a copy of every stack, bottom card first.
func (b *Board[R, S]) Stacks() [][]card.Card[R, S] {
	return cloneStacks(b.stacks)
}

// Columns returns the number of stacks.
func (b *Board[R, S]) Columns() int {
	return len(b.stacks)
}

// ColumnLength returns the number of cards in column.
func (b *Board[R, S]) ColumnLength(column int) (int, error) {
	if err := b.checkColumn("column", column); err != nil {
		return 0, err
	}
	return len(b.stacks[column]), nil
}

// CardAt returns the card at row within column, counting from the bottom.
func (b *Board[R, S]) CardAt(column, row int) (card.Card[R, S], error) {
	if err := b.checkColumn("column", column); err != nil {
		return card.Card[R, S]{}, err
	}
	if row < 0 || row >= len(b.stacks[column]) {
		return card.Card[R, S]{}, errorf(CodeIndexOutOfRange,
			"row %d out of range for column %d of length %d", row, column, len(b.stacks[column]))
	}
	return b.stacks[column][row], nil
}

// Top returns the top card of column.
func (b *Board[R, S]) Top(column int) (card.Card[R, S], error) {
	if err := b.checkColumn("column", column); err != nil {
		return card.Card[R, S]{}, err
	}
	s := b.stacks[column]
	if len(s) == 0 {
		return card.Card[R, S]{}, errorf(CodeEmptySource, "column %d is empty", column)
	}
	return s[len(s)-1], nil
}

// Len returns the total number of cards on the board.
func (b *Board[R, S]) Len() int {
	n := 0
	for _, s := range b.stacks {
		n += len(s)
	}
	return n
}

// Clone returns an independent copy of the board.
func (b *Board[R, S]) Clone() *Board[R, S] {
	return &Board[R, S]{stacks: cloneStacks(b.stacks), rules: b.rules}
}

// Equal reports whether both boards hold the same cards in the same places.
func (b *Board[R, S]) Equal(other *Board[R, S]) bool {
	if b == nil || other == nil {
		return b == other
	}
	return slices.EqualFunc(b.stacks, other.stacks, func(x, y []card.Card[R, S]) bool {
		return slices.Equal(x, y)
	})
}

// NextBoard returns a copy of the board with mv applied. The receiver is
// never modified, whether or not the move is legal.
func (b *Board[R, S]) NextBoard(mv Move) (*Board[R, S], error) {
	next := b.Clone()
	if _, err := next.ApplyMove(mv); err != nil {
		return nil, err
	}
	return next, nil
}

func (b *Board[R, S]) checkColumn(name string, column int) error {
	if column < 0 || column >= len(b.stacks) {
		return errorf(CodeIndexOutOfRange, "%s %d out of range for %d stacks", name, column, len(b.stacks))
	}
	return nil
}
