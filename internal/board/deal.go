package board

import (
	"fmt"
	"strings"

	"github.com/arcanaland/patience/internal/card"
)

// Pattern selects how a fresh deck is dealt into stacks. It only matters
// at construction time.
type Pattern int

const (
	// Even deals round-robin; stack sizes differ by at most one.
	Even Pattern = iota
	// Descending deals a triangle: each stack gets one card fewer than the
	// one before it, and leftover cards go on top of the final stack.
	Descending
)

var patternNames = map[Pattern]string{
	Even:       "even",
	Descending: "descending",
}

func (p Pattern) String() string {
	if name, ok := patternNames[p]; ok {
		return name
	}
	return fmt.Sprintf("Pattern(%d)", int(p))
}

// ParsePattern maps a pattern name, case-insensitively, to its Pattern.
func ParsePattern(s string) (Pattern, error) {
	for p, name := range patternNames {
		if strings.EqualFold(strings.TrimSpace(s), name) {
			return p, nil
		}
	}
	return 0, fmt.Errorf("unknown deal pattern %q", s)
}

// MarshalText implements encoding.TextMarshaler.
func (p Pattern) MarshalText() ([]byte, error) {
	if _, ok := patternNames[p]; !ok {
		return nil, fmt.Errorf("unknown deal pattern %d", int(p))
	}
	return []byte(p.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (p *Pattern) UnmarshalText(text []byte) error {
	parsed, err := ParsePattern(string(text))
	if err != nil {
		return err
	}
	*p = parsed
	return nil
}

// MaxStacks bounds the number of stacks a board may be dealt into.
const MaxStacks = 1 << 16

// Shape returns the stack sizes a deal of total cards produces under pattern.
func Shape(total int, pattern Pattern, numStacks int) ([]int, error) {
	if numStacks < 1 || numStacks > MaxStacks {
		return nil, errorf(CodeInvalidDeckSize, "need between 1 and %d stacks, got %d", MaxStacks, numStacks)
	}
	if total < 1 {
		return nil, errorf(CodeInvalidDeckSize, "cannot deal an empty deck")
	}

	switch pattern {
	case Even:
		sizes := make([]int, numStacks)
		for i := range sizes {
			sizes[i] = total / numStacks
			if i < total%numStacks {
				sizes[i]++
			}
		}
		return sizes, nil
	case Descending:
		// The smallest triangle is numStacks-1, ..., 1, 0.
		if numStacks-1 > total {
			return nil, errorf(CodeInvalidDeckSize,
				"%d cards cannot fill a descending deal over %d stacks", total, numStacks)
		}
		offset := numStacks * (numStacks - 1) / 2
		if offset > total {
			return nil, errorf(CodeInvalidDeckSize,
				"%d cards cannot fill a descending deal over %d stacks (need %d)",
				total, numStacks, offset)
		}
		top := (total + offset) / numStacks
		sizes := make([]int, numStacks)
		for i := range sizes {
			sizes[i] = top - i
		}
		sizes[numStacks-1] += total - (numStacks*top - offset)
		return sizes, nil
	default:
		return nil, errorf(CodeInvalidDeckSize, "unknown deal pattern %d", int(pattern))
	}
}

func deal[R card.Rank, S card.Suit](cards []card.Card[R, S], pattern Pattern, numStacks int) ([][]card.Card[R, S], error) {
	sizes, err := Shape(len(cards), pattern, numStacks)
	if err != nil {
		return nil, err
	}

	stacks := make([][]card.Card[R, S], numStacks)
	for i, size := range sizes {
		stacks[i] = make([]card.Card[R, S], 0, size)
	}

	switch pattern {
	case Even:
		for i, c := range cards {
			stacks[i%numStacks] = append(stacks[i%numStacks], c)
		}
	case Descending:
		// Deal the triangle row by row, then drop the remainder on the last stack.
		next := 0
		for row := 0; row < sizes[0]; row++ {
			for i := range stacks {
				if sizes[0]-i > row {
					stacks[i] = append(stacks[i], cards[next])
					next++
				}
			}
		}
		last := numStacks - 1
		stacks[last] = append(stacks[last], cards[next:]...)
	}
	return stacks, nil
}
