package board

import (
	"fmt"
	"strconv"
	"strings"
)

// Move is a request to relocate cards between stacks. It is either an
// Individual or a Stack.
type Move interface {
	fmt.Stringer
	isMove()
}

// Individual moves the top card of From onto To.
type Individual struct {
	From, To int
}

// Stack moves the run from Start through the top of Row onto To, keeping
// its order.
type Stack struct {
	Row, Start, To int
}

func (Individual) isMove() {}
func (Stack) isMove()      {}

func (m Individual) String() string {
	return fmt.Sprintf("i %d %d", m.From, m.To)
}

func (m Stack) String() string {
	return fmt.Sprintf("s %d %d %d", m.Row, m.Start, m.To)
}

// MoveResult describes a successful move.
type MoveResult struct {
	Moved int  // cards relocated
	NoOp  bool // source and destination were the same stack
}

func (r MoveResult) String() string {
	if r.NoOp {
		return "no-op"
	}
	if r.Moved == 1 {
		return "moved 1 card"
	}
	return fmt.Sprintf("moved %d cards", r.Moved)
}

// ApplyMove validates mv and applies it in place. On error the board is
// unchanged.
func (b *Board[R, S]) ApplyMove(mv Move) (MoveResult, error) {
	switch m := mv.(type) {
	case Individual:
		return b.applyIndividual(m)
	case Stack:
		return b.applyStack(m)
	default:
		return MoveResult{}, errorf(CodeInvalidMove, "unsupported move %v", mv)
	}
}

func (b *Board[R, S]) applyIndividual(m Individual) (MoveResult, error) {
	if err := b.checkColumn("from", m.From); err != nil {
		return MoveResult{}, err
	}
	if err := b.checkColumn("to", m.To); err != nil {
		return MoveResult{}, err
	}
	src := b.stacks[m.From]
	if len(src) == 0 {
		return MoveResult{}, errorf(CodeEmptySource, "stack %d is empty", m.From)
	}
	if m.From == m.To {
		return MoveResult{Moved: 1, NoOp: true}, nil
	}

	top := src[len(src)-1]
	b.stacks[m.From] = src[:len(src)-1]
	b.stacks[m.To] = append(b.stacks[m.To], top)
	return MoveResult{Moved: 1}, nil
}

func (b *Board[R, S]) applyStack(m Stack) (MoveResult, error) {
	if err := b.checkColumn("row", m.Row); err != nil {
		return MoveResult{}, err
	}
	if err := b.checkColumn("to", m.To); err != nil {
		return MoveResult{}, err
	}
	src := b.stacks[m.Row]
	if m.Start < 0 || m.Start >= len(src) {
		return MoveResult{}, errorf(CodeIndexOutOfRange,
			"start %d out of range for row %d of length %d", m.Start, m.Row, len(src))
	}
	run := src[m.Start:]
	if !b.rules.IsRun(run) {
		return MoveResult{}, errorf(CodeIllegalRun, "cards %v from row %d are not a run", run, m.Row)
	}
	if m.Row == m.To {
		return MoveResult{Moved: len(run), NoOp: true}, nil
	}

	b.stacks[m.To] = append(b.stacks[m.To], run...)
	b.stacks[m.Row] = src[:m.Start]
	return MoveResult{Moved: len(run)}, nil
}

// ParseMove reads a move in the form "i FROM TO" or "s ROW START TO".
// Fields may be separated by spaces, commas or colons.
func ParseMove(s string) (Move, error) {
	fields := strings.FieldsFunc(s, func(r rune) bool {
		return r == ' ' || r == ',' || r == ':' || r == '\t'
	})
	if len(fields) == 0 {
		return nil, errorf(CodeInvalidMove, "empty move")
	}

	args := make([]int, 0, len(fields)-1)
	for _, f := range fields[1:] {
		n, err := strconv.Atoi(f)
		if err != nil {
			return nil, errorf(CodeInvalidMove, "move %q: %q is not an index", s, f)
		}
		args = append(args, n)
	}

	switch strings.ToLower(fields[0]) {
	case "i", "individual":
		if len(args) != 2 {
			return nil, errorf(CodeInvalidMove, "move %q: individual takes FROM TO", s)
		}
		return Individual{From: args[0], To: args[1]}, nil
	case "s", "stack":
		if len(args) != 3 {
			return nil, errorf(CodeInvalidMove, "move %q: stack takes ROW START TO", s)
		}
		return Stack{Row: args[0], Start: args[1], To: args[2]}, nil
	default:
		return nil, errorf(CodeInvalidMove, "move %q: unknown kind %q", s, fields[0])
	}
}
