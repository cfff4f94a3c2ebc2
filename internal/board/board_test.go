package board_test

import (
	"errors"
	"sync"
	"testing"

	"github.com/arcanaland/patience/internal/board"
	"github.com/arcanaland/patience/internal/card"
)

type testRank int

const (
	one testRank = iota + 1
	two
	three
)

func (r testRank) Ordinal() int { return int(r) }

func (r testRank) String() string {
	return []string{"", "1", "2", "3"}[r]
}

type testSuit int

const (
	black testSuit = iota
	white
)

func (s testSuit) String() string {
	return []string{"♠", "♥"}[s]
}

type testCard = card.Card[testRank, testSuit]

func c(r testRank, s testSuit) testCard {
	return card.New(r, s)
}

// initialStacks is [[1♠,2♠],[3♠,1♥],[2♥,3♥]].
func initialStacks() [][]testCard {
	return [][]testCard{
		{c(one, black), c(two, black)},
		{c(three, black), c(one, white)},
		{c(two, white), c(three, white)},
	}
}

func anyRun() board.Rules[testRank, testSuit] {
	return board.Rules[testRank, testSuit]{Run: board.AnyRun[testRank, testSuit]}
}

func assertStacks(t *testing.T, b *board.Board[testRank, testSuit], want [][]testCard) {
	t.Helper()
	if !b.Equal(board.FromStacks(want, b.Rules())) {
		t.Fatalf("stacks = %v, want %v", b.Stacks(), want)
	}
}

func TestIndividualMove(t *testing.T) {
	b := board.FromStacks(initialStacks(), anyRun())

	res, err := b.ApplyMove(board.Individual{From: 1, To: 0})
	if err != nil {
		t.Fatalf("apply move: %v", err)
	}
	if res.Moved != 1 || res.NoOp {
		t.Errorf("unexpected result %+v", res)
	}

	assertStacks(t, b, [][]testCard{
		{c(one, black), c(two, black), c(one, white)},
		{c(three, black)},
		{c(two, white), c(three, white)},
	})
}

func TestStackMove(t *testing.T) {
	b := board.FromStacks(initialStacks(), anyRun())

	res, err := b.ApplyMove(board.Stack{Row: 1, Start: 0, To: 0})
	if err != nil {
		t.Fatalf("apply move: %v", err)
	}
	if res.Moved != 2 {
		t.Errorf("expected 2 cards moved, got %d", res.Moved)
	}

	assertStacks(t, b, [][]testCard{
		{c(one, black), c(two, black), c(three, black), c(one, white)},
		{},
		{c(two, white), c(three, white)},
	})
}

func TestNextBoard(t *testing.T) {
	b := board.FromStacks(initialStacks(), anyRun())

	next, err := b.NextBoard(board.Individual{From: 1, To: 0})
	if err != nil {
		t.Fatalf("next board: %v", err)
	}

	assertStacks(t, b, initialStacks())
	assertStacks(t, next, [][]testCard{
		{c(one, black), c(two, black), c(one, white)},
		{c(three, black)},
		{c(two, white), c(three, white)},
	})
}

func TestNextBoardIsIndependent(t *testing.T) {
	b := board.FromStacks(initialStacks(), anyRun())

	next, err := b.NextBoard(board.Individual{From: 2, To: 1})
	if err != nil {
		t.Fatalf("next board: %v", err)
	}
	if _, err := next.ApplyMove(board.Stack{Row: 0, Start: 0, To: 1}); err != nil {
		t.Fatalf("apply move: %v", err)
	}
	if _, err := b.ApplyMove(board.Individual{From: 0, To: 2}); err != nil {
		t.Fatalf("apply move: %v", err)
	}

	assertStacks(t, b, [][]testCard{
		{c(one, black)},
		{c(three, black), c(one, white)},
		{c(two, white), c(three, white), c(two, black)},
	})
	assertStacks(t, next, [][]testCard{
		{},
		{c(three, black), c(one, white), c(three, white), c(one, black), c(two, black)},
		{c(two, white)},
	})
}

func TestNextBoardFailureLeavesSourceUntouched(t *testing.T) {
	b := board.FromStacks(initialStacks(), board.Rules[testRank, testSuit]{})

	moves := []board.Move{
		board.Individual{From: 3, To: 0},
		board.Stack{Row: 1, Start: 0, To: 2},
		board.Stack{Row: 0, Start: 5, To: 1},
	}
	for _, mv := range moves {
		next, err := b.NextBoard(mv)
		if err == nil {
			t.Fatalf("%v: expected error, got board %v", mv, next.Stacks())
		}
		if next != nil {
			t.Errorf("%v: expected nil board on failure", mv)
		}
		assertStacks(t, b, initialStacks())
	}
}

func TestDefaultRunRule(t *testing.T) {
	tests := []struct {
		name    string
		stacks  [][]testCard
		move    board.Move
		wantErr error
	}{
		{
			name:    "gap in run",
			stacks:  initialStacks(),
			move:    board.Stack{Row: 1, Start: 0, To: 0},
			wantErr: board.ErrIllegalRun,
		},
		{
			name:    "ascending run",
			stacks:  initialStacks(),
			move:    board.Stack{Row: 0, Start: 0, To: 2},
			wantErr: board.ErrIllegalRun,
		},
		{
			name:   "descending by one",
			stacks: [][]testCard{{c(three, black), c(two, white), c(one, black)}, {}},
			move:   board.Stack{Row: 0, Start: 0, To: 1},
		},
		{
			name:   "single card is a run",
			stacks: initialStacks(),
			move:   board.Stack{Row: 0, Start: 1, To: 2},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := board.FromStacks(tt.stacks, board.Rules[testRank, testSuit]{})
			_, err := b.ApplyMove(tt.move)
			if tt.wantErr == nil {
				if err != nil {
					t.Fatalf("unexpected error: %v", err)
				}
				return
			}
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("expected %v, got %v", tt.wantErr, err)
			}
			assertStacks(t, b, tt.stacks)
		})
	}
}

func TestInjectedRunRule(t *testing.T) {
	sameSuit := board.Rules[testRank, testSuit]{
		Run: func(lower, upper testCard) bool { return lower.Suit == upper.Suit },
	}
	b := board.FromStacks(initialStacks(), sameSuit)

	if _, err := b.ApplyMove(board.Stack{Row: 1, Start: 0, To: 0}); !errors.Is(err, board.ErrIllegalRun) {
		t.Fatalf("expected illegal run, got %v", err)
	}
	if _, err := b.ApplyMove(board.Stack{Row: 2, Start: 0, To: 0}); err != nil {
		t.Fatalf("same-suit run rejected: %v", err)
	}
}

func TestRunOrderPreserved(t *testing.T) {
	b := board.FromStacks([][]testCard{
		{c(three, white), c(three, black), c(two, white), c(one, black)},
		{c(two, black)},
	}, board.Rules[testRank, testSuit]{})

	if _, err := b.ApplyMove(board.Stack{Row: 0, Start: 1, To: 1}); err != nil {
		t.Fatalf("apply move: %v", err)
	}
	assertStacks(t, b, [][]testCard{
		{c(three, white)},
		{c(two, black), c(three, black), c(two, white), c(one, black)},
	})
}

func TestSelfMoveIsNoOp(t *testing.T) {
	moves := []board.Move{
		board.Individual{From: 1, To: 1},
		board.Stack{Row: 2, Start: 0, To: 2},
		board.Stack{Row: 0, Start: 1, To: 0},
	}
	for _, mv := range moves {
		t.Run(mv.String(), func(t *testing.T) {
			b := board.FromStacks(initialStacks(), anyRun())
			res, err := b.ApplyMove(mv)
			if err != nil {
				t.Fatalf("self move failed: %v", err)
			}
			if !res.NoOp {
				t.Errorf("expected no-op result, got %+v", res)
			}
			assertStacks(t, b, initialStacks())
		})
	}
}

func TestSelfMoveOnEmptyStack(t *testing.T) {
	b := board.FromStacks([][]testCard{{}, {c(one, black)}}, anyRun())
	if _, err := b.ApplyMove(board.Individual{From: 0, To: 0}); !errors.Is(err, board.ErrEmptySource) {
		t.Fatalf("expected empty source, got %v", err)
	}
}

func TestMoveErrors(t *testing.T) {
	stacks := [][]testCard{
		{c(one, black), c(two, black)},
		{},
		{c(three, white)},
	}
	tests := []struct {
		name    string
		move    board.Move
		wantErr error
	}{
		{"from past end", board.Individual{From: 3, To: 0}, board.ErrIndexOutOfRange},
		{"negative from", board.Individual{From: -1, To: 0}, board.ErrIndexOutOfRange},
		{"to past end", board.Individual{From: 0, To: 3}, board.ErrIndexOutOfRange},
		{"empty source", board.Individual{From: 1, To: 0}, board.ErrEmptySource},
		{"row past end", board.Stack{Row: 9, Start: 0, To: 0}, board.ErrIndexOutOfRange},
		{"stack to past end", board.Stack{Row: 0, Start: 0, To: 4}, board.ErrIndexOutOfRange},
		{"start past top", board.Stack{Row: 0, Start: 2, To: 1}, board.ErrIndexOutOfRange},
		{"negative start", board.Stack{Row: 0, Start: -1, To: 1}, board.ErrIndexOutOfRange},
		{"start on empty row", board.Stack{Row: 1, Start: 0, To: 0}, board.ErrIndexOutOfRange},
		{"nil move", nil, board.ErrInvalidMove},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := board.FromStacks(stacks, anyRun())
			_, err := b.ApplyMove(tt.move)
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("expected %v, got %v", tt.wantErr, err)
			}
			var boardErr *board.Error
			if !errors.As(err, &boardErr) {
				t.Fatalf("expected *board.Error, got %T", err)
			}
			assertStacks(t, b, stacks)
		})
	}
}

func TestCardCountConserved(t *testing.T) {
	b := board.FromStacks(initialStacks(), anyRun())
	before := card.Count(b.Stacks()...)

	moves := []board.Move{
		board.Individual{From: 0, To: 1},
		board.Stack{Row: 1, Start: 1, To: 2},
		board.Individual{From: 2, To: 0},
		board.Stack{Row: 2, Start: 0, To: 1},
		board.Individual{From: 1, To: 1},
	}
	for _, mv := range moves {
		if _, err := b.ApplyMove(mv); err != nil {
			t.Fatalf("%v: %v", mv, err)
		}
		if b.Len() != 6 {
			t.Fatalf("%v: expected 6 cards, got %d", mv, b.Len())
		}
		after := card.Count(b.Stacks()...)
		for k, n := range before {
			if after[k] != n {
				t.Fatalf("%v: card %v count %d, want %d", mv, k, after[k], n)
			}
		}
	}
}

func TestQueries(t *testing.T) {
	b := board.FromStacks(initialStacks(), anyRun())

	if got := b.Columns(); got != 3 {
		t.Errorf("Columns() = %d, want 3", got)
	}
	if n, err := b.ColumnLength(2); err != nil || n != 2 {
		t.Errorf("ColumnLength(2) = %d, %v", n, err)
	}
	if _, err := b.ColumnLength(3); !errors.Is(err, board.ErrIndexOutOfRange) {
		t.Errorf("ColumnLength(3): expected index out of range, got %v", err)
	}
	if got, err := b.CardAt(1, 0); err != nil || got != c(three, black) {
		t.Errorf("CardAt(1, 0) = %v, %v", got, err)
	}
	for _, pos := range [][2]int{{1, 2}, {-1, 0}, {3, 0}, {0, -1}} {
		if _, err := b.CardAt(pos[0], pos[1]); !errors.Is(err, board.ErrIndexOutOfRange) {
			t.Errorf("CardAt(%d, %d): expected index out of range, got %v", pos[0], pos[1], err)
		}
	}
	if got, err := b.Top(0); err != nil || got != c(two, black) {
		t.Errorf("Top(0) = %v, %v", got, err)
	}
}

func TestStacksReturnsCopy(t *testing.T) {
	b := board.FromStacks(initialStacks(), anyRun())
	view := b.Stacks()
	view[0][0] = c(three, white)
	view[1] = nil

	assertStacks(t, b, initialStacks())
}

func TestFromStacksCopiesInput(t *testing.T) {
	stacks := initialStacks()
	b := board.FromStacks(stacks, anyRun())
	stacks[2][0] = c(one, black)

	assertStacks(t, b, initialStacks())
}

func TestConcurrentBranches(t *testing.T) {
	root := board.FromStacks(initialStacks(), anyRun())
	moves := []board.Move{
		board.Individual{From: 0, To: 1},
		board.Individual{From: 1, To: 2},
		board.Stack{Row: 2, Start: 0, To: 0},
		board.Stack{Row: 1, Start: 1, To: 0},
	}

	var wg sync.WaitGroup
	for _, mv := range moves {
		branch, err := root.NextBoard(mv)
		if err != nil {
			t.Fatalf("%v: %v", mv, err)
		}
		wg.Add(1)
		go func(b *board.Board[testRank, testSuit]) {
			defer wg.Done()
			for i := 0; i < 100; i++ {
				next, err := b.NextBoard(board.Individual{From: i % 3, To: (i + 1) % 3})
				if err == nil {
					b = next
				}
			}
		}(branch)
	}
	wg.Wait()

	assertStacks(t, root, initialStacks())
}
