package chess

import (
	"math/rand"
	"sort"
	"testing"

	corentings "github.com/corentings/chess/v2"
	"github.com/google/go-cmp/cmp"
)

// referenceMoves lists the legal moves another rules library finds for
// fen, in coordinate notation with promotion suffixes dropped.
func referenceMoves(t *testing.T, fen string) []string {
	t.Helper()
	opt, err := corentings.FEN(fen)
	if err != nil {
		t.Fatalf("corentings.FEN(%q): %v", fen, err)
	}
	game := corentings.NewGame(opt)
	seen := make(map[string]bool)
	var out []string
	for _, m := range game.ValidMoves() {
		s := m.String()[:4]
		if !seen[s] {
			seen[s] = true
			out = append(out, s)
		}
	}
	sort.Strings(out)
	return out
}

func sortedNotations(moves []Move) []string {
	out := notations(moves)
	sort.Strings(out)
	return out
}

func pawnOnLastRank(p *Position) bool {
	for c := 0; c < BoardSize; c++ {
		if p.board[0][c].Kind == Pawn || p.board[7][c].Kind == Pawn {
			return true
		}
	}
	return false
}

func TestLegalMovesMatchReference(t *testing.T) {
	fens := []string{
		StartFEN,
		"k3r3/8/8/8/8/3p4/4P3/4K3 w - - 0 1",
		"4k3/8/8/8/1b6/8/8/1N2K1R1 w - - 0 1",
		"r1bqkb1r/pppp1ppp/2n2n2/4p2Q/2B1P3/8/PPPP1PPP/RNB1K1NR w - - 0 4",
		"8/2p5/3p4/KP5r/1R3p1k/8/4P1P1/8 w - - 0 1",
	}
	for _, fen := range fens {
		pos := mustFEN(t, fen)
		if diff := cmp.Diff(referenceMoves(t, fen), sortedNotations(pos.LegalMoves())); diff != "" {
			t.Errorf("%s: legal moves mismatch (-reference +got):\n%s", fen, diff)
		}
	}
}

// Random games compared move by move. A game stops once a pawn reaches the
// last rank since the reference library would promote it.
func TestRandomGamesMatchReference(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	games := 6
	if testing.Short() {
		games = 2
	}
	for g := 0; g < games; g++ {
		pos := NewGame()
		for ply := 0; ply < 60 && !pawnOnLastRank(pos); ply++ {
			fen := pos.FEN()
			moves := pos.LegalMoves()
			if diff := cmp.Diff(referenceMoves(t, fen), sortedNotations(moves)); diff != "" {
				t.Fatalf("game %d ply %d %s: legal moves mismatch (-reference +got):\n%s", g, ply, fen, diff)
			}
			if len(moves) == 0 {
				break
			}
			if err := pos.ApplyMove(moves[rng.Intn(len(moves))]); err != nil {
				t.Fatal(err)
			}
		}
	}
}
