package model

import (
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/benbeisheim/chess-backend/internal/chess"
	"github.com/benbeisheim/chess-backend/internal/ws"
	"github.com/google/go-cmp/cmp"
)

func sq(t *testing.T, s string) chess.Square {
	t.Helper()
	out, err := chess.ParseSquare(s)
	if err != nil {
		t.Fatal(err)
	}
	return out
}

func seatedGame(t *testing.T) *Game {
	t.Helper()
	g := NewGame("g1", 10*time.Minute)
	if c, err := g.AddPlayer("alice"); err != nil || c != PlayerColorWhite {
		t.Fatalf("AddPlayer(alice) = %v, %v", c, err)
	}
	if c, err := g.AddPlayer("bob"); err != nil || c != PlayerColorBlack {
		t.Fatalf("AddPlayer(bob) = %v, %v", c, err)
	}
	return g
}

func TestAddPlayer(t *testing.T) {
	g := seatedGame(t)

	if c, err := g.AddPlayer("alice"); err != nil || c != PlayerColorWhite {
		t.Errorf("rejoin = %v, %v; want white", c, err)
	}
	if _, err := g.AddPlayer("carol"); !errors.Is(err, ErrGameFull) {
		t.Errorf("third player error = %v; want ErrGameFull", err)
	}
	if !g.IsPlayerInGame("bob") || g.IsPlayerInGame("carol") || g.IsPlayerInGame("") {
		t.Error("IsPlayerInGame mismatch")
	}
}

func TestInitialState(t *testing.T) {
	g := seatedGame(t)
	state := g.GetState()

	if state.ToMove != PlayerColorWhite {
		t.Errorf("ToMove = %v; want white", state.ToMove)
	}
	if len(state.LegalMoves) != 20 {
		t.Errorf("len(LegalMoves) = %d; want 20", len(state.LegalMoves))
	}
	if state.IsCheck || state.LastMove != nil || len(state.MoveHistory) != 0 {
		t.Errorf("unexpected initial state: %+v", state)
	}
	if diff := cmp.Diff([]string{"bR", "bN", "bB", "bQ", "bK", "bB", "bN", "bR"}, state.Board.Board[0]); diff != "" {
		t.Errorf("rank 8 mismatch (-want +got):\n%s", diff)
	}
	if state.FEN != chess.StartFEN {
		t.Errorf("FEN = %q", state.FEN)
	}
	if state.Players.White.TimeLeft != 6000 {
		t.Errorf("white time = %d; want 6000", state.Players.White.TimeLeft)
	}
}

func TestMakeMove(t *testing.T) {
	g := seatedGame(t)

	tests := []struct {
		name     string
		player   string
		from, to string
		wantErr  error
	}{
		{"black cannot open", "bob", "e7", "e5", ErrNotYourTurn},
		{"spectator cannot move", "carol", "e2", "e4", ErrNotSeated},
		{"illegal geometry", "alice", "e2", "e5", ErrIllegalMove},
		{"white opens", "alice", "e2", "e4", nil},
		{"white cannot move twice", "alice", "d2", "d4", ErrNotYourTurn},
		{"black replies", "bob", "e7", "e5", nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := g.MakeMove(tt.player, sq(t, tt.from), sq(t, tt.to))
			if tt.wantErr == nil && err != nil {
				t.Fatalf("MakeMove: %v", err)
			}
			if tt.wantErr != nil && !errors.Is(err, tt.wantErr) {
				t.Fatalf("MakeMove error = %v; want %v", err, tt.wantErr)
			}
		})
	}

	state := g.GetState()
	want := []Ply{
		{Piece: "wP", From: "e2", To: "e4", Notation: "e2e4"},
		{Piece: "bP", From: "e7", To: "e5", Notation: "e7e5"},
	}
	if diff := cmp.Diff(want, state.MoveHistory); diff != "" {
		t.Errorf("history mismatch (-want +got):\n%s", diff)
	}
	if state.LastMove == nil || *state.LastMove != (SimpleMove{From: sq(t, "e7"), To: sq(t, "e5")}) {
		t.Errorf("LastMove = %+v", state.LastMove)
	}
	if !g.whiteClock.IsRunning() || g.blackClock.IsRunning() {
		t.Error("white's clock should be running after black's reply")
	}
}

func TestMoveIntoCheckRejected(t *testing.T) {
	g := seatedGame(t)
	moves := [][2]string{{"e2", "e4"}, {"e7", "e5"}, {"d1", "h5"}}
	players := []string{"alice", "bob"}
	for i, m := range moves {
		if err := g.MakeMove(players[i%2], sq(t, m[0]), sq(t, m[1])); err != nil {
			t.Fatalf("%v: %v", m, err)
		}
	}
	// f7 shields the king from the queen on h5
	if err := g.MakeMove("bob", sq(t, "f7"), sq(t, "f6")); !errors.Is(err, ErrIllegalMove) {
		t.Errorf("f7f6 error = %v; want ErrIllegalMove", err)
	}
}

func TestUndo(t *testing.T) {
	g := seatedGame(t)
	before := g.GetState()

	if err := g.Undo("alice"); err != nil {
		t.Fatalf("Undo with no history: %v", err)
	}
	if err := g.MakeMove("alice", sq(t, "g1"), sq(t, "f3")); err != nil {
		t.Fatal(err)
	}
	if err := g.Undo("carol"); !errors.Is(err, ErrNotSeated) {
		t.Errorf("spectator undo error = %v; want ErrNotSeated", err)
	}
	if err := g.Undo("bob"); err != nil {
		t.Fatalf("Undo: %v", err)
	}

	after := g.GetState()
	opts := cmp.FilterPath(func(p cmp.Path) bool { return p.String() == "Players" }, cmp.Ignore())
	if diff := cmp.Diff(before, after, opts); diff != "" {
		t.Errorf("state after undo mismatch (-want +got):\n%s", diff)
	}
}

func TestBroadcastOnMove(t *testing.T) {
	g := seatedGame(t)
	conn := newFakeConn()
	if err := g.RegisterConnection("alice", conn); err != nil {
		t.Fatal(err)
	}
	<-conn.sent // initial snapshot

	if err := g.MakeMove("alice", sq(t, "d2"), sq(t, "d4")); err != nil {
		t.Fatal(err)
	}
	select {
	case msg := <-conn.sent:
		if msg.Type != ws.MessageTypeGameState {
			t.Fatalf("message type = %q", msg.Type)
		}
		var state GameState
		if err := json.Unmarshal(msg.Payload, &state); err != nil {
			t.Fatal(err)
		}
		if state.ToMove != PlayerColorBlack || len(state.MoveHistory) != 1 {
			t.Errorf("broadcast state = %+v", state)
		}
	case <-time.After(2 * time.Second):
		t.Fatal("no state broadcast after move")
	}
}

func TestBroadcastsArriveInOrder(t *testing.T) {
	g := seatedGame(t)
	conn := newFakeConn()
	if err := g.RegisterConnection("carol", conn); err != nil {
		t.Fatal(err)
	}

	plies := []struct{ player, from, to string }{
		{"alice", "e2", "e4"}, {"bob", "e7", "e5"},
		{"alice", "g1", "f3"}, {"bob", "b8", "c6"},
		{"alice", "f1", "c4"}, {"bob", "g8", "f6"},
	}
	for _, p := range plies {
		if err := g.MakeMove(p.player, sq(t, p.from), sq(t, p.to)); err != nil {
			t.Fatal(err)
		}
	}

	historyLens := func() []int {
		conn.mu.Lock()
		defer conn.mu.Unlock()
		out := make([]int, 0, len(conn.messages))
		for _, msg := range conn.messages {
			var state GameState
			if err := json.Unmarshal(msg.Payload, &state); err != nil {
				t.Fatal(err)
			}
			out = append(out, len(state.MoveHistory))
		}
		return out
	}

	// one broadcast for the registration and one per move
	deadline := time.Now().Add(2 * time.Second)
	var lens []int
	for {
		lens = historyLens()
		if len(lens) == len(plies)+1 {
			break
		}
		if time.Now().After(deadline) {
			t.Fatalf("got %d broadcasts; want %d", len(lens), len(plies)+1)
		}
		time.Sleep(5 * time.Millisecond)
	}
	for i := 1; i < len(lens); i++ {
		if lens[i] < lens[i-1] {
			t.Fatalf("broadcast history lengths went backwards: %v", lens)
		}
	}
	if last := lens[len(lens)-1]; last != len(plies) {
		t.Errorf("last broadcast has %d plies; want %d", last, len(plies))
	}
}

func TestDuplicateConnectionClosed(t *testing.T) {
	g := seatedGame(t)
	first, second := newFakeConn(), newFakeConn()
	if err := g.RegisterConnection("alice", first); err != nil {
		t.Fatal(err)
	}
	if err := g.RegisterConnection("alice", second); !errors.Is(err, ErrDuplicateConnection) {
		t.Errorf("duplicate RegisterConnection error = %v; want ErrDuplicateConnection", err)
	}

	second.mu.Lock()
	closed := second.closed
	second.mu.Unlock()
	if !closed {
		t.Error("duplicate connection left open")
	}

	g.UnregisterConnection("alice")
	g.connections.mu.Lock()
	n := len(g.connections.connections)
	g.connections.mu.Unlock()
	if n != 0 {
		t.Errorf("%d connections after unregister", n)
	}
}

func TestFailedConnectionDropped(t *testing.T) {
	g := seatedGame(t)
	conn := newFakeConn()
	conn.fail = true
	_ = g.RegisterConnection("bob", conn)

	g.broadcastState()
	g.connections.mu.Lock()
	_, ok := g.connections.connections["bob"]
	g.connections.mu.Unlock()
	if ok {
		t.Error("failing connection still registered")
	}
}
