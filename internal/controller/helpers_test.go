package controller

import (
	"context"
	"testing"
	"time"

	"github.com/benbeisheim/chess-backend/internal/service"
)

func waitForMatch(t *testing.T, gm *service.GameManager, playerID string) {
	t.Helper()
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	go gm.Run(ctx, 5*time.Millisecond)

	for {
		if _, ok := gm.MatchStatus(playerID); ok {
			return
		}
		select {
		case <-ctx.Done():
			t.Fatalf("%s was never matched", playerID)
		case <-time.After(5 * time.Millisecond):
		}
	}
}
