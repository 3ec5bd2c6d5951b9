package main

import (
	"testing"

	"github.com/lgbarn/chess-rules-go/internal/chess"
	"github.com/lgbarn/chess-rules-go/internal/config"
)

func TestMatchesFilters(t *testing.T) {
	mate := chess.Snapshot{
		History: make([]chess.MoveRecord, 4),
		Status:  chess.Status{Check: true, Checkmate: true},
	}
	stalemate := chess.Snapshot{
		History: make([]chess.MoveRecord, 1),
		Status:  chess.Status{Stalemate: true},
	}
	ongoing := chess.Snapshot{History: make([]chess.MoveRecord, 30)}

	tests := []struct {
		name   string
		filter config.FilterConfig
		s      chess.Snapshot
		want   bool
	}{
		{"no filters", config.FilterConfig{}, ongoing, true},
		{"checkmate wanted, got mate", config.FilterConfig{MatchCheckmate: true}, mate, true},
		{"checkmate wanted, got stalemate", config.FilterConfig{MatchCheckmate: true}, stalemate, false},
		{"stalemate wanted, got stalemate", config.FilterConfig{MatchStalemate: true}, stalemate, true},
		{"stalemate wanted, game ongoing", config.FilterConfig{MatchStalemate: true}, ongoing, false},
		{"within ply bounds", config.FilterConfig{CheckPlyBounds: true, LowerPlyBound: 20, UpperPlyBound: 40}, ongoing, true},
		{"below ply bounds", config.FilterConfig{CheckPlyBounds: true, LowerPlyBound: 20, UpperPlyBound: 40}, mate, false},
		{"at upper bound", config.FilterConfig{CheckPlyBounds: true, LowerPlyBound: 0, UpperPlyBound: 4}, mate, true},
		{"bounds and ending", config.FilterConfig{CheckPlyBounds: true, UpperPlyBound: 2, MatchCheckmate: true}, mate, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := matchesFilters(tt.s, &tt.filter); got != tt.want {
				t.Errorf("matchesFilters() = %v, want %v", got, tt.want)
			}
		})
	}
}
