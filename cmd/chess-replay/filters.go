// filters.go - Selection of replayed games for output
package main

import (
	"github.com/lgbarn/chess-rules-go/internal/chess"
	"github.com/lgbarn/chess-rules-go/internal/config"
)

// matchesFilters reports whether a replayed game passes every enabled filter.
func matchesFilters(s chess.Snapshot, f *config.FilterConfig) bool {
	if !f.Active() {
		return true
	}
	return checkPlyBounds(len(s.History), f) && applyEndingFilters(s.Status, f)
}

// checkPlyBounds checks if the game meets ply count requirements.
func checkPlyBounds(plyCount int, f *config.FilterConfig) bool {
	if !f.CheckPlyBounds {
		return true
	}
	n := uint(plyCount)
	return n >= f.LowerPlyBound && n <= f.UpperPlyBound
}

// applyEndingFilters checks how the game ended.
func applyEndingFilters(status chess.Status, f *config.FilterConfig) bool {
	if f.MatchCheckmate && !status.Checkmate {
		return false
	}
	if f.MatchStalemate && !status.Stalemate {
		return false
	}
	return true
}
