package engine

import (
	"fmt"

	"github.com/lgbarn/chess-rules-go/internal/chess"
	"github.com/lgbarn/chess-rules-go/internal/errors"
)

// ParseMove reads a move in coordinate notation: origin square,
// destination square and an optional promotion letter, e.g. "e2e4" or
// "e7e8q". The promotion letter may be either case.
func ParseMove(text string) (chess.MovePair, error) {
	if len(text) != 4 && len(text) != 5 {
		return chess.MovePair{}, &errors.ParseError{
			Err:      errors.ErrParseFailure,
			Input:    text,
			Expected: "4 or 5 characters",
			Got:      fmt.Sprintf("%d", len(text)),
		}
	}

	from, err := chess.ParseSquare(text[0:2])
	if err != nil {
		return chess.MovePair{}, squareError(text, 1)
	}
	to, err := chess.ParseSquare(text[2:4])
	if err != nil {
		return chess.MovePair{}, squareError(text, 3)
	}

	mp := chess.MovePair{From: from, To: to}
	if len(text) == 5 {
		mp.Promotion = chess.PieceTypeFromLetter(text[4])
		if !validPromotion(mp.Promotion) || mp.Promotion == chess.Empty {
			return chess.MovePair{}, &errors.ParseError{
				Err:      errors.ErrParseFailure,
				Input:    text,
				Column:   5,
				Expected: "promotion piece q, r, b or n",
				Got:      fmt.Sprintf("%q", text[4:]),
			}
		}
	}
	return mp, nil
}

func squareError(text string, column int) error {
	return &errors.ParseError{
		Err:      errors.ErrParseFailure,
		Input:    text,
		Column:   column,
		Expected: "square a1-h8",
		Got:      fmt.Sprintf("%q", text[column-1:column+1]),
	}
}
