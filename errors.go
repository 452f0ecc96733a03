package mahjong

import "fmt"

// ParsingError is returned when a tile, meld, or hand string does not
// match the grammar described in conversions.go.
type ParsingError struct {
	Input string
	Want  string
}

func (e *ParsingError) Error() string {
	return fmt.Sprintf("mahjong: cannot parse %q as %s", e.Input, e.Want)
}

// ValueError is returned when a value is individually well-formed but out
// of the range a caller is allowed to supply (e.g. a seat index outside
// 0..3, or a ruleset name with no matching RiichiRuleset).
type ValueError struct {
	Field string
	Value any
}

func (e *ValueError) Error() string {
	return fmt.Sprintf("mahjong: invalid value for %s: %v", e.Field, e.Value)
}

// CompositionError is returned when a tile set cannot be decomposed into
// any legal winning shape (not Standard, not Chiitoi, not Kokushi).
type CompositionError struct {
	TileCount int
	Reason    string
}

func (e *CompositionError) Error() string {
	return fmt.Sprintf("mahjong: cannot compose a winning hand from %d tiles: %s", e.TileCount, e.Reason)
}

// ScoringError wraps a failure that occurs after a hand has been
// successfully composed — typically "no yaku", which makes a hand
// uncallable even though its shape is legal.
type ScoringError struct {
	Reason string
}

func (e *ScoringError) Error() string {
	return fmt.Sprintf("mahjong: cannot score hand: %s", e.Reason)
}
