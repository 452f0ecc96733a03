package mahjong

import "sort"

// MeldKind distinguishes the three shapes a meld can take.
type MeldKind uint8

const (
	Sequence MeldKind = iota
	Triplet
	Quad
)

// Meld is three or four tiles forming a sequence, triplet, or quad.
// Open is true for a meld completed by calling another player's discard
// (pon/chi/open kan); false for a meld built entirely from one's own
// tiles, including a closed kan (ankan).
type Meld struct {
	Kind  MeldKind
	Tiles []TileType
	Open  bool
}

// Pair is the two matching tiles that complete a Standard hand, or one
// of the seven pairs of a Chiitoi hand.
type Pair struct {
	Tile TileType
}

// NewMeld infers a meld's kind from its tiles and validates that they
// actually form a legal sequence, triplet, or quad.
func NewMeld(tiles []Tile, open bool) (Meld, error) {
	types := make([]TileType, len(tiles))
	for i, t := range tiles {
		types[i] = t.Type
	}
	sort.Slice(types, func(i, j int) bool { return types[i] < types[j] })

	switch len(types) {
	case 3:
		if types[0] == types[1] && types[1] == types[2] {
			return Meld{Kind: Triplet, Tiles: types, Open: open}, nil
		}
		if types[0].IsNumbered() && types[1] == types[0]+1 && types[2] == types[0]+2 {
			s0, _ := types[0].Suit()
			s2, _ := types[2].Suit()
			if s0 == s2 {
				return Meld{Kind: Sequence, Tiles: types, Open: open}, nil
			}
		}
		return Meld{}, &ValueError{Field: "meld", Value: tiles}
	case 4:
		if types[0] == types[1] && types[1] == types[2] && types[2] == types[3] {
			return Meld{Kind: Quad, Tiles: types, Open: open}, nil
		}
		return Meld{}, &ValueError{Field: "meld", Value: tiles}
	default:
		return Meld{}, &ValueError{Field: "meld", Value: tiles}
	}
}

// IsTerminalOrHonor reports whether every tile in the meld is a
// terminal or honor (the "yaochuu" requirement of chanta/junchan/honroto).
func (m Meld) IsTerminalOrHonor() bool {
	for _, t := range m.Tiles {
		if !t.IsTerminalOrHonor() {
			return false
		}
	}
	return true
}

// HasTerminalOrHonor reports whether the meld contains at least one
// terminal or honor tile (the weaker chanta/junchan requirement, true
// of a sequence that merely touches a terminal).
func (m Meld) HasTerminalOrHonor() bool {
	for _, t := range m.Tiles {
		if t.IsTerminalOrHonor() {
			return true
		}
	}
	return false
}

// IsHonor reports whether the meld is built from honor tiles.
func (m Meld) IsHonor() bool { return m.Tiles[0].IsHonor() }

// HasTerminal reports whether the meld contains a 1 or 9 tile. Unlike
// HasTerminalOrHonor this is false for a meld of honor tiles.
func (m Meld) HasTerminal() bool {
	for _, t := range m.Tiles {
		if t.IsTerminal() {
			return true
		}
	}
	return false
}

// IsSeq reports whether the meld is a sequence.
func (m Meld) IsSeq() bool { return m.Kind == Sequence }

// IsQuad reports whether the meld is a quad.
func (m Meld) IsQuad() bool { return m.Kind == Quad }

// Contains reports whether tt appears among the meld's tiles.
func (m Meld) Contains(tt TileType) bool {
	for _, t := range m.Tiles {
		if t == tt {
			return true
		}
	}
	return false
}

// Suit returns the suit of a numbered meld; ok is false for an honor meld.
func (m Meld) Suit() (Suit, bool) { return m.Tiles[0].Suit() }
