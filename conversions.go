package mahjong

import (
	"strconv"
	"strings"
)

// ParseTile parses a single tile in the grammar `[mps][1-9]r?` for
// numbered tiles, `d[wgr]` for dragons (white/green/red), or `w[eswn]`
// for winds (east/south/west/north).
func ParseTile(s string) (Tile, error) {
	if len(s) < 2 {
		return Tile{}, &ParsingError{Input: s, Want: "tile"}
	}
	switch s[0] {
	case 'm', 'p', 's':
		var suit Suit
		switch s[0] {
		case 'm':
			suit = SuitMan
		case 'p':
			suit = SuitPin
		case 's':
			suit = SuitSou
		}
		rest := s[1:]
		red := false
		if strings.HasSuffix(rest, "r") {
			red = true
			rest = rest[:len(rest)-1]
		}
		n, err := strconv.Atoi(rest)
		if err != nil || n < 1 || n > 9 {
			return Tile{}, &ParsingError{Input: s, Want: "numbered tile"}
		}
		tt := suitBase(suit) + TileType(n-1)
		if red && n != 5 {
			return Tile{}, &ValueError{Field: "tile", Value: s}
		}
		return Tile{Type: tt, Red: red}, nil
	case 'd':
		switch s[1:] {
		case "w":
			return Tile{Type: White}, nil
		case "g":
			return Tile{Type: Green}, nil
		case "r":
			return Tile{Type: Red}, nil
		default:
			return Tile{}, &ParsingError{Input: s, Want: "dragon tile"}
		}
	case 'w':
		switch s[1:] {
		case "e":
			return Tile{Type: East}, nil
		case "s":
			return Tile{Type: South}, nil
		case "w":
			return Tile{Type: West}, nil
		case "n":
			return Tile{Type: North}, nil
		default:
			return Tile{}, &ParsingError{Input: s, Want: "wind tile"}
		}
	default:
		return Tile{}, &ParsingError{Input: s, Want: "tile"}
	}
}

// String renders a tile back into the grammar ParseTile accepts.
func (t Tile) String() string {
	switch {
	case t.Type.IsNumbered():
		suit, _ := t.Type.Suit()
		n, _ := t.Type.Number()
		if t.Red {
			return suit.String() + strconv.Itoa(n) + "r"
		}
		return suit.String() + strconv.Itoa(n)
	case t.Type.IsDragon():
		switch t.Type {
		case White:
			return "dw"
		case Green:
			return "dg"
		default:
			return "dr"
		}
	default:
		switch t.Type {
		case East:
			return "we"
		case South:
			return "ws"
		case West:
			return "ww"
		default:
			return "wn"
		}
	}
}

// ParseHand parses a comma-separated list of tiles, e.g. "m1,m2,m3,p5r".
// An empty string parses to a nil, non-error slice.
func ParseHand(s string) ([]Tile, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil, nil
	}
	parts := strings.Split(s, ",")
	tiles := make([]Tile, 0, len(parts))
	for _, p := range parts {
		t, err := ParseTile(strings.TrimSpace(p))
		if err != nil {
			return nil, err
		}
		tiles = append(tiles, t)
	}
	return tiles, nil
}

// ParseMelds parses a `|`-separated list of melds, each a comma-separated
// list of tiles with an optional leading `!` marking the meld closed
// (used for ankan — a quad called from one's own draw rather than
// another player's discard). An empty string parses to a nil,
// non-error slice.
func ParseMelds(s string) ([]Meld, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil, nil
	}
	groups := strings.Split(s, "|")
	melds := make([]Meld, 0, len(groups))
	for _, g := range groups {
		g = strings.TrimSpace(g)
		open := true
		if strings.HasPrefix(g, "!") {
			open = false
			g = g[1:]
		}
		tiles, err := ParseHand(g)
		if err != nil {
			return nil, err
		}
		m, err := NewMeld(tiles, open)
		if err != nil {
			return nil, err
		}
		melds = append(melds, m)
	}
	return melds, nil
}

// ParseWind parses a single-character seat/round wind designator:
// 'e', 's', 'w', or 'n'.
func ParseWind(b byte) (TileType, error) {
	switch b {
	case 'e':
		return East, nil
	case 's':
		return South, nil
	case 'w':
		return West, nil
	case 'n':
		return North, nil
	default:
		return 0, &ParsingError{Input: string(b), Want: "wind character"}
	}
}
