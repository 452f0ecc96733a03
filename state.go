package mahjong

// GameState is the table-level context a win is scored against: which
// ruleset governs, which wind the round is on, how many repeat sticks
// are on the table, and which tiles the dora indicators name.
type GameState struct {
	Ruleset        RiichiRuleset
	RoundWind      TileType // East, South, West, or North
	Repeats        int      // honba counters; Score adds the fixed per-repeat bonus automatically
	DoraIndicators []Tile
	UraDoraMarkers []Tile // only relevant to a riichi win; nil otherwise
}

// SeatState is the winning player's hand and seat context. A seat is the
// dealer exactly when its SeatWind is East, so there is no separate
// IsDealer field.
type SeatState struct {
	ClosedTiles    []Tile
	CalledMelds    []Meld
	SeatWind       TileType // East, South, West, or North
	IsRiichi       bool
	IsDoubleRiichi bool
	IsIppatsu      bool
	SpecialYaku    []Yaku // caller-asserted yaku the core can't infer from tiles alone: nagashi mangan, tenho, chiho
}

// WinType distinguishes a self-draw from a discard win.
type WinType uint8

const (
	Tsumo WinType = iota
	Ron
)

// Win is the winning tile and how it was obtained.
type Win struct {
	Tile    Tile
	Type    WinType
	EndKind string // "", "rinshan", "chankan", "haitei", "houtei"
}

// AllTiles returns every tile the seat holds at the moment of winning:
// closed tiles, called meld tiles, and the winning tile itself.
func (s SeatState) AllTiles(win Win) []Tile {
	all := make([]Tile, 0, len(s.ClosedTiles)+4*len(s.CalledMelds)+1)
	all = append(all, s.ClosedTiles...)
	for _, m := range s.CalledMelds {
		for _, tt := range m.Tiles {
			all = append(all, Tile{Type: tt})
		}
	}
	all = append(all, win.Tile)
	return all
}

// IsClosed reports whether the seat has called no melds other than
// closed kans, i.e. the hand is still menzen for yaku purposes.
func (s SeatState) IsClosed() bool {
	for _, m := range s.CalledMelds {
		if m.Open {
			return false
		}
	}
	return true
}
