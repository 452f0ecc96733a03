package mahjong

// TileType enumerates the 34 distinct tile faces in Riichi Mahjong:
// nine numbers in each of three suits, four winds, three dragons.
// Unlike Tile, TileType carries no notion of red-ness — it is the key
// composition and counting work over, since a red five and a plain five
// occupy the same slot in every meld and every wait.
type TileType uint8

const (
	Man1 TileType = iota
	Man2
	Man3
	Man4
	Man5
	Man6
	Man7
	Man8
	Man9
	Pin1
	Pin2
	Pin3
	Pin4
	Pin5
	Pin6
	Pin7
	Pin8
	Pin9
	So1
	So2
	So3
	So4
	So5
	So6
	So7
	So8
	So9
	East
	South
	West
	North
	White
	Green
	Red

	numTileTypes = int(Red) + 1
)

// Suit is the family a numbered tile belongs to.
type Suit uint8

const (
	SuitMan Suit = iota
	SuitPin
	SuitSou
)

// Tile is a single physical tile: a face plus whether it is the red
// five variant of that face. Red is excluded from equality, ordering,
// and hashing everywhere in this package — two Tile values with the
// same Type are the same tile for every purpose except dora counting.
type Tile struct {
	Type TileType
	Red  bool
}

// Same reports whether two tiles occupy the same composition slot,
// ignoring red-ness.
func (t Tile) Same(other Tile) bool { return t.Type == other.Type }

// IsNumbered reports whether tt is a suited number tile (not a wind or dragon).
func (tt TileType) IsNumbered() bool { return tt <= So9 }

// IsHonor reports whether tt is a wind or dragon.
func (tt TileType) IsHonor() bool { return tt >= East }

// IsWind reports whether tt is one of the four winds.
func (tt TileType) IsWind() bool { return tt >= East && tt <= North }

// IsDragon reports whether tt is one of the three dragons.
func (tt TileType) IsDragon() bool { return tt >= White && tt <= Red }

// IsTerminal reports whether tt is a 1 or 9.
func (tt TileType) IsTerminal() bool {
	if !tt.IsNumbered() {
		return false
	}
	n := tt.numberIndex()
	return n == 0 || n == 8
}

// IsSimple reports whether tt is a numbered tile that is neither 1 nor 9.
func (tt TileType) IsSimple() bool {
	return tt.IsNumbered() && !tt.IsTerminal()
}

// IsTerminalOrHonor reports whether tt counts as yaochuu for chanta/junchan/honroto-family yaku.
func (tt TileType) IsTerminalOrHonor() bool {
	return tt.IsHonor() || tt.IsTerminal()
}

// IsFive reports whether tt is the 5 of any suit (the only face red fives can be).
func (tt TileType) IsFive() bool {
	return tt == Man5 || tt == Pin5 || tt == So5
}

// Suit returns the suit of a numbered tile. The second return value is
// false for winds and dragons.
func (tt TileType) Suit() (Suit, bool) {
	switch {
	case tt <= Man9:
		return SuitMan, true
	case tt <= Pin9:
		return SuitPin, true
	case tt <= So9:
		return SuitSou, true
	default:
		return 0, false
	}
}

// numberIndex returns the 0-based rank within a tile's suit (0 for a 1, 8 for a 9).
// It returns -1 for honor tiles.
func (tt TileType) numberIndex() int {
	switch {
	case tt <= Man9:
		return int(tt - Man1)
	case tt <= Pin9:
		return int(tt - Pin1)
	case tt <= So9:
		return int(tt - So1)
	default:
		return -1
	}
}

// Number returns the 1-based rank of a numbered tile (1..9), and false for honors.
func (tt TileType) Number() (int, bool) {
	n := tt.numberIndex()
	if n < 0 {
		return 0, false
	}
	return n + 1, true
}

// Dora returns the tile that this tile's dora indicator points to: the
// next number (wrapping 9 to 1), the next wind (wrapping North to East),
// or the next dragon (wrapping Red to White).
func (tt TileType) Dora() TileType {
	switch {
	case tt.IsNumbered():
		suit, _ := tt.Suit()
		n := tt.numberIndex()
		next := (n + 1) % 9
		return suitBase(suit) + TileType(next)
	case tt.IsWind():
		if tt == North {
			return East
		}
		return tt + 1
	case tt.IsDragon():
		if tt == Red {
			return White
		}
		return tt + 1
	default:
		return tt
	}
}

func suitBase(s Suit) TileType {
	switch s {
	case SuitMan:
		return Man1
	case SuitPin:
		return Pin1
	default:
		return So1
	}
}

func (s Suit) String() string {
	switch s {
	case SuitMan:
		return "m"
	case SuitPin:
		return "p"
	default:
		return "s"
	}
}
