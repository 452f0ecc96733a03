package mahjong

import "sort"

// HandShape is the top-level winning pattern a completed hand satisfies.
type HandShape uint8

const (
	ShapeStandard HandShape = iota
	ShapeChiitoi
	ShapeKokushi
)

// Hand is one legal reading of a finished 14-tile hand. A hand with an
// ambiguous decomposition (more than one set of melds fits the same
// tiles) produces multiple Hand values; Score picks among them by the
// Maximality property (see Score).
type Hand struct {
	Shape HandShape

	// Standard only.
	Melds []Meld
	Pair  TileType

	// Chiitoi only: the seven pair tiles, sorted.
	Pairs []TileType

	// Kokushi only: true if the winning tile completed the pair rather
	// than filling the last missing singleton (the "thirteen-wait").
	KokushiTanki bool

	// AllTiles is every tile in the hand, called meld tiles included,
	// sorted by Type. Red flags are preserved for the closed and winning
	// tiles; called meld tiles carry no red flag, since Meld stores only
	// TileType. Populated for every shape; used for dora/aka counting and
	// whole-hand scans that don't care about the shape.
	AllTiles []Tile
}

// ComposeHand enumerates every legal reading of a finished hand: closed
// tiles plus the winning tile decomposed against any already-called
// melds. It returns every Standard decomposition the tiles admit, and
// additionally the Chiitoi or Kokushi reading when the tiles qualify and
// no melds have been called (both are closed-hand-only shapes).
func ComposeHand(closedTiles []Tile, calledMelds []Meld, winTile Tile) ([]Hand, error) {
	// A called kan uses four physical tiles but still counts as a single
	// meld, so the closed portion of the hand (plus the winning tile)
	// isn't fixed at 14 minus the called tiles: it's always exactly
	// 3*targetMelds+2, regardless of how many of the called melds are kans.
	targetMelds := 4 - len(calledMelds)
	if targetMelds < 0 {
		return nil, &ValueError{Field: "calledMelds", Value: len(calledMelds)}
	}

	all := make([]Tile, 0, len(closedTiles)+1)
	all = append(all, closedTiles...)
	all = append(all, winTile)
	wantClosed := 3*targetMelds + 2
	if len(all) != wantClosed {
		return nil, &CompositionError{TileCount: len(all), Reason: "closed tiles plus the winning tile must form complete melds and a pair"}
	}
	for _, m := range calledMelds {
		for _, tt := range m.Tiles {
			all = append(all, Tile{Type: tt})
		}
	}
	sort.Slice(all, func(i, j int) bool { return all[i].Type < all[j].Type })

	var hands []Hand

	var counts [numTileTypes]int
	for _, t := range closedTiles {
		counts[t.Type]++
	}
	counts[winTile.Type]++
	for _, res := range composeStandard(counts, targetMelds) {
		melds := make([]Meld, 0, 4)
		melds = append(melds, calledMelds...)
		melds = append(melds, res.melds...)
		hands = append(hands, Hand{
			Shape:    ShapeStandard,
			Melds:    melds,
			Pair:     res.pair,
			AllTiles: all,
		})
	}

	if len(calledMelds) == 0 {
		if pairs, ok := composeChiitoi(counts); ok {
			hands = append(hands, Hand{Shape: ShapeChiitoi, Pairs: pairs, AllTiles: all})
		}
		if tanki, ok := composeKokushi(counts, winTile.Type); ok {
			hands = append(hands, Hand{Shape: ShapeKokushi, KokushiTanki: tanki, AllTiles: all})
		}
	}

	if len(hands) == 0 {
		return nil, &CompositionError{TileCount: len(all), Reason: "no legal decomposition into melds/pair, seven pairs, or thirteen orphans"}
	}
	return hands, nil
}

type standardResult struct {
	melds []Meld
	pair  TileType
}

// composeStandard recursively partitions a tile-type multiset into
// targetMelds melds and exactly one pair, branching on the smallest
// remaining tile at each step: it may start a pair, a triplet, a quad,
// or (for a numbered tile with room in its suit) a sequence. Every
// branch that fully consumes the counts is a distinct legal reading.
func composeStandard(counts [numTileTypes]int, targetMelds int) []standardResult {
	var results []standardResult

	var rec func(counts [numTileTypes]int, melds []Meld, pair TileType, havePair bool)
	rec = func(counts [numTileTypes]int, melds []Meld, pair TileType, havePair bool) {
		idx := -1
		for i, c := range counts {
			if c > 0 {
				idx = i
				break
			}
		}
		if idx == -1 {
			if havePair && len(melds) == targetMelds {
				results = append(results, standardResult{melds: melds, pair: pair})
			}
			return
		}
		tt := TileType(idx)

		if !havePair && counts[idx] >= 2 {
			next := counts
			next[idx] -= 2
			rec(next, melds, tt, true)
		}

		if len(melds) < targetMelds {
			if counts[idx] >= 3 {
				next := counts
				next[idx] -= 3
				rec(next, withMeld(melds, Meld{Kind: Triplet, Tiles: []TileType{tt, tt, tt}}), pair, havePair)
			}
			if counts[idx] >= 4 {
				next := counts
				next[idx] -= 4
				rec(next, withMeld(melds, Meld{Kind: Quad, Tiles: []TileType{tt, tt, tt, tt}}), pair, havePair)
			}
			if tt.IsNumbered() {
				n := tt.numberIndex()
				if n <= 6 {
					i2, i3 := idx+1, idx+2
					if counts[i2] >= 1 && counts[i3] >= 1 {
						next := counts
						next[idx]--
						next[i2]--
						next[i3]--
						rec(next, withMeld(melds, Meld{Kind: Sequence, Tiles: []TileType{tt, tt + 1, tt + 2}}), pair, havePair)
					}
				}
			}
		}
	}

	rec(counts, nil, 0, false)
	return results
}

func withMeld(melds []Meld, m Meld) []Meld {
	out := make([]Meld, len(melds)+1)
	copy(out, melds)
	out[len(melds)] = m
	return out
}

// composeChiitoi reports whether counts forms exactly seven distinct pairs.
func composeChiitoi(counts [numTileTypes]int) ([]TileType, bool) {
	var pairs []TileType
	for i, c := range counts {
		switch c {
		case 0:
			continue
		case 2:
			pairs = append(pairs, TileType(i))
		default:
			return nil, false
		}
	}
	if len(pairs) != 7 {
		return nil, false
	}
	return pairs, true
}

// composeKokushi reports whether counts forms thirteen orphans: one of
// each terminal and honor, with exactly one of them doubled. The bool
// result reports whether the pair was completed by the winning tile
// (the thirteen-wait, "junsei" kokushi) as opposed to a singleton.
func composeKokushi(counts [numTileTypes]int, winType TileType) (tanki bool, ok bool) {
	if !isKokushiTileType(winType) {
		return false, false
	}
	pairTile := TileType(255)
	havePair := false
	for i, c := range counts {
		tt := TileType(i)
		if c == 0 {
			continue
		}
		if !isKokushiTileType(tt) {
			return false, false
		}
		switch c {
		case 1:
		case 2:
			if havePair {
				return false, false
			}
			havePair = true
			pairTile = tt
		default:
			return false, false
		}
	}
	if !havePair {
		return false, false
	}
	for _, tt := range kokushiTileTypes {
		if counts[tt] == 0 {
			return false, false
		}
	}
	return pairTile == winType, true
}

var kokushiTileTypes = []TileType{Man1, Man9, Pin1, Pin9, So1, So9, East, South, West, North, White, Green, Red}

func isKokushiTileType(tt TileType) bool {
	for _, k := range kokushiTileTypes {
		if k == tt {
			return true
		}
	}
	return false
}
