package mahjong

// CountFu computes the fu value of a completed hand, given the yaku it
// was already found to satisfy (Pinfu short-circuits the usual
// pair/meld/wait accounting with a fixed total). Chiitoi and Kokushi
// don't accumulate fu the normal way; they score a fixed value.
func CountFu(hand Hand, game GameState, seat SeatState, win Win, yaku []YakuResult) int {
	switch hand.Shape {
	case ShapeChiitoi:
		return 25
	case ShapeKokushi:
		return 20
	}

	for _, y := range yaku {
		if y.ID == YakuPinfu {
			if win.Type == Ron {
				return 30
			}
			return 20
		}
	}

	fu := 20
	winTile := win.Tile.Type
	closed := !anyMeldOpen(hand.Melds)

	switch {
	case win.Type == Tsumo && win.EndKind == "rinshan":
		if game.Ruleset.IsRinshanTsumo() {
			fu += 2
		}
	case win.Type == Tsumo:
		fu += 2
	case closed:
		fu += 10
	}

	pair := hand.Pair
	switch {
	case pair.IsDragon():
		fu += 2
	case pair.IsWind():
		matchRound := pair == game.RoundWind
		matchSeat := pair == seat.SeatWind
		switch {
		case matchRound && matchSeat:
			fu += game.Ruleset.DoubleWindFu()
		case matchRound || matchSeat:
			fu += 2
		}
	}
	if pair == winTile {
		fu += 2
	}

	waitFuApplied := false
	for _, m := range hand.Melds {
		if m.IsSeq() {
			if !waitFuApplied && !m.Open && m.Contains(winTile) {
				switch {
				case m.Tiles[1] == winTile && pair != winTile:
					fu += 2 // kanchan: winning tile fills the middle of the sequence
					waitFuApplied = true
				case m.HasTerminal() && !winTile.IsTerminal() && pair != winTile:
					fu += 2 // penchan: winning tile completes an edge wait
					waitFuApplied = true
				}
			}
			continue
		}

		base := meldBaseFu(m)
		switch {
		case m.Open:
			fu += base
		case win.Type == Ron && m.Contains(winTile):
			if anyClosedSeqContains(hand.Melds, winTile) {
				fu += base * 2 // another wait could have absorbed the ron, so this stays an ankou
			} else {
				fu += base // the ron tile itself completed this triplet: scores as if called
			}
		case win.Type == Ron:
			fu += base * 2
		default: // Tsumo never opens a concealed meld
			fu += base * 2
		}
	}

	return roundUpToTens(fu)
}

// meldBaseFu is the fu an open version of the meld would contribute: 2
// for a simple triplet, 4 for a yaochuu triplet, and 4x those values for
// a quad. A closed triplet or quad is worth exactly double its open value.
func meldBaseFu(m Meld) int {
	v := 2
	if m.Tiles[0].IsTerminalOrHonor() {
		v = 4
	}
	if m.IsQuad() {
		v *= 4
	}
	return v
}

func anyClosedSeqContains(melds []Meld, tt TileType) bool {
	for _, m := range melds {
		if m.IsSeq() && !m.Open && m.Contains(tt) {
			return true
		}
	}
	return false
}

func roundUpToTens(fu int) int {
	if r := fu % 10; r != 0 {
		fu += 10 - r
	}
	return fu
}
