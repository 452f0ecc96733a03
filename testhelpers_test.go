package mahjong

import "testing"

// bestCandidate reproduces Score's Maximality selection but stops short
// of payment math, returning the winning decomposition's yaku, han, and
// fu for tests that check detection logic directly.
func bestCandidate(t *testing.T, closedTiles, calledMelds, winTile string, seatWind, roundWind byte, winType byte, ruleset string) (Hand, []YakuResult, int, int) {
	t.Helper()

	closed, err := ParseHand(closedTiles)
	if err != nil {
		t.Fatalf("ParseHand(%q): %v", closedTiles, err)
	}
	melds, err := ParseMelds(calledMelds)
	if err != nil {
		t.Fatalf("ParseMelds(%q): %v", calledMelds, err)
	}
	win, err := ParseTile(winTile)
	if err != nil {
		t.Fatalf("ParseTile(%q): %v", winTile, err)
	}
	seat, err := ParseWind(seatWind)
	if err != nil {
		t.Fatalf("ParseWind(%q): %v", string(seatWind), err)
	}
	round, err := ParseWind(roundWind)
	if err != nil {
		t.Fatalf("ParseWind(%q): %v", string(roundWind), err)
	}
	rs, err := ParseRuleset(ruleset)
	if err != nil {
		t.Fatalf("ParseRuleset(%q): %v", ruleset, err)
	}
	var wt WinType
	switch winType {
	case 't':
		wt = Tsumo
	case 'r':
		wt = Ron
	default:
		t.Fatalf("bad winType %q", string(winType))
	}

	game := GameState{Ruleset: rs, RoundWind: round}
	seatState := SeatState{ClosedTiles: closed, CalledMelds: melds, SeatWind: seat}
	winState := Win{Tile: win, Type: wt}

	hands, err := ComposeHand(closed, melds, win)
	if err != nil {
		t.Fatalf("ComposeHand: %v", err)
	}

	isOpen := !seatState.IsClosed()

	type candidate struct {
		hand Hand
		yaku []YakuResult
		fu   int
		han  int
		bp   int
	}
	var best *candidate
	for _, h := range hands {
		yaku := EvaluateYaku(h, game, seatState, winState)
		fu := CountFu(h, game, seatState, winState, yaku)
		han := countHan(yaku, isOpen, rs)
		bp, err := calcBasePoints(han, fu, yaku, rs)
		if err != nil {
			continue
		}
		if best == nil || bp > best.bp {
			best = &candidate{hand: h, yaku: yaku, fu: fu, han: han, bp: bp}
		}
	}
	if best == nil {
		t.Fatalf("no scoring candidate for closed=%q melds=%q win=%q", closedTiles, calledMelds, winTile)
	}
	return best.hand, best.yaku, best.fu, best.han
}

func yakuIDs(results []YakuResult) []Yaku {
	ids := make([]Yaku, len(results))
	for i, r := range results {
		ids[i] = r.ID
	}
	return ids
}

func assertYakuEqual(t *testing.T, got []YakuResult, want ...Yaku) {
	t.Helper()
	gotIDs := yakuIDs(got)
	if len(gotIDs) != len(want) {
		t.Fatalf("yaku mismatch: got %v, want %v", gotIDs, want)
	}
	for i := range want {
		if gotIDs[i] != want[i] {
			t.Fatalf("yaku mismatch: got %v, want %v", gotIDs, want)
		}
	}
}
