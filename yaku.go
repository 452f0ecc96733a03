package mahjong

import "strings"

// Yaku identifies one scoring pattern. A completed hand can satisfy
// several at once; EvaluateYaku applies the mutual-exclusion and
// upgrade rules described in its doc comment as it assembles the final list.
type Yaku uint8

const (
	YakuChiitoi Yaku = iota
	YakuClosedTsumo

	YakuPinfu
	YakuIpeiko
	YakuSanshokuDoujun
	YakuIttsuu
	YakuRyanpeiko

	YakuToitoi
	YakuSananko
	YakuSanshokuDouko
	YakuSankantsu

	YakuTanyao
	YakuYakuhai
	YakuChanta
	YakuJunchan
	YakuHonroto
	YakuShosangen

	YakuHonitsu
	YakuChinitsu

	YakuKokushi
	YakuSuuankou
	YakuSuuankouTanki
	YakuDaisangen
	YakuShosushi
	YakuDaisushi
	YakuTsuiso
	YakuDaichiishin
	YakuChinroto
	YakuRyuiso
	YakuChurenPoto
	YakuSukantsu
	YakuSpecialWait

	YakuRiichi
	YakuDoubleRiichi
	YakuIppatsu
	YakuUnderSea
	YakuUnderRiver
	YakuAfterKan
	YakuRobbedKan
	YakuNagashiMangan

	YakuTenho
	YakuChiho
)

// IsYakuman reports whether y is one of the limit hands.
func (y Yaku) IsYakuman() bool {
	switch y {
	case YakuKokushi, YakuSuuankou, YakuSuuankouTanki, YakuDaisangen, YakuShosushi,
		YakuDaisushi, YakuTsuiso, YakuDaichiishin, YakuChinroto, YakuRyuiso,
		YakuChurenPoto, YakuSukantsu, YakuSpecialWait, YakuTenho, YakuChiho:
		return true
	default:
		return false
	}
}

// YakuResult is one detected yaku. Han is only populated for YakuYakuhai,
// whose value depends on how many dragon/wind melds are present; every
// other yaku's han comes from the fixed table in score.go.
type YakuResult struct {
	ID  Yaku
	Han int
}

// EvaluateYaku detects every yaku a completed hand satisfies and applies
// Riichi's mutual-exclusion rules: Ipeiko is replaced by Ryanpeiko when
// both fire, Riichi is replaced by DoubleRiichi, a zero-value Yakuhai is
// dropped, Nagashi Mangan clears everything else, and any yakuman drops
// every non-yakuman yaku already collected.
func EvaluateYaku(hand Hand, game GameState, seat SeatState, win Win) []YakuResult {
	var yaku []YakuResult

	for _, sy := range seat.SpecialYaku {
		yaku = pushChecked(yaku, YakuResult{ID: sy})
	}
	switch win.EndKind {
	case "haitei":
		if win.Type == Tsumo {
			yaku = pushChecked(yaku, YakuResult{ID: YakuUnderSea})
		}
	case "houtei":
		if win.Type == Ron {
			yaku = pushChecked(yaku, YakuResult{ID: YakuUnderRiver})
		}
	case "rinshan":
		yaku = pushChecked(yaku, YakuResult{ID: YakuAfterKan})
	case "chankan":
		yaku = pushChecked(yaku, YakuResult{ID: YakuRobbedKan})
	}
	if seat.IsDoubleRiichi {
		yaku = pushChecked(yaku, YakuResult{ID: YakuDoubleRiichi})
	} else if seat.IsRiichi {
		yaku = pushChecked(yaku, YakuResult{ID: YakuRiichi})
	}
	if seat.IsIppatsu && game.Ruleset.AllowsIppatsu() {
		yaku = pushChecked(yaku, YakuResult{ID: YakuIppatsu})
	}

	switch hand.Shape {
	case ShapeStandard:
		for _, r := range findYakuStandard(hand, game, seat, win) {
			yaku = pushChecked(yaku, r)
		}
	case ShapeChiitoi:
		for _, r := range findYakuChiitoi(hand.Pairs, win.Type) {
			yaku = pushChecked(yaku, r)
		}
	case ShapeKokushi:
		if hand.KokushiTanki {
			yaku = pushChecked(yaku, YakuResult{ID: YakuKokushi})
			yaku = pushChecked(yaku, YakuResult{ID: YakuSpecialWait})
		} else {
			yaku = pushChecked(yaku, YakuResult{ID: YakuKokushi})
		}
	}

	return yaku
}

func pushChecked(list []YakuResult, y YakuResult) []YakuResult {
	if anyYakuman(list) && !y.ID.IsYakuman() {
		return list
	}
	if containsID(list, y.ID) {
		return list
	}
	switch y.ID {
	case YakuRyanpeiko:
		return append(removeID(list, YakuIpeiko), y)
	case YakuDoubleRiichi:
		return append(removeID(list, YakuRiichi), y)
	case YakuYakuhai:
		if y.Han <= 0 {
			return list
		}
		return append(list, y)
	case YakuNagashiMangan:
		return []YakuResult{y}
	default:
		if y.ID.IsYakuman() {
			list = filterYakuman(list)
		}
		return append(list, y)
	}
}

func anyYakuman(list []YakuResult) bool {
	for _, r := range list {
		if r.ID.IsYakuman() {
			return true
		}
	}
	return false
}

func containsID(list []YakuResult, id Yaku) bool {
	for _, r := range list {
		if r.ID == id {
			return true
		}
	}
	return false
}

func removeID(list []YakuResult, id Yaku) []YakuResult {
	out := make([]YakuResult, 0, len(list))
	for _, r := range list {
		if r.ID != id {
			out = append(out, r)
		}
	}
	return out
}

func filterYakuman(list []YakuResult) []YakuResult {
	out := make([]YakuResult, 0, len(list))
	for _, r := range list {
		if r.ID.IsYakuman() {
			out = append(out, r)
		}
	}
	return out
}

// findYakuStandard is the bulk of the yaku engine: a 4-meld-plus-pair
// hand admits the largest number of distinct yaku, so most of the
// detection work lives here.
func findYakuStandard(hand Hand, game GameState, seat SeatState, win Win) []YakuResult {
	var yaku []YakuResult
	melds := hand.Melds
	pair := hand.Pair
	winType := win.Type
	winTile := win.Tile.Type
	allTiles := hand.AllTiles
	open := anyMeldOpen(melds)
	closed := !open

	if winType == Tsumo && closed {
		yaku = append(yaku, YakuResult{ID: YakuClosedTsumo})
	}

	if !tilesHaveHonor(allTiles) && !tilesHaveTerminal(allTiles) {
		yaku = append(yaku, YakuResult{ID: YakuTanyao})
	} else if tilesHaveSimple(allTiles) {
		allYaochuu := true
		for _, m := range melds {
			if !(m.HasTerminal() || m.IsHonor()) {
				allYaochuu = false
				break
			}
		}
		if allYaochuu && !pair.IsSimple() {
			if tilesHaveHonor(allTiles) {
				yaku = append(yaku, YakuResult{ID: YakuChanta})
			} else {
				yaku = append(yaku, YakuResult{ID: YakuJunchan})
			}
		}
	}

	var seqs, trips []Meld
	for _, m := range melds {
		if m.IsSeq() {
			seqs = append(seqs, m)
		} else {
			trips = append(trips, m)
		}
	}
	suits := countTileSuits(allTiles)

	switch len(seqs) {
	case 0:
		yaku = append(yaku, YakuResult{ID: YakuToitoi})
		if closed {
			switch {
			case pair == winTile:
				yaku = append(yaku, YakuResult{ID: YakuSuuankouTanki})
			case winType == Tsumo:
				yaku = append(yaku, YakuResult{ID: YakuSuuankou})
			default:
				yaku = append(yaku, YakuResult{ID: YakuSananko})
			}
		} else if checkSananko(trips, seqs, pair, winType, winTile) {
			yaku = append(yaku, YakuResult{ID: YakuSananko})
		}
	case 1:
		if checkSananko(trips, seqs, pair, winType, winTile) {
			yaku = append(yaku, YakuResult{ID: YakuSananko})
		}
	case 4:
		// Pinfu only requires ITS OWN winning wait to come from an
		// unopened sequence; a chi called elsewhere in the hand doesn't
		// disqualify it, as long as all four melds are sequences and the
		// pair carries no value.
		if !pair.IsDragon() {
			hasPinfuWait := false
			for _, m := range seqs {
				isKanchan := m.Tiles[1] == winTile
				isPenchan := m.HasTerminal() && !winTile.IsTerminal()
				if !m.Open && m.Contains(winTile) && !isKanchan && !isPenchan {
					hasPinfuWait = true
					break
				}
			}
			if hasPinfuWait && pair != game.RoundWind && pair != seat.SeatWind {
				yaku = append(yaku, YakuResult{ID: YakuPinfu})
			}
		}
	}

	if len(seqs) >= 2 && closed {
		switch countIpeiko(seqs) {
		case 1:
			yaku = append(yaku, YakuResult{ID: YakuIpeiko})
		case 2:
			yaku = append(yaku, YakuResult{ID: YakuRyanpeiko})
		}
	}

	if len(seqs) >= 3 && checkIttsu(seqs) {
		yaku = append(yaku, YakuResult{ID: YakuIttsuu})
	}

	quads := 0
	for _, m := range melds {
		if m.IsQuad() {
			quads++
		}
	}
	switch quads {
	case 3:
		yaku = append(yaku, YakuResult{ID: YakuSankantsu})
	case 4:
		yaku = append(yaku, YakuResult{ID: YakuSukantsu})
	}

	if allTerminalOrHonor(allTiles) {
		yaku = append(yaku, YakuResult{ID: YakuHonroto})
		switch {
		case !tilesHaveTerminal(allTiles):
			yaku = append(yaku, YakuResult{ID: YakuTsuiso})
		case !tilesHaveHonor(allTiles):
			yaku = append(yaku, YakuResult{ID: YakuChinroto})
		}
	}

	switch suits {
	case 1:
		honorPresent := false
		for _, m := range melds {
			if m.IsHonor() {
				honorPresent = true
				break
			}
		}
		if honorPresent || pair.IsHonor() {
			yaku = append(yaku, YakuResult{ID: YakuHonitsu})
		} else {
			yaku = append(yaku, YakuResult{ID: YakuChinitsu})
			if closed && checkChurenpoto(allTiles) {
				yaku = append(yaku, YakuResult{ID: YakuChurenPoto})
				if countTileType(allTiles, winTile) >= 2 {
					yaku = append(yaku, YakuResult{ID: YakuSpecialWait})
				}
			}
		}
		greenPair := isPureGreen(pair, game.Ruleset)
		greenMelds := true
		hasGreenDragon := pair == Green
		for _, m := range melds {
			if !meldIsPureGreen(m, game.Ruleset) {
				greenMelds = false
				break
			}
			if m.Tiles[0] == Green {
				hasGreenDragon = true
			}
		}
		if greenPair && greenMelds && (hasGreenDragon || !game.Ruleset.RequiresAllGreenHatsu()) {
			yaku = append(yaku, YakuResult{ID: YakuRyuiso})
		}
	case 3:
		if len(seqs) >= 3 && checkSanshokuDoujun(seqs) {
			yaku = append(yaku, YakuResult{ID: YakuSanshokuDoujun})
		} else if len(seqs) <= 1 && checkSanshokuDouko(trips) {
			yaku = append(yaku, YakuResult{ID: YakuSanshokuDouko})
		}
	}

	yakuhaiHan := 0
	for _, m := range melds {
		if !m.IsHonor() {
			continue
		}
		if m.Tiles[0].IsDragon() {
			yakuhaiHan++
			continue
		}
		w := m.Tiles[0]
		matchRound := w == game.RoundWind
		matchSeat := w == seat.SeatWind
		switch {
		case matchRound && matchSeat:
			yakuhaiHan += 2
		case matchRound || matchSeat:
			yakuhaiHan++
		}
	}
	yaku = append(yaku, YakuResult{ID: YakuYakuhai, Han: yakuhaiHan})

	windsPresent := map[TileType]bool{}
	dragonsPresent := map[TileType]bool{}
	for _, t := range allTiles {
		if t.Type.IsWind() {
			windsPresent[t.Type] = true
		}
		if t.Type.IsDragon() {
			dragonsPresent[t.Type] = true
		}
	}
	if len(windsPresent) == 4 {
		if pair.IsWind() {
			yaku = append(yaku, YakuResult{ID: YakuShosushi})
		} else {
			yaku = append(yaku, YakuResult{ID: YakuDaisushi})
		}
	}
	if len(dragonsPresent) == 3 {
		if pair.IsDragon() {
			yaku = append(yaku, YakuResult{ID: YakuShosangen})
		} else {
			yaku = append(yaku, YakuResult{ID: YakuDaisangen})
		}
	}

	return yaku
}

// findYakuChiitoi covers the handful of yaku a seven-pairs hand can earn:
// tanyao, honroto, honitsu, chinitsu, and daichiishin.
func findYakuChiitoi(pairs []TileType, winType WinType) []YakuResult {
	yaku := []YakuResult{{ID: YakuChiitoi}}
	if winType == Tsumo {
		yaku = append(yaku, YakuResult{ID: YakuClosedTsumo})
	}
	switch {
	case !ttHaveHonor(pairs):
		if !ttHaveTerminal(pairs) {
			yaku = append(yaku, YakuResult{ID: YakuTanyao})
		}
		if countTTSuits(pairs) == 1 {
			yaku = append(yaku, YakuResult{ID: YakuChinitsu})
		}
	case !ttHaveSimple(pairs):
		yaku = append(yaku, YakuResult{ID: YakuHonroto})
		if !ttHaveTerminal(pairs) {
			yaku = append(yaku, YakuResult{ID: YakuDaichiishin})
		}
	case countTTSuits(pairs) == 1:
		yaku = append(yaku, YakuResult{ID: YakuHonitsu})
	}
	return yaku
}

func anyMeldOpen(melds []Meld) bool {
	for _, m := range melds {
		if m.Open {
			return true
		}
	}
	return false
}

// checkSananko reports three-concealed-triplets for a hand that is not a
// closed all-triplets hand. With exactly three closed triplets, a ron
// tile that completed one of them makes that triplet count as open,
// unless the pair or a closed sequence could have taken the tile instead.
func checkSananko(trips, seqs []Meld, pair TileType, winType WinType, winTile TileType) bool {
	closedTrips := 0
	for _, m := range trips {
		if !m.Open {
			closedTrips++
		}
	}
	switch closedTrips {
	case 4:
		return true
	case 3:
		if winType == Tsumo {
			return true
		}
		if pair == winTile {
			return true
		}
		containsWinTile := false
		for _, m := range trips {
			if m.Contains(winTile) {
				containsWinTile = true
				break
			}
		}
		if !containsWinTile {
			return true
		}
		for _, m := range seqs {
			if !m.Open && m.Contains(winTile) {
				return true
			}
		}
		return false
	default:
		return false
	}
}

func tilesHaveHonor(tiles []Tile) bool {
	for _, t := range tiles {
		if t.Type.IsHonor() {
			return true
		}
	}
	return false
}

func tilesHaveTerminal(tiles []Tile) bool {
	for _, t := range tiles {
		if t.Type.IsTerminal() {
			return true
		}
	}
	return false
}

func tilesHaveSimple(tiles []Tile) bool {
	for _, t := range tiles {
		if t.Type.IsSimple() {
			return true
		}
	}
	return false
}

func allTerminalOrHonor(tiles []Tile) bool {
	for _, t := range tiles {
		if !t.Type.IsTerminalOrHonor() {
			return false
		}
	}
	return true
}

func countTileSuits(tiles []Tile) int {
	present := map[Suit]bool{}
	for _, t := range tiles {
		if s, ok := t.Type.Suit(); ok {
			present[s] = true
		}
	}
	return len(present)
}

func countTileType(tiles []Tile, tt TileType) int {
	n := 0
	for _, t := range tiles {
		if t.Type == tt {
			n++
		}
	}
	return n
}

func ttHaveHonor(tts []TileType) bool {
	for _, tt := range tts {
		if tt.IsHonor() {
			return true
		}
	}
	return false
}

func ttHaveTerminal(tts []TileType) bool {
	for _, tt := range tts {
		if tt.IsTerminal() {
			return true
		}
	}
	return false
}

func ttHaveSimple(tts []TileType) bool {
	for _, tt := range tts {
		if tt.IsSimple() {
			return true
		}
	}
	return false
}

func countTTSuits(tts []TileType) int {
	present := map[Suit]bool{}
	for _, tt := range tts {
		if s, ok := tt.Suit(); ok {
			present[s] = true
		}
	}
	return len(present)
}

// countIpeiko counts how many disjoint pairs of identical sequences the
// meld list contains: 1 for ipeiko, 2 for ryanpeiko. Sequences are
// produced by the decomposer in ascending tile order, so two identical
// sequences are always adjacent in seqs; a match consumes both and skips
// ahead rather than re-pairing the second sequence with its neighbor.
func countIpeiko(seqs []Meld) int {
	n := len(seqs)
	count := 0
	i := 0
	for i+1 < n {
		if meldTilesEqual(seqs[i], seqs[i+1]) {
			count++
			i += 2
		} else {
			i++
		}
	}
	return count
}

func meldTilesEqual(a, b Meld) bool {
	if len(a.Tiles) != len(b.Tiles) {
		return false
	}
	for i := range a.Tiles {
		if a.Tiles[i] != b.Tiles[i] {
			return false
		}
	}
	return true
}

// checkIttsu reports whether the sequence melds contain a complete
// 1-through-9 run in one suit, possibly alongside one unrelated meld of
// a second suit.
func checkIttsu(melds []Meld) bool {
	if len(melds) < 3 {
		return false
	}
	seen := map[TileType]bool{}
	var all []TileType
	for _, m := range melds {
		for _, t := range m.Tiles {
			if !seen[t] {
				seen[t] = true
				all = append(all, t)
			}
		}
	}
	suitsPresent := map[Suit]bool{}
	for _, t := range all {
		if s, ok := t.Suit(); ok {
			suitsPresent[s] = true
		}
	}
	switch len(all) {
	case 9:
		return len(suitsPresent) == 1
	case 12:
		if len(suitsPresent) != 2 {
			return false
		}
		s0, _ := all[0].Suit()
		cnt := 0
		for _, t := range all {
			if s, _ := t.Suit(); s == s0 {
				cnt++
			}
		}
		return cnt == 9 || cnt == 3
	default:
		return false
	}
}

// checkSanshokuDoujun reports whether three sequences of the same number
// appear, one in each suit. Sequence melds are checked in every circular
// window of three so the matching triple doesn't need to be contiguous
// in discovery order.
func checkSanshokuDoujun(seqs []Meld) bool {
	n := len(seqs)
	if n < 3 {
		return false
	}
	for i := 0; i < n; i++ {
		a, b, c := seqs[i], seqs[(i+1)%n], seqs[(i+2)%n]
		na, _ := a.Tiles[0].Number()
		nb, _ := b.Tiles[0].Number()
		nc, _ := c.Tiles[0].Number()
		if na != nb || nb != nc {
			continue
		}
		sa, _ := a.Suit()
		sb, _ := b.Suit()
		sc, _ := c.Suit()
		if sa != sb && sb != sc && sa != sc {
			return true
		}
	}
	return false
}

// checkSanshokuDouko reports whether three triplets of the same number
// appear, one in each suit. A legal hand can't hold two triplets of the
// same exact tile, so a number match alone implies distinct suits.
func checkSanshokuDouko(trips []Meld) bool {
	var numbered []Meld
	for _, m := range trips {
		if !m.IsHonor() {
			numbered = append(numbered, m)
		}
	}
	n := len(numbered)
	if n < 3 {
		return false
	}
	for i := 0; i < n; i++ {
		a, b, c := numbered[i], numbered[(i+1)%n], numbered[(i+2)%n]
		na, _ := a.Tiles[0].Number()
		nb, _ := b.Tiles[0].Number()
		nc, _ := c.Tiles[0].Number()
		if na == nb && nb == nc {
			return true
		}
	}
	return false
}

// checkChurenpoto reports whether a concealed one-suit hand holds the
// nine-gates shape: three (or four) of the terminal, one or two of every
// other number, and three (or four) of the other terminal.
func checkChurenpoto(tiles []Tile) bool {
	seen := map[TileType]bool{}
	for _, t := range tiles {
		seen[t.Type] = true
	}
	if len(seen) != 9 {
		return false
	}
	var counts [9]int
	for _, t := range tiles {
		n, ok := t.Type.Number()
		if !ok {
			return false
		}
		counts[n-1]++
	}
	if counts[0] != 3 && counts[0] != 4 {
		return false
	}
	if counts[8] != 3 && counts[8] != 4 {
		return false
	}
	for i := 1; i <= 7; i++ {
		if counts[i] != 1 && counts[i] != 2 {
			return false
		}
	}
	return true
}

// isPureGreen reports whether tt can appear in a ryuiso hand: the green
// dragon, or one of sou's 2/3/4/6/8.
func isPureGreen(tt TileType, ruleset RiichiRuleset) bool {
	if tt.IsDragon() {
		return tt == Green
	}
	if s, ok := tt.Suit(); ok && s == SuitSou {
		n, _ := tt.Number()
		switch n {
		case 2, 3, 4, 6, 8:
			return true
		}
	}
	return false
}

func meldIsPureGreen(m Meld, ruleset RiichiRuleset) bool {
	for _, t := range m.Tiles {
		if !isPureGreen(t, ruleset) {
			return false
		}
	}
	return true
}

// parseSpecialYaku parses the comma-separated assertions ScoreFromStrings
// accepts for context the core can't infer from tiles alone. Riichi,
// double riichi, and ippatsu come back as booleans for SeatState's
// dedicated fields; nagashi mangan, tenho, and chiho come back as a
// []Yaku for SeatState.SpecialYaku.
func parseSpecialYaku(s string) (special []Yaku, riichi, doubleRiichi, ippatsu bool, err error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil, false, false, false, nil
	}
	for _, p := range strings.Split(s, ",") {
		switch strings.ToLower(strings.TrimSpace(p)) {
		case "riichi":
			riichi = true
		case "doubleriichi", "double_riichi", "double-riichi":
			doubleRiichi = true
		case "ippatsu":
			ippatsu = true
		case "nagashimangan", "nagashi_mangan", "nagashi-mangan":
			special = append(special, YakuNagashiMangan)
		case "tenho":
			special = append(special, YakuTenho)
		case "chiho":
			special = append(special, YakuChiho)
		default:
			return nil, false, false, false, &ParsingError{Input: p, Want: "special yaku name"}
		}
	}
	return special, riichi, doubleRiichi, ippatsu, nil
}
