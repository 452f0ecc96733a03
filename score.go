package mahjong

import (
	"strings"

	"mahjong/internal/scorecache"
)

// PaymentKind distinguishes the three payment shapes a win can produce.
type PaymentKind uint8

const (
	PaymentDealerTsumo PaymentKind = iota
	PaymentTsumo
	PaymentRon
)

// Payment is the final point transfer for a win, already including any
// honba (repeat-counter) bonus.
type Payment struct {
	Kind PaymentKind

	DealerTsumo int // Kind == PaymentDealerTsumo: every other player pays this

	TsumoDealer    int // Kind == PaymentTsumo: the dealer's payment
	TsumoNonDealer int // Kind == PaymentTsumo: each non-dealer's payment

	Ron int // Kind == PaymentRon: the discarder's payment
}

// Score computes the payment for a completed hand. When the tiles admit
// more than one legal decomposition, it applies the Maximality property:
// every reading is scored and the one with the highest base points wins,
// since a player should never be shortchanged by an ambiguous parse.
//
// cache is variadic so it stays optional: pass nothing (or nil) for an
// uncached call, or a single *scorecache.Cache to memoize the
// ComposeHand step across repeated calls with the same hand. Passing a
// cache never changes the result — ComposeHand is a pure function of
// its arguments, so the cache only ever serves as a shortcut to an
// answer Score would have computed anyway.
func Score(game GameState, seat SeatState, win Win, cache ...*scorecache.Cache) (Payment, error) {
	isDealer := seat.SeatWind == East

	for _, y := range seat.SpecialYaku {
		if y == YakuNagashiMangan {
			// This short-circuit pays mangan regardless of
			// game.Ruleset.AllowsNagashiMangan(), matching main.rs's own
			// score_hand_from_structs short-circuit, which also never
			// consults allows_nagashi_mangan(): nagashi mangan is asserted
			// by the caller as a special yaku, not derived from tiles, so
			// there's nothing here to gate it against under EMA2016.
			return calcPlayerSplit(2000, isDealer, Tsumo, game.Repeats), nil
		}
	}

	var c *scorecache.Cache
	if len(cache) > 0 {
		c = cache[0]
	}
	hands, err := composeHandCached(seat.ClosedTiles, seat.CalledMelds, win.Tile, c)
	if err != nil {
		return Payment{}, err
	}

	isOpen := !seat.IsClosed()

	type candidate struct {
		hand Hand
		yaku []YakuResult
		fu   int
		han  int
		bp   int
	}
	var best *candidate
	for _, h := range hands {
		yaku := EvaluateYaku(h, game, seat, win)
		fu := CountFu(h, game, seat, win, yaku)
		han := countHan(yaku, isOpen, game.Ruleset)
		bp, err := calcBasePoints(han, fu, yaku, game.Ruleset)
		if err != nil {
			continue
		}
		if best == nil || bp > best.bp {
			best = &candidate{hand: h, yaku: yaku, fu: fu, han: han, bp: bp}
		}
	}
	if best == nil {
		return Payment{}, &ScoringError{Reason: "no yaku"}
	}

	dora := countDora(best.hand.AllTiles, game.DoraIndicators)
	if seat.IsRiichi || seat.IsDoubleRiichi {
		dora += countDora(best.hand.AllTiles, game.UraDoraMarkers)
	}
	if game.Ruleset.CountsAkadora() {
		for _, t := range best.hand.AllTiles {
			if t.Red {
				dora++
			}
		}
	}

	finalHan := best.han + dora
	bp, err := calcBasePoints(finalHan, best.fu, best.yaku, game.Ruleset)
	if err != nil {
		return Payment{}, err
	}

	return calcPlayerSplit(bp, isDealer, win.Type, game.Repeats), nil
}

// composeHandCached wraps ComposeHand with an optional memoization
// layer. A nil cache (the common case) just calls ComposeHand directly.
// ComposeHand is a pure function of its three arguments, so serving a
// prior answer for the same key never changes what Score returns.
func composeHandCached(closedTiles []Tile, calledMelds []Meld, winTile Tile, cache *scorecache.Cache) ([]Hand, error) {
	if cache == nil {
		return ComposeHand(closedTiles, calledMelds, winTile)
	}

	key := scorecache.Key(handKey(closedTiles), meldsKey(calledMelds), winTile.String())
	if v, ok := cache.Get(key); ok {
		if hands, ok := v.([]Hand); ok {
			return hands, nil
		}
	}

	hands, err := ComposeHand(closedTiles, calledMelds, winTile)
	if err != nil {
		return nil, err
	}
	cache.Set(key, hands)
	return hands, nil
}

func handKey(tiles []Tile) string {
	parts := make([]string, len(tiles))
	for i, t := range tiles {
		parts[i] = t.String()
	}
	return strings.Join(parts, ",")
}

func meldsKey(melds []Meld) string {
	parts := make([]string, len(melds))
	for i, m := range melds {
		tiles := make([]string, len(m.Tiles))
		for j, tt := range m.Tiles {
			tiles[j] = Tile{Type: tt}.String()
		}
		openMark := ""
		if !m.Open {
			openMark = "!"
		}
		parts[i] = openMark + strings.Join(tiles, ",")
	}
	return strings.Join(parts, "|")
}

// countDora sums, across every indicator tile, how many tiles in hand
// match the face that indicator points to.
func countDora(tiles []Tile, indicators []Tile) int {
	if len(indicators) == 0 {
		return 0
	}
	wanted := make(map[TileType]int, len(indicators))
	for _, ind := range indicators {
		wanted[ind.Type.Dora()]++
	}
	n := 0
	for _, t := range tiles {
		n += wanted[t.Type]
	}
	return n
}

// countHan totals a yaku list's scoring value. A yakuman hand ignores
// every other yaku and scores only its yakuman value(s): the first
// yakuman sets the total, and later ones add on only if the ruleset
// allows yakuman stacking.
func countHan(yaku []YakuResult, isOpen bool, ruleset RiichiRuleset) int {
	total := 0
	seenYakuman := false
	for _, r := range yaku {
		if !r.ID.IsYakuman() {
			continue
		}
		v := yakumanValue(r.ID, ruleset)
		if !seenYakuman {
			total = v
			seenYakuman = true
		} else if ruleset.HasYakumanStacking() {
			total += v
		}
	}
	if seenYakuman {
		return total
	}

	for _, r := range yaku {
		total += hanFor(r, isOpen, ruleset)
	}
	return total
}

func yakumanValue(id Yaku, ruleset RiichiRuleset) int {
	switch id {
	case YakuDaisushi, YakuDaichiishin, YakuSuuankouTanki:
		if ruleset.HasDoubleYakuman() {
			return 26
		}
	}
	return 13
}

// hanFor is the fixed scoring table for every non-yakuman yaku. Several
// entries are worth more when the hand is closed; YakuYakuhai carries
// its own count instead since it isn't a fixed value.
func hanFor(r YakuResult, isOpen bool, ruleset RiichiRuleset) int {
	switch r.ID {
	case YakuChiitoi:
		return 2
	case YakuClosedTsumo, YakuIpeiko, YakuPinfu, YakuTanyao:
		return 1
	case YakuSanshokuDoujun, YakuIttsuu:
		if isOpen {
			return 1
		}
		return 2
	case YakuRyanpeiko:
		return 3
	case YakuToitoi, YakuSananko, YakuSanshokuDouko, YakuSankantsu, YakuHonroto, YakuShosangen:
		return 2
	case YakuYakuhai:
		return r.Han
	case YakuChanta:
		if isOpen {
			return 1
		}
		return 2
	case YakuJunchan:
		if isOpen {
			return 2
		}
		return 3
	case YakuHonitsu:
		if isOpen {
			return 2
		}
		return 3
	case YakuChinitsu:
		if isOpen {
			return 5
		}
		return 6
	case YakuRiichi, YakuUnderRiver, YakuUnderSea, YakuAfterKan, YakuRobbedKan:
		return 1
	case YakuIppatsu:
		if ruleset.AllowsIppatsu() {
			return 1
		}
		return 0
	case YakuDoubleRiichi:
		return 2
	default:
		return 0
	}
}

// calcBasePoints maps han and fu to the base point value the payment
// split is computed from. Mangan and above score a fixed base regardless
// of fu; a 13+ han hand that isn't a true yakuman (a "kazoe yakuman")
// scores the ruleset's flat kazoe value instead of doubling per yaku.
func calcBasePoints(han, fu int, yaku []YakuResult, ruleset RiichiRuleset) (int, error) {
	if fu < 20 {
		return 0, &ValueError{Field: "fu", Value: fu}
	}
	switch {
	case han <= 0:
		return 0, &ScoringError{Reason: "no yaku"}
	case han <= 4:
		bp := fu * (1 << uint(2+han))
		if bp > 2000 {
			return 2000, nil
		}
		if bp == 1920 && ruleset.HasKiriageMangan() {
			return 2000, nil
		}
		return bp, nil
	case han == 5:
		return 2000, nil
	case han <= 7:
		return 3000, nil
	case han <= 10:
		return 4000, nil
	case han <= 12:
		return 6000, nil
	default:
		if anyYakuman(yaku) {
			return 8000 * (han / 13), nil
		}
		return ruleset.KazoeYakumanScore(), nil
	}
}

// calcPlayerSplit turns a base point value into the actual payment,
// including the honba bonus for any repeat counters on the table.
func calcPlayerSplit(base int, isDealer bool, winType WinType, repeats int) Payment {
	switch winType {
	case Tsumo:
		if isDealer {
			return Payment{Kind: PaymentDealerTsumo, DealerTsumo: roundUpToHundreds(base*2) + 100*repeats}
		}
		return Payment{
			Kind:           PaymentTsumo,
			TsumoDealer:    roundUpToHundreds(base*2) + 100*repeats,
			TsumoNonDealer: roundUpToHundreds(base) + 100*repeats,
		}
	default: // Ron
		mult := 4
		if isDealer {
			mult = 6
		}
		return Payment{Kind: PaymentRon, Ron: roundUpToHundreds(base*mult) + 300*repeats}
	}
}

func roundUpToHundreds(n int) int {
	if r := n % 100; r != 0 {
		n += 100 - r
	}
	return n
}

// ScoreFromStrings scores a hand described entirely in the compact
// string grammar ParseHand/ParseMelds/ParseTile use: comma-separated
// tiles, pipe-separated melds (a leading '!' marks a closed meld),
// single-character winds, and comma-separated special yaku names. It's
// more fragile than building GameState/SeatState/Win directly, but it's
// far more convenient for tests and quick scripting.
func ScoreFromStrings(
	closedTiles, calledMelds, winningTile string,
	seatWind, roundWind byte,
	winType byte,
	doraIndicators, specialYaku, endKind string,
	repeats int,
	ruleset string,
) (Payment, error) {
	closed, err := ParseHand(closedTiles)
	if err != nil {
		return Payment{}, err
	}
	melds, err := ParseMelds(calledMelds)
	if err != nil {
		return Payment{}, err
	}
	win, err := ParseTile(winningTile)
	if err != nil {
		return Payment{}, err
	}
	seat, err := ParseWind(seatWind)
	if err != nil {
		return Payment{}, err
	}
	round, err := ParseWind(roundWind)
	if err != nil {
		return Payment{}, err
	}
	var wt WinType
	switch winType {
	case 't':
		wt = Tsumo
	case 'r':
		wt = Ron
	default:
		return Payment{}, &ValueError{Field: "winType", Value: winType}
	}
	dora, err := ParseHand(doraIndicators)
	if err != nil {
		return Payment{}, err
	}
	special, riichi, doubleRiichi, ippatsu, err := parseSpecialYaku(specialYaku)
	if err != nil {
		return Payment{}, err
	}
	rs, err := ParseRuleset(ruleset)
	if err != nil {
		return Payment{}, err
	}

	game := GameState{
		Ruleset:        rs,
		RoundWind:      round,
		Repeats:        repeats,
		DoraIndicators: dora,
	}
	seatState := SeatState{
		ClosedTiles:    closed,
		CalledMelds:    melds,
		SeatWind:       seat,
		IsRiichi:       riichi,
		IsDoubleRiichi: doubleRiichi,
		IsIppatsu:      ippatsu,
		SpecialYaku:    special,
	}
	return Score(game, seatState, Win{Tile: win, Type: wt, EndKind: endKind})
}
