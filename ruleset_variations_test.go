package mahjong

import "testing"

// Ports tests/ruleset_variations.rs's jpml_pro_test_2023 fixture set
// verbatim: hands sourced from the JPML 2023 pro test, each scored under
// the "JPML2023" ruleset (as with jpml_pro_test_test.go's 2022 set, these
// assertions rely on that ruleset's rule choices, so the ruleset string is
// load-bearing here).

type jpmlRulesetCase struct {
	closedTiles, calledMelds, winningTile string
	seatWind, roundWind, winType          byte
	endKind                               string
	ruleset                               string
	wantKind                              PaymentKind
	wantDealerTsumo                       int
	wantTsumoDealer, wantTsumoNonDealer   int
	wantRon                               int
}

func checkJPMLRuleset(t *testing.T, c jpmlRulesetCase) {
	t.Helper()
	p, err := ScoreFromStrings(
		c.closedTiles, c.calledMelds, c.winningTile,
		c.seatWind, c.roundWind, c.winType,
		"", "", c.endKind,
		0, c.ruleset,
	)
	if err != nil {
		t.Fatalf("ScoreFromStrings(%+v): %v", c, err)
	}
	if p.Kind != c.wantKind {
		t.Fatalf("%+v: payment kind = %v, want %v (payment=%+v)", c, p.Kind, c.wantKind, p)
	}
	switch c.wantKind {
	case PaymentDealerTsumo:
		if p.DealerTsumo != c.wantDealerTsumo {
			t.Errorf("%+v: DealerTsumo = %d, want %d", c, p.DealerTsumo, c.wantDealerTsumo)
		}
	case PaymentTsumo:
		if p.TsumoDealer != c.wantTsumoDealer || p.TsumoNonDealer != c.wantTsumoNonDealer {
			t.Errorf("%+v: Tsumo = {%d,%d}, want {%d,%d}", c, p.TsumoDealer, p.TsumoNonDealer, c.wantTsumoDealer, c.wantTsumoNonDealer)
		}
	case PaymentRon:
		if p.Ron != c.wantRon {
			t.Errorf("%+v: Ron = %d, want %d", c, p.Ron, c.wantRon)
		}
	}
}

func TestJPMLPro2023Hand1(t *testing.T) {
	const closed, meld = "p6,p7,p8,s1,s1,s2,s2,s2,s3,s3,s3,we,we", ""
	const rs = "JPML2023"

	checkJPMLRuleset(t, jpmlRulesetCase{closed, meld, "s1", 'e', 'e', 't', "", rs, PaymentDealerTsumo, 2600, 0, 0, 0})
	checkJPMLRuleset(t, jpmlRulesetCase{closed, meld, "s1", 'e', 'e', 'r', "", rs, PaymentRon, 0, 0, 0, 2000})
	checkJPMLRuleset(t, jpmlRulesetCase{closed, meld, "s1", 's', 'e', 't', "", rs, PaymentTsumo, 0, 2600, 1300, 0})
	checkJPMLRuleset(t, jpmlRulesetCase{closed, meld, "s1", 's', 'e', 'r', "", rs, PaymentRon, 0, 0, 0, 1300})

	checkJPMLRuleset(t, jpmlRulesetCase{closed, meld, "s4", 'e', 'e', 't', "", rs, PaymentDealerTsumo, 1000, 0, 0, 0})
	checkJPMLRuleset(t, jpmlRulesetCase{closed, meld, "s4", 'e', 'e', 'r', "", rs, PaymentRon, 0, 0, 0, 2000})
	checkJPMLRuleset(t, jpmlRulesetCase{closed, meld, "s4", 's', 'e', 't', "", rs, PaymentTsumo, 0, 1000, 500, 0})
	checkJPMLRuleset(t, jpmlRulesetCase{closed, meld, "s4", 's', 'e', 'r', "", rs, PaymentRon, 0, 0, 0, 1300})

	checkJPMLRuleset(t, jpmlRulesetCase{closed, meld, "we", 'e', 'e', 't', "", rs, PaymentDealerTsumo, 4000, 0, 0, 0})
	checkJPMLRuleset(t, jpmlRulesetCase{closed, meld, "we", 'e', 'e', 'r', "", rs, PaymentRon, 0, 0, 0, 4800})
	checkJPMLRuleset(t, jpmlRulesetCase{closed, meld, "we", 's', 'e', 't', "", rs, PaymentTsumo, 0, 4000, 2000, 0})
	checkJPMLRuleset(t, jpmlRulesetCase{closed, meld, "we", 's', 'e', 'r', "", rs, PaymentRon, 0, 0, 0, 1600})
}

func TestJPMLPro2023Hand2(t *testing.T) {
	const closed, meld, win, rs = "m7,m7,p5,p6,p7,p7,p8,p8,p9,p9,dg,dg,dg", "", "p7", "JPML2023"
	checkJPMLRuleset(t, jpmlRulesetCase{closed, meld, win, 'e', 'e', 't', "", rs, PaymentDealerTsumo, 2600, 0, 0, 0})
	checkJPMLRuleset(t, jpmlRulesetCase{closed, meld, win, 'e', 'e', 'r', "", rs, PaymentRon, 0, 0, 0, 3900})
	checkJPMLRuleset(t, jpmlRulesetCase{closed, meld, win, 's', 'e', 't', "", rs, PaymentTsumo, 0, 2600, 1300, 0})
	checkJPMLRuleset(t, jpmlRulesetCase{closed, meld, win, 's', 'e', 'r', "", rs, PaymentRon, 0, 0, 0, 2600})
}

func TestJPMLPro2023Hand3(t *testing.T) {
	const closed, meld, win, rs = "s1,s2,s4,s5,s6,s7,s8,s9,ws,ws", "wn,wn,wn,wn", "s3", "JPML2023"
	checkJPMLRuleset(t, jpmlRulesetCase{closed, meld, win, 'e', 'e', 't', "", rs, PaymentDealerTsumo, 2600, 0, 0, 0})
	checkJPMLRuleset(t, jpmlRulesetCase{closed, meld, win, 'e', 'e', 'r', "", rs, PaymentRon, 0, 0, 0, 7700})
	checkJPMLRuleset(t, jpmlRulesetCase{closed, meld, win, 's', 'e', 't', "", rs, PaymentTsumo, 0, 3200, 1600, 0})
	checkJPMLRuleset(t, jpmlRulesetCase{closed, meld, win, 's', 'e', 'r', "", rs, PaymentRon, 0, 0, 0, 5200})
}

func TestJPMLPro2023Hand4(t *testing.T) {
	const closed, meld, win, rs = "m5,m5,m5,s3,s3,s3,s5,s6,s7,s8", "!p2,p2,p2,p2", "s4", "JPML2023"
	checkJPMLRuleset(t, jpmlRulesetCase{closed, meld, win, 'e', 'e', 't', "", rs, PaymentDealerTsumo, 1600, 0, 0, 0})
	checkJPMLRuleset(t, jpmlRulesetCase{closed, meld, win, 'e', 'e', 'r', "", rs, PaymentRon, 0, 0, 0, 2900})
	checkJPMLRuleset(t, jpmlRulesetCase{closed, meld, win, 's', 'e', 't', "", rs, PaymentTsumo, 0, 1600, 800, 0})
	checkJPMLRuleset(t, jpmlRulesetCase{closed, meld, win, 's', 'e', 'r', "", rs, PaymentRon, 0, 0, 0, 2000})
}

func TestJPMLPro2023Hand5(t *testing.T) {
	const closed, meld, win, rs = "m2,m3,p5,p5", "ws,ws,ws|dg,dg,dg|!s1,s1,s1,s1", "m4", "JPML2023"
	checkJPMLRuleset(t, jpmlRulesetCase{closed, meld, win, 'e', 'e', 't', "", rs, PaymentDealerTsumo, 1200, 0, 0, 0})
	checkJPMLRuleset(t, jpmlRulesetCase{closed, meld, win, 'e', 'e', 'r', "", rs, PaymentRon, 0, 0, 0, 2900})
	checkJPMLRuleset(t, jpmlRulesetCase{closed, meld, win, 's', 'e', 't', "", rs, PaymentTsumo, 0, 2300, 1200, 0})
	checkJPMLRuleset(t, jpmlRulesetCase{closed, meld, win, 's', 'e', 'r', "", rs, PaymentRon, 0, 0, 0, 3900})
}

func TestJPMLPro2023Hand6(t *testing.T) {
	const closed, meld, win, rs = "p5,p7,p7,p8,p9,we,we", "!m1,m1,m1,m1|!dr,dr,dr,dr", "p6", "JPML2023"
	checkJPMLRuleset(t, jpmlRulesetCase{closed, meld, win, 'e', 'e', 't', "", rs, PaymentDealerTsumo, 2900, 0, 0, 0})
	checkJPMLRuleset(t, jpmlRulesetCase{closed, meld, win, 'e', 'e', 'r', "", rs, PaymentRon, 0, 0, 0, 4800})
	checkJPMLRuleset(t, jpmlRulesetCase{closed, meld, win, 's', 'e', 't', "", rs, PaymentTsumo, 0, 2900, 1500, 0})
	checkJPMLRuleset(t, jpmlRulesetCase{closed, meld, win, 's', 'e', 'r', "", rs, PaymentRon, 0, 0, 0, 3200})
}

func TestJPMLPro2023Hand7(t *testing.T) {
	const closed, meld, win, rs = "s2,s2,s3,s3,s4,s4,s4,s6,s6,s6,s8,s8,s8", "", "s2", "JPML2023"
	checkJPMLRuleset(t, jpmlRulesetCase{closed, meld, win, 'e', 'e', 't', "", rs, PaymentDealerTsumo, 32000, 0, 0, 0})
	checkJPMLRuleset(t, jpmlRulesetCase{closed, meld, win, 'e', 'e', 'r', "", rs, PaymentRon, 0, 0, 0, 48000})
	checkJPMLRuleset(t, jpmlRulesetCase{closed, meld, win, 's', 'e', 't', "", rs, PaymentTsumo, 0, 32000, 16000, 0})
	checkJPMLRuleset(t, jpmlRulesetCase{closed, meld, win, 's', 'e', 'r', "", rs, PaymentRon, 0, 0, 0, 32000})
}

func TestJPMLPro2023Hand8(t *testing.T) {
	const closed, meld, win, rs = "m7,m9,m9,m9,s9,s9,s9", "ws,ws,ws,ws|s9,s9,s9", "m8", "JPML2023"
	checkJPMLRuleset(t, jpmlRulesetCase{closed, meld, win, 'e', 'e', 't', "rinshan", rs, PaymentDealerTsumo, 2000, 0, 0, 0})
	checkJPMLRuleset(t, jpmlRulesetCase{closed, meld, win, 'e', 'e', 'r', "", rs, PaymentRon, 0, 0, 0, 2400})
	checkJPMLRuleset(t, jpmlRulesetCase{closed, meld, win, 's', 'e', 't', "rinshan", rs, PaymentTsumo, 0, 3900, 2000, 0})
	checkJPMLRuleset(t, jpmlRulesetCase{closed, meld, win, 's', 'e', 'r', "", rs, PaymentRon, 0, 0, 0, 3200})
}
