// Command fivesoucli scores a single hand described on the command line
// using the compact string grammar ScoreFromStrings accepts, following
// the teacher's "load config, init logging, run" shape from its */app
// entry points (user/main.go, player/main.go) but without any of the
// network/grpc machinery those binaries start, since this one never
// leaves the local process.
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/google/uuid"

	"mahjong"
	"mahjong/internal/obslog"
	"mahjong/internal/runconfig"
)

var (
	configFile = flag.String("configFile", "", "path to a YAML config file (optional)")

	closedTiles    = flag.String("closed", "", "comma-separated closed tiles, e.g. m1,m2,m3")
	calledMelds    = flag.String("melds", "", "pipe-separated called melds, e.g. p5,p5,p5|!dw,dw,dw,dw")
	winningTile    = flag.String("win", "", "the winning tile")
	seatWind       = flag.String("seat", "e", "seat wind: e, s, w, or n")
	roundWind      = flag.String("round", "e", "round wind: e, s, w, or n")
	winType        = flag.String("type", "r", "win type: r(on) or t(sumo)")
	doraIndicators = flag.String("dora", "", "comma-separated dora indicator tiles")
	specialYaku    = flag.String("special", "", "comma-separated special yaku: riichi,ippatsu,nagashimangan,...")
	endKind        = flag.String("end", "", "hand-end context: haitei, houtei, rinshan, or chankan")
	repeats        = flag.Int("repeats", 0, "honba (repeat counter) count")
	ruleset        = flag.String("ruleset", "Default", "scoring ruleset: Default, JPML2022, JPML2023, WRC2022, EMA2016, MajSoul")
)

func main() {
	flag.Parse()

	if *configFile != "" {
		if err := runconfig.Init(*configFile); err != nil {
			fmt.Fprintf(os.Stderr, "fivesoucli: %v\n", err)
			os.Exit(1)
		}
	}

	level := "info"
	if runconfig.Conf != nil {
		level = runconfig.Conf.Log.Level
	}
	obslog.Init("fivesoucli", level)

	runID := uuid.New().String()
	obslog.Info("scoring hand (run %s)", runID)

	if *closedTiles == "" || *winningTile == "" {
		obslog.Fatal("fivesoucli: -closed and -win are required")
	}
	if len(*seatWind) != 1 || len(*roundWind) != 1 || len(*winType) != 1 {
		obslog.Fatal("fivesoucli: -seat, -round, and -type must each be a single character")
	}

	payment, err := mahjong.ScoreFromStrings(
		*closedTiles, *calledMelds, *winningTile,
		(*seatWind)[0], (*roundWind)[0], (*winType)[0],
		*doraIndicators, *specialYaku, *endKind,
		*repeats, *ruleset,
	)
	if err != nil {
		obslog.Fatal("fivesoucli: %v", err)
	}

	printPayment(payment)
}

func printPayment(p mahjong.Payment) {
	switch p.Kind {
	case mahjong.PaymentDealerTsumo:
		fmt.Printf("dealer tsumo: %d from each player\n", p.DealerTsumo)
	case mahjong.PaymentTsumo:
		fmt.Printf("tsumo: %d from the dealer, %d from each non-dealer\n", p.TsumoDealer, p.TsumoNonDealer)
	case mahjong.PaymentRon:
		fmt.Printf("ron: %d from the discarder\n", p.Ron)
	}
}
