// Command fivesoubench repeats the ten JPML 2022 pro-test hands (the
// same fixtures ported into jpml_pro_test_test.go) in a tight loop,
// grounded on original_source/benches/bench_hand_scoring.rs's ten
// criterion.rs benchmark groups. Since this module forbids a
// criterion.rs-style dependency, it reports wall time plus process
// CPU/RSS sampled via gopsutil, and can optionally expose a live
// statsviz dashboard for watching GC/goroutine behavior across a long
// run, following the teacher's "log the dashboard URL, then serve it"
// pattern from its */main.go entry points.
package main

import (
	"flag"
	"fmt"
	"net/http"
	"os"
	"time"

	"github.com/arl/statsviz"
	"github.com/google/uuid"
	"github.com/shirou/gopsutil/v3/process"

	"mahjong"
	"mahjong/internal/obslog"
	"mahjong/internal/runconfig"
	"mahjong/internal/scorecache"
)

var (
	configFile = flag.String("configFile", "", "path to a YAML config file (optional)")
	iterations = flag.Int("iterations", 10000, "number of times to repeat the full ten-hand scenario set")
	dashboard  = flag.Bool("dashboard", false, "serve a live statsviz dashboard at :8090/debug/statsviz/")
	useCache   = flag.Bool("cache", false, "memoize ComposeHand across iterations via internal/scorecache")
)

type scenario struct {
	closed, melds, win string
	seat, round, typ   byte
	end                string
}

// The same ten hands as bench_hand_scoring.rs's ten bench_function groups.
// The first hand is scored under all four seat/win-type combinations per
// iteration; the other nine only as a dealer tsumo and a dealer ron.
var scenarios = []scenario{
	{"p1,p2,p3,p4,p4,p4,p5,p6,p7,p8,s2,s3,s4", "", "p9", 'e', 'e', 't', ""},
	{"p1,p2,p3,p4,p4,p4,p5,p6,p7,p8,s2,s3,s4", "", "p9", 'e', 'e', 'r', ""},
	{"p1,p2,p3,p4,p4,p4,p5,p6,p7,p8,s2,s3,s4", "", "p9", 's', 'e', 't', ""},
	{"p1,p2,p3,p4,p4,p4,p5,p6,p7,p8,s2,s3,s4", "", "p9", 's', 'e', 'r', ""},
	{"m2,m2,m3,m3,p3,p3,p5,p5,s6,s6,s7,s8,s8", "", "s7", 'e', 'e', 't', ""},
	{"m2,m2,m3,m3,p3,p3,p5,p5,s6,s6,s7,s8,s8", "", "s7", 'e', 'e', 'r', ""},
	{"m3,m5,m6,m7,m8,m8,m8", "p8,p8,p8|m2,m2,m2", "m3", 'e', 'e', 't', ""},
	{"m3,m5,m6,m7,m8,m8,m8", "p8,p8,p8|m2,m2,m2", "m3", 'e', 'e', 'r', ""},
	{"p2,p2,we,we", "m8,m8,m8|p3,p3,p3|s8,s8,s8", "p2", 'e', 'e', 't', ""},
	{"p2,p2,we,we", "m8,m8,m8|p3,p3,p3|s8,s8,s8", "p2", 'e', 'e', 'r', ""},
	{"p2,p3,p4,p5,p6,p7,p7,p7,we,we", "ws,ws,ws", "p1", 'e', 'e', 't', ""},
	{"p2,p3,p4,p5,p6,p7,p7,p7,we,we", "ws,ws,ws", "p1", 'e', 'e', 'r', ""},
	{"p3,p3,p4,p4,p5,p5,p2", "s8,s8,s8|!s7,s7,s7,s7", "p2", 'e', 'e', 't', ""},
	{"p3,p3,p4,p4,p5,p5,p2", "s8,s8,s8|!s7,s7,s7,s7", "p2", 'e', 'e', 'r', ""},
	{"m2,m2,m4,m4,m3,s7,s7,s7,ws,ws", "!wn,wn,wn,wn", "m3", 'e', 'e', 't', ""},
	{"m2,m2,m4,m4,m3,s7,s7,s7,ws,ws", "!wn,wn,wn,wn", "m3", 'e', 'e', 'r', ""},
	{"s1,s1,s1,s2,s4,we,we", "m9,m9,m9|!dr,dr,dr,dr", "s3", 'e', 'e', 't', ""},
	{"s1,s1,s1,s2,s4,we,we", "m9,m9,m9|!dr,dr,dr,dr", "s3", 'e', 'e', 'r', ""},
	{"m7,m8,m9,p7,p8,p8,p8", "!ws,ws,ws,ws|!dg,dg,dg,dg", "p9", 'e', 'e', 't', ""},
	{"m7,m8,m9,p7,p8,p8,p8", "!ws,ws,ws,ws|!dg,dg,dg,dg", "p9", 'e', 'e', 'r', ""},
	{"m2,m3,m4,m4,m5,m6,m7,s8,s8,s8", "we,we,we,we", "m1", 'e', 'e', 't', "rinshan"},
	{"m2,m3,m4,m4,m5,m6,m7,s8,s8,s8", "we,we,we,we", "m1", 'e', 'e', 'r', ""},
}

func main() {
	flag.Parse()

	if *configFile != "" {
		if err := runconfig.Init(*configFile); err != nil {
			fmt.Fprintf(os.Stderr, "fivesoubench: %v\n", err)
			os.Exit(1)
		}
	}
	level := "info"
	if runconfig.Conf != nil {
		level = runconfig.Conf.Log.Level
	}
	obslog.Init("fivesoubench", level)

	runID := uuid.New().String()
	obslog.Info("starting run %s: %d iterations over %d scenarios", runID, *iterations, len(scenarios))

	if *dashboard {
		mux := http.NewServeMux()
		if err := statsviz.Register(mux); err != nil {
			obslog.Fatal("fivesoubench: registering statsviz: %v", err)
		}
		go func() {
			obslog.Info("statsviz dashboard: http://localhost:8090/debug/statsviz/")
			if err := http.ListenAndServe(":8090", mux); err != nil {
				obslog.Warn("statsviz server stopped: %v", err)
			}
		}()
	}

	var cache *scorecache.Cache
	if *useCache {
		var err error
		cache, err = scorecache.New(1<<26, 5*time.Minute)
		if err != nil {
			obslog.Fatal("fivesoubench: %v", err)
		}
		defer cache.Close()
	}

	proc, procErr := process.NewProcess(int32(os.Getpid()))
	var cpuBefore float64
	if procErr == nil {
		cpuBefore, _ = proc.CPUPercent()
	}

	start := time.Now()
	scored := 0
	for i := 0; i < *iterations; i++ {
		for _, s := range scenarios {
			if _, err := scoreScenario(s, cache); err != nil {
				obslog.Fatal("fivesoubench: scenario failed: %v", err)
			}
			scored++
		}
	}
	elapsed := time.Since(start)

	var rssMB float64
	if procErr == nil {
		if mem, err := proc.MemoryInfo(); err == nil {
			rssMB = float64(mem.RSS) / (1 << 20)
		}
	}
	var cpuAfter float64
	if procErr == nil {
		cpuAfter, _ = proc.CPUPercent()
	}

	obslog.Info(
		"run %s done: %d hands scored in %s (%.0f ns/hand), RSS=%.1fMiB, CPU%%=%.1f->%.1f",
		runID, scored, elapsed, float64(elapsed.Nanoseconds())/float64(scored), rssMB, cpuBefore, cpuAfter,
	)
}

func scoreScenario(s scenario, cache *scorecache.Cache) (mahjong.Payment, error) {
	closed, err := mahjong.ParseHand(s.closed)
	if err != nil {
		return mahjong.Payment{}, err
	}
	melds, err := mahjong.ParseMelds(s.melds)
	if err != nil {
		return mahjong.Payment{}, err
	}
	win, err := mahjong.ParseTile(s.win)
	if err != nil {
		return mahjong.Payment{}, err
	}
	seat, err := mahjong.ParseWind(s.seat)
	if err != nil {
		return mahjong.Payment{}, err
	}
	round, err := mahjong.ParseWind(s.round)
	if err != nil {
		return mahjong.Payment{}, err
	}
	var winType mahjong.WinType
	if s.typ == 't' {
		winType = mahjong.Tsumo
	} else {
		winType = mahjong.Ron
	}

	game := mahjong.GameState{Ruleset: mahjong.RulesetJPML2022, RoundWind: round}
	seatState := mahjong.SeatState{ClosedTiles: closed, CalledMelds: melds, SeatWind: seat}
	win2 := mahjong.Win{Tile: win, Type: winType, EndKind: s.end}

	if cache != nil {
		return mahjong.Score(game, seatState, win2, cache)
	}
	return mahjong.Score(game, seatState, win2)
}
