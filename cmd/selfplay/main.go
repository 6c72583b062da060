package main

import (
	"flag"
	"fmt"
	"os"
	"sync"
	"time"

	"github.com/logrusorgru/aurora"
	"github.com/schollz/progressbar/v3"
	"golang.org/x/sync/errgroup"

	"chesscore/internal/chess"
)

func newBar(n int, description string) *progressbar.ProgressBar {
	return progressbar.NewOptions(n,
		progressbar.OptionSetDescription(description),
		progressbar.OptionSetWidth(50),
		progressbar.OptionSetTheme(progressbar.Theme{
			Saucer:        aurora.Yellow("█").String(),
			SaucerHead:    aurora.Yellow("█").String(),
			SaucerPadding: " ",
			BarStart:      "|",
			BarEnd:        "|",
		}),
	)
}

func main() {
	games := flag.Int("games", 200, "number of random games")
	workers := flag.Int("workers", 4, "games played in parallel")
	plies := flag.Int("plies", 200, "max plies per game")
	seed := flag.Int64("seed", time.Now().UnixNano(), "base random seed")
	setup := flag.String("setup", chess.StandardPlacement, "starting placement")
	flag.Parse()

	start, err := chess.DecodePlacement(*setup)
	if err != nil {
		fmt.Fprintln(os.Stderr, aurora.Red("bad setup:"), err)
		os.Exit(2)
	}

	bar := newBar(*games, "selfplay")
	var (
		mu      sync.Mutex
		results []result
		g       errgroup.Group
	)
	g.SetLimit(*workers)
	for i := 0; i < *games; i++ {
		gameSeed := *seed + int64(i)
		g.Go(func() error {
			res, err := playRandom(start, gameSeed, *plies)
			if err != nil {
				return err
			}
			mu.Lock()
			results = append(results, res)
			mu.Unlock()
			_ = bar.Add(1)
			return nil
		})
	}
	err = g.Wait()
	_ = bar.Finish()
	fmt.Println()
	if err != nil {
		fmt.Fprintln(os.Stderr, aurora.Red("selfplay failed:"), err)
		os.Exit(1)
	}

	var totalPlies, totalCaptures, totalScore int
	for _, r := range results {
		totalPlies += r.Plies
		totalCaptures += r.Captures
		totalScore += r.Score
	}
	n := float64(len(results))
	fmt.Printf("games=%d seed=%d\n", len(results), *seed)
	fmt.Printf("avg plies=%.1f avg captures=%.1f avg score=%s\n",
		float64(totalPlies)/n, float64(totalCaptures)/n,
		aurora.Bold(fmt.Sprintf("%+.2f", float64(totalScore)/n)))
}
