package main

import (
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/logrusorgru/aurora"

	"chesscore/internal/chess"
)

// colorize 白方黄色，黑方青色，提示格绿色。
func colorize(board string) string {
	var pairs []string
	for k := chess.Pawn; k <= chess.King; k++ {
		w := string([]byte{k.Letter(), 'w'})
		b := string([]byte{k.Letter(), 'b'})
		pairs = append(pairs, w, aurora.Yellow(w).String(), b, aurora.Cyan(b).String())
	}
	pairs = append(pairs, "++", aurora.Green("++").String())
	return strings.NewReplacer(pairs...).Replace(board)
}

func main() {
	setup := flag.String("setup", chess.StandardPlacement, "starting placement")
	hint := flag.String("hints", "", "square whose destinations are marked, e.g. g1")
	flag.Parse()

	b, err := chess.DecodePlacement(*setup)
	if err != nil {
		fmt.Fprintln(os.Stderr, aurora.Red(err))
		os.Exit(1)
	}
	for _, arg := range flag.Args() {
		m, err := chess.ParseMove(arg)
		if err == nil {
			err = b.Play(m)
		}
		if err != nil {
			fmt.Fprintf(os.Stderr, "%s %s: %v\n", aurora.Red("rejected"), arg, err)
			continue
		}
		fmt.Println(aurora.Green("played"), m)
	}

	var marks []chess.Square
	if *hint != "" {
		sq, err := chess.ParseSquare(*hint)
		if err == nil {
			marks, err = b.DestinationsAt(sq)
		}
		if err != nil {
			fmt.Fprintln(os.Stderr, aurora.Red(err))
		}
	}

	fmt.Print(colorize(b.Render(marks)))
	fmt.Println("position:", b.EncodePlacement())
	fmt.Println("to move: ", b.SideToMove())
	fmt.Println("score:   ", aurora.Bold(b.MaterialScore()))
}
