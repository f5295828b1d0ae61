package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"math"
	"os"

	"github.com/goserg/ratingcalc/elo"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

var ErrUnknownOutcome = errors.New("outcome must be one of win, draw, lose")

func main() {
	if err := run(os.Args[1:], os.Stdout); err != nil {
		fmt.Println(err.Error())
		os.Exit(1)
	}
}

func run(args []string, out io.Writer) error {
	fs := flag.NewFlagSet("elocalc", flag.ContinueOnError)
	fs.SetOutput(out)
	rating := fs.Float64("rating", 1500, "player rating")
	opponent := fs.Float64("opponent", 1500, "opponent rating")
	k := fs.Float64("k", elo.DefaultKFactor, "k-factor; 0 means the default")
	min := fs.Float64("min", math.Inf(-1), "rating floor")
	max := fs.Float64("max", math.Inf(1), "rating ceiling")
	outcome := fs.String("outcome", "", "win, draw or lose; empty prints all three")
	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return nil
		}
		return err
	}

	var policy elo.KFactorPolicy
	if *k != 0 {
		policy = elo.Constant(*k)
	}
	calc := elo.New(elo.WithKFactor(policy), elo.WithMin(*min), elo.WithMax(*max))
	p := message.NewPrinter(language.English)

	both := calc.BothExpectedScores(*rating, *opponent)
	p.Fprintf(out, "expected: %.3f / %.3f\n", both[0], both[1])

	points := []elo.Points{elo.Win, elo.Draw, elo.Lose}
	if *outcome != "" {
		pt, ok := parseOutcome(*outcome)
		if !ok {
			return ErrUnknownOutcome
		}
		points = []elo.Points{pt}
	}
	for _, pt := range points {
		p.Fprintf(out, "%s: %d\n", pt, int64(calc.NewRatingFor(*rating, *opponent, pt)))
	}
	return nil
}

func parseOutcome(s string) (elo.Points, bool) {
	for _, pt := range []elo.Points{elo.Win, elo.Draw, elo.Lose} {
		if pt.String() == s {
			return pt, true
		}
	}
	return 0, false
}
