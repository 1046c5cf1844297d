package combo_test

import (
	"fmt"

	"github.com/ava12/combo/parser"
)

func Example() {
	digits := parser.OneOrMore(parser.Digit)
	number := parser.Map(func(ds []byte) int {
		n := 0
		for _, d := range ds {
			n = n*10 + int(d-'0')
		}
		return n
	}, digits)

	ws := parser.NewSkipper(parser.Space)
	plus := parser.SkipWith(ws, parser.Char('+'))
	sum := parser.Map(func(ns []int) int {
		total := 0
		for _, n := range ns {
			total += n
		}
		return total
	}, parser.SepBy1(parser.SkipWith(ws, number), plus))

	for _, input := range []string{"1 + 2 +  39", "7", "+"} {
		n, rest, ok := parser.Run(sum, input)
		if ok {
			fmt.Printf("%q: %d, rest %q\n", input, n, rest)
		} else {
			fmt.Printf("%q: no match\n", input)
		}
	}
	// Output:
	// "1 + 2 +  39": 42, rest ""
	// "7": 7, rest ""
	// "+": no match
}
