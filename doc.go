// Package lvlathprob computes exact probabilities over finite combinatorial
// spaces: every answer is a *big.Rat, never a float.
//
// What is lvlath-prob?
//
//	A small, dependency-light toolkit built from three layers:
//		• Events: discrete sets, per-coordinate products, count level sets
//		  ("exactly k_v copies of each v, any order"), explicit sequence sets
//		• Spaces: weighted discrete spaces, independent products with a
//		  multinomial shortcut, and sampling without replacement
//		• Random variables: lookup tables and their coordinate-wise products,
//		  with pull-back of events onto the underlying space
//
// Everything is organized under three subpackages:
//
//	rational     exact arithmetic helpers (Pow, Factorial, Multinomial, Sum, Product)
//	probability  Event, Space and Variable families and the level-set enumerator
//	urn          labelled bags of items, draws with or without replacement,
//	             YAML bag documents
//
// Quick example: two red balls and one white ball, draw two.
//
//	bag, _ := urn.New("balls", urn.Item{Label: "red", Count: 2}, urn.Item{Label: "white", Count: 1})
//	p, _ := bag.CountProbability(map[string]int{"red": 1, "white": 1}, urn.WithoutReplacement)
//	fmt.Println(p.RatString()) // 2/3
//
//	go get github.com/katalvlaran/lvlath-prob
package lvlathprob
