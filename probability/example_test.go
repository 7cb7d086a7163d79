package probability_test

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/lvlath-prob/probability"
)

// ExampleCountLevelSetEvent lists every arrangement of two red balls and one
// green ball, in the order fixed by the counts.
func ExampleCountLevelSetEvent() {
	ev, err := probability.NewCountLevelSetEvent(
		probability.Count[string]{Value: "r", N: 2},
		probability.Count[string]{Value: "g", N: 1},
	)
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	seqs, _ := ev.AllSequences()
	for _, seq := range seqs {
		fmt.Println(strings.Join(seq, " "))
	}

	// Output:
	// r r g
	// r g r
	// g r r
}

// ExampleFiniteProductSpace computes the chance of exactly two heads in
// three fair coin flips without enumerating the flips.
func ExampleFiniteProductSpace() {
	coin, _ := probability.NewDiscreteSpace(probability.UniformWeights("H", "T"))
	flips, _ := probability.Repeat[string](coin, 3)

	twoHeads, _ := probability.NewCountLevelSetEvent(
		probability.Count[string]{Value: "H", N: 2},
		probability.Count[string]{Value: "T", N: 1},
	)
	p, err := flips.Probability(twoHeads)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println(p.RatString())

	// Output:
	// 3/8
}

// ExampleSampleWithoutReplacementSpace draws two balls from a bag holding two
// red balls (1, 2) and one white ball (3), and asks for one of each colour.
func ExampleSampleWithoutReplacementSpace() {
	// 1) the physical outcomes: which ball, uniformly
	bag, _ := probability.NewSampleWithoutReplacementSpace(probability.UniformWeights(1, 2, 3), 2)

	// 2) the observation: colour of each drawn ball
	colour := probability.NewDiscreteVariable(map[int]string{1: "red", 2: "red", 3: "white"})
	draws, _ := probability.RepeatVariable[int, string](colour, 2)

	// 3) the question, pulled back to ball sequences
	oneOfEach, _ := probability.NewCountLevelSetEvent(
		probability.Count[string]{Value: "red", N: 1},
		probability.Count[string]{Value: "white", N: 1},
	)
	pre, err := draws.Inverse(oneOfEach)
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	// 4) measure it
	p, err := bag.Probability(pre)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println(p.RatString())

	// Output:
	// 2/3
}
