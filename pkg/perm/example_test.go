package perm_test

import (
	"fmt"

	"github.com/matzehuels/superperm/pkg/perm"
)

func ExampleGenerate() {
	for _, p := range perm.Generate(3) {
		fmt.Println(p)
	}
	// Output:
	// [0 1 2]
	// [0 2 1]
	// [1 0 2]
	// [1 2 0]
	// [2 0 1]
	// [2 1 0]
}

func ExampleFactorial() {
	fmt.Println("4! =", perm.Factorial(4))
	fmt.Println("5! =", perm.Factorial(5))
	// Output:
	// 4! = 24
	// 5! = 120
}

func ExampleRank() {
	fmt.Println(perm.Rank([]int{4, 0, 1, 2, 3}))
	fmt.Println(perm.Rank([]int{0, 4, 1, 2, 3}))
	fmt.Println(perm.Unrank(4, 3))
	// Output:
	// 96
	// 18
	// [2 0 1]
}
