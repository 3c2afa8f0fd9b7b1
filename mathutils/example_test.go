package mathutils_test

import (
	"fmt"

	"github.com/katalvlaran/shapelab/mathutils"
)

func ExampleFibonacci() {
	fib, _ := mathutils.Fibonacci(10)
	fmt.Println(fib)
	// Output:
	// [0 1 1 2 3 5 8 13 21 34]
}

func ExampleBinomial() {
	c, _ := mathutils.Binomial(5, 2)
	f, _ := mathutils.Factorial(5)
	fmt.Println(c, f)
	// Output:
	// 10 120
}
