package intsx

import "golang.org/x/exp/constraints"

// Max returns x if it is greater than y, otherwise y.
func Max[T constraints.Integer](x, y T) T {
	if x > y {
		return x
	}
	return y
}

func MaxOfFour[T constraints.Integer](a, b, c, d T) T {
	return Max(Max(a, b), Max(c, d))
}
