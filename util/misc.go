package util

import "golang.org/x/exp/constraints"

func IfThenElse[T any](condition bool, a T, b T) T {
	if condition {
		return a
	}
	return b
}

// CeilDiv returns a/b rounded up.
func CeilDiv[T constraints.Unsigned](a T, b T) T {
	return (a + b - 1) / b
}
