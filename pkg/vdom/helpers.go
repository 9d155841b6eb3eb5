package vdom

import "fmt"

// Text returns s as a text child. It exists for symmetry with the tag helpers.
func Text(s string) any {
	return s
}

// Textf creates a formatted text child.
func Textf(format string, args ...any) any {
	return fmt.Sprintf(format, args...)
}

// If returns the child if condition is true, nil otherwise.
func If(condition bool, child any) any {
	if condition {
		return child
	}
	return nil
}

// IfElse returns the first child if condition is true, the second otherwise.
func IfElse(condition bool, ifTrue, ifFalse any) any {
	if condition {
		return ifTrue
	}
	return ifFalse
}

// When is like If but with lazy evaluation.
func When(condition bool, fn func() any) any {
	if condition {
		return fn()
	}
	return nil
}

// Range maps a slice to a list child. Unlike a filtering map, nil results
// are kept so the positions of unkeyed siblings stay stable.
func Range[T any](items []T, fn func(item T, index int) any) []any {
	result := make([]any, 0, len(items))
	for i, item := range items {
		result = append(result, fn(item, i))
	}
	return result
}

// Repeat creates a list child of n values using the given function.
func Repeat(n int, fn func(i int) any) []any {
	if n <= 0 {
		return []any{}
	}
	result := make([]any, 0, n)
	for i := 0; i < n; i++ {
		result = append(result, fn(i))
	}
	return result
}
