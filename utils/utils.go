// Package utils holds small generic helpers shared across the repo.
package utils

// Version is stamped from source control at build time.
var Version string = "unknown"

// If is the ternary operator (eager evaluation).
func If[T any](cond bool, t, f T) T {
	if cond {
		return t
	}
	return f
}
