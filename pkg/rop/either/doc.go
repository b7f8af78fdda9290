// Package either provides a two-sided value container Either[L, R].
//
// Unlike Result, neither side is an error by convention; Left and Right
// are just two alternatives. Type-changing transforms are package
// functions because Go methods cannot introduce type parameters.
package either
