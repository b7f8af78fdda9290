// Package valid provides an error-accumulating Validation[T].
//
// Where Result stops at the first failure, Validation keeps the value
// and collects every fault, so a caller can report all problems of an
// input at once. ToResult collapses the accumulated faults into a
// single chained fault for the Result-based layers.
package valid
