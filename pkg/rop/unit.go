package rop

// Unit is the canonical empty value for side-effect-only results,
// e.g. Result[Unit] from an operation with nothing to return.
type Unit struct{}

// Done is the single Unit value.
var Done = Unit{}

// SucceedUnit is shorthand for a successful Result[Unit].
func SucceedUnit() Result[Unit] {
	return Success(Done)
}
