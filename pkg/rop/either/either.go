package either

// Either holds exactly one of two alternatives.
type Either[L, R any] struct {
	left    L
	right   R
	isRight bool
}

// Left builds the left case.
func Left[L, R any](v L) Either[L, R] {
	return Either[L, R]{left: v}
}

// Right builds the right case.
func Right[L, R any](v R) Either[L, R] {
	return Either[L, R]{right: v, isRight: true}
}

func (e Either[L, R]) IsLeft() bool {
	return !e.isRight
}

func (e Either[L, R]) IsRight() bool {
	return e.isRight
}

// Left returns the left value and whether the either holds it.
func (e Either[L, R]) Left() (L, bool) {
	return e.left, !e.isRight
}

// Right returns the right value and whether the either holds it.
func (e Either[L, R]) Right() (R, bool) {
	return e.right, e.isRight
}

// Swap exchanges the two sides.
func (e Either[L, R]) Swap() Either[R, L] {
	if e.isRight {
		return Left[R, L](e.right)
	}
	return Right[R, L](e.left)
}

// Fold collapses the either into a single value.
func Fold[L, R, Out any](e Either[L, R], onLeft func(L) Out, onRight func(R) Out) Out {
	if e.isRight {
		return onRight(e.right)
	}
	return onLeft(e.left)
}

// MapLeft transforms the left side, leaving a right either untouched.
func MapLeft[L, R, Out any](e Either[L, R], fn func(L) Out) Either[Out, R] {
	if e.isRight {
		return Right[Out, R](e.right)
	}
	return Left[Out, R](fn(e.left))
}

// MapRight transforms the right side, leaving a left either untouched.
func MapRight[L, R, Out any](e Either[L, R], fn func(R) Out) Either[L, Out] {
	if !e.isRight {
		return Left[L, Out](e.left)
	}
	return Right[L, Out](fn(e.right))
}
