package appearance

type integerTypes interface {
	int | int32 | int64
}

func maxOf[T integerTypes](a, b T) T {
	if a > b {
		return a
	}

	return b
}

func minOf[T integerTypes](a, b T) T {
	if a < b {
		return a
	}

	return b
}
